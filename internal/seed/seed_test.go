package seed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appModels "github.com/yigit/devcamper/internal/app/models"
)

func TestLoadFixtures(t *testing.T) {
	fx, err := Load()
	require.NoError(t, err)

	assert.Len(t, fx.Bootcamps, 4)
	assert.Len(t, fx.Courses, 9)

	ids := make(map[uuid.UUID]bool)
	for _, b := range fx.Bootcamps {
		assert.NotEqual(t, uuid.Nil, b.ID)
		assert.False(t, ids[b.ID], "duplicate bootcamp id %s", b.ID)
		ids[b.ID] = true

		assert.Equal(t, slug.Make(b.Name), b.Slug)
		assert.NotEmpty(t, b.Photo)
		assert.NotEmpty(t, b.Careers)
		require.NotNil(t, b.Location, b.Name)
		assert.Equal(t, appModels.GeoPointType, b.Location.Type)
		assert.LessOrEqual(t, len(b.Name), 50)
	}

	courseIDs := make(map[uuid.UUID]bool)
	for _, c := range fx.Courses {
		assert.True(t, ids[c.Bootcamp.ID], c.Title)
		assert.False(t, courseIDs[c.ID], "duplicate course id %s", c.ID)
		courseIDs[c.ID] = true

		assert.GreaterOrEqual(t, c.Weeks, 1)
		assert.GreaterOrEqual(t, c.Tuition, 0.0)
		assert.Contains(t, []appModels.SkillLevel{
			appModels.SkillBeginner, appModels.SkillIntermediate, appModels.SkillAdvanced,
		}, c.MinimumSkill)
	}
}

func TestFixturesDecodeLocation(t *testing.T) {
	fx, err := Load()
	require.NoError(t, err)

	devworks := fx.Bootcamps[0]
	assert.Equal(t, "Devworks Bootcamp", devworks.Name)
	assert.Equal(t, "02215", devworks.Location.Zipcode)
	assert.InDelta(t, 42.350846, devworks.Location.Latitude(), 1e-9)
	assert.InDelta(t, -71.104028, devworks.Location.Longitude(), 1e-9)
}
