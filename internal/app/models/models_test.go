package models_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/devcamper/internal/app/models"
)

func TestBootcampRefMarshal(t *testing.T) {
	id := uuid.MustParse("5d713995-b721-4c3b-b38c-1f5d0d3e1a01")

	raw, err := json.Marshal(models.BootcampRef{ID: id})
	require.NoError(t, err)
	assert.JSONEq(t, `"5d713995-b721-4c3b-b38c-1f5d0d3e1a01"`, string(raw))

	raw, err = json.Marshal(models.BootcampRef{ID: id, Summary: &models.BootcampSummary{
		ID: id, Name: "Devworks Bootcamp", Description: "Full stack",
	}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"5d713995-b721-4c3b-b38c-1f5d0d3e1a01","name":"Devworks Bootcamp","description":"Full stack"}`, string(raw))
}

func TestNewPoint(t *testing.T) {
	assert := assert.New(t)

	p := models.NewPoint(42.35, -71.1)
	assert.Equal(models.GeoPointType, p.Type)
	assert.Equal([2]float64{-71.1, 42.35}, p.Coordinates)
	assert.Equal(42.35, p.Latitude())
	assert.Equal(-71.1, p.Longitude())
}

func TestIsValidCareer(t *testing.T) {
	assert.True(t, models.IsValidCareer("UI/UX"))
	assert.False(t, models.IsValidCareer("ui/ux"))
}

func TestBootcampCoursesKey(t *testing.T) {
	raw, err := json.Marshal(models.Bootcamp{Name: "Devworks"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"courses"`)

	raw, err = json.Marshal(&models.Bootcamp{Name: "Devworks", Courses: []*models.Course{}})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"courses":[]`)
	assert.Contains(t, string(raw), `"name":"Devworks"`)
}
