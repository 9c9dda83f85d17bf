package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/pkg/query"
)

func TestProjectBootcamp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"id", "name"}, projectBootcamp([]string{"name"}).columns())
	assert.Equal([]string{"id"}, projectBootcamp([]string{"courses"}).columns())
	assert.Equal(
		[]string{"id", "location_lng", "location_lat", "formatted_address", "street", "city", "state", "zipcode", "country"},
		projectBootcamp([]string{"location"}).columns(),
	)
	assert.Len(fullBootcamp.columns(), 24)

	var r bootcampRow
	assert.Len(fullBootcamp.dest(&r), 24)
}

func TestEverySelectableFieldHasColumns(t *testing.T) {
	known := make(map[string]bool, len(bootcampColumns))
	for _, c := range bootcampColumns {
		known[c.field] = true
	}

	for _, name := range BootcampSchema.Names() {
		f, _ := BootcampSchema.Field(name)
		if f.Can&query.Selectable == 0 || name == "courses" {
			continue
		}
		assert.True(t, known[name], "field %q has no scan columns", name)
	}
}

func TestBootcampRowModel(t *testing.T) {
	assert := assert.New(t)

	lng, lat := -71.1, 42.35
	r := bootcampRow{Name: "Devworks", Lng: &lng, Lat: &lat, City: "Boston"}
	b := r.model()
	if assert.NotNil(b.Location) {
		assert.Equal([2]float64{lng, lat}, b.Location.Coordinates)
		assert.Equal("Boston", b.Location.City)
	}

	assert.Nil((&bootcampRow{Name: "Nowhere"}).model().Location)
}

func TestBootcampSetMap(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(bootcampSetMap(nil))
	assert.Empty(bootcampSetMap(&models.BootcampUpdate{}))

	name, housing, careers := "Devworks", false, []string{"Business"}
	set := bootcampSetMap(&models.BootcampUpdate{Name: &name, Housing: &housing, Careers: &careers})
	assert.Equal(map[string]interface{}{
		"name":    "Devworks",
		"housing": false,
		"careers": []string{"Business"},
	}, set)
}

func TestCourseSetMap(t *testing.T) {
	weeks := 6
	skill := models.SkillAdvanced
	set := courseSetMap(&models.CourseUpdate{Weeks: &weeks, MinimumSkill: &skill})
	assert.Equal(t, map[string]interface{}{"weeks": 6, "minimum_skill": "advanced"}, set)
}
