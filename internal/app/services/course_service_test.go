package services_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/app/services"
	"github.com/yigit/devcamper/internal/app/services/servicestest"
)

func TestCreateCourseUnderMissingBootcamp(t *testing.T) {
	store := servicestest.NewStore()
	svc := services.NewCourseService(store.Courses(), store.Bootcamps())

	missing := uuid.New()
	err := svc.CreateCourse(context.Background(), missing, &models.Course{Title: "Front End", Weeks: 8})
	appErr := requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Bootcamp not found with id: "+missing.String(), appErr.Message)
	assert.Empty(t, store.CourseRows)
}

func TestCreateCourseSetsOwner(t *testing.T) {
	store := servicestest.NewStore()
	b := store.AddBootcamp("Devworks", 0, 0)
	svc := services.NewCourseService(store.Courses(), store.Bootcamps())

	c := &models.Course{Title: "Front End", Weeks: 8, Bootcamp: models.BootcampRef{ID: uuid.New()}}
	require.NoError(t, svc.CreateCourse(context.Background(), b.ID, c))

	assert.Equal(t, b.ID, c.Bootcamp.ID)
	assert.Equal(t, []*models.Course{c}, store.CourseRows)
}

func TestGetCoursesByBootcamp(t *testing.T) {
	store := servicestest.NewStore()
	b := store.AddBootcamp("Devworks", 0, 0)
	other := store.AddBootcamp("ModernTech", 0, 0)
	mine := store.AddCourse(b, "Front End")
	store.AddCourse(other, "UI/UX")
	svc := services.NewCourseService(store.Courses(), store.Bootcamps())

	got, err := svc.GetCoursesByBootcamp(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, []*models.Course{mine}, got)

	got, err = svc.GetCoursesByBootcamp(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetCourses(t *testing.T) {
	store := servicestest.NewStore()
	b := store.AddBootcamp("Devworks", 0, 0)
	for _, title := range []string{"a", "b", "c"} {
		store.AddCourse(b, title)
	}
	svc := services.NewCourseService(store.Courses(), store.Bootcamps())

	page, err := svc.GetCourses(context.Background(), url.Values{"page": {"3"}})
	require.NoError(t, err)
	require.Len(t, page.Courses, 1)
	assert.Equal(t, "c", page.Courses[0].Title)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 3, page.Query.Page)

	page, err = svc.GetCourses(context.Background(), url.Values{})
	require.NoError(t, err)
	assert.False(t, page.Query.Paged)
	assert.Len(t, page.Courses, 3)

	_, err = svc.GetCourses(context.Background(), url.Values{"weeks[gt]": {"lots"}})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestCourseLookups(t *testing.T) {
	store := servicestest.NewStore()
	b := store.AddBootcamp("Devworks", 0, 0)
	c := store.AddCourse(b, "Front End")
	svc := services.NewCourseService(store.Courses(), store.Bootcamps())
	ctx := context.Background()

	got, err := svc.GetCourseByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Same(t, c, got)

	weeks := 12
	got, err = svc.UpdateCourse(ctx, c.ID, &models.CourseUpdate{Weeks: &weeks})
	require.NoError(t, err)
	assert.Equal(t, 12, got.Weeks)

	deleted, err := svc.DeleteCourse(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, deleted.ID)
	assert.Empty(t, store.CourseRows)

	missing := uuid.New()
	_, err = svc.GetCourseByID(ctx, missing)
	appErr := requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Course not found with id: "+missing.String(), appErr.Message)

	_, err = svc.UpdateCourse(ctx, missing, &models.CourseUpdate{Weeks: &weeks})
	requireStatus(t, err, http.StatusNotFound)

	_, err = svc.DeleteCourse(ctx, missing)
	requireStatus(t, err, http.StatusNotFound)
}
