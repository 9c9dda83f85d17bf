package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/app/repositories"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/query"
)

// CoursePage is one page of a course listing
type CoursePage struct {
	Courses []*models.Course
	// Total counts every stored course, not just those matching the filter
	Total int64
	Query *query.Query
}

// CourseService handles course-related operations
type CourseService struct {
	courses   CourseStore
	bootcamps BootcampStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore, bootcamps BootcampStore) *CourseService {
	return &CourseService{
		courses:   courses,
		bootcamps: bootcamps,
	}
}

// GetCourses lists courses with their bootcamp summary, filtered, sorted and
// projected by params. The list is paginated only when params name page or limit.
func (s *CourseService) GetCourses(ctx context.Context, params url.Values) (*CoursePage, error) {
	q, err := query.Parse(repositories.CourseSchema, params)
	if err != nil {
		return nil, err
	}

	courses, err := s.courses.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}

	total, err := s.courses.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting courses: %w", err)
	}

	return &CoursePage{Courses: courses, Total: total, Query: q}, nil
}

// GetCoursesByBootcamp returns every course of a bootcamp. An unknown
// bootcamp yields an empty list.
func (s *CourseService) GetCoursesByBootcamp(ctx context.Context, bootcampID uuid.UUID) ([]*models.Course, error) {
	courses, err := s.courses.ListByBootcamp(ctx, bootcampID)
	if err != nil {
		return nil, fmt.Errorf("error listing courses of bootcamp: %w", err)
	}
	return courses, nil
}

// GetCourseByID retrieves a single course with its bootcamp summary
func (s *CourseService) GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	c, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundCourse(err, id)
	}
	return c, nil
}

// CreateCourse stores c under bootcampID. Nothing is written when the
// bootcamp does not exist.
func (s *CourseService) CreateCourse(ctx context.Context, bootcampID uuid.UUID, c *models.Course) error {
	exists, err := s.bootcamps.Exists(ctx, bootcampID)
	if err != nil {
		return fmt.Errorf("error checking bootcamp: %w", err)
	}
	if !exists {
		return apperrors.NewBootcampNotFoundError(bootcampID.String())
	}

	c.Bootcamp = models.BootcampRef{ID: bootcampID}
	if err := s.courses.Create(ctx, c); err != nil {
		if errors.Is(err, apperrors.ErrBootcampNotFound) {
			return apperrors.NewBootcampNotFoundError(bootcampID.String())
		}
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// UpdateCourse applies a partial update and returns the stored result
func (s *CourseService) UpdateCourse(ctx context.Context, id uuid.UUID, u *models.CourseUpdate) (*models.Course, error) {
	c, err := s.courses.Update(ctx, id, u)
	if err != nil {
		return nil, notFoundCourse(err, id)
	}
	return c, nil
}

// DeleteCourse removes a course and returns it
func (s *CourseService) DeleteCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	c, err := s.courses.Delete(ctx, id)
	if err != nil {
		return nil, notFoundCourse(err, id)
	}
	return c, nil
}

func notFoundCourse(err error, id uuid.UUID) error {
	if errors.Is(err, apperrors.ErrCourseNotFound) {
		return apperrors.NewCourseNotFoundError(id.String())
	}
	return err
}
