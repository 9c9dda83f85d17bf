package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/app/repositories"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/geocoder"
	"github.com/yigit/devcamper/internal/pkg/logger"
	"github.com/yigit/devcamper/internal/pkg/query"
)

// EarthRadiusMiles converts a distance in miles to radians of arc
const EarthRadiusMiles = 3963.0

// BootcampPage is one page of a bootcamp listing
type BootcampPage struct {
	Bootcamps []*models.Bootcamp
	// Total counts every stored bootcamp, not just those matching the filter
	Total int64
	Query *query.Query
}

// BootcampService handles bootcamp-related operations
type BootcampService struct {
	bootcamps BootcampStore
	courses   CourseStore
	tx        Transactor
	geocoder  geocoder.Geocoder
}

// NewBootcampService creates a new bootcamp service instance
func NewBootcampService(bootcamps BootcampStore, courses CourseStore, tx Transactor, geo geocoder.Geocoder) *BootcampService {
	return &BootcampService{
		bootcamps: bootcamps,
		courses:   courses,
		tx:        tx,
		geocoder:  geo,
	}
}

// GetBootcamps lists bootcamps filtered, sorted, projected and paginated by
// params. Courses are attached unless the projection leaves them out.
func (s *BootcampService) GetBootcamps(ctx context.Context, params url.Values) (*BootcampPage, error) {
	q, err := query.Parse(repositories.BootcampSchema, params)
	if err != nil {
		return nil, err
	}

	bootcamps, err := s.bootcamps.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error listing bootcamps: %w", err)
	}

	if q.Selects("courses") {
		if err := s.attachCourses(ctx, bootcamps); err != nil {
			return nil, err
		}
	}

	total, err := s.bootcamps.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting bootcamps: %w", err)
	}

	return &BootcampPage{Bootcamps: bootcamps, Total: total, Query: q}, nil
}

func (s *BootcampService) attachCourses(ctx context.Context, bootcamps []*models.Bootcamp) error {
	ids := make([]uuid.UUID, 0, len(bootcamps))
	for _, b := range bootcamps {
		ids = append(ids, b.ID)
	}

	byBootcamp, err := s.courses.ListByBootcampIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error loading courses: %w", err)
	}
	for _, b := range bootcamps {
		b.Courses = byBootcamp[b.ID]
		if b.Courses == nil {
			b.Courses = []*models.Course{}
		}
	}
	return nil
}

// GetBootcampByID retrieves a single bootcamp
func (s *BootcampService) GetBootcampByID(ctx context.Context, id uuid.UUID) (*models.Bootcamp, error) {
	b, err := s.bootcamps.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundBootcamp(err, id)
	}
	return b, nil
}

// CreateBootcamp geocodes address into the bootcamp's location, derives its
// slug and stores it
func (s *BootcampService) CreateBootcamp(ctx context.Context, b *models.Bootcamp, address string) error {
	loc, err := s.locate(ctx, address)
	if err != nil {
		return err
	}
	if loc == nil {
		return apperrors.New(apperrors.ErrLocationNotFound,
			fmt.Sprintf("Could not find a location for address: %s", address), http.StatusBadRequest)
	}

	point := models.NewPoint(loc.Latitude, loc.Longitude)
	point.FormattedAddress = loc.FormattedAddress()
	point.Street = loc.Street
	point.City = loc.City
	point.State = loc.State
	point.Zipcode = loc.Zipcode
	point.Country = loc.CountryCode
	b.Location = &point
	b.Slug = slug.Make(b.Name)

	if err := s.bootcamps.Create(ctx, b); err != nil {
		return fmt.Errorf("error creating bootcamp: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("bootcamp_id", b.ID.String()).
		Str("slug", b.Slug).
		Msg("Bootcamp created")
	return nil
}

// UpdateBootcamp applies a partial update and returns the stored result
func (s *BootcampService) UpdateBootcamp(ctx context.Context, id uuid.UUID, u *models.BootcampUpdate) (*models.Bootcamp, error) {
	b, err := s.bootcamps.Update(ctx, id, u)
	if err != nil {
		return nil, notFoundBootcamp(err, id)
	}
	return b, nil
}

// DeleteBootcamp removes a bootcamp together with its courses in one
// transaction and returns the removed bootcamp
func (s *BootcampService) DeleteBootcamp(ctx context.Context, id uuid.UUID) (*models.Bootcamp, error) {
	var deleted *models.Bootcamp
	var removedCourses int64

	err := s.tx.InTx(ctx, func(ctx context.Context, bootcamps BootcampStore, courses CourseStore) error {
		exists, err := bootcamps.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrBootcampNotFound
		}

		if removedCourses, err = courses.DeleteByBootcamp(ctx, id); err != nil {
			return err
		}
		deleted, err = bootcamps.Delete(ctx, id)
		return err
	})
	if err != nil {
		return nil, notFoundBootcamp(err, id)
	}

	logger.FromContext(ctx).Info().
		Str("bootcamp_id", id.String()).
		Int64("courses_removed", removedCourses).
		Msg("Bootcamp deleted")
	return deleted, nil
}

// GetBootcampsInRadius returns every bootcamp within distance miles of the
// zipcode's geocoded center
func (s *BootcampService) GetBootcampsInRadius(ctx context.Context, zipcode string, distance float64) ([]*models.Bootcamp, error) {
	if distance < 0 {
		return nil, apperrors.NewBadRequestError("Distance must be a non-negative number")
	}

	loc, err := s.locate(ctx, zipcode)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, apperrors.New(apperrors.ErrLocationNotFound,
			fmt.Sprintf("No location found for zipcode: %s", zipcode), http.StatusNotFound)
	}

	radius := distance / EarthRadiusMiles
	bootcamps, err := s.bootcamps.WithinRadius(ctx, loc.Latitude, loc.Longitude, radius)
	if err != nil {
		return nil, fmt.Errorf("error searching bootcamps in radius: %w", err)
	}
	return bootcamps, nil
}

// locate returns the best geocoding match for address, or nil when there is none
func (s *BootcampService) locate(ctx context.Context, address string) (*geocoder.Location, error) {
	locations, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("error geocoding %q: %w", address, err)
	}
	if len(locations) == 0 {
		return nil, nil
	}
	return &locations[0], nil
}

func notFoundBootcamp(err error, id uuid.UUID) error {
	if errors.Is(err, apperrors.ErrBootcampNotFound) {
		return apperrors.NewBootcampNotFoundError(id.String())
	}
	return err
}
