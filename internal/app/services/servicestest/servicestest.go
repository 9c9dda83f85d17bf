// Package servicestest provides in-memory stores and a stub geocoder for
// exercising the services and the HTTP layer without PostgreSQL.
package servicestest

import (
	"context"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/app/services"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/geocoder"
	"github.com/yigit/devcamper/internal/pkg/query"
)

// Store keeps bootcamps and courses in insertion order. It implements
// services.Transactor; a failed transaction restores the previous rows.
type Store struct {
	mu           sync.Mutex
	BootcampRows []*models.Bootcamp
	CourseRows   []*models.Course

	// FailDeleteBootcamp, when set, is returned by every bootcamp delete
	FailDeleteBootcamp error
}

type memBootcamps struct{ s *Store }
type memCourses struct{ s *Store }

// NewStore creates an empty store
func NewStore() *Store { return &Store{} }

// Bootcamps returns the bootcamp view of the store
func (s *Store) Bootcamps() services.BootcampStore { return &memBootcamps{s} }

// Courses returns the course view of the store
func (s *Store) Courses() services.CourseStore { return &memCourses{s} }

// AddBootcamp inserts a bootcamp located at lat/lng
func (s *Store) AddBootcamp(name string, lat, lng float64) *models.Bootcamp {
	p := models.NewPoint(lat, lng)
	b := &models.Bootcamp{ID: uuid.New(), Name: name, Location: &p, Careers: []string{"Other"}, Photo: models.DefaultPhoto}
	s.BootcampRows = append(s.BootcampRows, b)
	return b
}

// AddCourse inserts a course owned by b
func (s *Store) AddCourse(b *models.Bootcamp, title string) *models.Course {
	c := &models.Course{ID: uuid.New(), Title: title, Weeks: 4, MinimumSkill: models.SkillBeginner, Bootcamp: models.BootcampRef{ID: b.ID}}
	s.CourseRows = append(s.CourseRows, c)
	return c
}

func (s *Store) snapshot() ([]*models.Bootcamp, []*models.Course) {
	return append([]*models.Bootcamp(nil), s.BootcampRows...), append([]*models.Course(nil), s.CourseRows...)
}

func window[T any](items []T, q *query.Query) []T {
	n := uint64(len(items))
	start, end := q.Offset(), n
	if q.Paged {
		end = uint64(q.End())
	}
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	return append([]T{}, items[start:end]...)
}

func (b *memBootcamps) List(_ context.Context, q *query.Query) ([]*models.Bootcamp, error) {
	return window(b.s.BootcampRows, q), nil
}

func (b *memBootcamps) CountAll(context.Context) (int64, error) {
	return int64(len(b.s.BootcampRows)), nil
}

func (b *memBootcamps) find(id uuid.UUID) (int, *models.Bootcamp) {
	for i, bc := range b.s.BootcampRows {
		if bc.ID == id {
			return i, bc
		}
	}
	return -1, nil
}

func (b *memBootcamps) GetByID(_ context.Context, id uuid.UUID) (*models.Bootcamp, error) {
	if _, bc := b.find(id); bc != nil {
		return bc, nil
	}
	return nil, apperrors.ErrBootcampNotFound
}

func (b *memBootcamps) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, bc := b.find(id)
	return bc != nil, nil
}

func (b *memBootcamps) Create(_ context.Context, bc *models.Bootcamp) error {
	if bc.ID == uuid.Nil {
		bc.ID = uuid.New()
	}
	b.s.BootcampRows = append(b.s.BootcampRows, bc)
	return nil
}

func (b *memBootcamps) Update(_ context.Context, id uuid.UUID, u *models.BootcampUpdate) (*models.Bootcamp, error) {
	_, bc := b.find(id)
	if bc == nil {
		return nil, apperrors.ErrBootcampNotFound
	}
	if u.Name != nil {
		bc.Name = *u.Name
	}
	if u.Housing != nil {
		bc.Housing = *u.Housing
	}
	return bc, nil
}

func (b *memBootcamps) Delete(_ context.Context, id uuid.UUID) (*models.Bootcamp, error) {
	if b.s.FailDeleteBootcamp != nil {
		return nil, b.s.FailDeleteBootcamp
	}
	i, bc := b.find(id)
	if bc == nil {
		return nil, apperrors.ErrBootcampNotFound
	}
	b.s.BootcampRows = append(b.s.BootcampRows[:i], b.s.BootcampRows[i+1:]...)
	return bc, nil
}

// WithinRadius uses the same spherical law of cosines as the SQL query
func (b *memBootcamps) WithinRadius(_ context.Context, lat, lng, radius float64) ([]*models.Bootcamp, error) {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	var out []*models.Bootcamp
	for _, bc := range b.s.BootcampRows {
		if bc.Location == nil {
			continue
		}
		blat, blng := rad(bc.Location.Latitude()), rad(bc.Location.Longitude())
		cos := math.Sin(rad(lat))*math.Sin(blat) + math.Cos(rad(lat))*math.Cos(blat)*math.Cos(blng-rad(lng))
		if math.Acos(math.Max(-1, math.Min(1, cos))) <= radius {
			out = append(out, bc)
		}
	}
	return out, nil
}

func (c *memCourses) List(_ context.Context, q *query.Query) ([]*models.Course, error) {
	return window(c.s.CourseRows, q), nil
}

func (c *memCourses) ListByBootcamp(_ context.Context, bootcampID uuid.UUID) ([]*models.Course, error) {
	out := []*models.Course{}
	for _, co := range c.s.CourseRows {
		if co.Bootcamp.ID == bootcampID {
			out = append(out, co)
		}
	}
	return out, nil
}

func (c *memCourses) ListByBootcampIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID][]*models.Course, error) {
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make(map[uuid.UUID][]*models.Course)
	for _, co := range c.s.CourseRows {
		if want[co.Bootcamp.ID] {
			out[co.Bootcamp.ID] = append(out[co.Bootcamp.ID], co)
		}
	}
	return out, nil
}

func (c *memCourses) CountAll(context.Context) (int64, error) {
	return int64(len(c.s.CourseRows)), nil
}

func (c *memCourses) find(id uuid.UUID) (int, *models.Course) {
	for i, co := range c.s.CourseRows {
		if co.ID == id {
			return i, co
		}
	}
	return -1, nil
}

func (c *memCourses) GetByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	if _, co := c.find(id); co != nil {
		return co, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (c *memCourses) Create(_ context.Context, co *models.Course) error {
	if co.ID == uuid.Nil {
		co.ID = uuid.New()
	}
	c.s.CourseRows = append(c.s.CourseRows, co)
	return nil
}

func (c *memCourses) Update(_ context.Context, id uuid.UUID, u *models.CourseUpdate) (*models.Course, error) {
	_, co := c.find(id)
	if co == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	if u.Title != nil {
		co.Title = *u.Title
	}
	if u.Weeks != nil {
		co.Weeks = *u.Weeks
	}
	return co, nil
}

func (c *memCourses) Delete(_ context.Context, id uuid.UUID) (*models.Course, error) {
	i, co := c.find(id)
	if co == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	c.s.CourseRows = append(c.s.CourseRows[:i], c.s.CourseRows[i+1:]...)
	return co, nil
}

func (c *memCourses) DeleteByBootcamp(_ context.Context, bootcampID uuid.UUID) (int64, error) {
	kept := c.s.CourseRows[:0:0]
	var n int64
	for _, co := range c.s.CourseRows {
		if co.Bootcamp.ID == bootcampID {
			n++
			continue
		}
		kept = append(kept, co)
	}
	c.s.CourseRows = kept
	return n, nil
}

// InTx implements services.Transactor
func (s *Store) InTx(ctx context.Context, fn services.TxFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bootcamps, courses := s.snapshot()
	if err := fn(ctx, s.Bootcamps(), s.Courses()); err != nil {
		s.BootcampRows, s.CourseRows = bootcamps, courses
		return err
	}
	return nil
}

// Geocoder answers from a fixed table and records every address it is asked for
type Geocoder struct {
	Locations map[string]geocoder.Location
	Err       error
	Calls     []string
}

// Geocode implements geocoder.Geocoder
func (g *Geocoder) Geocode(_ context.Context, address string) ([]geocoder.Location, error) {
	g.Calls = append(g.Calls, address)
	if g.Err != nil {
		return nil, g.Err
	}
	if loc, ok := g.Locations[address]; ok {
		return []geocoder.Location{loc}, nil
	}
	return nil, nil
}
