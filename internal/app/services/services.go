package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/app/repositories"
	"github.com/yigit/devcamper/internal/db"
	"github.com/yigit/devcamper/internal/pkg/geocoder"
	"github.com/yigit/devcamper/internal/pkg/query"
)

// Services defined in this package:
// - BootcampService: bootcamp listing, geocoded creation, cascade deletion and radius search
// - CourseService: course listing and management under a bootcamp

// BootcampStore is the persistence surface the services need for bootcamps
type BootcampStore interface {
	List(ctx context.Context, q *query.Query) ([]*models.Bootcamp, error)
	CountAll(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bootcamp, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, b *models.Bootcamp) error
	Update(ctx context.Context, id uuid.UUID, u *models.BootcampUpdate) (*models.Bootcamp, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Bootcamp, error)
	WithinRadius(ctx context.Context, lat, lng, radius float64) ([]*models.Bootcamp, error)
}

// CourseStore is the persistence surface the services need for courses
type CourseStore interface {
	List(ctx context.Context, q *query.Query) ([]*models.Course, error)
	ListByBootcamp(ctx context.Context, bootcampID uuid.UUID) ([]*models.Course, error)
	ListByBootcampIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]*models.Course, error)
	CountAll(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	Create(ctx context.Context, c *models.Course) error
	Update(ctx context.Context, id uuid.UUID, u *models.CourseUpdate) (*models.Course, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Course, error)
	DeleteByBootcamp(ctx context.Context, bootcampID uuid.UUID) (int64, error)
}

// TxFunc runs with stores bound to one transaction
type TxFunc func(ctx context.Context, bootcamps BootcampStore, courses CourseStore) error

// Transactor runs a TxFunc atomically: every write it makes is committed, or
// none is.
type Transactor interface {
	InTx(ctx context.Context, fn TxFunc) error
}

type pgTransactor struct {
	db *db.PostgresDB
}

// NewTransactor returns a Transactor backed by a PostgreSQL transaction
func NewTransactor(database *db.PostgresDB) Transactor {
	return &pgTransactor{db: database}
}

func (t *pgTransactor) InTx(ctx context.Context, fn TxFunc) error {
	return t.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repos := repositories.NewRepositories(tx)
		return fn(ctx, repos.BootcampRepository, repos.CourseRepository)
	})
}

// Services holds all the service instances
type Services struct {
	BootcampService *BootcampService
	CourseService   *CourseService
}

// NewServices wires the services to their stores and collaborators
func NewServices(bootcamps BootcampStore, courses CourseStore, tx Transactor, geo geocoder.Geocoder) *Services {
	return &Services{
		BootcampService: NewBootcampService(bootcamps, courses, tx, geo),
		CourseService:   NewCourseService(courses, bootcamps),
	}
}
