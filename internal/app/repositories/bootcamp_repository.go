package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/query"
)

// BootcampSchema is the allow-list of bootcamp fields for list queries
var BootcampSchema = query.NewSchema("-createdAt",
	query.Field{Name: "name", Column: "name", Kind: query.KindString, Can: query.All},
	query.Field{Name: "slug", Column: "slug", Kind: query.KindString, Can: query.All},
	query.Field{Name: "description", Column: "description", Kind: query.KindString, Can: query.Filterable | query.Selectable},
	query.Field{Name: "website", Column: "website", Kind: query.KindString, Can: query.Filterable | query.Selectable},
	query.Field{Name: "phone", Column: "phone", Kind: query.KindString, Can: query.Filterable | query.Selectable},
	query.Field{Name: "email", Column: "email", Kind: query.KindString, Can: query.Filterable | query.Selectable},
	query.Field{Name: "location", Column: "location", Kind: query.KindString, Can: query.Selectable},
	query.Field{Name: "location.city", Column: "city", Kind: query.KindString, Can: query.Filterable | query.Sortable},
	query.Field{Name: "location.state", Column: "state", Kind: query.KindString, Can: query.Filterable | query.Sortable},
	query.Field{Name: "location.zipcode", Column: "zipcode", Kind: query.KindString, Can: query.Filterable | query.Sortable},
	query.Field{Name: "location.country", Column: "country", Kind: query.KindString, Can: query.Filterable | query.Sortable},
	query.Field{Name: "careers", Column: "careers", Kind: query.KindStringArray, Can: query.Filterable | query.Selectable},
	query.Field{Name: "averageRating", Column: "average_rating", Kind: query.KindNumber, Can: query.All},
	query.Field{Name: "averageCost", Column: "average_cost", Kind: query.KindNumber, Can: query.All},
	query.Field{Name: "photo", Column: "photo", Kind: query.KindString, Can: query.Selectable},
	query.Field{Name: "housing", Column: "housing", Kind: query.KindBool, Can: query.All},
	query.Field{Name: "jobAssistance", Column: "job_assistance", Kind: query.KindBool, Can: query.All},
	query.Field{Name: "jobGuarantee", Column: "job_guarantee", Kind: query.KindBool, Can: query.All},
	query.Field{Name: "acceptGi", Column: "accept_gi", Kind: query.KindBool, Can: query.All},
	query.Field{Name: "createdAt", Column: "created_at", Kind: query.KindTime, Can: query.All},
	query.Field{Name: "courses", Kind: query.KindString, Can: query.Selectable},
)

// bootcampRow is the scan target of a bootcamps row. Location columns are
// nullable until the row has been geocoded.
type bootcampRow struct {
	ID               uuid.UUID
	Name             string
	Slug             string
	Description      string
	Website          string
	Phone            string
	Email            string
	Lng              *float64
	Lat              *float64
	FormattedAddress string
	Street           string
	City             string
	State            string
	Zipcode          string
	Country          string
	Careers          []string
	AverageRating    *float64
	AverageCost      *float64
	Photo            string
	Housing          bool
	JobAssistance    bool
	JobGuarantee     bool
	AcceptGi         bool
	CreatedAt        time.Time
}

func (r *bootcampRow) model() *models.Bootcamp {
	b := &models.Bootcamp{
		ID:            r.ID,
		Name:          r.Name,
		Slug:          r.Slug,
		Description:   r.Description,
		Website:       r.Website,
		Phone:         r.Phone,
		Email:         r.Email,
		Careers:       r.Careers,
		AverageRating: r.AverageRating,
		AverageCost:   r.AverageCost,
		Photo:         r.Photo,
		Housing:       r.Housing,
		JobAssistance: r.JobAssistance,
		JobGuarantee:  r.JobGuarantee,
		AcceptGi:      r.AcceptGi,
		CreatedAt:     r.CreatedAt,
	}
	if r.Lng != nil && r.Lat != nil {
		loc := models.NewPoint(*r.Lat, *r.Lng)
		loc.FormattedAddress = r.FormattedAddress
		loc.Street = r.Street
		loc.City = r.City
		loc.State = r.State
		loc.Zipcode = r.Zipcode
		loc.Country = r.Country
		b.Location = &loc
	}
	return b
}

// bootcampColumn maps a JSON field to the columns that hold it
type bootcampColumn struct {
	field   string
	columns []string
	dest    func(r *bootcampRow) []any
}

var bootcampColumns = []bootcampColumn{
	{"id", []string{"id"}, func(r *bootcampRow) []any { return []any{&r.ID} }},
	{"name", []string{"name"}, func(r *bootcampRow) []any { return []any{&r.Name} }},
	{"slug", []string{"slug"}, func(r *bootcampRow) []any { return []any{&r.Slug} }},
	{"description", []string{"description"}, func(r *bootcampRow) []any { return []any{&r.Description} }},
	{"website", []string{"website"}, func(r *bootcampRow) []any { return []any{&r.Website} }},
	{"phone", []string{"phone"}, func(r *bootcampRow) []any { return []any{&r.Phone} }},
	{"email", []string{"email"}, func(r *bootcampRow) []any { return []any{&r.Email} }},
	{"location",
		[]string{"location_lng", "location_lat", "formatted_address", "street", "city", "state", "zipcode", "country"},
		func(r *bootcampRow) []any {
			return []any{&r.Lng, &r.Lat, &r.FormattedAddress, &r.Street, &r.City, &r.State, &r.Zipcode, &r.Country}
		}},
	{"careers", []string{"careers"}, func(r *bootcampRow) []any { return []any{&r.Careers} }},
	{"averageRating", []string{"average_rating"}, func(r *bootcampRow) []any { return []any{&r.AverageRating} }},
	{"averageCost", []string{"average_cost"}, func(r *bootcampRow) []any { return []any{&r.AverageCost} }},
	{"photo", []string{"photo"}, func(r *bootcampRow) []any { return []any{&r.Photo} }},
	{"housing", []string{"housing"}, func(r *bootcampRow) []any { return []any{&r.Housing} }},
	{"jobAssistance", []string{"job_assistance"}, func(r *bootcampRow) []any { return []any{&r.JobAssistance} }},
	{"jobGuarantee", []string{"job_guarantee"}, func(r *bootcampRow) []any { return []any{&r.JobGuarantee} }},
	{"acceptGi", []string{"accept_gi"}, func(r *bootcampRow) []any { return []any{&r.AcceptGi} }},
	{"createdAt", []string{"created_at"}, func(r *bootcampRow) []any { return []any{&r.CreatedAt} }},
}

// projection is the set of columns read for one statement
type projection []bootcampColumn

// projectBootcamp returns the columns for the selected fields, always
// including id. nil selects every column.
func projectBootcamp(fields []string) projection {
	if fields == nil {
		return bootcampColumns
	}
	want := map[string]bool{"id": true}
	for _, f := range fields {
		want[f] = true
	}
	var p projection
	for _, c := range bootcampColumns {
		if want[c.field] {
			p = append(p, c)
		}
	}
	return p
}

func (p projection) columns() []string {
	var cols []string
	for _, c := range p {
		cols = append(cols, c.columns...)
	}
	return cols
}

func (p projection) dest(r *bootcampRow) []any {
	var dest []any
	for _, c := range p {
		dest = append(dest, c.dest(r)...)
	}
	return dest
}

type scanner interface {
	Scan(dest ...any) error
}

func (p projection) scan(row scanner) (*models.Bootcamp, error) {
	var r bootcampRow
	if err := row.Scan(p.dest(&r)...); err != nil {
		return nil, err
	}
	return r.model(), nil
}

var fullBootcamp = projectBootcamp(nil)

// BootcampRepository handles database operations for bootcamps
type BootcampRepository struct {
	db DBTX
}

// NewBootcampRepository creates a new bootcamp repository
func NewBootcampRepository(db DBTX) *BootcampRepository {
	return &BootcampRepository{db: db}
}

// List returns the page of bootcamps described by q, reading only the
// selected columns
func (r *BootcampRepository) List(ctx context.Context, q *query.Query) ([]*models.Bootcamp, error) {
	p := projectBootcamp(q.Fields)
	sb := q.Apply(psql.Select(p.columns()...).From("bootcamps"))
	return r.selectMany(ctx, sb, p)
}

// CountAll returns the number of stored bootcamps
func (r *BootcampRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bootcamps`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting bootcamps: %w", err)
	}
	return total, nil
}

// GetByID retrieves a bootcamp by ID
func (r *BootcampRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bootcamp, error) {
	sqlStr, args, err := psql.Select(fullBootcamp.columns()...).
		From("bootcamps").
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	b, err := fullBootcamp.scan(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrBootcampNotFound
		}
		return nil, fmt.Errorf("error retrieving bootcamp: %w", err)
	}
	return b, nil
}

// Exists reports whether a bootcamp with id is stored
func (r *BootcampRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM bootcamps WHERE id = $1)`, id.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking bootcamp existence: %w", err)
	}
	return exists, nil
}

// Create inserts b, assigning its ID and creation time when unset
func (r *BootcampRepository) Create(ctx context.Context, b *models.Bootcamp) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	if b.Careers == nil {
		b.Careers = []string{}
	}

	var lng, lat *float64
	var loc models.Location
	if b.Location != nil {
		loc = *b.Location
		x, y := loc.Longitude(), loc.Latitude()
		lng, lat = &x, &y
	}

	sqlStr, args, err := psql.Insert("bootcamps").
		Columns(fullBootcamp.columns()...).
		Values(
			b.ID.String(), b.Name, b.Slug, b.Description, b.Website, b.Phone, b.Email,
			lng, lat, loc.FormattedAddress, loc.Street, loc.City, loc.State, loc.Zipcode, loc.Country,
			b.Careers, b.AverageRating, b.AverageCost, b.Photo,
			b.Housing, b.JobAssistance, b.JobGuarantee, b.AcceptGi, b.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building insert: %w", err)
	}

	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("error creating bootcamp: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of u and returns the updated bootcamp
func (r *BootcampRepository) Update(ctx context.Context, id uuid.UUID, u *models.BootcampUpdate) (*models.Bootcamp, error) {
	set := bootcampSetMap(u)
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	sqlStr, args, err := psql.Update("bootcamps").
		SetMap(set).
		Where(squirrel.Eq{"id": id.String()}).
		Suffix("RETURNING " + joinColumns(fullBootcamp.columns())).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building update: %w", err)
	}

	b, err := fullBootcamp.scan(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrBootcampNotFound
		}
		return nil, fmt.Errorf("error updating bootcamp: %w", err)
	}
	return b, nil
}

func bootcampSetMap(u *models.BootcampUpdate) map[string]interface{} {
	set := make(map[string]interface{})
	if u == nil {
		return set
	}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Website != nil {
		set["website"] = *u.Website
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Careers != nil {
		set["careers"] = *u.Careers
	}
	if u.AverageRating != nil {
		set["average_rating"] = *u.AverageRating
	}
	if u.AverageCost != nil {
		set["average_cost"] = *u.AverageCost
	}
	if u.Photo != nil {
		set["photo"] = *u.Photo
	}
	if u.Housing != nil {
		set["housing"] = *u.Housing
	}
	if u.JobAssistance != nil {
		set["job_assistance"] = *u.JobAssistance
	}
	if u.JobGuarantee != nil {
		set["job_guarantee"] = *u.JobGuarantee
	}
	if u.AcceptGi != nil {
		set["accept_gi"] = *u.AcceptGi
	}
	return set
}

// Delete removes a bootcamp and returns the removed row. Courses referencing
// it must be deleted first.
func (r *BootcampRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Bootcamp, error) {
	sqlStr, args, err := psql.Delete("bootcamps").
		Where(squirrel.Eq{"id": id.String()}).
		Suffix("RETURNING " + joinColumns(fullBootcamp.columns())).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building delete: %w", err)
	}

	b, err := fullBootcamp.scan(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrBootcampNotFound
		}
		return nil, fmt.Errorf("error deleting bootcamp: %w", err)
	}
	return b, nil
}

// DeleteAll removes every bootcamp and returns how many were removed
func (r *BootcampRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM bootcamps`)
	if err != nil {
		return 0, fmt.Errorf("error deleting bootcamps: %w", err)
	}
	return tag.RowsAffected(), nil
}

// WithinRadius returns the bootcamps whose location lies within radius
// radians of great-circle distance from (lat, lng)
func (r *BootcampRepository) WithinRadius(ctx context.Context, lat, lng, radius float64) ([]*models.Bootcamp, error) {
	// The cosine is clamped to [-1, 1] so rounding never pushes acos out of its domain.
	distance := squirrel.Expr(`acos(LEAST(1, GREATEST(-1,
		sin(radians(?)) * sin(radians(location_lat)) +
		cos(radians(?)) * cos(radians(location_lat)) * cos(radians(location_lng) - radians(?))))) <= ?`,
		lat, lat, lng, radius)

	sb := psql.Select(fullBootcamp.columns()...).
		From("bootcamps").
		Where(squirrel.And{
			squirrel.NotEq{"location_lat": nil},
			squirrel.NotEq{"location_lng": nil},
			distance,
		}).
		OrderBy("created_at DESC")
	return r.selectMany(ctx, sb, fullBootcamp)
}

func (r *BootcampRepository) selectMany(ctx context.Context, sb squirrel.SelectBuilder, p projection) ([]*models.Bootcamp, error) {
	sqlStr, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing bootcamps: %w", err)
	}
	defer rows.Close()

	bootcamps := []*models.Bootcamp{}
	for rows.Next() {
		b, err := p.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning bootcamp: %w", err)
		}
		bootcamps = append(bootcamps, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bootcamps: %w", err)
	}
	return bootcamps, nil
}
