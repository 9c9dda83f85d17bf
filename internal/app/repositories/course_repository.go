package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/dberrors"
	"github.com/yigit/devcamper/internal/pkg/query"
)

// CourseSchema is the allow-list of course fields for list queries. Columns
// are qualified because the list joins bootcamps. Course listings return
// every match unless the client asks for a page.
var CourseSchema = query.NewSchema("-createdAt",
	query.Field{Name: "title", Column: "c.title", Kind: query.KindString, Can: query.All},
	query.Field{Name: "description", Column: "c.description", Kind: query.KindString, Can: query.Filterable | query.Selectable},
	query.Field{Name: "weeks", Column: "c.weeks", Kind: query.KindNumber, Can: query.All},
	query.Field{Name: "tuition", Column: "c.tuition", Kind: query.KindNumber, Can: query.All},
	query.Field{Name: "minimumSkill", Column: "c.minimum_skill", Kind: query.KindString, Can: query.All},
	query.Field{Name: "scholarshipAvailable", Column: "c.scholarship_available", Kind: query.KindBool, Can: query.All},
	query.Field{Name: "createdAt", Column: "c.created_at", Kind: query.KindTime, Can: query.All},
	query.Field{Name: "bootcamp", Column: "c.bootcamp_id", Kind: query.KindUUID, Can: query.All},
).PageOnRequest()

var courseColumns = []string{
	"c.id", "c.title", "c.description", "c.weeks", "c.tuition",
	"c.minimum_skill", "c.scholarship_available", "c.created_at", "c.bootcamp_id",
}

// populatedColumns adds the bootcamp summary read through the join
var populatedColumns = append(append([]string(nil), courseColumns...), "b.name", "b.description")

const returningCourse = "RETURNING id, title, description, weeks, tuition, minimum_skill, scholarship_available, created_at, bootcamp_id"

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db DBTX
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

func scanCourse(row scanner, populated bool) (*models.Course, error) {
	var c models.Course
	dest := []any{
		&c.ID, &c.Title, &c.Description, &c.Weeks, &c.Tuition,
		&c.MinimumSkill, &c.ScholarshipAvailable, &c.CreatedAt, &c.Bootcamp.ID,
	}

	var name, description *string
	if populated {
		dest = append(dest, &name, &description)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if populated && name != nil {
		c.Bootcamp.Summary = &models.BootcampSummary{ID: c.Bootcamp.ID, Name: *name}
		if description != nil {
			c.Bootcamp.Summary.Description = *description
		}
	}
	return &c, nil
}

func selectCourses(populated bool) squirrel.SelectBuilder {
	if !populated {
		return psql.Select(courseColumns...).From("courses c")
	}
	return psql.Select(populatedColumns...).
		From("courses c").
		LeftJoin("bootcamps b ON b.id = c.bootcamp_id")
}

// List returns the courses described by q with their bootcamp summary
func (r *CourseRepository) List(ctx context.Context, q *query.Query) ([]*models.Course, error) {
	return r.selectMany(ctx, q.Apply(selectCourses(true)), true)
}

// ListByBootcamp returns every course of a bootcamp, oldest first
func (r *CourseRepository) ListByBootcamp(ctx context.Context, bootcampID uuid.UUID) ([]*models.Course, error) {
	sb := selectCourses(false).
		Where(squirrel.Eq{"c.bootcamp_id": bootcampID.String()}).
		OrderBy("c.created_at ASC")
	return r.selectMany(ctx, sb, false)
}

// ListByBootcampIDs returns the courses of the given bootcamps keyed by
// bootcamp ID
func (r *CourseRepository) ListByBootcampIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]*models.Course, error) {
	out := make(map[uuid.UUID][]*models.Course, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	sb := selectCourses(false).
		Where(squirrel.Eq{"c.bootcamp_id": keys}).
		OrderBy("c.created_at ASC")
	courses, err := r.selectMany(ctx, sb, false)
	if err != nil {
		return nil, err
	}
	for _, c := range courses {
		out[c.Bootcamp.ID] = append(out[c.Bootcamp.ID], c)
	}
	return out, nil
}

// CountAll returns the number of stored courses
func (r *CourseRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return total, nil
}

// GetByID retrieves a course with its bootcamp summary
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	sqlStr, args, err := selectCourses(true).
		Where(squirrel.Eq{"c.id": id.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	c, err := scanCourse(r.db.QueryRow(ctx, sqlStr, args...), true)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return c, nil
}

// Create inserts c, assigning its ID and creation time when unset
func (r *CourseRepository) Create(ctx context.Context, c *models.Course) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	sqlStr, args, err := psql.Insert("courses").
		Columns("id", "title", "description", "weeks", "tuition",
			"minimum_skill", "scholarship_available", "created_at", "bootcamp_id").
		Values(c.ID.String(), c.Title, c.Description, c.Weeks, c.Tuition,
			string(c.MinimumSkill), c.ScholarshipAvailable, c.CreatedAt, c.Bootcamp.ID.String()).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building insert: %w", err)
	}

	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		// The bootcamp can disappear between the service's check and the insert.
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrBootcampNotFound
		}
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of u and returns the updated course
func (r *CourseRepository) Update(ctx context.Context, id uuid.UUID, u *models.CourseUpdate) (*models.Course, error) {
	set := courseSetMap(u)
	if len(set) == 0 {
		return r.getUnpopulated(ctx, id)
	}

	sqlStr, args, err := psql.Update("courses").
		SetMap(set).
		Where(squirrel.Eq{"id": id.String()}).
		Suffix(returningCourse).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building update: %w", err)
	}

	c, err := scanCourse(r.db.QueryRow(ctx, sqlStr, args...), false)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	return c, nil
}

func (r *CourseRepository) getUnpopulated(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	sqlStr, args, err := selectCourses(false).Where(squirrel.Eq{"c.id": id.String()}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}
	c, err := scanCourse(r.db.QueryRow(ctx, sqlStr, args...), false)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return c, nil
}

func courseSetMap(u *models.CourseUpdate) map[string]interface{} {
	set := make(map[string]interface{})
	if u == nil {
		return set
	}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Weeks != nil {
		set["weeks"] = *u.Weeks
	}
	if u.Tuition != nil {
		set["tuition"] = *u.Tuition
	}
	if u.MinimumSkill != nil {
		set["minimum_skill"] = string(*u.MinimumSkill)
	}
	if u.ScholarshipAvailable != nil {
		set["scholarship_available"] = *u.ScholarshipAvailable
	}
	return set
}

// Delete removes a course and returns the removed row
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	sqlStr, args, err := psql.Delete("courses").
		Where(squirrel.Eq{"id": id.String()}).
		Suffix(returningCourse).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building delete: %w", err)
	}

	c, err := scanCourse(r.db.QueryRow(ctx, sqlStr, args...), false)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error deleting course: %w", err)
	}
	return c, nil
}

// DeleteByBootcamp removes every course of a bootcamp and returns how many
// were removed
func (r *CourseRepository) DeleteByBootcamp(ctx context.Context, bootcampID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE bootcamp_id = $1`, bootcampID.String())
	if err != nil {
		return 0, fmt.Errorf("error deleting courses of bootcamp: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteAll removes every course and returns how many were removed
func (r *CourseRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses`)
	if err != nil {
		return 0, fmt.Errorf("error deleting courses: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CourseRepository) selectMany(ctx context.Context, sb squirrel.SelectBuilder, populated bool) ([]*models.Course, error) {
	sqlStr, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		c, err := scanCourse(rows, populated)
		if err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}
	return courses, nil
}
