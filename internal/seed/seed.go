// Package seed loads the bundled sample bootcamps and courses into the
// database, or removes all data.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	appModels "github.com/yigit/devcamper/internal/app/models"
	appRepos "github.com/yigit/devcamper/internal/app/repositories"
	"github.com/yigit/devcamper/internal/db"
)

//go:embed data/*.json
var data embed.FS

// courseFixture is a course as written in courses.json, with the owning
// bootcamp given by id
type courseFixture struct {
	ID                   uuid.UUID            `json:"id"`
	Title                string               `json:"title"`
	Description          string               `json:"description"`
	Weeks                int                  `json:"weeks"`
	Tuition              float64              `json:"tuition"`
	MinimumSkill         appModels.SkillLevel `json:"minimumSkill"`
	ScholarshipAvailable bool                 `json:"scholarshipAvailable"`
	Bootcamp             uuid.UUID            `json:"bootcamp"`
}

// Fixtures is the parsed sample data
type Fixtures struct {
	Bootcamps []*appModels.Bootcamp
	Courses   []*appModels.Course
}

// Load parses the embedded fixtures. Every course must reference a bootcamp
// of the same set, and every career must be a known track.
func Load() (*Fixtures, error) {
	var bootcamps []*appModels.Bootcamp
	if err := readJSON("data/bootcamps.json", &bootcamps); err != nil {
		return nil, err
	}

	known := make(map[uuid.UUID]bool, len(bootcamps))
	for _, b := range bootcamps {
		for _, career := range b.Careers {
			if !appModels.IsValidCareer(career) {
				return nil, fmt.Errorf("bootcamp %q lists unknown career %q", b.Name, career)
			}
		}
		if b.Slug == "" {
			b.Slug = slug.Make(b.Name)
		}
		if b.Photo == "" {
			b.Photo = appModels.DefaultPhoto
		}
		known[b.ID] = true
	}

	var fixtures []courseFixture
	if err := readJSON("data/courses.json", &fixtures); err != nil {
		return nil, err
	}

	courses := make([]*appModels.Course, 0, len(fixtures))
	for _, f := range fixtures {
		if !known[f.Bootcamp] {
			return nil, fmt.Errorf("course %q references unknown bootcamp %s", f.Title, f.Bootcamp)
		}
		courses = append(courses, &appModels.Course{
			ID:                   f.ID,
			Title:                f.Title,
			Description:          f.Description,
			Weeks:                f.Weeks,
			Tuition:              f.Tuition,
			MinimumSkill:         f.MinimumSkill,
			ScholarshipAvailable: f.ScholarshipAvailable,
			Bootcamp:             appModels.BootcampRef{ID: f.Bootcamp},
		})
	}

	return &Fixtures{Bootcamps: bootcamps, Courses: courses}, nil
}

func readJSON(name string, v interface{}) error {
	raw, err := data.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// Import inserts the fixtures in one transaction
func Import(ctx context.Context, database *db.PostgresDB, fx *Fixtures, lgr zerolog.Logger) error {
	err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repos := appRepos.NewRepositories(tx)
		for _, b := range fx.Bootcamps {
			if err := repos.BootcampRepository.Create(ctx, b); err != nil {
				return fmt.Errorf("bootcamp %q: %w", b.Name, err)
			}
		}
		for _, c := range fx.Courses {
			if err := repos.CourseRepository.Create(ctx, c); err != nil {
				return fmt.Errorf("course %q: %w", c.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to import data: %w", err)
	}

	lgr.Info().
		Int("bootcamps", len(fx.Bootcamps)).
		Int("courses", len(fx.Courses)).
		Msg("Data imported")
	return nil
}

// Destroy deletes every course and bootcamp in one transaction
func Destroy(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	var courses, bootcamps int64
	err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repos := appRepos.NewRepositories(tx)
		var err error
		if courses, err = repos.CourseRepository.DeleteAll(ctx); err != nil {
			return err
		}
		bootcamps, err = repos.BootcampRepository.DeleteAll(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete data: %w", err)
	}

	lgr.Info().
		Int64("bootcamps", bootcamps).
		Int64("courses", courses).
		Msg("Data deleted")
	return nil
}
