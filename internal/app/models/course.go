package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BootcampSummary is the subset of a bootcamp embedded in a populated course
type BootcampSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// BootcampRef is a course's back-reference to its owning bootcamp. It renders
// as the bare id unless Summary has been populated.
type BootcampRef struct {
	ID      uuid.UUID
	Summary *BootcampSummary
}

// MarshalJSON implements json.Marshaler
func (r BootcampRef) MarshalJSON() ([]byte, error) {
	if r.Summary != nil {
		return json.Marshal(r.Summary)
	}
	return json.Marshal(r.ID)
}

// Course represents a program offered by a bootcamp.
type Course struct {
	ID                   uuid.UUID   `json:"id"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	Weeks                int         `json:"weeks"`
	Tuition              float64     `json:"tuition"`
	MinimumSkill         SkillLevel  `json:"minimumSkill"`
	ScholarshipAvailable bool        `json:"scholarshipAvailable"`
	CreatedAt            time.Time   `json:"createdAt"`
	Bootcamp             BootcampRef `json:"bootcamp"`
}

// CourseUpdate is a partial update; nil fields are left unchanged.
type CourseUpdate struct {
	Title                *string
	Description          *string
	Weeks                *int
	Tuition              *float64
	MinimumSkill         *SkillLevel
	ScholarshipAvailable *bool
}
