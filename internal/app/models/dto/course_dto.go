package dto

import (
	"github.com/google/uuid"

	"github.com/yigit/devcamper/internal/app/models"
)

// CreateCourseRequest is the body of POST /bootcamps/:id/courses
type CreateCourseRequest struct {
	Title                string   `json:"title" binding:"required" msg:"required=Please add a course title" example:"Front End Web Development"`
	Description          string   `json:"description" binding:"required" msg:"required=Please add a description"`
	Weeks                int      `json:"weeks" binding:"required,min=1" msg:"required=Please add number of weeks;min=Please add number of weeks" example:"8"`
	Tuition              *float64 `json:"tuition" binding:"required,min=0" msg:"required=Please add a tuition cost;min=Tuition can not be negative" example:"8000"`
	MinimumSkill         string   `json:"minimumSkill" binding:"required,oneof=beginner intermediate advanced" msg:"required=Please add a minimum skill;oneof=Minimum skill must be one of beginner, intermediate, advanced" example:"beginner"`
	ScholarshipAvailable bool     `json:"scholarshipAvailable"`
}

// ToModel converts the request into a course owned by bootcampID
func (r *CreateCourseRequest) ToModel(bootcampID uuid.UUID) *models.Course {
	var tuition float64
	if r.Tuition != nil {
		tuition = *r.Tuition
	}
	return &models.Course{
		Title:                r.Title,
		Description:          r.Description,
		Weeks:                r.Weeks,
		Tuition:              tuition,
		MinimumSkill:         models.SkillLevel(r.MinimumSkill),
		ScholarshipAvailable: r.ScholarshipAvailable,
		Bootcamp:             models.BootcampRef{ID: bootcampID},
	}
}

// UpdateCourseRequest is the body of PUT /courses/:id
type UpdateCourseRequest struct {
	Title                *string  `json:"title" binding:"omitnil,required" msg:"required=Please add a course title"`
	Description          *string  `json:"description" binding:"omitnil,required" msg:"required=Please add a description"`
	Weeks                *int     `json:"weeks" binding:"omitnil,min=1" msg:"min=Please add number of weeks"`
	Tuition              *float64 `json:"tuition" binding:"omitnil,min=0" msg:"min=Tuition can not be negative"`
	MinimumSkill         *string  `json:"minimumSkill" binding:"omitnil,oneof=beginner intermediate advanced" msg:"oneof=Minimum skill must be one of beginner, intermediate, advanced"`
	ScholarshipAvailable *bool    `json:"scholarshipAvailable"`
}

// ToUpdate converts the request into a partial update
func (r *UpdateCourseRequest) ToUpdate() *models.CourseUpdate {
	u := &models.CourseUpdate{
		Title:                r.Title,
		Description:          r.Description,
		Weeks:                r.Weeks,
		Tuition:              r.Tuition,
		ScholarshipAvailable: r.ScholarshipAvailable,
	}
	if r.MinimumSkill != nil {
		skill := models.SkillLevel(*r.MinimumSkill)
		u.MinimumSkill = &skill
	}
	return u
}
