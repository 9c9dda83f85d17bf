package dto

import (
	"github.com/yigit/devcamper/internal/app/models"
)

// CreateBootcampRequest is the body of POST /bootcamps
type CreateBootcampRequest struct {
	Name          string   `json:"name" binding:"required,max=50" msg:"required=Please add a name;max=Name can not be more than 50 characters" example:"Devworks Bootcamp"`
	Description   string   `json:"description" binding:"required,max=500" msg:"required=Please add a description;max=Description can not be more than 500 characters"`
	Website       string   `json:"website" binding:"omitempty,http_url" msg:"http_url=Please use a valid URL with HTTP or HTTPS" example:"https://devworks.com"`
	Phone         string   `json:"phone" binding:"omitempty,max=20" msg:"max=Phone number can not be longer than 20 characters" example:"(111) 111-1111"`
	Email         string   `json:"email" binding:"omitempty,email" msg:"email=Please add a valid email" example:"enroll@devworks.com"`
	Address       string   `json:"address" binding:"required" msg:"required=Please add an address" example:"233 Bay State Rd Boston MA 02215"`
	Careers       []string `json:"careers" binding:"required,min=1,dive,oneof='Web Development' 'Mobile Development' 'UI/UX' 'Data Science' 'Business' 'Other'" msg:"required=Please add at least one career;min=Please add at least one career;oneof=Career must be one of Web Development, Mobile Development, UI/UX, Data Science, Business, Other"`
	AverageRating *float64 `json:"averageRating" binding:"omitnil,min=1,max=10" msg:"min=Rating must be between 1 and 10;max=Rating must be between 1 and 10"`
	AverageCost   *float64 `json:"averageCost" binding:"omitnil,min=0" msg:"min=Average cost can not be negative"`
	Photo         string   `json:"photo"`
	Housing       bool     `json:"housing"`
	JobAssistance bool     `json:"jobAssistance"`
	JobGuarantee  bool     `json:"jobGuarantee"`
	AcceptGi      bool     `json:"acceptGi"`
}

// ToModel converts the request into a bootcamp without location or slug;
// both are derived by the service.
func (r *CreateBootcampRequest) ToModel() *models.Bootcamp {
	photo := r.Photo
	if photo == "" {
		photo = models.DefaultPhoto
	}
	return &models.Bootcamp{
		Name:          r.Name,
		Description:   r.Description,
		Website:       r.Website,
		Phone:         r.Phone,
		Email:         r.Email,
		Careers:       r.Careers,
		AverageRating: r.AverageRating,
		AverageCost:   r.AverageCost,
		Photo:         photo,
		Housing:       r.Housing,
		JobAssistance: r.JobAssistance,
		JobGuarantee:  r.JobGuarantee,
		AcceptGi:      r.AcceptGi,
	}
}

// UpdateBootcampRequest is the body of PUT /bootcamps/:id. Only fields
// present in the body are validated and written.
type UpdateBootcampRequest struct {
	Name          *string   `json:"name" binding:"omitnil,required,max=50" msg:"required=Please add a name;max=Name can not be more than 50 characters"`
	Description   *string   `json:"description" binding:"omitnil,required,max=500" msg:"required=Please add a description;max=Description can not be more than 500 characters"`
	Website       *string   `json:"website" binding:"omitnil,omitempty,http_url" msg:"http_url=Please use a valid URL with HTTP or HTTPS"`
	Phone         *string   `json:"phone" binding:"omitnil,max=20" msg:"max=Phone number can not be longer than 20 characters"`
	Email         *string   `json:"email" binding:"omitnil,omitempty,email" msg:"email=Please add a valid email"`
	Careers       *[]string `json:"careers" binding:"omitnil,min=1,dive,oneof='Web Development' 'Mobile Development' 'UI/UX' 'Data Science' 'Business' 'Other'" msg:"min=Please add at least one career;oneof=Career must be one of Web Development, Mobile Development, UI/UX, Data Science, Business, Other"`
	AverageRating *float64  `json:"averageRating" binding:"omitnil,min=1,max=10" msg:"min=Rating must be between 1 and 10;max=Rating must be between 1 and 10"`
	AverageCost   *float64  `json:"averageCost" binding:"omitnil,min=0" msg:"min=Average cost can not be negative"`
	Photo         *string   `json:"photo"`
	Housing       *bool     `json:"housing"`
	JobAssistance *bool     `json:"jobAssistance"`
	JobGuarantee  *bool     `json:"jobGuarantee"`
	AcceptGi      *bool     `json:"acceptGi"`
}

// ToUpdate converts the request into a partial update
func (r *UpdateBootcampRequest) ToUpdate() *models.BootcampUpdate {
	return &models.BootcampUpdate{
		Name:          r.Name,
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
	}
}
