package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GeoPointType is the GeoJSON type of a bootcamp location
const GeoPointType = "Point"

// Location is the geocoded position of a bootcamp. Coordinates are stored as
// [longitude, latitude], the GeoJSON order.
type Location struct {
	Type             string     `json:"type"`
	Coordinates      [2]float64 `json:"coordinates"`
	FormattedAddress string     `json:"formattedAddress,omitempty"`
	Street           string     `json:"street,omitempty"`
	City             string     `json:"city,omitempty"`
	State            string     `json:"state,omitempty"`
	Zipcode          string     `json:"zipcode,omitempty"`
	Country          string     `json:"country,omitempty"`
}

// Longitude returns the first coordinate
func (l Location) Longitude() float64 { return l.Coordinates[0] }

// Latitude returns the second coordinate
func (l Location) Latitude() float64 { return l.Coordinates[1] }

// NewPoint builds a Location from a latitude/longitude pair
func NewPoint(lat, lng float64) Location {
	return Location{Type: GeoPointType, Coordinates: [2]float64{lng, lat}}
}

// Bootcamp is a coding-education provider listed in the directory
type Bootcamp struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Website       string    `json:"website,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Location      *Location `json:"location,omitempty"`
	Careers       []string  `json:"careers"`
	AverageRating *float64  `json:"averageRating,omitempty"`
	AverageCost   *float64  `json:"averageCost,omitempty"`
	Photo         string    `json:"photo"`
	Housing       bool      `json:"housing"`
	JobAssistance bool      `json:"jobAssistance"`
	JobGuarantee  bool      `json:"jobGuarantee"`
	AcceptGi      bool      `json:"acceptGi"`
	CreatedAt     time.Time `json:"createdAt"`

	// Courses is nil unless the listing attached them
	Courses []*Course `json:"courses,omitempty"`
}

// MarshalJSON renders attached courses even when the list is empty, and
// leaves the key out when none were attached
func (b Bootcamp) MarshalJSON() ([]byte, error) {
	type plain Bootcamp
	out := struct {
		plain
		Courses *[]*Course `json:"courses,omitempty"`
	}{plain: plain(b)}
	if b.Courses != nil {
		out.Courses = &b.Courses
	}
	return json.Marshal(out)
}

// BootcampUpdate is a partial update; nil fields are left unchanged.
type BootcampUpdate struct {
	Name          *string
	Description   *string
	Website       *string
	Phone         *string
	Email         *string
	Careers       *[]string
	AverageRating *float64
	AverageCost   *float64
	Photo         *string
	Housing       *bool
	JobAssistance *bool
	JobGuarantee  *bool
	AcceptGi      *bool
}
