// Package geocoder resolves addresses and postal codes to coordinates.
package geocoder

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Location is one geocoding match
type Location struct {
	Latitude    float64
	Longitude   float64
	Street      string
	City        string
	State       string
	Zipcode     string
	CountryCode string
}

// FormattedAddress joins the address parts the way a postal label reads,
// e.g. "233 Bay State Rd, Boston, MA 02215, US".
func (l Location) FormattedAddress() string {
	var parts []string
	if l.Street != "" {
		parts = append(parts, l.Street)
	}
	if l.City != "" {
		parts = append(parts, l.City)
	}
	if region := strings.TrimSpace(l.State + " " + l.Zipcode); region != "" {
		parts = append(parts, region)
	}
	if l.CountryCode != "" {
		parts = append(parts, l.CountryCode)
	}
	return strings.Join(parts, ", ")
}

// Geocoder maps a free-form address to zero or more locations, best match first.
type Geocoder interface {
	Geocode(ctx context.Context, address string) ([]Location, error)
}

// Providers
const (
	ProviderMapQuest = "mapquest"
)

// Config selects and configures a provider
type Config struct {
	Provider string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
}

// New creates the geocoder named by cfg.Provider
func New(cfg Config) (Geocoder, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderMapQuest, "":
		return NewMapQuest(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported geocoder provider %q", cfg.Provider)
	}
}
