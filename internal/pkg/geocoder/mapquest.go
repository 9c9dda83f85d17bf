package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/logger"
)

// DefaultMapQuestURL is the MapQuest address endpoint
const DefaultMapQuestURL = "https://www.mapquestapi.com/geocoding/v1/address"

// MapQuest geocodes through the MapQuest Geocoding API
type MapQuest struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewMapQuest creates a MapQuest client
func NewMapQuest(cfg Config) *MapQuest {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultMapQuestURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MapQuest{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type mapQuestResponse struct {
	Info struct {
		StatusCode int      `json:"statuscode"`
		Messages   []string `json:"messages"`
	} `json:"info"`
	Results []struct {
		Locations []struct {
			Street     string `json:"street"`
			AdminArea5 string `json:"adminArea5"` // city
			AdminArea3 string `json:"adminArea3"` // state
			AdminArea1 string `json:"adminArea1"` // country
			PostalCode string `json:"postalCode"`
			LatLng     struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"latLng"`
		} `json:"locations"`
	} `json:"results"`
}

// Geocode implements Geocoder
func (m *MapQuest) Geocode(ctx context.Context, address string) ([]Location, error) {
	params := url.Values{}
	params.Set("key", m.apiKey)
	params.Set("location", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", apperrors.ErrGeocodingFailed, err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("address", address).Msg("MapQuest request failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGeocodingFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrGeocodingFailed, resp.StatusCode)
	}

	var body mapQuestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", apperrors.ErrGeocodingFailed, err)
	}
	if body.Info.StatusCode != 0 {
		return nil, fmt.Errorf("%w: status %d: %s", apperrors.ErrGeocodingFailed,
			body.Info.StatusCode, strings.Join(body.Info.Messages, "; "))
	}

	var locations []Location
	for _, result := range body.Results {
		for _, l := range result.Locations {
			locations = append(locations, Location{
				Latitude:    l.LatLng.Lat,
				Longitude:   l.LatLng.Lng,
				Street:      l.Street,
				City:        l.AdminArea5,
				State:       l.AdminArea3,
				Zipcode:     l.PostalCode,
				CountryCode: l.AdminArea1,
			})
		}
	}
	return locations, nil
}
