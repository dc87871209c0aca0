package lookup

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Coordinates is the payload of a successful geocode lookup.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// GeocodeClient resolves a city and country code to coordinates through a
// geocoding search endpoint, requesting a single best match.
type GeocodeClient struct {
	httpClient *resty.Client
	url        string
}

func NewGeocodeClient(httpClient *resty.Client, url string) *GeocodeClient {
	return &GeocodeClient{
		httpClient: httpClient,
		url:        url,
	}
}

type geocodeResponse struct {
	Results []struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	} `json:"results"`
}

// Lookup returns the best match for the city, or ok=false if the service
// had no match or could not be reached.
func (c *GeocodeClient) Lookup(ctx context.Context, city, countryCode string) (Coordinates, bool) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"name":    city,
			"country": countryCode,
			"count":   "1",
		}).
		Get(c.url)
	if err != nil {
		slog.Debug("geocode request failed", "city", city, "error", err)
		return Coordinates{}, false
	}
	if res.StatusCode() != http.StatusOK {
		slog.Debug("geocode returned non-success status", "city", city, "status", res.StatusCode())
		return Coordinates{}, false
	}

	var body geocodeResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		slog.Debug("geocode response malformed", "city", city, "error", err)
		return Coordinates{}, false
	}
	if len(body.Results) == 0 {
		return Coordinates{}, false
	}
	hit := body.Results[0]
	if hit.Latitude == nil || hit.Longitude == nil {
		return Coordinates{}, false
	}
	return Coordinates{Latitude: *hit.Latitude, Longitude: *hit.Longitude}, true
}
