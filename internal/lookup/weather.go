package lookup

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// Conditions is the payload of a successful current-weather lookup.
type Conditions struct {
	TemperatureC float64
	WindSpeedMPS float64
}

// WeatherClient fetches instantaneous conditions for known coordinates.
type WeatherClient struct {
	httpClient *resty.Client
	url        string
}

func NewWeatherClient(httpClient *resty.Client, url string) *WeatherClient {
	return &WeatherClient{
		httpClient: httpClient,
		url:        url,
	}
}

type weatherResponse struct {
	CurrentWeather *struct {
		Temperature *float64 `json:"temperature"`
		WindSpeed   *float64 `json:"windspeed"`
	} `json:"current_weather"`
}

// Current returns the conditions at the coordinates, or ok=false if the
// service could not provide them.
func (c *WeatherClient) Current(ctx context.Context, latitude, longitude float64) (Conditions, bool) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":        strconv.FormatFloat(latitude, 'f', -1, 64),
			"longitude":       strconv.FormatFloat(longitude, 'f', -1, 64),
			"current_weather": "true",
		}).
		Get(c.url)
	if err != nil {
		slog.Debug("weather request failed", "latitude", latitude, "longitude", longitude, "error", err)
		return Conditions{}, false
	}
	if res.StatusCode() != http.StatusOK {
		slog.Debug("weather returned non-success status", "status", res.StatusCode())
		return Conditions{}, false
	}

	var body weatherResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		slog.Debug("weather response malformed", "error", err)
		return Conditions{}, false
	}
	if body.CurrentWeather == nil {
		return Conditions{}, false
	}
	current := body.CurrentWeather
	if current.Temperature == nil || current.WindSpeed == nil {
		return Conditions{}, false
	}
	return Conditions{TemperatureC: *current.Temperature, WindSpeedMPS: *current.WindSpeed}, true
}
