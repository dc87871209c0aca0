// Package enrich augments expense rows with geocoding, current weather and
// USD conversion results. Lookups degrade to absent fields; enriching a row
// cannot fail.
package enrich

import (
	"context"
	"strings"
	"time"

	"github.com/asakura-dev/enricher/internal/expense"
	"github.com/asakura-dev/enricher/internal/lookup"
	"github.com/fatih/color"
)

// GeocodeLookup resolves a place to coordinates.
type GeocodeLookup interface {
	Lookup(ctx context.Context, city, countryCode string) (lookup.Coordinates, bool)
}

// WeatherLookup fetches current conditions for coordinates.
type WeatherLookup interface {
	Current(ctx context.Context, latitude, longitude float64) (lookup.Conditions, bool)
}

// CurrencyLookup converts a local-currency amount to USD.
type CurrencyLookup interface {
	ConvertToUSD(ctx context.Context, currency string, amount float64) (lookup.Conversion, bool)
}

type Enricher struct {
	geocode  GeocodeLookup
	weather  WeatherLookup
	currency CurrencyLookup

	verbose bool
	now     func() time.Time
}

type Option func(*Enricher)

// WithVerbose prints a progress line per lookup to the terminal.
func WithVerbose(verbose bool) Option {
	return func(e *Enricher) {
		e.verbose = verbose
	}
}

// withNow overrides the clock for tests.
func withNow(now func() time.Time) Option {
	return func(e *Enricher) {
		e.now = now
	}
}

func NewEnricher(geocode GeocodeLookup, weather WeatherLookup, currency CurrencyLookup, options ...Option) *Enricher {
	enricher := &Enricher{
		geocode:  geocode,
		weather:  weather,
		currency: currency,
		now:      time.Now,
	}
	for _, option := range options {
		option(enricher)
	}
	return enricher
}

// EnrichRow assembles the enriched record for one source row. Weather is
// only attempted once geocoding has produced coordinates; conversion is only
// attempted for a valid amount and a non-empty currency code. Each lookup is
// attempted exactly once.
func (e *Enricher) EnrichRow(ctx context.Context, row expense.SourceRecord) expense.EnrichedRecord {
	city := strings.TrimSpace(row.City)
	countryCode := strings.TrimSpace(row.CountryCode)
	currency := strings.TrimSpace(row.LocalCurrency)

	record := expense.EnrichedRecord{
		City:          city,
		CountryCode:   countryCode,
		LocalCurrency: currency,
		RetrievedAt:   e.now().UTC().Truncate(time.Second).Format(time.RFC3339),
	}

	amount, amountValid := expense.ParseAmount(row.Amount)
	if amountValid {
		record.AmountLocal = &amount
	}

	if coordinates, ok := e.geocode.Lookup(ctx, city, countryCode); ok {
		record.Latitude = &coordinates.Latitude
		record.Longitude = &coordinates.Longitude
		e.progressf(color.FgGreen, "[geo] %s, %s -> (%g, %g)", city, countryCode, coordinates.Latitude, coordinates.Longitude)
	} else {
		e.progressf(color.FgYellow, "[geo] %s, %s -> not found", city, countryCode)
	}

	if record.Latitude != nil && record.Longitude != nil {
		if conditions, ok := e.weather.Current(ctx, *record.Latitude, *record.Longitude); ok {
			record.TemperatureC = &conditions.TemperatureC
			record.WindSpeedMPS = &conditions.WindSpeedMPS
			e.progressf(color.FgGreen, "[wx ] %s: %g°C, %g m/s", city, conditions.TemperatureC, conditions.WindSpeedMPS)
		} else {
			e.progressf(color.FgYellow, "[wx ] %s: not available", city)
		}
	}

	if amountValid && currency != "" {
		if conversion, ok := e.currency.ConvertToUSD(ctx, currency, amount); ok {
			record.FXRateToUSD = &conversion.RateToUSD
			record.AmountUSD = &conversion.AmountUSD
			e.progressf(color.FgGreen, "[fx ] %s: 1 %s -> %g USD; %g -> %g USD", city, currency, conversion.RateToUSD, amount, conversion.AmountUSD)
		} else {
			e.progressf(color.FgYellow, "[fx ] %s: FX not available", city)
		}
	}

	return record
}

func (e *Enricher) progressf(attribute color.Attribute, format string, args ...any) {
	if !e.verbose {
		return
	}
	color.New(attribute).Printf(format+"\n", args...)
}
