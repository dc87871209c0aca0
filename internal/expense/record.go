package expense

import (
	"math"
	"strconv"
	"strings"
)

// SourceRecord holds the raw fields of one input row, untouched except for
// column mapping. It only lives until the row has been enriched.
type SourceRecord struct {
	City          string
	CountryCode   string
	LocalCurrency string
	Amount        string
}

// EnrichedRecord is one output row. Every pointer field is either fully
// populated by a successful lookup or nil; a lookup never fills a field
// partially. RetrievedAt is always set.
type EnrichedRecord struct {
	City          string   `json:"city"`
	CountryCode   string   `json:"country_code"`
	LocalCurrency string   `json:"local_currency"`
	AmountLocal   *float64 `json:"amount_local"`
	FXRateToUSD   *float64 `json:"fx_rate_to_usd"`
	AmountUSD     *float64 `json:"amount_usd"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	TemperatureC  *float64 `json:"temperature_c"`
	WindSpeedMPS  *float64 `json:"wind_speed_mps"`
	RetrievedAt   string   `json:"retrieved_at"`
}

// ParseAmount parses a raw amount cell into a non-negative value.
// Negative, non-finite and non-numeric inputs are all rejected the same way
// so that they never reach currency conversion.
func ParseAmount(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
