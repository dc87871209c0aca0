package expense

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Pointer(v float64) *float64 {
	return &v
}

func TestWriteJSON(t *testing.T) {
	records := []EnrichedRecord{
		{
			City:          "Berlin",
			CountryCode:   "DE",
			LocalCurrency: "EUR",
			AmountLocal:   float64Pointer(89.9),
			FXRateToUSD:   float64Pointer(1.07),
			AmountUSD:     float64Pointer(96.19),
			Latitude:      float64Pointer(52.52),
			Longitude:     float64Pointer(13.405),
			TemperatureC:  float64Pointer(12.3),
			WindSpeedMPS:  float64Pointer(3.8),
			RetrievedAt:   "2025-06-01T10:00:00Z",
		},
		{
			City:          "Atlantis",
			CountryCode:   "XX",
			LocalCurrency: "",
			RetrievedAt:   "2025-06-01T10:00:00Z",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, records, false))

	// Absent optionals must appear as explicit nulls.
	assert.Contains(t, buf.String(), `"amount_local":null`)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	first := decoded[0]
	assert.Equal(t, "Berlin", first["city"])
	assert.Equal(t, 52.52, first["latitude"])
	assert.Equal(t, 96.19, first["amount_usd"])

	second := decoded[1]
	for _, key := range []string{"amount_local", "fx_rate_to_usd", "amount_usd", "latitude", "longitude", "temperature_c", "wind_speed_mps"} {
		value, ok := second[key]
		require.True(t, ok, "missing key %s", key)
		assert.Nil(t, value)
	}
}

func TestWriteJSON_EmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil, false))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestWriteJSON_Pretty(t *testing.T) {
	records := []EnrichedRecord{
		{City: "Berlin", CountryCode: "DE", LocalCurrency: "EUR", RetrievedAt: "2025-06-01T10:00:00Z"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, records, true))
	assert.Contains(t, buf.String(), "\n  {")
}

func TestWriteCSV(t *testing.T) {
	records := []EnrichedRecord{
		{
			City:          "Berlin",
			CountryCode:   "DE",
			LocalCurrency: "EUR",
			AmountLocal:   float64Pointer(89.9),
			Latitude:      float64Pointer(52.52),
			Longitude:     float64Pointer(13.405),
			RetrievedAt:   "2025-06-01T10:00:00Z",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, OutputColumns, rows[0])
	assert.Equal(t, []string{
		"Berlin", "DE", "EUR", "89.9", "", "", "52.52", "13.405", "", "", "2025-06-01T10:00:00Z",
	}, rows[1])
}

func TestWriteCSV_EmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, OutputColumns, rows[0])
}
