package expense

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// OutputColumns is the fixed header of the CSV output.
var OutputColumns = []string{
	"city", "country_code", "local_currency", "amount_local", "fx_rate_to_usd",
	"amount_usd", "latitude", "longitude", "temperature_c", "wind_speed_mps",
	"retrieved_at",
}

// WriteJSONFile serializes the records as a JSON array to path.
func WriteJSONFile(path string, records []EnrichedRecord, pretty bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return WriteJSON(f, records, pretty)
}

// WriteJSON writes the records as a JSON array. Absent optional fields are
// emitted as null so every object carries the full column set.
func WriteJSON(w io.Writer, records []EnrichedRecord, pretty bool) error {
	if records == nil {
		records = []EnrichedRecord{}
	}
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("encoder.Encode > %w", err)
	}
	return nil
}

// WriteCSVFile serializes the records as CSV to path.
func WriteCSVFile(path string, records []EnrichedRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return WriteCSV(f, records)
}

// WriteCSV writes the fixed header row and one row per record. Absent
// optional fields become empty cells.
func WriteCSV(w io.Writer, records []EnrichedRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(OutputColumns); err != nil {
		return fmt.Errorf("writer.Write header > %w", err)
	}
	for _, record := range records {
		row := []string{
			record.City,
			record.CountryCode,
			record.LocalCurrency,
			formatOptional(record.AmountLocal),
			formatOptional(record.FXRateToUSD),
			formatOptional(record.AmountUSD),
			formatOptional(record.Latitude),
			formatOptional(record.Longitude),
			formatOptional(record.TemperatureC),
			formatOptional(record.WindSpeedMPS),
			record.RetrievedAt,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writer.Write row > %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("writer.Error > %w", err)
	}
	return nil
}

func formatOptional(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
