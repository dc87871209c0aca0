package expense

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Columns is the exact header the input file must carry, in any order.
var Columns = []string{"city", "country_code", "local_currency", "amount"}

// SchemaError reports an input header that does not match Columns.
// It is the only fatal error class in the pipeline.
type SchemaError struct {
	Missing    []string
	Unexpected []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid headers: expected %v, missing %v, unexpected %v",
		Columns, e.Missing, e.Unexpected)
}

// ReadFile loads all rows of the input CSV, in file order.
func ReadFile(path string) ([]SourceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Read(f)
}

// Read loads all rows from r. The header row must contain exactly the four
// required column names; anything else fails before a single row is parsed.
func Read(r io.Reader) ([]SourceRecord, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reader.Read header > %w", err)
	}
	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []SourceRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reader.Read row > %w", err)
		}
		records = append(records, SourceRecord{
			City:          row[index["city"]],
			CountryCode:   row[index["country_code"]],
			LocalCurrency: row[index["local_currency"]],
			Amount:        row[index["amount"]],
		})
	}
	return records, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	var unexpected []string
	for i, name := range header {
		name = strings.TrimSpace(name)
		if !isRequiredColumn(name) {
			unexpected = append(unexpected, name)
			continue
		}
		index[name] = i
	}

	var missing []string
	for _, name := range Columns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 || len(unexpected) > 0 {
		sort.Strings(missing)
		sort.Strings(unexpected)
		return nil, &SchemaError{Missing: missing, Unexpected: unexpected}
	}
	return index, nil
}

func isRequiredColumn(name string) bool {
	for _, col := range Columns {
		if name == col {
			return true
		}
	}
	return false
}
