package expense

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string

		want            []SourceRecord
		wantError       bool
		wantErrorString string
	}{
		{
			name: "canonical column order",
			input: "city,country_code,local_currency,amount\n" +
				"Berlin,DE,EUR,89.90\n" +
				"Lima,PE,PEN,120\n",
			want: []SourceRecord{
				{City: "Berlin", CountryCode: "DE", LocalCurrency: "EUR", Amount: "89.90"},
				{City: "Lima", CountryCode: "PE", LocalCurrency: "PEN", Amount: "120"},
			},
		},
		{
			name: "shuffled column order",
			input: "amount,local_currency,city,country_code\n" +
				"89.90,EUR,Berlin,DE\n",
			want: []SourceRecord{
				{City: "Berlin", CountryCode: "DE", LocalCurrency: "EUR", Amount: "89.90"},
			},
		},
		{
			name:  "no data rows",
			input: "city,country_code,local_currency,amount\n",
			want:  nil,
		},
		{
			name: "missing amount column",
			input: "city,country_code,local_currency\n" +
				"Berlin,DE,EUR\n",
			wantError:       true,
			wantErrorString: "missing [amount]",
		},
		{
			name: "unexpected extra column",
			input: "city,country_code,local_currency,amount,notes\n" +
				"Berlin,DE,EUR,89.90,ok\n",
			wantError:       true,
			wantErrorString: "unexpected [notes]",
		},
		{
			name:            "missing and unexpected columns reported together",
			input:           "city,country,currency,amount\n",
			wantError:       true,
			wantErrorString: "missing [country_code local_currency], unexpected [country currency]",
		},
		{
			name:            "empty file",
			input:           "",
			wantError:       true,
			wantErrorString: "reader.Read header",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tc.input))
			if tc.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErrorString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRead_SchemaErrorType(t *testing.T) {
	_, err := Read(strings.NewReader("city,country_code,local_currency\n"))
	require.Error(t, err)

	schemaErr, ok := err.(*SchemaError)
	require.True(t, ok)
	assert.Equal(t, []string{"amount"}, schemaErr.Missing)
	assert.Empty(t, schemaErr.Unexpected)
}

func TestRead_PreservesRowOrder(t *testing.T) {
	var builder strings.Builder
	builder.WriteString("city,country_code,local_currency,amount\n")
	cities := []string{"Berlin", "Lima", "Oslo", "Accra", "Hanoi", "Quito"}
	for _, city := range cities {
		builder.WriteString(city + ",XX,USD,1\n")
	}

	got, err := Read(strings.NewReader(builder.String()))
	require.NoError(t, err)
	require.Len(t, got, len(cities))
	for i, city := range cities {
		assert.Equal(t, city, got[i].City)
	}
}
