package main

import (
	"fmt"

	"github.com/asakura-dev/enricher/internal/config"
	"github.com/asakura-dev/enricher/internal/enrich"
	"github.com/asakura-dev/enricher/internal/expense"
	"github.com/asakura-dev/enricher/internal/lookup"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Format string

func (f *Format) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) Type() string {
	return "Format"
}

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

var (
	_          pflag.Value = (*Format)(nil)
	allFormats             = []Format{FormatJSON, FormatCSV}
)

func newEnrichCommand() *cobra.Command {
	var (
		input   string
		output  string
		pretty  bool
		workers int
	)
	format := FormatJSON

	command := &cobra.Command{
		Use:   "enrich",
		Short: "Read expense rows from a CSV file, enrich them and write JSON or CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			rows, err := expense.ReadFile(input)
			if err != nil {
				return fmt.Errorf("expense.ReadFile > %w", err)
			}

			httpClient := lookup.NewHTTPClient(cfg.Services.Timeout())
			enricher := enrich.NewEnricher(
				lookup.NewGeocodeClient(httpClient, cfg.Services.GeocodingURL),
				lookup.NewWeatherClient(httpClient, cfg.Services.WeatherURL),
				lookup.NewCurrencyClient(httpClient, cfg.Services.FXURL),
				enrich.WithVerbose(verbose),
			)

			if workers <= 0 {
				workers = cfg.Workers
			}
			records := enricher.EnrichAll(cmd.Context(), rows, workers)

			switch format {
			case FormatCSV:
				err = expense.WriteCSVFile(output, records)
			case FormatJSON:
				fallthrough
			default:
				err = expense.WriteJSONFile(output, records, pretty)
			}
			if err != nil {
				return fmt.Errorf("failed to write %s output: %w", format, err)
			}

			if verbose {
				fmt.Printf("Wrote %d rows to %s\n", len(records), output)
			}
			return nil
		},
	}

	flags := command.Flags()
	flags.StringVarP(&input, "input", "i", "expenses.csv", "input CSV path")
	flags.StringVarP(&output, "output", "o", "enriched.json", "output file path")
	flags.Var(&format, "format", fmt.Sprintf("output format. Possible values are %v", allFormats))
	flags.BoolVar(&pretty, "pretty", false, "pretty-print JSON output")
	flags.IntVar(&workers, "workers", 0, "parallel workers (default: CPU count, minimum 4)")

	return command
}
