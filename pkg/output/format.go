// Package output provides utilities for formatting and displaying reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iwvelando/automobile-sales/internal/dataset"
	"github.com/iwvelando/automobile-sales/internal/export"
	"github.com/iwvelando/automobile-sales/internal/report"
	"github.com/iwvelando/automobile-sales/pkg/constants"
	"github.com/iwvelando/automobile-sales/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Write renders r to w in the given output format.
func Write(w io.Writer, outputFormat string, r report.Report) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, r)
	case constants.OutputFormatCSV:
		return export.WriteReportCSV(w, r)
	case constants.OutputFormatJSON:
		return JSONFormat(w, r)
	default:
		return fmt.Errorf("unsupported output format %s", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, r report.Report) error {
	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "=== %s ===\n", r.Selection); err != nil {
		return err
	}

	for _, aggregate := range r.Aggregates {
		if _, err := p.Fprintf(w, "\n--- %s ---\n", aggregate.Title); err != nil {
			return err
		}
		if aggregate.Empty() {
			if _, err := fmt.Fprintln(w, "(no data)"); err != nil {
				return err
			}
			continue
		}

		series := len(aggregate.SeriesNames()) > 0
		shares := aggregate.Shares()
		for i, point := range aggregate.Points {
			label := point.Key
			if series {
				label = fmt.Sprintf("%s / %s", point.Key, point.Series)
			}

			var err error
			switch aggregate.Chart {
			case report.ChartPie:
				_, err = p.Fprintf(w, "%-24s | %15s | %s\n", label, format.Currency(point.Value), format.Percent(shares[i]))
			default:
				_, err = p.Fprintf(w, "%-24s | %15s\n", label, format.Number(point.Value, 2))
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// JSONFormat writes the report as indented JSON.
func JSONFormat(w io.Writer, r report.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// SummaryFormat prints headline figures of the table.
func SummaryFormat(w io.Writer, s dataset.Summary) error {
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w,
		"Seed:                      %d\n"+
			"Records:                   %d\n"+
			"Recession records:         %d\n"+
			"Years:                     %s\n"+
			"Mean sales:                %.2f\n"+
			"Mean sales (recession):    %.2f\n"+
			"Mean sales (no recession): %.2f\n"+
			"Total advertising:         %s\n",
		s.Seed, s.Records, s.RecessionRecords, fmt.Sprintf("%d-%d", s.FirstYear, s.LastYear),
		s.MeanSales, s.MeanRecessionSales, s.MeanNormalSales,
		format.Currency(s.TotalAdSpend),
	)
	return err
}
