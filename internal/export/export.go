// Package export writes the dataset and report aggregates as CSV and XLSX.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/automobile-sales/internal/dataset"
	"github.com/iwvelando/automobile-sales/internal/report"
)

// DatasetHeader names the dataset columns in export order.
var DatasetHeader = []string{
	"Date", "Recession", "Automobile_Sales", "GDP", "unemployment_rate",
	"Consumer_Confidence", "Seasonality_Weight", "Price",
	"Advertising_Expenditure", "Vehicle_Type", "Competition", "Month", "Year",
}

// ReportHeader names the columns of a flattened report.
var ReportHeader = []string{"aggregate", "key", "series", "value", "count"}

// WriteDatasetCSV writes every record of t as one CSV row.
func WriteDatasetCSV(w io.Writer, t *dataset.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(DatasetHeader); err != nil {
		return fmt.Errorf("failed to write dataset header: %w", err)
	}
	for i := 0; i < t.Len(); i++ {
		if err := cw.Write(datasetRow(t.At(i))); err != nil {
			return fmt.Errorf("failed to write dataset row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReportCSV writes all aggregates of r, one row per point.
func WriteReportCSV(w io.Writer, r report.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ReportHeader); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	for _, aggregate := range r.Aggregates {
		for _, point := range aggregate.Points {
			row := []string{
				aggregate.Name,
				point.Key,
				point.Series,
				formatFloat(point.Value),
				strconv.Itoa(point.Count),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write %s row: %w", aggregate.Name, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func datasetRow(r dataset.SalesRecord) []string {
	recession := "0"
	if r.Recession {
		recession = "1"
	}
	return []string{
		r.Date.Format("2006-01-02"),
		recession,
		strconv.Itoa(r.AutomobileSales),
		formatFloat(r.GDP),
		formatFloat(r.UnemploymentRate),
		formatFloat(r.ConsumerConfidence),
		formatFloat(r.SeasonalityWeight),
		formatFloat(r.Price),
		formatFloat(r.AdvertisingExpenditure),
		r.VehicleType.String(),
		formatFloat(r.Competition),
		strconv.Itoa(r.Month),
		strconv.Itoa(r.Year),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
