package export

import (
	"fmt"
	"io"

	"github.com/iwvelando/automobile-sales/internal/dataset"
	"github.com/iwvelando/automobile-sales/internal/report"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	datasetSheet = "Dataset"
	maxSheetName = 31
	columnWidth  = 18
)

// Workbook builds a spreadsheet with a summary sheet, one sheet per
// aggregate of r and, when includeDataset is set, the full dataset. The
// caller owns the returned file and must Close it.
func Workbook(t *dataset.Table, r report.Report, includeDataset bool) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}

	if err := writeSummary(f, t, r); err != nil {
		_ = f.Close()
		return nil, err
	}

	for _, aggregate := range r.Aggregates {
		if err := writeAggregate(f, aggregate); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	if includeDataset {
		if err := writeDataset(f, t); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// WriteXLSX builds the workbook and streams it to w.
func WriteXLSX(w io.Writer, t *dataset.Table, r report.Report, includeDataset bool) error {
	f, err := Workbook(t, r, includeDataset)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveXLSX builds the workbook and saves it at path.
func SaveXLSX(path string, t *dataset.Table, r report.Report, includeDataset bool) error {
	f, err := Workbook(t, r, includeDataset)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// SheetName returns the worksheet name used for an aggregate.
func SheetName(aggregateName string) string {
	if len(aggregateName) > maxSheetName {
		return aggregateName[:maxSheetName]
	}
	return aggregateName
}

func writeSummary(f *excelize.File, t *dataset.Table, r report.Report) error {
	summary := t.Summary()
	rows := [][]interface{}{
		{"Report", r.Selection.String()},
		{"Seed", summary.Seed},
		{"Records", summary.Records},
		{"Recession records", summary.RecessionRecords},
		{"Mean sales", summary.MeanSales},
		{"Mean sales (recession)", summary.MeanRecessionSales},
		{"Mean sales (no recession)", summary.MeanNormalSales},
	}
	for _, interval := range dataset.RecessionIntervals() {
		rows = append(rows, []interface{}{
			"Recession period",
			interval.Start.Format("2006-01-02") + " to " + interval.End.Format("2006-01-02"),
		})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}
	return f.SetColWidth(summarySheet, "A", "B", 28)
}

func writeAggregate(f *excelize.File, a report.Aggregate) error {
	sheet := SheetName(a.Name)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	header := []interface{}{a.XLabel, "Series", a.YLabel, "Count"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	for i, point := range a.Points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{point.Key, point.Series, point.Value, point.Count}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	return f.SetColWidth(sheet, "A", "D", columnWidth)
}

func writeDataset(f *excelize.File, t *dataset.Table) error {
	if _, err := f.NewSheet(datasetSheet); err != nil {
		return fmt.Errorf("failed to create dataset sheet: %w", err)
	}

	header := make([]interface{}, len(DatasetHeader))
	for i, h := range DatasetHeader {
		header[i] = h
	}
	stream, err := f.NewStreamWriter(datasetSheet)
	if err != nil {
		return fmt.Errorf("failed to open dataset stream: %w", err)
	}
	if err := stream.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to stream dataset header: %w", err)
	}
	for i := 0; i < t.Len(); i++ {
		record := t.At(i)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			record.Date.Format("2006-01-02"),
			boolToInt(record.Recession),
			record.AutomobileSales,
			record.GDP,
			record.UnemploymentRate,
			record.ConsumerConfidence,
			record.SeasonalityWeight,
			record.Price,
			record.AdvertisingExpenditure,
			record.VehicleType.String(),
			record.Competition,
			record.Month,
			record.Year,
		}
		if err := stream.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to stream dataset row %d: %w", i+2, err)
		}
	}
	return stream.Flush()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
