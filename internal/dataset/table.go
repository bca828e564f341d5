package dataset

import (
	"github.com/iwvelando/automobile-sales/pkg/constants"
	"gonum.org/v1/gonum/stat"
)

// Table is the generated dataset. It is never modified after Generate
// returns, so a single *Table may be shared by concurrent readers.
type Table struct {
	records []SalesRecord
	seed    uint64
}

// Summary holds headline figures for a table.
type Summary struct {
	Seed               uint64  `json:"seed"`
	Records            int     `json:"records"`
	RecessionRecords   int     `json:"recessionRecords"`
	FirstYear          int     `json:"firstYear"`
	LastYear           int     `json:"lastYear"`
	MeanSales          float64 `json:"meanSales"`
	MeanRecessionSales float64 `json:"meanRecessionSales"`
	MeanNormalSales    float64 `json:"meanNormalSales"`
	TotalAdSpend       float64 `json:"totalAdSpend"`
}

// Years returns every year a Yearly report may select, ascending.
func Years() []int {
	years := make([]int, 0, constants.EndYear-constants.StartYear+1)
	for year := constants.StartYear; year <= constants.EndYear; year++ {
		years = append(years, year)
	}
	return years
}

// ValidYear reports whether year is covered by the generated dataset.
func ValidYear(year int) bool {
	return year >= constants.StartYear && year <= constants.EndYear
}

// Seed returns the seed the table was generated from.
func (t *Table) Seed() uint64 {
	return t.seed
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// At returns a copy of the i-th record in (date, vehicle type) order.
func (t *Table) At(i int) SalesRecord {
	return t.records[i]
}

// Records returns a copy of all records.
func (t *Table) Records() []SalesRecord {
	out := make([]SalesRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Filter returns copies of the records for which keep returns true, in table order.
func (t *Table) Filter(keep func(SalesRecord) bool) []SalesRecord {
	var out []SalesRecord
	for _, record := range t.records {
		if keep(record) {
			out = append(out, record)
		}
	}
	return out
}

// Summary computes headline figures over the whole table.
func (t *Table) Summary() Summary {
	summary := Summary{
		Seed:    t.seed,
		Records: len(t.records),
	}
	if len(t.records) == 0 {
		return summary
	}

	summary.FirstYear = t.records[0].Year
	summary.LastYear = t.records[len(t.records)-1].Year

	var all, recession, normal []float64
	for _, record := range t.records {
		sales := float64(record.AutomobileSales)
		all = append(all, sales)
		if record.Recession {
			recession = append(recession, sales)
		} else {
			normal = append(normal, sales)
		}
		summary.TotalAdSpend += record.AdvertisingExpenditure
	}

	summary.RecessionRecords = len(recession)
	summary.MeanSales = stat.Mean(all, nil)
	if len(recession) > 0 {
		summary.MeanRecessionSales = stat.Mean(recession, nil)
	}
	if len(normal) > 0 {
		summary.MeanNormalSales = stat.Mean(normal, nil)
	}
	return summary
}
