// Package report groups and reduces the sales table into the aggregates
// behind the dashboard's yearly and recession period views.
package report

import (
	"errors"
	"fmt"

	"github.com/iwvelando/automobile-sales/internal/dataset"
)

// Aggregate names. Each report carries exactly four, in this order.
const (
	RecessionSalesByYear        = "recession_sales_by_year"
	RecessionSalesByVehicleType = "recession_sales_by_vehicle_type"
	RecessionAdSpendShare       = "recession_ad_spend_share"
	RecessionUnemploymentEffect = "recession_unemployment_effect"

	YearlySalesByYear          = "yearly_sales_by_year"
	YearlySalesByMonth         = "yearly_sales_by_month"
	YearlySalesByVehicleType   = "yearly_sales_by_vehicle_type"
	YearlyAdSpendByVehicleType = "yearly_ad_spend_by_vehicle_type"
)

// ErrUnknownAggregate is returned when a report has no aggregate with the
// requested name.
var ErrUnknownAggregate = errors.New("unknown aggregate")

// Report holds the four aggregates of one selection.
type Report struct {
	Selection  Selection   `json:"selection"`
	Aggregates []Aggregate `json:"aggregates"`
}

// Aggregate looks up an aggregate by name.
func (r Report) Aggregate(name string) (Aggregate, error) {
	for _, aggregate := range r.Aggregates {
		if aggregate.Name == name {
			return aggregate, nil
		}
	}
	return Aggregate{}, fmt.Errorf("%w: %s", ErrUnknownAggregate, name)
}

// Names returns the aggregate names in report order.
func (r Report) Names() []string {
	names := make([]string, len(r.Aggregates))
	for i, aggregate := range r.Aggregates {
		names[i] = aggregate.Name
	}
	return names
}

// Build computes the report for sel. It only reads t and returns freshly
// allocated aggregates, so repeated calls with the same inputs return equal
// reports.
func Build(t *dataset.Table, sel Selection) Report {
	switch sel.Kind {
	case KindRecession:
		return Report{Selection: sel, Aggregates: recessionAggregates(t)}
	case KindYearly:
		return Report{Selection: sel, Aggregates: yearlyAggregates(t, sel.Year)}
	default:
		return Report{Selection: sel, Aggregates: []Aggregate{}}
	}
}

func recessionAggregates(t *dataset.Table) []Aggregate {
	recession := t.Filter(func(r dataset.SalesRecord) bool { return r.Recession })

	return []Aggregate{
		{
			Name:   RecessionSalesByYear,
			Title:  "Average Automobile Sales fluctuation over Recession Period",
			Chart:  ChartLine,
			XLabel: "Year",
			YLabel: "Automobile Sales",
			Points: groupBy(recession, byYear, sales, reduceMean),
		},
		{
			Name:   RecessionSalesByVehicleType,
			Title:  "Average Number of Vehicles Sold by Vehicle Type",
			Chart:  ChartBar,
			XLabel: "Vehicle Type",
			YLabel: "Automobile Sales",
			Points: groupBy(recession, byVehicleType, sales, reduceMean),
		},
		{
			Name:   RecessionAdSpendShare,
			Title:  "Total Expenditure Share by Vehicle Type During Recessions",
			Chart:  ChartPie,
			XLabel: "Vehicle Type",
			YLabel: "Advertising Expenditure",
			Points: groupBy(recession, byVehicleType, adSpend, reduceSum),
		},
		{
			Name:   RecessionUnemploymentEffect,
			Title:  "Effect of Unemployment Rate on Vehicle Type and Sales",
			Chart:  ChartBar,
			XLabel: "Unemployment Rate",
			YLabel: "Average Automobile Sales",
			Points: groupBy(recession, byUnemploymentAndType, sales, reduceMean),
		},
	}
}

func yearlyAggregates(t *dataset.Table, year int) []Aggregate {
	all := t.Records()
	inYear := t.Filter(func(r dataset.SalesRecord) bool { return r.Year == year })

	return []Aggregate{
		{
			Name:   YearlySalesByYear,
			Title:  "Yearly Automobile Sales for the Whole Period",
			Chart:  ChartLine,
			XLabel: "Year",
			YLabel: "Automobile Sales",
			Points: groupBy(all, byYear, sales, reduceMean),
		},
		{
			Name:   YearlySalesByMonth,
			Title:  "Total Monthly Automobile Sales",
			Chart:  ChartLine,
			XLabel: "Month",
			YLabel: "Automobile Sales",
			Points: groupBy(inYear, byMonth, sales, reduceSum),
		},
		{
			Name:   YearlySalesByVehicleType,
			Title:  fmt.Sprintf("Average Vehicles Sold by Vehicle Type in the year %d", year),
			Chart:  ChartBar,
			XLabel: "Vehicle Type",
			YLabel: "Automobile Sales",
			Points: groupBy(inYear, byVehicleType, sales, reduceMean),
		},
		{
			Name:   YearlyAdSpendByVehicleType,
			Title:  "Total Advertisement Expenditure for Each Vehicle",
			Chart:  ChartPie,
			XLabel: "Vehicle Type",
			YLabel: "Advertising Expenditure",
			Points: groupBy(inYear, byVehicleType, adSpend, reduceSum),
		},
	}
}
