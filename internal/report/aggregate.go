package report

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/iwvelando/automobile-sales/internal/dataset"
	"github.com/iwvelando/automobile-sales/pkg/mathutil"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ChartKind tells the presentation layer how to draw an aggregate.
type ChartKind string

// Supported chart kinds.
const (
	ChartLine ChartKind = "line"
	ChartBar  ChartKind = "bar"
	ChartPie  ChartKind = "pie"
)

// Point is one group of an aggregate. X carries the numeric value of Key for
// numeric groupings (year, month, unemployment rate) and is zero otherwise.
// Series is set only for two-level groupings.
type Point struct {
	Key    string  `json:"key"`
	Series string  `json:"series,omitempty"`
	X      float64 `json:"x"`
	Value  float64 `json:"value"`
	Count  int     `json:"count"`
}

// Aggregate is an ordered, grouped and reduced view of the table, ready to be
// charted.
type Aggregate struct {
	Name   string    `json:"name"`
	Title  string    `json:"title"`
	Chart  ChartKind `json:"chart"`
	XLabel string    `json:"xLabel"`
	YLabel string    `json:"yLabel"`
	Points []Point   `json:"points"`
}

// Empty reports whether the aggregate has no groups.
func (a Aggregate) Empty() bool {
	return len(a.Points) == 0
}

// Values returns the point values in order.
func (a Aggregate) Values() []float64 {
	return lo.Map(a.Points, func(p Point, _ int) float64 { return p.Value })
}

// Total sums all point values.
func (a Aggregate) Total() float64 {
	return floats.Sum(a.Values())
}

// Shares returns each point's percentage of Total, in point order.
func (a Aggregate) Shares() []float64 {
	total := a.Total()
	return lo.Map(a.Points, func(p Point, _ int) float64 {
		return mathutil.CalculatePercentage(p.Value, total)
	})
}

// SeriesNames returns the distinct series of a two-level aggregate in
// first-seen order; it is empty for single-level aggregates.
func (a Aggregate) SeriesNames() []string {
	names := lo.Uniq(lo.Map(a.Points, func(p Point, _ int) string { return p.Series }))
	return lo.Without(names, "")
}

type reduction int

const (
	reduceMean reduction = iota
	reduceSum
)

type groupKey struct {
	x      float64
	key    string
	series string
}

type group struct {
	groupKey
	values []float64
}

// groupBy buckets records by key, reduces measure within each bucket, and
// returns the buckets ordered by (x, key, series) ascending.
func groupBy(
	records []dataset.SalesRecord,
	key func(dataset.SalesRecord) groupKey,
	measure func(dataset.SalesRecord) float64,
	reduce reduction,
) []Point {
	if len(records) == 0 {
		return []Point{}
	}

	index := make(map[groupKey]int)
	var groups []group
	for _, record := range records {
		k := key(record)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{groupKey: k})
		}
		groups[i].values = append(groups[i].values, measure(record))
	}

	slices.SortFunc(groups, func(a, b group) int {
		return cmp.Or(
			cmp.Compare(a.x, b.x),
			cmp.Compare(a.key, b.key),
			cmp.Compare(a.series, b.series),
		)
	})

	points := make([]Point, 0, len(groups))
	for _, g := range groups {
		var value float64
		switch reduce {
		case reduceSum:
			value = floats.Sum(g.values)
		default:
			value = stat.Mean(g.values, nil)
		}
		points = append(points, Point{
			Key:    g.key,
			Series: g.series,
			X:      g.x,
			Value:  value,
			Count:  len(g.values),
		})
	}
	return points
}

func byYear(r dataset.SalesRecord) groupKey {
	return groupKey{x: float64(r.Year), key: strconv.Itoa(r.Year)}
}

func byMonth(r dataset.SalesRecord) groupKey {
	return groupKey{x: float64(r.Month), key: strconv.Itoa(r.Month)}
}

func byVehicleType(r dataset.SalesRecord) groupKey {
	return groupKey{key: r.VehicleType.String()}
}

// byUnemploymentAndType groups at the rate's full generated precision, which
// leaves nearly every record in its own bucket.
func byUnemploymentAndType(r dataset.SalesRecord) groupKey {
	return groupKey{
		x:      r.UnemploymentRate,
		key:    strconv.FormatFloat(r.UnemploymentRate, 'f', -1, 64),
		series: r.VehicleType.String(),
	}
}

func sales(r dataset.SalesRecord) float64 {
	return float64(r.AutomobileSales)
}

func adSpend(r dataset.SalesRecord) float64 {
	return r.AdvertisingExpenditure
}
