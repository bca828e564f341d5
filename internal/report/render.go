package report

import (
	"github.com/iwvelando/automobile-sales/internal/dataset"
	"github.com/iwvelando/automobile-sales/pkg/constants"
	"github.com/samber/lo"
)

// chartsPerRow matches the dashboard's two-by-two chart grid.
const chartsPerRow = 2

// RenderModel is everything a UI shell needs to draw the dashboard for one
// pair of inputs. Ready is false when the inputs do not select a report; in
// that case Selection and Rows are empty.
type RenderModel struct {
	Title                string        `json:"title"`
	Statistics           string        `json:"statistics"`
	YearSelectorDisabled bool          `json:"yearSelectorDisabled"`
	Ready                bool          `json:"ready"`
	Selection            *Selection    `json:"selection,omitempty"`
	Rows                 [][]Aggregate `json:"rows,omitempty"`
}

// Render parses the raw dashboard inputs and builds the matching view.
func Render(t *dataset.Table, statistics, year string) RenderModel {
	sel, ok := ParseSelection(statistics, year)
	if !ok {
		return RenderModel{
			Title:                constants.DashboardTitle,
			Statistics:           statistics,
			YearSelectorDisabled: YearSelectorDisabled(statistics),
		}
	}
	return RenderSelection(t, sel)
}

// RenderSelection builds the view for an already parsed selection.
func RenderSelection(t *dataset.Table, sel Selection) RenderModel {
	built := Build(t, sel)
	return RenderModel{
		Title:                constants.DashboardTitle,
		Statistics:           sel.Kind.String(),
		YearSelectorDisabled: sel.Kind != KindYearly,
		Ready:                true,
		Selection:            &built.Selection,
		Rows:                 lo.Chunk(built.Aggregates, chartsPerRow),
	}
}

// Aggregates flattens the chart grid back into report order.
func (m RenderModel) Aggregates() []Aggregate {
	return lo.Flatten(m.Rows)
}
