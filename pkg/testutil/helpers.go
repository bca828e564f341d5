// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/automobile-sales/internal/report"
)

// FindAggregate finds an aggregate by name in the slice.
// Returns a pointer to the aggregate if found, nil otherwise.
func FindAggregate(aggregates []report.Aggregate, name string) *report.Aggregate {
	for i := range aggregates {
		if aggregates[i].Name == name {
			return &aggregates[i]
		}
	}
	return nil
}

// FindPoint finds the point with the given key and series in an aggregate.
func FindPoint(aggregate report.Aggregate, key, series string) *report.Point {
	for i := range aggregate.Points {
		if aggregate.Points[i].Key == key && aggregate.Points[i].Series == series {
			return &aggregate.Points[i]
		}
	}
	return nil
}
