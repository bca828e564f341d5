// Package dataset builds the synthetic automobile sales table that every
// report reads from.
package dataset

import (
	"time"

	"github.com/iwvelando/automobile-sales/pkg/datetime"
)

// SalesRecord holds the sales and economic indicators of one vehicle type
// for one month.
type SalesRecord struct {
	Date                   time.Time   `json:"date"`
	Recession              bool        `json:"recession"`
	VehicleType            VehicleType `json:"vehicleType"`
	AutomobileSales        int         `json:"automobileSales"`
	GDP                    float64     `json:"gdp"`
	UnemploymentRate       float64     `json:"unemploymentRate"`
	ConsumerConfidence     float64     `json:"consumerConfidence"`
	SeasonalityWeight      float64     `json:"seasonalityWeight"`
	Price                  float64     `json:"price"`
	AdvertisingExpenditure float64     `json:"advertisingExpenditure"`
	Competition            float64     `json:"competition"`
	Month                  int         `json:"month"`
	Year                   int         `json:"year"`
}

// MonthKey returns the record's month formatted as 2006-01.
func (r SalesRecord) MonthKey() string {
	return datetime.MonthKey(r.Date)
}
