// Package emission converts raw daily activity quantities into estimated
// kg CO2-equivalent values.
package emission

import "strings"

// Per-unit multipliers.
const (
	TravelFactor      = 0.192 // per km
	FoodFactor        = 2.5   // per meal
	WasteFactor       = 1.5   // per kg
	ElectricityFactor = 4.5   // per kWh
)

// Activity is what a user reports for one day. Values are not validated.
type Activity struct {
	Travel      float64 `json:"travel"`
	Food        float64 `json:"food"`
	Waste       float64 `json:"waste"`
	Electricity float64 `json:"electricity"`
}

// Emissions is an Activity after conversion.
type Emissions struct {
	Travel      float64 `json:"travel"`
	Food        float64 `json:"food"`
	Waste       float64 `json:"waste"`
	Electricity float64 `json:"electricity"`
}

func (e Emissions) Total() float64 {
	return e.Travel + e.Food + e.Waste + e.Electricity
}

// Estimate applies the fixed multipliers.
func Estimate(a Activity) Emissions {
	return Emissions{
		Travel:      a.Travel * TravelFactor,
		Food:        a.Food * FoodFactor,
		Waste:       a.Waste * WasteFactor,
		Electricity: a.Electricity * ElectricityFactor,
	}
}

// Per-capita baseline footprints by location category.
var baselineByLocation = map[string]float64{
	"urban":    12.5,
	"suburban": 16.2,
	"rural":    18.8,
}

const DefaultBaseline = 15.0

// NormalizeLocation lowercases and trims a location category.
func NormalizeLocation(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}

// Baseline returns the baseline footprint for a household. Unknown locations
// use DefaultBaseline.
func Baseline(location string, householdSize int) float64 {
	multiplier, ok := baselineByLocation[NormalizeLocation(location)]
	if !ok {
		multiplier = DefaultBaseline
	}
	return multiplier * float64(householdSize)
}
