// Package impact converts a donor's total giving into the impact figures shown
// on their report: meals provided, people helped, food rescued and the
// environmental savings of that food.
package impact

import (
	"math"

	"github.com/shopspring/decimal"
)

// Default coefficients used when an organization does not override them.
const (
	DefaultDollarsPerMeal = 0.10
	DefaultMealsPerPerson = 12.0
	DefaultPoundsPerMeal  = 1.2
	DefaultCO2PerPound    = 2.5
	DefaultWaterPerPound  = 108.0
)

// Coefficients is a fully resolved set of conversion factors.
type Coefficients struct {
	DollarsPerMeal float64 `json:"dollarsPerMeal"`
	MealsPerPerson float64 `json:"mealsPerPerson"`
	PoundsPerMeal  float64 `json:"poundsPerMeal"`
	CO2PerPound    float64 `json:"co2PerPound"`
	WaterPerPound  float64 `json:"waterPerPound"`
}

// DefaultCoefficients returns the stock conversion factors ($1 = 10 meals).
func DefaultCoefficients() Coefficients {
	return Coefficients{
		DollarsPerMeal: DefaultDollarsPerMeal,
		MealsPerPerson: DefaultMealsPerPerson,
		PoundsPerMeal:  DefaultPoundsPerMeal,
		CO2PerPound:    DefaultCO2PerPound,
		WaterPerPound:  DefaultWaterPerPound,
	}
}

// Overrides holds per-organization coefficient overrides. A nil field, or a
// value that is not a positive finite number, falls back to the default.
type Overrides struct {
	DollarsPerMeal *float64 `json:"dollarsPerMeal,omitempty"`
	MealsPerPerson *float64 `json:"mealsPerPerson,omitempty"`
	PoundsPerMeal  *float64 `json:"poundsPerMeal,omitempty"`
	CO2PerPound    *float64 `json:"co2PerPound,omitempty"`
	WaterPerPound  *float64 `json:"waterPerPound,omitempty"`
}

// Resolve merges the overrides onto the defaults.
func (o *Overrides) Resolve() Coefficients {
	c := DefaultCoefficients()
	if o == nil {
		return c
	}
	c.DollarsPerMeal = pick(o.DollarsPerMeal, c.DollarsPerMeal)
	c.MealsPerPerson = pick(o.MealsPerPerson, c.MealsPerPerson)
	c.PoundsPerMeal = pick(o.PoundsPerMeal, c.PoundsPerMeal)
	c.CO2PerPound = pick(o.CO2PerPound, c.CO2PerPound)
	c.WaterPerPound = pick(o.WaterPerPound, c.WaterPerPound)
	return c
}

func pick(v *float64, def float64) float64 {
	if v == nil || !usable(*v) || *v <= 0 {
		return def
	}
	return *v
}

func usable(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Metrics is the derived impact of a donation total. It is a view: recomputed
// on every read and never stored.
type Metrics struct {
	Meals      int64 `json:"meals"`
	People     int64 `json:"people"`
	Pounds     int64 `json:"pounds"`
	CO2Saved   int64 `json:"co2Saved"`
	WaterSaved int64 `json:"waterSaved"`
}

// Compute converts totalGiving into impact metrics using the defaults with
// any overrides applied. overrides may be nil.
func Compute(totalGiving float64, overrides *Overrides) Metrics {
	return ComputeWith(totalGiving, overrides.Resolve())
}

// ComputeWith converts totalGiving into impact metrics with explicit
// coefficients. Callers must pass a finite, non-negative total; anything else
// yields zero metrics. Coefficients that are not positive are replaced by
// their defaults.
func ComputeWith(totalGiving float64, c Coefficients) Metrics {
	if !usable(totalGiving) || totalGiving <= 0 {
		return Metrics{}
	}
	c = sanitize(c)

	total := decimal.NewFromFloat(totalGiving)
	meals := total.Div(decimal.NewFromFloat(c.DollarsPerMeal))
	people := meals.Div(decimal.NewFromFloat(c.MealsPerPerson)).Ceil()
	pounds := meals.Mul(decimal.NewFromFloat(c.PoundsPerMeal))
	co2 := pounds.Mul(decimal.NewFromFloat(c.CO2PerPound))
	water := pounds.Mul(decimal.NewFromFloat(c.WaterPerPound))

	return Metrics{
		Meals:      toInt(meals.Round(0)),
		People:     toInt(people),
		Pounds:     toInt(pounds.Round(0)),
		CO2Saved:   toInt(co2.Round(0)),
		WaterSaved: toInt(water.Round(0)),
	}
}

var maxMetric = decimal.NewFromInt(math.MaxInt64)

// toInt saturates at math.MaxInt64 instead of wrapping.
func toInt(d decimal.Decimal) int64 {
	if d.GreaterThan(maxMetric) {
		return math.MaxInt64
	}
	return d.IntPart()
}

func sanitize(c Coefficients) Coefficients {
	d := DefaultCoefficients()
	return Coefficients{
		DollarsPerMeal: pick(&c.DollarsPerMeal, d.DollarsPerMeal),
		MealsPerPerson: pick(&c.MealsPerPerson, d.MealsPerPerson),
		PoundsPerMeal:  pick(&c.PoundsPerMeal, d.PoundsPerMeal),
		CO2PerPound:    pick(&c.CO2PerPound, d.CO2PerPound),
		WaterPerPound:  pick(&c.WaterPerPound, d.WaterPerPound),
	}
}
