package domain

import "math"

// DefaultDaysUntilWaterChange is the interval the analyzer assumes
// between weekly water changes
const DefaultDaysUntilWaterChange = 7

// Engine implements the Estimative Index calculations.
// It holds only immutable configuration and is safe for concurrent use.
type Engine struct {
	cfg EngineConfig
}

// NewEngine creates an engine bound to the given constants
func NewEngine(cfg EngineConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the constants the engine was built with
func (e *Engine) Config() EngineConfig {
	return e.cfg
}

// Addition returns the ppm increase a dose gives in a tank of volumeLiters
func (e *Engine) Addition(dose, concentrationPerUnit, volumeLiters float64) (float64, error) {
	if volumeLiters <= 0 {
		return 0, ErrInvalidVolume
	}
	return dose * concentrationPerUnit / volumeLiters, nil
}

// RecommendedWeeklyDose returns the amount of product to dose over the
// coming interval so the tank reaches targetPPM and stays there despite
// plant uptake. The uptake allowance is WeeklyConsumption of the target,
// pro-rated to daysUntilWaterChange.
// Returns 0 when the product does not supply the nutrient.
func (e *Engine) RecommendedWeeklyDose(targetPPM, currentPPM, concentrationPerUnit, volumeLiters, daysUntilWaterChange float64) float64 {
	if concentrationPerUnit <= 0 {
		return 0
	}

	deficit := math.Max(0, targetPPM-currentPPM)
	weeklyTarget := deficit + targetPPM*e.cfg.WeeklyConsumption*(daysUntilWaterChange/e.cfg.DaysPerWeek)

	return weeklyTarget * volumeLiters / concentrationPerUnit
}

// Classify places a ppm value into low [0,min), optimal [min,max] or high (max,inf)
func (e *Engine) Classify(n Nutrient, ppm float64) Status {
	band := e.cfg.Targets.For(n)
	switch {
	case ppm < band.Min:
		return StatusLow
	case ppm > band.Max:
		return StatusHigh
	default:
		return StatusOptimal
	}
}

// ClassifyAll classifies every nutrient in levels
func (e *Engine) ClassifyAll(levels NutrientLevels) NutrientStatus {
	return NutrientStatus{
		Nitrogen:   e.Classify(Nitrogen, levels.Nitrogen),
		Phosphorus: e.Classify(Phosphorus, levels.Phosphorus),
		Potassium:  e.Classify(Potassium, levels.Potassium),
		Iron:       e.Classify(Iron, levels.Iron),
	}
}
