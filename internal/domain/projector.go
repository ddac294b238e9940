package domain

import (
	"time"
)

// ProjectionDateLayout is the yyyy-MM-dd date format of projection points
const ProjectionDateLayout = "2006-01-02"

// ProjectionPlan describes a 7-day simulation.
// A WaterChangeDay outside 1..7 means no water change in the horizon.
type ProjectionPlan struct {
	From               time.Time
	Start              NutrientLevels
	Daily              NutrientLevels
	WaterChangeDay     int
	WaterChangePercent float64
}

// ProjectionPoint is the simulated state at the end of one day
type ProjectionPoint struct {
	Date       string  `json:"date"`
	Nitrogen   float64 `json:"nitrogen"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
	Iron       float64 `json:"iron"`
}

// DefaultProjectionPlan builds a plan with the water change on the
// configured default day and percentage
func (e *Engine) DefaultProjectionPlan(from time.Time, start, daily NutrientLevels) ProjectionPlan {
	return ProjectionPlan{
		From:               from,
		Start:              start,
		Daily:              daily,
		WaterChangeDay:     e.cfg.DefaultWaterChangeDay,
		WaterChangePercent: e.cfg.DefaultWaterChangePercent,
	}
}

// Project simulates nutrient levels day by day. Each day the running state
// decays, receives the daily dose, and is diluted on the water change day.
// Every call starts again from plan.Start.
func (e *Engine) Project(plan ProjectionPlan) ([]ProjectionPoint, error) {
	if plan.WaterChangePercent < 0 || plan.WaterChangePercent > 100 {
		return nil, ErrInvalidWaterChange
	}

	state := plan.Start
	keep := 1 - e.cfg.DecayRate
	ironKeep := 1 - e.cfg.IronDecayRate
	dilution := 1 - plan.WaterChangePercent/100

	points := make([]ProjectionPoint, 0, e.cfg.ProjectionDays)
	for day := 0; day < e.cfg.ProjectionDays; day++ {
		state.Nitrogen *= keep
		state.Phosphorus *= keep
		state.Potassium *= keep
		state.Iron *= ironKeep

		state.Nitrogen += plan.Daily.Nitrogen
		state.Phosphorus += plan.Daily.Phosphorus
		state.Potassium += plan.Daily.Potassium
		state.Iron += plan.Daily.Iron

		if day+1 == plan.WaterChangeDay {
			state.Nitrogen *= dilution
			state.Phosphorus *= dilution
			state.Potassium *= dilution
			state.Iron *= dilution
		}

		points = append(points, ProjectionPoint{
			Date:       plan.From.AddDate(0, 0, day).Format(ProjectionDateLayout),
			Nitrogen:   roundTo(state.Nitrogen, 1),
			Phosphorus: roundTo(state.Phosphorus, 2),
			Potassium:  roundTo(state.Potassium, 1),
			Iron:       roundTo(state.Iron, 2),
		})
	}

	return points, nil
}
