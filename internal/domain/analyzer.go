package domain

import (
	"fmt"
)

// DosingFrequency labels how often a recommended amount is dosed
type DosingFrequency string

const (
	FrequencyDaily       DosingFrequency = "daily"
	FrequencyWeekly      DosingFrequency = "weekly"
	FrequencyThreeWeekly DosingFrequency = "3x_week"
)

// Tip texts
const (
	TipNitrogenLow   = "Nitrate is below the EI range. Increase your nitrogen source (e.g. KNO3) or dose it more often."
	TipNitrogenHigh  = "Nitrate is above the EI range. Skip a nitrogen dose or do a larger water change."
	TipPhosphorusLow = "Phosphate is low. Plants may show green spot algae or stunted growth; add a phosphorus source (e.g. KH2PO4)."
	TipIronLow       = "Iron is low. New leaves may turn pale or yellow; dose a trace/iron supplement."
	TipPotassiumLow  = "Potassium is low. Look for pinholes in older leaves and add a potassium source (e.g. K2SO4)."
	TipAllOptimal    = "All nutrients are within the EI target range. Keep the current dosing routine."
	TipWaterChange   = "Remember the weekly 50% water change to reset nutrient levels and prevent build-up."
)

// WaterParameters is the last measured tank chemistry.
// Analyze accepts it but does not consume it yet.
type WaterParameters struct {
	Nitrate float64 `json:"nitrate"`
}

// AnalysisInput is everything Analyze needs for one tank-week
type AnalysisInput struct {
	TankVolume      float64
	Fertilizers     []*Fertilizer
	WeeklyDosing    []WeeklyDose
	LastWaterParams *WaterParameters
}

// Reasoning records which nutrient deficiency drove a recommendation
type Reasoning struct {
	Nutrient Nutrient `json:"nutrient"`
	Text     string   `json:"text"`
}

// Recommendation proposes a new dose for one fertilizer
type Recommendation struct {
	FertilizerID   string          `json:"fertilizerId"`
	FertilizerName string          `json:"fertilizerName"`
	Amount         float64         `json:"amount"`
	Unit           DoseUnit        `json:"unit"`
	Frequency      DosingFrequency `json:"frequency"`
	Reasoning      Reasoning       `json:"reasoning"`
}

// Analysis is the result of one EI analysis
type Analysis struct {
	WeeklyTotals    NutrientLevels   `json:"weeklyTotals"`
	Status          NutrientStatus   `json:"status"`
	Recommendations []Recommendation `json:"recommendations"`
	Tips            []string         `json:"tips"`
}

// Nutrients with a corrective dosing rule, in priority order.
// Potassium is classified and tipped but never drives a recommendation.
var recommendationOrder = []Nutrient{Nitrogen, Phosphorus, Iron}

// Analyze aggregates a week of dosing into ppm totals, classifies them and
// proposes dose increases for fertilizers that can fix a low nutrient.
func (e *Engine) Analyze(in AnalysisInput) (*Analysis, error) {
	if in.TankVolume <= 0 {
		return nil, ErrInvalidVolume
	}

	byID := make(map[string]*Fertilizer, len(in.Fertilizers))
	for _, f := range in.Fertilizers {
		byID[f.ID] = f
	}

	// Duplicate entries for one fertilizer add up independently;
	// unknown ids (deleted products) contribute nothing.
	var totals NutrientLevels
	for _, dose := range in.WeeklyDosing {
		if dose.TotalAmount <= 0 {
			continue
		}
		f, ok := byID[dose.FertilizerID]
		if !ok {
			continue
		}
		add, err := e.contribution(dose.TotalAmount, f, in.TankVolume)
		if err != nil {
			return nil, err
		}
		totals.Nitrogen += add.Nitrogen
		totals.Phosphorus += add.Phosphorus
		totals.Potassium += add.Potassium
		totals.Iron += add.Iron
	}

	status := e.ClassifyAll(totals)

	recommendations := []Recommendation{}
	for _, f := range in.Fertilizers {
		if rec, ok := e.recommend(f, totals, status, in); ok {
			recommendations = append(recommendations, rec)
		}
	}

	return &Analysis{
		WeeklyTotals:    totals,
		Status:          status,
		Recommendations: recommendations,
		Tips:            e.tips(status),
	}, nil
}

// recommend sizes a weekly dose for f against every low nutrient it supplies.
// The amount is the largest need; the reasoning is the first need found.
func (e *Engine) recommend(f *Fertilizer, totals NutrientLevels, status NutrientStatus, in AnalysisInput) (Recommendation, bool) {
	var (
		weekly    float64
		reasoning *Reasoning
	)

	for _, n := range recommendationOrder {
		if status.Get(n) != StatusLow || !f.Supplies(n) {
			continue
		}

		band := e.cfg.Targets.For(n)
		target := band.Min + e.buffer(n)
		needed := e.RecommendedWeeklyDose(target, totals.Get(n), f.Concentration(n), in.TankVolume, DefaultDaysUntilWaterChange)
		if needed > weekly {
			weekly = needed
		}

		if reasoning == nil {
			reasoning = &Reasoning{
				Nutrient: n,
				Text: fmt.Sprintf("%s is low at %.2f ppm (target %g-%g ppm)",
					n.Label(), totals.Get(n), band.Min, band.Max),
			}
		}
	}

	if reasoning == nil {
		return Recommendation{}, false
	}

	if weekly-currentWeekly(f.ID, in.WeeklyDosing) <= 0 {
		return Recommendation{}, false
	}

	// Always expressed as a daily amount; weekly and 3x_week are never produced.
	return Recommendation{
		FertilizerID:   f.ID,
		FertilizerName: f.Name,
		Amount:         roundTo(weekly/e.cfg.DaysPerWeek, 1),
		Unit:           f.Unit,
		Frequency:      FrequencyDaily,
		Reasoning:      *reasoning,
	}, true
}

// contribution is the ppm a given amount of f adds to each nutrient
func (e *Engine) contribution(amount float64, f *Fertilizer, volumeLiters float64) (NutrientLevels, error) {
	var levels NutrientLevels
	var err error

	if levels.Nitrogen, err = e.Addition(amount, f.NitrogenPPM, volumeLiters); err != nil {
		return levels, err
	}
	if levels.Phosphorus, err = e.Addition(amount, f.PhosphorusPPM, volumeLiters); err != nil {
		return levels, err
	}
	if levels.Potassium, err = e.Addition(amount, f.PotassiumPPM, volumeLiters); err != nil {
		return levels, err
	}
	if levels.Iron, err = e.Addition(amount, f.IronPPM, volumeLiters); err != nil {
		return levels, err
	}
	return levels, nil
}

func (e *Engine) buffer(n Nutrient) float64 {
	switch n {
	case Nitrogen:
		return e.cfg.NitrateBuffer
	case Phosphorus:
		return e.cfg.PhosphateBuffer
	case Iron:
		return e.cfg.IronBuffer
	}
	return 0
}

// currentWeekly returns the amount of the first dosing entry for a fertilizer
func currentWeekly(fertilizerID string, dosing []WeeklyDose) float64 {
	for _, d := range dosing {
		if d.FertilizerID == fertilizerID {
			return d.TotalAmount
		}
	}
	return 0
}

func (e *Engine) tips(status NutrientStatus) []string {
	var tips []string

	switch status.Nitrogen {
	case StatusLow:
		tips = append(tips, TipNitrogenLow)
	case StatusHigh:
		tips = append(tips, TipNitrogenHigh)
	}
	if status.Phosphorus == StatusLow {
		tips = append(tips, TipPhosphorusLow)
	}
	if status.Iron == StatusLow {
		tips = append(tips, TipIronLow)
	}
	if status.Potassium == StatusLow {
		tips = append(tips, TipPotassiumLow)
	}
	if status.AllOptimal() {
		tips = append(tips, TipAllOptimal)
	}

	return append(tips, TipWaterChange)
}
