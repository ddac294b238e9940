package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_Empty(t *testing.T) {
	e := newTestEngine()

	got, err := e.Analyze(AnalysisInput{TankVolume: 100})
	require.NoError(t, err)

	assert.Equal(t, NutrientLevels{}, got.WeeklyTotals)
	assert.Equal(t, NutrientStatus{
		Nitrogen:   StatusLow,
		Phosphorus: StatusLow,
		Potassium:  StatusLow,
		Iron:       StatusLow,
	}, got.Status)
	assert.Empty(t, got.Recommendations)
	assert.Equal(t, []string{
		TipNitrogenLow,
		TipPhosphorusLow,
		TipIronLow,
		TipPotassiumLow,
		TipWaterChange,
	}, got.Tips)
	assert.NotContains(t, got.Tips, TipAllOptimal)
}

func TestAnalyze_InvalidVolume(t *testing.T) {
	e := newTestEngine()

	for _, v := range []float64{0, -50} {
		_, err := e.Analyze(AnalysisInput{TankVolume: v})
		assert.ErrorIs(t, err, ErrInvalidVolume)
	}
}

func TestAnalyze_NitrogenAtTargetMinimum(t *testing.T) {
	e := newTestEngine()

	// 10 ml of 100 ppm/ml into 100 L lands exactly on the nitrate minimum
	kno3 := &Fertilizer{ID: "kno3", Name: "KNO3", Unit: UnitMilliliter, NitrogenPPM: 100}
	kh2po4 := &Fertilizer{ID: "kh2po4", Name: "KH2PO4", Unit: UnitMilliliter, PhosphorusPPM: 10}

	got, err := e.Analyze(AnalysisInput{
		TankVolume:   100,
		Fertilizers:  []*Fertilizer{kno3, kh2po4},
		WeeklyDosing: []WeeklyDose{{FertilizerID: "kno3", TotalAmount: 10}},
	})
	require.NoError(t, err)

	assert.Equal(t, 10.0, got.WeeklyTotals.Nitrogen)
	assert.Equal(t, StatusOptimal, got.Status.Nitrogen)
	assert.Equal(t, StatusLow, got.Status.Phosphorus)
	assert.NotContains(t, got.Tips, TipNitrogenLow)

	require.Len(t, got.Recommendations, 1)
	rec := got.Recommendations[0]
	assert.Equal(t, "kh2po4", rec.FertilizerID)
	assert.Equal(t, "KH2PO4", rec.FertilizerName)
	assert.Equal(t, Phosphorus, rec.Reasoning.Nutrient)
	assert.Equal(t, UnitMilliliter, rec.Unit)
	assert.Equal(t, FrequencyDaily, rec.Frequency)
	// (1.5 + 1.5*0.3) ppm * 100 L / 10 ppm/ml = 19.5 ml a week
	assert.Equal(t, 2.8, rec.Amount)
}

func TestAnalyze_FirstNeedWinsReasoning(t *testing.T) {
	e := newTestEngine()

	allInOne := &Fertilizer{
		ID: "aio", Name: "All in one", Unit: UnitMilliliter,
		NitrogenPPM: 50, PhosphorusPPM: 2, IronPPM: 1,
	}

	got, err := e.Analyze(AnalysisInput{
		TankVolume:  100,
		Fertilizers: []*Fertilizer{allInOne},
	})
	require.NoError(t, err)

	require.Len(t, got.Recommendations, 1)
	rec := got.Recommendations[0]
	// nitrogen is checked first, phosphorus needs the most product
	assert.Equal(t, Nitrogen, rec.Reasoning.Nutrient)
	assert.Contains(t, rec.Reasoning.Text, Nitrogen.Label())
	assert.Equal(t, 13.9, rec.Amount)
}

func TestAnalyze_NoRecommendationFromPotassiumAlone(t *testing.T) {
	e := newTestEngine()

	k2so4 := &Fertilizer{ID: "k2so4", Name: "K2SO4", Unit: UnitGram, PotassiumPPM: 40}

	got, err := e.Analyze(AnalysisInput{
		TankVolume:  60,
		Fertilizers: []*Fertilizer{k2so4},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusLow, got.Status.Potassium)
	assert.Contains(t, got.Tips, TipPotassiumLow)
	assert.Empty(t, got.Recommendations)
}

func TestAnalyze_CurrentDoseAlreadyCoversNeed(t *testing.T) {
	e := newTestEngine()

	kno3 := &Fertilizer{ID: "kno3", Name: "KNO3", Unit: UnitMilliliter, NitrogenPPM: 1}

	t.Run("no increase needed", func(t *testing.T) {
		got, err := e.Analyze(AnalysisInput{
			TankVolume:   100,
			Fertilizers:  []*Fertilizer{kno3},
			WeeklyDosing: []WeeklyDose{{FertilizerID: "kno3", TotalAmount: 980}},
		})
		require.NoError(t, err)
		assert.Equal(t, StatusLow, got.Status.Nitrogen)
		assert.Empty(t, got.Recommendations)
	})

	t.Run("increase needed", func(t *testing.T) {
		got, err := e.Analyze(AnalysisInput{
			TankVolume:   100,
			Fertilizers:  []*Fertilizer{kno3},
			WeeklyDosing: []WeeklyDose{{FertilizerID: "kno3", TotalAmount: 900}},
		})
		require.NoError(t, err)
		require.Len(t, got.Recommendations, 1)
		// 1050 ml a week
		assert.Equal(t, 150.0, got.Recommendations[0].Amount)
	})
}

func TestAnalyze_DosingEntries(t *testing.T) {
	e := newTestEngine()

	kno3 := &Fertilizer{ID: "kno3", Name: "KNO3", Unit: UnitMilliliter, NitrogenPPM: 100}

	got, err := e.Analyze(AnalysisInput{
		TankVolume:  100,
		Fertilizers: []*Fertilizer{kno3},
		WeeklyDosing: []WeeklyDose{
			{FertilizerID: "kno3", TotalAmount: 5},
			{FertilizerID: "kno3", TotalAmount: 5},
			{FertilizerID: "deleted", TotalAmount: 100},
			{FertilizerID: "kno3", TotalAmount: 0},
			{FertilizerID: "kno3", TotalAmount: -3},
		},
	})
	require.NoError(t, err)

	// duplicates add up, unknown and non-positive entries are skipped
	assert.Equal(t, 10.0, got.WeeklyTotals.Nitrogen)
	assert.Equal(t, StatusOptimal, got.Status.Nitrogen)
}

func TestAnalyze_Tips(t *testing.T) {
	e := newTestEngine()

	t.Run("all optimal", func(t *testing.T) {
		balanced := &Fertilizer{
			ID: "bal", Name: "Balanced", Unit: UnitMilliliter,
			NitrogenPPM: 20, PhosphorusPPM: 2, PotassiumPPM: 20, IronPPM: 0.3,
		}
		got, err := e.Analyze(AnalysisInput{
			TankVolume:   100,
			Fertilizers:  []*Fertilizer{balanced},
			WeeklyDosing: []WeeklyDose{{FertilizerID: "bal", TotalAmount: 100}},
		})
		require.NoError(t, err)
		assert.True(t, got.Status.AllOptimal())
		assert.Empty(t, got.Recommendations)
		assert.Equal(t, []string{TipAllOptimal, TipWaterChange}, got.Tips)
	})

	t.Run("nitrogen high", func(t *testing.T) {
		kno3 := &Fertilizer{ID: "kno3", Name: "KNO3", Unit: UnitMilliliter, NitrogenPPM: 100}
		got, err := e.Analyze(AnalysisInput{
			TankVolume:   100,
			Fertilizers:  []*Fertilizer{kno3},
			WeeklyDosing: []WeeklyDose{{FertilizerID: "kno3", TotalAmount: 40}},
		})
		require.NoError(t, err)
		assert.Equal(t, StatusHigh, got.Status.Nitrogen)
		assert.Contains(t, got.Tips, TipNitrogenHigh)
		assert.NotContains(t, got.Tips, TipNitrogenLow)
		assert.Equal(t, TipWaterChange, got.Tips[len(got.Tips)-1])
	})
}

func TestAnalyze_Idempotent(t *testing.T) {
	e := newTestEngine()

	in := AnalysisInput{
		TankVolume: 120,
		Fertilizers: []*Fertilizer{
			{ID: "a", Name: "Macro", Unit: UnitGram, NitrogenPPM: 60, PhosphorusPPM: 5, PotassiumPPM: 30},
			{ID: "b", Name: "Trace", Unit: UnitMilliliter, IronPPM: 2},
		},
		WeeklyDosing:    []WeeklyDose{{FertilizerID: "a", TotalAmount: 7}, {FertilizerID: "b", TotalAmount: 3}},
		LastWaterParams: &WaterParameters{Nitrate: 5},
	}

	first, err := e.Analyze(in)
	require.NoError(t, err)
	second, err := e.Analyze(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWeeklyTotals(t *testing.T) {
	entries := []*DoseEntry{
		{FertilizerID: "b", Amount: 2},
		{FertilizerID: "a", Amount: 1},
		{FertilizerID: "b", Amount: 3},
	}

	assert.Equal(t, []WeeklyDose{
		{FertilizerID: "b", TotalAmount: 5},
		{FertilizerID: "a", TotalAmount: 1},
	}, WeeklyTotals(entries))
	assert.Empty(t, WeeklyTotals(nil))
}
