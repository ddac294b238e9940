package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultConfig())
}

func TestEngine_Addition(t *testing.T) {
	tests := []struct {
		name    string
		dose    float64
		conc    float64
		volume  float64
		want    float64
		wantErr error
	}{
		{name: "scales by dose and volume", dose: 10, conc: 2, volume: 100, want: 0.2},
		{name: "zero dose adds nothing", dose: 0, conc: 5, volume: 40, want: 0},
		{name: "zero concentration adds nothing", dose: 12, conc: 0, volume: 60, want: 0},
		{name: "zero volume is rejected", dose: 1, conc: 1, volume: 0, wantErr: ErrInvalidVolume},
		{name: "negative volume is rejected", dose: 1, conc: 1, volume: -20, wantErr: ErrInvalidVolume},
	}

	e := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Addition(tt.dose, tt.conc, tt.volume)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
			assert.Equal(t, tt.dose*tt.conc/tt.volume, got)
		})
	}
}

func TestEngine_Classify(t *testing.T) {
	tests := []struct {
		nutrient Nutrient
		ppm      float64
		want     Status
	}{
		{Nitrogen, 0, StatusLow},
		{Nitrogen, 9.99, StatusLow},
		{Nitrogen, 10, StatusOptimal},
		{Nitrogen, 30, StatusOptimal},
		{Nitrogen, 30.01, StatusHigh},
		{Phosphorus, 0.99, StatusLow},
		{Phosphorus, 1, StatusOptimal},
		{Phosphorus, 3, StatusOptimal},
		{Phosphorus, 3.5, StatusHigh},
		{Potassium, 10, StatusOptimal},
		{Potassium, 31, StatusHigh},
		{Iron, 0.09, StatusLow},
		{Iron, 0.1, StatusOptimal},
		{Iron, 0.5, StatusOptimal},
		{Iron, 0.51, StatusHigh},
	}

	e := newTestEngine()
	for _, tt := range tests {
		t.Run(string(tt.nutrient), func(t *testing.T) {
			assert.Equal(t, tt.want, e.Classify(tt.nutrient, tt.ppm), "ppm %v", tt.ppm)
		})
	}
}

func TestEngine_ClassifyIsTotal(t *testing.T) {
	e := newTestEngine()
	for _, n := range []Nutrient{Nitrogen, Phosphorus, Potassium, Iron} {
		for x := 0.0; x <= 40; x += 0.05 {
			switch e.Classify(n, x) {
			case StatusLow, StatusOptimal, StatusHigh:
			default:
				t.Fatalf("%s at %v ppm produced no status", n, x)
			}
		}
	}
}

func TestEngine_RecommendedWeeklyDose(t *testing.T) {
	e := newTestEngine()

	t.Run("closes deficit plus weekly uptake", func(t *testing.T) {
		// deficit 10 + 15*0.3 uptake = 14.5 ppm over 100 L at 1 ppm per unit
		got := e.RecommendedWeeklyDose(15, 5, 1, 100, 7)
		assert.InDelta(t, 1450, got, 1e-9)
	})

	t.Run("uptake pro-rated to water change interval", func(t *testing.T) {
		got := e.RecommendedWeeklyDose(10, 10, 2, 50, 3.5)
		assert.InDelta(t, 37.5, got, 1e-9)
	})

	t.Run("no deficit still covers uptake", func(t *testing.T) {
		got := e.RecommendedWeeklyDose(10, 20, 1, 100, 7)
		assert.InDelta(t, 300, got, 1e-9)
	})

	t.Run("product without the nutrient recommends nothing", func(t *testing.T) {
		assert.Equal(t, 0.0, e.RecommendedWeeklyDose(15, 0, 0, 100, 7))
		assert.Equal(t, 0.0, e.RecommendedWeeklyDose(1000, 0, -3, 100, 7))
	})

	t.Run("never negative", func(t *testing.T) {
		for _, current := range []float64{0, 5, 15, 50, 500} {
			for _, days := range []float64{0, 1, 7, 14} {
				assert.GreaterOrEqual(t, e.RecommendedWeeklyDose(15, current, 3, 80, days), 0.0)
			}
		}
	})
}

func TestEngine_ConfigOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeeklyConsumption = 0
	cfg.Targets.Nitrate = Band{Min: 5, Max: 8}
	e := NewEngine(cfg)

	assert.InDelta(t, 1000, e.RecommendedWeeklyDose(10, 0, 1, 100, 7), 1e-9)
	assert.Equal(t, StatusHigh, e.Classify(Nitrogen, 9))
}
