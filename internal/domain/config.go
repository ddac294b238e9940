package domain

// Band is an inclusive [Min, Max] ppm range
type Band struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// TargetBands holds the EI weekly target range for each tracked nutrient
type TargetBands struct {
	Nitrate   Band `json:"nitrate"`
	Phosphate Band `json:"phosphate"`
	Potassium Band `json:"potassium"`
	Iron      Band `json:"iron"`
}

// For returns the band for a nutrient
func (t TargetBands) For(n Nutrient) Band {
	switch n {
	case Nitrogen:
		return t.Nitrate
	case Phosphorus:
		return t.Phosphate
	case Potassium:
		return t.Potassium
	default:
		return t.Iron
	}
}

// EngineConfig carries every tunable constant the EI engine uses.
// Algorithms read these instead of literals so tests can swap them.
type EngineConfig struct {
	Targets TargetBands

	// WeeklyConsumption is the fraction of the target concentration
	// assumed to be taken up by plants over a 7-day interval
	WeeklyConsumption float64
	DaysPerWeek       float64

	// Daily decay applied by the projector
	DecayRate     float64
	IronDecayRate float64

	// Added to the target minimum when sizing a corrective dose.
	// Potassium deliberately has none: no recommendation rule exists for it.
	NitrateBuffer   float64
	PhosphateBuffer float64
	IronBuffer      float64

	ProjectionDays            int
	DefaultWaterChangeDay     int
	DefaultWaterChangePercent float64
}

// DefaultConfig returns the standard Estimative Index constants
func DefaultConfig() EngineConfig {
	return EngineConfig{
		Targets: TargetBands{
			Nitrate:   Band{Min: 10, Max: 30},
			Phosphate: Band{Min: 1, Max: 3},
			Potassium: Band{Min: 10, Max: 30},
			Iron:      Band{Min: 0.1, Max: 0.5},
		},
		WeeklyConsumption:         0.3,
		DaysPerWeek:               7,
		DecayRate:                 0.05,
		IronDecayRate:             0.10,
		NitrateBuffer:             5,
		PhosphateBuffer:           0.5,
		IronBuffer:                0.1,
		ProjectionDays:            7,
		DefaultWaterChangeDay:     7,
		DefaultWaterChangePercent: 50,
	}
}
