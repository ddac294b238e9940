package domain

import "math"

// Nutrient identifies one of the tracked macro/micro nutrients
type Nutrient string

const (
	Nitrogen   Nutrient = "nitrogen"
	Phosphorus Nutrient = "phosphorus"
	Potassium  Nutrient = "potassium"
	Iron       Nutrient = "iron"
)

// Label returns the name aquarists use for the dissolved form
func (n Nutrient) Label() string {
	switch n {
	case Nitrogen:
		return "Nitrate (NO3)"
	case Phosphorus:
		return "Phosphate (PO4)"
	case Potassium:
		return "Potassium (K)"
	case Iron:
		return "Iron (Fe)"
	}
	return string(n)
}

// Status is the classification of a nutrient level against its target band
type Status string

const (
	StatusLow     Status = "low"
	StatusOptimal Status = "optimal"
	StatusHigh    Status = "high"
)

// NutrientLevels is a ppm value per tracked nutrient
type NutrientLevels struct {
	Nitrogen   float64 `json:"nitrogen"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
	Iron       float64 `json:"iron"`
}

// Validate rejects negative levels
func (l NutrientLevels) Validate() error {
	if l.Nitrogen < 0 || l.Phosphorus < 0 || l.Potassium < 0 || l.Iron < 0 {
		return ErrInvalidLevel
	}
	return nil
}

// Get returns the level for a nutrient
func (l NutrientLevels) Get(n Nutrient) float64 {
	switch n {
	case Nitrogen:
		return l.Nitrogen
	case Phosphorus:
		return l.Phosphorus
	case Potassium:
		return l.Potassium
	default:
		return l.Iron
	}
}

// NutrientStatus is a Status per tracked nutrient
type NutrientStatus struct {
	Nitrogen   Status `json:"nitrogen"`
	Phosphorus Status `json:"phosphorus"`
	Potassium  Status `json:"potassium"`
	Iron       Status `json:"iron"`
}

// Get returns the status for a nutrient
func (s NutrientStatus) Get(n Nutrient) Status {
	switch n {
	case Nitrogen:
		return s.Nitrogen
	case Phosphorus:
		return s.Phosphorus
	case Potassium:
		return s.Potassium
	default:
		return s.Iron
	}
}

// AllOptimal reports whether every nutrient sits inside its band
func (s NutrientStatus) AllOptimal() bool {
	return s.Nitrogen == StatusOptimal &&
		s.Phosphorus == StatusOptimal &&
		s.Potassium == StatusOptimal &&
		s.Iron == StatusOptimal
}

// roundTo rounds half-up to the given number of decimals.
// Inputs are non-negative, so math.Round's half-away-from-zero is half-up.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
