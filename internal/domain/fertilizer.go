package domain

// DoseUnit is the unit a fertilizer is measured out in
type DoseUnit string

const (
	UnitMilliliter DoseUnit = "ml"
	UnitGram       DoseUnit = "g"
)

// Fertilizer describes a dosing product.
// Each *PPM field is the ppm increase one unit dose gives in one liter of
// water; zero means the product does not supply that nutrient.
type Fertilizer struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Unit          DoseUnit `json:"unit"`
	NitrogenPPM   float64  `json:"nitrogenPpm,omitempty"`
	PhosphorusPPM float64  `json:"phosphorusPpm,omitempty"`
	PotassiumPPM  float64  `json:"potassiumPpm,omitempty"`
	IronPPM       float64  `json:"ironPpm,omitempty"`
	MagnesiumPPM  float64  `json:"magnesiumPpm,omitempty"`
}

// NewFertilizer validates and builds a fertilizer definition
func NewFertilizer(name string, unit DoseUnit, nitrogen, phosphorus, potassium, iron, magnesium float64) (*Fertilizer, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	if unit != UnitMilliliter && unit != UnitGram {
		return nil, ErrInvalidUnit
	}
	for _, c := range []float64{nitrogen, phosphorus, potassium, iron, magnesium} {
		if c < 0 {
			return nil, ErrInvalidConcentration
		}
	}

	return &Fertilizer{
		Name:          name,
		Unit:          unit,
		NitrogenPPM:   nitrogen,
		PhosphorusPPM: phosphorus,
		PotassiumPPM:  potassium,
		IronPPM:       iron,
		MagnesiumPPM:  magnesium,
	}, nil
}

// Concentration returns ppm-per-unit for a nutrient
func (f *Fertilizer) Concentration(n Nutrient) float64 {
	switch n {
	case Nitrogen:
		return f.NitrogenPPM
	case Phosphorus:
		return f.PhosphorusPPM
	case Potassium:
		return f.PotassiumPPM
	default:
		return f.IronPPM
	}
}

// Supplies reports whether the fertilizer contributes the nutrient at all
func (f *Fertilizer) Supplies(n Nutrient) bool {
	return f.Concentration(n) > 0
}
