package domain

import (
	"time"
)

// Tank is an aquarium the journal tracks dosing for
type Tank struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	VolumeLiters float64   `json:"volumeLiters"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewTank creates a tank with validation
func NewTank(name string, volumeLiters float64) (*Tank, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	if volumeLiters <= 0 {
		return nil, ErrInvalidVolume
	}

	return &Tank{
		Name:         name,
		VolumeLiters: volumeLiters,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// DoseEntry is one journal line: an amount of fertilizer added to a tank
type DoseEntry struct {
	ID           string    `json:"id"`
	TankID       string    `json:"tankId"`
	FertilizerID string    `json:"fertilizerId"`
	Amount       float64   `json:"amount"`
	DosedAt      time.Time `json:"dosedAt"`
}

// NewDoseEntry creates a journal entry dosed at the given time
func NewDoseEntry(tankID, fertilizerID string, amount float64, dosedAt time.Time) (*DoseEntry, error) {
	if amount <= 0 {
		return nil, ErrInvalidDose
	}

	return &DoseEntry{
		TankID:       tankID,
		FertilizerID: fertilizerID,
		Amount:       amount,
		DosedAt:      dosedAt,
	}, nil
}

// WeeklyDose is the total amount of one fertilizer dosed over a week,
// in the fertilizer's own unit
type WeeklyDose struct {
	FertilizerID string  `json:"fertilizerId"`
	TotalAmount  float64 `json:"totalAmount"`
}

// WeeklyTotals merges journal entries into one aggregate per fertilizer,
// ordered by first appearance. Callers should feed Analyze with this
// rather than raw entries, since Analyze does not merge duplicates.
func WeeklyTotals(entries []*DoseEntry) []WeeklyDose {
	index := make(map[string]int)
	var totals []WeeklyDose

	for _, e := range entries {
		i, seen := index[e.FertilizerID]
		if !seen {
			index[e.FertilizerID] = len(totals)
			totals = append(totals, WeeklyDose{FertilizerID: e.FertilizerID})
			i = len(totals) - 1
		}
		totals[i].TotalAmount += e.Amount
	}

	return totals
}
