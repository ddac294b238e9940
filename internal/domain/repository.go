package domain

import (
	"context"
	"time"
)

// JournalRepository defines operations for storing the tanks, fertilizer
// inventory and dosing journal the engine reads from.
// This is a PORT - adapters (SQLite, Memory) will implement it
type JournalRepository interface {
	// SaveTank persists a tank, assigning an ID if empty
	SaveTank(ctx context.Context, tank *Tank) error

	// GetTank retrieves a tank by ID
	GetTank(ctx context.Context, id string) (*Tank, error)

	// ListTanks returns every tank ordered by creation time
	ListTanks(ctx context.Context) ([]*Tank, error)

	// SaveFertilizer persists a fertilizer, assigning an ID if empty
	SaveFertilizer(ctx context.Context, fertilizer *Fertilizer) error

	// GetFertilizer retrieves a fertilizer by ID
	GetFertilizer(ctx context.Context, id string) (*Fertilizer, error)

	// ListFertilizers returns the whole inventory ordered by name
	ListFertilizers(ctx context.Context) ([]*Fertilizer, error)

	// SaveDose appends an entry to the dosing journal
	SaveDose(ctx context.Context, dose *DoseEntry) error

	// GetDosesInRange retrieves a tank's doses within time range.
	// Uses a half-open interval: inclusive start, exclusive end [start, end).
	GetDosesInRange(ctx context.Context, tankID string, start, end time.Time) ([]*DoseEntry, error)

	// DeleteDosesBefore removes journal entries dosed strictly before cutoff
	DeleteDosesBefore(ctx context.Context, cutoff time.Time) error
}
