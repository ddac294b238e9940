package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quentinrf/plant-monitor/services/dosing-service/internal/domain"
)

// JournalRepository implements domain.JournalRepository with in-memory storage
type JournalRepository struct {
	mu          sync.RWMutex
	tanks       map[string]*domain.Tank
	fertilizers map[string]*domain.Fertilizer
	doses       []*domain.DoseEntry
}

// NewJournalRepository creates an empty in-memory repository
func NewJournalRepository() *JournalRepository {
	return &JournalRepository{
		tanks:       make(map[string]*domain.Tank),
		fertilizers: make(map[string]*domain.Fertilizer),
	}
}

// SaveTank stores a tank in memory
func (r *JournalRepository) SaveTank(ctx context.Context, tank *domain.Tank) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tank.ID == "" {
		tank.ID = uuid.NewString()
	}
	r.tanks[tank.ID] = tank
	return nil
}

// GetTank retrieves a tank by ID
func (r *JournalRepository) GetTank(ctx context.Context, id string) (*domain.Tank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tank, exists := r.tanks[id]
	if !exists {
		return nil, domain.ErrTankNotFound
	}
	return tank, nil
}

// ListTanks returns every tank, oldest first
func (r *JournalRepository) ListTanks(ctx context.Context) ([]*domain.Tank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tanks := make([]*domain.Tank, 0, len(r.tanks))
	for _, t := range r.tanks {
		tanks = append(tanks, t)
	}

	sort.Slice(tanks, func(i, j int) bool {
		if tanks[i].CreatedAt.Equal(tanks[j].CreatedAt) {
			return tanks[i].ID < tanks[j].ID
		}
		return tanks[i].CreatedAt.Before(tanks[j].CreatedAt)
	})

	return tanks, nil
}

// SaveFertilizer stores a fertilizer in memory
func (r *JournalRepository) SaveFertilizer(ctx context.Context, fertilizer *domain.Fertilizer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fertilizer.ID == "" {
		fertilizer.ID = uuid.NewString()
	}
	r.fertilizers[fertilizer.ID] = fertilizer
	return nil
}

// GetFertilizer retrieves a fertilizer by ID
func (r *JournalRepository) GetFertilizer(ctx context.Context, id string) (*domain.Fertilizer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, exists := r.fertilizers[id]
	if !exists {
		return nil, domain.ErrFertilizerNotFound
	}
	return f, nil
}

// ListFertilizers returns the inventory sorted by name
func (r *JournalRepository) ListFertilizers(ctx context.Context) ([]*domain.Fertilizer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fertilizers := make([]*domain.Fertilizer, 0, len(r.fertilizers))
	for _, f := range r.fertilizers {
		fertilizers = append(fertilizers, f)
	}

	sort.Slice(fertilizers, func(i, j int) bool {
		if fertilizers[i].Name == fertilizers[j].Name {
			return fertilizers[i].ID < fertilizers[j].ID
		}
		return fertilizers[i].Name < fertilizers[j].Name
	})

	return fertilizers, nil
}

// SaveDose appends a dose to the journal
func (r *JournalRepository) SaveDose(ctx context.Context, dose *domain.DoseEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if dose.ID == "" {
		dose.ID = uuid.NewString()
	}
	r.doses = append(r.doses, dose)
	return nil
}

// GetDosesInRange returns a tank's doses in [start, end), oldest first
func (r *JournalRepository) GetDosesInRange(ctx context.Context, tankID string, start, end time.Time) ([]*domain.DoseEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []*domain.DoseEntry
	for _, d := range r.doses {
		if d.TankID != tankID {
			continue
		}
		if !d.DosedAt.Before(start) && d.DosedAt.Before(end) {
			results = append(results, d)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DosedAt.Before(results[j].DosedAt)
	})

	return results, nil
}

// DeleteDosesBefore removes doses dosed before cutoff
func (r *JournalRepository) DeleteDosesBefore(ctx context.Context, cutoff time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.doses[:0]
	for _, d := range r.doses {
		if !d.DosedAt.Before(cutoff) {
			kept = append(kept, d)
		}
	}
	r.doses = kept

	return nil
}
