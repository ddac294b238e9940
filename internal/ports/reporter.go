package ports

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quentinrf/plant-monitor/services/dosing-service/internal/domain"
)

// Reporter periodically analyzes every tank and logs its nutrient status
type Reporter struct {
	service   *DosingService
	repo      domain.JournalRepository
	interval  time.Duration
	retention time.Duration
}

// NewReporter creates a new background reporter
func NewReporter(service *DosingService, repo domain.JournalRepository, interval, retention time.Duration) *Reporter {
	return &Reporter{
		service:   service,
		repo:      repo,
		interval:  interval,
		retention: retention,
	}
}

// Start begins periodic reporting
// This runs in a goroutine until context is cancelled
func (r *Reporter) Start(ctx context.Context) {
	log.Info().
		Dur("interval", r.interval).
		Dur("retention", r.retention).
		Msg("starting background reporter")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	cleanupTicker := time.NewTicker(24 * time.Hour)
	defer cleanupTicker.Stop()

	r.ReportOnce(ctx)

	for {
		select {
		case <-ticker.C:
			r.ReportOnce(ctx)

		case <-cleanupTicker.C:
			if err := r.Purge(ctx); err != nil {
				log.Error().Err(err).Msg("failed to delete old doses")
			}

		case <-ctx.Done():
			log.Info().Msg("stopping background reporter")
			return
		}
	}
}

// Purge drops journal entries older than the retention window,
// measured against the service clock
func (r *Reporter) Purge(ctx context.Context) error {
	cutoff := r.service.clock.Now().Add(-r.retention)
	if err := r.repo.DeleteDosesBefore(ctx, cutoff); err != nil {
		return err
	}

	log.Info().Time("cutoff", cutoff).Msg("deleted expired dose entries")
	return nil
}

// ReportOnce analyzes every tank and logs the outcome.
// Returns the number of tanks analyzed successfully.
func (r *Reporter) ReportOnce(ctx context.Context) int {
	tanks, err := r.repo.ListTanks(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list tanks")
		return 0
	}

	reported := 0
	for _, tank := range tanks {
		analysis, err := r.service.AnalyzeTank(ctx, tank.ID)
		if err != nil {
			log.Error().Err(err).Str("tank_id", tank.ID).Msg("failed to analyze tank")
			continue
		}
		reported++

		log.Info().
			Str("tank", tank.Name).
			Str("nitrogen", string(analysis.Status.Nitrogen)).
			Str("phosphorus", string(analysis.Status.Phosphorus)).
			Str("potassium", string(analysis.Status.Potassium)).
			Str("iron", string(analysis.Status.Iron)).
			Int("recommendations", len(analysis.Recommendations)).
			Msg("weekly nutrient report")

		for _, rec := range analysis.Recommendations {
			log.Info().
				Str("tank", tank.Name).
				Str("fertilizer", rec.FertilizerName).
				Float64("amount", rec.Amount).
				Str("unit", string(rec.Unit)).
				Str("frequency", string(rec.Frequency)).
				Str("reason", rec.Reasoning.Text).
				Msg("dosing recommendation")
		}
	}

	return reported
}
