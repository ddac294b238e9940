package ports

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quentinrf/plant-monitor/services/dosing-service/internal/domain"
)

// accountingWindow is the EI week doses are totalled over
const accountingWindow = 7 * 24 * time.Hour

// DosingService ties the dosing journal to the EI engine
type DosingService struct {
	repo   domain.JournalRepository
	engine *domain.Engine
	clock  Clock
}

// NewDosingService creates the application service
func NewDosingService(repo domain.JournalRepository, engine *domain.Engine, clock Clock) *DosingService {
	return &DosingService{
		repo:   repo,
		engine: engine,
		clock:  clock,
	}
}

// TankWeek is a tank together with the inputs of its current EI week
type TankWeek struct {
	Tank        *domain.Tank
	Fertilizers []*domain.Fertilizer
	Dosing      []domain.WeeklyDose
}

// RecordDose appends a dose to a tank's journal, stamped with the current time
func (s *DosingService) RecordDose(ctx context.Context, tankID, fertilizerID string, amount float64) (*domain.DoseEntry, error) {
	if _, err := s.repo.GetTank(ctx, tankID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetFertilizer(ctx, fertilizerID); err != nil {
		return nil, err
	}

	entry, err := domain.NewDoseEntry(tankID, fertilizerID, amount, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveDose(ctx, entry); err != nil {
		return nil, fmt.Errorf("save dose: %w", err)
	}

	return entry, nil
}

// Week loads the tank, the fertilizer inventory and the last 7 days of
// doses merged into one weekly total per fertilizer
func (s *DosingService) Week(ctx context.Context, tankID string) (*TankWeek, error) {
	tank, err := s.repo.GetTank(ctx, tankID)
	if err != nil {
		return nil, err
	}

	fertilizers, err := s.repo.ListFertilizers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fertilizers: %w", err)
	}

	// end is bumped so a dose logged at this instant still counts
	now := s.clock.Now()
	doses, err := s.repo.GetDosesInRange(ctx, tankID, now.Add(-accountingWindow), now.Add(time.Nanosecond))
	if err != nil {
		return nil, fmt.Errorf("get doses: %w", err)
	}

	return &TankWeek{
		Tank:        tank,
		Fertilizers: fertilizers,
		Dosing:      domain.WeeklyTotals(doses),
	}, nil
}

// AnalyzeTank runs the EI analysis over a tank's last 7 days of dosing
func (s *DosingService) AnalyzeTank(ctx context.Context, tankID string) (*domain.Analysis, error) {
	week, err := s.Week(ctx, tankID)
	if err != nil {
		return nil, err
	}

	analysis, err := s.engine.Analyze(domain.AnalysisInput{
		TankVolume:   week.Tank.VolumeLiters,
		Fertilizers:  week.Fertilizers,
		WeeklyDosing: week.Dosing,
	})
	if err != nil {
		return nil, fmt.Errorf("analyze tank %s: %w", tankID, err)
	}

	log.Debug().
		Str("tank_id", tankID).
		Int("fertilizers", len(week.Fertilizers)).
		Int("dosed", len(week.Dosing)).
		Msg("analyzed tank")

	return analysis, nil
}

// ProjectTank projects the coming week assuming the tank keeps its current
// routine: it starts from this week's totals and adds the daily average of
// this week's dosing each day. An unset water change uses the default
// day and percentage.
func (s *DosingService) ProjectTank(ctx context.Context, tankID string, waterChangeDay int, waterChangePercent float64) ([]domain.ProjectionPoint, error) {
	analysis, err := s.AnalyzeTank(ctx, tankID)
	if err != nil {
		return nil, err
	}

	days := s.engine.Config().DaysPerWeek
	totals := analysis.WeeklyTotals
	daily := domain.NutrientLevels{
		Nitrogen:   totals.Nitrogen / days,
		Phosphorus: totals.Phosphorus / days,
		Potassium:  totals.Potassium / days,
		Iron:       totals.Iron / days,
	}

	return s.engine.Project(s.plan(totals, daily, waterChangeDay, waterChangePercent))
}

// Project runs the projector on caller-supplied levels, starting today.
// Negative levels are rejected with domain.ErrInvalidLevel.
func (s *DosingService) Project(start, daily domain.NutrientLevels, waterChangeDay int, waterChangePercent float64) ([]domain.ProjectionPoint, error) {
	if err := start.Validate(); err != nil {
		return nil, err
	}
	if err := daily.Validate(); err != nil {
		return nil, err
	}

	return s.engine.Project(s.plan(start, daily, waterChangeDay, waterChangePercent))
}

// plan builds a projection starting today. A zero day and zero percent
// mean the caller left the water change unset and get the configured
// default. Otherwise a day outside 1..7 means no water change.
func (s *DosingService) plan(start, daily domain.NutrientLevels, waterChangeDay int, waterChangePercent float64) domain.ProjectionPlan {
	if waterChangeDay == 0 && waterChangePercent == 0 {
		return s.engine.DefaultProjectionPlan(s.clock.Now(), start, daily)
	}

	return domain.ProjectionPlan{
		From:               s.clock.Now(),
		Start:              start,
		Daily:              daily,
		WaterChangeDay:     waterChangeDay,
		WaterChangePercent: waterChangePercent,
	}
}
