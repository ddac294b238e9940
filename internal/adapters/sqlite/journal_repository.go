package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/quentinrf/plant-monitor/services/dosing-service/internal/domain"
)

// timeLayout sorts lexicographically in time order for UTC values
const timeLayout = "2006-01-02 15:04:05.000000000"

// JournalRepository implements domain.JournalRepository with SQLite
type JournalRepository struct {
	db *sql.DB
}

// NewJournalRepository creates a SQLite-backed repository
func NewJournalRepository(dbPath string) (*JournalRepository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS tanks (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		volume_liters REAL NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS fertilizers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		unit TEXT NOT NULL,
		nitrogen_ppm REAL NOT NULL DEFAULT 0,
		phosphorus_ppm REAL NOT NULL DEFAULT 0,
		potassium_ppm REAL NOT NULL DEFAULT 0,
		iron_ppm REAL NOT NULL DEFAULT 0,
		magnesium_ppm REAL NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS doses (
		id TEXT PRIMARY KEY,
		tank_id TEXT NOT NULL,
		fertilizer_id TEXT NOT NULL,
		amount REAL NOT NULL,
		dosed_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_doses_tank_time ON doses(tank_id, dosed_at);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &JournalRepository{db: db}, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp: %w", err)
	}
	return t, nil
}

// SaveTank inserts or replaces a tank
func (r *JournalRepository) SaveTank(ctx context.Context, tank *domain.Tank) error {
	if tank.ID == "" {
		tank.ID = uuid.NewString()
	}

	query := `INSERT OR REPLACE INTO tanks (id, name, volume_liters, created_at) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, tank.ID, tank.Name, tank.VolumeLiters, formatTime(tank.CreatedAt)); err != nil {
		return fmt.Errorf("failed to insert tank: %w", err)
	}
	return nil
}

// GetTank retrieves a tank by ID
func (r *JournalRepository) GetTank(ctx context.Context, id string) (*domain.Tank, error) {
	query := `SELECT id, name, volume_liters, created_at FROM tanks WHERE id = ?`

	tank, err := scanTank(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTankNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query tank: %w", err)
	}
	return tank, nil
}

// ListTanks returns every tank, oldest first
func (r *JournalRepository) ListTanks(ctx context.Context) ([]*domain.Tank, error) {
	query := `SELECT id, name, volume_liters, created_at FROM tanks ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tanks: %w", err)
	}
	defer rows.Close()

	var tanks []*domain.Tank
	for rows.Next() {
		tank, err := scanTank(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tank: %w", err)
		}
		tanks = append(tanks, tank)
	}
	return tanks, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanTank(s scanner) (*domain.Tank, error) {
	var tank domain.Tank
	var createdAt string

	if err := s.Scan(&tank.ID, &tank.Name, &tank.VolumeLiters, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if tank.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &tank, nil
}

// SaveFertilizer inserts or replaces a fertilizer
func (r *JournalRepository) SaveFertilizer(ctx context.Context, f *domain.Fertilizer) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}

	query := `
		INSERT OR REPLACE INTO fertilizers
			(id, name, unit, nitrogen_ppm, phosphorus_ppm, potassium_ppm, iron_ppm, magnesium_ppm)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.Name, string(f.Unit),
		f.NitrogenPPM, f.PhosphorusPPM, f.PotassiumPPM, f.IronPPM, f.MagnesiumPPM,
	)
	if err != nil {
		return fmt.Errorf("failed to insert fertilizer: %w", err)
	}
	return nil
}

const fertilizerColumns = `id, name, unit, nitrogen_ppm, phosphorus_ppm, potassium_ppm, iron_ppm, magnesium_ppm`

func scanFertilizer(s scanner) (*domain.Fertilizer, error) {
	var f domain.Fertilizer
	var unit string

	err := s.Scan(&f.ID, &f.Name, &unit,
		&f.NitrogenPPM, &f.PhosphorusPPM, &f.PotassiumPPM, &f.IronPPM, &f.MagnesiumPPM)
	if err != nil {
		return nil, err
	}
	f.Unit = domain.DoseUnit(unit)
	return &f, nil
}

// GetFertilizer retrieves a fertilizer by ID
func (r *JournalRepository) GetFertilizer(ctx context.Context, id string) (*domain.Fertilizer, error) {
	query := `SELECT ` + fertilizerColumns + ` FROM fertilizers WHERE id = ?`

	f, err := scanFertilizer(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFertilizerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query fertilizer: %w", err)
	}
	return f, nil
}

// ListFertilizers returns the inventory sorted by name
func (r *JournalRepository) ListFertilizers(ctx context.Context) ([]*domain.Fertilizer, error) {
	query := `SELECT ` + fertilizerColumns + ` FROM fertilizers ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fertilizers: %w", err)
	}
	defer rows.Close()

	var fertilizers []*domain.Fertilizer
	for rows.Next() {
		f, err := scanFertilizer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fertilizer: %w", err)
		}
		fertilizers = append(fertilizers, f)
	}
	return fertilizers, rows.Err()
}

// SaveDose stores a journal entry
func (r *JournalRepository) SaveDose(ctx context.Context, dose *domain.DoseEntry) error {
	if dose.ID == "" {
		dose.ID = uuid.NewString()
	}

	query := `INSERT INTO doses (id, tank_id, fertilizer_id, amount, dosed_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, dose.ID, dose.TankID, dose.FertilizerID, dose.Amount, formatTime(dose.DosedAt))
	if err != nil {
		return fmt.Errorf("failed to insert dose: %w", err)
	}
	return nil
}

// GetDosesInRange returns a tank's doses in [start, end), oldest first
func (r *JournalRepository) GetDosesInRange(ctx context.Context, tankID string, start, end time.Time) ([]*domain.DoseEntry, error) {
	query := `
		SELECT id, tank_id, fertilizer_id, amount, dosed_at
		FROM doses
		WHERE tank_id = ? AND dosed_at >= ? AND dosed_at < ?
		ORDER BY dosed_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tankID, formatTime(start), formatTime(end))
	if err != nil {
		return nil, fmt.Errorf("failed to query doses: %w", err)
	}
	defer rows.Close()

	var doses []*domain.DoseEntry
	for rows.Next() {
		var dose domain.DoseEntry
		var dosedAt string

		if err := rows.Scan(&dose.ID, &dose.TankID, &dose.FertilizerID, &dose.Amount, &dosedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dose: %w", err)
		}
		if dose.DosedAt, err = parseTime(dosedAt); err != nil {
			return nil, err
		}

		doses = append(doses, &dose)
	}

	return doses, rows.Err()
}

// DeleteDosesBefore removes doses dosed before cutoff
func (r *JournalRepository) DeleteDosesBefore(ctx context.Context, cutoff time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM doses WHERE dosed_at < ?`, formatTime(cutoff))
	if err != nil {
		return fmt.Errorf("failed to delete old doses: %w", err)
	}

	return nil
}

// Close closes the database connection
func (r *JournalRepository) Close() error {
	return r.db.Close()
}
