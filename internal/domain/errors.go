package domain

import "errors"

var (
	// ErrInvalidVolume indicates a tank volume that is zero or negative
	ErrInvalidVolume = errors.New("tank volume must be greater than zero")

	// ErrInvalidConcentration indicates a negative nutrient concentration
	ErrInvalidConcentration = errors.New("nutrient concentration cannot be negative")

	// ErrInvalidLevel indicates a negative ppm level handed to the projector
	ErrInvalidLevel = errors.New("nutrient level cannot be negative")

	// ErrInvalidUnit indicates a dosing unit other than ml or g
	ErrInvalidUnit = errors.New("dosing unit must be ml or g")

	// ErrInvalidDose indicates a dose amount that is zero or negative
	ErrInvalidDose = errors.New("dose amount must be greater than zero")

	// ErrInvalidWaterChange indicates a water change percentage outside 0-100
	ErrInvalidWaterChange = errors.New("water change percent must be between 0 and 100")

	// ErrMissingName indicates an entity created without a display name
	ErrMissingName = errors.New("name is required")

	// ErrTankNotFound indicates requested tank doesn't exist
	ErrTankNotFound = errors.New("tank not found")

	// ErrFertilizerNotFound indicates requested fertilizer doesn't exist
	ErrFertilizerNotFound = errors.New("fertilizer not found")
)
