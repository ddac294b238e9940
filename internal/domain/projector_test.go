package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projectionStart = NutrientLevels{Nitrogen: 10, Phosphorus: 1, Potassium: 10, Iron: 0.1}

func TestProject_DecayThenDose(t *testing.T) {
	e := newTestEngine()
	from := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	points, err := e.Project(ProjectionPlan{
		From:           from,
		Start:          projectionStart,
		WaterChangeDay: 0,
	})
	require.NoError(t, err)
	require.Len(t, points, 7)

	assert.Equal(t, ProjectionPoint{
		Date:       "2026-03-01",
		Nitrogen:   9.5,
		Phosphorus: 0.95,
		Potassium:  9.5,
		Iron:       0.09,
	}, points[0])

	for i, p := range points {
		assert.Equal(t, from.AddDate(0, 0, i).Format("2006-01-02"), p.Date)
	}
	assert.Equal(t, "2026-03-07", points[6].Date)
}

func TestProject_IronDecaysFaster(t *testing.T) {
	e := newTestEngine()

	points, err := e.Project(ProjectionPlan{
		From:  time.Now(),
		Start: NutrientLevels{Phosphorus: 1, Iron: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.95, points[0].Phosphorus)
	assert.Equal(t, 0.9, points[0].Iron)
}

func TestProject_WaterChangeAppliedOnce(t *testing.T) {
	e := newTestEngine()

	t.Run("first day", func(t *testing.T) {
		points, err := e.Project(ProjectionPlan{
			From:               time.Now(),
			Start:              projectionStart,
			WaterChangeDay:     1,
			WaterChangePercent: 50,
		})
		require.NoError(t, err)
		// 10 * 0.95 * 0.5 = 4.75, rounded half-up
		assert.Equal(t, 4.8, points[0].Nitrogen)
	})

	t.Run("third day", func(t *testing.T) {
		points, err := e.Project(ProjectionPlan{
			From:               time.Now(),
			Start:              projectionStart,
			WaterChangeDay:     3,
			WaterChangePercent: 50,
		})
		require.NoError(t, err)
		assert.Equal(t, 9.5, points[0].Nitrogen)
		assert.Equal(t, 9.0, points[1].Nitrogen)
		assert.Equal(t, 4.3, points[2].Nitrogen)
		// no second dilution
		assert.Equal(t, 4.1, points[3].Nitrogen)
	})
}

func TestProject_DailyDosing(t *testing.T) {
	e := newTestEngine()

	points, err := e.Project(ProjectionPlan{
		From:  time.Now(),
		Daily: NutrientLevels{Nitrogen: 2, Phosphorus: 0.2, Potassium: 2, Iron: 0.05},
	})
	require.NoError(t, err)

	assert.Equal(t, 2.0, points[0].Nitrogen)
	assert.Equal(t, 0.2, points[0].Phosphorus)
	assert.Equal(t, 0.05, points[0].Iron)
	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].Nitrogen, points[i-1].Nitrogen)
	}
}

func TestProject_DefaultPlan(t *testing.T) {
	e := newTestEngine()

	plan := e.DefaultProjectionPlan(time.Now(), projectionStart, NutrientLevels{})
	assert.Equal(t, 7, plan.WaterChangeDay)
	assert.Equal(t, 50.0, plan.WaterChangePercent)

	points, err := e.Project(plan)
	require.NoError(t, err)
	require.Len(t, points, 7)
	// 10 * 0.95^7 = 6.98, halved on day 7
	assert.Equal(t, 7.4, points[5].Nitrogen)
	assert.Equal(t, 3.5, points[6].Nitrogen)
}

func TestProject_InvalidWaterChange(t *testing.T) {
	e := newTestEngine()

	for _, pct := range []float64{-1, 100.5} {
		_, err := e.Project(ProjectionPlan{From: time.Now(), WaterChangeDay: 7, WaterChangePercent: pct})
		assert.ErrorIs(t, err, ErrInvalidWaterChange)
	}
}

func TestProject_Restartable(t *testing.T) {
	e := newTestEngine()
	plan := e.DefaultProjectionPlan(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), projectionStart, NutrientLevels{Nitrogen: 1})

	first, err := e.Project(plan)
	require.NoError(t, err)
	second, err := e.Project(plan)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
