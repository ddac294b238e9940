package grpc

import (
	"github.com/quentinrf/plant-monitor/services/dosing-service/internal/domain"
	"github.com/quentinrf/plant-monitor/services/dosing-service/pkg/api"
)

func convertTank(t *domain.Tank) *api.Tank {
	return &api.Tank{
		Id:           t.ID,
		Name:         t.Name,
		VolumeLiters: t.VolumeLiters,
		CreatedAt:    t.CreatedAt.Unix(),
	}
}

func convertFertilizer(f *domain.Fertilizer) *api.Fertilizer {
	return &api.Fertilizer{
		Id:            f.ID,
		Name:          f.Name,
		Unit:          string(f.Unit),
		NitrogenPpm:   f.NitrogenPPM,
		PhosphorusPpm: f.PhosphorusPPM,
		PotassiumPpm:  f.PotassiumPPM,
		IronPpm:       f.IronPPM,
		MagnesiumPpm:  f.MagnesiumPPM,
	}
}

func convertDose(d *domain.DoseEntry) *api.DoseEntry {
	return &api.DoseEntry{
		Id:           d.ID,
		TankId:       d.TankID,
		FertilizerId: d.FertilizerID,
		Amount:       d.Amount,
		DosedAt:      d.DosedAt.Unix(),
	}
}

func convertAnalysis(a *domain.Analysis) *api.Analysis {
	recs := make([]*api.Recommendation, len(a.Recommendations))
	for i, r := range a.Recommendations {
		recs[i] = &api.Recommendation{
			FertilizerId:   r.FertilizerID,
			FertilizerName: r.FertilizerName,
			Amount:         r.Amount,
			Unit:           string(r.Unit),
			Frequency:      string(r.Frequency),
			ReasonNutrient: string(r.Reasoning.Nutrient),
			Reasoning:      r.Reasoning.Text,
		}
	}

	return &api.Analysis{
		WeeklyTotals: &api.NutrientLevels{
			Nitrogen:   a.WeeklyTotals.Nitrogen,
			Phosphorus: a.WeeklyTotals.Phosphorus,
			Potassium:  a.WeeklyTotals.Potassium,
			Iron:       a.WeeklyTotals.Iron,
		},
		Status: &api.NutrientStatus{
			Nitrogen:   string(a.Status.Nitrogen),
			Phosphorus: string(a.Status.Phosphorus),
			Potassium:  string(a.Status.Potassium),
			Iron:       string(a.Status.Iron),
		},
		Recommendations: recs,
		Tips:            a.Tips,
	}
}

func convertPoints(points []domain.ProjectionPoint) []*api.ProjectionPoint {
	out := make([]*api.ProjectionPoint, len(points))
	for i, p := range points {
		out[i] = &api.ProjectionPoint{
			Date:       p.Date,
			Nitrogen:   p.Nitrogen,
			Phosphorus: p.Phosphorus,
			Potassium:  p.Potassium,
			Iron:       p.Iron,
		}
	}
	return out
}

// levelsFromProto treats a missing message as all zeros
func levelsFromProto(l *api.NutrientLevels) domain.NutrientLevels {
	if l == nil {
		return domain.NutrientLevels{}
	}
	return domain.NutrientLevels{
		Nitrogen:   l.Nitrogen,
		Phosphorus: l.Phosphorus,
		Potassium:  l.Potassium,
		Iron:       l.Iron,
	}
}
