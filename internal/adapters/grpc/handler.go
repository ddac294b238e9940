package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/quentinrf/plant-monitor/services/dosing-service/internal/domain"
	"github.com/quentinrf/plant-monitor/services/dosing-service/internal/ports"
	"github.com/quentinrf/plant-monitor/services/dosing-service/pkg/api"
)

// DosingServiceHandler implements the gRPC DosingService
type DosingServiceHandler struct {
	api.UnimplementedDosingServiceServer
	repo    domain.JournalRepository
	service *ports.DosingService
}

// NewDosingServiceHandler creates a new gRPC handler
func NewDosingServiceHandler(repo domain.JournalRepository, service *ports.DosingService) *DosingServiceHandler {
	return &DosingServiceHandler{
		repo:    repo,
		service: service,
	}
}

// RegisterTank adds a tank to the journal
func (h *DosingServiceHandler) RegisterTank(ctx context.Context, req *api.RegisterTankRequest) (*api.RegisterTankResponse, error) {
	log.Info().Str("name", req.Name).Float64("volume", req.VolumeLiters).Msg("RegisterTank called")

	tank, err := domain.NewTank(req.Name, req.VolumeLiters)
	if err != nil {
		return nil, toStatus(err, "invalid tank")
	}

	if err := h.repo.SaveTank(ctx, tank); err != nil {
		log.Error().Err(err).Msg("failed to save tank")
		return nil, status.Error(codes.Internal, "failed to save tank")
	}

	return &api.RegisterTankResponse{Tank: convertTank(tank)}, nil
}

// RegisterFertilizer adds a product to the fertilizer inventory
func (h *DosingServiceHandler) RegisterFertilizer(ctx context.Context, req *api.RegisterFertilizerRequest) (*api.RegisterFertilizerResponse, error) {
	in := req.Fertilizer
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "fertilizer is required")
	}
	log.Info().Str("name", in.Name).Str("unit", in.Unit).Msg("RegisterFertilizer called")

	f, err := domain.NewFertilizer(in.Name, domain.DoseUnit(in.Unit),
		in.NitrogenPpm, in.PhosphorusPpm, in.PotassiumPpm, in.IronPpm, in.MagnesiumPpm)
	if err != nil {
		return nil, toStatus(err, "invalid fertilizer")
	}
	f.ID = in.Id

	if err := h.repo.SaveFertilizer(ctx, f); err != nil {
		log.Error().Err(err).Msg("failed to save fertilizer")
		return nil, status.Error(codes.Internal, "failed to save fertilizer")
	}

	return &api.RegisterFertilizerResponse{Fertilizer: convertFertilizer(f)}, nil
}

// RecordDose logs a dose in a tank's journal
func (h *DosingServiceHandler) RecordDose(ctx context.Context, req *api.RecordDoseRequest) (*api.RecordDoseResponse, error) {
	log.Info().
		Str("tank_id", req.TankId).
		Str("fertilizer_id", req.FertilizerId).
		Float64("amount", req.Amount).
		Msg("RecordDose called")

	dose, err := h.service.RecordDose(ctx, req.TankId, req.FertilizerId, req.Amount)
	if err != nil {
		return nil, toStatus(err, "failed to record dose")
	}

	return &api.RecordDoseResponse{Dose: convertDose(dose)}, nil
}

// GetDoseHistory returns a tank's journal within a time range
func (h *DosingServiceHandler) GetDoseHistory(ctx context.Context, req *api.GetDoseHistoryRequest) (*api.GetDoseHistoryResponse, error) {
	log.Info().
		Str("tank_id", req.TankId).
		Int64("start", req.StartTime).
		Int64("end", req.EndTime).
		Msg("GetDoseHistory called")

	if _, err := h.repo.GetTank(ctx, req.TankId); err != nil {
		return nil, toStatus(err, "failed to get tank")
	}

	doses, err := h.repo.GetDosesInRange(ctx, req.TankId, time.Unix(req.StartTime, 0), time.Unix(req.EndTime, 0))
	if err != nil {
		log.Error().Err(err).Msg("failed to get doses")
		return nil, status.Error(codes.Internal, "failed to get doses")
	}

	out := make([]*api.DoseEntry, len(doses))
	for i, d := range doses {
		out[i] = convertDose(d)
	}

	return &api.GetDoseHistoryResponse{Doses: out}, nil
}

// AnalyzeTank runs the EI analysis over the tank's last week of dosing
func (h *DosingServiceHandler) AnalyzeTank(ctx context.Context, req *api.AnalyzeTankRequest) (*api.AnalyzeTankResponse, error) {
	log.Info().Str("tank_id", req.TankId).Msg("AnalyzeTank called")

	analysis, err := h.service.AnalyzeTank(ctx, req.TankId)
	if err != nil {
		return nil, toStatus(err, "failed to analyze tank")
	}

	return &api.AnalyzeTankResponse{Analysis: convertAnalysis(analysis)}, nil
}

// ProjectTank projects the tank's next 7 days from its current routine
func (h *DosingServiceHandler) ProjectTank(ctx context.Context, req *api.ProjectTankRequest) (*api.ProjectionResponse, error) {
	log.Info().
		Str("tank_id", req.TankId).
		Int32("water_change_day", req.WaterChangeDay).
		Float64("water_change_percent", req.WaterChangePercent).
		Msg("ProjectTank called")

	points, err := h.service.ProjectTank(ctx, req.TankId, int(req.WaterChangeDay), req.WaterChangePercent)
	if err != nil {
		return nil, toStatus(err, "failed to project tank")
	}

	return &api.ProjectionResponse{Points: convertPoints(points)}, nil
}

// ProjectNutrients projects caller-supplied levels over the next 7 days
func (h *DosingServiceHandler) ProjectNutrients(ctx context.Context, req *api.ProjectNutrientsRequest) (*api.ProjectionResponse, error) {
	log.Info().
		Int32("water_change_day", req.WaterChangeDay).
		Float64("water_change_percent", req.WaterChangePercent).
		Msg("ProjectNutrients called")

	points, err := h.service.Project(levelsFromProto(req.Start), levelsFromProto(req.Daily),
		int(req.WaterChangeDay), req.WaterChangePercent)
	if err != nil {
		return nil, toStatus(err, "failed to project nutrients")
	}

	return &api.ProjectionResponse{Points: convertPoints(points)}, nil
}

// toStatus maps domain errors onto gRPC status codes
func toStatus(err error, msg string) error {
	switch {
	case errors.Is(err, domain.ErrTankNotFound), errors.Is(err, domain.ErrFertilizerNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidVolume),
		errors.Is(err, domain.ErrInvalidConcentration),
		errors.Is(err, domain.ErrInvalidUnit),
		errors.Is(err, domain.ErrInvalidDose),
		errors.Is(err, domain.ErrInvalidWaterChange),
		errors.Is(err, domain.ErrInvalidLevel),
		errors.Is(err, domain.ErrMissingName):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	log.Error().Err(err).Msg(msg)
	return status.Error(codes.Internal, msg)
}
