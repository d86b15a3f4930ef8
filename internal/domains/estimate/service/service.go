package service

import (
	"context"
	"fmt"
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/estimate/model"
	"indivoyage/internal/domains/estimate/model/dto"
	itineraryModel "indivoyage/internal/domains/itinerary/model"
	itineraryService "indivoyage/internal/domains/itinerary/service"
	"indivoyage/shared/constant"
	"indivoyage/shared/money"

	"github.com/rs/zerolog/log"
)

type Estimate interface {
	Calculator(ctx context.Context) (dto.CalculatorResponse, error)
	Estimate(ctx context.Context, req dto.EstimateRequest) dto.EstimateResponse
}

type serviceImpl struct {
	itineraries itineraryService.Itinerary
	formatter   *money.Formatter
	otel        otel.Otel
}

func New(itineraries itineraryService.Itinerary, formatter *money.Formatter, otel otel.Otel) Estimate {
	return &serviceImpl{
		itineraries: itineraries,
		formatter:   formatter,
		otel:        otel,
	}
}

// Calculator returns the form in its reset state together with the suggested itineraries.
func (s *serviceImpl) Calculator(ctx context.Context) (res dto.CalculatorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calculator")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	defaults := model.DefaultTripConfig()

	res.Options = dto.Options{
		Meal:          model.MealTiers,
		Transport:     model.TransportTiers,
		Accommodation: model.AccommodationTiers,
	}
	res.Days = dto.DayRange{Min: model.MinDays, Max: model.MaxDays, Default: model.DefaultDays}
	res.Defaults = dto.FromTripConfig(defaults)
	res.Estimate.FromModel(defaults, s.formatter)

	res.Itineraries, err = s.itineraries.List(ctx, itineraryModel.PlacementCalculator)
	if err != nil {
		log.Error().Err(err).Msg("failed to get suggested itineraries")

		return res, fmt.Errorf("failed to get suggested itineraries: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Estimate(ctx context.Context, req dto.EstimateRequest) (res dto.EstimateResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Estimate")
	defer scope.End()

	config := req.ToModel()
	res.FromModel(config, s.formatter)

	scope.SetAttributes(map[string]any{
		"estimate.days":  res.Days,
		"estimate.total": res.Total,
	})

	return res
}
