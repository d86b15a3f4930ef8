package service

import (
	"context"
	"fmt"
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/itinerary/model"
	"indivoyage/internal/domains/itinerary/model/dto"
	"indivoyage/internal/domains/itinerary/repository"
	"indivoyage/shared/constant"
	gDto "indivoyage/shared/dto"
	"indivoyage/shared/failure"
	"indivoyage/shared/money"

	"github.com/rs/zerolog/log"
)

type Itinerary interface {
	List(ctx context.Context, placement string) ([]dto.ItineraryResponse, error)
	Find(ctx context.Context, id string) (model.Itinerary, error)
}

type serviceImpl struct {
	repo      repository.Itinerary
	formatter *money.Formatter
	otel      otel.Otel
}

func New(repo repository.Itinerary, formatter *money.Formatter, otel otel.Otel) Itinerary {
	return &serviceImpl{
		repo:      repo,
		formatter: formatter,
		otel:      otel,
	}
}

// List returns the suggestions shown on one page, in seed order.
func (s *serviceImpl) List(ctx context.Context, placement string) (res []dto.ItineraryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("itinerary.placement", placement)

	itineraries, err := s.repo.GetAll(ctx, gDto.QueryParams{}, dto.ByPlacement(placement))
	if err != nil {
		log.Error().Err(err).Msg("failed to get itineraries")

		return nil, fmt.Errorf("failed to get itineraries: %w", err)
	}

	return dto.FromModels(itineraries, s.formatter), nil
}

func (s *serviceImpl) Find(ctx context.Context, id string) (itinerary model.Itinerary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Find")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	itinerary, err = s.repo.Get(ctx, dto.ByID(id))
	if err != nil {
		return itinerary, fmt.Errorf("failed to get itinerary: %w", err)
	}

	if itinerary.ID == constant.Empty {
		return itinerary, failure.NotFound("itinerary not found")
	}

	return itinerary, nil
}
