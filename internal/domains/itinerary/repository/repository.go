package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	_ "embed"
	"fmt"
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/itinerary/model"
	gDto "indivoyage/shared/dto"
	gRepo "indivoyage/shared/repository"
)

//go:embed data/itineraries.json
var seed []byte

type Itinerary interface {
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Itinerary, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Itinerary, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Itinerary]
}

func New(otel otel.Otel) (Itinerary, error) {
	records, err := gRepo.LoadJSON[model.Itinerary](seed)
	if err != nil {
		return nil, fmt.Errorf("failed to load itineraries: %w", err)
	}

	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, records, otel),
	}, nil
}
