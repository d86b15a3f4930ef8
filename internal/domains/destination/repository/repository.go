package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	_ "embed"
	"fmt"
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/destination/model"
	gDto "indivoyage/shared/dto"
	gRepo "indivoyage/shared/repository"
)

var (
	//go:embed data/destinations.json
	destinationSeed []byte

	//go:embed data/details.json
	detailSeed []byte
)

type Destination interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Destination, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type Detail interface {
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Detail, error)
}

type destinationImpl struct {
	gRepo.Repository[model.Destination]
}

type detailImpl struct {
	gRepo.Repository[model.Detail]
}

func New(otel otel.Otel) (Destination, error) {
	records, err := gRepo.LoadJSON[model.Destination](destinationSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to load destinations: %w", err)
	}

	return &destinationImpl{
		Repository: gRepo.NewRepository(model.EntityName, records, otel),
	}, nil
}

func NewDetail(otel otel.Otel) (Detail, error) {
	records, err := gRepo.LoadJSON[model.Detail](detailSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to load destination details: %w", err)
	}

	return &detailImpl{
		Repository: gRepo.NewRepository(model.DetailEntityName, records, otel),
	}, nil
}
