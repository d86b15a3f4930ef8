package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	_ "embed"
	"fmt"
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/offer/model"
	gDto "indivoyage/shared/dto"
	gRepo "indivoyage/shared/repository"
)

//go:embed data/offers.json
var seed []byte

type Offer interface {
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Offer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Offer, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Offer]
	otel otel.Otel
}

func New(otel otel.Otel) (Offer, error) {
	records, err := gRepo.LoadJSON[model.Offer](seed)
	if err != nil {
		return nil, fmt.Errorf("failed to load offers: %w", err)
	}

	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, records, otel),
		otel:       otel,
	}, nil
}
