package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/home/model"
	"indivoyage/shared/constant"
)

//go:embed data/home.json
var seed []byte

type Home interface {
	Get(ctx context.Context) (model.Content, error)
}

type repositoryImpl struct {
	content model.Content
	otel    otel.Otel
}

func New(otel otel.Otel) (Home, error) {
	var content model.Content

	if err := json.Unmarshal(seed, &content); err != nil {
		return nil, fmt.Errorf("failed to load home content: %w", err)
	}

	return &repositoryImpl{content: content, otel: otel}, nil
}

func (r *repositoryImpl) Get(ctx context.Context) (content model.Content, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Get")
	defer scope.End()

	return r.content, nil
}
