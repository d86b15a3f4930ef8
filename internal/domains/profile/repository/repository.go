package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/profile/model"
	"indivoyage/shared/constant"
)

//go:embed data/profile.json
var seed []byte

type Profile interface {
	Get(ctx context.Context) (model.Profile, error)
}

type repositoryImpl struct {
	profile model.Profile
	otel    otel.Otel
}

func New(otel otel.Otel) (Profile, error) {
	var profile model.Profile

	if err := json.Unmarshal(seed, &profile); err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return &repositoryImpl{profile: profile, otel: otel}, nil
}

func (r *repositoryImpl) Get(ctx context.Context) (model.Profile, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Get")
	defer scope.End()

	return r.profile, nil
}
