package service

import (
	"context"
	"fmt"
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/profile/model/dto"
	"indivoyage/internal/domains/profile/repository"
	"indivoyage/shared/constant"
	"indivoyage/shared/logger"
	"indivoyage/shared/money"
)

type Profile interface {
	Get(ctx context.Context) (dto.ProfileResponse, error)
	Update(ctx context.Context, req dto.UpdateProfileRequest) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo      repository.Profile
	formatter *money.Formatter
	otel      otel.Otel
}

func New(repo repository.Profile, formatter *money.Formatter, otel otel.Otel) Profile {
	return &serviceImpl{
		repo:      repo,
		formatter: formatter,
		otel:      otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	profile, err := s.repo.Get(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	res.FromModel(profile, s.formatter)

	return res, nil
}

// Update validates the form and echoes it back. Nothing is stored.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateProfileRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return res, err
	}

	profile, err := s.repo.Get(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	logger.FromContext(ctx).Info().Msg("profile update accepted")

	return req.ToResponse(profile.User), nil
}
