package service

import (
	"context"
	"fmt"
	"indivoyage/config"
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/home/model/dto"
	"indivoyage/internal/domains/home/repository"
	itineraryModel "indivoyage/internal/domains/itinerary/model"
	itineraryService "indivoyage/internal/domains/itinerary/service"
	"indivoyage/shared/cache"
	"indivoyage/shared/constant"

	"github.com/rs/zerolog/log"
)

const cacheGetHome = "home:get"

type Home interface {
	Get(ctx context.Context) (dto.HomeResponse, error)
}

type serviceImpl struct {
	repo        repository.Home
	itineraries itineraryService.Itinerary
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Home, itineraries itineraryService.Itinerary, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Home {
	return &serviceImpl{
		repo:        repo,
		itineraries: itineraries,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.HomeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetHome, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetHome).Msg("cache hit for home page")

		return res, nil
	}

	content, err := s.repo.Get(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to get home content: %w", err)
	}

	itineraries, err := s.itineraries.List(ctx, itineraryModel.PlacementHome)
	if err != nil {
		return res, fmt.Errorf("failed to get home itineraries: %w", err)
	}

	res.FromModel(content, itineraries)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetHome, res, s.cfg.Cache.TTL); err != nil {
			log.Debug().Err(err).Msg("failed to save home page to cache")
		}
	}()

	return res, nil
}
