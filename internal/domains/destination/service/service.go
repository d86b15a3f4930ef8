package service

import (
	"context"
	"fmt"
	"indivoyage/config"
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/destination/model"
	"indivoyage/internal/domains/destination/model/dto"
	"indivoyage/internal/domains/destination/repository"
	itineraryDto "indivoyage/internal/domains/itinerary/model/dto"
	itineraryRepo "indivoyage/internal/domains/itinerary/repository"
	"indivoyage/shared"
	"indivoyage/shared/cache"
	"indivoyage/shared/constant"
	gDto "indivoyage/shared/dto"
	"indivoyage/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllDestination = "destination:get_all"
	cacheCountDestination  = "destination:count"
)

type Destination interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDestinationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetDetail(ctx context.Context, id, itineraryID string) (dto.DetailResponse, error)
}

type serviceImpl struct {
	repo          repository.Destination
	detailRepo    repository.Detail
	itineraryRepo itineraryRepo.Itinerary
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	repo repository.Destination,
	detailRepo repository.Detail,
	itineraryRepo itineraryRepo.Itinerary,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Destination {
	return &serviceImpl{
		repo:          repo,
		detailRepo:    detailRepo,
		itineraryRepo: itineraryRepo,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

func (s *serviceImpl) pageSize() int {
	if s.cfg.Catalog.DestinationsPageSize > 0 {
		return s.cfg.Catalog.DestinationsPageSize
	}

	return constant.DefaultValueLimit
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDestinationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Limit = s.pageSize()
	if req.Page < 1 {
		req.Page = constant.DefaultValuePage
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDestination, req)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for destinations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count destinations")

		return res, fmt.Errorf("failed to count destinations: %w", err)
	}

	destinations, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get destinations")

		return res, fmt.Errorf("failed to get destinations: %w", err)
	}

	res.FromModels(destinations, total, req)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Debug().Err(err).Msg("failed to save destinations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountDestination, req)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		return total, fmt.Errorf("failed to count destinations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Debug().Err(err).Msg("failed to save destination count to cache")
		}
	}()

	return total, nil
}

// GetDetail resolves the detail page. An explicit id wins over an itinerary; an itinerary
// without a dedicated page and an empty request both fall back to the featured destination.
func (s *serviceImpl) GetDetail(ctx context.Context, id, itineraryID string) (res dto.DetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDetail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ref := id

	if ref == constant.Empty && itineraryID != constant.Empty {
		itinerary, err := s.itineraryRepo.Get(ctx, itineraryDto.ByID(itineraryID))
		if err != nil {
			return res, fmt.Errorf("failed to get itinerary: %w", err)
		}

		if itinerary.ID == constant.Empty {
			return res, failure.NotFound("itinerary not found")
		}

		ref = itinerary.DetailID
	}

	if ref == constant.Empty {
		ref = model.FeaturedDetailID
	}

	scope.SetAttribute("destination.ref", ref)

	detail, err := s.detailRepo.Get(ctx, dto.ByDetailReference(ref))
	if err != nil {
		log.Error().Err(err).Str("destination", ref).Msg("failed to get destination detail")

		return res, fmt.Errorf("failed to get destination detail: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound("destination not found")
	}

	res.FromModel(detail)

	return res, nil
}
