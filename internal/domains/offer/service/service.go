package service

import (
	"context"
	"fmt"
	"indivoyage/config"
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/offer/model"
	"indivoyage/internal/domains/offer/model/dto"
	"indivoyage/internal/domains/offer/repository"
	"indivoyage/shared"
	"indivoyage/shared/cache"
	"indivoyage/shared/constant"
	gDto "indivoyage/shared/dto"
	"indivoyage/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllOffer = "offer:get_all"
	cacheCountOffer  = "offer:count"
)

type Offer interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOffersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, ref string) (dto.OfferResponse, error)
	Find(ctx context.Context, ref string) (model.Offer, error)
}

type serviceImpl struct {
	repo  repository.Offer
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Offer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Offer {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) pageSize() int {
	if s.cfg.Catalog.OffersPageSize > 0 {
		return s.cfg.Catalog.OffersPageSize
	}

	return constant.DefaultValueLimit
}

// GetAll returns one page of offers. The page size is fixed by configuration.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOffersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Limit = s.pageSize()
	if req.Page < 1 {
		req.Page = constant.DefaultValuePage
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllOffer, req)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for offers")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count offers")

		return res, fmt.Errorf("failed to count offers: %w", err)
	}

	offers, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get offers")

		return res, fmt.Errorf("failed to get offers: %w", err)
	}

	res.FromModels(offers, total, req)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Debug().Err(err).Msg("failed to save offers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountOffer, req)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for offer count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count offers")

		return total, fmt.Errorf("failed to count offers: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Debug().Err(err).Msg("failed to save offer count to cache")
		}
	}()

	return total, nil
}

// Find returns the offer matching ref by id or slug.
func (s *serviceImpl) Find(ctx context.Context, ref string) (offer model.Offer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Find")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	offer, err = s.repo.Get(ctx, dto.ByReference(ref))
	if err != nil {
		log.Error().Err(err).Str("offer", ref).Msg("failed to get offer")

		return offer, fmt.Errorf("failed to get offer: %w", err)
	}

	if offer.ID == constant.Empty {
		return offer, failure.NotFound("offer not found")
	}

	return offer, nil
}

func (s *serviceImpl) Get(ctx context.Context, ref string) (res dto.OfferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	offer, err := s.Find(ctx, ref)
	if err != nil {
		return res, err
	}

	res.FromModel(offer)

	return res, nil
}
