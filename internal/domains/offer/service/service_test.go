package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"indivoyage/config"
	"indivoyage/infras/otel/mocks"
	offerMocks "indivoyage/internal/domains/offer/mocks"
	"indivoyage/internal/domains/offer/model"
	"indivoyage/internal/domains/offer/model/dto"
	"indivoyage/internal/domains/offer/repository"
	"indivoyage/internal/domains/offer/service"
	"indivoyage/shared/cache"
	cacheMocks "indivoyage/shared/cache/mocks"
	gDto "indivoyage/shared/dto"
	"indivoyage/shared/failure"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Catalog.OffersPageSize = 6

	return cfg
}

func newSeededService(t *testing.T) service.Offer {
	t.Helper()

	ot := mocks.NewOtel()

	repo, err := repository.New(ot)
	require.NoError(t, err)

	return service.New(repo, newConfig(), cache.NewRedisCache(nil, ot), ot)
}

func ids(res dto.GetOffersResponse) []string {
	out := make([]string, len(res.Offers))
	for i, offer := range res.Offers {
		out[i] = offer.ID
	}

	return out
}

func TestOfferService_GetAll_Seed(t *testing.T) {
	svc := newSeededService(t)

	tests := []struct {
		name          string
		params        gDto.QueryParams
		wantIDs       []string
		wantTotal     int
		wantTotalPage int
	}{
		{
			name:          "first page of everything",
			params:        gDto.QueryParams{Page: 1, Category: model.CategoryAll},
			wantIDs:       []string{"offer1", "offer2", "offer3", "offer4", "offer5", "offer6"},
			wantTotal:     7,
			wantTotalPage: 2,
		},
		{
			name:          "last page holds the remainder",
			params:        gDto.QueryParams{Page: 2, Category: model.CategoryAll},
			wantIDs:       []string{"offer7"},
			wantTotal:     7,
			wantTotalPage: 2,
		},
		{
			name:          "page past the end",
			params:        gDto.QueryParams{Page: 3, Category: model.CategoryAll},
			wantIDs:       []string{},
			wantTotal:     7,
			wantTotalPage: 2,
		},
		{
			name:          "cultural only",
			params:        gDto.QueryParams{Page: 1, Category: "cultural"},
			wantIDs:       []string{"offer1", "offer3", "offer7"},
			wantTotal:     3,
			wantTotalPage: 1,
		},
		{
			name:          "search ignores case and reads tags",
			params:        gDto.QueryParams{Page: 1, Category: model.CategoryAll, Search: "GHATS"},
			wantIDs:       []string{"offer7"},
			wantTotal:     1,
			wantTotalPage: 1,
		},
		{
			name:          "search in description",
			params:        gDto.QueryParams{Page: 1, Search: "houseboat"},
			wantIDs:       []string{"offer2"},
			wantTotal:     1,
			wantTotalPage: 1,
		},
		{
			name:          "category and keyword without overlap",
			params:        gDto.QueryParams{Page: 1, Category: "cultural", Search: "beach"},
			wantIDs:       []string{},
			wantTotal:     0,
			wantTotalPage: 0,
		},
		{
			name:          "category match is exact",
			params:        gDto.QueryParams{Page: 1, Category: "Cultural"},
			wantIDs:       []string{},
			wantTotal:     0,
			wantTotalPage: 0,
		},
		{
			name:          "unknown category",
			params:        gDto.QueryParams{Page: 1, Category: "space"},
			wantIDs:       []string{},
			wantTotal:     0,
			wantTotalPage: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.GetAll(context.Background(), tt.params, dto.BuildFilter(tt.params))
			require.NoError(t, err)

			assert.Equal(t, tt.wantIDs, ids(res))
			assert.Equal(t, tt.wantTotal, res.TotalData)
			assert.Equal(t, tt.wantTotalPage, res.TotalPage)
			assert.Equal(t, 6, res.PageSize)
			assert.Len(t, res.Categories, 5)
		})
	}
}

func TestOfferService_GetAll_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := offerMocks.NewMockOffer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, newConfig(), mockCache, mocks.NewOtel())

	params := gDto.QueryParams{Page: 1, Category: model.CategoryAll}

	t.Run("cache hit skips the repository", func(t *testing.T) {
		cached := dto.GetOffersResponse{TotalData: 42}

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*dto.GetOffersResponse) = cached

				return nil
			})

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})
		require.NoError(t, err)
		assert.Equal(t, 42, res.TotalData)
	})

	t.Run("repository error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(7, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("broken seed"))

		_, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})
		assert.Error(t, err)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestOfferService_Get(t *testing.T) {
	svc := newSeededService(t)

	bySlug, err := svc.Get(context.Background(), "kerala-backwaters")
	require.NoError(t, err)
	assert.Equal(t, "offer2", bySlug.ID)

	byID, err := svc.Find(context.Background(), "offer4")
	require.NoError(t, err)
	assert.Equal(t, "Goa", byID.Destination)

	_, err = svc.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
