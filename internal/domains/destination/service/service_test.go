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
	destinationMocks "indivoyage/internal/domains/destination/mocks"
	"indivoyage/internal/domains/destination/model"
	"indivoyage/internal/domains/destination/model/dto"
	"indivoyage/internal/domains/destination/repository"
	"indivoyage/internal/domains/destination/service"
	itineraryMocks "indivoyage/internal/domains/itinerary/mocks"
	itineraryModel "indivoyage/internal/domains/itinerary/model"
	itineraryRepo "indivoyage/internal/domains/itinerary/repository"
	"indivoyage/shared/cache"
	cacheMocks "indivoyage/shared/cache/mocks"
	gDto "indivoyage/shared/dto"
	"indivoyage/shared/failure"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Catalog.DestinationsPageSize = 8

	return cfg
}

func newSeededService(t *testing.T) service.Destination {
	t.Helper()

	ot := mocks.NewOtel()

	repo, err := repository.New(ot)
	require.NoError(t, err)

	detailRepo, err := repository.NewDetail(ot)
	require.NoError(t, err)

	itineraries, err := itineraryRepo.New(ot)
	require.NoError(t, err)

	return service.New(repo, detailRepo, itineraries, newConfig(), cache.NewRedisCache(nil, ot), ot)
}

func names(res dto.GetDestinationsResponse) []string {
	out := make([]string, len(res.Destinations))
	for i, destination := range res.Destinations {
		out[i] = destination.Name
	}

	return out
}

func TestDestinationService_GetAll_Seed(t *testing.T) {
	svc := newSeededService(t)

	tests := []struct {
		name      string
		params    gDto.QueryParams
		wantNames []string
		wantTotal int
	}{
		{
			name:      "everything fits one page",
			params:    gDto.QueryParams{Page: 1},
			wantTotal: 8,
		},
		{
			name:      "search matches tagline case-insensitively",
			params:    gDto.QueryParams{Page: 1, Search: "PINK CITY"},
			wantNames: []string{"Jaipur, Rajasthan"},
			wantTotal: 1,
		},
		{
			name:      "region filter",
			params:    gDto.QueryParams{Page: 1, Region: "West India"},
			wantNames: []string{"Goa Beaches"},
			wantTotal: 1,
		},
		{
			name:      "interest filter",
			params:    gDto.QueryParams{Page: 1, Interest: "Spiritual"},
			wantNames: []string{"Varanasi Ghats", "Rishikesh & Himalayas"},
			wantTotal: 2,
		},
		{
			name:      "region and interest combined",
			params:    gDto.QueryParams{Page: 1, Region: "South India", Interest: "Historical"},
			wantNames: []string{"Hampi Ruins"},
			wantTotal: 1,
		},
		{
			name:      "any of several interests",
			params:    gDto.QueryParams{Page: 1, Interest: "Beaches, Mountains"},
			wantTotal: 3,
		},
		{
			name:      "blank search is ignored",
			params:    gDto.QueryParams{Page: 1, Search: "   "},
			wantTotal: 8,
		},
		{
			name:      "nothing matches",
			params:    gDto.QueryParams{Page: 1, Search: "antarctica"},
			wantNames: []string{},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.GetAll(context.Background(), tt.params, dto.BuildFilter(tt.params))
			require.NoError(t, err)

			assert.Equal(t, tt.wantTotal, res.TotalData)
			assert.Equal(t, 8, res.PageSize)
			assert.Equal(t, model.Regions, res.Filters.Regions)

			if tt.wantNames != nil {
				assert.Equal(t, tt.wantNames, names(res))
			}
		})
	}
}

func TestDestinationService_GetAll_DetailLink(t *testing.T) {
	svc := newSeededService(t)

	params := gDto.QueryParams{Page: 1, Search: "jaipur"}

	res, err := svc.GetAll(context.Background(), params, dto.BuildFilter(params))
	require.NoError(t, err)
	require.Len(t, res.Destinations, 1)
	assert.Equal(t, "/destination-detail?id=jaipur", res.Destinations[0].Link)
}

func TestDestinationService_GetAll_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := destinationMocks.NewMockDestination(ctrl)
	mockDetail := destinationMocks.NewMockDetail(ctrl)
	mockItinerary := itineraryMocks.NewMockItinerary(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, mockDetail, mockItinerary, newConfig(), mockCache, mocks.NewOtel())

	t.Run("cache hit skips the repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), "destination:get_all:p1:l8:s=:c=:r=:i=", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*dto.GetDestinationsResponse) = dto.GetDestinationsResponse{TotalData: 99}

				return nil
			})

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})
		require.NoError(t, err)
		assert.Equal(t, 99, res.TotalData)
	})

	t.Run("count error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("broken seed"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1}, gDto.FilterGroup{})
		assert.Error(t, err)
	})

	t.Run("miss stores the page", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Destination{{ID: "1", Name: "Taj Mahal, Agra"}}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1}, gDto.FilterGroup{})
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalPage)
		assert.Equal(t, "/destination-detail", res.Destinations[0].Link)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestDestinationService_GetDetail(t *testing.T) {
	svc := newSeededService(t)

	tests := []struct {
		name        string
		id          string
		itineraryID string
		wantID      string
		wantCode    int
	}{
		{name: "featured when nothing requested", wantID: "jaipur"},
		{name: "by detail id", id: "jaipur", wantID: "jaipur"},
		{name: "by listing id", id: "4", wantID: "jaipur"},
		{name: "by alias", id: "rajasthan-heritage", wantID: "jaipur"},
		{name: "unknown id", id: "atlantis", wantCode: http.StatusNotFound},
		{name: "itinerary with a page", itineraryID: "golden-triangle", wantID: "jaipur"},
		{name: "itinerary without a page falls back", itineraryID: "sg2", wantID: "jaipur"},
		{name: "unknown itinerary", itineraryID: "moon-tour", wantCode: http.StatusNotFound},
		{name: "id wins over itinerary", id: "atlantis", itineraryID: "sg1", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.GetDetail(context.Background(), tt.id, tt.itineraryID)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
			assert.NotEmpty(t, res.KeyAttractions)
			assert.Greater(t, res.AverageRating, 0.0)
			assert.Equal(t, "/trip-calculator", res.CalculatorLink)
		})
	}
}

func TestDestinationService_GetDetail_ItineraryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItinerary := itineraryMocks.NewMockItinerary(ctrl)
	svc := service.New(nil, nil, mockItinerary, newConfig(), cache.NewRedisCache(nil, mocks.NewOtel()), mocks.NewOtel())

	mockItinerary.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(itineraryModel.Itinerary{}, errors.New("seed unavailable"))

	_, err := svc.GetDetail(context.Background(), "", "sg1")
	assert.Error(t, err)
}
