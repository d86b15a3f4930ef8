package dto_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indivoyage/internal/domains/estimate/model/dto"
	"indivoyage/shared/failure"
	"indivoyage/shared/money"
)

func TestEstimateRequest_FromRequest(t *testing.T) {
	t.Run("reads every value", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/trip-calculator/estimate?days=%2010%20&meal=half_board&transport=comfort&accommodation=mid_range", nil)

		var req dto.EstimateRequest
		require.NoError(t, req.FromRequest(r))

		assert.Equal(t, dto.EstimateRequest{Days: 10, Meal: "half_board", Transport: "comfort", Accommodation: "mid_range"}, req)
	})

	t.Run("missing values stay unset", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/trip-calculator/estimate", nil)

		var req dto.EstimateRequest
		require.NoError(t, req.FromRequest(r))

		assert.Equal(t, dto.EstimateRequest{}, req)
		assert.Equal(t, 0, req.ToModel().Estimate())
	})

	t.Run("non numeric days", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/trip-calculator/estimate?days=week", nil)

		var req dto.EstimateRequest
		err := req.FromRequest(r)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestEstimateResponse_FromModel(t *testing.T) {
	req := dto.EstimateRequest{Days: 7, Meal: "breakfast_only", Transport: "economy", Accommodation: "budget"}

	var res dto.EstimateResponse
	res.FromModel(req.ToModel(), money.New("en-IN", "₹"))

	assert.Equal(t, 12600, res.Total)
	assert.Equal(t, "₹12,600", res.TotalFormatted)
	assert.Equal(t, dto.Breakdown{Base: 500, Meal: 300, Transport: 200, Accommodation: 800, Daily: 1800}, res.Breakdown)
	assert.Equal(t, "Budget (Hostels/Guesthouses)", res.Accommodation.Label)
}
