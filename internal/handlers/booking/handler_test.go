package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indivoyage/config"
	"indivoyage/infras/otel/mocks"
	"indivoyage/internal/domains/booking/model"
	"indivoyage/internal/domains/booking/model/dto"
	"indivoyage/internal/domains/booking/repository"
	"indivoyage/internal/domains/booking/service"
	offerRepo "indivoyage/internal/domains/offer/repository"
	offerService "indivoyage/internal/domains/offer/service"
	"indivoyage/internal/handlers/booking"
	"indivoyage/shared/cache"
	"indivoyage/transport/http/response"
)

const (
	personalBody = `{"full_name":"Aarav Sharma","email":"aarav.sharma@example.com","phone":"+91 98765 43210"}`
	tripBody     = `{"destination":"Jaipur","start_date":"2025-01-10","end_date":"2025-01-15","travelers":2,"accommodation_type":"mid_range_hotel","transport_type":"train"}`
	paymentBody  = `{"payment_method":"upi","agree_to_terms":true}`
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()

	ot := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.ConfirmationDelayMillis = 20
	cfg.Booking.SessionTTLMinutes = 30

	offers, err := offerRepo.New(ot)
	require.NoError(t, err)

	svc := service.New(repository.New(ot), offerService.New(offers, cfg, cache.NewRedisCache(nil, ot), ot), cfg, ot)
	t.Cleanup(svc.Shutdown)

	handler := booking.New(svc, ot)

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func do(t *testing.T, router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func session(t *testing.T, rec *httptest.ResponseRecorder) dto.SessionResponse {
	t.Helper()

	var body response.Data[dto.SessionResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Data)

	return *body.Data
}

func start(t *testing.T, router chi.Router) string {
	t.Helper()

	rec := do(t, router, http.MethodPost, "/booking/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	return session(t, rec).ID
}

func TestGetForm(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name            string
		query           string
		wantCode        int
		wantDestination string
	}{
		{name: "empty form", query: "", wantCode: http.StatusOK},
		{name: "calculator destination", query: "?destination=Kerala", wantCode: http.StatusOK, wantDestination: "Kerala"},
		{name: "unknown offer", query: "?offerId=offer99", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, "/booking"+tt.query, "")
			require.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode != http.StatusOK {
				return
			}

			var body response.Data[dto.FormResponse]
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			assert.Len(t, body.Data.Steps, model.TotalSteps)
			assert.Equal(t, tt.wantDestination, body.Data.Prefill.Destination)
		})
	}
}

func TestBookingFlow(t *testing.T) {
	router := newRouter(t)
	id := start(t, router)
	base := "/booking/sessions/" + id

	rec := do(t, router, http.MethodPut, base+"/trip", tripBody)
	assert.Equal(t, http.StatusConflict, rec.Code, "trip before personal")

	rec = do(t, router, http.MethodPut, base+"/personal", `{"full_name":"A","email":"nope","phone":"12"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var validation response.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &validation))
	assert.Contains(t, validation.Fields, "full_name")
	assert.Contains(t, validation.Fields, "email")
	assert.Contains(t, validation.Fields, "phone")

	rec = do(t, router, http.MethodPut, base+"/personal", personalBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int(model.StepTrip), session(t, rec).Step)

	rec = do(t, router, http.MethodPost, base+"/back", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int(model.StepPersonal), session(t, rec).Step)

	rec = do(t, router, http.MethodPut, base+"/personal", personalBody)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodPut, base+"/trip", tripBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int(model.StepReview), session(t, rec).Step)

	rec = do(t, router, http.MethodGet, base+"/receipt", "")
	assert.Equal(t, http.StatusConflict, rec.Code, "receipt before confirmation")

	rec = do(t, router, http.MethodPut, base+"/payment", paymentBody)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, model.StatusConfirming, session(t, rec).Status)

	rec = do(t, router, http.MethodPost, base+"/back", "")
	assert.Equal(t, http.StatusConflict, rec.Code, "back while confirming")

	assert.Eventually(t, func() bool {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, base, nil))

		var body response.Data[dto.SessionResponse]
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Data == nil {
			return false
		}

		return body.Data.Status == model.StatusConfirmed
	}, 2*time.Second, 10*time.Millisecond)

	rec = do(t, router, http.MethodGet, base, "")
	confirmed := session(t, rec)
	assert.True(t, strings.HasPrefix(confirmed.Reference, model.ReferencePrefix))
	assert.Equal(t, 100, confirmed.Progress)

	rec = do(t, router, http.MethodGet, base+"/receipt", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), confirmed.Reference)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestAbandonSession(t *testing.T) {
	router := newRouter(t)
	id := start(t, router)

	rec := do(t, router, http.MethodDelete, "/booking/sessions/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/booking/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodDelete, "/booking/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStartSession_Prefill(t *testing.T) {
	router := newRouter(t)

	rec := do(t, router, http.MethodPost, "/booking/sessions", `{"offer_id":"offer1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "offer1", session(t, rec).OfferID)

	rec = do(t, router, http.MethodPost, "/booking/sessions", `{"offer_id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
