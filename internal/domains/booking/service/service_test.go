package service_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"indivoyage/config"
	"indivoyage/infras/otel"
	"indivoyage/infras/otel/mocks"
	bookingMocks "indivoyage/internal/domains/booking/mocks"
	"indivoyage/internal/domains/booking/model"
	"indivoyage/internal/domains/booking/model/dto"
	"indivoyage/internal/domains/booking/repository"
	"indivoyage/internal/domains/booking/service"
	offerRepo "indivoyage/internal/domains/offer/repository"
	offerService "indivoyage/internal/domains/offer/service"
	"indivoyage/shared/cache"
	"indivoyage/shared/failure"
)

func newConfig(delayMillis int) *config.Config {
	cfg := &config.Config{}
	cfg.Booking.ConfirmationDelayMillis = delayMillis
	cfg.Booking.SessionTTLMinutes = 30
	cfg.Catalog.OffersPageSize = 6

	return cfg
}

func newService(t *testing.T, delayMillis int) service.Booking {
	t.Helper()

	ot := mocks.NewOtel()
	cfg := newConfig(delayMillis)

	offers, err := offerRepo.New(ot)
	require.NoError(t, err)

	svc := service.New(repository.New(ot), offerService.New(offers, cfg, cache.NewRedisCache(nil, ot), ot), cfg, ot)
	t.Cleanup(svc.Shutdown)

	return svc
}

func validPersonal() dto.PersonalRequest {
	return dto.PersonalRequest{FullName: "Aarav Sharma", Email: "aarav.sharma@example.com", Phone: "+91 98765 43210"}
}

func validTrip() dto.TripRequest {
	return dto.TripRequest{
		Destination:       "Jaipur",
		StartDate:         "2025-01-10",
		EndDate:           "2025-01-15",
		Travelers:         2,
		AccommodationType: "mid_range_hotel",
		TransportType:     "train",
		SpecialRequests:   "Vegetarian meals",
	}
}

func validPayment() dto.PaymentRequest {
	return dto.PaymentRequest{PaymentMethod: "upi", AgreeToTerms: true}
}

// reviewSession walks a fresh session up to the review step.
func reviewSession(t *testing.T, svc service.Booking) string {
	t.Helper()

	ctx := context.Background()

	session, err := svc.Start(ctx, dto.StartRequest{})
	require.NoError(t, err)

	_, err = svc.SubmitPersonal(ctx, session.ID, validPersonal())
	require.NoError(t, err)

	res, err := svc.SubmitTrip(ctx, session.ID, validTrip())
	require.NoError(t, err)
	require.Equal(t, int(model.StepReview), res.Step)

	return session.ID
}

func TestBookingService_Form(t *testing.T) {
	svc := newService(t, 20)

	t.Run("defaults", func(t *testing.T) {
		res, err := svc.Form(context.Background(), "", "")
		require.NoError(t, err)

		assert.Len(t, res.Steps, 4)
		assert.Equal(t, "Review & Payment", res.Steps[2].Label)
		assert.Len(t, res.Options.Accommodation, 5)
		assert.Len(t, res.Options.Transport, 3)
		assert.Len(t, res.Options.Payment, 4)
		assert.Equal(t, 1, res.Prefill.Travelers)
		assert.Empty(t, res.Prefill.Destination)
	})

	t.Run("destination from the calculator", func(t *testing.T) {
		res, err := svc.Form(context.Background(), "", "  Goa ")
		require.NoError(t, err)
		assert.Equal(t, "Goa", res.Prefill.Destination)
	})

	t.Run("offer by slug", func(t *testing.T) {
		res, err := svc.Form(context.Background(), "goa-beach-package", "")
		require.NoError(t, err)
		assert.Equal(t, "offer4", res.Prefill.OfferID)
		assert.Equal(t, "Goa", res.Prefill.Destination)
		assert.NotEmpty(t, res.Prefill.OfferTitle)
	})

	t.Run("unknown offer", func(t *testing.T) {
		_, err := svc.Form(context.Background(), "offer99", "")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Start(t *testing.T) {
	svc := newService(t, 20)

	res, err := svc.Start(context.Background(), dto.StartRequest{OfferID: "offer2"})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, 1, res.Step)
	assert.Equal(t, "Personal Information", res.StepLabel)
	assert.Equal(t, 25, res.Progress)
	assert.Equal(t, model.StatusInProgress, res.Status)
	assert.False(t, res.CanGoBack)
	assert.Equal(t, "offer2", res.OfferID)
	assert.Equal(t, 1, res.Trip.Travelers)

	fetched, err := svc.Get(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.ID, fetched.ID)

	_, err = svc.Get(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_SubmitPersonal(t *testing.T) {
	svc := newService(t, 20)
	ctx := context.Background()

	session, err := svc.Start(ctx, dto.StartRequest{})
	require.NoError(t, err)

	invalid := validPersonal()
	invalid.Email = "aarav@"

	_, err = svc.SubmitPersonal(ctx, session.ID, invalid)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, failure.GetFields(err), "email")

	current, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, current.Step)

	res, err := svc.SubmitPersonal(ctx, session.ID, validPersonal())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Step)
	assert.Equal(t, "Aarav Sharma", res.Personal.FullName)
	assert.True(t, res.CanGoBack)

	_, err = svc.SubmitPersonal(ctx, session.ID, validPersonal())
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestBookingService_SubmitTrip(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *dto.TripRequest)
		wantField string
	}{
		{name: "end equal to start", mutate: func(r *dto.TripRequest) { r.EndDate = r.StartDate }, wantField: "end_date"},
		{name: "end before start", mutate: func(r *dto.TripRequest) { r.EndDate = "2025-01-01" }, wantField: "end_date"},
		{name: "short destination", mutate: func(r *dto.TripRequest) { r.Destination = "Go" }, wantField: "destination"},
		{name: "too many travelers", mutate: func(r *dto.TripRequest) { r.Travelers = 11 }, wantField: "travelers"},
		{name: "unknown accommodation", mutate: func(r *dto.TripRequest) { r.AccommodationType = "castle" }, wantField: "accommodation_type"},
		{name: "unknown transport", mutate: func(r *dto.TripRequest) { r.TransportType = "boat" }, wantField: "transport_type"},
		{name: "long special requests", mutate: func(r *dto.TripRequest) { r.SpecialRequests = strings.Repeat("a", 501) }, wantField: "special_requests"},
		{name: "unparseable start", mutate: func(r *dto.TripRequest) { r.StartDate = "soon" }, wantField: "start_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, 20)
			ctx := context.Background()

			session, err := svc.Start(ctx, dto.StartRequest{})
			require.NoError(t, err)

			_, err = svc.SubmitPersonal(ctx, session.ID, validPersonal())
			require.NoError(t, err)

			req := validTrip()
			tt.mutate(&req)

			_, err = svc.SubmitTrip(ctx, session.ID, req)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Contains(t, failure.GetFields(err), tt.wantField)

			current, err := svc.Get(ctx, session.ID)
			require.NoError(t, err)
			assert.Equal(t, 2, current.Step)
		})
	}

	t.Run("valid trip advances", func(t *testing.T) {
		svc := newService(t, 20)
		id := reviewSession(t, svc)

		res, err := svc.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "2025-01-15", res.Trip.EndDate)
		assert.Equal(t, "Mid-Range Hotel (3-Star)", res.Trip.AccommodationLabel)
		assert.Equal(t, "Train", res.Trip.TransportLabel)
	})

	t.Run("skipping the personal step", func(t *testing.T) {
		svc := newService(t, 20)

		session, err := svc.Start(context.Background(), dto.StartRequest{})
		require.NoError(t, err)

		_, err = svc.SubmitTrip(context.Background(), session.ID, validTrip())
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestBookingService_Back(t *testing.T) {
	svc := newService(t, 20)
	ctx := context.Background()
	id := reviewSession(t, svc)

	res, err := svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Step)
	assert.Equal(t, "Jaipur", res.Trip.Destination)

	res, err = svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Step)

	_, err = svc.Back(ctx, id)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestBookingService_Confirm(t *testing.T) {
	svc := newService(t, 20)
	ctx := context.Background()
	id := reviewSession(t, svc)

	_, err := svc.Confirm(ctx, id, dto.PaymentRequest{PaymentMethod: "upi"})
	require.Error(t, err)
	assert.Contains(t, failure.GetFields(err), "agree_to_terms")

	_, err = svc.Confirm(ctx, id, dto.PaymentRequest{PaymentMethod: "cash", AgreeToTerms: true})
	assert.Contains(t, failure.GetFields(err), "payment_method")

	res, err := svc.Confirm(ctx, id, validPayment())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Step)
	assert.Equal(t, model.StatusConfirming, res.Status)
	assert.False(t, res.CanGoBack)

	_, err = svc.Confirm(ctx, id, validPayment())
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.ErrorIs(t, err, failure.ConfirmationPending)

	_, err = svc.Back(ctx, id)
	assert.ErrorIs(t, err, failure.ConfirmationPending)

	assert.Eventually(t, func() bool {
		current, err := svc.Get(ctx, id)

		return err == nil && current.Step == int(model.StepConfirmed)
	}, time.Second, 5*time.Millisecond)

	confirmed, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, confirmed.Status)
	assert.True(t, strings.HasPrefix(confirmed.Reference, model.ReferencePrefix))
	assert.Len(t, confirmed.Reference, len(model.ReferencePrefix)+8)
	assert.Equal(t, "Thank you for choosing IndiVoyage.", confirmed.Message)
	assert.Equal(t, 100, confirmed.Progress)

	_, err = svc.Back(ctx, id)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	_, err = svc.Confirm(ctx, id, validPayment())
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestBookingService_AbandonCancelsConfirmation(t *testing.T) {
	svc := newService(t, 50)
	ctx := context.Background()
	id := reviewSession(t, svc)

	_, err := svc.Confirm(ctx, id, validPayment())
	require.NoError(t, err)

	require.NoError(t, svc.Abandon(ctx, id))

	time.Sleep(100 * time.Millisecond)

	_, err = svc.Get(ctx, id)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	err = svc.Abandon(ctx, id)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_ShutdownCancelsConfirmation(t *testing.T) {
	svc := newService(t, 50)
	ctx := context.Background()
	id := reviewSession(t, svc)

	_, err := svc.Confirm(ctx, id, validPayment())
	require.NoError(t, err)

	svc.Shutdown()

	time.Sleep(100 * time.Millisecond)

	res, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Step)
	assert.NotEqual(t, model.StatusConfirmed, res.Status)

	other := reviewSession(t, svc)

	_, err = svc.Confirm(ctx, other, validPayment())
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestBookingService_Receipt(t *testing.T) {
	svc := newService(t, 10)
	ctx := context.Background()
	id := reviewSession(t, svc)

	_, err := svc.Receipt(ctx, id)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	_, err = svc.Confirm(ctx, id, validPayment())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		current, err := svc.Get(ctx, id)

		return err == nil && current.Status == model.StatusConfirmed
	}, time.Second, 5*time.Millisecond)

	receipt, err := svc.Receipt(ctx, id)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(receipt.Content, []byte("%PDF")))
	assert.True(t, strings.HasPrefix(receipt.Filename, "IndiVoyage_INDTRV"))
	assert.True(t, strings.HasSuffix(receipt.Filename, ".pdf"))
}

func TestBookingService_RepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ot := mocks.NewOtel()
	cfg := newConfig(20)
	mockRepo := bookingMocks.NewMockBooking(ctrl)

	svc := service.New(mockRepo, nil, cfg, ot)

	t.Run("insert failure", func(t *testing.T) {
		mockRepo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(nil, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("store full"))

		_, err := svc.Start(context.Background(), dto.StartRequest{})
		assert.Error(t, err)
	})

	t.Run("expired sessions are purged on start", func(t *testing.T) {
		mockRepo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return([]string{"old"}, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		mockRepo.EXPECT().Count(gomock.Any()).Return(3, nil)

		res, err := svc.Start(context.Background(), dto.StartRequest{Destination: "Agra"})
		require.NoError(t, err)
		assert.Equal(t, "Agra", res.Trip.Destination)
	})

	t.Run("update failure keeps the error", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), "s-1").
			Return(model.Session{ID: "s-1", Step: model.StepPersonal, Status: model.StatusInProgress}, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("store closed"))

		_, err := svc.SubmitPersonal(context.Background(), "s-1", validPersonal())
		assert.Error(t, err)
	})
}

func TestBookingService_TracesRejectedRequests(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	ot := otel.NewWithProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	cfg := newConfig(10)

	offers, err := offerRepo.New(ot)
	require.NoError(t, err)

	svc := service.New(repository.New(ot), offerService.New(offers, cfg, cache.NewRedisCache(nil, ot), ot), cfg, ot)
	t.Cleanup(svc.Shutdown)

	_, err = svc.Start(context.Background(), dto.StartRequest{})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	spans := map[string]sdktrace.ReadOnlySpan{}
	for _, ended := range recorder.Ended() {
		spans[ended.Name()] = ended
	}

	start, ok := spans["service.Start"]
	require.True(t, ok)
	assert.Equal(t, int64(1), intAttribute(start, "booking.sessions.active"))

	get, ok := spans["service.Get"]
	require.True(t, ok)
	assert.Equal(t, codes.Unset, get.Status().Code)
	require.Len(t, get.Events(), 1)
	assert.Equal(t, "request rejected", get.Events()[0].Name)
	assert.Equal(t, int64(http.StatusNotFound), intAttribute(get, "error.status_code"))
}

func intAttribute(span sdktrace.ReadOnlySpan, key string) int64 {
	for _, attr := range span.Attributes() {
		if string(attr.Key) == key {
			return attr.Value.AsInt64()
		}
	}

	return -1
}
