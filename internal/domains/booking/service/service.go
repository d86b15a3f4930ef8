package service

import (
	"context"
	"fmt"
	"indivoyage/config"
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/booking/model"
	"indivoyage/internal/domains/booking/model/dto"
	"indivoyage/internal/domains/booking/repository"
	offerService "indivoyage/internal/domains/offer/service"
	"indivoyage/shared/constant"
	"indivoyage/shared/failure"
	"indivoyage/shared/logger"
	"indivoyage/shared/timezone"
	"indivoyage/shared/validator"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	defaultConfirmationDelay = 2 * time.Second
	defaultSessionTTL        = 30 * time.Minute

	attributeActiveSessions = "booking.sessions.active"
)

type Booking interface {
	Form(ctx context.Context, offerID, destination string) (dto.FormResponse, error)
	Start(ctx context.Context, req dto.StartRequest) (dto.SessionResponse, error)
	Get(ctx context.Context, id string) (dto.SessionResponse, error)
	SubmitPersonal(ctx context.Context, id string, req dto.PersonalRequest) (dto.SessionResponse, error)
	SubmitTrip(ctx context.Context, id string, req dto.TripRequest) (dto.SessionResponse, error)
	Confirm(ctx context.Context, id string, req dto.PaymentRequest) (dto.SessionResponse, error)
	Back(ctx context.Context, id string) (dto.SessionResponse, error)
	Abandon(ctx context.Context, id string) error
	Receipt(ctx context.Context, id string) (dto.Receipt, error)
	Shutdown()
}

// serviceImpl serializes every step transition through mu. Pending confirmations are timers
// keyed by session id; a timer only completes the booking while its entry is still present.
type serviceImpl struct {
	repo   repository.Booking
	offers offerService.Offer
	cfg    *config.Config
	otel   otel.Otel

	mu      sync.Mutex
	pending map[string]*time.Timer
	closed  bool
}

func New(repo repository.Booking, offers offerService.Offer, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:    repo,
		offers:  offers,
		cfg:     cfg,
		otel:    otel,
		pending: make(map[string]*time.Timer),
	}
}

func (s *serviceImpl) confirmationDelay() time.Duration {
	if s.cfg.Booking.ConfirmationDelayMillis > 0 {
		return time.Duration(s.cfg.Booking.ConfirmationDelayMillis) * time.Millisecond
	}

	return defaultConfirmationDelay
}

func (s *serviceImpl) sessionTTL() time.Duration {
	if s.cfg.Booking.SessionTTLMinutes > 0 {
		return time.Duration(s.cfg.Booking.SessionTTLMinutes) * time.Minute
	}

	return defaultSessionTTL
}

func (s *serviceImpl) prefill(ctx context.Context, offerID, destination string) (dto.Prefill, error) {
	prefill := dto.Prefill{
		Destination: strings.TrimSpace(destination),
		Travelers:   1,
	}

	if offerID == constant.Empty {
		return prefill, nil
	}

	offer, err := s.offers.Find(ctx, offerID)
	if err != nil {
		return prefill, err
	}

	prefill.OfferID = offer.ID
	prefill.OfferTitle = offer.Title

	if prefill.Destination == constant.Empty {
		prefill.Destination = offer.Destination
	}

	return prefill, nil
}

func (s *serviceImpl) Form(ctx context.Context, offerID, destination string) (res dto.FormResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Form")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	prefill, err := s.prefill(ctx, offerID, destination)
	if err != nil {
		return res, err
	}

	res.Build(prefill)

	return res, nil
}

func (s *serviceImpl) Start(ctx context.Context, req dto.StartRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Start")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	prefill, err := s.prefill(ctx, req.OfferID, req.Destination)
	if err != nil {
		return res, err
	}

	s.purgeExpired(ctx)

	now := timezone.Now()
	session := model.Session{
		ID:      uuid.NewString(),
		Step:    model.StepPersonal,
		Status:  model.StatusInProgress,
		OfferID: prefill.OfferID,
		Trip: model.Trip{
			Destination: prefill.Destination,
			Travelers:   prefill.Travelers,
		},
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL()),
	}

	if err = s.repo.Insert(ctx, session); err != nil {
		log.Error().Err(err).Msg("failed to start booking session")

		return res, fmt.Errorf("failed to start booking session: %w", err)
	}

	active, err := s.repo.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to count booking sessions: %w", err)
	}

	scope.SetAttribute(attributeActiveSessions, active)
	logger.FromContext(ctx).Info().Str("session", session.ID).Int("active", active).Msg("booking session started")

	res.FromModel(session)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return session, fmt.Errorf("failed to get booking session: %w", err)
	}

	if session.ID == constant.Empty {
		return session, failure.NotFound("booking session not found")
	}

	return session, nil
}

func (s *serviceImpl) save(ctx context.Context, session model.Session) error {
	now := timezone.Now()
	session.UpdatedAt = now
	session.ExpiresAt = now.Add(s.sessionTTL())

	if err := s.repo.Update(ctx, session); err != nil {
		return fmt.Errorf("failed to update booking session: %w", err)
	}

	return nil
}

// expect rejects a submission that does not belong to the session's current step.
func expect(session model.Session, step model.Step) error {
	if session.Status == model.StatusConfirming {
		return failure.ConfirmationPending
	}

	if session.Step != step {
		return failure.Conflict(fmt.Sprintf("booking is at step %d (%s), not step %d", session.Step, session.Step.Label(), step))
	}

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(session)

	return res, nil
}

func (s *serviceImpl) SubmitPersonal(ctx context.Context, id string, req dto.PersonalRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitPersonal")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if err = expect(session, model.StepPersonal); err != nil {
		return res, err
	}

	if err = req.Validate(); err != nil {
		return res, err
	}

	session.Personal = req.ToModel()
	session.Step = model.StepTrip

	if err = s.save(ctx, session); err != nil {
		return res, err
	}

	res.FromModel(session)

	return res, nil
}

func (s *serviceImpl) SubmitTrip(ctx context.Context, id string, req dto.TripRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitTrip")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if err = expect(session, model.StepTrip); err != nil {
		return res, err
	}

	if err = req.Validate(); err != nil {
		return res, err
	}

	session.Trip = req.ToModel()
	session.Step = model.StepReview

	if err = s.save(ctx, session); err != nil {
		return res, err
	}

	res.FromModel(session)

	return res, nil
}

// Confirm accepts the payment step and schedules the simulated confirmation. The returned
// session is still at the review step with status confirming.
func (s *serviceImpl) Confirm(ctx context.Context, id string, req dto.PaymentRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return res, failure.Conflict("booking is unavailable while the service shuts down")
	}

	session, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if err = expect(session, model.StepReview); err != nil {
		return res, err
	}

	if err = req.Validate(); err != nil {
		return res, err
	}

	session.Payment = req.ToModel()
	session.Status = model.StatusConfirming

	if err = s.save(ctx, session); err != nil {
		return res, err
	}

	requestID, _ := ctx.Value(constant.ContextKeyRequestID).(string)
	s.pending[id] = time.AfterFunc(s.confirmationDelay(), func() {
		s.complete(id, requestID)
	})

	logger.FromContext(ctx).Info().Str("session", id).Msg("booking confirmation scheduled")

	res.FromModel(session)

	return res, nil
}

// complete runs on the confirmation timer. It does nothing when the confirmation was
// cancelled in the meantime.
func (s *serviceImpl) complete(id, requestID string) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyRequestID, requestID)

	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".complete")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[id]; !ok {
		return
	}

	delete(s.pending, id)

	session, err := s.find(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("session", id).Msg("booking confirmation dropped")

		return
	}

	now := timezone.Now()
	session.Step = model.StepConfirmed
	session.Status = model.StatusConfirmed
	session.Reference = newReference()
	session.ConfirmedAt = now

	if err = s.save(ctx, session); err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Str("session", id).Msg("failed to confirm booking")

		return
	}

	logger.FromContext(ctx).Info().
		Str("session", id).
		Str("reference", session.Reference).
		Msg("booking confirmed")
}

func newReference() string {
	code := strings.ReplaceAll(uuid.NewString(), "-", "")

	return model.ReferencePrefix + strings.ToUpper(code[:8])
}

func (s *serviceImpl) Back(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Back")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if session.Status == model.StatusConfirming {
		return res, failure.ConfirmationPending
	}

	if !session.Step.CanGoBack() {
		return res, failure.Conflict(fmt.Sprintf("cannot go back from step %d (%s)", session.Step, session.Step.Label()))
	}

	session.Step--

	if err = s.save(ctx, session); err != nil {
		return res, err
	}

	res.FromModel(session)

	return res, nil
}

// Abandon drops the session and cancels its pending confirmation, if any.
func (s *serviceImpl) Abandon(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Abandon")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancel(id)

	if _, err = s.find(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}

	logger.FromContext(ctx).Info().Str("session", id).Msg("booking session abandoned")

	return nil
}

// cancel must be called with mu held.
func (s *serviceImpl) cancel(id string) {
	if timer, ok := s.pending[id]; ok {
		timer.Stop()
		delete(s.pending, id)
	}
}

func (s *serviceImpl) purgeExpired(ctx context.Context) {
	ids, err := s.repo.DeleteExpired(ctx, timezone.Now())
	if err != nil {
		log.Warn().Err(err).Msg("failed to purge expired booking sessions")

		return
	}

	if len(ids) == 0 {
		return
	}

	s.mu.Lock()
	for _, id := range ids {
		s.cancel(id)
	}
	s.mu.Unlock()

	log.Debug().Int("count", len(ids)).Msg("purged expired booking sessions")
}

func (s *serviceImpl) Receipt(ctx context.Context, id string) (res dto.Receipt, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Receipt")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	session, err := s.find(ctx, id)
	s.mu.Unlock()

	if err != nil {
		return res, err
	}

	if session.Status != model.StatusConfirmed {
		return res, failure.Conflict("booking is not confirmed yet")
	}

	content, err := buildReceiptPDF(session)
	if err != nil {
		log.Error().Err(err).Str("session", id).Msg("failed to render receipt")

		return res, failure.InternalError(fmt.Errorf("failed to render receipt: %w", err))
	}

	return dto.Receipt{
		Filename: fmt.Sprintf("IndiVoyage_%s.pdf", session.Reference),
		Content:  content,
	}, nil
}

// Shutdown cancels every pending confirmation and refuses new ones.
func (s *serviceImpl) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true

	for id := range s.pending {
		s.cancel(id)
	}

	log.Info().Msg("booking confirmations cancelled")
}
