package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"indivoyage/infras/otel"
	"indivoyage/internal/domains/booking/model"
	"indivoyage/shared/constant"
	"indivoyage/shared/failure"
	"indivoyage/shared/timezone"
	"sync"
	"time"
)

type Booking interface {
	Insert(ctx context.Context, session model.Session) error
	Get(ctx context.Context, id string) (model.Session, error)
	Update(ctx context.Context, session model.Session) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) ([]string, error)
	Count(ctx context.Context) (int, error)
}

// repositoryImpl keeps sessions in process memory. Expired sessions are invisible to reads
// and are dropped by DeleteExpired.
type repositoryImpl struct {
	mu       sync.RWMutex
	sessions map[string]model.Session
	otel     otel.Otel
}

func New(otel otel.Otel) Booking {
	return &repositoryImpl{
		sessions: make(map[string]model.Session),
		otel:     otel,
	}
}

func (r *repositoryImpl) scopeName(operation string) string {
	return constant.OtelRepositoryScopeName + "." + model.EntityName + "." + operation
}

func (r *repositoryImpl) Insert(ctx context.Context, session model.Session) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, r.scopeName("Insert"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		return failure.Conflict("booking session already exists")
	}

	r.sessions[session.ID] = session

	return nil
}

// Get returns the zero session when id is unknown or expired.
func (r *repositoryImpl) Get(ctx context.Context, id string) (session model.Session, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, r.scopeName("Get"))
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok || session.Expired(timezone.Now()) {
		return model.Session{}, nil
	}

	return session, nil
}

func (r *repositoryImpl) Update(ctx context.Context, session model.Session) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, r.scopeName("Update"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; !ok {
		return failure.NotFound("booking session not found")
	}

	r.sessions[session.ID] = session

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, r.scopeName("Delete"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return failure.NotFound("booking session not found")
	}

	delete(r.sessions, id)

	return nil
}

func (r *repositoryImpl) DeleteExpired(ctx context.Context, now time.Time) (ids []string, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, r.scopeName("DeleteExpired"))
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, session := range r.sessions {
		if session.Expired(now) {
			ids = append(ids, id)
			delete(r.sessions, id)
		}
	}

	scope.SetAttribute("booking.expired", len(ids))

	return ids, nil
}

func (r *repositoryImpl) Count(ctx context.Context) (total int, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, r.scopeName("Count"))
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions), nil
}
