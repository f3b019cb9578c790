package domain

import (
	"context"
	"time"

	"contact-directory/internal/entities"
	"contact-directory/internal/metrics"
	"contact-directory/internal/repository"

	"go.uber.org/zap"
)

const defaultResolveConcurrency = 8

// PhoneValidator checks a phone number and reports its candidate time zones.
type PhoneValidator interface {
	ValidatePhone(ctx context.Context, phone string) (entities.PhoneValidation, error)
}

// TimeLookup resolves the current datetime of a time zone.
type TimeLookup interface {
	CurrentTime(ctx context.Context, timezone string) (string, error)
}

// Upstream groups the external lookups the directory depends on.
type Upstream interface {
	PhoneValidator
	TimeLookup
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx         context.Context
	log         *zap.SugaredLogger
	repo        repository.Repository
	upstream    Upstream
	metrics     *metrics.Metrics
	timeout     time.Duration
	concurrency int
}

// Option customises the usecase layer.
type Option func(*Usecase)

// WithMetrics records domain counters on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(u *Usecase) {
		u.metrics = m
	}
}

// WithResolveConcurrency bounds parallel time lookups when listing contacts.
func WithResolveConcurrency(n int) Option {
	return func(u *Usecase) {
		if n > 0 {
			u.concurrency = n
		}
	}
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	upstream Upstream,
	timeout time.Duration,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		ctx:         ctx,
		log:         log,
		repo:        repo,
		upstream:    upstream,
		timeout:     timeout,
		concurrency: defaultResolveConcurrency,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// withTimeout bounds ctx by d; a non-positive d only adds cancellation.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
