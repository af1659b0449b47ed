package requests

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atnchile/portal/pkg/logger"
	"github.com/atnchile/portal/pkg/metrics"
	"github.com/atnchile/portal/pkg/validator"
	"github.com/atnchile/portal/pkg/webhook"
	"github.com/atnchile/portal/svc/wizard"
)

// SubmissionHeader carries the submission id to the workflow.
const SubmissionHeader = "X-Submission-ID"

// Sender delivers envelopes to the workflow. *webhook.Sender implements it.
type Sender interface {
	Send(ctx context.Context, data any, opts ...webhook.SendOption) (webhook.Receipt, error)
}

// Submission is a request accepted by the workflow.
type Submission struct {
	ID      string          `json:"id"`
	Type    Type            `json:"tipoSolicitud"`
	SentOn  string          `json:"fechaEnvio"`
	Receipt webhook.Receipt `json:"-"`
}

// Service validates requests and forwards them to the workflow.
type Service struct {
	sender   Sender
	guard    Guard
	catalog  Catalog
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
	location *time.Location
}

type Option func(*Service)

// WithGuard enables duplicate detection.
func WithGuard(g Guard) Option {
	return func(s *Service) { s.guard = g }
}

// WithCatalog checks countries and communes against reference data.
func WithCatalog(c Catalog) Option {
	return func(s *Service) { s.catalog = c }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the time zone fechaEnvio is computed in. Default is
// America/Santiago, or UTC when the zone database is missing.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

func NewService(sender Sender, opts ...Option) *Service {
	s := &Service{
		sender:   sender,
		logger:   logger.Discard(),
		now:      time.Now,
		location: santiago(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("requests"))
	return s
}

// Submit sends p as a request of type t filed for id.
//
// It returns ErrIdentityRequired when id does not validate,
// validator.ValidationErrors when p breaks a rule, ErrDuplicate when the same
// request was accepted within the guard's window and ErrDeliveryFailed when
// the workflow could not be reached.
func (s *Service) Submit(ctx context.Context, id wizard.Identity, t Type, p Payload) (Submission, error) {
	if !t.Valid() {
		return Submission{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	if err := id.Validate(); err != nil {
		return Submission{}, errors.Join(ErrIdentityRequired, err)
	}
	id = id.Canonical()
	log := s.logger.With(logger.RequestType(string(t)), logger.RUT(id.RUT))

	p.Normalize()
	if err := Check(p, s.catalog); err != nil {
		s.metrics.IncSubmission(string(t), metrics.OutcomeInvalid)
		if validator.IsValidationError(err) {
			log.DebugContext(ctx, "request rejected", logger.Error(err))
		}
		return Submission{}, err
	}

	claimed, key := s.claim(ctx, log, id, t, p)
	if key != "" && !claimed {
		s.metrics.IncSubmission(string(t), metrics.OutcomeDuplicate)
		log.InfoContext(ctx, "duplicate request ignored")
		return Submission{}, ErrDuplicate
	}

	now := s.now().In(s.location)
	env, err := NewEnvelope(t, id, p, now)
	if err != nil {
		s.release(ctx, log, key)
		return Submission{}, err
	}

	submissionID := newID()
	log = log.With(logger.SubmissionID(submissionID))

	start := time.Now()
	receipt, err := s.sender.Send(ctx, env, webhook.WithHeader(SubmissionHeader, submissionID))
	s.metrics.ObserveDelivery(time.Since(start), err == nil)
	if err != nil {
		s.release(ctx, log, key)
		s.metrics.IncSubmission(string(t), metrics.OutcomeFailed)
		log.ErrorContext(ctx, "request delivery failed", logger.Error(err))
		return Submission{}, errors.Join(ErrDeliveryFailed, err)
	}

	s.metrics.IncSubmission(string(t), metrics.OutcomeSent)
	log.InfoContext(ctx, "request sent",
		logger.Event("request.sent"),
		logger.RetryCount(receipt.Attempts-1),
		logger.Duration(receipt.Duration),
	)

	return Submission{
		ID:      submissionID,
		Type:    t,
		SentOn:  env.SentOn,
		Receipt: receipt,
	}, nil
}

// claim returns the fingerprint it claimed, or "" when no claim was taken.
// A failing guard lets the request through.
func (s *Service) claim(ctx context.Context, log *slog.Logger, id wizard.Identity, t Type, p Payload) (bool, string) {
	if s.guard == nil {
		return true, ""
	}
	key, err := Fingerprint(id.RUT, t, p)
	if err != nil {
		log.WarnContext(ctx, "cannot fingerprint request", logger.Error(err))
		return true, ""
	}
	ok, err := s.guard.Claim(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "duplicate check unavailable", logger.Error(err))
		return true, ""
	}
	return ok, key
}

func (s *Service) release(ctx context.Context, log *slog.Logger, key string) {
	if s.guard == nil || key == "" {
		return
	}
	if err := s.guard.Release(ctx, key); err != nil {
		log.WarnContext(ctx, "cannot release duplicate claim", logger.Error(err))
	}
}

func newID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

func santiago() *time.Location {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		return time.UTC
	}
	return loc
}
