package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"mirath/internal/audit"
	"mirath/internal/estate"
	"mirath/internal/estate/metrics"
	"mirath/internal/estate/store"
	"mirath/internal/faraid"
	"mirath/pkg/apperrors"
	"mirath/pkg/requestcontext"
)

// Service orchestrates estate CRUD and calculation runs. It keeps storage
// and transport out of the engine: the engine only ever sees an EstateInput
// snapshot assembled here.
type Service struct {
	store     store.Store
	cache     store.ResultCache
	engine    *faraid.Engine
	publisher *audit.Publisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// Option configures the Service.
type Option func(*Service)

// WithCache enables result caching.
func WithCache(cache store.ResultCache) Option {
	return func(s *Service) { s.cache = cache }
}

// WithPublisher enables audit event emission.
func WithPublisher(p *audit.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func New(st store.Store, logger *slog.Logger, opts ...Option) (*Service, error) {
	if st == nil {
		return nil, errors.New("estate store is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		store:  st,
		engine: faraid.NewEngine(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CreateEstate registers a new estate with its net distributable amount.
func (s *Service) CreateEstate(ctx context.Context, name string, netAmount float64, currency string) (*estate.Estate, error) {
	if name == "" {
		return nil, apperrors.New(apperrors.CodeBadRequest, "estate name must not be empty")
	}
	if netAmount < 0 {
		return nil, apperrors.New(apperrors.CodeBadRequest, "net amount must not be negative")
	}
	if currency == "" {
		currency = "IDR"
	}

	now := requestcontext.Now(ctx)
	e := &estate.Estate{
		ID:        uuid.NewString(),
		Name:      name,
		NetAmount: netAmount,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.SaveEstate(ctx, e); err != nil {
		return nil, apperrors.New(apperrors.CodeInternal, "failed to save estate")
	}
	return e, nil
}

// GetEstate returns an estate with its current roster.
func (s *Service) GetEstate(ctx context.Context, id string) (*estate.Estate, []*estate.HeirRecord, error) {
	e, err := s.store.FindEstate(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, apperrors.New(apperrors.CodeNotFound, "estate not found")
		}
		return nil, nil, apperrors.New(apperrors.CodeInternal, "failed to load estate")
	}
	heirs, err := s.store.ListHeirs(ctx, id)
	if err != nil {
		return nil, nil, apperrors.New(apperrors.CodeInternal, "failed to load heirs")
	}
	return e, heirs, nil
}

// AddHeir appends one heir to an estate's roster.
func (s *Service) AddHeir(ctx context.Context, estateID string, h estate.HeirRecord) (*estate.HeirRecord, error) {
	if h.Name == "" {
		return nil, apperrors.New(apperrors.CodeBadRequest, "heir name must not be empty")
	}
	if h.Relationship == "" {
		return nil, apperrors.New(apperrors.CodeBadRequest, "heir relationship must not be empty")
	}

	h.ID = uuid.NewString()
	h.EstateID = estateID
	h.CreatedAt = requestcontext.Now(ctx)

	if err := s.store.AddHeir(ctx, &h); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "estate not found")
		}
		return nil, apperrors.New(apperrors.CodeInternal, "failed to save heir")
	}
	return &h, nil
}

// ListHeirs returns the estate's current roster.
func (s *Service) ListHeirs(ctx context.Context, estateID string) ([]*estate.HeirRecord, error) {
	heirs, err := s.store.ListHeirs(ctx, estateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "estate not found")
		}
		return nil, apperrors.New(apperrors.CodeInternal, "failed to load heirs")
	}
	return heirs, nil
}

// RemoveHeir deletes one heir from the roster.
func (s *Service) RemoveHeir(ctx context.Context, estateID, heirID string) error {
	if err := s.store.RemoveHeir(ctx, estateID, heirID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "heir not found")
		}
		return apperrors.New(apperrors.CodeInternal, "failed to remove heir")
	}
	return nil
}

// Calculate runs the engine over a stored estate's roster snapshot.
func (s *Service) Calculate(ctx context.Context, estateID string) (*faraid.CalculationResult, error) {
	e, heirs, err := s.GetEstate(ctx, estateID)
	if err != nil {
		return nil, err
	}

	input := faraid.EstateInput{
		Amount: e.NetAmount,
		Heirs:  make([]faraid.Heir, 0, len(heirs)),
	}
	for _, h := range heirs {
		input.Heirs = append(input.Heirs, faraid.Heir{
			ID:           h.ID,
			Name:         h.Name,
			Relationship: h.Relationship,
			Gender:       h.Gender,
			HeirGroup:    h.HeirGroup,
			Portions:     h.Portions,
		})
	}

	return s.run(ctx, estateID, input)
}

// CalculateAdHoc runs the engine over a roster supplied directly by the
// caller, without touching storage.
func (s *Service) CalculateAdHoc(ctx context.Context, input faraid.EstateInput) (*faraid.CalculationResult, error) {
	if input.Amount < 0 {
		return nil, apperrors.New(apperrors.CodeBadRequest, "estate amount must not be negative")
	}
	return s.run(ctx, "", input)
}

func (s *Service) run(ctx context.Context, estateID string, input faraid.EstateInput) (*faraid.CalculationResult, error) {
	start := time.Now()

	key, err := inputDigest(input)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeInternal, "failed to digest input")
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			s.metrics.IncrementCacheLookup("hit")
			return cached, nil
		} else if errors.Is(err, store.ErrCacheMiss) {
			s.metrics.IncrementCacheLookup("miss")
		} else {
			s.metrics.IncrementCacheLookup("error")
			s.logger.WarnContext(ctx, "result cache lookup failed", "error", err)
		}
	}

	result := s.engine.Calculate(input)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result, cacheTTL); err != nil {
			s.logger.WarnContext(ctx, "result cache store failed", "error", err)
		}
	}

	excluded := 0
	for _, h := range result.Heirs {
		if h.Excluded {
			excluded++
		}
	}

	if s.publisher != nil {
		s.publisher.Emit(ctx, audit.Event{
			EstateID:   estateID,
			Case:       string(result.Case),
			BaseNumber: result.BaseNumber,
			HeirCount:  len(result.Heirs),
			Excluded:   excluded,
			Amount:     input.Amount,
			RequestID:  requestcontext.RequestID(ctx),
		})
	}

	s.metrics.IncrementOutcome(string(result.Case))
	s.metrics.ObserveCalculateLatency(time.Since(start))

	return result, nil
}

// cacheTTL bounds staleness of cached results against config changes; the
// inputs themselves can never go stale because the key is their digest.
const cacheTTL = 10 * time.Minute

// inputDigest produces a deterministic key for the exact engine input.
func inputDigest(input faraid.EstateInput) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
