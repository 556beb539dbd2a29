package store

import (
	"context"
	"errors"
	"time"

	"mirath/internal/estate"
	"mirath/internal/faraid"
)

// ErrNotFound is returned when the requested estate or heir does not exist.
var ErrNotFound = errors.New("not found")

// ErrCacheMiss is returned by result caches when no entry exists.
var ErrCacheMiss = errors.New("cache miss")

// Store persists estates and their heir rosters. Interface-driven so the
// service can run against memory in tests and PostgreSQL in production
// without rewiring.
type Store interface {
	SaveEstate(ctx context.Context, e *estate.Estate) error
	FindEstate(ctx context.Context, id string) (*estate.Estate, error)
	AddHeir(ctx context.Context, h *estate.HeirRecord) error
	ListHeirs(ctx context.Context, estateID string) ([]*estate.HeirRecord, error)
	RemoveHeir(ctx context.Context, estateID, heirID string) error
}

// ResultCache caches calculation results keyed by an input digest. The
// engine is referentially transparent, so a digest hit is always safe to
// serve.
type ResultCache interface {
	Get(ctx context.Context, key string) (*faraid.CalculationResult, error)
	Set(ctx context.Context, key string, result *faraid.CalculationResult, ttl time.Duration) error
}
