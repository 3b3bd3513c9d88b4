// Package service validates raw payloads against registered shapes.
//
// It glues the registry, the document decoder, an optional verdict cache and
// the metrics recorder behind a single Validate call shared by the CLI, the
// HTTP adapter and the MCP adapter.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/typecheck/internal/document"
	"github.com/aretw0/typecheck/internal/logging"
	"github.com/aretw0/typecheck/internal/metrics"
	"github.com/aretw0/typecheck/pkg/ports"
	"github.com/aretw0/typecheck/pkg/registry"
)

// Verdict is the outcome of validating one payload.
type Verdict struct {
	Shape  string `json:"shape"`
	Valid  bool   `json:"valid"`
	Cached bool   `json:"cached"`
}

// Service validates payloads against the shapes of a registry.
type Service struct {
	registry *registry.Registry
	cache    ports.VerdictCache
	metrics  *metrics.Recorder
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithCache enables verdict caching.
func WithCache(c ports.VerdictCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithMetrics records every check with rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(s *Service) {
		s.metrics = rec
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// New creates a service over reg.
func New(reg *registry.Registry, opts ...Option) *Service {
	s := &Service{
		registry: reg,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Shapes returns the registered shapes ordered by name.
func (s *Service) Shapes() []registry.Entry {
	return s.registry.Entries()
}

// Shape returns the shape registered under name.
func (s *Service) Shape(name string) (registry.Entry, error) {
	return s.registry.Lookup(name)
}

// Validate decodes payload and checks it against the named shape.
//
// Returns registry.ErrShapeNotFound for unknown shapes and
// document.ErrDecode for payloads that cannot be decoded. A payload that
// decodes but does not conform is not an error: the verdict says so.
func (s *Service) Validate(ctx context.Context, shape string, payload []byte, format document.Format) (Verdict, error) {
	if err := ctx.Err(); err != nil {
		return Verdict{}, err
	}
	entry, err := s.registry.Lookup(shape)
	if err != nil {
		return Verdict{}, err
	}

	key := cacheKey(entry, format, payload)
	if valid, ok := s.lookup(ctx, key); ok {
		return Verdict{Shape: shape, Valid: valid, Cached: true}, nil
	}

	start := time.Now()
	v, err := document.Decode(payload, format)
	if err != nil {
		s.metrics.ObserveCheck(shape, metrics.ResultError, time.Since(start))
		s.logger.Debug("decode failed", "shape", shape, "error", err)
		return Verdict{}, err
	}
	valid := entry.Checker.Check(v)
	s.metrics.ObserveCheck(shape, metrics.Result(valid), time.Since(start))
	s.logger.Debug("checked payload", "shape", shape, "valid", valid, "bytes", len(payload))

	s.store(ctx, key, valid)
	return Verdict{Shape: shape, Valid: valid}, nil
}

// ValidateValue checks an already decoded value. It bypasses the cache.
func (s *Service) ValidateValue(ctx context.Context, shape string, v any) (Verdict, error) {
	start := time.Now()
	valid, err := s.registry.Check(ctx, shape, v)
	if err != nil {
		return Verdict{}, err
	}
	s.metrics.ObserveCheck(shape, metrics.Result(valid), time.Since(start))
	return Verdict{Shape: shape, Valid: valid}, nil
}

// lookup consults the cache. Cache failures degrade to a miss.
func (s *Service) lookup(ctx context.Context, key string) (bool, bool) {
	if s.cache == nil {
		return false, false
	}
	valid, found, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		s.metrics.ObserveCache("error")
		s.logger.Warn("verdict cache lookup failed", "error", err)
		return false, false
	case found:
		s.metrics.ObserveCache("hit")
		return valid, true
	}
	s.metrics.ObserveCache("miss")
	return false, false
}

func (s *Service) store(ctx context.Context, key string, valid bool) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, key, valid); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("verdict cache store failed", "error", err)
	}
}

// cacheKey derives a stable key from the shape name, format and a digest of
// the shape's type expression and the payload. A shape redefined under the
// same name never reuses verdicts of the old definition.
func cacheKey(entry registry.Entry, format document.Format, payload []byte) string {
	if format == "" {
		format = document.FormatAuto
	}
	h := sha256.New()
	h.Write([]byte(entry.Checker.String()))
	h.Write([]byte{0})
	h.Write(payload)
	return entry.Name + ":" + string(format) + ":" + hex.EncodeToString(h.Sum(nil))
}
