// SPDX-License-Identifier: MIT
// Package decode: Decoder and per-run bookkeeping.

package decode

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvfst/config"
	"github.com/katalvlaran/lvfst/internal/logging"
	"github.com/katalvlaran/lvfst/internal/metrics"
)

// Sentinel errors.
var (
	// ErrNoPath indicates that no final vertex is reachable.
	ErrNoPath = errors.New("decode: no path to a final vertex")

	// ErrTooManyPaths indicates a KBest request above the configured cap.
	ErrTooManyPaths = errors.New("decode: too many paths requested")

	// ErrBadPathCount indicates a KBest request for fewer than one path.
	ErrBadPathCount = errors.New("decode: path count must be positive")
)

// Run kinds, used as metric labels and log fields.
const (
	KindBest       = "best"
	KindKBest      = "kbest"
	KindPosteriors = "posteriors"
	KindPrune      = "prune"
	KindCompose    = "compose"
)

// Hypothesis is one decoded path.
type Hypothesis[E comparable] struct {
	Path  []E
	Value float64
}

// Decoder runs pipelines with one configuration and logger. It holds no
// per-run state and may be used from several goroutines.
type Decoder struct {
	cfg config.Config
	log *zap.Logger
}

// Option customizes a Decoder.
type Option func(*Decoder)

// WithLogger replaces the logger built from the configuration.
func WithLogger(l *zap.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.log = l
		}
	}
}

// New validates cfg and builds a Decoder. Without WithLogger the logger is
// built from cfg.Logging().
func New(cfg config.Config, opts ...Option) (*Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Decoder{cfg: cfg}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		l, err := logging.NewLogger(cfg.Logging())
		if err != nil {
			return nil, fmt.Errorf("decode: logger: %w", err)
		}
		d.log = l
	}

	return d, nil
}

// NewFromEnv loads the configuration from the environment and builds a
// Decoder with it.
func NewFromEnv(opts ...Option) (*Decoder, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	return New(cfg, opts...)
}

// Config returns the configuration in use.
func (d *Decoder) Config() config.Config { return d.cfg }

// run is the bookkeeping of one call.
type run struct {
	id    string
	kind  string
	log   *zap.Logger
	start time.Time
}

func (d *Decoder) begin(kind string, fields ...zap.Field) *run {
	id := uuid.NewString()
	r := &run{
		id:    id,
		kind:  kind,
		log:   d.log.With(zap.String("run_id", id), zap.String("kind", kind)),
		start: time.Now(),
	}
	r.log.Debug("decode started", fields...)

	return r
}

// finish records the outcome of r and returns err unchanged.
func (r *run) finish(err error, fields ...zap.Field) error {
	elapsed := time.Since(r.start)
	metrics.DecodeDurationSeconds.WithLabelValues(r.kind).Observe(elapsed.Seconds())

	result := "ok"
	switch {
	case errors.Is(err, ErrNoPath):
		result = "no_path"
	case err != nil:
		result = "error"
	}
	metrics.DecodeRunsTotal.WithLabelValues(r.kind, result).Inc()

	fields = append(fields, zap.Duration("elapsed", elapsed), zap.String("result", result))
	if err != nil && result == "error" {
		r.log.Error("decode failed", append(fields, zap.Error(err))...)
	} else {
		r.log.Info("decode finished", fields...)
	}

	return err
}
