package collide

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/preimage/alphabet"
	"github.com/katalvlaran/preimage/bfs"
	"github.com/katalvlaran/preimage/checksum"
	"github.com/katalvlaran/preimage/dfs"
	"github.com/katalvlaran/preimage/search"
)

// Report is the outcome of one Find call.
type Report struct {
	ID       string
	Key      string
	Strategy Strategy
	Mode     search.Mode
	Alphabet string // ranges in alphabet.FormatRanges notation
	Target   checksum.Digest
	Result   search.Result
	Started  time.Time
	Elapsed  time.Duration
	Err      error
}

// Found reports whether the run produced a collision.
func (r *Report) Found() bool { return r.Result.Found }

// Recorder persists reports, e.g. runlog.Store.
type Recorder interface {
	Record(ctx context.Context, r Report) error
}

// FinderOption customizes a Finder.
type FinderOption func(*Finder)

// WithRecorder stores every report after the search ends.
func WithRecorder(rec Recorder) FinderOption {
	return func(f *Finder) { f.rec = rec }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) FinderOption {
	return func(f *Finder) {
		if now != nil {
			f.now = now
		}
	}
}

// Finder runs collision searches for keys under a fixed Config.
type Finder struct {
	cfg    Config
	log    *zap.Logger
	alpha  alphabet.Alphabet
	hasher checksum.Modular
	rec    Recorder
	now    func() time.Time
}

// NewFinder validates cfg and prepares the alphabet and hasher.
// A nil logger discards all output.
func NewFinder(cfg Config, log *zap.Logger, opts ...FinderOption) (*Finder, error) {
	if cfg.Strategy == DepthFirst && cfg.Mode == search.Exhaustive && cfg.MaxLength == 0 {
		cfg.MaxLength = DefaultMaxLength
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h, err := checksum.Mod(cfg.Modulus)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	f := &Finder{
		cfg:    cfg,
		log:    log,
		alpha:  alphabet.New(cfg.Ranges...),
		hasher: h,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Config returns the effective configuration.
func (f *Finder) Config() Config { return f.cfg }

// Digest returns the key digest under the configured modulus.
func (f *Finder) Digest(key string) checksum.Digest { return f.hasher.Sum(key) }

// Find searches for a string other than key (unless AllowKey) with the same
// digest. The returned Report is always non-nil; on failure Report.Err equals
// the returned error and errors.Is(err, search.ErrSearchExhausted) tells a
// spent budget apart from cancellation or a recorder failure.
func (f *Finder) Find(ctx context.Context, key string) (*Report, error) {
	rep := &Report{
		ID:       newRunID(),
		Key:      key,
		Strategy: f.cfg.Strategy,
		Mode:     f.cfg.Mode,
		Alphabet: alphabet.FormatRanges(f.cfg.Ranges),
		Target:   f.hasher.Sum(key),
		Started:  f.now(),
	}
	log := f.log.With(
		zap.String("run", rep.ID),
		zap.Stringer("strategy", rep.Strategy),
		zap.Stringer("mode", rep.Mode),
	)
	log.Info("search started",
		zap.String("key", key),
		zap.Uint32("digest", uint32(rep.Target)),
		zap.Int("alphabet", f.alpha.Len()),
		zap.Int("max_steps", f.cfg.MaxSteps),
		zap.Int("max_length", f.cfg.MaxLength),
	)

	res, err := f.run(ctx, key, rep.Target, log)
	rep.Elapsed = f.now().Sub(rep.Started)
	if res != nil {
		rep.Result = *res
	}
	rep.Err = err

	switch {
	case err == nil:
		log.Info("collision found",
			zap.String("candidate", res.Candidate),
			zap.Int("steps", res.Steps),
			zap.Duration("elapsed", rep.Elapsed),
		)
	case errors.Is(err, search.ErrSearchExhausted):
		log.Warn("search exhausted",
			zap.Int("steps", rep.Result.Steps),
			zap.Duration("elapsed", rep.Elapsed),
		)
	default:
		log.Error("search failed", zap.Error(err))
	}

	if f.rec != nil {
		if rerr := f.rec.Record(context.WithoutCancel(ctx), *rep); rerr != nil {
			log.Error("record run", zap.Error(rerr))
			if err == nil {
				err = fmt.Errorf("collide: record run %s: %w", rep.ID, rerr)
			}
		}
	}

	return rep, err
}

// run dispatches to the selected engine with the shared options.
func (f *Finder) run(ctx context.Context, key string, target checksum.Digest, log *zap.Logger) (*search.Result, error) {
	filter := func(c string) bool { return f.cfg.AllowKey || c != key }
	visits := 0
	onVisit := func(c string, depth int) error {
		visits++
		if f.cfg.ProgressEvery > 0 && visits%f.cfg.ProgressEvery == 0 {
			log.Debug("progress", zap.Int("tested", visits), zap.Int("depth", depth))
		}
		return nil
	}

	switch f.cfg.Strategy {
	case BreadthFirst:
		return bfs.FindCollision(target,
			bfs.WithContext(ctx),
			bfs.WithAlphabet(f.alpha),
			bfs.WithChecksum(f.hasher),
			bfs.WithMode(f.cfg.Mode),
			bfs.WithMaxSteps(f.cfg.MaxSteps),
			bfs.WithMaxLength(f.cfg.MaxLength),
			bfs.WithFilter(filter),
			bfs.WithOnVisit(onVisit),
		)
	default:
		return dfs.FindCollision(target,
			dfs.WithContext(ctx),
			dfs.WithAlphabet(f.alpha),
			dfs.WithChecksum(f.hasher),
			dfs.WithMode(f.cfg.Mode),
			dfs.WithMaxSteps(f.cfg.MaxSteps),
			dfs.WithMaxLength(f.cfg.MaxLength),
			dfs.WithFilter(filter),
			dfs.WithOnVisit(onVisit),
		)
	}
}

// newRunID returns a time-ordered UUIDv7, falling back to v4.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}

	return id.String()
}
