package collide

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/preimage/alphabet"
	"github.com/katalvlaran/preimage/checksum"
	"github.com/katalvlaran/preimage/dfs"
	"github.com/katalvlaran/preimage/search"
)

// DefaultKey is the key whose digest is searched when none is given.
const DefaultKey = "key"

// DefaultMaxLength bounds exhaustive depth-first candidates unless overridden.
const DefaultMaxLength = 4

// Sentinel errors for configuration.
var (
	// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
	ErrUnknownStrategy = errors.New("collide: unknown strategy")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("collide: invalid config")
)

// Strategy selects the search engine.
type Strategy int

const (
	// DepthFirst runs the trampolined depth-first engine.
	DepthFirst Strategy = iota
	// BreadthFirst runs the queue-driven breadth-first engine.
	BreadthFirst
)

// String returns the short strategy name used on the command line.
func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy accepts "dfs"/"depth-first" and "bfs"/"breadth-first".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs", "depth-first":
		return DepthFirst, nil
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Config describes one search run.
type Config struct {
	Strategy Strategy
	Mode     search.Mode
	Ranges   []alphabet.Range
	Modulus  uint32

	// MaxSteps is the engine budget; 0 runs until a collision is found.
	MaxSteps int
	// MaxLength bounds candidate length; exhaustive depth-first needs it > 0.
	MaxLength int

	// AllowKey lets the key itself count as a collision.
	AllowKey bool

	// ProgressEvery logs a debug line every n tested candidates (0 = never).
	ProgressEvery int
}

// DefaultConfig mirrors the reference driver: depth-first, faithful, the
// three default ranges and the fixed modulus, with a finite budget.
func DefaultConfig() Config {
	return Config{
		Strategy:      DepthFirst,
		Mode:          search.Faithful,
		Ranges:        alphabet.DefaultRanges(),
		Modulus:       checksum.Modulus,
		MaxSteps:      dfs.DefaultMaxSteps,
		MaxLength:     0,
		ProgressEvery: 100_000,
	}
}

// Validate checks c for values the engines would reject.
func (c Config) Validate() error {
	switch {
	case c.Strategy != DepthFirst && c.Strategy != BreadthFirst:
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Strategy)
	case !c.Mode.Valid():
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Mode)
	case c.Modulus == 0:
		return fmt.Errorf("%w: modulus must be positive", ErrInvalidConfig)
	case c.MaxSteps < 0:
		return fmt.Errorf("%w: max steps cannot be negative (%d)", ErrInvalidConfig, c.MaxSteps)
	case c.MaxLength < 0:
		return fmt.Errorf("%w: max length cannot be negative (%d)", ErrInvalidConfig, c.MaxLength)
	case c.ProgressEvery < 0:
		return fmt.Errorf("%w: progress interval cannot be negative (%d)", ErrInvalidConfig, c.ProgressEvery)
	case alphabet.New(c.Ranges...).Len() == 0:
		return fmt.Errorf("%w: %w", ErrInvalidConfig, search.ErrEmptyAlphabet)
	case c.Strategy == DepthFirst && c.Mode == search.Exhaustive && c.MaxLength == 0:
		return fmt.Errorf("%w: exhaustive dfs needs a max length", ErrInvalidConfig)
	}

	return nil
}
