// Package crack recovers the seeds of MT19937 generators by exhaustive
// search over small seed spaces: Unix timestamps and 16-bit keys.
package crack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/whatf0xx/tempers/mt"
)

var (
	// ErrNotFound is returned when no seed in the searched range matches.
	ErrNotFound = errors.New("crack: nothing found")

	// ErrShortCiphertext is returned when the known plaintext is longer
	// than the ciphertext.
	ErrShortCiphertext = errors.New("crack: ciphertext shorter than known plaintext")
)

// none marks that no worker has found a match yet.
const none = math.MaxUint64

// Searcher scans seed ranges in parallel.
type Searcher struct {
	workers int
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithWorkers sets the number of goroutines used per search. Values below
// one select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		s.workers = n
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) {
		s.logger = logger
	}
}

// NewSearcher returns a Searcher configured by opts.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	return s
}

// Window returns the seed range [now-window, now], clamped at zero.
func Window(now, window uint32) (lo, hi uint32) {
	if window > now {
		return 0, now
	}
	return now - window, now
}

// Seed returns the lowest seed in [lo, hi] whose first output is first.
func (s *Searcher) Seed(ctx context.Context, first, lo, hi uint32) (uint32, error) {
	return s.search(ctx, kindSeed, lo, hi, func(g *mt.MT) bool {
		return g.Uint32() == first
	})
}

// Key returns the lowest 16-bit seed of an MT19937 keystream that could
// have encrypted a message ending in known.
func (s *Searcher) Key(ctx context.Context, ciphertext, known []byte) (uint16, error) {
	if len(ciphertext) < len(known) {
		return 0, ErrShortCiphertext
	}
	// Skip the keystream for the unknown prefix.
	n := len(ciphertext) - len(known)
	seed, err := s.search(ctx, kindKey, 0, 1<<16-1, func(g *mt.MT) bool {
		for i := 0; i < n; i++ {
			g.Uint32()
		}
		for i, b := range known {
			if b^byte(g.Uint32()) != ciphertext[n+i] {
				return false
			}
		}
		return true
	})
	return uint16(seed), err
}

// Token returns the earliest timestamp in Window(now, window) that seeded
// a generator whose first len(token) keystream bytes are token.
func (s *Searcher) Token(ctx context.Context, token []byte, now, window uint32) (uint32, error) {
	lo, hi := Window(now, window)
	return s.search(ctx, kindToken, lo, hi, func(g *mt.MT) bool {
		for _, b := range token {
			if byte(g.Uint32()) != b {
				return false
			}
		}
		return true
	})
}

// search splits [lo, hi] among the workers. Each worker owns a generator
// and seeds it with every value of its share in ascending order. A worker
// stops once its seeds pass the lowest match found so far, so the result
// is the lowest matching seed whatever the scheduling.
func (s *Searcher) search(ctx context.Context, kind string, lo, hi uint32, match func(*mt.MT) bool) (uint32, error) {
	if lo > hi {
		return 0, fmt.Errorf("crack: invalid range [%d, %d]", lo, hi)
	}
	total := uint64(hi) - uint64(lo) + 1
	workers := uint64(s.workers)
	if workers > total {
		workers = total
	}
	chunk := (total + workers - 1) / workers

	s.logger.Debug("seed search started",
		slog.String("kind", kind),
		slog.Any("lo", lo),
		slog.Any("hi", hi),
		slog.Uint64("workers", workers))

	var best atomic.Uint64
	best.Store(none)
	g, gctx := errgroup.WithContext(ctx)
	for w := uint64(0); w < workers; w++ {
		start := uint64(lo) + w*chunk
		if start > uint64(hi) {
			break
		}
		end := min(start+chunk-1, uint64(hi))

		g.Go(func() error {
			gen := mt.Blank()
			var scanned uint64
			defer func() {
				seedsScanned.WithLabelValues(kind).Add(float64(scanned))
			}()
			for seed := start; seed <= end && seed < best.Load(); seed++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				gen.Seed(uint32(seed))
				scanned++
				if match(gen) {
					lower(&best, seed)
					return nil
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		crackTotal.WithLabelValues(kind, resultCanceled).Inc()
		return 0, err
	}

	seed := best.Load()
	if seed == none {
		crackTotal.WithLabelValues(kind, resultNotFound).Inc()
		return 0, ErrNotFound
	}
	crackTotal.WithLabelValues(kind, resultFound).Inc()
	s.logger.Info("seed found", slog.String("kind", kind), slog.Uint64("seed", seed))
	return uint32(seed), nil
}

// lower sets best to seed if seed is smaller.
func lower(best *atomic.Uint64, seed uint64) {
	for {
		cur := best.Load()
		if seed >= cur || best.CompareAndSwap(cur, seed) {
			return
		}
	}
}
