// Package predict reconstructs MT19937 generators from their outputs.
//
// FromOutputs handles a block of outputs known to start right after a
// twist. FromStream handles a live stream whose phase within the twist
// cycle is unknown: it slides a window of mt.StateSize outputs along the
// stream until a candidate built from the window predicts the values that
// follow it.
package predict

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/whatf0xx/tempers/mt"
)

// Predictor recovers generator state from output streams.
type Predictor struct {
	lookahead int
	logger    *slog.Logger
}

// Option configures a Predictor.
type Option func(*Predictor)

// WithLookahead sets how many consecutive outputs a candidate must predict
// before it is accepted. The default is 1.
func WithLookahead(k int) Option {
	return func(p *Predictor) {
		p.lookahead = k
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Predictor) {
		p.logger = logger
	}
}

// NewPredictor returns a Predictor configured by opts.
func NewPredictor(opts ...Option) (*Predictor, error) {
	p := &Predictor{
		lookahead: 1,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.lookahead < 1 || p.lookahead > mt.StateSize {
		return nil, fmt.Errorf("predict: lookahead %d out of range [1, %d]", p.lookahead, mt.StateSize)
	}
	return p, nil
}

// FromStream recovers a generator from s with the default Predictor.
func FromStream(s Stream) (*mt.MT, error) {
	p, err := NewPredictor()
	if err != nil {
		return nil, err
	}
	return p.Predict(s)
}

// Predict reads s until some window of mt.StateSize consecutive outputs,
// reconstructed and twisted, predicts the stream's next outputs. The
// returned generator has already produced those checked outputs, so its
// next value is the stream's next value.
//
// At most one full cycle of phases is tried. If several phases would
// validate, the first one wins.
func (p *Predictor) Predict(s Stream) (*mt.MT, error) {
	start := time.Now()
	g, trials, err := p.predict(s)
	predictDuration.Observe(time.Since(start).Seconds())
	predictTrials.Observe(float64(trials))

	switch {
	case err == nil:
		predictTotal.WithLabelValues(resultMatched).Inc()
		p.logger.Info("stream phase recovered",
			slog.Int("trials", trials),
			slog.Int("lookahead", p.lookahead))
	case errors.Is(err, ErrIncompleteStream):
		predictTotal.WithLabelValues(resultIncomplete).Inc()
	case errors.Is(err, ErrUnmatchable):
		predictTotal.WithLabelValues(resultUnmatchable).Inc()
		p.logger.Warn("no stream phase matched", slog.Int("trials", trials))
	default:
		predictTotal.WithLabelValues(resultError).Inc()
	}
	return g, err
}

func (p *Predictor) predict(s Stream) (*mt.MT, int, error) {
	var w window
	for !w.full() {
		n, err := pull(s)
		if err != nil {
			return nil, 0, err
		}
		w.push(n)
	}

	// pending holds values pulled past the window, oldest first.
	var pending []uint32
	for trial := 0; trial < mt.StateSize; trial++ {
		candidate, err := FromOutputs(w.values())
		if err != nil {
			return nil, trial, err
		}
		candidate.Twist()

		matched := true
		for i := 0; i < p.lookahead; i++ {
			if i == len(pending) {
				n, err := pull(s)
				if err != nil {
					return nil, trial, err
				}
				pending = append(pending, n)
			}
			if got := candidate.Uint32(); got != pending[i] {
				p.logger.Debug("phase rejected",
					slog.Int("trial", trial),
					slog.Int("offset", i),
					slog.Any("predicted", got),
					slog.Any("observed", pending[i]))
				matched = false
				break
			}
		}
		if matched {
			return candidate, trial + 1, nil
		}
		w.push(pending[0])
		pending = pending[1:]
	}
	return nil, mt.StateSize, ErrUnmatchable
}

// pull reads one value from s. A stream that reports its own failure
// through Err returns that error instead of ErrIncompleteStream.
func pull(s Stream) (uint32, error) {
	n, ok := s.Next()
	if ok {
		return n, nil
	}
	if e, ok := s.(interface{ Err() error }); ok {
		if err := e.Err(); err != nil {
			return 0, err
		}
	}
	return 0, ErrIncompleteStream
}
