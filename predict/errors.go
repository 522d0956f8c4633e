package predict

import (
	"errors"
	"fmt"

	"github.com/whatf0xx/tempers/mt"
)

var (
	// ErrIncompleteStream is returned when a stream runs out before the
	// predictor has seen enough outputs.
	ErrIncompleteStream = errors.New("predict: stream ended before enough outputs were observed")

	// ErrUnmatchable is returned when no phase within one full cycle
	// reproduces the stream.
	ErrUnmatchable = errors.New("predict: no phase of the stream matches an MT19937 cycle")

	// ErrDiverged is returned by Follow when a stream stops agreeing with
	// the recovered generator.
	ErrDiverged = errors.New("predict: stream diverged from the recovered generator")
)

// InputLengthError reports an output block that does not hold exactly
// mt.StateSize values.
type InputLengthError struct {
	Len int
}

func (e *InputLengthError) Error() string {
	return fmt.Sprintf("predict: got %d outputs, want %d", e.Len, mt.StateSize)
}
