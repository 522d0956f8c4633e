package predict

import (
	"fmt"

	"github.com/whatf0xx/tempers/mt"
)

// Follow consumes the rest of s, checking every value against g, and
// returns the number of values consumed. On success g is positioned just
// past the end of the stream. A stream that reports its own failure
// through Err returns that error.
func Follow(g *mt.MT, s Stream) (int, error) {
	var n int
	for {
		got, ok := s.Next()
		if !ok {
			break
		}
		if want := g.Uint32(); got != want {
			return n, fmt.Errorf("%w: value %d after recovery is %d, want %d",
				ErrDiverged, n, got, want)
		}
		n++
	}
	if e, ok := s.(interface{ Err() error }); ok {
		if err := e.Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}
