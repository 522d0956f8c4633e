package predict

import "github.com/whatf0xx/tempers/mt"

// FromOutputs rebuilds a generator from the mt.StateSize outputs that
// immediately followed a twist. The result has its cursor at zero, so it
// will replay those outputs before producing new ones.
func FromOutputs(outputs []uint32) (*mt.MT, error) {
	if len(outputs) != mt.StateSize {
		return nil, &InputLengthError{Len: len(outputs)}
	}
	var state [mt.StateSize]uint32
	for i, n := range outputs {
		state[i] = mt.Untemper(n)
	}
	return mt.Restore(state, 0)
}

// Clone clones an MT19937 PRNG from mt.StateSize consecutive outputs. The
// clone produces the same values g produces next.
func Clone(g *mt.MT) *mt.MT {
	var state [mt.StateSize]uint32
	for i := range state {
		state[i] = mt.Untemper(g.Uint32())
	}
	// Restore cannot fail with a zero cursor.
	clone, _ := mt.Restore(state, 0)
	clone.Twist()
	return clone
}
