// Package mt implements the MT19937 (32-bit Mersenne Twister) PRNG, its
// tempering transformation and the exact inverse of that transformation.
//
// MT19937 is not cryptographically secure: StateSize consecutive outputs
// are enough to reconstruct the generator and predict everything it will
// produce afterwards. See package predict.
package mt

import "fmt"

const (
	// StateSize is the number of 32-bit words in the generator state.
	StateSize = arraySize

	// DefaultSeed is the seed used by the reference implementation.
	DefaultSeed = 5489
)

const (
	arraySize   = 624
	offset      = 397
	multiplier  = 1812433253
	upperMask   = 0x80000000
	lowerMask   = 0x7fffffff
	coefficient = 0x9908b0df
)

// MT represents an MT19937 (32-bit Mersenne Twister) PRNG.
type MT struct {
	state [arraySize]uint32
	pos   int
}

// New initializes and returns a new MT19937 PRNG.
func New(seed uint32) *MT {
	var mt MT
	mt.Seed(seed)
	return &mt
}

// Default returns a generator seeded with DefaultSeed.
func Default() *MT {
	return New(DefaultSeed)
}

// Blank returns a generator whose state words are all zero. It must be
// populated by Seed or Restore before it produces useful output.
func Blank() *MT {
	return &MT{}
}

// Restore returns a generator with the given state words and cursor. The
// cursor counts the words already emitted since the last twist.
func Restore(state [StateSize]uint32, index int) (*MT, error) {
	if index < 0 || index > arraySize {
		return nil, fmt.Errorf("mt: index %d out of range [0, %d]", index, arraySize)
	}
	return &MT{state: state, pos: index}, nil
}

// Seed resets the generator state from a 32-bit seed.
func (mt *MT) Seed(seed uint32) {
	mt.state[0] = seed
	for i := 1; i < len(mt.state); i++ {
		mt.state[i] = multiplier*
			(mt.state[i-1]^(mt.state[i-1]>>30)) +
			uint32(i)
	}
	mt.Twist()
}

// Twist scrambles the MT19937 state array and rewinds the cursor.
//
// The sweep runs in place, so positions from n-m on read words already
// rewritten by this sweep.
func (mt *MT) Twist() {
	for i := range mt.state {
		n := (mt.state[i] & upperMask) | (mt.state[(i+1)%len(mt.state)] & lowerMask)
		mt.state[i] = mt.state[(i+offset)%len(mt.state)] ^ (n >> 1)
		if n&1 == 1 {
			mt.state[i] ^= coefficient
		}
	}
	mt.pos = 0
}

// Uint32 returns a pseudo-random unsigned 32-bit integer.
func (mt *MT) Uint32() uint32 {
	if mt.pos == len(mt.state) {
		mt.Twist()
	}
	if mt.pos > len(mt.state) {
		panic(fmt.Sprintf("Uint32: cursor %d past end of state", mt.pos))
	}
	n := Temper(mt.state[mt.pos])
	mt.pos++
	return n
}

// State returns a copy of the raw state words.
func (mt *MT) State() [StateSize]uint32 {
	return mt.state
}

// Index returns the number of words emitted since the last twist.
func (mt *MT) Index() int {
	return mt.pos
}

// Clone returns an independent copy of the generator.
func (mt *MT) Clone() *MT {
	clone := *mt
	return &clone
}
