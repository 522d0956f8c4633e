package mt

// Source adapts an MT19937 generator to math/rand.
type Source struct {
	mt MT
}

// NewSource returns a Source seeded with the low 32 bits of seed.
func NewSource(seed int64) *Source {
	var s Source
	s.Seed(seed)
	return &s
}

// Seed reseeds the generator with the low 32 bits of seed.
func (s *Source) Seed(seed int64) {
	s.mt.Seed(uint32(seed))
}

// Uint64 joins two consecutive outputs, the first one in the high word.
func (s *Source) Uint64() uint64 {
	hi := uint64(s.mt.Uint32())
	return hi<<32 | uint64(s.mt.Uint32())
}

// Int63 returns a non-negative pseudo-random 63-bit integer.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
