package mt

// Uint32n returns a pseudo-random unsigned 32-bit integer in [0, n).
func (mt *MT) Uint32n(n uint32) uint32 {
	if n == 0 {
		panic("Uint32n: invalid bound")
	}
	return uint32(uint64(mt.Uint32()) * uint64(n) >> 32)
}

// Range returns a pseudo-random unsigned 32-bit integer in [lo, hi].
func (mt *MT) Range(lo, hi uint32) uint32 {
	if lo > hi {
		panic("Range: invalid range")
	}
	// The full range overflows hi-lo+1.
	if lo == 0 && hi == ^uint32(0) {
		return mt.Uint32()
	}
	return lo + mt.Uint32n(hi-lo+1)
}

// XORKeyStream uses the lowest 8 bits of MT19937 output as a stream cipher.
func (mt *MT) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("XORKeyStream: output smaller than input")
	}
	for i := range src {
		dst[i] = src[i] ^ byte(mt.Uint32()&0xff)
	}
}

// Bytes returns a pseudo-random buffer of the desired length.
func (mt *MT) Bytes(length int) []byte {
	res := make([]byte, length)
	mt.XORKeyStream(res, res)
	return res
}
