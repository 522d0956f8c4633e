package mt

const (
	temperShift1 = 11
	temperMask1  = 0xffffffff
	temperShift2 = 7
	temperMask2  = 0x9d2c5680
	temperShift3 = 15
	temperMask3  = 0xefc60000
	temperShift4 = 18
)

// Temper applies the MT19937 tempering transformation.
func Temper(n uint32) uint32 {
	n ^= (n >> temperShift1) & temperMask1
	n ^= (n << temperShift2) & temperMask2
	n ^= (n << temperShift3) & temperMask3
	n ^= n >> temperShift4

	return n
}

// Untemper reverses the MT19937 tempering transformation.
//
// The 18- and 15-bit steps undo themselves. The 7-bit step is undone by
// applying it 7 times, the 11-bit step by applying it 3 times.
func Untemper(n uint32) uint32 {
	n ^= n >> temperShift4
	n ^= (n << temperShift3) & temperMask3
	for i := 0; i < 7; i++ {
		n ^= (n << temperShift2) & temperMask2
	}
	for i := 0; i < 3; i++ {
		n ^= (n >> temperShift1) & temperMask1
	}

	return n
}
