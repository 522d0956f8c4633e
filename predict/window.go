package predict

import "github.com/whatf0xx/tempers/mt"

// window holds the last mt.StateSize stream values, oldest first.
type window struct {
	buf   [mt.StateSize]uint32
	start int
	n     int
}

// full reports whether the window holds mt.StateSize values.
func (w *window) full() bool {
	return w.n == len(w.buf)
}

// push appends n, evicting the oldest value when the window is full.
func (w *window) push(n uint32) {
	if !w.full() {
		w.buf[(w.start+w.n)%len(w.buf)] = n
		w.n++
		return
	}
	w.buf[w.start] = n
	w.start = (w.start + 1) % len(w.buf)
}

// values returns the window contents in stream order.
func (w *window) values() []uint32 {
	res := make([]uint32, 0, w.n)
	for i := 0; i < w.n; i++ {
		res = append(res, w.buf[(w.start+i)%len(w.buf)])
	}
	return res
}
