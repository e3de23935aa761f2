package rdfio

import "unicode/utf8"

// Ref is an offset into a scratchStack's backing buffer. References are
// expressed as offsets, not raw pointers, because the backing buffer may
// reallocate on growth.
type Ref int

// scratchStack is a contiguous, growable, append-only byte arena. A node
// under construction is identified by the Ref at which its bytes begin;
// reading goes on appending bytes to the topmost open frame until the
// owning production completes and copies the range out into an owned
// Node, after which popTo truncates the arena back to the frame's start.
type scratchStack struct {
	buf    []byte
	topRef Ref // start offset of the currently open frame, for STACK_ASSERT_TOP
}

func newScratchStack(capacityHint int) *scratchStack {
	return &scratchStack{buf: make([]byte, 0, capacityHint)}
}

// open begins a new frame and returns its starting Ref.
func (s *scratchStack) open() Ref {
	s.topRef = Ref(len(s.buf))
	return s.topRef
}

// push appends n uninitialized bytes to the open frame and returns a
// slice over them.
func (s *scratchStack) push(n int) []byte {
	start := len(s.buf)
	s.buf = append(s.buf, make([]byte, n)...)
	return s.buf[start : start+n]
}

// pushByte appends a single byte to the topmost open frame.
func (s *scratchStack) pushByte(b byte) {
	s.assertTop()
	s.buf = append(s.buf, b)
}

// pushBytes appends bs to the topmost open frame.
func (s *scratchStack) pushBytes(bs []byte) {
	s.assertTop()
	s.buf = append(s.buf, bs...)
}

// pushString appends s to the topmost open frame.
func (s *scratchStack) pushString(str string) {
	s.assertTop()
	s.buf = append(s.buf, str...)
}

// pushRune appends the UTF-8 encoding of r to the topmost open frame.
func (s *scratchStack) pushRune(r rune) {
	s.assertTop()
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	s.buf = append(s.buf, tmp[:n]...)
}

// top returns the current height (length) of the arena.
func (s *scratchStack) top() Ref { return Ref(len(s.buf)) }

// popTo truncates the arena back to height, unwinding any in-progress
// frame(s) on a parse failure.
func (s *scratchStack) popTo(height Ref) {
	s.buf = s.buf[:height]
}

// slice returns the bytes of the frame that began at ref and runs to the
// arena's current height, without copying.
func (s *scratchStack) slice(ref Ref) []byte {
	return s.buf[ref:]
}

// sliceRange returns the bytes between [from, to).
func (s *scratchStack) sliceRange(from, to Ref) []byte {
	return s.buf[from:to]
}

// string copies the frame starting at ref out as an owned string, required
// before emitting a statement since the arena may reallocate and reuse the
// bytes afterwards.
func (s *scratchStack) string(ref Ref) string {
	return string(s.buf[ref:])
}

// stringUTF8Repaired is like string, but replaces any invalid UTF-8 byte
// sequence in the frame with U+FFFD rather than passing the raw bytes
// through, so malformed input never reaches a statement's Node content.
func (s *scratchStack) stringUTF8Repaired(ref Ref) string {
	b := s.buf[ref:]
	if utf8.Valid(b) {
		return string(b)
	}
	var out []byte
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			out = append(out, "�"...)
			b = b[1:]
			continue
		}
		out = append(out, b[:size]...)
		b = b[size:]
	}
	return string(out)
}

// assertTop is a debug-only invariant check: in debug builds (build tag
// rdfio_debug) it verifies that appends only ever extend the topmost open
// frame. It is a no-op otherwise — see scratch_debug.go / scratch_release.go.
func (s *scratchStack) assertTop() {
	assertScratchTop(s)
}
