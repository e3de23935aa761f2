//go:build rdfio_debug

package rdfio

// assertScratchTop is compiled in only under the rdfio_debug build tag:
// every append must extend bytes already at or beyond the currently open
// frame's start.
func assertScratchTop(s *scratchStack) {
	if Ref(len(s.buf)) < s.topRef {
		panic("rdfio: scratch stack append before open frame")
	}
}
