//go:build !rdfio_debug

package rdfio

// assertScratchTop is a no-op outside of debug builds; see scratch_debug.go.
func assertScratchTop(*scratchStack) {}
