package rdfio

import "io"

const eof = -1

// ReadFunc mirrors a stdio-style read(buf, size, nmemb, stream) callback:
// it fills p and returns the number of bytes read plus an error. Returning
// (0, nil) is the soft-EOF contract — "no bytes now, but the stream may
// resume". Returning (n, io.EOF) signals the stream has ended forever.
type ReadFunc func(p []byte) (n int, err error)

// ErrFunc mirrors the stdio error(stream) callback: a non-nil return is
// fatal and maps to ErrBadStream.
type ErrFunc func() error

// ByteSource buffers bytes from a caller-supplied read function and offers
// byte-at-a-time peek/advance with EOF and soft-EOF semantics.
type ByteSource struct {
	read ReadFunc
	errf ErrFunc

	buf    []byte
	head   int  // read-head offset into buf
	filled int  // valid bytes in buf
	eof    bool // stream ended forever (as opposed to soft EOF)
}

// NewByteSource wraps read/errf with an internal buffer of pageSize bytes
// (minimum 1; callers typically pass 4096).
func NewByteSource(read ReadFunc, errf ErrFunc, pageSize int) *ByteSource {
	if pageSize < 1 {
		pageSize = 1
	}
	if errf == nil {
		errf = func() error { return nil }
	}
	return &ByteSource{read: read, errf: errf, buf: make([]byte, pageSize)}
}

// ByteSourceFromReader adapts a standard io.Reader into a ByteSource, so
// files, sockets and bytes.Reader all work without a caller writing a
// ReadFunc by hand.
func ByteSourceFromReader(r io.Reader, pageSize int) *ByteSource {
	return NewByteSource(
		func(p []byte) (int, error) { return r.Read(p) },
		func() error { return nil },
		pageSize,
	)
}

// refill pulls more bytes into buf when the head has caught up to filled.
// It returns Success when bytes became available, Failure on soft EOF,
// ErrBadStream if the error callback reports non-zero, or Success with
// filled==0,eof==true at real end of stream (Peek then reports EOF).
func (b *ByteSource) refill() Status {
	if b.head < b.filled {
		return Success
	}
	b.head, b.filled = 0, 0

	n, err := b.read(b.buf)
	b.filled = n
	if n > 0 {
		return Success
	}

	if errCause := b.errf(); errCause != nil {
		return ErrBadStream
	}
	if err == io.EOF {
		b.eof = true
		return Success
	}
	if err != nil {
		return ErrBadStream
	}
	// n == 0, err == nil, errf() == nil: soft EOF.
	return Failure
}

// Peek returns the next byte as an unsigned value, or eof (-1) at the end
// of the stream. It does not advance the read head.
func (b *ByteSource) Peek() int {
	if b.head < b.filled {
		return int(b.buf[b.head])
	}
	if b.eof {
		return eof
	}
	st := b.refill()
	if st != Success {
		return eof
	}
	if b.head < b.filled {
		return int(b.buf[b.head])
	}
	return eof
}

// Advance refills the buffer when the head reaches the end and moves past
// one byte. It returns Success, Failure (soft EOF — the caller should
// retry later), or ErrBadStream.
func (b *ByteSource) Advance() Status {
	if b.head >= b.filled {
		st := b.refill()
		if st != Success {
			return st
		}
		if b.head >= b.filled {
			return Failure // real EOF reached with nothing buffered
		}
	}
	b.head++
	return Success
}

// AtEOF reports whether the stream has ended forever (as opposed to a
// momentary soft EOF that a later call may resolve).
func (b *ByteSource) AtEOF() bool {
	return b.eof && b.head >= b.filled
}

// PeekAt looks offset bytes past the current head within the buffer
// already filled by the last refill, without consuming anything and
// without forcing a refill. It returns eof if that byte is not currently
// buffered (whether because the stream has not produced it yet or because
// the stream truly ends there) — callers that need this distinction use it
// only to resolve small grammar ambiguities (e.g. whether a '.' begins a
// decimal fraction or terminates a statement) where treating "unknown" as
// "not a digit" is the conservative, correct choice.
func (b *ByteSource) PeekAt(offset int) int {
	idx := b.head + offset
	if idx < b.filled {
		return int(b.buf[idx])
	}
	return eof
}
