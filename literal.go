package rdfio

// readLiteral reads a quoted string literal (short "..."/'...' or long
// """..."""/'''...''' forms), its escape sequences, and an optional
// trailing language tag or datatype.
func (r *Reader) readLiteral() (*Node, Status) {
	quote := byte(r.peek())
	r.eatByte()

	long := false
	if r.peek() == int(quote) {
		r.eatByte()
		if r.peek() == int(quote) {
			r.eatByte()
			long = true
		} else {
			// Two quote bytes with nothing between: an empty short literal.
			return r.afterQuotedLiteral("")
		}
	}

	ref := r.scratch.open()
	for {
		c := r.peek()
		if c < 0 {
			if !r.src.AtEOF() {
				r.scratch.popTo(ref)
				return nil, Failure
			}
			r.scratch.popTo(ref)
			return nil, r.fail(ErrBadSyntax, "quoted literal not closed")
		}
		switch {
		case c == int(quote):
			if !long {
				r.eatByte()
				s := r.scratch.stringUTF8Repaired(ref)
				r.scratch.popTo(ref)
				return r.afterQuotedLiteral(s)
			}
			if st := r.readLongQuoteRun(quote); st == Success {
				// run closed the literal
				s := r.scratch.stringUTF8Repaired(ref)
				r.scratch.popTo(ref)
				return r.afterQuotedLiteral(s)
			} else if st != Failure {
				r.scratch.popTo(ref)
				return nil, st
			}
			// Failure here means the run of quote bytes was literal content
			// (fewer than three in a row); readLongQuoteRun already pushed
			// them, so just continue scanning.
		case c == '\n' || c == '\r':
			if !long {
				r.scratch.popTo(ref)
				return nil, r.fail(ErrBadSyntax, "newline in short-form literal")
			}
			r.eatByte()
			r.scratch.pushByte(byte(c))
		case c == '\\':
			r.eatByte()
			if st := r.readLiteralEscape(); st != Success {
				r.scratch.popTo(ref)
				return nil, st
			}
		default:
			r.eatByte()
			r.scratch.pushByte(byte(c))
		}
	}
}

// readLongQuoteRun is called with the first byte of a run of quote
// characters already peeked (not yet consumed) inside a long-form literal.
// It consumes the whole run: three or more closes the literal (Success,
// with every quote before the closing three pushed as content); fewer than
// three is just literal content, pushed verbatim (Failure, to signal "kept
// scanning, did not close").
func (r *Reader) readLongQuoteRun(quote byte) Status {
	n := 0
	for r.peek() == int(quote) {
		r.eatByte()
		n++
	}
	if n < 3 {
		for i := 0; i < n; i++ {
			r.scratch.pushByte(quote)
		}
		return Failure
	}
	// Closed by the last three quotes of the run; any before them (Turtle
	// allows up to two unescaped quotes before the closing run) are content.
	for i := 0; i < n-3; i++ {
		r.scratch.pushByte(quote)
	}
	return Success
}

// readLiteralEscape decodes one escape sequence (the backslash has already
// been consumed) onto the scratch stack.
func (r *Reader) readLiteralEscape() Status {
	c := r.peek()
	switch c {
	case 't':
		r.eatByte()
		r.scratch.pushByte('\t')
	case 'n':
		r.eatByte()
		r.scratch.pushByte('\n')
	case 'r':
		r.eatByte()
		r.scratch.pushByte('\r')
	case 'b':
		r.eatByte()
		r.scratch.pushByte('\b')
	case 'f':
		r.eatByte()
		r.scratch.pushByte('\f')
	case '"':
		r.eatByte()
		r.scratch.pushByte('"')
	case '\'':
		r.eatByte()
		r.scratch.pushByte('\'')
	case '\\':
		r.eatByte()
		r.scratch.pushByte('\\')
	case 'u', 'U':
		return r.readUnicodeEscapeInto()
	default:
		if c < 0 && !r.src.AtEOF() {
			return Failure
		}
		return r.fail(ErrBadSyntax, "illegal escape %q in literal", byte(c))
	}
	return Success
}

// readLangTag reads a BCP-47-ish language tag (the '@' has already been
// consumed): letters, then zero or more '-' followed by alphanumeric
// subtags.
func (r *Reader) readLangTag() (string, Status) {
	ref := r.scratch.open()
	subtagLen := 0
	isFirstSubtag := true

Scan:
	for {
		c := r.peek()
		switch {
		case c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z':
			r.eatByte()
			r.scratch.pushByte(byte(c))
			subtagLen++
		case c >= '0' && c <= '9' && !isFirstSubtag:
			r.eatByte()
			r.scratch.pushByte(byte(c))
			subtagLen++
		case c == '-':
			if subtagLen == 0 {
				r.scratch.popTo(ref)
				return "", r.fail(ErrBadSyntax, "empty subtag in language tag")
			}
			r.eatByte()
			r.scratch.pushByte('-')
			subtagLen = 0
			isFirstSubtag = false
		default:
			if c < 0 && !r.src.AtEOF() {
				r.scratch.popTo(ref)
				return "", Failure
			}
			break Scan
		}
	}
	if subtagLen == 0 {
		r.scratch.popTo(ref)
		return "", r.fail(ErrBadSyntax, "empty language tag")
	}
	s := r.scratch.string(ref)
	r.scratch.popTo(ref)
	return s, Success
}

// afterQuotedLiteral builds the final literal Node from its decoded string
// body, consuming an optional "@lang" or "^^datatype" suffix.
func (r *Reader) afterQuotedLiteral(content string) (*Node, Status) {
	c := r.peek()
	if c < 0 && !r.src.AtEOF() {
		return nil, Failure
	}
	switch c {
	case '@':
		r.eatByte()
		lang, st := r.readLangTag()
		if st != Success {
			return nil, st
		}
		return NewPlainLiteral(content, lang), Success
	case '^':
		r.eatByte()
		if st := r.eatByteCheck('^'); st != Success {
			return nil, st
		}
		dt, st := r.readTerm(ctxPredicate, nil)
		if st != Success {
			return nil, st
		}
		if dt.Kind() != KindIRI {
			return nil, r.fail(ErrBadSyntax, "datatype must be an IRI")
		}
		return NewTypedLiteral(content, dt), Success
	default:
		return NewTypedLiteral(content, NewURI(XSDString)), Success
	}
}

// readNumericLiteral reads a bare (unquoted) integer, decimal, or double
// literal. It uses ByteSource.PeekAt to decide whether a '.' begins a
// decimal fraction or terminates the enclosing statement, since a plain
// one-byte Peek cannot distinguish "42." (integer then end) from "42.5"
// (decimal) without consuming the '.' speculatively.
func (r *Reader) readNumericLiteral() (*Node, Status) {
	ref := r.scratch.open()

	if c := r.peek(); c == '+' || c == '-' {
		r.eatByte()
		r.scratch.pushByte(byte(c))
	}

	digitsBefore := 0
	for {
		c := r.peek()
		if c < 0 && !r.src.AtEOF() {
			r.scratch.popTo(ref)
			return nil, Failure
		}
		if c < '0' || c > '9' {
			break
		}
		r.eatByte()
		r.scratch.pushByte(byte(c))
		digitsBefore++
	}

	isDecimal := false
	if c := r.peek(); c < 0 && !r.src.AtEOF() {
		r.scratch.popTo(ref)
		return nil, Failure
	} else if c == '.' {
		if next := r.src.PeekAt(1); next >= '0' && next <= '9' {
			r.eatByte()
			r.scratch.pushByte('.')
			isDecimal = true
			fracDigits := 0
			for {
				c := r.peek()
				if c < 0 && !r.src.AtEOF() {
					r.scratch.popTo(ref)
					return nil, Failure
				}
				if c < '0' || c > '9' {
					break
				}
				r.eatByte()
				r.scratch.pushByte(byte(c))
				fracDigits++
			}
			if fracDigits == 0 {
				r.scratch.popTo(ref)
				return nil, r.fail(ErrBadSyntax, "decimal literal with empty fraction")
			}
		}
	}

	isDouble := false
	if c := r.peek(); c < 0 && !r.src.AtEOF() {
		r.scratch.popTo(ref)
		return nil, Failure
	} else if c == 'e' || c == 'E' {
		r.eatByte()
		r.scratch.pushByte(byte(c))
		isDouble = true
		isDecimal = false
		if c2 := r.peek(); c2 == '+' || c2 == '-' {
			r.eatByte()
			r.scratch.pushByte(byte(c2))
		}
		expDigits := 0
		for {
			c2 := r.peek()
			if c2 < 0 && !r.src.AtEOF() {
				r.scratch.popTo(ref)
				return nil, Failure
			}
			if c2 < '0' || c2 > '9' {
				break
			}
			r.eatByte()
			r.scratch.pushByte(byte(c2))
			expDigits++
		}
		if expDigits == 0 {
			r.scratch.popTo(ref)
			return nil, r.fail(ErrBadSyntax, "double literal with no digits in exponent")
		}
	}

	if digitsBefore == 0 && !isDecimal {
		r.scratch.popTo(ref)
		return nil, r.fail(ErrBadSyntax, "sign with no digits in numeric literal")
	}

	s := r.scratch.string(ref)
	r.scratch.popTo(ref)

	var datatypeIRI string
	switch {
	case isDouble:
		datatypeIRI = XSDDouble
	case isDecimal:
		datatypeIRI = XSDDecimal
	default:
		datatypeIRI = XSDInteger
	}
	return NewTypedLiteral(s, NewURI(datatypeIRI)), Success
}
