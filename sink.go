package rdfio

import "fmt"

// Cursor is origin metadata attached to a statement or error: a reference
// to the source-name node plus 1-based line/col.
type Cursor struct {
	Source *Node
	Line   int
	Col    int
}

// String renders "source:line:col" ("?:line:col" with no source, and "?"
// for a nil Cursor), matching the prefix the World's default error printer
// uses.
func (c *Cursor) String() string {
	if c == nil {
		return "?"
	}
	src := "?"
	if c.Source != nil {
		src = c.Source.String()
	}
	return fmt.Sprintf("%s:%d:%d", src, c.Line, c.Col)
}

// StatementFlags annotate a Statement, e.g. whether its subject/object are
// newly-minted anonymous nodes, for writers that need to special-case
// their first mention (opening a "[ ... ]" block, say).
type StatementFlags uint8

const (
	// FlagAnonSubject marks a statement whose subject is an anonymous
	// blank node encountered for the first time (e.g. "[ ... ]" syntax).
	FlagAnonSubject StatementFlags = 1 << iota
	// FlagAnonObject marks a statement whose object is likewise anonymous.
	FlagAnonObject
	// FlagListElement marks a statement synthesized from a Turtle
	// collection ("( ... )").
	FlagListElement
)

// Statement is one RDF triple or quad. Subject must be IRI or BLANK;
// Predicate must be IRI; Graph, if present, must be IRI or BLANK. These
// constraints are enforced by Sink.Emit, not by the type itself.
type Statement struct {
	Subject   *Node
	Predicate *Node
	Object    *Node
	Graph     *Node // nil for a triple; set for a quad
	Cursor    *Cursor
	Flags     StatementFlags
}

// Sink bundles four optional callbacks plus an opaque handle and optional
// environment. It is a capability record (a struct of optional func
// fields) rather than an interface — callers wire up only the callbacks
// they need, and a zero-value Sink silently discards everything.
type Sink struct {
	Handle any
	Env    *Environment

	BaseFunc      func(base *Node) Status
	PrefixFunc    func(name, uri *Node) Status
	StatementFunc func(stmt *Statement) Status
	EndFunc       func(node *Node) Status
}

// Base invokes BaseFunc if set.
func (s *Sink) Base(base *Node) Status {
	if s == nil || s.BaseFunc == nil {
		return Success
	}
	return s.BaseFunc(base)
}

// Prefix invokes PrefixFunc if set.
func (s *Sink) Prefix(name, uri *Node) Status {
	if s == nil || s.PrefixFunc == nil {
		return Success
	}
	return s.PrefixFunc(name, uri)
}

// Emit invokes StatementFunc if set, after validating required nodes: a
// null subject, predicate, or object is ErrBadArg without emitting, and
// the Statement's kind constraints are enforced here.
func (s *Sink) Emit(stmt *Statement) Status {
	if stmt == nil || stmt.Subject == nil || stmt.Predicate == nil || stmt.Object == nil {
		return ErrBadArg
	}
	if stmt.Subject.Kind() != KindIRI && stmt.Subject.Kind() != KindBlank {
		return ErrBadArg
	}
	if stmt.Predicate.Kind() != KindIRI {
		return ErrBadArg
	}
	if stmt.Graph != nil && stmt.Graph.Kind() != KindIRI && stmt.Graph.Kind() != KindBlank {
		return ErrBadArg
	}
	if s == nil || s.StatementFunc == nil {
		return Success
	}
	return s.StatementFunc(stmt)
}

// End invokes EndFunc if set (used by writers to close an anonymous blank
// node's property-list brackets).
func (s *Sink) End(node *Node) Status {
	if s == nil || s.EndFunc == nil {
		return Success
	}
	return s.EndFunc(node)
}

// CountingSink returns a Sink (plus a pointer to the running count) that
// counts emitted statements. Useful for asserting that the statement count
// a stream produces is independent of how it was chunked, without
// building a full Writer.
func CountingSink() (*Sink, *int) {
	count := 0
	sink := &Sink{
		StatementFunc: func(*Statement) Status {
			count++
			return Success
		},
	}
	return sink, &count
}

// CollectingSink returns a Sink that appends every emitted statement to a
// slice, plus a pointer to that slice.
func CollectingSink() (*Sink, *[]*Statement) {
	var stmts []*Statement
	sink := &Sink{
		StatementFunc: func(s *Statement) Status {
			stmts = append(stmts, s)
			return Success
		},
	}
	return sink, &stmts
}
