package rdfio

import "strings"

// Environment holds an optional base IRI plus an ordered prefix table.
// Insertion order is preserved (for deterministic prefix emission) using a
// parallel key slice alongside the map, since a plain map wouldn't.
type Environment struct {
	base   *Node
	names  []string
	lookup map[string]*Node
}

// NewEnvironment returns an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{lookup: make(map[string]*Node)}
}

// Base returns the environment's base IRI, or nil if unset.
func (e *Environment) Base() *Node { return e.base }

// SetBaseURI fails if node is nil, empty, or not an IRI.
func (e *Environment) SetBaseURI(node *Node) Status {
	if node == nil || node.Len() == 0 || node.Kind() != KindIRI {
		return ErrBadArg
	}
	e.base = node
	return Success
}

// SetPrefix upserts a prefix->IRI binding; fails if either argument is nil
// or uri is not an IRI. Insertion order is preserved for new prefixes;
// re-setting an existing prefix keeps its original position (an overwrite,
// not a re-insertion).
func (e *Environment) SetPrefix(name *Node, uri *Node) Status {
	if name == nil || uri == nil || uri.Kind() != KindIRI {
		return ErrBadArg
	}
	key := name.String()
	if _, exists := e.lookup[key]; !exists {
		e.names = append(e.names, key)
	}
	e.lookup[key] = uri
	return Success
}

// Expand maps a CURIE or IRI node to an absolute IRI node. CURIEs are
// split on their first ':' and looked up in the prefix table; an unknown
// prefix returns nil. IRIs are resolved against Base (or returned as-is if
// already absolute and no base is set). Any other kind returns nil.
func (e *Environment) Expand(n *Node) *Node {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case KindCURIE:
		prefix, local, ok := strings.Cut(n.String(), ":")
		if !ok {
			return nil
		}
		base, found := e.lookup[prefix]
		if !found {
			return nil
		}
		return NewURI(base.String() + local)
	case KindIRI:
		if IsURI(n.String()) {
			if e.base == nil {
				return n
			}
			resolved, err := Resolve(n.String(), e.base.String())
			if err != nil {
				return nil
			}
			return NewURI(resolved)
		}
		if e.base == nil {
			return nil
		}
		resolved, err := Resolve(n.String(), e.base.String())
		if err != nil {
			return nil
		}
		return NewURI(resolved)
	default:
		return nil
	}
}

// Qualify scans the prefix table for the longest prefix IRI that is a
// prefix of iri's string, and returns a CURIE node "prefix:suffix". If no
// registered prefix matches, it returns nil.
func (e *Environment) Qualify(iri *Node) *Node {
	if iri == nil || iri.Kind() != KindIRI {
		return nil
	}
	s := iri.String()
	var bestPrefix, bestIRI string
	for _, name := range e.names {
		ns := e.lookup[name]
		if strings.HasPrefix(s, ns.String()) && len(ns.String()) > len(bestIRI) {
			bestPrefix, bestIRI = name, ns.String()
		}
	}
	if bestIRI == "" {
		return nil
	}
	return NewCURIE(bestPrefix + ":" + s[len(bestIRI):])
}

// EnvironmentsEqual reports structural equality: both nil is true, one nil
// is false, otherwise base IRIs equal and prefix tables equal as multisets
// of pairs (order-independent).
func EnvironmentsEqual(a, b *Environment) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !nodeEquals(a.base, b.base) {
		return false
	}
	if len(a.lookup) != len(b.lookup) {
		return false
	}
	for k, v := range a.lookup {
		ov, ok := b.lookup[k]
		if !ok || !v.Equals(ov) {
			return false
		}
	}
	return true
}

// WritePrefixes invokes sink's PrefixFunc for every entry, in insertion
// order.
func (e *Environment) WritePrefixes(sink *Sink) Status {
	if sink == nil || sink.PrefixFunc == nil {
		return Success
	}
	for _, name := range e.names {
		if st := sink.PrefixFunc(NewString(name), e.lookup[name]); st != Success {
			return st
		}
	}
	return Success
}
