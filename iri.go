package rdfio

import (
	"fmt"
	"strings"
)

// ParsedIRI is the five-component split of RFC 3986 §3, named after
// original_source's SerdURIView. Query includes the leading '?' stripped;
// Fragment includes the leading '#' stripped. HasAuthority distinguishes
// "//" with an empty authority from no "//" at all (e.g. "file:///x" vs
// "mailto:x").
type ParsedIRI struct {
	Scheme       string
	HasAuthority bool
	Authority    string
	Path         string
	HasQuery     bool
	Query        string
	HasFragment  bool
	Fragment     string
}

// ParseIRI splits s into its five RFC 3986 §3 components by prefix
// matching, without validating character classes beyond delimiter scanning
// — IRIs carry many non-ASCII characters that a byte-oriented scanner need
// not reject.
func ParseIRI(s string) (ParsedIRI, error) {
	var p ParsedIRI
	rest := s

	if i := strings.IndexByte(rest, ':'); i > 0 && isSchemeHead(rest[0]) && isValidScheme(rest[:i]) {
		p.Scheme = rest[:i]
		rest = rest[i+1:]
	}

	if strings.HasPrefix(rest, "//") {
		p.HasAuthority = true
		rest = rest[2:]
		end := strings.IndexAny(rest, "/?#")
		if end < 0 {
			p.Authority = rest
			rest = ""
		} else {
			p.Authority = rest[:end]
			rest = rest[end:]
		}
	}

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		p.HasFragment = true
		p.Fragment = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		p.HasQuery = true
		p.Query = rest[i+1:]
		rest = rest[:i]
	}
	p.Path = rest
	return p, nil
}

func isSchemeHead(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isValidScheme(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '+' || c == '-' || c == '.':
		default:
			return false
		}
	}
	return true
}

// IsURI reports whether s has a scheme followed by ':'.
func IsURI(s string) bool {
	p, _ := ParseIRI(s)
	return p.Scheme != ""
}

// IsAbsolute is an alias for IsURI kept for callers that find the RFC 3986
// "absolute" terminology clearer at the call site.
func IsAbsolute(s string) bool { return IsURI(s) }

// Resolve implements RFC 3986 §5.3: resolve ref against base. If ref has a
// scheme, it is returned unchanged (scheme-relative references are not
// further merged, matching the RFC). Otherwise scheme/authority/path/query
// are inherited from base per the standard merge algorithm, and
// remove-dot-segments is applied to the resulting path.
func Resolve(ref, base string) (string, error) {
	r, err := ParseIRI(ref)
	if err != nil {
		return "", err
	}
	if r.Scheme != "" {
		return buildIRI(r), nil
	}

	b, err := ParseIRI(base)
	if err != nil {
		return "", err
	}
	if b.Scheme == "" {
		return "", fmt.Errorf("base %q is not an absolute IRI", base)
	}

	var t ParsedIRI
	t.Scheme = b.Scheme

	switch {
	case r.HasAuthority:
		t.HasAuthority = true
		t.Authority = r.Authority
		t.Path = removeDotSegments(r.Path)
		t.HasQuery, t.Query = r.HasQuery, r.Query
	case r.Path == "":
		t.HasAuthority, t.Authority = b.HasAuthority, b.Authority
		t.Path = b.Path
		if r.HasQuery {
			t.HasQuery, t.Query = true, r.Query
		} else {
			t.HasQuery, t.Query = b.HasQuery, b.Query
		}
	case strings.HasPrefix(r.Path, "/"):
		t.HasAuthority, t.Authority = b.HasAuthority, b.Authority
		t.Path = removeDotSegments(r.Path)
		t.HasQuery, t.Query = r.HasQuery, r.Query
	default:
		t.HasAuthority, t.Authority = b.HasAuthority, b.Authority
		t.Path = removeDotSegments(mergePaths(b, r.Path))
		t.HasQuery, t.Query = r.HasQuery, r.Query
	}
	t.HasFragment, t.Fragment = r.HasFragment, r.Fragment

	return buildIRI(t), nil
}

// mergePaths implements RFC 3986 §5.3 step "merge".
func mergePaths(base ParsedIRI, refPath string) string {
	if base.HasAuthority && base.Path == "" {
		return "/" + refPath
	}
	if i := strings.LastIndexByte(base.Path, '/'); i >= 0 {
		return base.Path[:i+1] + refPath
	}
	return refPath
}

// removeDotSegments implements RFC 3986 §5.2.4.
func removeDotSegments(path string) string {
	if path == "" {
		return ""
	}
	var out []string
	absolute := strings.HasPrefix(path, "/")
	trailingSlash := strings.HasSuffix(path, "/")

	segs := strings.Split(path, "/")
	for _, seg := range segs {
		switch seg {
		case ".":
			// drop
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, seg)
		}
	}
	// strings.Split on a leading '/' produces a leading "" element which
	// got appended above as a spurious segment; strip it and re-add the
	// absolute marker explicitly.
	if absolute && len(out) > 0 && out[0] == "" {
		out = out[1:]
	}

	result := strings.Join(out, "/")
	if absolute {
		result = "/" + result
	}
	if trailingSlash && !strings.HasSuffix(result, "/") {
		result += "/"
	}
	return result
}

func buildIRI(p ParsedIRI) string {
	var b strings.Builder
	if p.Scheme != "" {
		b.WriteString(p.Scheme)
		b.WriteByte(':')
	}
	if p.HasAuthority {
		b.WriteString("//")
		b.WriteString(p.Authority)
	}
	b.WriteString(p.Path)
	if p.HasQuery {
		b.WriteByte('?')
		b.WriteString(p.Query)
	}
	if p.HasFragment {
		b.WriteByte('#')
		b.WriteString(p.Fragment)
	}
	return b.String()
}

// Relative relativizes abs against base and an optional root: it returns
// abs verbatim when its scheme or authority differs from base's,
// or when root is supplied and abs does not lie under root's path prefix
// (root acts as an opaque floor below which relativization is forbidden).
// Otherwise it strips the common path ancestor and emits ".." segments for
// each remaining path component of base beyond the common ancestor.
func Relative(abs, base, root string) string {
	a, errA := ParseIRI(abs)
	b, errB := ParseIRI(base)
	if errA != nil || errB != nil {
		return abs
	}
	if a.Scheme != b.Scheme || a.Authority != b.Authority {
		return abs
	}
	if root != "" {
		r, err := ParseIRI(root)
		if err != nil {
			return abs
		}
		if a.Scheme != r.Scheme || a.Authority != r.Authority || !strings.HasPrefix(a.Path, r.Path) {
			return abs
		}
	}

	aSegs := strings.Split(a.Path, "/")
	bSegs := strings.Split(b.Path, "/")
	// The last element of each is the "file" component (empty for a
	// directory path ending in '/'); only directory components participate
	// in the common-ancestor walk.
	aDir, bDir := aSegs, bSegs
	if len(bDir) > 0 {
		bDir = bDir[:len(bDir)-1]
	}

	common := 0
	for common < len(bDir) && common < len(aDir)-1 && aDir[common] == bDir[common] {
		common++
	}

	var out strings.Builder
	for i := common; i < len(bDir); i++ {
		out.WriteString("../")
	}
	out.WriteString(strings.Join(aSegs[common:], "/"))

	rel := out.String()
	if rel == "" {
		rel = "./"
	}
	if a.HasQuery {
		rel += "?" + a.Query
	}
	if a.HasFragment {
		rel += "#" + a.Fragment
	}
	return rel
}
