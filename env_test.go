package rdfio

import "testing"

func TestEnvironmentExpandCURIE(t *testing.T) {
	env := NewEnvironment()
	if st := env.SetPrefix(NewString("foaf"), NewURI("http://xmlns.com/foaf/0.1/")); st != Success {
		t.Fatalf("SetPrefix: %s", st)
	}
	got := env.Expand(NewCURIE("foaf:name"))
	if got == nil || got.String() != "http://xmlns.com/foaf/0.1/name" {
		t.Errorf("Expand(foaf:name) = %v, want http://xmlns.com/foaf/0.1/name", got)
	}
	if env.Expand(NewCURIE("unknown:x")) != nil {
		t.Errorf("Expand of an unregistered prefix should return nil")
	}
}

func TestEnvironmentQualifyLongestPrefix(t *testing.T) {
	env := NewEnvironment()
	env.SetPrefix(NewString("ex"), NewURI("http://example.com/"))
	env.SetPrefix(NewString("exFoo"), NewURI("http://example.com/foo/"))
	got := env.Qualify(NewURI("http://example.com/foo/bar"))
	if got == nil || got.String() != "exFoo:bar" {
		t.Errorf("Qualify = %v, want exFoo:bar (longest matching prefix)", got)
	}
}

func TestEnvironmentPreservesInsertionOrder(t *testing.T) {
	env := NewEnvironment()
	env.SetPrefix(NewString("b"), NewURI("http://example.com/b/"))
	env.SetPrefix(NewString("a"), NewURI("http://example.com/a/"))
	env.SetPrefix(NewString("b"), NewURI("http://example.com/b2/")) // overwrite, keeps position

	var got []string
	sink := &Sink{PrefixFunc: func(name, uri *Node) Status {
		got = append(got, name.String()+"="+uri.String())
		return Success
	}}
	env.WritePrefixes(sink)

	want := []string{"b=http://example.com/b2/", "a=http://example.com/a/"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEnvironmentsEqual(t *testing.T) {
	a := NewEnvironment()
	a.SetBaseURI(NewURI("http://example.com/"))
	a.SetPrefix(NewString("x"), NewURI("http://example.com/x/"))

	b := NewEnvironment()
	b.SetPrefix(NewString("x"), NewURI("http://example.com/x/"))
	b.SetBaseURI(NewURI("http://example.com/"))

	if !EnvironmentsEqual(a, b) {
		t.Errorf("environments built in a different order should still compare equal")
	}
	if EnvironmentsEqual(a, nil) || EnvironmentsEqual(nil, b) {
		t.Errorf("one nil, one non-nil should compare unequal")
	}
	if !EnvironmentsEqual(nil, nil) {
		t.Errorf("both nil should compare equal")
	}
}
