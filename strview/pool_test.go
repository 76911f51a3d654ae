package strview

import "testing"

func TestPoolInternStability(t *testing.T) {
	p := NewPool()

	v1, inserted1 := p.Intern(FromString("abc"))
	if !inserted1 {
		t.Fatalf("first intern of \"abc\" should insert")
	}

	v2, inserted2 := p.Intern(FromString("abc"))
	if inserted2 {
		t.Errorf("second intern of \"abc\" should not insert")
	}
	if v1.data2Ptr() != v2.data2Ptr() {
		t.Errorf("v1 and v2 should share the same backing pointer")
	}
	if !v1.Equal(v2) {
		t.Errorf("v1 and v2 should be content-equal")
	}

	buf := []byte{'a', 'b', 'c'}
	v3, inserted3 := p.Intern(Of(buf))
	if inserted3 {
		t.Errorf("third intern via a distinct buffer should not insert")
	}
	if v3.data2Ptr() != v1.data2Ptr() {
		t.Errorf("v3 should point at the same interned storage as v1")
	}
}

func (v View) data2Ptr() uintptr { return v.Identity() }

func TestPoolMergeKeepsViewsValid(t *testing.T) {
	producer := NewPool()
	v, _ := producer.Intern(FromString("hello world"))

	consumer := NewPool()
	consumer.Intern(FromString("pre-existing"))
	consumer.Merge(producer)

	if got := v.String(); got != "hello world" {
		t.Errorf("view content corrupted after merge: got %q", got)
	}

	v2, inserted := consumer.Intern(FromString("hello world"))
	if inserted {
		t.Errorf("merged content should already be present")
	}
	if !v2.Equal(v) {
		t.Errorf("merged intern should be content-equal to original view")
	}
}

func TestHashAgreesWithEquality(t *testing.T) {
	a := FromString("orcus")
	b := FromString("orcus")
	c := FromString("orcum")

	if a.Hash() != b.Hash() {
		t.Errorf("equal content must hash equal")
	}
	if a.Hash() == c.Hash() {
		t.Logf("hash collision between distinct strings (not itself a bug): %d", a.Hash())
	}
	if !a.Equal(b) {
		t.Errorf("expected equal content")
	}
}

func TestTrim(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  abc  ", "abc"},
		{"\t\r\nabc\n", "abc"},
		{"abc", "abc"},
		{"   ", ""},
		{"", ""},
	}
	for _, c := range cases {
		got := FromString(c.in).Trim().String()
		if got != c.want {
			t.Errorf("Trim(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
