package xmlns

import "testing"

func TestPushAndGetAcrossContexts(t *testing.T) {
	repo := NewRepository()
	cxt1 := repo.CreateContext()
	cxt2 := repo.CreateContext()

	ns1 := "http://some.xmlns/"
	ns2 := "http://other.xmlns/"

	test1 := cxt1.Push("", ns1)
	if cxt1.Get("") != test1 {
		t.Fatalf("cxt1 default namespace mismatch")
	}
	test2 := cxt1.Push("myns", ns2)
	if cxt1.Get("myns") != test2 {
		t.Fatalf("cxt1 myns mismatch")
	}
	if test1 == test2 {
		t.Fatalf("distinct URIs must have distinct ids")
	}

	other1 := cxt2.Push("", ns2)
	other2 := cxt2.Push("myns", ns1)

	if cxt1.Get("") != cxt2.Get("myns") {
		t.Errorf("ns1's id should be shared across contexts")
	}
	if cxt1.Get("myns") != cxt2.Get("") {
		t.Errorf("ns2's id should be shared across contexts")
	}
	_ = other1
	_ = other2
}

func TestGetAllNamespaces(t *testing.T) {
	repo := NewRepository()
	cxt := repo.CreateContext()

	a := cxt.Push("a", "foo")
	b := cxt.Push("b", "baa")
	c := cxt.Push("c", "hmm")

	all := cxt.GetAllNamespaces()
	if len(all) != 3 {
		t.Fatalf("got %d namespaces, want 3", len(all))
	}
	if all[0] != a || all[1] != b || all[2] != c {
		t.Errorf("namespaces not in insertion order: %v", all)
	}
}

func TestPredefinedNamespacesStableAcrossRepositories(t *testing.T) {
	list := []string{"test:name:1", "test:name:2", "test:name:3"}

	a := NewRepository()
	a.AddPredefined(list)

	b := NewRepository()
	b.AddPredefined(list)

	for i, uri := range list {
		idA := a.GetIdentifier(i)
		idB := b.GetIdentifier(i)
		if a.GetIndex(idA) != i {
			t.Errorf("repo A: index of %q = %d, want %d", uri, a.GetIndex(idA), i)
		}
		if b.GetIndex(idB) != i {
			t.Errorf("repo B: index of %q = %d, want %d", uri, b.GetIndex(idB), i)
		}
		if a.GetIndex(idA) != b.GetIndex(idB) {
			t.Errorf("indices for %q disagree between repositories: %d vs %d", uri, a.GetIndex(idA), b.GetIndex(idB))
		}
	}
}

func TestPopRestoresOuterBinding(t *testing.T) {
	repo := NewRepository()
	cxt := repo.CreateContext()

	outer := cxt.Push("p", "outer-uri")
	inner := cxt.Push("p", "inner-uri")
	if cxt.Get("p") != inner {
		t.Fatalf("expected innermost binding")
	}
	cxt.Pop("p")
	if cxt.Get("p") != outer {
		t.Errorf("expected outer binding restored after pop")
	}
}

func TestUnknownPrefix(t *testing.T) {
	repo := NewRepository()
	cxt := repo.CreateContext()
	if cxt.Get("never-pushed") != Unknown {
		t.Errorf("expected Unknown for an unbound prefix")
	}
}
