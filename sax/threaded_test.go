package sax

import (
	"context"
	"testing"

	"github.com/dhamidi/orcus-go/strview"
	"github.com/dhamidi/orcus-go/xmlns"
)

func TestThreadedParserReplaysSameEventsAsSingleThreaded(t *testing.T) {
	src := `<root id="1"><child>hello</child><child>world</child></root>`

	repo := xmlns.NewRepository()
	single := &recordingHandler{}
	if err := Parse([]byte(src), single, repo.CreateContext(), newTestTokens()); err != nil {
		t.Fatalf("single-threaded parse failed: %v", err)
	}

	tp := NewThreadedParser([]byte(src), repo.CreateContext(), newTestTokens(), 1, 4)
	tp.Start(context.Background())

	threaded := &recordingHandler{}
	for {
		batch, ok := tp.NextBatch()
		if !ok {
			break
		}
		for _, tok := range batch {
			tok.Replay(threaded)
		}
	}
	if err := tp.Err(); err != nil {
		t.Fatalf("threaded parse failed: %v", err)
	}

	if len(threaded.events) != len(single.events) {
		t.Fatalf("got %d threaded events, want %d\nthreaded=%v\nsingle=%v",
			len(threaded.events), len(single.events), threaded.events, single.events)
	}
	for i := range single.events {
		if threaded.events[i] != single.events[i] {
			t.Errorf("event %d: got %q, want %q", i, threaded.events[i], single.events[i])
		}
	}
}

func TestThreadedParserMergesPoolIntoTargetOnce(t *testing.T) {
	src := `<root><child>hello</child></root>`
	repo := xmlns.NewRepository()

	tp := NewThreadedParser([]byte(src), repo.CreateContext(), newTestTokens(), 1, 8)
	tp.Start(context.Background())
	for {
		if _, ok := tp.NextBatch(); !ok {
			break
		}
	}
	if err := tp.Err(); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	target := strview.NewPool()
	tp.MergeInto(target)
	sizeAfterFirst := target.Len()
	tp.MergeInto(target) // must be a no-op the second time
	if target.Len() != sizeAfterFirst {
		t.Errorf("MergeInto must be idempotent: size changed from %d to %d", sizeAfterFirst, target.Len())
	}
}

func TestThreadedParserSurfacesParseErrors(t *testing.T) {
	repo := xmlns.NewRepository()
	tp := NewThreadedParser([]byte(`<root><child></root></child>`), repo.CreateContext(), newTestTokens(), 1, 4)
	tp.Start(context.Background())

	for {
		if _, ok := tp.NextBatch(); !ok {
			break
		}
	}
	if tp.Err() == nil {
		t.Fatal("expected the threaded parser to surface the malformed-document error")
	}
}
