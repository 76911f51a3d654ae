package jsonstream

import (
	"context"
	"testing"

	"github.com/dhamidi/orcus-go/strview"
)

func TestThreadedParserReplaysSameEventsAsSingleThreaded(t *testing.T) {
	src := `{"a": [1, 2, "three"], "b": null}`

	single := &recordingHandler{}
	if err := Parse([]byte(src), single); err != nil {
		t.Fatalf("single-threaded parse failed: %v", err)
	}

	tp := NewThreadedParser([]byte(src), 1, 4)
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
		t.Fatalf("got %d threaded events %v, want %d %v", len(threaded.events), threaded.events, len(single.events), single.events)
	}
	for i := range single.events {
		if threaded.events[i] != single.events[i] {
			t.Errorf("event %d: got %q, want %q", i, threaded.events[i], single.events[i])
		}
	}
}

func TestThreadedParserMergesPoolOnce(t *testing.T) {
	tp := NewThreadedParser([]byte(`{"k": "v"}`), 1, 8)
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
	n := target.Len()
	tp.MergeInto(target)
	if target.Len() != n {
		t.Errorf("MergeInto must be idempotent: %d vs %d", n, target.Len())
	}
}
