package sax

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/dhamidi/orcus-go/strview"
	"github.com/dhamidi/orcus-go/xmlns"
)

// ThreadedParser runs a single-threaded Parser on a producer goroutine
// and exposes batches of Token to a consumer, per spec.md §4.5's
// threaded variant. It is grounded on the producer-goroutine-plus-
// stop-channel shape of the teacher's codebase.FileWatcher, generalized
// from an unbounded work queue to a semaphore-gated bounded one so that
// min_token_size/max_token_size act as real backpressure watermarks
// instead of an unbounded channel.
type ThreadedParser struct {
	data   []byte
	nsCxt  *xmlns.Context
	tokens TokenTable

	minTokenSize int
	maxTokenSize int

	batches chan []Token
	errCh   chan error

	sem *semaphore.Weighted

	mu        mutex
	mergeOnce sync.Once
	pool      *strview.Pool
}

// NewThreadedParser constructs a threaded parser. minTokenSize is the
// batch size the producer accumulates before publishing; maxTokenSize
// is the total in-flight token budget the semaphore enforces across
// all unconsumed batches.
func NewThreadedParser(data []byte, nsCxt *xmlns.Context, tokens TokenTable, minTokenSize, maxTokenSize int) *ThreadedParser {
	if minTokenSize <= 0 {
		minTokenSize = 1
	}
	if maxTokenSize < minTokenSize {
		maxTokenSize = minTokenSize
	}
	return &ThreadedParser{
		data:         data,
		nsCxt:        nsCxt,
		tokens:       tokens,
		minTokenSize: minTokenSize,
		maxTokenSize: maxTokenSize,
		batches:      make(chan []Token),
		errCh:        make(chan error, 1),
		sem:          semaphore.NewWeighted(int64(maxTokenSize)),
		pool:         strview.NewPool(),
	}
}

// Start launches the producer goroutine. It must be called exactly
// once before NextBatch.
func (t *ThreadedParser) Start(ctx context.Context) {
	go t.run(ctx)
}

func (t *ThreadedParser) run(ctx context.Context) {
	defer close(t.batches)

	collector := &threadedCollector{parser: t, ctx: ctx}
	p := NewParser()
	if err := p.Parse(t.data, collector, t.nsCxt, t.tokens); err != nil {
		collector.flush()
		t.errCh <- err
		return
	}
	collector.flush()
	close(t.errCh)
}

// NextBatch returns the next contiguous slice of tokens in source
// order, or ok=false once the producer has finished (successfully or
// with an error — callers should check Err after a false return).
func (t *ThreadedParser) NextBatch() ([]Token, bool) {
	batch, ok := <-t.batches
	return batch, ok
}

// Err returns the terminal parse error, if the stream ended because of
// one rather than reaching end-of-document cleanly. Call only after
// NextBatch has returned ok=false.
func (t *ThreadedParser) Err() error {
	select {
	case err := <-t.errCh:
		return err
	default:
		return nil
	}
}

// Pool returns the string pool the producer interned view data into.
// MergeInto should be preferred by consumers wiring this parser's
// output into a larger session pool.
func (t *ThreadedParser) Pool() *strview.Pool { return t.pool }

// MergeInto folds this parser's pool into target exactly once, guarded
// by sync.Once; subsequent calls are no-ops. Call after draining
// NextBatch to completion.
func (t *ThreadedParser) MergeInto(target *strview.Pool) {
	t.mergeOnce.Do(func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		target.Merge(t.pool)
	})
}

// threadedCollector is the Handler the producer goroutine drives; it
// accumulates tokens, interning view-backed text/attribute values into
// the parser's pool, and publishes a batch once minTokenSize tokens
// have accumulated, acquiring semaphore weight for the batch so the
// consumer's drain rate throttles production (the max_token_size
// watermark).
type threadedCollector struct {
	parser *ThreadedParser
	ctx    context.Context
	batch  []Token
}

func (c *threadedCollector) Declaration(decl Declaration) {
	c.append(Token{Kind: TokenDeclaration, Decl: decl})
}

func (c *threadedCollector) StartElement(ns xmlns.ID, token int, rawName string, attrs []Attr) {
	owned := make([]Attr, len(attrs))
	for i, a := range attrs {
		owned[i] = a
		owned[i].Value = []byte(c.parser.pool.InternString(string(a.Value)).String())
		owned[i].Transient = false
	}
	c.append(Token{Kind: TokenStartElement, NS: ns, Elem: token, RawName: rawName, Attrs: owned})
}

func (c *threadedCollector) EndElement(ns xmlns.ID, token int, rawName string) {
	c.append(Token{Kind: TokenEndElement, NS: ns, Elem: token, RawName: rawName})
}

func (c *threadedCollector) Characters(text []byte, transient bool) {
	interned := c.parser.pool.InternString(string(text))
	c.append(Token{Kind: TokenCharacters, Text: []byte(interned.String()), Transient: false})
}

func (c *threadedCollector) append(tok Token) {
	c.batch = append(c.batch, tok)
	if len(c.batch) >= c.parser.minTokenSize {
		c.publish()
	}
}

func (c *threadedCollector) flush() {
	if len(c.batch) > 0 {
		c.publish()
	}
}

func (c *threadedCollector) publish() {
	weight := int64(len(c.batch))
	if weight > int64(c.parser.maxTokenSize) {
		weight = int64(c.parser.maxTokenSize)
	}
	if err := c.parser.sem.Acquire(c.ctx, weight); err != nil {
		c.batch = c.batch[:0]
		return
	}
	batch := c.batch
	c.batch = nil
	c.parser.batches <- batch
	c.parser.sem.Release(weight)
}
