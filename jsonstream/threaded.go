package jsonstream

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/dhamidi/orcus-go/strview"
)

// TokenKind identifies which Handler event a Token carries.
type TokenKind int

const (
	TokenBeginParse TokenKind = iota
	TokenEndParse
	TokenBeginObject
	TokenEndObject
	TokenObjectKey
	TokenBeginArray
	TokenEndArray
	TokenBooleanTrue
	TokenBooleanFalse
	TokenNull
	TokenString
	TokenNumber
)

// Token is one queued JSON parse event, mirroring sax.Token but without
// a namespace id (JSON has none) — kept as its own type per DESIGN.md:
// the payload shapes differ enough that a shared generic would leak
// format-specific fields into both packages.
type Token struct {
	Kind TokenKind

	Text      []byte
	Transient bool
	Number    float64
}

// Replay invokes the matching Handler method for this token.
func (t Token) Replay(h Handler) {
	switch t.Kind {
	case TokenBeginParse:
		h.BeginParse()
	case TokenEndParse:
		h.EndParse()
	case TokenBeginObject:
		h.BeginObject()
	case TokenEndObject:
		h.EndObject()
	case TokenObjectKey:
		h.ObjectKey(t.Text, t.Transient)
	case TokenBeginArray:
		h.BeginArray()
	case TokenEndArray:
		h.EndArray()
	case TokenBooleanTrue:
		h.BooleanTrue()
	case TokenBooleanFalse:
		h.BooleanFalse()
	case TokenNull:
		h.Null()
	case TokenString:
		h.String(t.Text, t.Transient)
	case TokenNumber:
		h.Number(t.Number)
	}
}

// ThreadedParser runs a Parser on a producer goroutine and exposes
// batches of Token to a consumer, mirroring sax.ThreadedParser's
// min/max token-size backpressure gate and pool-merge-once semantics.
type ThreadedParser struct {
	data []byte

	minTokenSize int
	maxTokenSize int

	batches chan []Token
	errCh   chan error

	sem *semaphore.Weighted

	mu        sync.Mutex
	mergeOnce sync.Once
	pool      *strview.Pool
}

// NewThreadedParser constructs a threaded JSON parser with the given
// batching watermarks.
func NewThreadedParser(data []byte, minTokenSize, maxTokenSize int) *ThreadedParser {
	if minTokenSize <= 0 {
		minTokenSize = 1
	}
	if maxTokenSize < minTokenSize {
		maxTokenSize = minTokenSize
	}
	return &ThreadedParser{
		data:         data,
		minTokenSize: minTokenSize,
		maxTokenSize: maxTokenSize,
		batches:      make(chan []Token),
		errCh:        make(chan error, 1),
		sem:          semaphore.NewWeighted(int64(maxTokenSize)),
		pool:         strview.NewPool(),
	}
}

// Start launches the producer goroutine.
func (t *ThreadedParser) Start(ctx context.Context) {
	go t.run(ctx)
}

func (t *ThreadedParser) run(ctx context.Context) {
	defer close(t.batches)

	collector := &threadedCollector{parser: t, ctx: ctx}
	p := NewParser()
	if err := p.Parse(t.data, collector); err != nil {
		collector.flush()
		t.errCh <- err
		return
	}
	collector.flush()
	close(t.errCh)
}

// NextBatch returns the next contiguous slice of tokens, or ok=false
// once the producer has finished.
func (t *ThreadedParser) NextBatch() ([]Token, bool) {
	batch, ok := <-t.batches
	return batch, ok
}

// Err returns the terminal parse error, if any, after NextBatch returns
// ok=false.
func (t *ThreadedParser) Err() error {
	select {
	case err := <-t.errCh:
		return err
	default:
		return nil
	}
}

// MergeInto folds this parser's interned-string pool into target
// exactly once.
func (t *ThreadedParser) MergeInto(target *strview.Pool) {
	t.mergeOnce.Do(func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		target.Merge(t.pool)
	})
}

type threadedCollector struct {
	parser *ThreadedParser
	ctx    context.Context
	batch  []Token
}

func (c *threadedCollector) BeginParse() { c.append(Token{Kind: TokenBeginParse}) }
func (c *threadedCollector) EndParse()   { c.append(Token{Kind: TokenEndParse}) }

func (c *threadedCollector) BeginObject() { c.append(Token{Kind: TokenBeginObject}) }
func (c *threadedCollector) EndObject()   { c.append(Token{Kind: TokenEndObject}) }

func (c *threadedCollector) ObjectKey(text []byte, transient bool) {
	interned := c.parser.pool.InternString(string(text))
	c.append(Token{Kind: TokenObjectKey, Text: []byte(interned.String())})
}

func (c *threadedCollector) BeginArray() { c.append(Token{Kind: TokenBeginArray}) }
func (c *threadedCollector) EndArray()   { c.append(Token{Kind: TokenEndArray}) }

func (c *threadedCollector) BooleanTrue()  { c.append(Token{Kind: TokenBooleanTrue}) }
func (c *threadedCollector) BooleanFalse() { c.append(Token{Kind: TokenBooleanFalse}) }
func (c *threadedCollector) Null()         { c.append(Token{Kind: TokenNull}) }

func (c *threadedCollector) String(text []byte, transient bool) {
	interned := c.parser.pool.InternString(string(text))
	c.append(Token{Kind: TokenString, Text: []byte(interned.String())})
}

func (c *threadedCollector) Number(value float64) {
	c.append(Token{Kind: TokenNumber, Number: value})
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
