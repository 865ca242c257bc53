// Package fetch tracks the lifecycle of a view's remote request:
// idle, loading, then success or error.
//
// A Tracker owns at most one in-flight request. Starting another cancels the
// previous one, and a completion that arrives from a superseded request is
// dropped, so the last request started always wins. Close detaches the view:
// in-flight work is cancelled and later completions are ignored.
package fetch

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrStale is returned by Do when a newer request replaced this one
	// before it finished.
	ErrStale = errors.New("fetch: superseded by a newer request")
	// ErrClosed is returned by Do, Go and Outcome after Close.
	ErrClosed = errors.New("fetch: tracker closed")
)

type State int

const (
	Idle State = iota
	Loading
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the tracker's view of the latest request. Data is kept from the
// last successful request while a new one is loading or after it failed.
type Result[T any] struct {
	State State
	Data  T
	Err   error
	Gen   uint64
}

// Func performs the request. It must honor ctx cancellation.
type Func[T any] func(ctx context.Context) (T, error)

type Tracker[T any] struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	closed bool
	res    Result[T]
}

func New[T any]() *Tracker[T] {
	return &Tracker[T]{}
}

func (t *Tracker[T]) begin(ctx context.Context) (context.Context, uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, 0, ErrClosed
	}
	if t.cancel != nil {
		t.cancel()
	}

	t.gen++
	rctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.res.State = Loading
	t.res.Err = nil
	t.res.Gen = t.gen

	return rctx, t.gen, nil
}

// complete records the outcome of request gen and reports whether it was
// still current.
func (t *Tracker[T]) complete(gen uint64, v T, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || gen != t.gen {
		return false
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}

	if err != nil {
		t.res.State = Failed
		t.res.Err = err
		return true
	}
	t.res.State = Success
	t.res.Data = v
	return true
}

// Do runs fn synchronously as the current request. If a newer request
// started meanwhile (or the tracker was closed) the outcome is discarded and
// ErrStale (or ErrClosed) is returned instead.
func (t *Tracker[T]) Do(ctx context.Context, fn Func[T]) (T, error) {
	var zero T

	rctx, gen, err := t.begin(ctx)
	if err != nil {
		return zero, err
	}

	v, err := fn(rctx)
	if !t.complete(gen, v, err) {
		if t.isClosed() {
			return zero, ErrClosed
		}
		return zero, ErrStale
	}
	return v, err
}

// Go starts fn in the background as the current request. done is closed
// once fn returned and its outcome was recorded or dropped; Outcome(gen)
// then reports it.
func (t *Tracker[T]) Go(ctx context.Context, fn Func[T]) (gen uint64, done <-chan struct{}, err error) {
	rctx, gen, err := t.begin(ctx)
	if err != nil {
		return 0, nil, err
	}

	ch := make(chan struct{})
	go func() {
		defer close(ch)
		v, err := fn(rctx)
		t.complete(gen, v, err)
	}()
	return gen, ch, nil
}

// Outcome returns what request gen produced. It returns ErrClosed after
// Close and ErrStale once a newer request has started.
func (t *Tracker[T]) Outcome(gen uint64) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	switch {
	case t.closed:
		return zero, ErrClosed
	case gen != t.gen:
		return zero, ErrStale
	case t.res.State == Failed:
		return zero, t.res.Err
	}
	return t.res.Data, nil
}

// Snapshot returns the current result.
func (t *Tracker[T]) Snapshot() Result[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.res
}

// Close cancels any in-flight request. The tracker keeps its last result
// but accepts no new requests. Close is idempotent.
func (t *Tracker[T]) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

func (t *Tracker[T]) isClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}
