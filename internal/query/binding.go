package query

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/five82/liftoff/internal/graphql"
)

// ErrNotStarted is returned by Wait when nothing has been dispatched yet.
var ErrNotStarted = errors.New("query: no request dispatched")

// Decoder turns the data member of a response into T.
type Decoder[T any] func(data []byte) (T, error)

// State is the lifecycle of one binding. Before the first dispatch it is
// {Loading: true}. Once settled exactly one of HasData or Err is set.
type State[T any] struct {
	Key     string
	Loading bool
	Data    T
	HasData bool
	Err     error
}

// Settled reports whether the request for Key has finished.
func (s State[T]) Settled() bool {
	return !s.Loading
}

// Result returns the settled payload or the failure.
func (s State[T]) Result() (T, error) {
	if s.Loading {
		var zero T
		return zero, fmt.Errorf("query %s: still loading", s.Key)
	}
	return s.Data, s.Err
}

// Options configure a Binding.
type Options[T any] struct {
	Name   string
	Logger logrus.FieldLogger
	// KeepLoadingOnError leaves a failed binding in the loading state; the
	// failure only reaches the log.
	KeepLoadingOnError bool
	// OnChange runs after state transitions, outside the binding lock. Calls
	// are serialized and never deliver a state older than one already
	// delivered; a burst of transitions may coalesce into the latest one.
	// OnChange must not call back into the binding.
	OnChange func(State[T])
}

// Binding tracks the state of one query against one QueryFunc. A request is
// dispatched at most once per distinct key; when the key changes the newest
// request wins.
type Binding[T any] struct {
	fetch    graphql.QueryFunc
	decode   Decoder[T]
	log      logrus.FieldLogger
	keepLoad bool
	onChange func(State[T])

	mu      sync.Mutex
	gen     uint64
	seq     uint64 // bumped on every state assignment
	state   State[T]
	started bool
	cancel  context.CancelFunc
	done    chan struct{}

	notifyMu sync.Mutex
	notified uint64 // seq of the last state handed to onChange
}

// New creates an idle binding.
func New[T any](fetch graphql.QueryFunc, decode Decoder[T], opts Options[T]) *Binding[T] {
	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	if opts.Name != "" {
		logger = logger.WithField("binding", opts.Name)
	}
	return &Binding[T]{
		fetch:    fetch,
		decode:   decode,
		log:      logger,
		keepLoad: opts.KeepLoadingOnError,
		onChange: opts.OnChange,
		state:    State[T]{Loading: true},
	}
}

// Use observes req. The first observation of a key dispatches exactly one
// request; later observations of the same key only return the current state.
func (b *Binding[T]) Use(ctx context.Context, req graphql.Request) State[T] {
	key := req.Key()

	b.mu.Lock()
	if b.started && b.state.Key == key {
		st := b.state
		b.mu.Unlock()
		return st
	}

	if b.cancel != nil {
		b.cancel()
	}
	b.gen++
	gen := b.gen
	reqCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	b.started = true
	b.cancel = cancel
	b.done = done
	b.setState(State[T]{Key: key, Loading: true})
	st := b.state
	b.mu.Unlock()

	b.notify()
	go b.run(reqCtx, cancel, gen, req, done)
	return st
}

// State returns the latest state.
func (b *Binding[T]) State() State[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Wait blocks until the current request settles or ctx ends. Under
// KeepLoadingOnError a failed request still releases Wait, with the state
// left loading.
func (b *Binding[T]) Wait(ctx context.Context) (State[T], error) {
	b.mu.Lock()
	done := b.done
	b.mu.Unlock()
	if done == nil {
		return b.State(), ErrNotStarted
	}
	select {
	case <-done:
		return b.State(), nil
	case <-ctx.Done():
		return b.State(), ctx.Err()
	}
}

// Close cancels any in-flight request. The cancelled result is discarded
// rather than reported as a failure, and the next Use of any key dispatches
// again. The binding stays usable.
func (b *Binding[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel == nil {
		return
	}
	b.cancel()
	b.cancel = nil
	b.gen++
	b.started = false
}

func (b *Binding[T]) run(ctx context.Context, cancel context.CancelFunc, gen uint64, req graphql.Request, done chan struct{}) {
	defer close(done)
	defer cancel()

	key := req.Key()
	data, err := b.fetch(ctx, req)
	var payload T
	if err == nil {
		payload, err = b.decode(data)
	}

	b.mu.Lock()
	if gen != b.gen {
		b.mu.Unlock()
		b.log.WithField("operation", req.OperationName).Debug("discarding superseded result")
		return
	}
	if err != nil {
		b.log.WithError(err).WithField("operation", req.OperationName).Error("query failed")
		if b.keepLoad {
			b.mu.Unlock()
			return
		}
		b.setState(State[T]{Key: key, Err: err})
	} else {
		b.setState(State[T]{Key: key, Data: payload, HasData: true})
	}
	b.cancel = nil
	b.mu.Unlock()

	b.notify()
}

// setState must be called with b.mu held.
func (b *Binding[T]) setState(st State[T]) {
	b.state = st
	b.seq++
}

// notify hands the latest state to onChange unless a caller already did.
// Reading the state under notifyMu keeps deliveries in seq order even when
// a settling goroutine and Use race to get here.
func (b *Binding[T]) notify() {
	if b.onChange == nil {
		return
	}
	b.notifyMu.Lock()
	defer b.notifyMu.Unlock()

	b.mu.Lock()
	st, seq := b.state, b.seq
	b.mu.Unlock()
	if seq <= b.notified {
		return
	}
	b.notified = seq
	b.onChange(st)
}
