// Package fetch manages the lifecycle of a keyed asynchronous lookup.
//
// A Controller owns one logical request stream. Every Submit cancels the
// request still in flight for the previous key before a new one is issued,
// so at most one request per stream is live. Results are applied on the
// caller's goroutine (the Bubble Tea update loop) and a result whose ticket
// was cancelled is dropped, which makes the cancellation happen-before any
// state mutation from the superseded request.
package fetch

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Func performs one lookup for key. It must honor ctx cancellation.
type Func[T any] func(ctx context.Context, key string) (T, error)

// State is the observable outcome of the stream: loading, data or error
type State[T any] struct {
	Key     string
	Data    T
	Loading bool
	Err     string // user-visible message, "" when there is no error
}

// Ticket is the cancellation token for one issued request
type Ticket struct {
	ID  string // request id for log correlation
	Key string

	seq uint64
	ctx context.Context
}

// Context returns the request context (canceled once superseded)
func (t Ticket) Context() context.Context {
	if t.ctx == nil {
		return canceledCtx
	}
	return t.ctx
}

// Cancelled reports whether the request was superseded or closed
func (t Ticket) Cancelled() bool {
	return t.Context().Err() != nil
}

var canceledCtx = func() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}()

// Result carries a finished lookup back to the controller
type Result[T any] struct {
	Ticket Ticket
	Data   T
	Err    error
}

// Option configures a Controller
type Option func(*options)

type options struct {
	name      string
	logger    *slog.Logger
	message   func(error) string
	errorSink func(key string, err error)
}

// WithName labels the stream in logs
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger (slog.Default when unset)
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMessage maps lookup errors to user-visible messages
func WithMessage(fn func(error) string) Option {
	return func(o *options) { o.message = fn }
}

// WithErrorSink routes lookup errors to fn instead of State.Err.
// The stream still resets its data and loading flag on error.
func WithErrorSink(fn func(key string, err error)) Option {
	return func(o *options) { o.errorSink = fn }
}

// Controller manages one request stream
type Controller[T any] struct {
	fetch Func[T]
	opts  options

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	state  State[T]
}

// NewController creates a controller around fn
func NewController[T any](fn Func[T], opts ...Option) *Controller[T] {
	o := options{
		name:    "fetch",
		message: func(err error) string { return err.Error() },
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return &Controller[T]{fetch: fn, opts: o}
}

// Submit supersedes the in-flight request with one for key.
// An empty key clears the state and issues nothing (ok=false).
func (c *Controller[T]) Submit(key string) (Ticket, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()
	c.seq++
	c.state.Key = key

	if key == "" {
		var zero T
		c.state.Data = zero
		c.state.Err = ""
		c.state.Loading = false
		return Ticket{}, false
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	t := Ticket{ID: uuid.NewString(), Key: key, seq: c.seq, ctx: ctx}

	c.state.Err = ""
	c.state.Loading = true

	c.opts.logger.Debug("request issued", "stream", c.opts.name, "key", key, "request_id", t.ID)
	return t, true
}

// Run performs the lookup for t. It blocks until the lookup returns.
func (c *Controller[T]) Run(t Ticket) Result[T] {
	if t.Cancelled() {
		return Result[T]{Ticket: t, Err: context.Canceled}
	}
	data, err := c.fetch(t.ctx, t.Key)
	return Result[T]{Ticket: t, Data: data, Err: err}
}

// Apply folds r into the state and reports whether data or error changed.
// A result from a cancelled or superseded ticket leaves the state untouched.
func (c *Controller[T]) Apply(r Result[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if r.Ticket.seq != c.seq || r.Ticket.Cancelled() {
		c.opts.logger.Debug("stale result dropped", "stream", c.opts.name, "key", r.Ticket.Key, "request_id", r.Ticket.ID)
		return false
	}

	c.cancelLocked()
	c.state.Loading = false

	if r.Err != nil && errors.Is(r.Err, context.Canceled) {
		return false
	}
	if r.Err != nil {
		var zero T
		c.state.Data = zero
		c.opts.logger.Warn("request failed", "stream", c.opts.name, "key", r.Ticket.Key, "request_id", r.Ticket.ID, "error", r.Err)
		if c.opts.errorSink != nil {
			c.opts.errorSink(r.Ticket.Key, r.Err)
			c.state.Err = ""
		} else {
			c.state.Err = c.opts.message(r.Err)
		}
		return true
	}

	c.state.Data = r.Data
	c.state.Err = ""
	c.opts.logger.Debug("request complete", "stream", c.opts.name, "key", r.Ticket.Key, "request_id", r.Ticket.ID)
	return true
}

// Close cancels the in-flight request and clears the loading flag
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.seq++
	c.state.Loading = false
}

// State returns a snapshot of the stream
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller[T]) cancelLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
