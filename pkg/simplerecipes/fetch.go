package simplerecipes

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// FetchState is the domain type for view fetch lifecycle states.
type FetchState string

// Fetch state constants (typed).
const (
	FetchIdle    FetchState = "idle"
	FetchLoading FetchState = "loading"
	FetchSuccess FetchState = "success"
	FetchFailed  FetchState = "error"
)

// Ticket identifies one fetch issued by a Tracker.
type Ticket struct {
	ID         uuid.UUID
	Generation uint64
}

// Tracker drives the idle → loading → {success, error} state machine of a
// view and discards results of superseded fetches.
//
// Begin starts a new generation and cancels the context handed out by the
// previous Begin. Succeed and Fail only take effect for the latest ticket.
// A Tracker is safe for concurrent use.
type Tracker struct {
	mu         sync.Mutex
	generation uint64
	state      FetchState
	err        error
	cancel     context.CancelFunc
}

// NewTracker creates a tracker in the idle state.
func NewTracker() *Tracker {
	return &Tracker{state: FetchIdle}
}

// Begin enters the loading state and returns a context for the fetch along
// with its ticket. The context is cancelled when a newer fetch begins.
func (t *Tracker) Begin(ctx context.Context) (context.Context, Ticket) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.generation++
	t.state = FetchLoading
	t.err = nil

	return fetchCtx, Ticket{ID: uuid.New(), Generation: t.generation}
}

// Succeed moves to the success state. It reports false, and changes
// nothing, when the ticket has been superseded.
func (t *Tracker) Succeed(tk Ticket) bool {
	return t.finish(tk, FetchSuccess, nil)
}

// Fail moves to the error state. It reports false, and changes nothing,
// when the ticket has been superseded.
func (t *Tracker) Fail(tk Ticket, err error) bool {
	return t.finish(tk, FetchFailed, err)
}

func (t *Tracker) finish(tk Ticket, state FetchState, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tk.Generation != t.generation || t.state != FetchLoading {
		return false
	}
	t.state = state
	t.err = err
	t.release()
	return true
}

// release cancels the context of the finished fetch. Caller holds t.mu.
func (t *Tracker) release() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// Current reports whether tk belongs to the latest fetch.
func (t *Tracker) Current(tk Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tk.Generation == t.generation
}

// State returns the current state and, in the error state, the error.
func (t *Tracker) State() (FetchState, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state, t.err
}

// Generation returns the number of fetches begun so far.
func (t *Tracker) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generation
}
