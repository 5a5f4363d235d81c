package views

import (
	"context"
	"errors"
	"sync"
)

// State is the mount lifecycle shared by the controllers.
type State int

const (
	StateUnmounted State = iota
	StateUnauthenticated
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unmounted"
	}
}

var (
	ErrNotMounted      = errors.New("view is not mounted")
	ErrUnauthenticated = errors.New("not signed in")
)

// lifecycle guards a controller's state with a mutex and ties every
// backend call to the mount. Writes from a call that outlived its mount
// are dropped.
type lifecycle struct {
	mu       sync.Mutex
	mountCtx context.Context
	cancel   context.CancelFunc
	state    State
	inflight int
	calls    map[*call]context.CancelFunc
}

// call is one backend round trip started by a controller.
type call struct {
	// ctx is cancelled with either the caller's context or the mount.
	ctx   context.Context
	mount context.Context
	stop  func()
}

// cancelLocked ends the current mount and every call started under it.
func (l *lifecycle) cancelLocked() {
	if l.cancel != nil {
		l.cancel()
	}
	for _, cancel := range l.calls {
		cancel()
	}
	l.calls = nil
}

// mount starts a new mount lifetime below parent, cancelling any previous
// one.
func (l *lifecycle) mount(parent context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancelLocked()
	l.mountCtx, l.cancel = context.WithCancel(parent)
	l.state = StateLoading
	l.inflight = 0
}

// Unmount cancels the mount context, aborting in-flight requests. Their
// completions write nothing.
func (l *lifecycle) Unmount() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancelLocked()
	l.mountCtx, l.cancel = nil, nil
	l.state = StateUnmounted
	l.inflight = 0
}

func (l *lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Busy reports whether a call is in flight. It is advisory: nothing stops
// a second call from starting.
func (l *lifecycle) Busy() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inflight > 0
}

// begin starts a call under ctx and the current mount.
func (l *lifecycle) begin(ctx context.Context) (*call, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.mountCtx == nil || l.mountCtx.Err() != nil {
		return nil, ErrNotMounted
	}
	if l.state == StateUnauthenticated {
		return nil, ErrUnauthenticated
	}

	rctx, cancel := context.WithCancel(ctx)
	c := &call{ctx: rctx, mount: l.mountCtx}
	c.stop = func() {
		l.mu.Lock()
		delete(l.calls, c)
		l.mu.Unlock()
		cancel()
	}
	if l.calls == nil {
		l.calls = make(map[*call]context.CancelFunc)
	}
	l.calls[c] = cancel
	l.inflight++
	l.state = StateLoading

	return c, nil
}

// liveLocked reports whether c still belongs to the current mount.
func (l *lifecycle) liveLocked(c *call) bool {
	return c.mount == l.mountCtx && c.mount.Err() == nil
}

// update applies fn when c is still live. It does not end the call.
func (l *lifecycle) update(c *call, fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.liveLocked(c) {
		return false
	}
	fn()
	return true
}

// finish ends c, applying fn first when c is still live. The busy flag is
// cleared whatever the outcome.
func (l *lifecycle) finish(c *call, fn func()) bool {
	defer c.stop()
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.liveLocked(c) {
		return false
	}
	if fn != nil {
		fn()
	}
	if l.inflight > 0 {
		l.inflight--
	}
	if l.inflight == 0 && l.state == StateLoading {
		l.state = StateReady
	}
	return true
}

// settle marks the mount ready without a backend call.
func (l *lifecycle) settle() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateLoading && l.inflight == 0 {
		l.state = StateReady
	}
}

// redirect makes the mount terminal.
func (l *lifecycle) redirect() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = StateUnauthenticated
}

// storeContext is used for session writes that follow a committed
// response: the write completes even if the view unmounts meanwhile.
func storeContext(c *call) context.Context {
	return context.WithoutCancel(c.ctx)
}
