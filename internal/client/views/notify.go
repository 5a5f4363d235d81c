package views

import "sync"

type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Toast is a transient notification.
type Toast struct {
	Message  string
	Severity Severity
}

type Notifier interface {
	Notify(t Toast)
}

type discardNotifier struct{}

func (discardNotifier) Notify(Toast) {}

// Toasts collects notifications until they are drained.
type Toasts struct {
	mu   sync.Mutex
	list []Toast
}

func (t *Toasts) Notify(toast Toast) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.list = append(t.list, toast)
}

// Drain returns the pending notifications and forgets them.
func (t *Toasts) Drain() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.list
	t.list = nil
	return out
}

// All returns the pending notifications without draining them.
func (t *Toasts) All() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Toast(nil), t.list...)
}

func (t *Toasts) Last() (Toast, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.list) == 0 {
		return Toast{}, false
	}
	return t.list[len(t.list)-1], true
}

func success(msg string) Toast { return Toast{Message: msg, Severity: SeveritySuccess} }
func failure(msg string) Toast { return Toast{Message: msg, Severity: SeverityError} }
