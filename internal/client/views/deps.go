// Package views holds the view controllers of the Light Lens client. Each
// controller owns its local state, talks to the backend through a
// client.Client and reconciles the session store. Rendering is left to the
// caller.
package views

import (
	"github.com/dmitrijs2005/lightlens/internal/client/client"
	"github.com/dmitrijs2005/lightlens/internal/client/session"
	"github.com/dmitrijs2005/lightlens/internal/logging"
)

// Deps is what every controller is constructed with.
type Deps struct {
	Client  client.Client
	Session *session.Store
	Nav     Navigator
	Notify  Notifier
	Log     logging.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Nav == nil {
		d.Nav = discardNavigator{}
	}
	if d.Notify == nil {
		d.Notify = discardNotifier{}
	}
	if d.Log == nil {
		d.Log = logging.Nop()
	}
	return d
}
