package views

import (
	"context"

	"github.com/dmitrijs2005/lightlens/internal/client/client"
	"github.com/dmitrijs2005/lightlens/internal/client/models"
)

const (
	msgLoggedIn           = "Login successful"
	msgInvalidCredentials = "Invalid credentials"
	msgLoginFailed        = "Login failed"
	msgMissingCredentials = "Please enter your username and password"
)

type Login struct {
	lifecycle
	deps Deps
}

func NewLogin(d Deps) *Login {
	return &Login{deps: d.withDefaults()}
}

func (l *Login) Mount(ctx context.Context) error {
	l.mount(ctx)
	l.settle()
	return nil
}

// Submit signs in. The returned user becomes the session identity and the
// profile is opened.
func (l *Login) Submit(ctx context.Context, creds models.Credentials) error {
	c, err := l.begin(ctx)
	if err != nil {
		return err
	}

	if err := models.Validate(creds); err != nil {
		if l.finish(c, nil) {
			l.deps.Notify.Notify(failure(msgMissingCredentials))
		}
		return err
	}

	u, err := l.deps.Client.Login(c.ctx, creds)
	if err != nil {
		if l.finish(c, nil) {
			msg := msgLoginFailed
			if client.KindOf(err) == client.KindUnauthorized {
				msg = msgInvalidCredentials
			}
			l.deps.Log.Warn(ctx, "login failed", "username", creds.Username, "error", err)
			l.deps.Notify.Notify(failure(msg))
		}
		return err
	}

	if !l.finish(c, nil) {
		return nil
	}
	if err := l.deps.Session.Save(storeContext(c), u); err != nil {
		l.deps.Notify.Notify(failure(msgLoginFailed))
		return err
	}
	l.deps.Notify.Notify(success(msgLoggedIn))
	l.deps.Nav.Navigate(RouteProfile)
	return nil
}
