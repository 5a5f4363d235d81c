package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/lightlens/internal/client/models"
	"github.com/dmitrijs2005/lightlens/internal/client/views"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getConfirm    = GetConfirm
)

type field struct {
	name   string
	prompt string
}

var registrationFields = []field{
	{"username", "Enter username"},
	{"email", "Enter email"},
	{"gender", "Enter gender (male/female/other)"},
	{"mobile", "Enter mobile number"},
	{"dateOfBirth", "Enter date of birth (YYYY-MM-DD)"},
}

// Register prompts for the sign-up form and submits it. On failure the
// form error is printed, naming the rejected field when there is one.
func (a *App) Register(ctx context.Context) error {
	a.ensure(ctx, views.RouteRegister)

	for _, f := range registrationFields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		if err := a.register.Set(f.name, v); err != nil {
			return err
		}
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if err := a.register.Set("password", password); err != nil {
		return err
	}
	about, err := getMultiline(a.reader, "Tell us about yourself", a.out)
	if err != nil {
		return err
	}
	if err := a.register.Set("description", about); err != nil {
		return err
	}

	err = a.register.Submit(ctx)
	if msg := a.register.FormError(); msg != "" {
		if f := a.register.InvalidField(); f != "" {
			fprintf(a.out, "%s (check %s)\n", msg, f)
		} else {
			fprintln(a.out, msg)
		}
		return nil
	}
	return err
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	a.ensure(ctx, views.RouteLogin)

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	return a.login.Submit(ctx, models.Credentials{Username: username, Password: password})
}

// Logout clears the session identity; the display preference stays.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	return a.sidebar.Logout(ctx)
}

var errNotLoggedIn = errors.New("not logged in; type 'login' first")

// commandFailed prints errors the controllers did not already report
// through a notification.
func (a *App) commandFailed(ctx context.Context, cmd string, err error) {
	a.log.Debug(ctx, "command failed", "command", cmd, "error", err)
	if len(a.toasts.All()) > 0 {
		return
	}
	fprintln(a.out, "Error:", err)
}
