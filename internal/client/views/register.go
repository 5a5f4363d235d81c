package views

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/lightlens/internal/client/models"
)

const (
	msgRegistered         = "User registered successfully"
	msgRegistrationFailed = "Registration failed. Please try again."
)

// Register drives the sign-up form.
type Register struct {
	lifecycle
	deps Deps

	draft        models.UserDraft
	formErr      string
	invalidField string
}

func NewRegister(d Deps) *Register {
	return &Register{deps: d.withDefaults()}
}

func (r *Register) Mount(ctx context.Context) error {
	r.mount(ctx)
	r.mu.Lock()
	r.draft, r.formErr, r.invalidField = models.UserDraft{}, "", ""
	r.mu.Unlock()
	r.settle()
	return nil
}

// Set assigns one form field by its JSON name.
func (r *Register) Set(field, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draft.Set(field, value)
}

func (r *Register) Draft() models.UserDraft {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draft
}

// FormError is the message shown above the form after a failed submit.
func (r *Register) FormError() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.formErr
}

// InvalidField names the field rejected by client-side validation.
func (r *Register) InvalidField() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.invalidField
}

// Submit validates the form and creates the account. On success the form
// is reset and the user is sent to login.
func (r *Register) Submit(ctx context.Context) error {
	c, err := r.begin(ctx)
	if err != nil {
		return err
	}
	draft := r.Draft()

	if err := draft.ValidateRegistration(); err != nil {
		field := ""
		var fe *models.FieldError
		if errors.As(err, &fe) {
			field = fe.Field
		}
		r.finish(c, func() {
			r.formErr, r.invalidField = msgRegistrationFailed, field
		})
		return err
	}

	if _, err := r.deps.Client.Register(c.ctx, draft); err != nil {
		if r.finish(c, func() { r.formErr, r.invalidField = msgRegistrationFailed, "" }) {
			r.deps.Log.Warn(ctx, "register failed", "username", draft.Username, "error", err)
		}
		return err
	}

	if r.finish(c, func() { r.draft, r.formErr, r.invalidField = models.UserDraft{}, "", "" }) {
		r.deps.Notify.Notify(success(msgRegistered))
		r.deps.Nav.Navigate(RouteLogin)
	}
	return nil
}
