// Package session keeps the signed-in identity and the dark-mode
// preference in durable storage.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/lightlens/internal/client/models"
	repo "github.com/dmitrijs2005/lightlens/internal/client/repositories/session"
)

const (
	userKey     = "user"
	darkModeKey = "darkMode"
)

// Store is the only mutation surface for the session. It is handed to
// every view controller.
type Store struct {
	repo repo.Repository
}

func NewStore(r repo.Repository) *Store {
	return &Store{repo: r}
}

// Save persists u as the current identity, replacing any previous one.
// The password is never written.
func (s *Store) Save(ctx context.Context, u models.User) error {
	b, err := json.Marshal(u.WithoutPassword())
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	return s.repo.Set(ctx, userKey, string(b))
}

// Load returns the saved identity. ok is false when nobody is signed in.
func (s *Store) Load(ctx context.Context) (u models.User, ok bool, err error) {
	raw, ok, err := s.repo.Get(ctx, userKey)
	if err != nil || !ok {
		return models.User{}, false, err
	}
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return models.User{}, false, fmt.Errorf("decode session user: %w", err)
	}
	return u, true, nil
}

// Clear removes the identity. The dark-mode preference is kept.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, userKey)
}

func (s *Store) SetPreference(ctx context.Context, dark bool) error {
	return s.repo.Set(ctx, darkModeKey, strconv.FormatBool(dark))
}

// Preference reports the dark-mode flag; unset or unreadable values mean
// light mode.
func (s *Store) Preference(ctx context.Context) (bool, error) {
	raw, ok, err := s.repo.Get(ctx, darkModeKey)
	if err != nil || !ok {
		return false, err
	}
	dark, err := strconv.ParseBool(raw)
	if err != nil {
		return false, nil
	}
	return dark, nil
}

// Session returns the identity together with the preference.
func (s *Store) Session(ctx context.Context) (models.Session, bool, error) {
	u, ok, err := s.Load(ctx)
	if err != nil || !ok {
		return models.Session{}, false, err
	}
	dark, err := s.Preference(ctx)
	if err != nil {
		return models.Session{}, false, err
	}
	return models.Session{User: u, DarkMode: dark}, true, nil
}
