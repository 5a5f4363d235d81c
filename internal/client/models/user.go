// Package models defines the client-side data model: users, goals,
// pending uploads and the helpers used to present them.
package models

import (
	"net/url"
	"strings"
)

// User is the backend's user record as seen by the client. Password is
// write-only: it is sent on register/update and never persisted locally.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
	DateOfBirth Date   `json:"dateOfBirth,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	CreatedAt   Date   `json:"createdAt,omitempty"`
	LastLogin   Date   `json:"lastLogin,omitempty"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	IsFollowing bool   `json:"isFollowing"`
}

// WithoutPassword returns a copy of u safe to cache.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

// Draft returns the editable fields of u.
func (u User) Draft() UserDraft {
	return UserDraft{
		Username:    u.Username,
		Email:       u.Email,
		Password:    u.Password,
		Gender:      u.Gender,
		Mobile:      u.Mobile,
		DateOfBirth: u.DateOfBirth.DateOnly(),
		Description: u.Description,
	}
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is the locally cached identity plus the display preference.
type Session struct {
	User     User
	DarkMode bool
}

// AssetURL resolves an uploaded image reference against the static asset
// base. An empty reference yields an empty string.
func AssetURL(base, image string) string {
	if image == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(strings.TrimLeft(image, "/"))
}
