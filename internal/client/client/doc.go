// Package client contains the client-side building blocks that talk to
// the outside world.
//
// # Overview
//
//  1. A transport-agnostic contract (see the Client interface) for the
//     Light Lens backend: users, follow/unfollow, uploads and goals.
//  2. A REST implementation (see HTTPClient): one request/response round
//     trip per call, JSON or multipart bodies, no retry, no caching.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) opening the
//     SQLite session database and applying embedded goose migrations.
//
// # Error Handling
//
// Every failure is an *Error carrying a Kind: Unauthorized, NotFound,
// Validation, Transport or Unknown. Callers branch with KindOf or with
// errors.Is against ErrUnauthorized, ErrNotFound, ErrValidation,
// ErrTransport and ErrUnknown.
//
// # Contexts
//
// All operations accept a context.Context; cancelling it aborts the
// request in flight and yields a Transport error.
package client
