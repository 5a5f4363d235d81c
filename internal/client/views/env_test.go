package views

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/lightlens/internal/client/client"
	"github.com/dmitrijs2005/lightlens/internal/client/fakebackend"
	"github.com/dmitrijs2005/lightlens/internal/client/models"
	repo "github.com/dmitrijs2005/lightlens/internal/client/repositories/session"
	"github.com/dmitrijs2005/lightlens/internal/client/session"
	"github.com/dmitrijs2005/lightlens/internal/logging"
	"github.com/stretchr/testify/require"
)

type env struct {
	backend *fakebackend.Backend
	client  *client.HTTPClient
	store   *session.Store
	nav     *History
	toasts  *Toasts
}

func newEnv(t *testing.T) *env {
	t.Helper()
	b, srv := fakebackend.Start(t)
	c, err := client.NewHTTPClient(srv.URL, 5*time.Second, logging.Nop())
	require.NoError(t, err)

	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &env{
		backend: b,
		client:  c,
		store:   session.NewStore(repo.NewSQLiteRepository(db)),
		nav:     NewHistory(RouteHome),
		toasts:  &Toasts{},
	}
}

func (e *env) deps() Deps {
	return Deps{Client: e.client, Session: e.store, Nav: e.nav, Notify: e.toasts, Log: logging.Nop()}
}

// signIn seeds a backend user and stores it as the session identity.
func (e *env) signIn(t *testing.T, u models.User) models.User {
	t.Helper()
	u = e.backend.Seed(u, "secret1")
	require.NoError(t, e.store.Save(context.Background(), u))
	return u
}

func (e *env) lastToast(t *testing.T) Toast {
	t.Helper()
	toast, ok := e.toasts.Last()
	require.True(t, ok, "expected a notification")
	return toast
}

func pngOfSize(n int) []byte {
	sig := []byte("\x89PNG\r\n\x1a\n")
	return append(sig, bytes.Repeat([]byte{0}, n-len(sig))...)
}

// gatedClient blocks GetUser until the request context ends or release
// is closed.
type gatedClient struct {
	client.Client
	started chan struct{}
	release chan struct{}
	user    models.User
}

func (g *gatedClient) GetUser(ctx context.Context, id int64) (models.User, error) {
	close(g.started)
	select {
	case <-ctx.Done():
		return models.User{}, &client.Error{Op: "fetch profile", Kind: client.KindTransport, Err: ctx.Err()}
	case <-g.release:
		return g.user, nil
	}
}

func (g *gatedClient) AssetURL(image string) string { return image }
