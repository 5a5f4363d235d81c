package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
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

// newTestApp wires an App to an in-memory backend and session database.
// Everything the App prints lands in the returned buffer.
func newTestApp(t *testing.T) (*App, *fakebackend.Backend, *bytes.Buffer) {
	t.Helper()
	b, srv := fakebackend.Start(t)
	api, err := client.NewHTTPClient(srv.URL, 5*time.Second, logging.Nop())
	require.NoError(t, err)

	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := newApp(api, session.NewStore(repo.NewSQLiteRepository(db)), logging.Nop(), bufio.NewReader(strings.NewReader("")), out)
	a.closer = db
	t.Cleanup(func() { _ = a.Close() })
	return a, b, out
}

// signIn seeds a backend user and stores it as the session identity.
func signIn(t *testing.T, a *App, b *fakebackend.Backend, u models.User) models.User {
	t.Helper()
	u = b.Seed(u, "secret1")
	require.NoError(t, a.store.Save(context.Background(), u))
	return u
}

// stubAnswers makes the text prompts return answers in order, then EOF.
func stubAnswers(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	t.Cleanup(func() { getSimpleText = orig })
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		v := answers[0]
		answers = answers[1:]
		return v, nil
	}
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })
	getPassword = func(_ io.Writer) (string, error) { return pw, nil }
}

func stubMultiline(t *testing.T, text string) {
	t.Helper()
	orig := getMultiline
	t.Cleanup(func() { getMultiline = orig })
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
}

func stubConfirm(t *testing.T, ok bool) {
	t.Helper()
	orig := getConfirm
	t.Cleanup(func() { getConfirm = orig })
	getConfirm = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) { return ok, nil }
}
