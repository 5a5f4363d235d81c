package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/dmitrijs2005/lightlens/internal/client/models"
	"github.com/dmitrijs2005/lightlens/internal/client/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, size int) string {
	t.Helper()
	sig := []byte("\x89PNG\r\n\x1a\n")
	data := append(sig, bytes.Repeat([]byte{0}, size-len(sig))...)
	path := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestFollow_PrintsServerCount(t *testing.T) {
	a, b, out := newTestApp(t)
	ctx := context.Background()
	u := signIn(t, a, b, models.User{Username: "ada"})
	b.SetFollowers(u.ID, 9)

	require.NoError(t, a.Follow(ctx))
	assert.Contains(t, out.String(), "Followers: 10")

	out.Reset()
	require.NoError(t, a.Unfollow(ctx))
	assert.Contains(t, out.String(), "Followers: 9")
	assert.Equal(t, 1, b.Calls("follow"))
	assert.Equal(t, 1, b.Calls("unfollow"))
}

func TestFollowVerbsMatchCurrentState(t *testing.T) {
	a, b, out := newTestApp(t)
	ctx := context.Background()
	signIn(t, a, b, models.User{Username: "ada"})

	require.NoError(t, a.Unfollow(ctx))
	assert.Contains(t, out.String(), "Not following")
	assert.False(t, a.profile.State().IsFollowing)

	require.NoError(t, a.Follow(ctx))
	out.Reset()
	require.NoError(t, a.Follow(ctx))
	assert.Contains(t, out.String(), "Already following")
	assert.True(t, a.profile.State().IsFollowing)

	assert.Equal(t, 1, b.Calls("follow"))
	assert.Zero(t, b.Calls("unfollow"))
}

func TestFollow_RequiresSession(t *testing.T) {
	a, b, _ := newTestApp(t)

	err := a.Follow(context.Background())
	require.ErrorIs(t, err, errNotLoggedIn)
	assert.Equal(t, 0, b.TotalCalls())
}

func TestDarkMode_Toggles(t *testing.T) {
	a, b, out := newTestApp(t)
	ctx := context.Background()
	signIn(t, a, b, models.User{Username: "ada"})

	require.NoError(t, a.DarkMode(ctx))
	assert.Contains(t, out.String(), "Dark mode on")
	assert.Equal(t, " (ada dark)", a.getStatus())

	require.NoError(t, a.DarkMode(ctx))
	assert.Contains(t, out.String(), "Dark mode off")
}

func TestEdit_UpdatesChangedFields(t *testing.T) {
	a, b, out := newTestApp(t)
	ctx := context.Background()
	u := signIn(t, a, b, models.User{Username: "ada", Email: "ada@example.com", Gender: "female"})

	// Keep username, email and gender; change mobile; keep birth date; no picture.
	stubAnswers(t, "", "", "", "5550199", "", "")
	stubMultiline(t, "Street and travel")

	require.NoError(t, a.Edit(ctx))

	got, ok := b.User(u.ID)
	require.True(t, ok)
	assert.Equal(t, "ada", got.Username)
	assert.Equal(t, "5550199", got.Mobile)
	assert.Equal(t, "Street and travel", got.Description)
	assert.Contains(t, out.String(), "Mobile: 5550199")
	assert.Empty(t, b.Uploads())
}

func TestEdit_WithPicture(t *testing.T) {
	a, b, _ := newTestApp(t)
	ctx := context.Background()
	signIn(t, a, b, models.User{Username: "ada", Email: "ada@example.com"})

	stubAnswers(t, "", "", "", "", "", writePNG(t, 1024))
	stubMultiline(t, "")

	require.NoError(t, a.Edit(ctx))
	require.Len(t, b.Uploads(), 1)
	assert.Equal(t, "image/png", b.Uploads()[0].ContentType)
}

func TestAvatarAndPost(t *testing.T) {
	a, b, _ := newTestApp(t)
	ctx := context.Background()
	u := signIn(t, a, b, models.User{Username: "ada"})
	path := writePNG(t, 2048)

	stubAnswers(t, path, path)
	require.NoError(t, a.Avatar(ctx))
	require.NoError(t, a.Post(ctx))

	assert.Equal(t, 1, b.Calls("upload image"))
	assert.Equal(t, 1, b.Posts(u.ID))
}

func TestAvatar_MissingFile(t *testing.T) {
	a, b, _ := newTestApp(t)
	ctx := context.Background()
	signIn(t, a, b, models.User{Username: "ada"})

	stubAnswers(t, filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, a.Avatar(ctx))
	assert.Equal(t, 0, b.Calls("upload image"))
}

func TestDeleteProfile_NeedsConfirmation(t *testing.T) {
	a, b, _ := newTestApp(t)
	ctx := context.Background()
	signIn(t, a, b, models.User{Username: "ada"})

	stubConfirm(t, false)
	require.NoError(t, a.DeleteProfile(ctx))
	assert.Equal(t, 0, b.Calls("delete user"))
	assert.True(t, a.isLoggedIn())

	stubConfirm(t, true)
	require.NoError(t, a.DeleteProfile(ctx))
	a.afterCommand(ctx)
	assert.Equal(t, 1, b.Calls("delete user"))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, views.RouteHome, a.screen)
}

func TestMenu_ShowsBadgeAndProfile(t *testing.T) {
	a, b, out := newTestApp(t)
	ctx := context.Background()
	u := signIn(t, a, b, models.User{Username: "ada"})
	owner := strconv.FormatInt(u.ID, 10)
	b.SeedGoal(models.Goal{UserID: owner, Title: "one", Progress: 100})
	b.SeedGoal(models.Goal{UserID: owner, Title: "two", Progress: 30})

	require.NoError(t, a.Menu(ctx))

	s := out.String()
	assert.Contains(t, s, "> Home")
	assert.Contains(t, s, "  Goals (1)")
	assert.Contains(t, s, "  ada")
	assert.Contains(t, s, "  Log Out")
}
