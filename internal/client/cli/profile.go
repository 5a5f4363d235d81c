package cli

import (
	"context"

	"github.com/dmitrijs2005/lightlens/internal/client/models"
	"github.com/dmitrijs2005/lightlens/internal/client/views"
)

// Home opens the landing page.
func (a *App) Home(ctx context.Context) error {
	a.nav.Navigate(views.RouteHome)
	if a.screen == views.RouteHome {
		renderHome(a.out, a.home)
	}
	return nil
}

// Start is the landing page's call to action.
func (a *App) Start(ctx context.Context) error {
	a.ensure(ctx, views.RouteHome)
	return a.home.GetStarted(ctx)
}

// Profile (re)loads and shows the profile.
func (a *App) Profile(ctx context.Context) error {
	if a.screen == views.RouteProfile {
		return a.open(ctx, views.RouteProfile)
	}
	a.nav.Navigate(views.RouteProfile)
	return nil
}

// onProfile opens the profile screen if needed and reports whether it is
// usable.
func (a *App) onProfile(ctx context.Context) bool {
	a.ensure(ctx, views.RouteProfile)
	return a.screen == views.RouteProfile && a.profile.Lifecycle() == views.StateReady
}

var editableFields = []field{
	{"username", "Username"},
	{"email", "Email"},
	{"gender", "Gender (male/female/other)"},
	{"mobile", "Mobile"},
	{"dateOfBirth", "Date of birth (YYYY-MM-DD)"},
}

// Edit walks the edit dialog: every field can be kept by pressing Enter,
// and a new picture may be attached.
func (a *App) Edit(ctx context.Context) error {
	if !a.onProfile(ctx) {
		return errNotLoggedIn
	}
	a.profile.ResetDraft()
	draft := a.profile.State().Draft

	current := map[string]string{
		"username":    draft.Username,
		"email":       draft.Email,
		"gender":      draft.Gender,
		"mobile":      draft.Mobile,
		"dateOfBirth": draft.DateOfBirth,
	}
	for _, f := range editableFields {
		v, err := getSimpleText(a.reader, f.prompt+" ["+current[f.name]+"]", a.out)
		if err != nil {
			return err
		}
		if v == "" {
			continue
		}
		if err := a.profile.SetField(f.name, v); err != nil {
			return err
		}
	}

	about, err := getMultiline(a.reader, "About (empty keeps the current text)", a.out)
	if err != nil {
		return err
	}
	if about != "" {
		if err := a.profile.SetField("description", about); err != nil {
			return err
		}
	}

	path, err := getSimpleText(a.reader, "New profile picture path (empty for none)", a.out)
	if err != nil {
		return err
	}
	if path != "" {
		up, err := models.OpenUpload(path)
		if err != nil {
			return err
		}
		if err := a.profile.SelectImage(up); err != nil {
			return err
		}
	}

	if err := a.profile.Update(ctx); err != nil {
		return err
	}
	renderProfile(a.out, a.profile.State())
	return nil
}

func (a *App) promptUpload(prompt string) (models.Upload, error) {
	path, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return models.Upload{}, err
	}
	return models.OpenUpload(path)
}

// Avatar uploads a new profile picture.
func (a *App) Avatar(ctx context.Context) error {
	if !a.onProfile(ctx) {
		return errNotLoggedIn
	}
	up, err := a.promptUpload("Profile picture path")
	if err != nil {
		return err
	}
	return a.profile.UploadImage(ctx, up)
}

// Post publishes an image.
func (a *App) Post(ctx context.Context) error {
	if !a.onProfile(ctx) {
		return errNotLoggedIn
	}
	up, err := a.promptUpload("Post image path")
	if err != nil {
		return err
	}
	return a.profile.UploadPost(ctx, up)
}

// Follow starts following the shown profile.
func (a *App) Follow(ctx context.Context) error {
	return a.setFollowing(ctx, true)
}

// Unfollow stops following the shown profile.
func (a *App) Unfollow(ctx context.Context) error {
	return a.setFollowing(ctx, false)
}

func (a *App) setFollowing(ctx context.Context, want bool) error {
	if !a.onProfile(ctx) {
		return errNotLoggedIn
	}
	if a.profile.State().IsFollowing == want {
		if want {
			fprintln(a.out, "Already following")
		} else {
			fprintln(a.out, "Not following")
		}
		return nil
	}
	if err := a.profile.ToggleFollow(ctx); err != nil {
		return err
	}
	s := a.profile.State()
	fprintf(a.out, "Followers: %d\n", s.Followers)
	return nil
}

func (a *App) DarkMode(ctx context.Context) error {
	if !a.onProfile(ctx) {
		return errNotLoggedIn
	}
	if err := a.profile.ToggleDarkMode(ctx); err != nil {
		return err
	}
	if a.profile.State().DarkMode {
		fprintln(a.out, "Dark mode on")
	} else {
		fprintln(a.out, "Dark mode off")
	}
	return nil
}

// DeleteProfile asks for confirmation, then deletes the account.
func (a *App) DeleteProfile(ctx context.Context) error {
	if !a.onProfile(ctx) {
		return errNotLoggedIn
	}
	ok, err := getConfirm(a.reader, "Are you sure you want to delete your profile?", a.out)
	if err != nil || !ok {
		return err
	}
	return a.profile.Delete(ctx)
}

// Menu shows the sidebar for the current screen.
func (a *App) Menu(ctx context.Context) error {
	var id int64
	if u, ok, err := a.store.Load(ctx); err == nil && ok {
		id = u.ID
	}
	current := a.screen
	if current == "" {
		current = views.RouteHome
	}
	err := a.sidebar.Mount(ctx, id, current)
	renderSidebar(a.out, a.sidebar)
	if err != nil {
		a.log.Debug(ctx, "sidebar fetch failed", "error", err)
	}
	return nil
}
