package views

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/lightlens/internal/client/models"
)

const (
	msgLoadFailed    = "Error loading user data"
	msgUpdated       = "Profile updated successfully"
	msgUpdateFailed  = "Error updating profile"
	msgDeleted       = "Profile deleted successfully"
	msgDeleteFailed  = "Error deleting profile"
	msgNotAnImage    = "Please select an image file"
	msgImageTooLarge = "Image size should be less than 5MB"
	msgImageUploaded = "Profile picture updated successfully"
	msgImageFailed   = "Error uploading image"
	msgFollowed      = "Followed successfully"
	msgUnfollowed    = "Unfollowed successfully"
	msgFollowFailed  = "Error updating follow status"
	msgPostUploaded  = "Post uploaded successfully"
	msgPostFailed    = "Error uploading post"
)

// ProfileState is a snapshot of what the profile screen renders.
type ProfileState struct {
	User         models.User
	Draft        models.UserDraft
	Followers    int
	Following    int
	IsFollowing  bool
	DarkMode     bool
	ImageURL     string
	PendingImage *models.Upload
}

// Profile is the signed-in user's profile page.
type Profile struct {
	lifecycle
	deps Deps

	user        models.User
	draft       models.UserDraft
	followers   int
	following   int
	isFollowing bool
	darkMode    bool
	pending     *models.Upload
}

func NewProfile(d Deps) *Profile {
	return &Profile{deps: d.withDefaults()}
}

// Mount loads the session. Without one it redirects to login and makes no
// backend call; otherwise it fetches the user once.
func (p *Profile) Mount(ctx context.Context) error {
	p.mount(ctx)

	dark, err := p.deps.Session.Preference(ctx)
	if err != nil {
		p.deps.Log.Warn(ctx, "reading dark mode preference failed", "error", err)
	}
	p.mu.Lock()
	p.darkMode = dark
	p.mu.Unlock()

	saved, ok, err := p.deps.Session.Load(ctx)
	if err != nil {
		p.settle()
		return err
	}
	if !ok {
		p.redirect()
		p.deps.Nav.Navigate(RouteLogin)
		return nil
	}

	c, err := p.begin(ctx)
	if err != nil {
		return err
	}
	u, err := p.deps.Client.GetUser(c.ctx, saved.ID)
	if err != nil {
		if p.finish(c, nil) {
			p.deps.Log.Error(ctx, "fetch profile failed", "user_id", saved.ID, "error", err)
			p.deps.Notify.Notify(failure(msgLoadFailed))
		}
		return err
	}
	p.finish(c, func() { p.applyLocked(u, true) })
	return nil
}

// applyLocked replaces the rendered user. The edit draft follows only when
// refreshDraft is set.
func (p *Profile) applyLocked(u models.User, refreshDraft bool) {
	p.user = u
	p.followers = u.Followers
	p.following = u.Following
	p.isFollowing = u.IsFollowing
	if refreshDraft {
		p.draft = u.Draft()
	}
}

func (p *Profile) State() ProfileState {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := ProfileState{
		User:        p.user,
		Draft:       p.draft,
		Followers:   p.followers,
		Following:   p.following,
		IsFollowing: p.isFollowing,
		DarkMode:    p.darkMode,
		ImageURL:    p.deps.Client.AssetURL(p.user.Image),
	}
	if p.pending != nil {
		up := *p.pending
		s.PendingImage = &up
	}
	return s
}

// Lifecycle returns the mount state.
func (p *Profile) Lifecycle() State {
	return p.lifecycle.State()
}

func (p *Profile) userID() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.user.ID
}

// SetField edits one field of the edit-dialog draft.
func (p *Profile) SetField(field, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.draft.Set(field, value)
}

// ResetDraft discards unsaved edits and the pending image.
func (p *Profile) ResetDraft() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draft = p.user.Draft()
	p.pending = nil
}

// SelectImage attaches an image to the next Update. Invalid images are
// refused with a notification.
func (p *Profile) SelectImage(up models.Upload) error {
	if err := p.checkImage(up); err != nil {
		return err
	}
	p.mu.Lock()
	p.pending = &up
	p.mu.Unlock()
	return nil
}

func (p *Profile) checkImage(up models.Upload) error {
	err := up.Validate()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrImageTooLarge):
		p.deps.Notify.Notify(failure(msgImageTooLarge))
	default:
		p.deps.Notify.Notify(failure(msgNotAnImage))
	}
	return err
}

// Update sends the draft and the pending image, if any. Once the request
// is sent the pending image is discarded whatever the outcome; a draft
// rejected locally keeps it.
func (p *Profile) Update(ctx context.Context) error {
	id := p.userID()
	if id == 0 {
		return ErrNotMounted
	}
	c, err := p.begin(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	draft, image := p.draft, p.pending
	p.mu.Unlock()

	if err := draft.Validate(); err != nil {
		if p.finish(c, nil) {
			p.deps.Notify.Notify(failure(msgUpdateFailed))
		}
		return err
	}

	p.mu.Lock()
	p.pending = nil
	p.mu.Unlock()

	u, err := p.deps.Client.UpdateUser(c.ctx, id, draft, image)
	if err != nil {
		if p.finish(c, nil) {
			p.deps.Log.Error(ctx, "update profile failed", "user_id", id, "error", err)
			p.deps.Notify.Notify(failure(msgUpdateFailed))
		}
		return err
	}

	if !p.finish(c, func() { p.applyLocked(u, true) }) {
		return nil
	}
	p.saveSession(c, u)
	p.deps.Notify.Notify(success(msgUpdated))
	return nil
}

// Delete removes the account, clears the session and goes home.
func (p *Profile) Delete(ctx context.Context) error {
	id := p.userID()
	if id == 0 {
		return ErrNotMounted
	}
	c, err := p.begin(ctx)
	if err != nil {
		return err
	}

	if err := p.deps.Client.DeleteUser(c.ctx, id); err != nil {
		if p.finish(c, nil) {
			p.deps.Log.Error(ctx, "delete profile failed", "user_id", id, "error", err)
			p.deps.Notify.Notify(failure(msgDeleteFailed))
		}
		return err
	}

	if !p.finish(c, nil) {
		return nil
	}
	if err := p.deps.Session.Clear(storeContext(c)); err != nil {
		p.deps.Log.Error(ctx, "clearing session failed", "error", err)
	}
	p.deps.Notify.Notify(success(msgDeleted))
	p.deps.Nav.Navigate(RouteHome)
	return nil
}

// UploadImage replaces the profile picture.
func (p *Profile) UploadImage(ctx context.Context, up models.Upload) error {
	id := p.userID()
	if id == 0 {
		return ErrNotMounted
	}
	if err := p.checkImage(up); err != nil {
		return err
	}
	c, err := p.begin(ctx)
	if err != nil {
		return err
	}

	u, err := p.deps.Client.UploadProfileImage(c.ctx, id, up)
	if err != nil {
		if p.finish(c, nil) {
			p.deps.Log.Error(ctx, "upload profile image failed", "user_id", id, "error", err)
			p.deps.Notify.Notify(failure(msgImageFailed))
		}
		return err
	}

	if !p.finish(c, func() { p.applyLocked(u, false) }) {
		return nil
	}
	p.saveSession(c, u)
	p.deps.Notify.Notify(success(msgImageUploaded))
	return nil
}

// UploadPost publishes an image as a post.
func (p *Profile) UploadPost(ctx context.Context, up models.Upload) error {
	id := p.userID()
	if id == 0 {
		return ErrNotMounted
	}
	if err := p.checkImage(up); err != nil {
		return err
	}
	c, err := p.begin(ctx)
	if err != nil {
		return err
	}

	if err := p.deps.Client.UploadPostImage(c.ctx, id, up); err != nil {
		if p.finish(c, nil) {
			p.deps.Log.Error(ctx, "upload post failed", "user_id", id, "error", err)
			p.deps.Notify.Notify(failure(msgPostFailed))
		}
		return err
	}

	if p.finish(c, nil) {
		p.deps.Notify.Notify(success(msgPostUploaded))
	}
	return nil
}

// ToggleFollow follows or unfollows the profile. A user returned by the
// backend is authoritative; a bare acknowledgement falls back to adjusting
// the local counter by one.
func (p *Profile) ToggleFollow(ctx context.Context) error {
	p.mu.Lock()
	id, wasFollowing := p.user.ID, p.isFollowing
	p.mu.Unlock()
	if id == 0 {
		return ErrNotMounted
	}
	c, err := p.begin(ctx)
	if err != nil {
		return err
	}

	toggle := p.deps.Client.Follow
	if wasFollowing {
		toggle = p.deps.Client.Unfollow
	}
	fresh, err := toggle(c.ctx, id)
	if err != nil {
		if p.finish(c, nil) {
			p.deps.Log.Error(ctx, "follow toggle failed", "user_id", id, "following", wasFollowing, "error", err)
			p.deps.Notify.Notify(failure(msgFollowFailed))
		}
		return err
	}

	var saved models.User
	ok := p.finish(c, func() {
		if fresh != nil {
			p.user = *fresh
			p.followers = fresh.Followers
			p.following = fresh.Following
		} else {
			p.followers = followerDelta(p.followers, wasFollowing)
			p.user.Followers = p.followers
		}
		p.isFollowing = !wasFollowing
		p.user.IsFollowing = p.isFollowing
		p.draft = p.user.Draft()
		saved = p.user
	})
	if !ok {
		return nil
	}
	p.saveSession(c, saved)
	if wasFollowing {
		p.deps.Notify.Notify(success(msgUnfollowed))
	} else {
		p.deps.Notify.Notify(success(msgFollowed))
	}
	return nil
}

func followerDelta(n int, wasFollowing bool) int {
	if !wasFollowing {
		return n + 1
	}
	if n > 0 {
		return n - 1
	}
	return 0
}

// ToggleDarkMode flips and persists the display preference.
func (p *Profile) ToggleDarkMode(ctx context.Context) error {
	p.mu.Lock()
	p.darkMode = !p.darkMode
	dark := p.darkMode
	p.mu.Unlock()
	return p.deps.Session.SetPreference(ctx, dark)
}

func (p *Profile) saveSession(c *call, u models.User) {
	if err := p.deps.Session.Save(storeContext(c), u); err != nil {
		p.deps.Log.Error(c.ctx, "saving session failed", "user_id", u.ID, "error", err)
	}
}
