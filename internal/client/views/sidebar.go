package views

import (
	"context"

	"github.com/dmitrijs2005/lightlens/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// NavItem is one sidebar entry.
type NavItem struct {
	Label  string
	Route  Route
	Active bool
	Badge  int
}

var navItems = []NavItem{
	{Label: "Home", Route: RouteHome},
	{Label: "Search", Route: RouteSearch},
	{Label: "Explore", Route: RouteExplore},
	{Label: "Reels", Route: RouteReels},
	{Label: "Messages", Route: RouteMessages},
	{Label: "Notifications", Route: RouteNotifications},
	{Label: "Create", Route: RouteCreate},
	{Label: "Goals", Route: RouteGoals},
}

// Sidebar is the navigation pane. It shows the user summary and a badge
// with the number of completed goals.
type Sidebar struct {
	lifecycle
	deps Deps

	current   Route
	summary   *models.User
	completed int
}

func NewSidebar(d Deps) *Sidebar {
	return &Sidebar{deps: d.withDefaults(), current: RouteHome}
}

// Mount fetches the user summary and goals concurrently. Each result
// lands in its own field, so completion order is irrelevant. Failures are
// logged and leave the previous values in place. A zero userID fetches
// nothing.
func (s *Sidebar) Mount(ctx context.Context, userID int64, current Route) error {
	s.mount(ctx)
	s.mu.Lock()
	s.current = current
	s.mu.Unlock()

	if userID == 0 {
		s.settle()
		return nil
	}

	c, err := s.begin(ctx)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		u, err := s.deps.Client.GetUserSummary(c.ctx, userID)
		if err != nil {
			s.deps.Log.Warn(ctx, "fetch user summary failed", "user_id", userID, "error", err)
			return err
		}
		s.update(c, func() { s.summary = &u })
		return nil
	})
	g.Go(func() error {
		goals, err := s.deps.Client.ListGoals(c.ctx, userID)
		if err != nil {
			s.deps.Log.Warn(ctx, "fetch goals failed", "user_id", userID, "error", err)
			return err
		}
		n := models.CompletedGoals(goals)
		s.update(c, func() { s.completed = n })
		return nil
	})
	err = g.Wait()
	s.finish(c, nil)
	return err
}

// Summary returns the fetched user, if any.
func (s *Sidebar) Summary() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary == nil {
		return models.User{}, false
	}
	return *s.summary, true
}

func (s *Sidebar) CompletedGoals() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// ProfileLabel is the username, or "Profile" before the summary arrives.
func (s *Sidebar) ProfileLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profileLabelLocked()
}

func (s *Sidebar) profileLabelLocked() string {
	if s.summary == nil || s.summary.Username == "" {
		return "Profile"
	}
	return s.summary.Username
}

// Items returns the navigation entries with the current route marked.
func (s *Sidebar) Items() []NavItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]NavItem, 0, len(navItems)+2)
	for _, it := range navItems {
		it.Active = it.Route == s.current
		if it.Route == RouteGoals {
			it.Badge = s.completed
		}
		items = append(items, it)
	}
	items = append(items,
		NavItem{Label: s.profileLabelLocked(), Route: RouteProfile, Active: s.current == RouteProfile},
		NavItem{Label: "Settings", Route: RouteSettings, Active: s.current == RouteSettings},
	)
	return items
}

// Navigate marks r as current and follows it.
func (s *Sidebar) Navigate(r Route) {
	s.mu.Lock()
	s.current = r
	s.mu.Unlock()
	s.deps.Nav.Navigate(r)
}

// Logout clears the session identity and opens login. The dark-mode
// preference is kept.
func (s *Sidebar) Logout(ctx context.Context) error {
	if err := s.deps.Session.Clear(ctx); err != nil {
		return err
	}
	s.Navigate(RouteLogin)
	return nil
}
