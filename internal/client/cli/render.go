package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/lightlens/internal/client/models"
	"github.com/dmitrijs2005/lightlens/internal/client/views"
)

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func fprintf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, format, a...)
}

func renderToasts(w io.Writer, toasts []views.Toast) {
	for _, t := range toasts {
		fprintf(w, "[%s] %s\n", t.Severity, t.Message)
	}
}

func renderHome(w io.Writer, h *views.Home) {
	fprintln(w, "Light Lens: capture, share and grow as a photographer.")
	fprintln(w, "Trending photographers:")
	for _, p := range h.Photographers() {
		fprintf(w, "  (%s) %s, %s, %s followers\n", p.Initial, p.Name, p.Specialty, p.Followers)
	}
	fprintln(w, "Trending photos:")
	for _, p := range h.TrendingPhotos() {
		fprintf(w, "  %s: %d likes, %d comments\n", p.Title, p.Likes, p.Comments)
	}
	fprintln(w, "Why Light Lens:")
	for _, f := range h.Features() {
		fprintf(w, "  %s: %s\n", f.Title, f.Description)
	}
	if h.SignedIn() {
		fprintln(w, "Type 'start' to open your profile.")
	} else {
		fprintln(w, "Type 'start' to log in or 'register' to join.")
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func renderProfile(w io.Writer, s views.ProfileState) {
	u := s.User
	if u.ID == 0 {
		fprintln(w, "Profile not loaded.")
		return
	}
	fprintf(w, "%s <%s>\n", u.Username, u.Email)
	fprintf(w, "  Followers: %d  Following: %d", s.Followers, s.Following)
	if s.IsFollowing {
		fprintf(w, "  (following)")
	}
	fprintln(w)
	fprintf(w, "  Gender: %s\n", orDash(u.Gender))
	fprintf(w, "  Mobile: %s\n", orDash(u.Mobile))
	fprintf(w, "  Date of birth: %s\n", u.DateOfBirth.Format())
	fprintf(w, "  Member since: %s\n", u.CreatedAt.Format())
	fprintf(w, "  Last login: %s\n", u.LastLogin.Format())
	fprintf(w, "  Picture: %s\n", orDash(s.ImageURL))
	if u.Description != "" {
		fprintln(w, "  About:")
		for _, line := range strings.Split(u.Description, "\n") {
			fprintf(w, "    %s\n", line)
		}
	}
}

func renderGoalList(w io.Writer, goals []models.Goal) {
	if len(goals) == 0 {
		fprintln(w, "No goals yet. Type 'addgoal' to create one.")
		return
	}
	for _, g := range goals {
		mark := " "
		if g.Progress == 100 {
			mark = "x"
		}
		fprintf(w, "  [%s] #%d %s: %d%%", mark, g.ID, g.Title, g.Progress)
		if g.TargetDate != "" {
			fprintf(w, " (due %s)", g.TargetDate.Format())
		}
		fprintln(w)
	}
}

func renderGoals(w io.Writer, g *views.Goals) {
	list := g.List()
	fprintf(w, "Goals (%d completed of %d):\n", g.Completed(), len(list))
	renderGoalList(w, list)
}

func renderSidebar(w io.Writer, s *views.Sidebar) {
	fprintln(w, "Light Lens")
	for _, it := range s.Items() {
		cursor := "  "
		if it.Active {
			cursor = "> "
		}
		fprintf(w, "%s%s", cursor, it.Label)
		if it.Badge > 0 {
			fprintf(w, " (%d)", it.Badge)
		}
		fprintln(w)
	}
	fprintln(w, "  Log Out")
}
