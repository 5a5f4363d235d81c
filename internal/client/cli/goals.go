package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/lightlens/internal/client/models"
	"github.com/dmitrijs2005/lightlens/internal/client/views"
)

// Goals opens (or refreshes) the goals screen.
func (a *App) Goals(ctx context.Context) error {
	if a.screen == views.RouteGoals {
		return a.open(ctx, views.RouteGoals)
	}
	a.nav.Navigate(views.RouteGoals)
	return nil
}

func (a *App) onGoals(ctx context.Context) bool {
	a.ensure(ctx, views.RouteGoals)
	return a.screen == views.RouteGoals && a.goals.State() == views.StateReady
}

func (a *App) promptInt(prompt string) (int64, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return n, nil
}

// AddGoal prompts for a new goal.
func (a *App) AddGoal(ctx context.Context) error {
	if !a.onGoals(ctx) {
		return errNotLoggedIn
	}
	title, err := getSimpleText(a.reader, "Goal title", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	target, err := getSimpleText(a.reader, "Target date (YYYY-MM-DD, empty for none)", a.out)
	if err != nil {
		return err
	}
	progress, err := a.promptInt("Progress (0-100)")
	if err != nil {
		return err
	}

	draft := models.GoalDraft{
		Title:       title,
		Description: description,
		TargetDate:  target,
		Progress:    int(progress),
		Completed:   progress == 100,
	}
	if err := a.goals.Create(ctx, draft); err != nil {
		return err
	}
	renderGoals(a.out, a.goals)
	return nil
}

// Progress updates one goal's progress.
func (a *App) Progress(ctx context.Context) error {
	if !a.onGoals(ctx) {
		return errNotLoggedIn
	}
	id, err := a.promptInt("Goal id")
	if err != nil {
		return err
	}
	progress, err := a.promptInt("Progress (0-100)")
	if err != nil {
		return err
	}
	if err := a.goals.SetProgress(ctx, id, int(progress)); err != nil {
		return err
	}
	renderGoals(a.out, a.goals)
	return nil
}

// RemoveGoal deletes one goal.
func (a *App) RemoveGoal(ctx context.Context) error {
	if !a.onGoals(ctx) {
		return errNotLoggedIn
	}
	id, err := a.promptInt("Goal id")
	if err != nil {
		return err
	}
	if err := a.goals.Delete(ctx, id); err != nil {
		return err
	}
	renderGoals(a.out, a.goals)
	return nil
}
