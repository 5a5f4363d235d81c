package views

import (
	"context"
	"errors"
	"slices"
	"strconv"

	"github.com/dmitrijs2005/lightlens/internal/client/models"
)

const (
	msgGoalsLoadFailed  = "Error loading goals"
	msgGoalCreated      = "Goal created successfully"
	msgGoalCreateFailed = "Error creating goal"
	msgGoalUpdated      = "Goal updated successfully"
	msgGoalUpdateFailed = "Error updating goal"
	msgGoalDeleted      = "Goal deleted successfully"
	msgGoalDeleteFailed = "Error deleting goal"
)

var ErrGoalNotFound = errors.New("goal not found")

// Goals lists and edits the signed-in user's goals.
type Goals struct {
	lifecycle
	deps Deps

	user  models.User
	goals []models.Goal
}

func NewGoals(d Deps) *Goals {
	return &Goals{deps: d.withDefaults()}
}

// Mount redirects to login without a session, otherwise loads the goals.
func (g *Goals) Mount(ctx context.Context) error {
	g.mount(ctx)

	u, ok, err := g.deps.Session.Load(ctx)
	if err != nil {
		g.settle()
		return err
	}
	if !ok {
		g.redirect()
		g.deps.Nav.Navigate(RouteLogin)
		return nil
	}
	g.mu.Lock()
	g.user = u
	g.mu.Unlock()

	return g.Refresh(ctx)
}

// Refresh reloads the list from the backend.
func (g *Goals) Refresh(ctx context.Context) error {
	c, err := g.begin(ctx)
	if err != nil {
		return err
	}
	id := g.userID()

	list, err := g.deps.Client.ListGoals(c.ctx, id)
	if err != nil {
		if g.finish(c, nil) {
			g.deps.Log.Error(ctx, "fetch goals failed", "user_id", id, "error", err)
			g.deps.Notify.Notify(failure(msgGoalsLoadFailed))
		}
		return err
	}
	g.finish(c, func() { g.goals = list })
	return nil
}

func (g *Goals) userID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.user.ID
}

func (g *Goals) List() []models.Goal {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.goals)
}

// Completed counts goals at 100% progress.
func (g *Goals) Completed() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return models.CompletedGoals(g.goals)
}

func (g *Goals) find(id int64) (models.Goal, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, goal := range g.goals {
		if goal.ID == id {
			return goal, true
		}
	}
	return models.Goal{}, false
}

// Create adds a goal owned by the signed-in user.
func (g *Goals) Create(ctx context.Context, draft models.GoalDraft) error {
	c, err := g.begin(ctx)
	if err != nil {
		return err
	}
	draft.UserID = strconv.FormatInt(g.userID(), 10)

	if err := draft.Validate(); err != nil {
		if g.finish(c, nil) {
			g.deps.Notify.Notify(failure(msgGoalCreateFailed))
		}
		return err
	}

	goal, err := g.deps.Client.CreateGoal(c.ctx, draft)
	if err != nil {
		if g.finish(c, nil) {
			g.deps.Log.Error(ctx, "create goal failed", "title", draft.Title, "error", err)
			g.deps.Notify.Notify(failure(msgGoalCreateFailed))
		}
		return err
	}

	if g.finish(c, func() { g.goals = append(g.goals, goal) }) {
		g.deps.Notify.Notify(success(msgGoalCreated))
	}
	return nil
}

// SetProgress updates one goal's progress, marking it completed at 100.
func (g *Goals) SetProgress(ctx context.Context, id int64, progress int) error {
	goal, ok := g.find(id)
	if !ok {
		return ErrGoalNotFound
	}
	draft := goal.Draft()
	draft.Progress = progress
	draft.Completed = progress == 100
	return g.Update(ctx, id, draft)
}

// Update replaces a goal with the server's version of draft.
func (g *Goals) Update(ctx context.Context, id int64, draft models.GoalDraft) error {
	c, err := g.begin(ctx)
	if err != nil {
		return err
	}

	if err := draft.Validate(); err != nil {
		if g.finish(c, nil) {
			g.deps.Notify.Notify(failure(msgGoalUpdateFailed))
		}
		return err
	}

	goal, err := g.deps.Client.UpdateGoal(c.ctx, id, draft)
	if err != nil {
		if g.finish(c, nil) {
			g.deps.Log.Error(ctx, "update goal failed", "goal_id", id, "error", err)
			g.deps.Notify.Notify(failure(msgGoalUpdateFailed))
		}
		return err
	}

	ok := g.finish(c, func() {
		for i := range g.goals {
			if g.goals[i].ID == id {
				g.goals[i] = goal
				return
			}
		}
		g.goals = append(g.goals, goal)
	})
	if ok {
		g.deps.Notify.Notify(success(msgGoalUpdated))
	}
	return nil
}

func (g *Goals) Delete(ctx context.Context, id int64) error {
	c, err := g.begin(ctx)
	if err != nil {
		return err
	}

	if err := g.deps.Client.DeleteGoal(c.ctx, id); err != nil {
		if g.finish(c, nil) {
			g.deps.Log.Error(ctx, "delete goal failed", "goal_id", id, "error", err)
			g.deps.Notify.Notify(failure(msgGoalDeleteFailed))
		}
		return err
	}

	ok := g.finish(c, func() {
		g.goals = slices.DeleteFunc(g.goals, func(goal models.Goal) bool { return goal.ID == id })
	})
	if ok {
		g.deps.Notify.Notify(success(msgGoalDeleted))
	}
	return nil
}
