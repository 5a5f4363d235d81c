package views

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/dmitrijs2005/lightlens/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatID(id int64) string { return strconv.FormatInt(id, 10) }

func TestGoals_RedirectsWithoutSession(t *testing.T) {
	e := newEnv(t)
	g := NewGoals(e.deps())

	require.NoError(t, g.Mount(context.Background()))
	assert.Equal(t, StateUnauthenticated, g.State())
	assert.Equal(t, RouteLogin, e.nav.Current())
	assert.Zero(t, e.backend.TotalCalls())

	require.ErrorIs(t, g.Create(context.Background(), models.GoalDraft{Title: "x"}), ErrUnauthenticated)
}

func TestGoals_CreateProgressDelete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.signIn(t, models.User{Username: "ada"})
	seedGoals(e, u, 20)

	g := NewGoals(e.deps())
	require.NoError(t, g.Mount(ctx))
	defer g.Unmount()
	require.Len(t, g.List(), 1)
	assert.Zero(t, g.Completed())

	require.NoError(t, g.Create(ctx, models.GoalDraft{Title: "Portfolio", Progress: 50, TargetDate: "2026-12-31"}))
	list := g.List()
	require.Len(t, list, 2)
	created := list[1]
	assert.Equal(t, formatID(u.ID), created.UserID)
	assert.Equal(t, toastOK(msgGoalCreated), e.lastToast(t))

	require.NoError(t, g.SetProgress(ctx, created.ID, 100))
	assert.Equal(t, 1, g.Completed())
	updated := g.List()[1]
	assert.True(t, updated.Completed)
	assert.Equal(t, "Portfolio", updated.Title)
	assert.Equal(t, toastOK(msgGoalUpdated), e.lastToast(t))

	require.NoError(t, g.Delete(ctx, created.ID))
	require.Len(t, g.List(), 1)
	assert.Zero(t, g.Completed())
	assert.Equal(t, toastOK(msgGoalDeleted), e.lastToast(t))

	require.NoError(t, g.Refresh(ctx))
	assert.Len(t, g.List(), 1)
}

func TestGoals_ValidationMakesNoCall(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.signIn(t, models.User{Username: "ada"})

	g := NewGoals(e.deps())
	require.NoError(t, g.Mount(ctx))
	defer g.Unmount()

	err := g.Create(ctx, models.GoalDraft{Title: "", Progress: 10})
	var fe *models.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "title", fe.Field)
	assert.Zero(t, e.backend.Calls("create goal"))
	assert.Equal(t, toastErr(msgGoalCreateFailed), e.lastToast(t))

	require.ErrorIs(t, g.SetProgress(ctx, 999, 10), ErrGoalNotFound)
}

func TestGoals_FailuresKeepList(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.signIn(t, models.User{Username: "ada"})
	seedGoals(e, u, 30)

	g := NewGoals(e.deps())
	require.NoError(t, g.Mount(ctx))
	defer g.Unmount()
	before := g.List()

	e.backend.Fail("update goal", http.StatusInternalServerError)
	require.Error(t, g.SetProgress(ctx, before[0].ID, 100))
	assert.Equal(t, before, g.List())
	assert.Equal(t, toastErr(msgGoalUpdateFailed), e.lastToast(t))

	e.backend.Fail("delete goal", http.StatusInternalServerError)
	require.Error(t, g.Delete(ctx, before[0].ID))
	assert.Equal(t, before, g.List())
	assert.Equal(t, toastErr(msgGoalDeleteFailed), e.lastToast(t))

	e.backend.Fail("list goals", http.StatusInternalServerError)
	require.Error(t, g.Refresh(ctx))
	assert.Equal(t, before, g.List())
	assert.Equal(t, toastErr(msgGoalsLoadFailed), e.lastToast(t))
}
