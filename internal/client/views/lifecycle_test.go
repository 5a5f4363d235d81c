package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle_BeginRequiresMount(t *testing.T) {
	var l lifecycle

	_, err := l.begin(context.Background())
	require.ErrorIs(t, err, ErrNotMounted)
	assert.Equal(t, StateUnmounted, l.State())
}

func TestLifecycle_UnmountCancelsEveryInflightCall(t *testing.T) {
	var l lifecycle
	l.mount(context.Background())

	calls := make([]*call, 3)
	for i := range calls {
		c, err := l.begin(context.Background())
		require.NoError(t, err)
		calls[i] = c
	}
	require.True(t, l.finish(calls[0], nil))

	l.Unmount()
	for i, c := range calls {
		assert.ErrorIs(t, c.ctx.Err(), context.Canceled, "call %d", i)
	}
	assert.Empty(t, l.calls)
}

func TestLifecycle_BusyUntilFinish(t *testing.T) {
	var l lifecycle
	l.mount(context.Background())

	c, err := l.begin(context.Background())
	require.NoError(t, err)
	assert.True(t, l.Busy())
	assert.Equal(t, StateLoading, l.State())

	wrote := false
	require.True(t, l.finish(c, func() { wrote = true }))
	assert.True(t, wrote)
	assert.False(t, l.Busy())
	assert.Equal(t, StateReady, l.State())
	assert.Error(t, c.ctx.Err(), "call context is released after finish")
}

func TestLifecycle_UnmountDropsLateWrites(t *testing.T) {
	var l lifecycle
	l.mount(context.Background())

	c, err := l.begin(context.Background())
	require.NoError(t, err)

	l.Unmount()
	require.ErrorIs(t, c.ctx.Err(), context.Canceled, "unmount aborts the request")

	wrote := false
	assert.False(t, l.update(c, func() { wrote = true }))
	assert.False(t, l.finish(c, func() { wrote = true }))
	assert.False(t, wrote)
	assert.False(t, l.Busy())
	assert.Equal(t, StateUnmounted, l.State())
}

func TestLifecycle_RemountInvalidatesOldCalls(t *testing.T) {
	var l lifecycle
	l.mount(context.Background())
	old, err := l.begin(context.Background())
	require.NoError(t, err)

	l.mount(context.Background())
	require.ErrorIs(t, old.ctx.Err(), context.Canceled, "remount aborts the old request")
	assert.False(t, l.finish(old, func() { t.Fatal("stale write applied") }))
}

func TestLifecycle_CallerContextCancelsCall(t *testing.T) {
	var l lifecycle
	l.mount(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	c, err := l.begin(ctx)
	require.NoError(t, err)
	cancel()

	require.ErrorIs(t, c.ctx.Err(), context.Canceled)
	assert.True(t, l.finish(c, nil), "mount is still live")
}

func TestLifecycle_RedirectIsTerminal(t *testing.T) {
	var l lifecycle
	l.mount(context.Background())
	l.redirect()

	_, err := l.begin(context.Background())
	require.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, StateUnauthenticated, l.State())
}

func TestStateAndSeverityStrings(t *testing.T) {
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "unauthenticated", StateUnauthenticated.String())
	assert.Equal(t, "unmounted", StateUnmounted.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "success", SeveritySuccess.String())
	assert.Equal(t, "info", SeverityInfo.String())
}

func TestToastsAndHistory(t *testing.T) {
	var toasts Toasts
	_, ok := toasts.Last()
	assert.False(t, ok)

	toasts.Notify(success("a"))
	toasts.Notify(failure("b"))
	assert.Len(t, toasts.All(), 2)
	last, ok := toasts.Last()
	require.True(t, ok)
	assert.Equal(t, Toast{Message: "b", Severity: SeverityError}, last)
	assert.Len(t, toasts.Drain(), 2)
	assert.Empty(t, toasts.All())

	h := NewHistory(RouteHome)
	h.Navigate(RouteLogin)
	assert.Equal(t, RouteLogin, h.Current())
	assert.Equal(t, []Route{RouteHome, RouteLogin}, h.Routes())
	assert.Equal(t, RouteHome, (&History{}).Current())
}
