package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lightlens/internal/client/views"
)

// getStatus renders the prompt suffix: the signed-in username and the
// display mode.
func (a *App) getStatus() string {
	ctx := context.Background()
	s := ""
	if u, ok, err := a.store.Load(ctx); err == nil && ok {
		s = u.Username + " "
	}
	if dark, err := a.store.Preference(ctx); err == nil && dark {
		s += "dark"
	} else {
		s += "light"
	}
	return fmt.Sprintf(" (%s)", s)
}

func (a *App) Root(ctx context.Context) {
	fprintln(a.out, "Welcome to Light Lens CLI (type 'help' for commands)")

	if err := a.open(ctx, views.RouteHome); err != nil {
		a.log.Warn(ctx, "opening home failed", "error", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
