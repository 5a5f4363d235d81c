package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/lightlens/internal/client/client"
	"github.com/dmitrijs2005/lightlens/internal/client/config"
	repo "github.com/dmitrijs2005/lightlens/internal/client/repositories/session"
	"github.com/dmitrijs2005/lightlens/internal/client/session"
	"github.com/dmitrijs2005/lightlens/internal/client/views"
	"github.com/dmitrijs2005/lightlens/internal/logging"
)

// maxRedirects bounds how many navigations one command may trigger.
const maxRedirects = 3

type App struct {
	config *config.Config
	log    logging.Logger
	store  *session.Store
	nav    *views.History
	toasts *views.Toasts
	closer io.Closer

	home     *views.Home
	register *views.Register
	login    *views.Login
	profile  *views.Profile
	sidebar  *views.Sidebar
	goals    *views.Goals

	screen views.Route
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the session database and the backend client described by c.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.SessionDBPath, "error", err)
		return nil, err
	}

	api, err := client.NewHTTPClient(c.BackendURL, c.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewStore(repo.NewSQLiteRepository(db))
	a := newApp(api, store, log, bufio.NewReader(os.Stdin), os.Stdout)
	a.config = c
	a.closer = db
	return a, nil
}

func newApp(api client.Client, store *session.Store, log logging.Logger, in *bufio.Reader, out io.Writer) *App {
	a := &App{
		log:    log,
		store:  store,
		nav:    views.NewHistory(views.RouteHome),
		toasts: &views.Toasts{},
		reader: in,
		out:    out,
	}
	deps := views.Deps{Client: api, Session: store, Nav: a.nav, Notify: a.toasts, Log: log}
	a.home = views.NewHome(deps)
	a.register = views.NewRegister(deps)
	a.login = views.NewLogin(deps)
	a.profile = views.NewProfile(deps)
	a.sidebar = views.NewSidebar(deps)
	a.goals = views.NewGoals(deps)
	return a
}

// Run shows the home screen and serves commands until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() error {
	a.unmountAll()
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *App) isLoggedIn() bool {
	_, ok, err := a.store.Load(context.Background())
	return err == nil && ok
}

func (a *App) unmountAll() {
	a.home.Unmount()
	a.register.Unmount()
	a.login.Unmount()
	a.profile.Unmount()
	a.sidebar.Unmount()
	a.goals.Unmount()
}

// open mounts the controller behind r, unmounting the others, and renders
// it.
func (a *App) open(ctx context.Context, r views.Route) error {
	a.unmountAll()
	a.screen = r

	var err error
	switch r {
	case views.RouteHome:
		if err = a.home.Mount(ctx); err == nil {
			renderHome(a.out, a.home)
		}
	case views.RouteRegister:
		if err = a.register.Mount(ctx); err == nil {
			fprintln(a.out, "Create an account: type 'register'.")
		}
	case views.RouteLogin:
		if err = a.login.Mount(ctx); err == nil {
			fprintln(a.out, "Please log in: type 'login' (or 'register' to sign up).")
		}
	case views.RouteProfile:
		err = a.profile.Mount(ctx)
		if a.profile.Lifecycle() != views.StateUnauthenticated {
			renderProfile(a.out, a.profile.State())
		}
	case views.RouteGoals:
		err = a.goals.Mount(ctx)
		if a.goals.State() != views.StateUnauthenticated {
			renderGoals(a.out, a.goals)
		}
	default:
		fprintln(a.out, "Not available yet:", string(r))
	}
	return err
}

// afterCommand prints the notifications raised by the last command and
// follows any navigation it caused.
func (a *App) afterCommand(ctx context.Context) {
	for i := 0; i < maxRedirects; i++ {
		renderToasts(a.out, a.toasts.Drain())
		next := a.nav.Current()
		if next == a.screen {
			return
		}
		if err := a.open(ctx, next); err != nil {
			a.log.Debug(ctx, "opening screen failed", "route", string(next), "error", err)
		}
	}
	renderToasts(a.out, a.toasts.Drain())
}

// ensure makes r the mounted screen, opening it when needed.
func (a *App) ensure(ctx context.Context, r views.Route) {
	if a.screen == r {
		return
	}
	a.nav.Navigate(r)
	a.afterCommand(ctx)
}
