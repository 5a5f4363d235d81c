package views

import "sync"

// Route names a screen of the client.
type Route string

const (
	RouteHome     Route = "/"
	RouteRegister Route = "/register"
	RouteLogin    Route = "/login"
	RouteProfile  Route = "/profile"
	RouteGoals    Route = "/goals"

	RouteSearch        Route = "/search"
	RouteExplore       Route = "/explore"
	RouteReels         Route = "/reels"
	RouteMessages      Route = "/messages"
	RouteNotifications Route = "/notifications"
	RouteCreate        Route = "/create"
	RouteSettings      Route = "/settings"
)

type Navigator interface {
	Navigate(r Route)
}

type discardNavigator struct{}

func (discardNavigator) Navigate(Route) {}

// History is a Navigator that remembers every navigation.
type History struct {
	mu     sync.Mutex
	routes []Route
}

// NewHistory starts at the given route.
func NewHistory(start Route) *History {
	return &History{routes: []Route{start}}
}

func (h *History) Navigate(r Route) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.routes = append(h.routes, r)
}

// Current returns the latest route, RouteHome for an empty history.
func (h *History) Current() Route {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.routes) == 0 {
		return RouteHome
	}
	return h.routes[len(h.routes)-1]
}

func (h *History) Routes() []Route {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Route(nil), h.routes...)
}
