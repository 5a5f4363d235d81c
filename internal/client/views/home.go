package views

import "context"

type Photographer struct {
	Name      string
	Initial   string
	Specialty string
	Followers string
}

type Photo struct {
	Title    string
	Likes    int
	Comments int
}

type Feature struct {
	Title       string
	Description string
}

var (
	featuredPhotographers = []Photographer{
		{Name: "Alex Morgan", Initial: "A", Specialty: "Portrait", Followers: "12.4k"},
		{Name: "Jamie Chen", Initial: "J", Specialty: "Landscape", Followers: "8.7k"},
		{Name: "Sam Wilson", Initial: "S", Specialty: "Street", Followers: "15.2k"},
	}

	trendingPhotos = []Photo{
		{Title: "Golden Hour", Likes: 1243, Comments: 87},
		{Title: "Urban Jungle", Likes: 892, Comments: 45},
		{Title: "Mountain Peak", Likes: 1567, Comments: 112},
	}

	features = []Feature{
		{Title: "Powerful Portfolio", Description: "Showcase your work in stunning, customizable galleries that highlight your unique style."},
		{Title: "Engaged Community", Description: "Connect with millions of photography enthusiasts and professionals worldwide."},
		{Title: "Advanced Tools", Description: "Our professional-grade tools help you organize, edit, and share your work effortlessly."},
	}
)

// Home is the landing page. Its content is static.
type Home struct {
	lifecycle
	deps Deps

	darkMode bool
	signedIn bool
}

func NewHome(d Deps) *Home {
	return &Home{deps: d.withDefaults()}
}

// Mount reads the dark-mode preference and whether someone is signed in.
// Home makes no backend calls.
func (h *Home) Mount(ctx context.Context) error {
	h.mount(ctx)
	defer h.settle()

	dark, err := h.deps.Session.Preference(ctx)
	if err != nil {
		return err
	}
	_, ok, err := h.deps.Session.Load(ctx)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.darkMode, h.signedIn = dark, ok
	h.mu.Unlock()
	return nil
}

func (h *Home) Photographers() []Photographer {
	return append([]Photographer(nil), featuredPhotographers...)
}

func (h *Home) TrendingPhotos() []Photo {
	return append([]Photo(nil), trendingPhotos...)
}

func (h *Home) Features() []Feature {
	return append([]Feature(nil), features...)
}

func (h *Home) DarkMode() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.darkMode
}

func (h *Home) SignedIn() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.signedIn
}

// GetStarted goes to the profile when a session exists, else to login.
func (h *Home) GetStarted(ctx context.Context) error {
	_, ok, err := h.deps.Session.Load(ctx)
	if err != nil {
		return err
	}
	if ok {
		h.deps.Nav.Navigate(RouteProfile)
	} else {
		h.deps.Nav.Navigate(RouteLogin)
	}
	return nil
}
