// Package fakebackend is an in-memory stand-in for the Light Lens REST
// backend, routed with gorilla/mux. Tests start it with httptest; the CLI
// can run against it with the -fake flag for local demos.
package fakebackend

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/lightlens/internal/client/models"
	"github.com/gorilla/mux"
)

// Upload records one received multipart file.
type Upload struct {
	Route       string
	Filename    string
	ContentType string
	Size        int
	Details     string
}

type Backend struct {
	mu       sync.Mutex
	users    map[int64]*account
	goals    map[int64]models.Goal
	nextUser int64
	nextGoal int64
	calls    map[string]int
	failures map[string]int
	uploads  []Upload
	posts    map[int64]int

	echoFollow bool

	router *mux.Router
}

type account struct {
	user     models.User
	password string
}

func New() *Backend {
	b := &Backend{
		users:      make(map[int64]*account),
		goals:      make(map[int64]models.Goal),
		calls:      make(map[string]int),
		failures:   make(map[string]int),
		posts:      make(map[int64]int),
		echoFollow: true,
	}
	b.router = b.routes()
	return b
}

// Start serves b on an httptest server closed at test cleanup.
func Start(t interface{ Cleanup(func()) }) (*Backend, *httptest.Server) {
	b := New()
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)
	return b, srv
}

func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.router.ServeHTTP(w, r)
}

func (b *Backend) routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/users/register", b.handle("register", b.register)).Methods(http.MethodPost)
	r.HandleFunc("/users/login", b.handle("login", b.login)).Methods(http.MethodPost)
	r.HandleFunc("/users/{id:[0-9]+}", b.handle("get user", b.getUser)).Methods(http.MethodGet)
	r.HandleFunc("/users/{id:[0-9]+}", b.handle("update user", b.updateUser)).Methods(http.MethodPut)
	r.HandleFunc("/users/{id:[0-9]+}", b.handle("delete user", b.deleteUser)).Methods(http.MethodDelete)
	r.HandleFunc("/users/{id:[0-9]+}/upload", b.handle("upload image", b.uploadImage)).Methods(http.MethodPost)
	r.HandleFunc("/users/{id:[0-9]+}/posts/upload", b.handle("upload post", b.uploadPost)).Methods(http.MethodPost)
	r.HandleFunc("/users/{id:[0-9]+}/follow", b.handle("follow", b.follow(1))).Methods(http.MethodPut)
	r.HandleFunc("/users/{id:[0-9]+}/unfollow", b.handle("unfollow", b.follow(-1))).Methods(http.MethodPut)
	r.HandleFunc("/api/users/{id:[0-9]+}", b.handle("user summary", b.getUser)).Methods(http.MethodGet)
	r.HandleFunc("/api/goals/user/{id}", b.handle("list goals", b.listGoals)).Methods(http.MethodGet)
	r.HandleFunc("/api/goals", b.handle("create goal", b.createGoal)).Methods(http.MethodPost)
	r.HandleFunc("/api/goals/{id:[0-9]+}", b.handle("update goal", b.updateGoal)).Methods(http.MethodPut)
	r.HandleFunc("/api/goals/{id:[0-9]+}", b.handle("delete goal", b.deleteGoal)).Methods(http.MethodDelete)

	return r
}

// handle counts the call under route and applies any injected failure.
func (b *Backend) handle(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls[route]++
		status := b.failures[route]
		b.mu.Unlock()

		if status != 0 {
			http.Error(w, "injected failure", status)
			return
		}
		h(w, r)
	}
}

// Fail makes every later call to route answer with status. Zero clears it.
func (b *Backend) Fail(route string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if status == 0 {
		delete(b.failures, route)
		return
	}
	b.failures[route] = status
}

// Calls returns how many requests route has received.
func (b *Backend) Calls(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[route]
}

// TotalCalls returns the number of requests received on any route.
func (b *Backend) TotalCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		n += c
	}
	return n
}

func (b *Backend) Uploads() []Upload {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Upload(nil), b.uploads...)
}

// Seed stores u with the given password and returns it with its id set.
func (b *Backend) Seed(u models.User, password string) models.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextUser++
	u.ID = b.nextUser
	if u.CreatedAt == "" {
		u.CreatedAt = models.Date(time.Now().UTC().Format(time.RFC3339))
	}
	b.users[u.ID] = &account{user: u, password: password}
	return u
}

// SeedGoal stores g and returns it with its id set.
func (b *Backend) SeedGoal(g models.Goal) models.Goal {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextGoal++
	g.ID = b.nextGoal
	b.goals[g.ID] = g
	return g
}

// User returns the stored record for id.
func (b *Backend) User(id int64) (models.User, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.users[id]
	if !ok {
		return models.User{}, false
	}
	return a.user, true
}

// Posts returns how many post images id has uploaded.
func (b *Backend) Posts(id int64) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.posts[id]
}

// EchoFollow controls whether follow/unfollow answer with the updated
// user (the default) or a bare acknowledgement.
func (b *Backend) EchoFollow(echo bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.echoFollow = echo
}

// SetFollowers overwrites the stored follower count, emulating other
// clients following concurrently.
func (b *Backend) SetFollowers(id int64, n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if a, ok := b.users[id]; ok {
		a.user.Followers = n
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var d models.UserDraft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	u := b.Seed(models.User{
		Username:    d.Username,
		Email:       d.Email,
		Gender:      d.Gender,
		Mobile:      d.Mobile,
		DateOfBirth: models.Date(d.DateOfBirth),
		Description: d.Description,
	}, d.Password)
	writeJSON(w, http.StatusOK, u)
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var c models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, a := range b.users {
		if a.user.Username == c.Username && a.password == c.Password {
			a.user.LastLogin = models.Date(time.Now().UTC().Format(time.RFC3339))
			writeJSON(w, http.StatusOK, a.user)
			return
		}
	}
	http.Error(w, "Invalid credentials", http.StatusUnauthorized)
}

func (b *Backend) getUser(w http.ResponseWriter, r *http.Request) {
	u, ok := b.User(pathID(r))
	if !ok {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func readFile(r *http.Request) (*Upload, error) {
	f, h, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &Upload{Filename: h.Filename, ContentType: h.Header.Get("Content-Type"), Size: len(data)}, nil
}

func (b *Backend) updateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	details := r.FormValue("userDetails")
	var d models.UserDraft
	if err := json.Unmarshal([]byte(details), &d); err != nil {
		http.Error(w, "Error parsing userDetails", http.StatusBadRequest)
		return
	}

	var up *Upload
	if _, ok := r.MultipartForm.File["file"]; ok {
		var err error
		if up, err = readFile(r); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	id := pathID(r)
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.users[id]
	if !ok {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	a.user.Username = d.Username
	a.user.Email = d.Email
	a.user.Gender = d.Gender
	a.user.Mobile = d.Mobile
	a.user.DateOfBirth = models.Date(d.DateOfBirth)
	a.user.Description = d.Description
	if d.Password != "" {
		a.password = d.Password
	}
	if up != nil {
		a.user.Image = fmt.Sprintf("%d_%s", time.Now().UnixMilli(), up.Filename)
		up.Route = "update user"
		up.Details = details
		b.uploads = append(b.uploads, *up)
	}
	writeJSON(w, http.StatusOK, a.user)
}

func (b *Backend) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.users[id]; !ok {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	delete(b.users, id)
	fmt.Fprintf(w, "User with ID %d deleted successfully.", id)
}

func (b *Backend) uploadImage(w http.ResponseWriter, r *http.Request) {
	up, err := readFile(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := pathID(r)
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.users[id]
	if !ok {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	a.user.Image = fmt.Sprintf("%d_%s", time.Now().UnixMilli(), up.Filename)
	up.Route = "upload image"
	b.uploads = append(b.uploads, *up)
	writeJSON(w, http.StatusOK, a.user)
}

func (b *Backend) uploadPost(w http.ResponseWriter, r *http.Request) {
	up, err := readFile(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := pathID(r)
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.users[id]; !ok {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	up.Route = "upload post"
	b.uploads = append(b.uploads, *up)
	b.posts[id]++
	w.WriteHeader(http.StatusOK)
}

func (b *Backend) follow(delta int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)
		b.mu.Lock()
		defer b.mu.Unlock()
		a, ok := b.users[id]
		if !ok {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		a.user.Followers += delta
		if a.user.Followers < 0 {
			a.user.Followers = 0
		}
		if b.echoFollow {
			writeJSON(w, http.StatusOK, a.user)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func (b *Backend) listGoals(w http.ResponseWriter, r *http.Request) {
	owner := mux.Vars(r)["id"]
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Goal, 0)
	for id := int64(1); id <= b.nextGoal; id++ {
		if g, ok := b.goals[id]; ok && g.UserID == owner {
			out = append(out, g)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) createGoal(w http.ResponseWriter, r *http.Request) {
	var d models.GoalDraft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	g := b.SeedGoal(goalFromDraft(d))
	writeJSON(w, http.StatusOK, g)
}

func (b *Backend) updateGoal(w http.ResponseWriter, r *http.Request) {
	var d models.GoalDraft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := pathID(r)
	b.mu.Lock()
	defer b.mu.Unlock()
	old, ok := b.goals[id]
	if !ok {
		http.Error(w, "goal not found", http.StatusNotFound)
		return
	}
	g := goalFromDraft(d)
	g.ID = id
	g.UserID = old.UserID
	g.CreatedAt = old.CreatedAt
	b.goals[id] = g
	writeJSON(w, http.StatusOK, g)
}

func (b *Backend) deleteGoal(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.goals, pathID(r))
	w.WriteHeader(http.StatusOK)
}

func goalFromDraft(d models.GoalDraft) models.Goal {
	return models.Goal{
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		Progress:    d.Progress,
		TargetDate:  models.Date(d.TargetDate),
		Completed:   d.Completed || d.Progress == 100,
		CreatedAt:   models.Date(time.Now().UTC().Format(time.RFC3339)),
	}
}
