package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/lightlens/internal/client/models"
	"github.com/dmitrijs2005/lightlens/internal/logging"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-Id"

	// maxResponseSize bounds how much of a response body is read.
	maxResponseSize = 10 << 20

	assetPath = "/users/uploads/"
)

var ErrInvalidBaseURL = errors.New("invalid backend base URL")

type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient returns a client for the backend at baseURL
// (e.g. "http://localhost:8080"). A zero timeout means no client-side limit.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// AssetURL resolves an uploaded image reference against the backend's
// static upload path.
func (c *HTTPClient) AssetURL(image string) string {
	return models.AssetURL(c.baseURL+assetPath, image)
}

type request struct {
	op          string
	method      string
	path        string
	body        io.Reader
	contentType string
}

// do performs one round trip and returns the response body of a 2xx
// response. Every failure is an *Error.
func (c *HTTPClient) do(ctx context.Context, r request) ([]byte, error) {
	requestID := uuid.NewString()
	log := c.log.With("op", r.op, "method", r.method, "path", r.path, "request_id", requestID)

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, r.body)
	if err != nil {
		return nil, &Error{Op: r.op, Kind: KindUnknown, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err, "duration", time.Since(start))
		return nil, &Error{Op: r.op, Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		log.Warn(ctx, "reading response failed", "status", resp.StatusCode, "error", err)
		return nil, &Error{Op: r.op, Kind: KindTransport, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn(ctx, "request rejected", "status", resp.StatusCode, "duration", time.Since(start))
		e := &Error{Op: r.op, Kind: kindForStatus(resp.StatusCode), Status: resp.StatusCode}
		if msg := strings.TrimSpace(string(body)); msg != "" {
			e.Err = errors.New(msg)
		}
		return nil, e
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "duration", time.Since(start))
	return body, nil
}

func decode[T any](op string, body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, &Error{Op: op, Kind: KindUnknown, Err: fmt.Errorf("decode response: %w", err)}
	}
	return v, nil
}

// optionalUser decodes body as a user when it holds a JSON object. Empty
// or non-JSON acknowledgements yield nil.
func optionalUser(body []byte) *models.User {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var u models.User
	if err := json.Unmarshal(trimmed, &u); err != nil {
		return nil
	}
	return &u
}

func jsonBody(op string, v any) (io.Reader, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, &Error{Op: op, Kind: KindValidation, Err: err}
	}
	return bytes.NewReader(b), nil
}

// multipartBody encodes optional form fields followed by an optional file
// part named "file".
func multipartBody(fields map[string]string, file *models.Upload) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
		ct := file.MediaType()
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// Register creates an account. The backend may answer with the created
// user or with an empty body, in which case the result is nil.
func (c *HTTPClient) Register(ctx context.Context, draft models.UserDraft) (*models.User, error) {
	const op = "register"
	body, err := jsonBody(op, draft)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, request{op: op, method: http.MethodPost, path: "/users/register", body: body, contentType: "application/json"})
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(resp)) == 0 {
		return nil, nil
	}
	u, err := decode[models.User](op, resp)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	const op = "login"
	body, err := jsonBody(op, creds)
	if err != nil {
		return models.User{}, err
	}
	resp, err := c.do(ctx, request{op: op, method: http.MethodPost, path: "/users/login", body: body, contentType: "application/json"})
	if err != nil {
		return models.User{}, err
	}
	return decode[models.User](op, resp)
}

func (c *HTTPClient) GetUser(ctx context.Context, id int64) (models.User, error) {
	const op = "fetch profile"
	resp, err := c.do(ctx, request{op: op, method: http.MethodGet, path: fmt.Sprintf("/users/%d", id)})
	if err != nil {
		return models.User{}, err
	}
	return decode[models.User](op, resp)
}

// UpdateUser sends the edited fields as the "userDetails" part, plus the
// optional image as the "file" part.
func (c *HTTPClient) UpdateUser(ctx context.Context, id int64, draft models.UserDraft, image *models.Upload) (models.User, error) {
	const op = "update profile"
	details, err := json.Marshal(draft)
	if err != nil {
		return models.User{}, &Error{Op: op, Kind: KindValidation, Err: err}
	}
	body, ct, err := multipartBody(map[string]string{"userDetails": string(details)}, image)
	if err != nil {
		return models.User{}, &Error{Op: op, Kind: KindValidation, Err: err}
	}
	resp, err := c.do(ctx, request{op: op, method: http.MethodPut, path: fmt.Sprintf("/users/%d", id), body: body, contentType: ct})
	if err != nil {
		return models.User{}, err
	}
	return decode[models.User](op, resp)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int64) error {
	_, err := c.do(ctx, request{op: "delete profile", method: http.MethodDelete, path: fmt.Sprintf("/users/%d", id)})
	return err
}

func (c *HTTPClient) UploadProfileImage(ctx context.Context, id int64, image models.Upload) (models.User, error) {
	const op = "upload profile image"
	body, ct, err := multipartBody(nil, &image)
	if err != nil {
		return models.User{}, &Error{Op: op, Kind: KindValidation, Err: err}
	}
	resp, err := c.do(ctx, request{op: op, method: http.MethodPost, path: fmt.Sprintf("/users/%d/upload", id), body: body, contentType: ct})
	if err != nil {
		return models.User{}, err
	}
	return decode[models.User](op, resp)
}

func (c *HTTPClient) UploadPostImage(ctx context.Context, id int64, image models.Upload) error {
	const op = "upload post image"
	body, ct, err := multipartBody(nil, &image)
	if err != nil {
		return &Error{Op: op, Kind: KindValidation, Err: err}
	}
	_, err = c.do(ctx, request{op: op, method: http.MethodPost, path: fmt.Sprintf("/users/%d/posts/upload", id), body: body, contentType: ct})
	return err
}

// Follow acknowledges a follow. The returned user is non-nil only when the
// backend echoed the updated record.
func (c *HTTPClient) Follow(ctx context.Context, id int64) (*models.User, error) {
	resp, err := c.do(ctx, request{op: "follow", method: http.MethodPut, path: fmt.Sprintf("/users/%d/follow", id)})
	if err != nil {
		return nil, err
	}
	return optionalUser(resp), nil
}

// Unfollow mirrors Follow.
func (c *HTTPClient) Unfollow(ctx context.Context, id int64) (*models.User, error) {
	resp, err := c.do(ctx, request{op: "unfollow", method: http.MethodPut, path: fmt.Sprintf("/users/%d/unfollow", id)})
	if err != nil {
		return nil, err
	}
	return optionalUser(resp), nil
}

func (c *HTTPClient) GetUserSummary(ctx context.Context, id int64) (models.User, error) {
	const op = "fetch user summary"
	resp, err := c.do(ctx, request{op: op, method: http.MethodGet, path: fmt.Sprintf("/api/users/%d", id)})
	if err != nil {
		return models.User{}, err
	}
	return decode[models.User](op, resp)
}

func (c *HTTPClient) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	const op = "fetch goals"
	resp, err := c.do(ctx, request{op: op, method: http.MethodGet, path: fmt.Sprintf("/api/goals/user/%d", userID)})
	if err != nil {
		return nil, err
	}
	goals, err := decode[[]models.Goal](op, resp)
	if err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []models.Goal{}
	}
	return goals, nil
}

func (c *HTTPClient) CreateGoal(ctx context.Context, draft models.GoalDraft) (models.Goal, error) {
	const op = "create goal"
	body, err := jsonBody(op, draft)
	if err != nil {
		return models.Goal{}, err
	}
	resp, err := c.do(ctx, request{op: op, method: http.MethodPost, path: "/api/goals", body: body, contentType: "application/json"})
	if err != nil {
		return models.Goal{}, err
	}
	return decode[models.Goal](op, resp)
}

func (c *HTTPClient) UpdateGoal(ctx context.Context, id int64, draft models.GoalDraft) (models.Goal, error) {
	const op = "update goal"
	body, err := jsonBody(op, draft)
	if err != nil {
		return models.Goal{}, err
	}
	resp, err := c.do(ctx, request{op: op, method: http.MethodPut, path: fmt.Sprintf("/api/goals/%d", id), body: body, contentType: "application/json"})
	if err != nil {
		return models.Goal{}, err
	}
	return decode[models.Goal](op, resp)
}

func (c *HTTPClient) DeleteGoal(ctx context.Context, id int64) error {
	_, err := c.do(ctx, request{op: "delete goal", method: http.MethodDelete, path: fmt.Sprintf("/api/goals/%d", id)})
	return err
}
