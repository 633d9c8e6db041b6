// Package api implements the HTTP client for the task backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"taskdeck/internal/task"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	httpTimeoutEnvKey  = "TASKDECK_HTTP_TIMEOUT"
)

// Client is a simple HTTP client for the task backend.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewClient creates a client for the backend at baseURL. The token, when
// non-empty, is sent as a bearer Authorization header on every request.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: httpTimeoutFromEnv()},
		token:   strings.TrimSpace(token),
	}
}

// ListTasks fetches every task visible to the caller.
func (c *Client) ListTasks(ctx context.Context) ([]task.Task, error) {
	var resp []task.Task
	err := c.do(ctx, http.MethodGet, "/tasks", nil, &resp)
	return resp, err
}

// GetTask fetches a single task by id.
func (c *Client) GetTask(ctx context.Context, id task.ID) (task.Task, error) {
	var resp task.Task
	err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(string(id)), nil, &resp)
	return resp, err
}

// ListComments fetches the comments on a task.
func (c *Client) ListComments(ctx context.Context, id task.ID) ([]task.Comment, error) {
	var resp []task.Comment
	err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(string(id))+"/comments", nil, &resp)
	return resp, err
}

// ListHistory fetches the audit history of a task.
func (c *Client) ListHistory(ctx context.Context, id task.ID) ([]task.HistoryEntry, error) {
	var resp []task.HistoryEntry
	err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(string(id))+"/history", nil, &resp)
	return resp, err
}

// ListUsers fetches the user directory. The backend routes this collection
// with a trailing slash.
func (c *Client) ListUsers(ctx context.Context) ([]task.User, error) {
	var resp []task.User
	err := c.do(ctx, http.MethodGet, "/users/", nil, &resp)
	return resp, err
}

// UpdateTask applies a partial update to a task.
func (c *Client) UpdateTask(ctx context.Context, id task.ID, req TaskUpdateRequest) (task.Task, error) {
	var resp task.Task
	err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(string(id)), req, &resp)
	return resp, err
}

// SubmitReview records a review on a completed task.
func (c *Client) SubmitReview(ctx context.Context, id task.ID, req ReviewRequest) (task.Task, error) {
	var resp task.Task
	err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(string(id))+"/review", req, &resp)
	return resp, err
}

// CreateComment posts a comment on a task.
func (c *Client) CreateComment(ctx context.Context, id task.ID, req CommentCreateRequest) (task.Comment, error) {
	var resp task.Comment
	err := c.do(ctx, http.MethodPost, "/tasks/"+url.PathEscape(string(id))+"/comments", req, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func httpTimeoutFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv(httpTimeoutEnvKey))
	if raw == "" {
		return defaultHTTPTimeout
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultHTTPTimeout
}
