// Package client is the typed HTTP client for the wisht API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dori/wisht/internal/model"
)

// DefaultServerURL is used when WISHT_SERVER is not set
const DefaultServerURL = "http://localhost:5000"

// ErrNotFound is returned when a mutation targets an id the server no
// longer has
var ErrNotFound = errors.New("not found")

// APIError carries a non-2xx server response
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// Scope addresses one list. The zero value addresses the default list,
// the pre-share context; a non-empty ShareID addresses a shared list.
// Every call takes the scope explicitly so there is no ambient list.
type Scope struct {
	ShareID string
}

func (s Scope) basePath() string {
	if s.ShareID == "" {
		return "/api"
	}
	return "/api/lists/" + url.PathEscape(s.ShareID)
}

// Client talks to a wisht server
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given server base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
	}
}

// do issues a single request, no retries. A failed call is the caller's
// problem to re-trigger.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 300 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &APIError{Status: resp.StatusCode, Message: payload.Error}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Categories fetches the global category label set
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var labels []string
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// CreateList creates a fresh shared list and returns its share identifier
func (c *Client) CreateList(ctx context.Context) (string, error) {
	var resp struct {
		ShareID string `json:"share_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/lists", struct{}{}, &resp); err != nil {
		return "", err
	}
	return resp.ShareID, nil
}

// Pending fetches the pending items of a list
func (c *Client) Pending(ctx context.Context, scope Scope) ([]model.Item, error) {
	var items []model.Item
	if err := c.do(ctx, http.MethodGet, scope.basePath()+"/todos", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Done fetches the completed items of a list
func (c *Client) Done(ctx context.Context, scope Scope) ([]model.Item, error) {
	var items []model.Item
	if err := c.do(ctx, http.MethodGet, scope.basePath()+"/done", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create adds a pending item and returns the server-assigned record
func (c *Client) Create(ctx context.Context, scope Scope, title, cat string) (*model.Item, error) {
	var item model.Item
	body := map[string]string{"title": title, "category": cat}
	if err := c.do(ctx, http.MethodPost, scope.basePath()+"/todos", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update edits a pending item's title and category
func (c *Client) Update(ctx context.Context, scope Scope, id, title, cat string) (*model.Item, error) {
	var item model.Item
	body := map[string]string{"title": title, "category": cat}
	path := scope.basePath() + "/todos/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Complete moves a pending item to done with an initial comment. The
// returned record carries the server-assigned completion timestamp.
func (c *Client) Complete(ctx context.Context, scope Scope, id, comment string) (*model.Item, error) {
	var item model.Item
	body := map[string]string{"comment": comment}
	path := scope.basePath() + "/todos/" + url.PathEscape(id) + "/complete"
	if err := c.do(ctx, http.MethodPost, path, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateComment replaces a done item's completion comment
func (c *Client) UpdateComment(ctx context.Context, scope Scope, id, comment string) (*model.Item, error) {
	var item model.Item
	body := map[string]string{"comment": comment}
	path := scope.basePath() + "/done/" + url.PathEscape(id) + "/comment"
	if err := c.do(ctx, http.MethodPut, path, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
