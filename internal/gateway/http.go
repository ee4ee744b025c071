package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"taskdeck/internal/domain"
	"taskdeck/internal/errors"
	"taskdeck/internal/logging"
)

const defaultPageSize = 50

// Client is the HTTP implementation of TaskGateway. It performs no
// retries and owns no timeouts; the injected http.Client carries the
// transport policy and every failure surfaces once, immediately.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient creates a gateway client for the given API base URL. A nil
// httpClient falls back to http.DefaultClient.
func NewClient(baseURL string, tokens TokenSource, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
	}
}

// FetchAll lists tasks, optionally narrowed by status and/or priority.
func (c *Client) FetchAll(ctx context.Context, opts ListOptions) ([]domain.Task, error) {
	query := url.Values{}
	if opts.Status != nil {
		query.Set("status", opts.Status.String())
	}
	if opts.Priority != nil {
		query.Set("priority", opts.Priority.String())
	}
	addPaging(query, opts.Page, opts.PageSize)

	var resp taskListResponse
	if err := c.do(ctx, http.MethodGet, "/tasks", query, nil, &resp, "fetch tasks"); err != nil {
		return nil, err
	}

	tasks, err := tasksToDomain(resp.Tasks)
	if err != nil {
		return nil, errors.NewRemoteError("fetch tasks", err)
	}
	return tasks, nil
}

// Create creates a task and returns the server-assigned record.
func (c *Client) Create(ctx context.Context, in CreateTaskInput) (*domain.Task, error) {
	var resp taskPayload
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, newCreateTaskRequest(in), &resp, "create task"); err != nil {
		return nil, err
	}

	task, err := resp.toDomain()
	if err != nil {
		return nil, errors.NewRemoteError("create task", err)
	}
	return &task, nil
}

// Update applies a partial update and returns the replacement record.
func (c *Client) Update(ctx context.Context, id string, in UpdateTaskInput) (*domain.Task, error) {
	var resp taskPayload
	path := "/tasks/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPatch, path, nil, newUpdateTaskRequest(in), &resp, "update task"); err != nil {
		return nil, err
	}

	task, err := resp.toDomain()
	if err != nil {
		return nil, errors.NewRemoteError("update task", err)
	}
	return &task, nil
}

// Delete removes a task.
func (c *Client) Delete(ctx context.Context, id string) error {
	path := "/tasks/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, "delete task")
}

// Search runs a server-side free-text search.
func (c *Client) Search(ctx context.Context, query string, page, pageSize int) ([]domain.Task, error) {
	params := url.Values{}
	params.Set("q", query)
	addPaging(params, page, pageSize)

	var resp taskListResponse
	if err := c.do(ctx, http.MethodGet, "/tasks/search", params, nil, &resp, "search tasks"); err != nil {
		return nil, err
	}

	tasks, err := tasksToDomain(resp.Tasks)
	if err != nil {
		return nil, errors.NewRemoteError("search tasks", err)
	}
	return tasks, nil
}

func addPaging(query url.Values, page, pageSize int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))
}

// do runs one request/response cycle and decodes the body into out when
// out is non-nil. All failure modes map to a remote error for operation.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}, operation string) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.NewRemoteError(operation, fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.NewRemoteError(operation, err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return errors.NewRemoteError(operation, fmt.Errorf("resolve session token: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.Debugf("gateway: %s %s\n", method, endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewRemoteError(operation, err)
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return errors.NewRemoteError(operation, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.NewRemoteError(operation, statusError(resp.StatusCode, respBody))
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.NewRemoteError(operation, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// statusError extracts the service error message when the body carries
// one, otherwise reports the raw status.
func statusError(statusCode int, body []byte) error {
	var payload apiError
	if json.Unmarshal(body, &payload) == nil && payload.Error.Message != "" {
		return fmt.Errorf("unexpected status %d: %s", statusCode, payload.Error.Message)
	}
	return fmt.Errorf("unexpected status %d", statusCode)
}
