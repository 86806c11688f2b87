// Package jira reads assets from the Jira Service Management Assets REST API.
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"golang.org/x/oauth2"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/config"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

const (
	defaultBaseURL  = "https://api.atlassian.com"
	defaultPageSize = 50
	defaultTimeout  = 30 * time.Second
	defaultRetries  = 3

	// Maximum response body read from Jira (8MB)
	maxResponseSize = 8 << 20
)

// APIError is a non-2xx answer from Jira.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
	// RetryAfter is the delay requested by a 429 or 503 answer, zero when absent.
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jira %s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Client implements jiraasset.Source.
//
// Authentication uses a bearer token (OAuth or personal access token) when one is
// configured, and basic auth with email + API token otherwise.
type Client struct {
	httpClient *http.Client
	baseURL    string
	siteURL    string
	email      string
	apiToken   string
	bearer     bool
	pageSize   int
	maxRetries int
	newBackOff func() backoff.BackOff
	logger     logger.Interface

	mu          sync.Mutex
	workspaceID string
}

var _ jiraasset.Source = (*Client)(nil)

func NewClient(cfg config.JiraConfig, log logger.Interface) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{Timeout: timeout}
	bearer := strings.TrimSpace(cfg.BearerToken) != ""
	if bearer {
		src := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: strings.TrimSpace(cfg.BearerToken),
			TokenType:   "Bearer",
		})
		httpClient = oauth2.NewClient(context.Background(), src)
		httpClient.Timeout = timeout
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	} else if maxRetries == 0 {
		maxRetries = defaultRetries
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		siteURL:     strings.TrimRight(cfg.SiteURL, "/"),
		email:       cfg.Email,
		apiToken:    strings.Trim(strings.TrimSpace(cfg.APIToken), `"'`),
		bearer:      bearer,
		pageSize:    pageSize,
		maxRetries:  maxRetries,
		newBackOff:  defaultBackOff,
		logger:      log.Named("jira"),
		workspaceID: strings.TrimSpace(cfg.WorkspaceID),
	}
}

// WorkspaceID returns the configured workspace, or discovers it once through
// the service desk API of the site.
func (c *Client) WorkspaceID(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.workspaceID != "" {
		return c.workspaceID, nil
	}
	if c.siteURL == "" {
		return "", fmt.Errorf("jira workspace id is not configured and site_url is empty")
	}

	var resp workspaceResponse
	if err := c.do(ctx, http.MethodGet, c.siteURL+"/rest/servicedeskapi/assets/workspace", nil, &resp); err != nil {
		return "", fmt.Errorf("failed to discover jira workspace: %w", err)
	}
	if len(resp.Values) == 0 || resp.Values[0].WorkspaceID == "" {
		return "", fmt.Errorf("no jira assets workspace found")
	}

	c.workspaceID = resp.Values[0].WorkspaceID
	c.logger.Infow("jira workspace discovered", "workspace_id", c.workspaceID)
	return c.workspaceID, nil
}

// ObjectTypeAssets pages through the AQL search until limit assets are read
// or Jira reports the last page.
func (c *Client) ObjectTypeAssets(ctx context.Context, schemaName, objectTypeName string, limit int) (*jiraasset.ObjectTypeAssets, error) {
	base, err := c.assetsURL(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`objectSchema = %s AND objectType = %s`, quoteAQL(schemaName), quoteAQL(objectTypeName))
	result := &jiraasset.ObjectTypeAssets{
		SchemaName:     schemaName,
		ObjectTypeName: objectTypeName,
		Assets:         []jiraasset.Object{},
	}

	startAt := 0
	for {
		pageSize := c.pageSize
		if limit > 0 && limit-len(result.Assets) < pageSize {
			pageSize = limit - len(result.Assets)
		}

		params := url.Values{}
		params.Set("startAt", strconv.Itoa(startAt))
		params.Set("maxResults", strconv.Itoa(pageSize))
		params.Set("includeAttributes", "true")

		var page aqlResponse
		body := aqlRequest{QLQuery: query}
		if err := c.do(ctx, http.MethodPost, base+"/object/aql?"+params.Encode(), body, &page); err != nil {
			return nil, fmt.Errorf("failed to search assets of %s/%s: %w", schemaName, objectTypeName, err)
		}

		objects := page.objects()
		result.Assets = append(result.Assets, objects...)
		if page.Total > result.Total {
			result.Total = page.Total
		}

		c.logger.Debugw("jira aql page",
			"schema", schemaName,
			"object_type", objectTypeName,
			"start_at", startAt,
			"received", len(objects),
			"total", page.Total)

		if len(objects) == 0 || page.IsLast || (limit > 0 && len(result.Assets) >= limit) {
			break
		}
		if page.Total > 0 && len(result.Assets) >= page.Total {
			break
		}
		startAt += len(objects)
	}

	if result.Total < len(result.Assets) {
		result.Total = len(result.Assets)
	}
	return result, nil
}

// SearchByObjectType runs an IQL query scoped to one object type.
func (c *Client) SearchByObjectType(ctx context.Context, objectTypeID, iql string, limit int) ([]jiraasset.Object, error) {
	base, err := c.assetsURL(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = c.pageSize
	}

	body := navlistRequest{
		ObjectTypeID:      objectTypeID,
		IQL:               iql,
		ResultPerPage:     limit,
		Page:              1,
		IncludeAttributes: true,
	}

	var resp aqlResponse
	if err := c.do(ctx, http.MethodPost, base+"/object/navlist/iql", body, &resp); err != nil {
		return nil, fmt.Errorf("failed to search object type %s: %w", objectTypeID, err)
	}

	objects := resp.objects()
	if len(objects) > limit {
		objects = objects[:limit]
	}
	return objects, nil
}

// GetObject returns (nil, nil) when Jira answers 404.
func (c *Client) GetObject(ctx context.Context, objectID string) (*jiraasset.Object, error) {
	base, err := c.assetsURL(ctx)
	if err != nil {
		return nil, err
	}

	var obj wireObject
	err = c.do(ctx, http.MethodGet, base+"/object/"+url.PathEscape(objectID), nil, &obj)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset %s: %w", objectID, err)
	}

	o := obj.toDomain()
	return &o, nil
}

func (c *Client) assetsURL(ctx context.Context) (string, error) {
	workspaceID, err := c.WorkspaceID(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/jsm/assets/workspace/%s/v1", c.baseURL, url.PathEscape(workspaceID)), nil
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.Multiplier = 2
	b.RandomizationFactor = 0.3
	b.Reset()
	return b
}

// retryable reports whether a failed call may succeed when repeated: transport
// errors, rate limiting and gateway errors.
func retryable(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.StatusCode {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// do sends the request and retries retryable failures with exponential backoff.
// A Retry-After header from Jira replaces the computed delay.
func (c *Client) do(ctx context.Context, method, rawURL string, body any, out any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		payload = data
	}

	var lastErr error
	attempt := 0
	operation := func() (struct{}, error) {
		attempt++
		err := c.doOnce(ctx, method, rawURL, payload, out)
		lastErr = err
		if err == nil {
			return struct{}{}, nil
		}
		if ctx.Err() != nil || !retryable(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.RetryAfter > 0 {
			return struct{}{}, backoff.RetryAfter(int(apiErr.RetryAfter / time.Second))
		}
		return struct{}{}, err
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(uint(c.maxRetries+1)),
		backoff.WithNotify(func(err error, delay time.Duration) {
			c.logger.Warnw("retrying jira request",
				"method", method,
				"attempt", attempt,
				"delay", delay,
				"error", lastErr)
		}),
	)
	if err == nil {
		return nil
	}
	// err may be a Permanent or Retry-After marker; callers want the Jira error itself
	if ctx.Err() == nil && lastErr != nil {
		return lastErr
	}
	return err
}

func (c *Client) doOnce(ctx context.Context, method, rawURL string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !c.bearer && c.email != "" {
		req.SetBasicAuth(c.email, c.apiToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnw("jira request failed", "method", method, "path", req.URL.Path, "error", err)
		return fmt.Errorf("jira request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read jira response: %w", err)
	}

	c.logger.Debugw("jira request",
		"method", method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"latency", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := string(data)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       req.URL.Path,
			Body:       snippet,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode jira response: %w", err)
	}
	return nil
}

// parseRetryAfter understands the delay-seconds form of Retry-After.
func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// quoteAQL wraps s in double quotes, escaping embedded quotes and backslashes.
func quoteAQL(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
