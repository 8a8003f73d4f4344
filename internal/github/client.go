// Package github talks to the GitHub Actions REST API through go-gh.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/cli/go-gh/v2/pkg/auth"

	rserr "github.com/lxkasmehl/runsync-dispatch/internal/errors"
)

// Defaults matching the RunSync repository.
const (
	DefaultHost      = "github.com"
	DefaultAPIURL    = "https://api.github.com"
	DefaultWebURL    = "https://github.com"
	DefaultUserAgent = "RunSync-Dispatch"
	AcceptHeader     = "application/vnd.github.v3+json"
	DefaultPerPage   = 5
)

const (
	opDispatch = "start workflow"
	opListRuns = "list workflow runs"
)

// Options configures a Client.
type Options struct {
	Owner     string
	Repo      string
	APIURL    string
	UserAgent string
	Timeout   time.Duration
	// Transport replaces the network round tripper; tests use it to fake responses.
	Transport http.RoundTripper
}

// Client issues Actions API calls for one repository. The token is supplied per call.
type Client struct {
	owner     string
	repo      string
	host      string
	apiURL    string
	userAgent string
	timeout   time.Duration
	transport http.RoundTripper
}

// NewClient creates a Client for opts.Owner/opts.Repo.
func NewClient(opts Options) (*Client, error) {
	if opts.Owner == "" || opts.Repo == "" {
		return nil, fmt.Errorf("invalid repository: %q/%q (expected owner/repo)", opts.Owner, opts.Repo)
	}

	c := &Client{
		owner:     opts.Owner,
		repo:      opts.Repo,
		apiURL:    strings.TrimRight(opts.APIURL, "/"),
		userAgent: opts.UserAgent,
		timeout:   opts.Timeout,
		transport: opts.Transport,
	}

	if c.apiURL == "" {
		c.apiURL = DefaultAPIURL
	}

	host, err := APIHost(c.apiURL)
	if err != nil {
		return nil, err
	}

	c.host = host

	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}

	return c, nil
}

// ParseRepository splits "owner/repo".
func ParseRepository(fullName string) (string, string, error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository format: %s (expected owner/repo)", fullName)
	}

	return parts[0], parts[1], nil
}

// APIHost returns the host that tokens for apiURL are scoped to.
// go-gh only attaches Authorization to requests within this domain.
func APIHost(apiURL string) (string, error) {
	u, err := url.Parse(apiURL)
	if err != nil || u.Hostname() == "" {
		return "", fmt.Errorf("invalid API URL %q", apiURL)
	}

	return auth.NormalizeHostname(u.Hostname()), nil
}

// Owner returns the repository owner.
func (c *Client) Owner() string {
	return c.owner
}

// Repo returns the repository name.
func (c *Client) Repo() string {
	return c.repo
}

// DispatchURL returns the workflow_dispatch endpoint for workflowFile.
func (c *Client) DispatchURL(workflowFile string) string {
	return fmt.Sprintf("%s/repos/%s/%s/actions/workflows/%s/dispatches",
		c.apiURL, c.owner, c.repo, url.PathEscape(workflowFile))
}

// RunsURL returns the endpoint listing the most recent perPage runs.
func (c *Client) RunsURL(perPage int) string {
	return fmt.Sprintf("%s/repos/%s/%s/actions/runs?per_page=%d", c.apiURL, c.owner, c.repo, perPage)
}

func (c *Client) clientOptions(token string, headers map[string]string) api.ClientOptions {
	return api.ClientOptions{
		AuthToken: token,
		Host:      c.host,
		Headers:   headers,
		Timeout:   c.timeout,
		Transport: c.transport,
	}
}

// DispatchWorkflow starts workflowFile on req.Ref. A 2xx response is success and its body is ignored.
// Any other status yields a RemoteRejectionError carrying the body verbatim; transport failures
// yield a NetworkError. The call is made exactly once.
func (c *Client) DispatchWorkflow(ctx context.Context, token, workflowFile string, req DispatchRequest) error {
	httpClient, err := api.NewHTTPClient(c.clientOptions(token, map[string]string{
		"Accept":       AcceptHeader,
		"Content-Type": "application/json",
		"User-Agent":   c.userAgent,
	}))
	if err != nil {
		return fmt.Errorf("failed to create HTTP client: %w", err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode dispatch request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.DispatchURL(workflowFile), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build dispatch request: %w", err)
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return &rserr.NetworkError{Operation: opDispatch, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return &rserr.NetworkError{Operation: opDispatch, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	return &rserr.RemoteRejectionError{Operation: opDispatch, StatusCode: resp.StatusCode, Body: string(text)}
}

// ListRuns fetches the most recent perPage workflow runs in the order GitHub returns them.
func (c *Client) ListRuns(ctx context.Context, token string, perPage int) ([]WorkflowRun, error) {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	rest, err := api.NewRESTClient(c.clientOptions(token, map[string]string{
		"Accept":     AcceptHeader,
		"User-Agent": c.userAgent,
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	var runsResp runsResponse

	err = rest.DoWithContext(ctx, http.MethodGet, c.RunsURL(perPage), nil, &runsResp)
	if err != nil {
		var httpErr *api.HTTPError
		if errors.As(err, &httpErr) {
			return nil, &rserr.RemoteRejectionError{Operation: opListRuns, StatusCode: httpErr.StatusCode, Body: httpErr.Message}
		}

		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError

		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, &rserr.ParseError{Field: "workflow_runs", Err: err}
		}

		return nil, &rserr.NetworkError{Operation: opListRuns, Err: err}
	}

	if runsResp.WorkflowRuns == nil {
		return nil, &rserr.ParseError{Field: "workflow_runs"}
	}

	return *runsResp.WorkflowRuns, nil
}
