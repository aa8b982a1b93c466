// Package remote fetches recorded issues from a connected issue server so
// they can be reconciled against the local working copy.
package remote

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/scanlens/scanlens/internal/issue"
	"github.com/scanlens/scanlens/pkg/shared/config"
	"github.com/scanlens/scanlens/pkg/shared/httpclient"
)

// Client talks to one server connection.
type Client struct {
	connectionID string
	baseURL      string
	http         *resty.Client
}

// NewClient builds a client for the named connection. token may be empty for
// anonymous servers.
func NewClient(logger hclog.Logger, cfg *config.Config, connectionID, baseURL, token string) *Client {
	httpClient := httpclient.NewRestyClient(logger, cfg)
	if token != "" {
		httpClient.SetAuthToken(token)
	}
	return &Client{
		connectionID: connectionID,
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         httpClient,
	}
}

// ConnectionID returns the identifier of the originating connection, used as
// provenance metadata on display payloads.
func (c *Client) ConnectionID() string {
	return c.connectionID
}

// FetchIssue retrieves one "show issue" payload by issue key.
func (c *Client) FetchIssue(key string) (*issue.ShowIssueRequest, error) {
	var req issue.ShowIssueRequest
	resp, err := c.http.R().
		SetQueryParam("key", key).
		SetResult(&req).
		Get(c.baseURL + "/api/issues/show")
	if err != nil {
		return nil, fmt.Errorf("fetch issue %q: %w", key, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch issue %q: server returned %s", key, resp.Status())
	}
	return &req, nil
}

// FetchTaintVulnerability retrieves one taint vulnerability record by key.
func (c *Client) FetchTaintVulnerability(key string) (*issue.TaintVulnerability, error) {
	var taint issue.TaintVulnerability
	resp, err := c.http.R().
		SetQueryParam("key", key).
		SetResult(&taint).
		Get(c.baseURL + "/api/taints/show")
	if err != nil {
		return nil, fmt.Errorf("fetch taint vulnerability %q: %w", key, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch taint vulnerability %q: server returned %s", key, resp.Status())
	}
	return &taint, nil
}
