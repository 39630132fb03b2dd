package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gogithub "github.com/google/go-github/v68/github"
)

// IssueCreator is the creation surface the Submitter needs. Tests use a
// fake; production uses *Client.
type IssueCreator interface {
	// CreateIssue creates one issue and returns the number GitHub
	// assigned to it.
	CreateIssue(ctx context.Context, title, body string, labels []string) (int, error)
}

// Client wraps the go-github client for a single target repository.
type Client struct {
	gh    *gogithub.Client
	owner string
	repo  string
}

// ParseRepoSpec splits an "owner/name" repository spec.
func ParseRepoSpec(spec string) (owner, name string, err error) {
	parts := strings.SplitN(strings.TrimSpace(spec), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/name", spec)
	}
	return parts[0], parts[1], nil
}

// NewClient creates a Client for the given repository. httpClient should
// carry authentication (see auth.NewHTTPClient); pass nil for an
// unauthenticated client.
func NewClient(httpClient *http.Client, repoSpec string) (*Client, error) {
	owner, repo, err := ParseRepoSpec(repoSpec)
	if err != nil {
		return nil, err
	}
	return &Client{gh: gogithub.NewClient(httpClient), owner: owner, repo: repo}, nil
}

// NewClientWithBaseURL creates a Client pointed at a custom API base URL.
// This is primarily used for testing with httptest servers.
func NewClientWithBaseURL(httpClient *http.Client, baseURL, repoSpec string) (*Client, error) {
	c, err := NewClient(httpClient, repoSpec)
	if err != nil {
		return nil, err
	}
	c.gh, err = c.gh.WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to set base URL: %w", err)
	}
	return c, nil
}

// RepoSpec returns the target repository as "owner/name".
func (c *Client) RepoSpec() string {
	return c.owner + "/" + c.repo
}

// CheckAccess verifies the repository exists and the credential can see
// it, so a bad token or repo fails before any issue is created.
func (c *Client) CheckAccess(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, _, err := c.gh.Repositories.Get(ctx, c.owner, c.repo); err != nil {
		return fmt.Errorf("failed to access repository %s: %w", c.RepoSpec(), err)
	}
	return nil
}

// CreateIssue implements IssueCreator against the GitHub API.
func (c *Client) CreateIssue(ctx context.Context, title, body string, labels []string) (int, error) {
	req := &gogithub.IssueRequest{
		Title: gogithub.String(title),
		Body:  gogithub.String(body),
	}
	if len(labels) > 0 {
		req.Labels = &labels
	}

	issue, _, err := c.gh.Issues.Create(ctx, c.owner, c.repo, req)
	if err != nil {
		return 0, fmt.Errorf("failed to create issue: %w", err)
	}
	return issue.GetNumber(), nil
}

// IsRateLimit reports whether err is a GitHub primary or secondary
// (abuse detection) rate limit error.
func IsRateLimit(err error) bool {
	var rateLimitErr *gogithub.RateLimitError
	var abuseErr *gogithub.AbuseRateLimitError
	return errors.As(err, &rateLimitErr) || errors.As(err, &abuseErr)
}
