// Package githubstats fetches aggregate account statistics from the GitHub
// REST API: follower counts, star and fork totals, and a ranked list of
// languages weighted by bytes of code across the account's repositories.
// The rest of the pipeline consumes only the aggregated numbers.
package githubstats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBaseURL is the production GitHub API endpoint.
	DefaultBaseURL = "https://api.github.com"

	defaultTimeout = 30 * time.Second
	userAgent      = "profile-sync/1.0"

	// languageFetchConcurrency caps parallel per-repo language requests.
	languageFetchConcurrency = 5
)

// Stats holds the aggregated account statistics.
type Stats struct {
	User        string          `json:"user"`
	Followers   int             `json:"followers"`
	PublicRepos int             `json:"public_repos"`
	TotalStars  int             `json:"total_stars"`
	TotalForks  int             `json:"total_forks"`
	Languages   []LanguageShare `json:"languages"`
}

// LanguageShare is one language and the total bytes of code written in it,
// summed across repositories.
type LanguageShare struct {
	Name  string `json:"name"`
	Bytes int64  `json:"bytes"`
}

// RankedLanguages returns language names ordered by descending byte count.
func (s *Stats) RankedLanguages() []string {
	names := make([]string, len(s.Languages))
	for i, lang := range s.Languages {
		names[i] = lang.Name
	}
	return names
}

// Summary renders the aggregate numbers as a single free-text fact suitable
// for the profile record.
func (s *Stats) Summary() string {
	return fmt.Sprintf("GitHub @%s: %d public repos, %d stars, %d forks, %d followers",
		s.User, s.PublicRepos, s.TotalStars, s.TotalForks, s.Followers)
}

// Client talks to the GitHub REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient returns a client for the given API base URL; empty means
// production. The token is optional and only raises rate limits.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type apiUser struct {
	Login       string `json:"login"`
	Followers   int    `json:"followers"`
	PublicRepos int    `json:"public_repos"`
}

type apiRepo struct {
	Name  string `json:"name"`
	Fork  bool   `json:"fork"`
	Stars int    `json:"stargazers_count"`
	Forks int    `json:"forks_count"`
}

// Fetch aggregates statistics for a user account. Per-repo language byte
// counts are fetched concurrently and summed; forked repositories are
// excluded from language totals so mirrors do not skew the ranking.
func (c *Client) Fetch(ctx context.Context, user string) (*Stats, error) {
	if user == "" {
		return nil, &APIError{Message: "user is required"}
	}

	var account apiUser
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%s", user), &account); err != nil {
		return nil, err
	}

	var repos []apiRepo
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%s/repos?per_page=100&type=owner", user), &repos); err != nil {
		return nil, err
	}

	stats := &Stats{
		User:        account.Login,
		Followers:   account.Followers,
		PublicRepos: account.PublicRepos,
	}

	var mu sync.Mutex
	byteTotals := map[string]int64{}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(languageFetchConcurrency)

	for _, repo := range repos {
		stats.TotalStars += repo.Stars
		stats.TotalForks += repo.Forks
		if repo.Fork {
			continue
		}
		group.Go(func() error {
			var langBytes map[string]int64
			err := c.getJSON(groupCtx, fmt.Sprintf("/repos/%s/%s/languages", user, repo.Name), &langBytes)
			if err != nil {
				return err
			}
			mu.Lock()
			for name, n := range langBytes {
				byteTotals[name] += n
			}
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	for name, n := range byteTotals {
		stats.Languages = append(stats.Languages, LanguageShare{Name: name, Bytes: n})
	}
	sort.Slice(stats.Languages, func(i, j int) bool {
		if stats.Languages[i].Bytes != stats.Languages[j].Bytes {
			return stats.Languages[i].Bytes > stats.Languages[j].Bytes
		}
		return stats.Languages[i].Name < stats.Languages[j].Name
	})

	return stats, nil
}

// getJSON performs one GET against the API and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &APIError{Path: path, Message: "build request", Cause: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Path: path, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{
			Path:    path,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("unexpected status: %s", string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Path: path, Message: "decode response", Cause: err}
	}
	return nil
}
