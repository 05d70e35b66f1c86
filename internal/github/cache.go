// Package github fetches the public repository list for a fixed
// account and caches the normalized result with a one-hour TTL.
// The fetch never leaves its caller empty-handed: on failure it
// falls back to the stale cache, and with no cache at all to a
// static sample set.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tsegaye25/portfolio-api/internal/store"
)

// DefaultTTL is how long a cached repository list stays fresh.
const DefaultTTL = time.Hour

// Warnings surfaced alongside fallback data.
const (
	WarnUsingCache  = "Using cached projects. Failed to fetch latest projects from GitHub."
	WarnFetchFailed = "Failed to fetch projects from GitHub. Showing sample projects instead."
)

// Repo is a normalized project record served to the projects page.
type Repo struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Technologies []string  `json:"technologies"`
	Github       string    `json:"github"`
	Live         string    `json:"live"`
	Categories   []string  `json:"categories"`
	Stars        int       `json:"stars"`
	Forks        int       `json:"forks"`
	Updated      time.Time `json:"updated"`
}

// apiRepo mirrors the fields we read from the GitHub list-repos
// response.
type apiRepo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	HTMLURL     string    `json:"html_url"`
	Homepage    string    `json:"homepage"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	UpdatedAt   time.Time `json:"updated_at"`
	Fork        bool      `json:"fork"`
}

// Cache is the TTL-cached repository fetcher.  The HTTP client,
// base URL and clock are injectable for tests.
type Cache struct {
	store   store.Store
	user    string
	ttl     time.Duration
	client  *http.Client
	baseURL string
	now     func() time.Time
}

// Option customizes a Cache.
type Option func(*Cache)

// WithHTTPClient replaces the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) Option { return func(g *Cache) { g.client = c } }

// WithBaseURL points the cache at a different API host.
func WithBaseURL(u string) Option { return func(g *Cache) { g.baseURL = strings.TrimRight(u, "/") } }

// WithClock pins the freshness clock.
func WithClock(now func() time.Time) Option { return func(g *Cache) { g.now = now } }

// WithTTL overrides the cache lifetime.
func WithTTL(ttl time.Duration) Option { return func(g *Cache) { g.ttl = ttl } }

// New builds a repository cache for the given account handle.
func New(s store.Store, user string, opts ...Option) *Cache {
	c := &Cache{
		store:   s,
		user:    user,
		ttl:     DefaultTTL,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://api.github.com",
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Fetch returns the repository list plus a warning string, empty
// when the data is live or freshly cached.  A fresh cache entry is
// served without any network access.
func (c *Cache) Fetch(ctx context.Context) ([]Repo, string) {
	if cached, ok := c.cached(); ok && c.fresh() {
		return cached, ""
	}

	repos, err := c.fetchRemote(ctx)
	if err == nil {
		c.persist(repos)
		return repos, ""
	}

	if cached, ok := c.cached(); ok {
		return cached, WarnUsingCache
	}
	return SampleRepos(), WarnFetchFailed
}

// fresh reports whether the capture timestamp is within the TTL.
func (c *Cache) fresh() bool {
	raw, ok := c.store.Get(store.KeyGithubFetchedAt)
	if !ok {
		return false
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false
	}
	return c.now().Sub(time.UnixMilli(millis)) < c.ttl
}

// cached loads the stored repository list regardless of staleness.
func (c *Cache) cached() ([]Repo, bool) {
	raw, ok := c.store.Get(store.KeyGithubProjects)
	if !ok {
		return nil, false
	}
	var repos []Repo
	if err := json.Unmarshal([]byte(raw), &repos); err != nil || len(repos) == 0 {
		return nil, false
	}
	return repos, true
}

// persist stores the normalized list together with a fresh capture
// timestamp.
func (c *Cache) persist(repos []Repo) {
	b, err := json.Marshal(repos)
	if err != nil {
		return
	}
	_ = c.store.Set(store.KeyGithubProjects, string(b))
	_ = c.store.Set(store.KeyGithubFetchedAt, strconv.FormatInt(c.now().UnixMilli(), 10))
}

// fetchRemote calls the list-repos endpoint and normalizes the
// response.
func (c *Cache) fetchRemote(ctx context.Context) ([]Repo, error) {
	url := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=100", c.baseURL, c.user)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github: unexpected status %d", resp.StatusCode)
	}

	var raw []apiRepo
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	repos := make([]Repo, 0, len(raw))
	for _, r := range raw {
		// forks the owner never described add noise, skip them
		if r.Fork && r.Description == "" {
			continue
		}
		repos = append(repos, normalize(r))
	}
	sort.SliceStable(repos, func(i, j int) bool {
		return repos[i].Updated.After(repos[j].Updated)
	})
	return repos, nil
}

var titleCleaner = strings.NewReplacer("-", " ", "_", " ")

// normalize maps one API entry to the project record shape used
// across the site.
func normalize(r apiRepo) Repo {
	desc := r.Description
	if desc == "" {
		desc = "No description available"
	}
	var techs []string
	if r.Language != "" {
		techs = []string{r.Language}
	}
	return Repo{
		ID:           r.ID,
		Title:        titleCleaner.Replace(r.Name),
		Description:  desc,
		Image:        "/logo192.png",
		Technologies: techs,
		Github:       r.HTMLURL,
		Live:         r.Homepage,
		Categories:   categorize(r),
		Stars:        r.Stars,
		Forks:        r.Forks,
		Updated:      r.UpdatedAt,
	}
}

// categorize derives web/api/mobile tags from the language and the
// repository name, defaulting to web.
func categorize(r apiRepo) []string {
	var cats []string
	switch r.Language {
	case "JavaScript", "TypeScript", "HTML", "CSS":
		cats = append(cats, "web")
	}
	switch r.Language {
	case "Node", "Express", "Python", "Java", "PHP":
		cats = append(cats, "api")
	}
	name := strings.ToLower(r.Name)
	for _, hint := range []string{"mobile", "android", "ios", "react-native"} {
		if strings.Contains(name, hint) {
			cats = append(cats, "mobile")
			break
		}
	}
	if len(cats) == 0 {
		cats = append(cats, "web")
	}
	return cats
}
