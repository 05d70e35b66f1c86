package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsegaye25/portfolio-api/internal/store"
)

// apiServer serves a canned list-repos response and counts hits.
func apiServer(t *testing.T, status int, body any) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/users/tsegaye25/repos", r.URL.Path)
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		w.WriteHeader(status)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func testCache(s store.Store, srv *httptest.Server, now time.Time) *Cache {
	return New(s, "tsegaye25",
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithClock(func() time.Time { return now }),
	)
}

func repoFixture() []map[string]any {
	return []map[string]any{
		{
			"id": 1, "name": "my-portfolio_site", "description": "Personal site",
			"language": "JavaScript", "html_url": "https://github.com/tsegaye25/my-portfolio",
			"homepage": "https://tsegaye.dev", "stargazers_count": 4, "forks_count": 1,
			"updated_at": "2024-01-02T00:00:00Z",
		},
		{
			"id": 2, "name": "weather-mobile", "description": "",
			"language": "Dart", "html_url": "https://github.com/tsegaye25/weather-mobile",
			"stargazers_count": 2, "forks_count": 0,
			"updated_at": "2024-03-01T00:00:00Z",
		},
		{
			"id": 3, "name": "undescribed-fork", "fork": true,
			"language": "C", "html_url": "https://github.com/tsegaye25/undescribed-fork",
			"updated_at": "2024-02-01T00:00:00Z",
		},
	}
}

func TestFetchNormalizesAndCaches(t *testing.T) {
	srv, hits := apiServer(t, http.StatusOK, repoFixture())
	s := store.NewMemoryStore()
	c := testCache(s, srv, time.Now())

	repos, warn := c.Fetch(context.Background())
	assert.Empty(t, warn)
	assert.EqualValues(t, 1, hits.Load())

	// fork without description dropped, rest sorted newest first
	require.Len(t, repos, 2)
	assert.Equal(t, "weather mobile", repos[0].Title)
	assert.Equal(t, "No description available", repos[0].Description)
	assert.Equal(t, []string{"mobile"}, repos[0].Categories)

	assert.Equal(t, "my portfolio site", repos[1].Title)
	assert.Equal(t, []string{"web"}, repos[1].Categories)
	assert.Equal(t, []string{"JavaScript"}, repos[1].Technologies)
	assert.Equal(t, 4, repos[1].Stars)

	// the normalized list and capture time were persisted
	_, ok := s.Get(store.KeyGithubProjects)
	assert.True(t, ok)
	_, ok = s.Get(store.KeyGithubFetchedAt)
	assert.True(t, ok)
}

func TestFreshnessBoundary(t *testing.T) {
	srv, hits := apiServer(t, http.StatusOK, repoFixture())
	s := store.NewMemoryStore()

	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	first := testCache(s, srv, t0)
	first.Fetch(context.Background())
	require.EqualValues(t, 1, hits.Load())

	// 59 minutes later the cache is still fresh: no network call
	at59 := testCache(s, srv, t0.Add(59*time.Minute))
	repos, warn := at59.Fetch(context.Background())
	assert.Empty(t, warn)
	assert.NotEmpty(t, repos)
	assert.EqualValues(t, 1, hits.Load())

	// 61 minutes later it is stale: exactly one more call
	at61 := testCache(s, srv, t0.Add(61*time.Minute))
	at61.Fetch(context.Background())
	assert.EqualValues(t, 2, hits.Load())
}

func TestFallbackToStaleCache(t *testing.T) {
	stale := []Repo{{ID: 99, Title: "old but mine", Categories: []string{"web"}}}
	b, _ := json.Marshal(stale)

	s := store.NewMemoryStore()
	require.NoError(t, s.Set(store.KeyGithubProjects, string(b)))
	// capture time far in the past so the cache is stale
	require.NoError(t, s.Set(store.KeyGithubFetchedAt, strconv.FormatInt(time.Now().Add(-24*time.Hour).UnixMilli(), 10)))

	srv, _ := apiServer(t, http.StatusInternalServerError, nil)
	c := testCache(s, srv, time.Now())

	repos, warn := c.Fetch(context.Background())
	assert.Equal(t, WarnUsingCache, warn)
	require.Len(t, repos, 1)
	assert.Equal(t, "old but mine", repos[0].Title)
}

func TestFallbackToSamples(t *testing.T) {
	srv, _ := apiServer(t, http.StatusForbidden, nil)
	c := testCache(store.NewMemoryStore(), srv, time.Now())

	repos, warn := c.Fetch(context.Background())
	assert.Equal(t, WarnFetchFailed, warn)
	assert.Equal(t, SampleRepos(), repos)
}

func TestFallbackOnGarbageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>rate limited</html>"))
	}))
	t.Cleanup(srv.Close)

	c := testCache(store.NewMemoryStore(), srv, time.Now())
	repos, warn := c.Fetch(context.Background())
	assert.Equal(t, WarnFetchFailed, warn)
	assert.NotEmpty(t, repos)
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		repo apiRepo
		want []string
	}{
		{"typescript is web", apiRepo{Name: "ui", Language: "TypeScript"}, []string{"web"}},
		{"python is api", apiRepo{Name: "svc", Language: "Python"}, []string{"api"}},
		{"android name is mobile", apiRepo{Name: "shop-android", Language: "Kotlin"}, []string{"mobile"}},
		{"web plus mobile", apiRepo{Name: "react-native-app", Language: "JavaScript"}, []string{"web", "mobile"}},
		{"unknown defaults to web", apiRepo{Name: "dotfiles", Language: "Shell"}, []string{"web"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, categorize(tt.repo))
		})
	}
}
