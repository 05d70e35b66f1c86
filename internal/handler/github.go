package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tsegaye25/portfolio-api/internal/github"
)

// GithubHandler exposes the TTL-cached GitHub repository list.  The
// cache never fails: when GitHub is unreachable the response carries
// stale or sample data plus a warning.
type GithubHandler struct {
	Cache *github.Cache
}

func NewGithubHandler(cache *github.Cache) *GithubHandler { return &GithubHandler{Cache: cache} }

type githubResp struct {
	Projects []github.Repo `json:"projects"`
	Warning  string        `json:"warning,omitempty"`
}

// Projects returns the normalized repository list.
func (h *GithubHandler) Projects(c echo.Context) error {
	repos, warning := h.Cache.Fetch(c.Request().Context())
	return c.JSON(http.StatusOK, githubResp{Projects: repos, Warning: warning})
}
