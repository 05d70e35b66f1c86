package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsegaye25/portfolio-api/internal/repository"
)

func newProjectHandler(t *testing.T) (*ProjectHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewProjectHandler(repository.NewProjectRepo(db)), mock
}

func projectCols() []string {
	return []string{"id", "title", "description", "image_url", "technologies", "github_url", "live_url", "date"}
}

func TestProjectListSplitsTechnologies(t *testing.T) {
	h, mock := newProjectHandler(t)
	mock.ExpectQuery("SELECT .+ FROM projects ORDER BY date DESC").
		WillReturnRows(sqlmock.NewRows(projectCols()).
			AddRow(2, "Newer", "desc", "/img.png", "Go,MySQL", "", "", time.Now()).
			AddRow(1, "Older", "desc", "/img.png", "React", "gh", "live", time.Now().Add(-time.Hour)))

	e := echo.New()
	rec, c := doJSON(e, http.MethodGet, "/api/projects", "")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var out []projectDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Newer", out[0].Title)
	assert.Equal(t, []string{"Go", "MySQL"}, out[0].Technologies)
	assert.Equal(t, []string{"React"}, out[1].Technologies)
}

func TestProjectGetNotFound(t *testing.T) {
	h, mock := newProjectHandler(t)
	mock.ExpectQuery("SELECT .+ FROM projects WHERE id=").
		WillReturnRows(sqlmock.NewRows(projectCols()))

	e := echo.New()
	rec, c := doJSON(e, http.MethodGet, "/api/projects/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Project not found")
}

func TestProjectCreateRequiresTitle(t *testing.T) {
	h, _ := newProjectHandler(t)

	e := echo.New()
	rec, c := doJSON(e, http.MethodPost, "/api/projects", `{"description":"no title"}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
