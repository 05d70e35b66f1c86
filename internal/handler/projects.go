package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tsegaye25/portfolio-api/internal/model"
	"github.com/tsegaye25/portfolio-api/internal/repository"
)

// ProjectHandler serves the portfolio projects CRUD.  Reads are
// public, mutations sit behind JWTAuth.
type ProjectHandler struct {
	Projects *repository.ProjectRepo
}

func NewProjectHandler(r *repository.ProjectRepo) *ProjectHandler { return &ProjectHandler{Projects: r} }

type projectDTO struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Technologies []string  `json:"technologies"`
	GithubURL    string    `json:"githubUrl,omitempty"`
	LiveURL      string    `json:"liveUrl,omitempty"`
	Date         time.Time `json:"date"`
}

func toProjectDTO(p model.Project) projectDTO {
	return projectDTO{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		Technologies: p.Technologies,
		GithubURL:    p.GithubURL,
		LiveURL:      p.LiveURL,
		Date:         p.Date,
	}
}

func (d projectDTO) toModel() model.Project {
	return model.Project{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		ImageURL:     d.ImageURL,
		Technologies: d.Technologies,
		GithubURL:    d.GithubURL,
		LiveURL:      d.LiveURL,
	}
}

// List returns all projects, newest first.
func (h *ProjectHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	projects, err := h.Projects.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	out := make([]projectDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectDTO(p))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one project by id.
func (h *ProjectHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Projects.GetByID(ctx, idParam(c))
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"msg": "Project not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, toProjectDTO(p))
}

// Create stores a new project.
func (h *ProjectHandler) Create(c echo.Context) error {
	var d projectDTO
	if err := c.Bind(&d); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	if d.Title == "" || d.Description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Title and description are required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Projects.Create(ctx, d.toModel())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	p, err := h.Projects.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusCreated, toProjectDTO(p))
}

// Update rewrites a project by id.
func (h *ProjectHandler) Update(c echo.Context) error {
	var d projectDTO
	if err := c.Bind(&d); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	d.ID = idParam(c)

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Projects.Update(ctx, d.toModel()); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"msg": "Project not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	p, err := h.Projects.GetByID(ctx, d.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, toProjectDTO(p))
}

// Delete removes a project by id.
func (h *ProjectHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Projects.Delete(ctx, idParam(c)); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"msg": "Project not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Project removed"})
}
