package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tsegaye25/portfolio-api/internal/model"
	"github.com/tsegaye25/portfolio-api/internal/repository"
)

type ExperienceHandler struct {
	Experiences *repository.ExperienceRepo
}

func NewExperienceHandler(r *repository.ExperienceRepo) *ExperienceHandler {
	return &ExperienceHandler{Experiences: r}
}

type experienceDTO struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

func toExperienceDTO(e model.Experience) experienceDTO {
	return experienceDTO{
		ID: e.ID, Title: e.Title, Company: e.Company, Location: e.Location,
		From: e.From, To: e.To, Current: e.Current, Description: e.Description,
	}
}

func (d experienceDTO) toModel() model.Experience {
	e := model.Experience{
		ID: d.ID, Title: d.Title, Company: d.Company, Location: d.Location,
		From: d.From, To: d.To, Current: d.Current, Description: d.Description,
	}
	// an ongoing position has no end date
	if e.Current {
		e.To = nil
	}
	return e
}

func (h *ExperienceHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Experiences.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	out := make([]experienceDTO, 0, len(items))
	for _, e := range items {
		out = append(out, toExperienceDTO(e))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ExperienceHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	e, err := h.Experiences.GetByID(ctx, idParam(c))
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"msg": "Experience not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, toExperienceDTO(e))
}

func (h *ExperienceHandler) Create(c echo.Context) error {
	var d experienceDTO
	if err := c.Bind(&d); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	if d.Title == "" || d.Company == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Title and company are required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Experiences.Create(ctx, d.toModel())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	e, err := h.Experiences.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusCreated, toExperienceDTO(e))
}

func (h *ExperienceHandler) Update(c echo.Context) error {
	var d experienceDTO
	if err := c.Bind(&d); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	d.ID = idParam(c)

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Experiences.Update(ctx, d.toModel()); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"msg": "Experience not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	e, err := h.Experiences.GetByID(ctx, d.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, toExperienceDTO(e))
}

func (h *ExperienceHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Experiences.Delete(ctx, idParam(c)); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"msg": "Experience not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Experience removed"})
}
