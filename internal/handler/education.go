package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tsegaye25/portfolio-api/internal/model"
	"github.com/tsegaye25/portfolio-api/internal/repository"
)

type EducationHandler struct {
	Education *repository.EducationRepo
}

func NewEducationHandler(r *repository.EducationRepo) *EducationHandler {
	return &EducationHandler{Education: r}
}

type educationDTO struct {
	ID           uint64     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

func toEducationDTO(e model.Education) educationDTO {
	return educationDTO{
		ID: e.ID, School: e.School, Degree: e.Degree, FieldOfStudy: e.FieldOfStudy,
		From: e.From, To: e.To, Current: e.Current, Description: e.Description,
	}
}

func (d educationDTO) toModel() model.Education {
	e := model.Education{
		ID: d.ID, School: d.School, Degree: d.Degree, FieldOfStudy: d.FieldOfStudy,
		From: d.From, To: d.To, Current: d.Current, Description: d.Description,
	}
	if e.Current {
		e.To = nil
	}
	return e
}

func (h *EducationHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Education.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	out := make([]educationDTO, 0, len(items))
	for _, e := range items {
		out = append(out, toEducationDTO(e))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *EducationHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	e, err := h.Education.GetByID(ctx, idParam(c))
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"msg": "Education not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, toEducationDTO(e))
}

func (h *EducationHandler) Create(c echo.Context) error {
	var d educationDTO
	if err := c.Bind(&d); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	if d.School == "" || d.Degree == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "School and degree are required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Education.Create(ctx, d.toModel())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	e, err := h.Education.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusCreated, toEducationDTO(e))
}

func (h *EducationHandler) Update(c echo.Context) error {
	var d educationDTO
	if err := c.Bind(&d); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	d.ID = idParam(c)

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Education.Update(ctx, d.toModel()); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"msg": "Education not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	e, err := h.Education.GetByID(ctx, d.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, toEducationDTO(e))
}

func (h *EducationHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Education.Delete(ctx, idParam(c)); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"msg": "Education not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Education removed"})
}
