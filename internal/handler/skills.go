package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tsegaye25/portfolio-api/internal/model"
	"github.com/tsegaye25/portfolio-api/internal/repository"
)

type SkillHandler struct {
	Skills *repository.SkillRepo
}

func NewSkillHandler(r *repository.SkillRepo) *SkillHandler { return &SkillHandler{Skills: r} }

type skillDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
	Description string `json:"description,omitempty"`
}

func toSkillDTO(s model.Skill) skillDTO {
	return skillDTO{ID: s.ID, Name: s.Name, Icon: s.Icon, Category: s.Category, Proficiency: s.Proficiency, Description: s.Description}
}

func (d skillDTO) toModel() model.Skill {
	return model.Skill{ID: d.ID, Name: d.Name, Icon: d.Icon, Category: d.Category, Proficiency: d.Proficiency, Description: d.Description}
}

func (h *SkillHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	skills, err := h.Skills.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	out := make([]skillDTO, 0, len(skills))
	for _, s := range skills {
		out = append(out, toSkillDTO(s))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SkillHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Skills.GetByID(ctx, idParam(c))
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"msg": "Skill not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, toSkillDTO(s))
}

func (h *SkillHandler) Create(c echo.Context) error {
	var d skillDTO
	if err := c.Bind(&d); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	if d.Name == "" || d.Category == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Name and category are required"})
	}
	if d.Proficiency < 0 || d.Proficiency > 100 {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Proficiency must be between 0 and 100"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Skills.Create(ctx, d.toModel())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	d.ID = id
	return c.JSON(http.StatusCreated, d)
}

func (h *SkillHandler) Update(c echo.Context) error {
	var d skillDTO
	if err := c.Bind(&d); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	if d.Proficiency < 0 || d.Proficiency > 100 {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Proficiency must be between 0 and 100"})
	}
	d.ID = idParam(c)

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Skills.Update(ctx, d.toModel()); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"msg": "Skill not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, d)
}

func (h *SkillHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Skills.Delete(ctx, idParam(c)); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"msg": "Skill not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Skill removed"})
}
