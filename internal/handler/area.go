package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carlsburger/GastroCore-sub002/internal/model"
	"github.com/carlsburger/GastroCore-sub002/internal/repository"
)

// CreateArea handles POST /v1/areas (admin only).
func (h *BackofficeHandler) CreateArea(c echo.Context) error {
	var body struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Capacity    uint32  `json:"capacity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	area := &model.Area{
		Name:        strings.TrimSpace(body.Name),
		Description: body.Description,
		Capacity:    body.Capacity,
		IsActive:    true,
	}
	if err := h.AreaRepo.Create(c.Request().Context(), area); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "area name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create area"})
	}
	return c.JSON(http.StatusCreated, area)
}

// ListAreas handles GET /v1/areas?active=true.
func (h *BackofficeHandler) ListAreas(c echo.Context) error {
	activeOnly := strings.EqualFold(c.QueryParam("active"), "true")
	items, err := h.AreaRepo.List(c.Request().Context(), activeOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetArea handles GET /v1/areas/:id.
func (h *BackofficeHandler) GetArea(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	area, err := h.AreaRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAreaNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "area not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, area)
}

// UpdateArea handles PUT /v1/areas/:id (admin only).
func (h *BackofficeHandler) UpdateArea(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cur, err := h.AreaRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAreaNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "area not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Capacity    *uint32 `json:"capacity"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		cur.Name = strings.TrimSpace(*body.Name)
	}
	if body.Description != nil {
		cur.Description = body.Description
	}
	if body.Capacity != nil {
		cur.Capacity = *body.Capacity
	}
	if body.IsActive != nil {
		cur.IsActive = *body.IsActive
	}
	if err := h.AreaRepo.Update(c.Request().Context(), cur); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "area name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	fresh, err := h.AreaRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteArea handles DELETE /v1/areas/:id (admin only).  Areas that
// still carry tables cannot be removed.
func (h *BackofficeHandler) DeleteArea(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.AreaRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrAreaNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "area not found"})
		}
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "area still has tables"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.NoContent(http.StatusNoContent)
}
