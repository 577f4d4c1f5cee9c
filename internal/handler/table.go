package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carlsburger/GastroCore-sub002/internal/model"
	"github.com/carlsburger/GastroCore-sub002/internal/repository"
)

// CreateTable handles POST /v1/tables (admin only).  The table number
// must be unique across the whole floor plan and the seat range sane.
func (h *BackofficeHandler) CreateTable(c echo.Context) error {
	var body struct {
		Number     uint32 `json:"number"`
		AreaID     uint64 `json:"area_id"`
		SubArea    string `json:"sub_area"`
		SeatMin    uint32 `json:"seat_min"`
		SeatMax    uint32 `json:"seat_max"`
		Combinable *bool  `json:"combinable"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Number == 0 || body.AreaID == 0 || strings.TrimSpace(body.SubArea) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "number, area_id and sub_area are required"})
	}
	if body.SeatMin == 0 || body.SeatMax < body.SeatMin {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat range must satisfy 0 < seat_min <= seat_max"})
	}
	if _, err := h.AreaRepo.GetByID(c.Request().Context(), body.AreaID); err != nil {
		if errors.Is(err, repository.ErrAreaNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "area not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	combinable := true
	if body.Combinable != nil {
		combinable = *body.Combinable
	}
	tbl := &model.Table{
		Number:     body.Number,
		AreaID:     body.AreaID,
		SubArea:    strings.TrimSpace(body.SubArea),
		SeatMin:    body.SeatMin,
		SeatMax:    body.SeatMax,
		Combinable: combinable,
		IsActive:   true,
	}
	if err := h.TableRepo.Create(c.Request().Context(), tbl); err != nil {
		if errors.Is(err, repository.ErrTableNumberTaken) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "table number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create table"})
	}
	return c.JSON(http.StatusCreated, tbl)
}

// ListTables handles GET /v1/tables?area_id=&active=true.
func (h *BackofficeHandler) ListTables(c echo.Context) error {
	areaID, err := queryAreaID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid area_id"})
	}
	activeOnly := strings.EqualFold(c.QueryParam("active"), "true")
	items, err := h.TableRepo.List(c.Request().Context(), areaID, activeOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetTable handles GET /v1/tables/:id.
func (h *BackofficeHandler) GetTable(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	tbl, err := h.TableRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, tbl)
}

// UpdateTable handles PUT /v1/tables/:id (admin only).
func (h *BackofficeHandler) UpdateTable(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cur, err := h.TableRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	var body struct {
		Number     *uint32 `json:"number"`
		AreaID     *uint64 `json:"area_id"`
		SubArea    *string `json:"sub_area"`
		SeatMin    *uint32 `json:"seat_min"`
		SeatMax    *uint32 `json:"seat_max"`
		Combinable *bool   `json:"combinable"`
		IsActive   *bool   `json:"is_active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Number != nil && *body.Number > 0 {
		cur.Number = *body.Number
	}
	if body.AreaID != nil && *body.AreaID > 0 {
		if _, err := h.AreaRepo.GetByID(c.Request().Context(), *body.AreaID); err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "area not found"})
		}
		cur.AreaID = *body.AreaID
	}
	if body.SubArea != nil && strings.TrimSpace(*body.SubArea) != "" {
		cur.SubArea = strings.TrimSpace(*body.SubArea)
	}
	if body.SeatMin != nil {
		cur.SeatMin = *body.SeatMin
	}
	if body.SeatMax != nil {
		cur.SeatMax = *body.SeatMax
	}
	if cur.SeatMin == 0 || cur.SeatMax < cur.SeatMin {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat range must satisfy 0 < seat_min <= seat_max"})
	}
	if body.Combinable != nil {
		cur.Combinable = *body.Combinable
	}
	if body.IsActive != nil {
		cur.IsActive = *body.IsActive
	}
	if err := h.TableRepo.Update(c.Request().Context(), cur); err != nil {
		if errors.Is(err, repository.ErrTableNumberTaken) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "table number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	fresh, err := h.TableRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteTable handles DELETE /v1/tables/:id (admin only).  Tables with
// reservations or combination memberships cannot be removed, only
// deactivated.
func (h *BackofficeHandler) DeleteTable(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.TableRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
		}
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "table is referenced by reservations or combinations"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.NoContent(http.StatusNoContent)
}
