package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carlsburger/GastroCore-sub002/internal/booking"
	"github.com/carlsburger/GastroCore-sub002/internal/model"
	"github.com/carlsburger/GastroCore-sub002/internal/repository"
)

// CreateCombination handles POST /v1/combinations.  The member set is
// validated against the floor plan (combinable flags, shared area and
// sub-area, permanent exclusion list) before anything is written; the
// total capacity is the sum of the members' seat maxima.
func (h *BackofficeHandler) CreateCombination(c echo.Context) error {
	var body struct {
		Date      string   `json:"date"`
		StartTime string   `json:"start_time"`
		EndTime   string   `json:"end_time"`
		TableIDs  []uint64 `json:"table_ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if _, err := booking.ParseDate(body.Date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	startMin, err := booking.ParseClock(body.StartTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_time must be HH:MM"})
	}
	endMin, err := booking.ParseClock(body.EndTime)
	if err != nil || endMin <= startMin {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_time must be HH:MM after start_time"})
	}

	ctx := c.Request().Context()
	rows, err := h.TableRepo.List(ctx, nil, false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	plan := make(map[uint64]booking.Table, len(rows))
	for _, t := range rows {
		plan[t.ID] = planTable(t)
	}

	capacity, err := booking.ValidateCombination(body.TableIDs, plan, h.Plan.NonCombinable)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrUnknownTable):
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
	}

	combo := &model.TableCombination{
		Date:          body.Date,
		StartTime:     booking.FormatClock(startMin),
		EndTime:       booking.FormatClock(endMin),
		TotalCapacity: capacity,
		TableIDs:      body.TableIDs,
	}
	if err := h.ComboRepo.Create(ctx, combo); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create combination"})
	}
	return c.JSON(http.StatusCreated, combo)
}

// ListCombinations handles GET /v1/combinations?date=.
func (h *BackofficeHandler) ListCombinations(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if _, err := booking.ParseDate(date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	items, err := h.ComboRepo.ListByDate(c.Request().Context(), date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetCombination handles GET /v1/combinations/:id.
func (h *BackofficeHandler) GetCombination(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	combo, err := h.ComboRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCombinationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "combination not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, combo)
}

// DeleteCombination handles DELETE /v1/combinations/:id.
func (h *BackofficeHandler) DeleteCombination(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.ComboRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrCombinationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "combination not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.NoContent(http.StatusNoContent)
}
