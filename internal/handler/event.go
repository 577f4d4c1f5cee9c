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

// CreateEventBlock handles POST /v1/events (admin only).  A block with
// a null area_id closes the whole house for its window.
func (h *BackofficeHandler) CreateEventBlock(c echo.Context) error {
	var body struct {
		Title     string  `json:"title"`
		Date      string  `json:"date"`
		StartTime string  `json:"start_time"`
		EndTime   string  `json:"end_time"`
		AreaID    *uint64 `json:"area_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
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
	if body.AreaID != nil {
		if _, err := h.AreaRepo.GetByID(c.Request().Context(), *body.AreaID); err != nil {
			if errors.Is(err, repository.ErrAreaNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "area not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}
	ev := &model.EventBlock{
		Title:     strings.TrimSpace(body.Title),
		Date:      body.Date,
		StartTime: booking.FormatClock(startMin),
		EndTime:   booking.FormatClock(endMin),
		AreaID:    body.AreaID,
	}
	if err := h.EventRepo.Create(c.Request().Context(), ev); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create event block"})
	}
	return c.JSON(http.StatusCreated, ev)
}

// ListEventBlocks handles GET /v1/events?date=.
func (h *BackofficeHandler) ListEventBlocks(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if _, err := booking.ParseDate(date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	items, err := h.EventRepo.ListByDate(c.Request().Context(), date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// DeleteEventBlock handles DELETE /v1/events/:id (admin only).
func (h *BackofficeHandler) DeleteEventBlock(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.EventRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.NoContent(http.StatusNoContent)
}
