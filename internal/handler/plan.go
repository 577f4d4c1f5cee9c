package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carlsburger/GastroCore-sub002/internal/booking"
)

// GetAvailability handles GET /v1/availability?date=&party=&area_id=&time=.
// It walks the slot grid for the date and reports, per slot, whether the
// party can be seated.  When time is given only that slot is returned.
func (h *BackofficeHandler) GetAvailability(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if _, err := booking.ParseDate(date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	party, err := queryUint32(c, "party")
	if err != nil || party == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "party must be a positive number"})
	}
	areaID, err := queryAreaID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid area_id"})
	}
	if areaID != nil {
		if _, err := h.AreaRepo.GetByID(c.Request().Context(), *areaID); err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "area not found"})
		}
	}

	ctx := c.Request().Context()
	tables, err := h.loadPlanTables(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	bookings, err := h.loadBookings(ctx, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	blocks, err := h.loadBlocks(ctx, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	slots := booking.ResolveAvailability(h.grid(), date, party, areaID, tables, bookings, blocks, h.Plan.NonCombinable)

	// An explicit time narrows the answer to a single slot.
	if raw := strings.TrimSpace(c.QueryParam("time")); raw != "" {
		min, err := booking.ParseClock(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "time must be HH:MM"})
		}
		wanted := booking.FormatClock(min)
		for _, s := range slots {
			if s.Time == wanted {
				return c.JSON(http.StatusOK, echo.Map{"date": date, "party": party, "slots": []booking.SlotAvailability{s}})
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"date": date, "party": party, "slots": []booking.SlotAvailability{}})
	}
	return c.JSON(http.StatusOK, echo.Map{"date": date, "party": party, "slots": slots})
}

// GetOccupancy handles GET /v1/occupancy?date=&time=&area_id= and
// returns one status per table for the slot window starting at time.
func (h *BackofficeHandler) GetOccupancy(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if _, err := booking.ParseDate(date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	startMin, err := booking.ParseClock(strings.TrimSpace(c.QueryParam("time")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "time must be HH:MM"})
	}
	areaID, err := queryAreaID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid area_id"})
	}

	ctx := c.Request().Context()
	tables, err := h.loadPlanTables(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	bookings, err := h.loadBookings(ctx, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	blocks, err := h.loadBlocks(ctx, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	combos, err := h.loadCombos(ctx, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	winStart, winEnd := h.grid().Window(startMin)
	statuses := booking.AggregateOccupancy(tables, bookings, blocks, combos, winStart, winEnd, areaID)
	return c.JSON(http.StatusOK, echo.Map{
		"date":   date,
		"time":   booking.FormatClock(startMin),
		"tables": statuses,
	})
}
