package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carlsburger/GastroCore-sub002/internal/booking"
	"github.com/carlsburger/GastroCore-sub002/internal/model"
	"github.com/carlsburger/GastroCore-sub002/internal/queue"
	"github.com/carlsburger/GastroCore-sub002/internal/repository"
	queue_publisher "github.com/carlsburger/GastroCore-sub002/internal/service"
)

// reservationActions maps a lifecycle action endpoint to the statuses it
// may start from and the status it produces.  Anything else is a 409.
var reservationActions = map[string]struct {
	from []string
	to   string
}{
	"confirm":  {[]string{model.ReservationNew}, model.ReservationConfirmed},
	"cancel":   {[]string{model.ReservationNew, model.ReservationConfirmed}, model.ReservationCancelled},
	"arrive":   {[]string{model.ReservationNew, model.ReservationConfirmed}, model.ReservationArrived},
	"complete": {[]string{model.ReservationArrived}, model.ReservationCompleted},
	"no-show":  {[]string{model.ReservationNew, model.ReservationConfirmed}, model.ReservationNoShow},
}

// CreateReservation handles POST /v1/reservations.  It validates the
// requested slot against the grid and the current plan and creates the
// reservation in status NEW.  A slot that is blocked or already full for
// the party returns 409 so the phone staff can offer an alternative.
func (h *BackofficeHandler) CreateReservation(c echo.Context) error {
	var body struct {
		Date        string  `json:"date"`
		StartTime   string  `json:"start_time"`
		DurationMin *uint32 `json:"duration_min"`
		PartySize   uint32  `json:"party_size"`
		GuestName   string  `json:"guest_name"`
		GuestPhone  string  `json:"guest_phone"`
		GuestEmail  *string `json:"guest_email"`
		Notes       *string `json:"notes"`
		EventID     *uint64 `json:"event_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.GuestName) == "" || strings.TrimSpace(body.GuestPhone) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guest_name and guest_phone are required"})
	}
	if body.PartySize == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "party_size must be greater than zero"})
	}
	if _, err := booking.ParseDate(body.Date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	startMin, err := booking.ParseClock(body.StartTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_time must be HH:MM"})
	}
	grid := h.grid()
	if grid.Closed(body.Date) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "closed on this date"})
	}
	if startMin < grid.OpenMin || startMin >= grid.CloseMin || (startMin-grid.OpenMin)%grid.SlotMin != 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_time is not on the slot grid"})
	}
	duration := uint32(grid.DwellMin)
	if body.DurationMin != nil && *body.DurationMin > 0 {
		duration = *body.DurationMin
	}
	if body.EventID != nil {
		if _, err := h.EventRepo.GetByID(c.Request().Context(), *body.EventID); err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}

	// Check the requested slot against the current plan before writing.
	ctx := c.Request().Context()
	tables, err := h.loadPlanTables(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	bookings, err := h.loadBookings(ctx, body.Date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	blocks, err := h.loadBlocks(ctx, body.Date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	// Resolve with the requested duration so a long booking cannot slip
	// into a slot whose tail is already taken.
	checkGrid := grid
	checkGrid.DwellMin = int(duration)
	slots := booking.ResolveAvailability(checkGrid, body.Date, body.PartySize, nil, tables, bookings, blocks, h.Plan.NonCombinable)
	wanted := booking.FormatClock(startMin)
	for _, s := range slots {
		if s.Time != wanted {
			continue
		}
		if !s.Open {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slot not available", "reason": s.Reason})
		}
		break
	}

	res := &model.Reservation{
		Date:        body.Date,
		StartTime:   wanted,
		DurationMin: duration,
		PartySize:   body.PartySize,
		GuestName:   strings.TrimSpace(body.GuestName),
		GuestPhone:  strings.TrimSpace(body.GuestPhone),
		GuestEmail:  body.GuestEmail,
		Notes:       body.Notes,
		EventID:     body.EventID,
	}
	if err := h.ReservationRepo.Create(ctx, res); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create reservation"})
	}
	return c.JSON(http.StatusCreated, res)
}

// ListReservations handles GET /v1/reservations?date=&status=.
func (h *BackofficeHandler) ListReservations(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if _, err := booking.ParseDate(date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	items, err := h.ReservationRepo.ListByDate(c.Request().Context(), date, strings.TrimSpace(c.QueryParam("status")))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetReservation handles GET /v1/reservations/:id.
func (h *BackofficeHandler) GetReservation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	res, err := h.ReservationRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, res)
}

// UpdateReservation handles PUT /v1/reservations/:id and updates the
// guest and slot fields.  Completed, cancelled and no-show bookings are
// immutable.
func (h *BackofficeHandler) UpdateReservation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cur, err := h.ReservationRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !model.ActiveStatus(cur.Status) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "reservation is closed"})
	}
	var body struct {
		Date        *string `json:"date"`
		StartTime   *string `json:"start_time"`
		DurationMin *uint32 `json:"duration_min"`
		PartySize   *uint32 `json:"party_size"`
		GuestName   *string `json:"guest_name"`
		GuestPhone  *string `json:"guest_phone"`
		GuestEmail  *string `json:"guest_email"`
		Notes       *string `json:"notes"`
		EventID     *uint64 `json:"event_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Date != nil {
		if _, err := booking.ParseDate(*body.Date); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
		}
		cur.Date = *body.Date
	}
	if body.StartTime != nil {
		min, err := booking.ParseClock(*body.StartTime)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_time must be HH:MM"})
		}
		cur.StartTime = booking.FormatClock(min)
	}
	if body.DurationMin != nil && *body.DurationMin > 0 {
		cur.DurationMin = *body.DurationMin
	}
	if body.PartySize != nil {
		if *body.PartySize == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "party_size must be greater than zero"})
		}
		cur.PartySize = *body.PartySize
	}
	if body.GuestName != nil && strings.TrimSpace(*body.GuestName) != "" {
		cur.GuestName = strings.TrimSpace(*body.GuestName)
	}
	if body.GuestPhone != nil && strings.TrimSpace(*body.GuestPhone) != "" {
		cur.GuestPhone = strings.TrimSpace(*body.GuestPhone)
	}
	if body.GuestEmail != nil {
		cur.GuestEmail = body.GuestEmail
	}
	if body.Notes != nil {
		cur.Notes = body.Notes
	}
	if body.EventID != nil {
		cur.EventID = body.EventID
	}
	if err := h.ReservationRepo.Update(c.Request().Context(), cur); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	fresh, err := h.ReservationRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, fresh)
}

// ReservationAction handles the lifecycle endpoints
// POST /v1/reservations/:id/{confirm,cancel,arrive,complete,no-show}.
// The allowed transitions are defined in reservationActions; a confirm
// additionally publishes the confirmation event to the broker.
func (h *BackofficeHandler) ReservationAction(action string) echo.HandlerFunc {
	return func(c echo.Context) error {
		spec, ok := reservationActions[action]
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown action"})
		}
		who, err := subject(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		id, err := pathID(c, "id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		ctx := c.Request().Context()
		cur, err := h.ReservationRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrReservationNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		allowed := false
		for _, f := range spec.from {
			if cur.Status == f {
				allowed = true
				break
			}
		}
		if !allowed {
			return c.JSON(http.StatusConflict, echo.Map{"error": "illegal status transition"})
		}
		if err := h.ReservationRepo.UpdateStatus(ctx, id, cur.Status, spec.to); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return c.JSON(http.StatusConflict, echo.Map{"error": "illegal status transition"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		fresh, err := h.ReservationRepo.GetByID(ctx, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		if action == "confirm" {
			// Fire and forget; delivery problems never fail the action.
			_ = queue_publisher.PublishReservationConfirmed(ctx, confirmationEvent(fresh, who))
		}
		return c.JSON(http.StatusOK, fresh)
	}
}

// ResendConfirmation handles POST /v1/reservations/:id/resend and
// republishes the confirmation event for an already confirmed booking.
// The actual guest notification is delivered by an external consumer.
func (h *BackofficeHandler) ResendConfirmation(c echo.Context) error {
	who, err := subject(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	res, err := h.ReservationRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if res.Status != model.ReservationConfirmed {
		return c.JSON(http.StatusConflict, echo.Map{"error": "reservation is not confirmed"})
	}
	if err := queue_publisher.PublishReservationConfirmed(c.Request().Context(), confirmationEvent(res, who)); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "could not publish confirmation"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "queued"})
}

// AssignTable handles PUT /v1/reservations/:id/table.  A null table_id
// clears the assignment.  The table must be active, admit the party and
// be free of blocks and other bookings during the reservation window.
func (h *BackofficeHandler) AssignTable(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		TableID *uint64 `json:"table_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	res, err := h.ReservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !model.ActiveStatus(res.Status) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "reservation is closed"})
	}
	if body.TableID != nil {
		tbl, err := h.TableRepo.GetByID(ctx, *body.TableID)
		if err != nil {
			if errors.Is(err, repository.ErrTableNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		if !tbl.IsActive {
			return c.JSON(http.StatusConflict, echo.Map{"error": "table is out of service"})
		}
		if res.PartySize < tbl.SeatMin || res.PartySize > tbl.SeatMax {
			return c.JSON(http.StatusConflict, echo.Map{"error": "party does not fit this table"})
		}
		free, err := h.tableFree(ctx, res, tbl.ID, planTable(*tbl))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		if !free {
			return c.JSON(http.StatusConflict, echo.Map{"error": "table is taken in this window"})
		}
	}
	if err := h.ReservationRepo.AssignTable(ctx, id, body.TableID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	fresh, err := h.ReservationRepo.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, fresh)
}

// tableFree reports whether the table is neither blocked nor taken by
// another active reservation during the window of res.
func (h *BackofficeHandler) tableFree(ctx context.Context, res *model.Reservation, tableID uint64, tbl booking.Table) (bool, error) {
	startMin, err := booking.ParseClock(res.StartTime)
	if err != nil {
		return false, err
	}
	endMin := startMin + int(res.DurationMin)
	bookings, err := h.loadBookings(ctx, res.Date)
	if err != nil {
		return false, err
	}
	for _, bk := range bookings {
		if bk.ID == res.ID || bk.TableID == nil || *bk.TableID != tableID {
			continue
		}
		if !model.ActiveStatus(bk.Status) {
			continue
		}
		if startMin < bk.EndMin && bk.StartMin < endMin {
			return false, nil
		}
	}
	blocks, err := h.loadBlocks(ctx, res.Date)
	if err != nil {
		return false, err
	}
	for _, b := range blocks {
		if startMin >= b.EndMin || b.StartMin >= endMin {
			continue
		}
		if b.AreaID == nil || *b.AreaID == tbl.AreaID {
			return false, nil
		}
	}
	return true, nil
}

// confirmationEvent builds the queue payload for a confirmed booking.
func confirmationEvent(res *model.Reservation, who string) queue.ReservationConfirmedEvent {
	return queue.ReservationConfirmedEvent{
		ReservationID: res.ID,
		Date:          res.Date,
		StartTime:     res.StartTime,
		PartySize:     res.PartySize,
		GuestName:     res.GuestName,
		GuestPhone:    res.GuestPhone,
		GuestEmail:    res.GuestEmail,
		TableID:       res.TableID,
		ConfirmedBy:   who,
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}
