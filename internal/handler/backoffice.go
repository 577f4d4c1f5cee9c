package handler

import (
	"context"

	"github.com/carlsburger/GastroCore-sub002/internal/booking"
	"github.com/carlsburger/GastroCore-sub002/internal/config"
	"github.com/carlsburger/GastroCore-sub002/internal/model"
	"github.com/carlsburger/GastroCore-sub002/internal/repository"
)

// BackofficeHandler bundles the repositories behind the table plan:
// reservations, tables, areas, event blocks and combinations.  The plan
// configuration carries the fixed slot grid and the permanently
// non-combinable table numbers.  All methods assume that JWT
// authentication and role validation has already been performed by
// middleware.
type BackofficeHandler struct {
	ReservationRepo *repository.ReservationRepo // reservation persistence
	TableRepo       *repository.TableRepo       // floor-plan tables
	AreaRepo        *repository.AreaRepo        // seating areas
	EventRepo       *repository.EventRepo       // event and blackout blocks
	ComboRepo       *repository.CombinationRepo // table combinations
	Plan            config.PlanConfig           // slot grid configuration
}

// NewBackofficeHandler constructs a BackofficeHandler and panics if any
// repository is nil.
func NewBackofficeHandler(resRepo *repository.ReservationRepo, tableRepo *repository.TableRepo, areaRepo *repository.AreaRepo, eventRepo *repository.EventRepo, comboRepo *repository.CombinationRepo, plan config.PlanConfig) *BackofficeHandler {
	if resRepo == nil || tableRepo == nil || areaRepo == nil || eventRepo == nil || comboRepo == nil {
		panic("nil repository passed to NewBackofficeHandler")
	}
	return &BackofficeHandler{
		ReservationRepo: resRepo,
		TableRepo:       tableRepo,
		AreaRepo:        areaRepo,
		EventRepo:       eventRepo,
		ComboRepo:       comboRepo,
		Plan:            plan,
	}
}

// grid builds the slot grid from the plan configuration.
func (h *BackofficeHandler) grid() booking.Grid {
	return booking.Grid{
		OpenMin:   h.Plan.OpenMin,
		CloseMin:  h.Plan.CloseMin,
		SlotMin:   h.Plan.SlotMinutes,
		DwellMin:  h.Plan.DwellMinutes,
		ClosedDay: h.Plan.ClosedDay,
	}
}

// planTable maps a floor-plan row into the lightweight view used by the
// availability and occupancy calculations.
func planTable(t model.Table) booking.Table {
	return booking.Table{
		ID:         t.ID,
		Number:     t.Number,
		AreaID:     t.AreaID,
		SubArea:    t.SubArea,
		SeatMin:    t.SeatMin,
		SeatMax:    t.SeatMax,
		Combinable: t.Combinable,
		Active:     t.IsActive,
	}
}

// loadPlanTables loads the whole floor plan (inactive tables included,
// the calculations skip them) in booking form.
func (h *BackofficeHandler) loadPlanTables(ctx context.Context) ([]booking.Table, error) {
	rows, err := h.TableRepo.List(ctx, nil, false)
	if err != nil {
		return nil, err
	}
	out := make([]booking.Table, 0, len(rows))
	for _, t := range rows {
		out = append(out, planTable(t))
	}
	return out, nil
}

// loadBookings loads the reservations of a date as occupation windows.
// Rows with unparseable times are skipped rather than failing the whole
// request; the repositories only ever hand out "HH:MM" strings.
func (h *BackofficeHandler) loadBookings(ctx context.Context, date string) ([]booking.Booking, error) {
	rows, err := h.ReservationRepo.ListByDate(ctx, date, "")
	if err != nil {
		return nil, err
	}
	out := make([]booking.Booking, 0, len(rows))
	for _, r := range rows {
		start, err := booking.ParseClock(r.StartTime)
		if err != nil {
			continue
		}
		out = append(out, booking.Booking{
			ID:        r.ID,
			TableID:   r.TableID,
			PartySize: r.PartySize,
			Status:    r.Status,
			StartMin:  start,
			EndMin:    start + int(r.DurationMin),
		})
	}
	return out, nil
}

// loadBlocks loads the event blocks of a date as blocked windows.
func (h *BackofficeHandler) loadBlocks(ctx context.Context, date string) ([]booking.Block, error) {
	rows, err := h.EventRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make([]booking.Block, 0, len(rows))
	for _, e := range rows {
		start, err1 := booking.ParseClock(e.StartTime)
		end, err2 := booking.ParseClock(e.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, booking.Block{
			ID:       e.ID,
			Title:    e.Title,
			AreaID:   e.AreaID,
			StartMin: start,
			EndMin:   end,
		})
	}
	return out, nil
}

// loadCombos loads the combinations of a date as capacity windows.
func (h *BackofficeHandler) loadCombos(ctx context.Context, date string) ([]booking.Combination, error) {
	rows, err := h.ComboRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make([]booking.Combination, 0, len(rows))
	for _, cb := range rows {
		start, err1 := booking.ParseClock(cb.StartTime)
		end, err2 := booking.ParseClock(cb.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, booking.Combination{
			ID:            cb.ID,
			StartMin:      start,
			EndMin:        end,
			TotalCapacity: cb.TotalCapacity,
			TableIDs:      cb.TableIDs,
		})
	}
	return out, nil
}
