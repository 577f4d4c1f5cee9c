package booking

import (
	"testing"

	"github.com/carlsburger/GastroCore-sub002/internal/model"
)

func statusOf(t *testing.T, rows []TableStatus, tableID uint64) TableStatus {
	t.Helper()
	for _, r := range rows {
		if r.TableID == tableID {
			return r
		}
	}
	t.Fatalf("table %d missing from occupancy", tableID)
	return TableStatus{}
}

func TestAggregateOccupancyStatuses(t *testing.T) {
	tables := planTables()
	t1, t3 := uint64(1), uint64(3)
	area2 := uint64(2)
	bookings := []Booking{
		{ID: 10, TableID: &t1, PartySize: 4, Status: model.ReservationConfirmed, StartMin: 18 * 60, EndMin: 20 * 60},
		{ID: 11, TableID: &t3, PartySize: 2, Status: model.ReservationArrived, StartMin: 18 * 60, EndMin: 20 * 60},
	}
	blocks := []Block{{ID: 1, AreaID: nil, StartMin: 21 * 60, EndMin: 23 * 60}}

	rows := AggregateOccupancy(tables, bookings, blocks, nil, 18*60, 20*60, nil)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if got := statusOf(t, rows, 1); got.Status != StatusReserved || got.ReservationID == nil || *got.ReservationID != 10 {
		t.Errorf("table 1 = %+v, want RESERVED by 10", got)
	}
	if got := statusOf(t, rows, 2); got.Status != StatusFree {
		t.Errorf("table 2 = %+v, want FREE", got)
	}
	if got := statusOf(t, rows, 3); got.Status != StatusOccupied || *got.ReservationID != 11 {
		t.Errorf("table 3 = %+v, want OCCUPIED by 11", got)
	}

	// The evening block wins over everything inside its window.
	rows = AggregateOccupancy(tables, bookings, blocks, nil, 21*60, 23*60, nil)
	for _, r := range rows {
		if r.Status != StatusBlocked {
			t.Errorf("table %d = %s during whole-house block, want BLOCKED", r.TableID, r.Status)
		}
	}

	// Area filter narrows the view.
	rows = AggregateOccupancy(tables, bookings, nil, nil, 18*60, 20*60, &area2)
	if len(rows) != 1 || rows[0].TableID != 3 {
		t.Errorf("area filter returned %+v, want only table 3", rows)
	}
}

func TestAggregateOccupancyNeverDoubleCounts(t *testing.T) {
	tables := planTables()
	t1 := uint64(1)
	// Two overlapping non-cancelled reservations point at the same
	// table.  The table must appear exactly once; the seated booking
	// wins.
	bookings := []Booking{
		{ID: 30, TableID: &t1, PartySize: 2, Status: model.ReservationConfirmed, StartMin: 18 * 60, EndMin: 20 * 60},
		{ID: 31, TableID: &t1, PartySize: 3, Status: model.ReservationArrived, StartMin: 19 * 60, EndMin: 21 * 60},
	}
	rows := AggregateOccupancy(tables, bookings, nil, nil, 18*60, 21*60, nil)
	seen := 0
	for _, r := range rows {
		if r.TableID == 1 {
			seen++
		}
	}
	if seen != 1 {
		t.Fatalf("table 1 appears %d times, want exactly once", seen)
	}
	got := statusOf(t, rows, 1)
	if got.Status != StatusOccupied || *got.ReservationID != 31 {
		t.Errorf("table 1 = %+v, want OCCUPIED by the seated booking 31", got)
	}

	// Without a seated party the lowest reservation id is reported.
	bookings[1].Status = model.ReservationConfirmed
	got = statusOf(t, AggregateOccupancy(tables, bookings, nil, nil, 18*60, 21*60, nil), 1)
	if got.Status != StatusReserved || *got.ReservationID != 30 {
		t.Errorf("table 1 = %+v, want RESERVED by 30", got)
	}
}

func TestAggregateOccupancyCombinationAnnotation(t *testing.T) {
	tables := planTables()
	combos := []Combination{{ID: 5, StartMin: 18 * 60, EndMin: 21 * 60, TotalCapacity: 8, TableIDs: []uint64{1, 2}}}

	rows := AggregateOccupancy(tables, nil, nil, combos, 18*60, 20*60, nil)
	for _, id := range []uint64{1, 2} {
		got := statusOf(t, rows, id)
		if got.CombinationID == nil || *got.CombinationID != 5 {
			t.Errorf("table %d missing combination annotation: %+v", id, got)
		}
	}
	if got := statusOf(t, rows, 3); got.CombinationID != nil {
		t.Errorf("table 3 should not be annotated: %+v", got)
	}

	// Outside the combination window the annotation disappears.
	rows = AggregateOccupancy(tables, nil, nil, combos, 12*60, 14*60, nil)
	if got := statusOf(t, rows, 1); got.CombinationID != nil {
		t.Errorf("stale combination annotation: %+v", got)
	}
}
