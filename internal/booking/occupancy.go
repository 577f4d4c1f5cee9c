package booking

import (
	"sort"

	"github.com/carlsburger/GastroCore-sub002/internal/model"
)

// Per-table occupancy statuses.  Exactly one status is produced per
// table, with precedence BLOCKED > OCCUPIED > RESERVED > FREE.
const (
	StatusFree     = "FREE"
	StatusReserved = "RESERVED"
	StatusOccupied = "OCCUPIED"
	StatusBlocked  = "BLOCKED"
)

// TableStatus is one row of the occupancy view: the table, its derived
// status and the reservation or combination responsible for it.
type TableStatus struct {
	TableID       uint64  `json:"table_id"`
	Number        uint32  `json:"number"`
	AreaID        uint64  `json:"area_id"`
	SubArea       string  `json:"sub_area"`
	Status        string  `json:"status"`
	ReservationID *uint64 `json:"reservation_id,omitempty"`
	CombinationID *uint64 `json:"combination_id,omitempty"`
}

// AggregateOccupancy joins the floor plan with the reservations, blocks
// and combinations overlapping the queried window and derives one status
// per table.  A table appears exactly once in the result even when two
// non-cancelled reservations overlap it: the seated (ARRIVED) booking
// wins, otherwise the oldest reservation id is reported.  Inactive
// tables are skipped; areaID restricts the view to a single area.
// Results are ordered by table number.
func AggregateOccupancy(tables []Table, bookings []Booking, blocks []Block, combos []Combination, winStart, winEnd int, areaID *uint64) []TableStatus {
	// Index combination membership for the window.
	comboOf := make(map[uint64]uint64)
	for _, c := range combos {
		if !overlaps(winStart, winEnd, c.StartMin, c.EndMin) {
			continue
		}
		for _, id := range c.TableIDs {
			comboOf[id] = c.ID
		}
	}

	out := make([]TableStatus, 0, len(tables))
	for _, t := range tables {
		if !t.Active {
			continue
		}
		if areaID != nil && t.AreaID != *areaID {
			continue
		}
		ts := TableStatus{
			TableID: t.ID,
			Number:  t.Number,
			AreaID:  t.AreaID,
			SubArea: t.SubArea,
			Status:  StatusFree,
		}
		if cid, ok := comboOf[t.ID]; ok {
			c := cid
			ts.CombinationID = &c
		}

		switch {
		case blockedTable(t, blocks, winStart, winEnd):
			ts.Status = StatusBlocked
		default:
			if resID, seated, ok := pickBooking(t.ID, bookings, winStart, winEnd); ok {
				id := resID
				ts.ReservationID = &id
				if seated {
					ts.Status = StatusOccupied
				} else {
					ts.Status = StatusReserved
				}
			}
		}
		out = append(out, ts)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// pickBooking selects the single reservation reported for a table.
// Seated bookings take precedence; among equals the lowest reservation
// id wins so the result is deterministic and never double-counts.
func pickBooking(tableID uint64, bookings []Booking, winStart, winEnd int) (uint64, bool, bool) {
	var (
		found  bool
		seated bool
		resID  uint64
	)
	for _, bk := range bookings {
		if bk.TableID == nil || *bk.TableID != tableID {
			continue
		}
		if !overlaps(winStart, winEnd, bk.StartMin, bk.EndMin) {
			continue
		}
		arrived := bk.Status == model.ReservationArrived
		if !arrived && !model.ActiveStatus(bk.Status) {
			continue
		}
		if !found || (arrived && !seated) || (arrived == seated && bk.ID < resID) {
			found = true
			seated = arrived
			resID = bk.ID
		}
	}
	return resID, seated, found
}
