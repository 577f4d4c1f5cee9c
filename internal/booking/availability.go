package booking

import (
	"github.com/carlsburger/GastroCore-sub002/internal/model"
)

// Slot availability reasons returned when a slot is not open.
const (
	ReasonBlocked = "BLOCKED" // an event block covers the slot
	ReasonFull    = "FULL"    // no table or combination fits the party
)

// SlotAvailability describes one slot of the grid for a requested party.
// FreeSeats is the remaining seat capacity among suitable tables after
// subtracting overlapping reservations; Open tells whether the party can
// actually be seated (a fitting table or combination exists).
type SlotAvailability struct {
	Time      string `json:"time"`
	Open      bool   `json:"open"`
	FreeSeats uint32 `json:"free_seats"`
	Reason    string `json:"reason,omitempty"`
}

// ResolveAvailability walks the slot grid for a date and computes, per
// slot, whether a party of the given size can be seated.  It is a plain
// linear filter: no search, no backtracking.  The rules are
//
//   - the weekly closing day (and any unparseable date) yields no slots,
//   - a slot whose window intersects an event block is closed for the
//     blocked area (whole-house blocks close the slot entirely),
//   - tables already taken by an overlapping non-cancelled reservation
//     are unavailable; reservations without a table assignment consume
//     seats from the remaining pool,
//   - the party must fit a single free table (seat_min ≤ party ≤
//     seat_max) or, failing that, the combinable free tables of one
//     sub-area must together cover the party.  Table numbers on the
//     permanent non-combinable list never count towards a combined fit,
//     matching ValidateCombination.
//
// areaID restricts the calculation to one area when non-nil.
func ResolveAvailability(g Grid, date string, party uint32, areaID *uint64, tables []Table, bookings []Booking, blocks []Block, nonCombinable map[uint32]bool) []SlotAvailability {
	slots := g.SlotsForDate(date)
	if len(slots) == 0 || party == 0 {
		return []SlotAvailability{}
	}

	out := make([]SlotAvailability, 0, len(slots))
	for _, s := range slots {
		winStart, winEnd := g.Window(s)
		out = append(out, resolveSlot(winStart, winEnd, s, party, areaID, tables, bookings, blocks, nonCombinable))
	}
	return out
}

// resolveSlot computes the availability of a single slot window.
func resolveSlot(winStart, winEnd, slotStart int, party uint32, areaID *uint64, tables []Table, bookings []Booking, blocks []Block, nonCombinable map[uint32]bool) SlotAvailability {
	sa := SlotAvailability{Time: FormatClock(slotStart)}

	// A whole-house block (or a block on the requested area) closes the
	// slot outright.
	for _, b := range blocks {
		if !overlaps(winStart, winEnd, b.StartMin, b.EndMin) {
			continue
		}
		if b.AreaID == nil || (areaID != nil && *b.AreaID == *areaID) {
			sa.Reason = ReasonBlocked
			return sa
		}
	}

	// Tables held by an overlapping reservation that still consumes
	// capacity.  Unassigned reservations are tallied against the pool.
	taken := make(map[uint64]bool)
	var unassignedSeats uint32
	for _, bk := range bookings {
		if !model.ActiveStatus(bk.Status) || !overlaps(winStart, winEnd, bk.StartMin, bk.EndMin) {
			continue
		}
		if bk.TableID != nil {
			taken[*bk.TableID] = true
		} else {
			unassignedSeats += bk.PartySize
		}
	}

	// Collect the free, suitable tables.
	var free []Table
	var pool uint32
	for _, t := range tables {
		if !t.Active || taken[t.ID] {
			continue
		}
		if areaID != nil && t.AreaID != *areaID {
			continue
		}
		if blockedTable(t, blocks, winStart, winEnd) {
			continue
		}
		free = append(free, t)
		pool += t.SeatMax
	}
	if pool > unassignedSeats {
		sa.FreeSeats = pool - unassignedSeats
	}

	if !partyFits(party, free, nonCombinable) || sa.FreeSeats < party {
		sa.Reason = ReasonFull
		return sa
	}
	sa.Open = true
	return sa
}

// partyFits reports whether the party fits a single free table or the
// combinable free tables of one sub-area.  Tables whose number is on
// the permanent non-combinable list only ever count alone.
func partyFits(party uint32, free []Table, nonCombinable map[uint32]bool) bool {
	// Single table first: the seat range must admit the party.
	for _, t := range free {
		if t.SeatMin <= party && party <= t.SeatMax {
			return true
		}
	}
	// Otherwise group the combinable tables by area and sub-area; a
	// combination never crosses a sub-area boundary.
	type zone struct {
		area uint64
		sub  string
	}
	sums := make(map[zone]uint32)
	for _, t := range free {
		if !t.Combinable || nonCombinable[t.Number] {
			continue
		}
		z := zone{t.AreaID, t.SubArea}
		sums[z] += t.SeatMax
		if sums[z] >= party {
			return true
		}
	}
	return false
}
