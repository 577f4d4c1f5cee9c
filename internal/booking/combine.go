package booking

import "errors"

// Validation errors returned by ValidateCombination.  Handlers map
// these onto HTTP 400/404 responses.
var (
	ErrTooFewTables  = errors.New("a combination needs at least two tables")
	ErrUnknownTable  = errors.New("unknown or inactive table")
	ErrNotCombinable = errors.New("table is not combinable")
	ErrCrossArea     = errors.New("tables span different areas")
	ErrCrossSubArea  = errors.New("tables span different sub-areas")
	ErrDuplicateID   = errors.New("duplicate table in combination")
)

// ValidateCombination checks whether the given tables may be merged into
// one bookable unit and returns the aggregate capacity (sum of the seat
// maxima).  The rules from the floor plan:
//
//   - at least two distinct tables,
//   - every table must exist, be active and be flagged combinable,
//   - table numbers on the permanent non-combinable list never combine,
//   - all members share the same area and the same sub-area.
//
// tables indexes the floor plan by table id; nonCombinable lists table
// numbers that are permanently excluded from combinations.
func ValidateCombination(ids []uint64, tables map[uint64]Table, nonCombinable map[uint32]bool) (uint32, error) {
	if len(ids) < 2 {
		return 0, ErrTooFewTables
	}
	seen := make(map[uint64]bool, len(ids))
	var capacity uint32
	var first Table
	for i, id := range ids {
		if seen[id] {
			return 0, ErrDuplicateID
		}
		seen[id] = true
		t, ok := tables[id]
		if !ok || !t.Active {
			return 0, ErrUnknownTable
		}
		if !t.Combinable || nonCombinable[t.Number] {
			return 0, ErrNotCombinable
		}
		if i == 0 {
			first = t
		} else {
			if t.AreaID != first.AreaID {
				return 0, ErrCrossArea
			}
			if t.SubArea != first.SubArea {
				return 0, ErrCrossSubArea
			}
		}
		capacity += t.SeatMax
	}
	return capacity, nil
}
