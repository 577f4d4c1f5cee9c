package booking

// Table is the floor-plan view of a physical table as needed by the
// resolver and aggregator.  Handlers map repository rows into this type.
type Table struct {
	ID         uint64
	Number     uint32
	AreaID     uint64
	SubArea    string
	SeatMin    uint32
	SeatMax    uint32
	Combinable bool
	Active     bool
}

// Booking is the slice of a reservation relevant for capacity checks:
// its occupation window, party size, lifecycle status and optional
// table assignment.  Times are minutes from midnight on the queried
// date.
type Booking struct {
	ID        uint64
	TableID   *uint64
	PartySize uint32
	Status    string
	StartMin  int
	EndMin    int
}

// Block is an event or blackout window.  AreaID nil means the whole
// house is blocked.
type Block struct {
	ID       uint64
	Title    string
	AreaID   *uint64
	StartMin int
	EndMin   int
}

// Combination is an active table combination window with its members.
type Combination struct {
	ID            uint64
	StartMin      int
	EndMin        int
	TotalCapacity uint32
	TableIDs      []uint64
}

// blockedTable reports whether any block covers the given table during
// the window.  Whole-house blocks cover every table.
func blockedTable(t Table, blocks []Block, winStart, winEnd int) bool {
	for _, b := range blocks {
		if !overlaps(winStart, winEnd, b.StartMin, b.EndMin) {
			continue
		}
		if b.AreaID == nil || *b.AreaID == t.AreaID {
			return true
		}
	}
	return false
}
