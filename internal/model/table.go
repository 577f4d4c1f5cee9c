package model

import "time"

// Table describes a physical table on the floor plan.  Tables are
// uniquely identified by their number and belong to exactly one area
// and sub-area.  The seat range describes how many guests the table
// can take on its own; the combinable flag controls whether it may be
// merged with neighbouring tables into a combination.
//
// Fields:
//  ID         – primary key identifier.
//  Number     – table number as printed on the floor plan (unique).
//  AreaID     – area to which this table belongs.
//  SubArea    – subdivision inside the area (e.g. "Saal").
//  SeatMin    – smallest party the table is given to.
//  SeatMax    – largest party the table seats without combining.
//  Combinable – whether the table may join a combination.
//  IsActive   – whether the table is in service.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Table struct {
	ID         uint64    // tables.id
	Number     uint32    // tables.number
	AreaID     uint64    // tables.area_id
	SubArea    string    // tables.sub_area
	SeatMin    uint32    // tables.seat_min
	SeatMax    uint32    // tables.seat_max
	Combinable bool      // tables.combinable
	IsActive   bool      // tables.is_active
	CreatedAt  time.Time // tables.created_at
	UpdatedAt  time.Time // tables.updated_at
}
