package model

import "time"

// EventBlock marks a period during which tables are not bookable, for
// example a closed society, a private party or a maintenance blackout.
// A block either covers a single area or, when AreaID is nil, the whole
// house.  Blocks remove their slots from the availability grid and set
// affected tables to BLOCKED in the occupancy view.
//
// Fields:
//  ID        – primary key identifier.
//  Title     – short description shown in the table plan.
//  Date      – service date ("YYYY-MM-DD").
//  StartTime – first blocked slot ("HH:MM").
//  EndTime   – end of the blocked window ("HH:MM", exclusive).
//  AreaID    – blocked area, nil when the whole house is blocked.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type EventBlock struct {
	ID        uint64    // event_blocks.id
	Title     string    // event_blocks.title
	Date      string    // event_blocks.block_date
	StartTime string    // event_blocks.start_time
	EndTime   string    // event_blocks.end_time
	AreaID    *uint64   // event_blocks.area_id (nullable)
	CreatedAt time.Time // event_blocks.created_at
	UpdatedAt time.Time // event_blocks.updated_at
}
