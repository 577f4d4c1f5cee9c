package model

import "time"

// TableCombination is a temporary merge of two or more physical tables
// into one bookable unit for a specific date and time window.  Member
// tables must share area and sub-area and must all be combinable; the
// total capacity is the sum of the members' seat maxima.  Members are
// stored in the combination_tables join table.
//
// Fields:
//  ID            – primary key identifier.
//  Date          – service date ("YYYY-MM-DD").
//  StartTime     – start of the window ("HH:MM").
//  EndTime       – end of the window ("HH:MM", exclusive).
//  TotalCapacity – sum of member seat maxima.
//  TableIDs      – ids of the member tables.
//  CreatedAt     – creation timestamp.
type TableCombination struct {
	ID            uint64    // table_combinations.id
	Date          string    // table_combinations.combo_date
	StartTime     string    // table_combinations.start_time
	EndTime       string    // table_combinations.end_time
	TotalCapacity uint32    // table_combinations.total_capacity
	TableIDs      []uint64  // combination_tables.table_id rows
	CreatedAt     time.Time // table_combinations.created_at
}
