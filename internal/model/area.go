package model

import "time"

// Area represents a physical seating zone of the restaurant, for example
// "Restaurant" or "Terrasse".  Areas are subdivided further through the
// sub_area column on tables (e.g. "Saal" and "Wintergarten").  This struct
// corresponds to a row in the `areas` table.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – unique area name.
//  Description – optional free text shown in the table plan.
//  Capacity    – nominal number of guests the area can seat.
//  IsActive    – whether the area is currently in service.
//  CreatedAt   – timestamp when the area was created.
//  UpdatedAt   – timestamp of last update.
type Area struct {
	ID          uint64    // areas.id
	Name        string    // areas.name
	Description *string   // areas.description (nullable)
	Capacity    uint32    // areas.capacity
	IsActive    bool      // areas.is_active
	CreatedAt   time.Time // areas.created_at
	UpdatedAt   time.Time // areas.updated_at
}
