package model

import "time"

// Reservation statuses.  A reservation starts as NEW when taken over the
// phone or through the website and moves through the lifecycle by explicit
// staff action.  CANCELLED and NO_SHOW reservations no longer consume
// capacity in the availability and occupancy calculations.
const (
	ReservationNew       = "NEW"
	ReservationConfirmed = "CONFIRMED"
	ReservationArrived   = "ARRIVED"
	ReservationCompleted = "COMPLETED"
	ReservationNoShow    = "NO_SHOW"
	ReservationCancelled = "CANCELLED"
)

// Reservation records a single booking for a given date and time slot.
// Dates are stored as "YYYY-MM-DD" and times as "HH:MM" strings; the
// duration in minutes defines how long the party occupies its table.
//
// Fields:
//  ID          – primary key identifier.
//  Date        – service date ("YYYY-MM-DD").
//  StartTime   – arrival slot ("HH:MM", 24h).
//  DurationMin – occupation length in minutes.
//  PartySize   – number of guests.
//  GuestName   – name the booking was made under.
//  GuestPhone  – contact phone number.
//  GuestEmail  – optional contact email.
//  Notes       – optional free-text notes (allergies, occasion, ...).
//  Status      – lifecycle status, see constants above.
//  TableID     – assigned table, nil while unassigned.
//  EventID     – linked event block, nil for ordinary bookings.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Reservation struct {
	ID          uint64    // reservations.id
	Date        string    // reservations.res_date
	StartTime   string    // reservations.start_time
	DurationMin uint32    // reservations.duration_min
	PartySize   uint32    // reservations.party_size
	GuestName   string    // reservations.guest_name
	GuestPhone  string    // reservations.guest_phone
	GuestEmail  *string   // reservations.guest_email (nullable)
	Notes       *string   // reservations.notes (nullable)
	Status      string    // reservations.status
	TableID     *uint64   // reservations.table_id (nullable)
	EventID     *uint64   // reservations.event_id (nullable)
	CreatedAt   time.Time // reservations.created_at
	UpdatedAt   time.Time // reservations.updated_at
}

// ActiveStatus reports whether a reservation in the given status still
// consumes table capacity.  Cancelled and no-show bookings do not.
func ActiveStatus(status string) bool {
	switch status {
	case ReservationCancelled, ReservationNoShow, ReservationCompleted:
		return false
	}
	return true
}
