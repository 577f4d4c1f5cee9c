// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationConfirmedEvent is published when a reservation is confirmed
// by the service staff.  It contains enough information for downstream
// consumers to log, notify the guest, or trigger analytics without
// querying the primary database.
type ReservationConfirmedEvent struct {
    ReservationID uint64  `json:"reservation_id"`
    Date          string  `json:"date"`
    StartTime     string  `json:"start_time"`
    PartySize     uint32  `json:"party_size"`
    GuestName     string  `json:"guest_name"`
    GuestPhone    string  `json:"guest_phone"`
    GuestEmail    *string `json:"guest_email,omitempty"`
    TableID       *uint64 `json:"table_id,omitempty"`
    ConfirmedBy   string  `json:"confirmed_by"`
    ConfirmedAt   string  `json:"confirmed_at"`
}
