package model

import "testing"

func TestContentTransition(t *testing.T) {
	cases := []struct {
		action  string
		current string
		want    string
		ok      bool
	}{
		{"submit", ContentDraft, ContentReview, true},
		{"reject", ContentReview, ContentDraft, true},
		{"approve", ContentReview, ContentApproved, true},
		{"publish", ContentApproved, ContentPublished, true},
		{"archive", ContentPublished, ContentArchived, true},

		// Illegal jumps and replays.
		{"submit", ContentReview, "", false},
		{"approve", ContentDraft, "", false},
		{"publish", ContentReview, "", false},
		{"publish", ContentPublished, "", false},
		{"archive", ContentDraft, "", false},
		{"reject", ContentApproved, "", false},
		{"unknown", ContentDraft, "", false},
	}
	for _, c := range cases {
		got, ok := ContentTransition(c.action, c.current)
		if ok != c.ok || got != c.want {
			t.Errorf("ContentTransition(%q, %q) = (%q, %v), want (%q, %v)",
				c.action, c.current, got, ok, c.want, c.ok)
		}
	}
}

func TestActiveStatus(t *testing.T) {
	active := []string{ReservationNew, ReservationConfirmed, ReservationArrived}
	for _, s := range active {
		if !ActiveStatus(s) {
			t.Errorf("%s should consume capacity", s)
		}
	}
	inactive := []string{ReservationCancelled, ReservationNoShow, ReservationCompleted}
	for _, s := range inactive {
		if ActiveStatus(s) {
			t.Errorf("%s should not consume capacity", s)
		}
	}
}
