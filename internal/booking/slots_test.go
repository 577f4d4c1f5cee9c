package booking

import (
	"testing"
	"time"
)

func testGrid() Grid {
	return Grid{
		OpenMin:   11*60 + 30,
		CloseMin:  22*60 + 30,
		SlotMin:   30,
		DwellMin:  120,
		ClosedDay: time.Monday,
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"11:30", 11*60 + 30, true},
		{"00:00", 0, true},
		{"23:59", 23*60 + 59, true},
		{"24:00", 0, false},
		{"7:5", 0, false},
		{"noon", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("ParseClock(%q) = %d, %v; want %d", c.in, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseClock(%q) expected error", c.in)
		}
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, min := range []int{0, 11*60 + 30, 22 * 60, 23*60 + 59} {
		back, err := ParseClock(FormatClock(min))
		if err != nil || back != min {
			t.Errorf("round trip of %d gave %d, %v", min, back, err)
		}
	}
}

func TestSlotsForDate(t *testing.T) {
	g := testGrid()

	// 2026-08-25 is a Tuesday: a regular service day.
	slots := g.SlotsForDate("2026-08-25")
	if len(slots) != 22 {
		t.Fatalf("expected 22 slots, got %d", len(slots))
	}
	if slots[0] != g.OpenMin {
		t.Errorf("first slot = %d, want %d", slots[0], g.OpenMin)
	}
	if last := slots[len(slots)-1]; last >= g.CloseMin {
		t.Errorf("last slot %d reaches past closing %d", last, g.CloseMin)
	}

	// 2026-08-24 is a Monday, the closing day.
	if got := g.SlotsForDate("2026-08-24"); len(got) != 0 {
		t.Errorf("closing day yielded %d slots", len(got))
	}

	// Garbage dates never yield slots.
	if got := g.SlotsForDate("not-a-date"); len(got) != 0 {
		t.Errorf("invalid date yielded %d slots", len(got))
	}
}

func TestWindow(t *testing.T) {
	g := testGrid()
	start, end := g.Window(18 * 60)
	if start != 18*60 || end != 20*60 {
		t.Errorf("Window(18:00) = [%d,%d), want [1080,1200)", start, end)
	}
}
