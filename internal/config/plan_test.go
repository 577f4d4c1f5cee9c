package config

import (
	"testing"
	"time"
)

func TestLoadPlanConfigDefaults(t *testing.T) {
	for _, k := range []string{"PLAN_OPEN_TIME", "PLAN_CLOSE_TIME", "PLAN_SLOT_MINUTES",
		"PLAN_DWELL_MINUTES", "PLAN_CLOSED_WEEKDAY", "PLAN_NONCOMBINABLE"} {
		t.Setenv(k, "")
	}
	p := LoadPlanConfig()
	if p.OpenMin != 11*60+30 || p.CloseMin != 22*60+30 {
		t.Errorf("default hours = %d..%d, want 690..1350", p.OpenMin, p.CloseMin)
	}
	if p.SlotMinutes != 30 || p.DwellMinutes != 120 {
		t.Errorf("default grid = %d/%d, want 30/120", p.SlotMinutes, p.DwellMinutes)
	}
	if p.ClosedDay != time.Monday {
		t.Errorf("default closing day = %v, want Monday", p.ClosedDay)
	}
	if len(p.NonCombinable) != 0 {
		t.Errorf("default exclusion list not empty: %v", p.NonCombinable)
	}
}

func TestLoadPlanConfigFromEnv(t *testing.T) {
	t.Setenv("PLAN_OPEN_TIME", "17:00")
	t.Setenv("PLAN_CLOSE_TIME", "23:00")
	t.Setenv("PLAN_SLOT_MINUTES", "15")
	t.Setenv("PLAN_DWELL_MINUTES", "90")
	t.Setenv("PLAN_CLOSED_WEEKDAY", "sunday")
	t.Setenv("PLAN_NONCOMBINABLE", "12, 14,99")

	p := LoadPlanConfig()
	if p.OpenMin != 17*60 || p.CloseMin != 23*60 {
		t.Errorf("hours = %d..%d, want 1020..1380", p.OpenMin, p.CloseMin)
	}
	if p.SlotMinutes != 15 || p.DwellMinutes != 90 {
		t.Errorf("grid = %d/%d, want 15/90", p.SlotMinutes, p.DwellMinutes)
	}
	if p.ClosedDay != time.Sunday {
		t.Errorf("closing day = %v, want Sunday", p.ClosedDay)
	}
	for _, n := range []uint32{12, 14, 99} {
		if !p.NonCombinable[n] {
			t.Errorf("table %d missing from exclusion list", n)
		}
	}
	if len(p.NonCombinable) != 3 {
		t.Errorf("exclusion list = %v, want 3 entries", p.NonCombinable)
	}
}

func TestLoadPlanConfigNormalizesBadValues(t *testing.T) {
	t.Setenv("PLAN_OPEN_TIME", "late")
	t.Setenv("PLAN_CLOSE_TIME", "09:00") // before the (default) open time
	t.Setenv("PLAN_SLOT_MINUTES", "-5")
	t.Setenv("PLAN_DWELL_MINUTES", "10") // shorter than a slot
	t.Setenv("PLAN_CLOSED_WEEKDAY", "Ruhetag")
	t.Setenv("PLAN_NONCOMBINABLE", "x,y")

	p := LoadPlanConfig()
	if p.OpenMin != 11*60+30 {
		t.Errorf("unparseable open time = %d, want default 690", p.OpenMin)
	}
	if p.SlotMinutes != 30 {
		t.Errorf("negative slot width = %d, want 30", p.SlotMinutes)
	}
	if p.DwellMinutes < p.SlotMinutes {
		t.Errorf("dwell %d shorter than slot %d", p.DwellMinutes, p.SlotMinutes)
	}
	if p.CloseMin <= p.OpenMin {
		t.Errorf("close %d not after open %d", p.CloseMin, p.OpenMin)
	}
	if p.ClosedDay != time.Monday {
		t.Errorf("unknown weekday = %v, want Monday fallback", p.ClosedDay)
	}
	if len(p.NonCombinable) != 0 {
		t.Errorf("garbage numbers parsed: %v", p.NonCombinable)
	}
}
