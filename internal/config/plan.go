package config

import (
	"strconv"
	"strings"
	"time"
)

// PlanConfig carries the fixed slot grid of the house plus the list of
// permanently non-combinable table numbers.  All values have defaults
// so a bare environment still yields a working table plan:
//
//	PLAN_OPEN_TIME        first bookable slot   (default "11:30")
//	PLAN_CLOSE_TIME       end of service        (default "22:30")
//	PLAN_SLOT_MINUTES     slot width            (default 30)
//	PLAN_DWELL_MINUTES    default occupation    (default 120)
//	PLAN_CLOSED_WEEKDAY   weekly closing day    (default "Monday")
//	PLAN_NONCOMBINABLE    table numbers, comma separated (default empty)
type PlanConfig struct {
	OpenMin       int
	CloseMin      int
	SlotMinutes   int
	DwellMinutes  int
	ClosedDay     time.Weekday
	NonCombinable map[uint32]bool
}

// LoadPlanConfig builds a PlanConfig from the environment, falling back
// to the defaults above for anything unset or unparseable.
func LoadPlanConfig() PlanConfig {
	p := PlanConfig{
		OpenMin:       clockMinutes(envStr("PLAN_OPEN_TIME", "11:30"), 11*60+30),
		CloseMin:      clockMinutes(envStr("PLAN_CLOSE_TIME", "22:30"), 22*60+30),
		SlotMinutes:   envInt("PLAN_SLOT_MINUTES", 30),
		DwellMinutes:  envInt("PLAN_DWELL_MINUTES", 120),
		ClosedDay:     weekday(envStr("PLAN_CLOSED_WEEKDAY", "Monday")),
		NonCombinable: tableNumbers(envStr("PLAN_NONCOMBINABLE", "")),
	}
	if p.SlotMinutes < 1 {
		p.SlotMinutes = 30
	}
	if p.DwellMinutes < p.SlotMinutes {
		p.DwellMinutes = p.SlotMinutes
	}
	if p.CloseMin <= p.OpenMin {
		p.CloseMin = p.OpenMin + p.SlotMinutes
	}
	return p
}

// clockMinutes parses "HH:MM" into minutes from midnight, returning def
// when the value does not parse.
func clockMinutes(s string, def int) int {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return def
	}
	return t.Hour()*60 + t.Minute()
}

// weekday resolves an English weekday name; unknown names fall back to
// Monday, the traditional closing day.
func weekday(s string) time.Weekday {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s) {
			return d
		}
	}
	return time.Monday
}

// tableNumbers parses a comma separated list of table numbers into a set.
func tableNumbers(s string) map[uint32]bool {
	out := map[uint32]bool{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if n, err := strconv.ParseUint(p, 10, 32); err == nil {
			out[uint32(n)] = true
		}
	}
	return out
}
