package booking

import (
	"errors"
	"testing"
)

// floorPlan builds a small two-area plan: area 1 has sub-areas "Saal"
// and "Wintergarten", area 2 is the terrace.
func floorPlan() map[uint64]Table {
	return map[uint64]Table{
		1: {ID: 1, Number: 1, AreaID: 1, SubArea: "Saal", SeatMin: 2, SeatMax: 4, Combinable: true, Active: true},
		2: {ID: 2, Number: 2, AreaID: 1, SubArea: "Saal", SeatMin: 2, SeatMax: 4, Combinable: true, Active: true},
		3: {ID: 3, Number: 3, AreaID: 1, SubArea: "Saal", SeatMin: 1, SeatMax: 2, Combinable: false, Active: true},
		4: {ID: 4, Number: 4, AreaID: 1, SubArea: "Wintergarten", SeatMin: 2, SeatMax: 6, Combinable: true, Active: true},
		5: {ID: 5, Number: 5, AreaID: 2, SubArea: "Terrasse", SeatMin: 2, SeatMax: 4, Combinable: true, Active: true},
		6: {ID: 6, Number: 6, AreaID: 1, SubArea: "Saal", SeatMin: 2, SeatMax: 4, Combinable: true, Active: false},
		7: {ID: 7, Number: 7, AreaID: 1, SubArea: "Saal", SeatMin: 2, SeatMax: 8, Combinable: true, Active: true},
	}
}

func TestValidateCombination(t *testing.T) {
	plan := floorPlan()
	noCombine := map[uint32]bool{7: true}

	cases := []struct {
		name    string
		ids     []uint64
		wantCap uint32
		wantErr error
	}{
		{"two saal tables", []uint64{1, 2}, 8, nil},
		{"single table", []uint64{1}, 0, ErrTooFewTables},
		{"empty", nil, 0, ErrTooFewTables},
		{"duplicate member", []uint64{1, 1}, 0, ErrDuplicateID},
		{"unknown table", []uint64{1, 99}, 0, ErrUnknownTable},
		{"inactive table", []uint64{1, 6}, 0, ErrUnknownTable},
		{"non-combinable flag", []uint64{1, 3}, 0, ErrNotCombinable},
		{"permanent exclusion list", []uint64{1, 7}, 0, ErrNotCombinable},
		{"cross sub-area", []uint64{1, 4}, 0, ErrCrossSubArea},
		{"cross area", []uint64{1, 5}, 0, ErrCrossArea},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ValidateCombination(c.ids, plan, noCombine)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("err = %v, want %v", err, c.wantErr)
			}
			if err == nil && got != c.wantCap {
				t.Fatalf("capacity = %d, want %d", got, c.wantCap)
			}
		})
	}
}

func TestValidateCombinationCapacitySumsSeatMax(t *testing.T) {
	plan := floorPlan()
	capacity, err := ValidateCombination([]uint64{1, 2}, plan, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := plan[1].SeatMax + plan[2].SeatMax; capacity != want {
		t.Errorf("capacity = %d, want sum of seat maxima %d", capacity, want)
	}
}
