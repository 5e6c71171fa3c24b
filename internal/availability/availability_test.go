package availability

import (
	"testing"
	"time"
)

var day = time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC) // a Tuesday

func at(hour, min int) time.Time {
	return time.Date(2025, time.March, 4, hour, min, 0, 0, time.UTC)
}

func TestEmptyBusyListYieldsFullPartition(t *testing.T) {
	slots, err := SlotsForDay(day, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}

	if len(slots) != 8 {
		t.Fatalf("expected 8 slots for 9-17/60min, got %d", len(slots))
	}
	if !slots[0].Start.Equal(at(9, 0)) {
		t.Errorf("first slot starts at %s, want 09:00", slots[0].Start)
	}
	if !slots[7].End.Equal(at(17, 0)) {
		t.Errorf("last slot ends at %s, want 17:00", slots[7].End)
	}
	if slots[0].Label != "9:00 AM" {
		t.Errorf("label = %q, want 9:00 AM", slots[0].Label)
	}
	if slots[4].Label != "1:00 PM" {
		t.Errorf("label = %q, want 1:00 PM", slots[4].Label)
	}
}

func TestExactSlotBusyRemovesOnlyThatSlot(t *testing.T) {
	busy := []BusyInterval{{Start: at(10, 0), End: at(11, 0)}}

	slots, err := SlotsForDay(day, DefaultConfig(), busy)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}

	if len(slots) != 7 {
		t.Fatalf("expected 7 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Start.Equal(at(10, 0)) {
			t.Errorf("10:00 slot should have been removed")
		}
	}
	// Neighbors survive: half-open intervals mean touching is not overlap.
	if !slots[0].Start.Equal(at(9, 0)) || !slots[1].Start.Equal(at(11, 0)) {
		t.Errorf("expected 9:00 and 11:00 to remain, got %s and %s", slots[0].Start, slots[1].Start)
	}
}

func TestStraddlingBusyRemovesBothSlots(t *testing.T) {
	busy := []BusyInterval{{Start: at(10, 30), End: at(11, 30)}}

	slots, err := SlotsForDay(day, DefaultConfig(), busy)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}

	if len(slots) != 6 {
		t.Fatalf("expected 6 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Start.Equal(at(10, 0)) || s.Start.Equal(at(11, 0)) {
			t.Errorf("slot at %s should have been removed", s.Start)
		}
	}
}

func TestFullyBookedDayIsEmptyNotError(t *testing.T) {
	busy := []BusyInterval{{Start: at(8, 0), End: at(18, 0)}}

	slots, err := SlotsForDay(day, DefaultConfig(), busy)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots, got %d", len(slots))
	}
}

func TestNoOutputSlotOverlapsBusy(t *testing.T) {
	busy := []BusyInterval{
		{Start: at(9, 15), End: at(9, 45)},
		{Start: at(12, 0), End: at(14, 0)},
		{Start: at(16, 59), End: at(17, 30)},
	}

	slots, err := SlotsForDay(day, DefaultConfig(), busy)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}
	for _, s := range slots {
		for _, b := range busy {
			if s.Start.Before(b.End) && s.End.After(b.Start) {
				t.Errorf("slot %s-%s overlaps busy %s-%s", s.Start, s.End, b.Start, b.End)
			}
		}
	}
}

func TestThirtyMinuteVariant(t *testing.T) {
	cfg := Config{StartHour: 9, EndHour: 17, SlotMinutes: 30}

	slots, err := SlotsForDay(day, cfg, nil)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}
	if len(slots) != 16 {
		t.Fatalf("expected 16 half-hour slots, got %d", len(slots))
	}
	if slots[1].Label != "9:30 AM" {
		t.Errorf("label = %q, want 9:30 AM", slots[1].Label)
	}
}

func TestDeterministicForIdenticalInputs(t *testing.T) {
	busy := []BusyInterval{{Start: at(11, 0), End: at(12, 0)}}

	first, err := SlotsForDay(day, DefaultConfig(), busy)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}
	second, err := SlotsForDay(day, DefaultConfig(), busy)
	if err != nil {
		t.Fatalf("SlotsForDay: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || first[i].Label != second[i].Label {
			t.Errorf("slot %d differs between runs", i)
		}
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	tests := []Config{
		{StartHour: 17, EndHour: 9, SlotMinutes: 60},
		{StartHour: 9, EndHour: 17, SlotMinutes: 0},
		{StartHour: -1, EndHour: 17, SlotMinutes: 60},
	}
	for _, cfg := range tests {
		if _, err := SlotsForDay(day, cfg, nil); err == nil {
			t.Errorf("expected error for config %+v", cfg)
		}
	}
}
