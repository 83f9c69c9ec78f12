package infer

import (
	"path/filepath"
	"testing"
)

func openTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(filepath.Join(t.TempDir(), "registry.db"))
	if err != nil {
		t.Fatalf("open registry: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRegistryRecordAndList(t *testing.T) {
	r := openTestRegistry(t)

	if err := r.Record("coach-a", SlotCounselingCoach, "http://localhost:11434"); err != nil {
		t.Fatal(err)
	}
	if err := r.Record("coach-b", SlotCounselingCoach, "http://localhost:11434"); err != nil {
		t.Fatal(err)
	}
	if err := r.Record("mood-a", SlotMoodTracker, "http://localhost:11434"); err != nil {
		t.Fatal(err)
	}

	// Upsert does not duplicate.
	if err := r.Record("coach-a", SlotCounselingCoach, "http://localhost:11434"); err != nil {
		t.Fatal(err)
	}

	coach, err := r.ListSlot(SlotCounselingCoach)
	if err != nil {
		t.Fatal(err)
	}
	if len(coach) != 2 {
		t.Errorf("coach artifacts: got %v", coach)
	}

	mood, err := r.ListSlot(SlotMoodTracker)
	if err != nil {
		t.Fatal(err)
	}
	if len(mood) != 1 || mood[0] != "mood-a" {
		t.Errorf("mood artifacts: got %v", mood)
	}
}

func TestRegistryPurgeSlotIsTotal(t *testing.T) {
	r := openTestRegistry(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := r.Record(id, SlotCounselingCoach, ""); err != nil {
			t.Fatal(err)
		}
	}
	if err := r.Record("mood-a", SlotMoodTracker, ""); err != nil {
		t.Fatal(err)
	}

	if err := r.PurgeSlot(SlotCounselingCoach); err != nil {
		t.Fatal(err)
	}

	coach, err := r.ListSlot(SlotCounselingCoach)
	if err != nil {
		t.Fatal(err)
	}
	if len(coach) != 0 {
		t.Errorf("purge left %v behind", coach)
	}

	// The other slot is untouched.
	mood, err := r.ListSlot(SlotMoodTracker)
	if err != nil {
		t.Fatal(err)
	}
	if len(mood) != 1 {
		t.Errorf("purge bled into mood slot: %v", mood)
	}
}
