package report

import (
	"reflect"
	"testing"

	"github.com/ellenbrook/stillpoint/go-core/internal/journal"
)

func TestBuildAggregate_GroupsByDayDescending(t *testing.T) {
	entries := []journal.LogEntry{
		{ID: "a", Date: "2024-01-01T08:30:00Z", ValueID: "v1", Mood: "✨"},
		{ID: "b", Date: "2024-01-03T21:00:00Z", ValueID: "v2", Mood: "🌧"},
		{ID: "c", Date: "2024-01-01T19:15:00Z", ValueID: "v1", Mood: "✨"},
		{ID: "d", Date: "2024-01-02", ValueID: "v1"},
	}

	agg := BuildAggregate(entries)

	if agg.EntryCount != 4 {
		t.Errorf("EntryCount = %d, want 4", agg.EntryCount)
	}
	wantDays := []string{"2024-01-03", "2024-01-02", "2024-01-01"}
	var gotDays []string
	for _, d := range agg.Days {
		gotDays = append(gotDays, d.Date)
	}
	if !reflect.DeepEqual(gotDays, wantDays) {
		t.Errorf("day order = %v, want %v", gotDays, wantDays)
	}
	if n := len(agg.Days[2].Entries); n != 2 {
		t.Errorf("2024-01-01 has %d entries, want 2", n)
	}
	if agg.MoodCounts["✨"] != 2 || agg.MoodCounts["🌧"] != 1 {
		t.Errorf("mood counts = %v", agg.MoodCounts)
	}
	if agg.ValueEngagement["v1"] != 3 || agg.ValueEngagement["v2"] != 1 {
		t.Errorf("value engagement = %v", agg.ValueEngagement)
	}
}

func TestBuildAggregate_SkipsEmptyFields(t *testing.T) {
	agg := BuildAggregate([]journal.LogEntry{
		{ID: "a", Date: "2024-02-10", ValueID: "v1"},
	})
	if len(agg.MoodCounts) != 0 || len(agg.EmotionalStates) != 0 || len(agg.Feelings) != 0 {
		t.Errorf("empty fields counted: %v %v %v", agg.MoodCounts, agg.EmotionalStates, agg.Feelings)
	}
	if agg.ValueEngagement["v1"] != 1 {
		t.Errorf("value engagement = %v", agg.ValueEngagement)
	}
}

func TestRankedCounts_Deterministic(t *testing.T) {
	counts := map[string]int{"calm": 2, "anxious": 2, "content": 5}
	want := []string{"content", "anxious", "calm"}
	for i := 0; i < 10; i++ {
		if got := rankedCounts(counts); !reflect.DeepEqual(got, want) {
			t.Fatalf("rankedCounts = %v, want %v", got, want)
		}
	}
}

func TestCalendarDay(t *testing.T) {
	tests := []struct{ in, want string }{
		{"2024-01-01T08:30:00Z", "2024-01-01"},
		{"2024-01-01", "2024-01-01"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := calendarDay(tc.in); got != tc.want {
			t.Errorf("calendarDay(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
