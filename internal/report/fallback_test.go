package report

import (
	"strings"
	"testing"

	"github.com/ellenbrook/stillpoint/go-core/internal/journal"
)

var allProtocols = []string{"soap", "dap", "birp"}

func TestRuleBased_AllFormatsPresent(t *testing.T) {
	agg := BuildAggregate([]journal.LogEntry{
		{ID: "a", Date: "2024-01-01", ValueID: "v1", Note: "felt good today", Mood: "✨"},
		{ID: "b", Date: "2024-01-02", ValueID: "v2", Note: "quiet day", Mood: "🌊"},
	})
	values := []journal.Value{{ID: "v1", Name: "Creativity"}, {ID: "v2", Name: "Rest"}}
	goals := []journal.Goal{
		{ValueID: "v1", Text: "sketch every morning", Completed: false},
		{ValueID: "v2", Text: "screen-free evenings", Completed: true},
	}

	out := RuleBased(agg, goals, values, allProtocols)

	for _, banner := range []string{BannerSOAP, BannerDAP, BannerBIRP} {
		if !strings.Contains(out, banner) {
			t.Errorf("missing banner %q", banner)
		}
	}
	// The mood trend must be restated in every format.
	if got := strings.Count(out, "Mood counts:"); got != 3 {
		t.Errorf("mood trend appears %d times, want once per format", got)
	}
	if !strings.Contains(out, "Creativity") || !strings.Contains(out, "Rest") {
		t.Error("value names not resolved")
	}
	if !strings.Contains(out, "[active] sketch every morning") {
		t.Error("active goal not listed")
	}
	if !strings.Contains(out, "[completed] screen-free evenings") {
		t.Error("completed goal not listed")
	}
	if !strings.Contains(out, ruleBasedDisclaimer) {
		t.Error("rule-based disclaimer missing")
	}
}

func TestRuleBased_SingleEntryNoText(t *testing.T) {
	// One entry with no free text at all still yields a well-formed report.
	agg := BuildAggregate([]journal.LogEntry{
		{ID: "a", Date: "2024-03-05", ValueID: "v9"},
	})

	out := RuleBased(agg, nil, nil, allProtocols)

	if !strings.Contains(out, BannerSOAP) {
		t.Error("missing SOAP banner")
	}
	if !strings.Contains(out, "(no note)") {
		t.Error("entry without text should render a placeholder")
	}
	if !strings.Contains(out, "1 entries across 1 days") {
		t.Error("assessment line missing")
	}
	if !strings.Contains(out, "Continue regular journaling.") {
		t.Error("goalless plan line missing")
	}
}

func TestRuleBased_UnknownProtocolSkipped(t *testing.T) {
	agg := BuildAggregate([]journal.LogEntry{{ID: "a", Date: "2024-01-01", ValueID: "v1", Note: "ok"}})
	out := RuleBased(agg, nil, nil, []string{"soap", "freeform"})
	if !strings.Contains(out, BannerSOAP) {
		t.Error("known protocol dropped")
	}
	if strings.Contains(out, "freeform") {
		t.Error("unknown protocol should be silently skipped")
	}
}

func TestNoData(t *testing.T) {
	out := NoData()
	if !strings.Contains(out, "No journal data") {
		t.Error("no-data statement missing")
	}
	if !strings.Contains(out, ruleBasedDisclaimer) {
		t.Error("disclaimer missing")
	}
}
