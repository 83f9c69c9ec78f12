package diag

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func openTestRecorder(t *testing.T) *Recorder {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "diag.db"))
	if err != nil {
		t.Fatal(err)
	}
	r, err := NewRecorder(db)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRecordAndRecent(t *testing.T) {
	r := openTestRecorder(t)

	entries := []Entry{
		{ReportID: "r1", Via: "fallback", Reason: "safety_gate", Severity: "critical", EntryCount: 3},
		{ReportID: "r2", Via: "model", Severity: "low", EntryCount: 5},
		{ReportID: "r3", Via: "fallback", Reason: "model_degraded", Severity: "low", EntryCount: 2},
	}
	for _, e := range entries {
		if err := r.Record(e); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, err := r.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d rows, want 3", len(got))
	}
	// Newest first
	if got[0].ReportID != "r3" || got[2].ReportID != "r1" {
		t.Errorf("order wrong: %v, %v", got[0].ReportID, got[2].ReportID)
	}
	if got[1].Reason != "" {
		t.Errorf("empty reason should round-trip empty, got %q", got[1].Reason)
	}
	if got[2].Severity != "critical" {
		t.Errorf("severity: got %q", got[2].Severity)
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("created_at should be populated")
	}
}
