// Package replay runs recorded journal windows through the detection and
// synthesis pipeline and checks outcomes against expectations. Operates
// entirely in-memory; no model runtime is required.
package replay

import (
	"context"
	"fmt"

	"github.com/ellenbrook/stillpoint/go-core/internal/detect"
	"github.com/ellenbrook/stillpoint/go-core/internal/journal"
	"github.com/ellenbrook/stillpoint/go-core/internal/report"
)

// #region types

// CaseResult captures the outcome of replaying one case.
type CaseResult struct {
	CaseID string
	Passed bool

	// What the pipeline actually produced.
	Detection detect.Result
	Via       report.GeneratedVia

	// Human-readable expectation mismatches; empty when Passed.
	Mismatches []string
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Description string
	TotalCases  int
	Passes      int
	Failures    []string // case IDs
}

// #endregion types

// #region replay

// Run replays every case: detection over the combined text, then a full
// synthesis pass. The synthesizer runs without a model invoker, so the
// generation path under test is deterministic; cases expecting via=model
// belong in a live environment, not a fixture.
func Run(ctx context.Context, f *Fixture) ([]CaseResult, Summary) {
	synth := report.NewSynthesizer(nil, nil, report.PromptConfig{})
	results := make([]CaseResult, 0, len(f.Cases))

	for _, c := range f.Cases {
		res := detect.Detect(journal.CombinedText(c.Entries))
		rep := synth.Synthesize(ctx, report.Input{
			Entries: c.Entries,
			Contact: f.Contact,
			Goals:   f.Goals,
			Values:  f.Values,
		})

		cr := CaseResult{
			CaseID:    c.CaseID,
			Detection: res,
			Via:       rep.GeneratedVia,
		}
		cr.Mismatches = checkExpectations(c.Expected, res, rep.GeneratedVia)
		cr.Passed = len(cr.Mismatches) == 0
		results = append(results, cr)
	}

	return results, Summarize(f.Description, results)
}

// checkExpectations compares one case's outcome against its expectations.
// Unset fields are skipped.
func checkExpectations(want ExpectedOutcome, res detect.Result, via report.GeneratedVia) []string {
	var mismatches []string

	if want.IsCrisis != nil && res.IsCrisis != *want.IsCrisis {
		mismatches = append(mismatches, fmt.Sprintf("is_crisis: got %v, want %v", res.IsCrisis, *want.IsCrisis))
	}
	if want.Severity != "" && res.Severity.String() != want.Severity {
		mismatches = append(mismatches, fmt.Sprintf("severity: got %s, want %s", res.Severity, want.Severity))
	}
	if want.Action != "" && string(res.Action) != want.Action {
		mismatches = append(mismatches, fmt.Sprintf("action: got %s, want %s", res.Action, want.Action))
	}
	if want.Via != "" && string(via) != want.Via {
		mismatches = append(mismatches, fmt.Sprintf("via: got %s, want %s", via, want.Via))
	}
	return mismatches
}

// Summarize computes aggregate stats from case results.
func Summarize(description string, results []CaseResult) Summary {
	s := Summary{
		Description: description,
		TotalCases:  len(results),
	}
	for _, r := range results {
		if r.Passed {
			s.Passes++
		} else {
			s.Failures = append(s.Failures, r.CaseID)
		}
	}
	return s
}

// #endregion replay
