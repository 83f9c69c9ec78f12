package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ellenbrook/stillpoint/go-core/internal/journal"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string                    `json:"description"`
	Contact     *journal.EmergencyContact `json:"contact,omitempty"`
	Values      []journal.Value           `json:"values,omitempty"`
	Goals       []journal.Goal            `json:"goals,omitempty"`
	Cases       []FixtureCase             `json:"cases"`
}

// FixtureCase is one recorded journal window with its expected outcome.
type FixtureCase struct {
	CaseID   string             `json:"case_id"`
	Entries  []journal.LogEntry `json:"entries"`
	Expected ExpectedOutcome    `json:"expected"`
}

// ExpectedOutcome captures what detection and synthesis should produce for
// a case. String fields left empty are not checked.
type ExpectedOutcome struct {
	IsCrisis *bool  `json:"is_crisis,omitempty"`
	Severity string `json:"severity,omitempty"` // "low" | "moderate" | "high" | "critical"
	Action   string `json:"action,omitempty"`   // "continue" | "show_info" | "contact_support" | "emergency"
	Via      string `json:"via,omitempty"`      // "model" | "fallback"
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return &f, nil
}

// Validate rejects fixtures that would silently test nothing.
func (f *Fixture) Validate() error {
	if len(f.Cases) == 0 {
		return fmt.Errorf("no cases")
	}
	seen := make(map[string]bool, len(f.Cases))
	for i, c := range f.Cases {
		if c.CaseID == "" {
			return fmt.Errorf("case %d: missing case_id", i)
		}
		if seen[c.CaseID] {
			return fmt.Errorf("duplicate case_id %q", c.CaseID)
		}
		seen[c.CaseID] = true
	}
	return nil
}

// #endregion fixture-loader
