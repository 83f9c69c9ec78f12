package detect

import (
	"reflect"
	"testing"

	"github.com/ellenbrook/stillpoint/go-core/internal/taxonomy"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantCrisis   bool
		wantSeverity taxonomy.Severity
		wantAction   Action
	}{
		// No taxonomy phrase at all
		{"benign-good-day", "Had a great walk and felt energized today", false, taxonomy.SeverityLow, ActionContinue},
		{"benign-empty", "", false, taxonomy.SeverityLow, ActionContinue},
		{"benign-work", "Stressful meeting but I handled it well", false, taxonomy.SeverityLow, ActionContinue},

		// Critical phrases always map to emergency
		{"critical-direct", "sometimes i want to die and it scares me", true, taxonomy.SeverityCritical, ActionEmergency},
		{"critical-direct-upper", "I WANT TO KILL MYSELF", true, taxonomy.SeverityCritical, ActionEmergency},
		{"critical-planning", "i wrote a suicide note last night", true, taxonomy.SeverityCritical, ActionEmergency},
		{"critical-imminent", "the pills in my hand are all i can look at", true, taxonomy.SeverityCritical, ActionEmergency},

		// High severity maps to contact_support
		{"high-indirect", "i keep thinking everyone would be better off without me", true, taxonomy.SeverityHigh, ActionContactSupport},
		{"high-self-harm", "i started cutting again last week", true, taxonomy.SeverityHigh, ActionContactSupport},
		{"high-third-party", "i am worried they will hurt themselves if i leave", true, taxonomy.SeverityHigh, ActionContactSupport},

		// Moderate alone maps to show_info
		{"moderate-hopeless", "everything feels pointless, i feel trapped", true, taxonomy.SeverityModerate, ActionShowInfo},
		{"moderate-behavioral", "i stopped taking my medication this month", true, taxonomy.SeverityModerate, ActionShowInfo},

		// Escalation: moderate hopelessness + moderate crisis-group phrase → high
		{"escalation-combined", "i feel trapped and honestly wish i could just disappear", true, taxonomy.SeverityHigh, ActionContactSupport},
		{"escalation-behavioral-combined", "i stopped taking my medication and i am a burden to everyone", true, taxonomy.SeverityHigh, ActionContactSupport},

		// Two moderate phrases from the same group do not escalate
		{"no-escalation-same-group", "i feel trapped and hopeless", true, taxonomy.SeverityModerate, ActionShowInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.text)
			if got.IsCrisis != tt.wantCrisis {
				t.Errorf("IsCrisis: got %v, want %v", got.IsCrisis, tt.wantCrisis)
			}
			if got.Severity != tt.wantSeverity {
				t.Errorf("Severity: got %s, want %s", got.Severity, tt.wantSeverity)
			}
			if got.Action != tt.wantAction {
				t.Errorf("Action: got %q, want %q", got.Action, tt.wantAction)
			}
		})
	}
}

func TestDetectSelfHarmActionWithoutHighSeverity(t *testing.T) {
	// Self-harm category forces contact_support even if a future table
	// revision lowered its severity; today the category is high anyway.
	got := Detect("i want to hurt myself")
	if got.Action != ActionContactSupport && got.Action != ActionEmergency {
		t.Errorf("self-harm text must reach at least contact_support, got %q", got.Action)
	}
}

func TestDetectIdempotent(t *testing.T) {
	text := "i feel trapped and i stopped taking my medication"
	first := Detect(text)
	second := Detect(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Detect not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestDetectAccumulatesAllMatches(t *testing.T) {
	got := Detect("i feel hopeless, i started cutting, and i want to die")
	if len(got.DetectedPhrases) < 3 {
		t.Errorf("got %d phrases, want at least 3: %v", len(got.DetectedPhrases), got.DetectedPhrases)
	}
	for _, cat := range []taxonomy.Category{taxonomy.CategoryHopelessness, taxonomy.CategorySelfHarm, taxonomy.CategoryDirectIdeation} {
		if !got.HasCategory(cat) {
			t.Errorf("missing category %q in %v", cat, got.Categories)
		}
	}
	if got.Severity != taxonomy.SeverityCritical {
		t.Errorf("max severity: got %s, want critical", got.Severity)
	}
}
