package report

// #region imports
import (
	"fmt"
	"strings"

	"github.com/ellenbrook/stillpoint/go-core/internal/journal"
)

// #endregion

// #region prompt-config

// PromptConfig carries the configuration that shapes prompt framing.
// Nothing here ever feeds detection.
type PromptConfig struct {
	Protocols                      []string // "soap", "dap", "birp"
	AllowStructuredRecommendations bool
}

var protocolInstructions = map[string]string{
	"soap": "a SOAP note (Subjective, Objective, Assessment, Plan) under the banner " + BannerSOAP,
	"dap":  "a DAP note (Data, Assessment, Plan) under the banner " + BannerDAP,
	"birp": "a BIRP note (Behavior, Intervention, Response, Plan) under the banner " + BannerBIRP,
}

// #endregion

// #region build-prompt

// BuildPrompt assembles the single structured prompt requesting every
// configured note format over the same underlying data. Each format must
// independently restate the mood-trend analysis, so a clinician reading
// only one section still sees the full picture.
func BuildPrompt(agg Aggregate, goals []journal.Goal, values []journal.Value, cfg PromptConfig) string {
	var b strings.Builder

	b.WriteString("You are drafting clinical-style progress notes from a personal reflection journal.\n")
	b.WriteString("Write the following complete, independent note formats over the same data:\n")
	for i, p := range cfg.Protocols {
		if instr, ok := protocolInstructions[p]; ok {
			fmt.Fprintf(&b, "%d. %s\n", i+1, instr)
		}
	}
	b.WriteString("Each note must restate the mood trend analysis in its own words.\n")
	if cfg.AllowStructuredRecommendations {
		b.WriteString("Each Plan section may include concrete, structured recommendations.\n")
	} else {
		b.WriteString("Do not give directive recommendations; describe observations only.\n")
	}
	b.WriteString("Do not diagnose. Do not repeat yourself.\n\n")

	writeDataSections(&b, agg, goals, values)

	b.WriteString("\nBegin the notes now.\n")
	return b.String()
}

// writeDataSections renders the aggregate the same way for the prompt and,
// indirectly, for what the fallback generator mirrors.
func writeDataSections(b *strings.Builder, agg Aggregate, goals []journal.Goal, values []journal.Value) {
	fmt.Fprintf(b, "JOURNAL DATA (%d entries over %d days, most recent first):\n", agg.EntryCount, len(agg.Days))
	for _, day := range agg.Days {
		fmt.Fprintf(b, "- %s:\n", day.Date)
		for _, e := range day.Entries {
			fmt.Fprintf(b, "  - value %q", journal.ValueName(values, e.ValueID))
			if e.Mood != "" {
				fmt.Fprintf(b, ", mood %s", e.Mood)
			}
			if e.EmotionalState != "" {
				fmt.Fprintf(b, ", state %s", e.EmotionalState)
			}
			if e.Note != "" {
				fmt.Fprintf(b, ": %s", e.Note)
			}
			if e.DeepReflection != "" {
				fmt.Fprintf(b, " (reflection: %s)", e.DeepReflection)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\nMOOD TREND:\n")
	for _, mood := range rankedCounts(agg.MoodCounts) {
		fmt.Fprintf(b, "- mood %s: %d\n", mood, agg.MoodCounts[mood])
	}
	for _, st := range rankedCounts(agg.EmotionalStates) {
		fmt.Fprintf(b, "- emotional state %s: %d\n", st, agg.EmotionalStates[st])
	}
	for _, f := range rankedCounts(agg.Feelings) {
		fmt.Fprintf(b, "- feeling %s: %d\n", f, agg.Feelings[f])
	}

	b.WriteString("\nVALUE ENGAGEMENT:\n")
	for _, id := range rankedCounts(agg.ValueEngagement) {
		fmt.Fprintf(b, "- %s: %d entries\n", journal.ValueName(values, id), agg.ValueEngagement[id])
	}

	if len(goals) > 0 {
		b.WriteString("\nGOALS:\n")
		for _, g := range goals {
			status := "active"
			if g.Completed {
				status = "completed"
			}
			fmt.Fprintf(b, "- [%s] %s (value %s)\n", status, g.Text, journal.ValueName(values, g.ValueID))
		}
	}
}

// #endregion
