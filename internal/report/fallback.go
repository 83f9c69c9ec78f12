package report

// #region imports
import (
	"fmt"
	"strings"

	"github.com/ellenbrook/stillpoint/go-core/internal/journal"
)

// #endregion

// #region rule-based

// RuleBased builds the three note formats deterministically from the
// aggregate, with no model involved. It must produce a well-formed,
// non-empty report for any non-empty entry set — including a single entry
// with no free text at all.
func RuleBased(agg Aggregate, goals []journal.Goal, values []journal.Value, protocols []string) string {
	var b strings.Builder

	for _, p := range protocols {
		banner, ok := protocolBanners[p]
		if !ok {
			continue
		}
		b.WriteString(banner)
		b.WriteString("\n\n")
		switch p {
		case "soap":
			writeSOAP(&b, agg, goals, values)
		case "dap":
			writeDAP(&b, agg, goals, values)
		case "birp":
			writeBIRP(&b, agg, goals, values)
		}
		b.WriteString("\n")
	}

	b.WriteString(ruleBasedDisclaimer)
	return b.String()
}

// NoData is the report body for an empty journal window.
func NoData() string {
	return "No journal data is available for this period, so no summary was generated.\n\n" + ruleBasedDisclaimer
}

// #endregion

// #region formats

func writeSOAP(b *strings.Builder, agg Aggregate, goals []journal.Goal, values []journal.Value) {
	b.WriteString("Subjective:\n")
	writeDayDetail(b, agg, values)
	b.WriteString("\nObjective:\n")
	writeTrend(b, agg, values)
	b.WriteString("\nAssessment:\n")
	writeAssessment(b, agg)
	b.WriteString("\nPlan:\n")
	writeGoals(b, goals, values)
}

func writeDAP(b *strings.Builder, agg Aggregate, goals []journal.Goal, values []journal.Value) {
	b.WriteString("Data:\n")
	writeDayDetail(b, agg, values)
	writeTrend(b, agg, values)
	b.WriteString("\nAssessment:\n")
	writeAssessment(b, agg)
	b.WriteString("\nPlan:\n")
	writeGoals(b, goals, values)
}

func writeBIRP(b *strings.Builder, agg Aggregate, goals []journal.Goal, values []journal.Value) {
	b.WriteString("Behavior:\n")
	writeDayDetail(b, agg, values)
	b.WriteString("\nIntervention:\n")
	b.WriteString("- Structured journaling against personal values.\n")
	b.WriteString("\nResponse:\n")
	writeTrend(b, agg, values)
	writeAssessment(b, agg)
	b.WriteString("\nPlan:\n")
	writeGoals(b, goals, values)
}

// #endregion

// #region shared-sections

// writeDayDetail renders the per-day entry log, most recent first.
func writeDayDetail(b *strings.Builder, agg Aggregate, values []journal.Value) {
	for _, day := range agg.Days {
		fmt.Fprintf(b, "- %s:\n", day.Date)
		for _, e := range day.Entries {
			fmt.Fprintf(b, "  - %s", journal.ValueName(values, e.ValueID))
			if e.Mood != "" {
				fmt.Fprintf(b, " %s", e.Mood)
			}
			if e.Note != "" {
				fmt.Fprintf(b, ": %s", e.Note)
			} else if e.DeepReflection != "" {
				fmt.Fprintf(b, ": %s", e.DeepReflection)
			} else {
				b.WriteString(": (no note)")
			}
			b.WriteString("\n")
		}
	}
}

// writeTrend renders the mood-trend analysis; every format restates it.
func writeTrend(b *strings.Builder, agg Aggregate, values []journal.Value) {
	if len(agg.MoodCounts) > 0 {
		b.WriteString("- Mood counts:")
		for _, m := range rankedCounts(agg.MoodCounts) {
			fmt.Fprintf(b, " %s x%d", m, agg.MoodCounts[m])
		}
		b.WriteString("\n")
	}
	if len(agg.EmotionalStates) > 0 {
		b.WriteString("- Emotional states:")
		for _, s := range rankedCounts(agg.EmotionalStates) {
			fmt.Fprintf(b, " %s x%d", s, agg.EmotionalStates[s])
		}
		b.WriteString("\n")
	}
	if len(agg.Feelings) > 0 {
		b.WriteString("- Reported feelings:")
		for _, f := range rankedCounts(agg.Feelings) {
			fmt.Fprintf(b, " %s x%d", f, agg.Feelings[f])
		}
		b.WriteString("\n")
	}
	if len(agg.ValueEngagement) > 0 {
		b.WriteString("- Value engagement:")
		for _, id := range rankedCounts(agg.ValueEngagement) {
			fmt.Fprintf(b, " %s x%d", journal.ValueName(values, id), agg.ValueEngagement[id])
		}
		b.WriteString("\n")
	}
}

func writeAssessment(b *strings.Builder, agg Aggregate) {
	fmt.Fprintf(b, "- %d entries across %d days in this window.\n", agg.EntryCount, len(agg.Days))
	if top := rankedCounts(agg.MoodCounts); len(top) > 0 {
		fmt.Fprintf(b, "- Most frequent mood: %s.\n", top[0])
	}
}

func writeGoals(b *strings.Builder, goals []journal.Goal, values []journal.Value) {
	if len(goals) == 0 {
		b.WriteString("- Continue regular journaling.\n")
		return
	}
	for _, g := range goals {
		status := "active"
		if g.Completed {
			status = "completed"
		}
		fmt.Fprintf(b, "- [%s] %s (value %s)\n", status, g.Text, journal.ValueName(values, g.ValueID))
	}
}

// #endregion
