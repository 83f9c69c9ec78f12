package report

// #region imports
import (
	"sort"

	"github.com/ellenbrook/stillpoint/go-core/internal/journal"
)

// #endregion

// #region types

// DayGroup is all entries for one calendar day.
type DayGroup struct {
	Date    string // ISO-8601 calendar date
	Entries []journal.LogEntry
}

// Aggregate is the day-grouped, counted view of a journal window that both
// the prompt builder and the rule-based generator consume.
type Aggregate struct {
	Days            []DayGroup // descending by date
	MoodCounts      map[string]int
	EmotionalStates map[string]int
	Feelings        map[string]int
	ValueEngagement map[string]int // valueId → entry count
	EntryCount      int
}

// #endregion

// #region build

// BuildAggregate groups entries by calendar day (most recent first) and
// computes the frequency tables. Entries are never mutated.
func BuildAggregate(entries []journal.LogEntry) Aggregate {
	agg := Aggregate{
		MoodCounts:      make(map[string]int),
		EmotionalStates: make(map[string]int),
		Feelings:        make(map[string]int),
		ValueEngagement: make(map[string]int),
		EntryCount:      len(entries),
	}

	byDay := make(map[string][]journal.LogEntry)
	for _, e := range entries {
		day := calendarDay(e.Date)
		byDay[day] = append(byDay[day], e)

		if e.Mood != "" {
			agg.MoodCounts[e.Mood]++
		}
		if e.EmotionalState != "" {
			agg.EmotionalStates[e.EmotionalState]++
		}
		if e.SelectedFeeling != "" {
			agg.Feelings[e.SelectedFeeling]++
		}
		if e.ValueID != "" {
			agg.ValueEngagement[e.ValueID]++
		}
	}

	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	for _, d := range days {
		agg.Days = append(agg.Days, DayGroup{Date: d, Entries: byDay[d]})
	}
	return agg
}

// calendarDay truncates an ISO-8601 timestamp to its date part.
// ISO dates sort lexicographically, which the descending order relies on.
func calendarDay(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}

// #endregion

// #region ranked-counts

// rankedCounts returns keys sorted by descending count, ties broken by key
// so report text is deterministic.
func rankedCounts(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// #endregion
