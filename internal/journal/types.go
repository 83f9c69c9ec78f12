// Package journal defines the read-only inputs the synthesis core consumes.
// Persistence and sync of these records belong to the host app, not here.
package journal

// #region log-entry

// LogEntry is one journal record. The core never mutates entries.
type LogEntry struct {
	ID              string `json:"id"`
	Date            string `json:"date"` // ISO-8601 calendar date
	ValueID         string `json:"valueId"`
	Note            string `json:"note"`
	DeepReflection  string `json:"deepReflection,omitempty"`
	EmotionalState  string `json:"emotionalState,omitempty"`
	SelectedFeeling string `json:"selectedFeeling,omitempty"`
	GoalText        string `json:"goalText,omitempty"`
	Type            string `json:"type,omitempty"`
	Mood            string `json:"mood,omitempty"` // mood symbol, e.g. "✨"
}

// #endregion

// #region goal

// GoalUpdate is one progress note on a goal.
type GoalUpdate struct {
	Timestamp string `json:"timestamp"`
	Note      string `json:"note"`
	Mood      string `json:"mood,omitempty"`
}

// Goal is a value-linked commitment the user is working on.
type Goal struct {
	ValueID   string       `json:"valueId"`
	Text      string       `json:"text"`
	Frequency string       `json:"frequency,omitempty"`
	Completed bool         `json:"completed"`
	Updates   []GoalUpdate `json:"updates,omitempty"`
}

// #endregion

// #region value

// Value names a personal value referenced by ValueID.
type Value struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ValueName resolves an ID against a value list, falling back to the ID.
func ValueName(values []Value, id string) string {
	for _, v := range values {
		if v.ID == id {
			return v.Name
		}
	}
	return id
}

// #endregion

// #region emergency-contact

// EmergencyContact is caller-supplied contact info used only for message
// interpolation. It must never influence what counts as a crisis.
type EmergencyContact struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// #endregion

// #region combined-text

// CombinedText concatenates every free-text field across entries.
// This is the aggregate the safety gate scans before any synthesis.
func CombinedText(entries []LogEntry) string {
	var b []byte
	appendField := func(s string) {
		if s == "" {
			return
		}
		if len(b) > 0 {
			b = append(b, ' ')
		}
		b = append(b, s...)
	}
	for _, e := range entries {
		appendField(e.Note)
		appendField(e.DeepReflection)
		appendField(e.GoalText)
	}
	return string(b)
}

// #endregion
