package detect

import "github.com/ellenbrook/stillpoint/go-core/internal/taxonomy"

// #region action

// Action is what the app should do with the current text.
type Action string

const (
	ActionContinue       Action = "continue"
	ActionShowInfo       Action = "show_info"
	ActionContactSupport Action = "contact_support"
	ActionEmergency      Action = "emergency"
)

// #endregion

// #region result

// Result is the full detection output for one piece of text.
// Derived purely from the text and the fixed taxonomy; no persisted identity.
type Result struct {
	IsCrisis        bool
	Severity        taxonomy.Severity
	DetectedPhrases []string
	Categories      []taxonomy.Category
	Action          Action
}

// HasCategory reports whether cat appears among the matched categories.
func (r Result) HasCategory(cat taxonomy.Category) bool {
	for _, c := range r.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// #endregion
