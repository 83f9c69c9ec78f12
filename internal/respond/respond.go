// Package respond maps detection results to safety messaging. Selection is
// a pure lookup over severity and category; the app itself is never offered
// as a sufficient intervention.
package respond

// #region imports
import (
	"fmt"
	"strings"

	"github.com/ellenbrook/stillpoint/go-core/internal/detect"
	"github.com/ellenbrook/stillpoint/go-core/internal/journal"
	"github.com/ellenbrook/stillpoint/go-core/internal/taxonomy"
)

// #endregion

// #region resources

// Fixed safety resources. Every tier surfaces all three.
const (
	CrisisLine      = "988 Suicide & Crisis Lifeline: call or text 988"
	TextLine        = "Crisis Text Line: text HOME to 741741"
	EmergencyNumber = "If you are in immediate danger, call 911"
)

// #endregion

// #region tier

type tier int

const (
	tierImminent tier = iota // critical + imminent/planning
	tierCritical             // critical, other categories
	tierSelfHarm             // high + self-harm
	tierThirdParty           // high + third-party risk
	tierSupport              // high other, or moderate
)

// selectTier is evaluated in strict priority order.
func selectTier(r detect.Result) tier {
	critical := r.Severity == taxonomy.SeverityCritical
	switch {
	case critical && (r.HasCategory(taxonomy.CategoryImminent) || r.HasCategory(taxonomy.CategoryPlanning)):
		return tierImminent
	case critical:
		return tierCritical
	case r.Severity == taxonomy.SeverityHigh && r.HasCategory(taxonomy.CategorySelfHarm):
		return tierSelfHarm
	case r.Severity == taxonomy.SeverityHigh && r.HasCategory(taxonomy.CategoryThirdParty):
		return tierThirdParty
	default:
		return tierSupport
	}
}

// #endregion

// #region templates

var tierOpenings = map[tier]string{
	tierImminent: "Please stop and get help right now. What you wrote suggests you may be in immediate danger, and that matters more than anything else in this app.",
	tierCritical: "What you wrote suggests you are thinking about ending your life. You deserve support from a real person, right now, and these feelings can change with help.",
	tierSelfHarm: "It sounds like you are hurting yourself or close to it. You deserve care, not punishment, and talking to someone who understands self-harm can genuinely help.",
	tierThirdParty: "It sounds like you are worried about someone's safety — your own with them, or theirs. You do not have to carry that alone, and reaching out for them is the right move.",
	tierSupport: "Some of what you wrote sounds really heavy. You do not have to manage this by yourself, and support is available whenever you are ready.",
}

// #endregion

// #region select

// Select renders the safety message for a detection result. The contact,
// when supplied, is interpolated into the reach-out line; it plays no part
// in tier selection.
func Select(r detect.Result, contact *journal.EmergencyContact) string {
	var b strings.Builder

	b.WriteString(tierOpenings[selectTier(r)])
	b.WriteString("\n\n")
	b.WriteString(EmergencyNumber)
	b.WriteString("\n")
	b.WriteString(CrisisLine)
	b.WriteString("\n")
	b.WriteString(TextLine)
	b.WriteString("\n\n")
	b.WriteString(reachOutLine(contact))
	b.WriteString("\nThis app is a journal, not a crisis service — please reach a person.")

	return b.String()
}

// reachOutLine names the configured contact when present.
func reachOutLine(contact *journal.EmergencyContact) string {
	if contact == nil || (contact.Name == "" && contact.Phone == "") {
		return "Please also consider reaching out to your care provider."
	}
	name := contact.Name
	if name == "" {
		name = "your emergency contact"
	}
	if contact.Phone != "" {
		return fmt.Sprintf("Please also consider reaching out to %s (%s).", name, contact.Phone)
	}
	return fmt.Sprintf("Please also consider reaching out to %s.", name)
}

// #endregion
