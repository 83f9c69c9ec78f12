package detect

// #region imports
import (
	"strings"

	"github.com/ellenbrook/stillpoint/go-core/internal/taxonomy"
)

// #endregion

// #region detect

// Detect scans text against the fixed phrase taxonomy. Pure function:
// the same text always yields the same Result, and nothing a caller
// supplies can widen or weaken the taxonomy.
//
// Matching is deliberate substring containment, not tokenized or fuzzy.
// Quoting someone else's lyrics can false-positive; in this domain a
// false positive costs a support message, a false negative costs far more.
func Detect(text string) Result {
	lower := strings.ToLower(text)

	var matched []string
	var categories []taxonomy.Category
	catSeen := make(map[taxonomy.Category]bool)
	severity := taxonomy.SeverityLow

	for _, entry := range taxonomy.Phrases() {
		if !strings.Contains(lower, entry.Phrase) {
			continue
		}
		matched = append(matched, entry.Phrase)
		if !catSeen[entry.Category] {
			catSeen[entry.Category] = true
			categories = append(categories, entry.Category)
		}
		severity = taxonomy.Max(severity, entry.Severity)
	}

	if len(matched) == 0 {
		return Result{Severity: taxonomy.SeverityLow, Action: ActionContinue}
	}

	severity = escalate(severity, catSeen)

	return Result{
		IsCrisis:        true,
		Severity:        severity,
		DetectedPhrases: matched,
		Categories:      categories,
		Action:          mapAction(severity, catSeen),
	}
}

// #endregion

// #region escalation

// escalate applies the combined-risk-factor rule: a moderate signal from
// the hopelessness/behavioral group alongside any crisis-group category
// lifts an exactly-moderate severity to high. Never downgrades.
func escalate(severity taxonomy.Severity, catSeen map[taxonomy.Category]bool) taxonomy.Severity {
	if severity != taxonomy.SeverityModerate {
		return severity
	}
	hasModerateRisk := false
	hasCrisis := false
	for cat := range catSeen {
		if taxonomy.ModerateRiskCategories[cat] {
			hasModerateRisk = true
		}
		if taxonomy.CrisisCategories[cat] {
			hasCrisis = true
		}
	}
	if hasModerateRisk && hasCrisis {
		return taxonomy.SeverityHigh
	}
	return severity
}

// #endregion

// #region action-mapping

// mapAction is evaluated in strict priority order.
func mapAction(severity taxonomy.Severity, catSeen map[taxonomy.Category]bool) Action {
	switch {
	case severity == taxonomy.SeverityCritical:
		return ActionEmergency
	case severity == taxonomy.SeverityHigh,
		catSeen[taxonomy.CategorySelfHarm],
		catSeen[taxonomy.CategoryThirdParty]:
		return ActionContactSupport
	default:
		return ActionShowInfo
	}
}

// #endregion
