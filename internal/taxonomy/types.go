package taxonomy

// #region category

// Category groups crisis phrases by the kind of risk they signal.
type Category string

const (
	CategoryDirectIdeation   Category = "direct_ideation"
	CategoryIndirectIdeation Category = "indirect_ideation"
	CategoryPlanning         Category = "planning"
	CategorySelfHarm         Category = "self_harm"
	CategoryHopelessness     Category = "hopelessness"
	CategoryBehavioral       Category = "behavioral"
	CategoryThirdParty       Category = "third_party"
	CategoryImminent         Category = "imminent"
)

// #endregion

// #region severity

// Severity is the ordinal risk level assigned to a phrase.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityModerate
	SeverityHigh
	SeverityCritical
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityModerate:
		return "moderate"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Max returns the higher of two severities.
func Max(a, b Severity) Severity {
	if a > b {
		return a
	}
	return b
}

// #endregion

// #region crisis-phrase

// CrisisPhrase maps one phrase to its category and severity.
// The table is fixed at compile time; nothing at runtime adds to it.
type CrisisPhrase struct {
	Phrase   string
	Category Category
	Severity Severity
}

// #endregion

// #region category-groups

// CrisisCategories are the categories that, combined with a moderate
// hopelessness or behavioral signal, elevate the overall severity.
var CrisisCategories = map[Category]bool{
	CategoryDirectIdeation:   true,
	CategoryIndirectIdeation: true,
	CategoryPlanning:         true,
	CategorySelfHarm:         true,
	CategoryThirdParty:       true,
	CategoryImminent:         true,
}

// ModerateRiskCategories are the slower-burning risk-factor categories.
var ModerateRiskCategories = map[Category]bool{
	CategoryHopelessness: true,
	CategoryBehavioral:   true,
}

// #endregion
