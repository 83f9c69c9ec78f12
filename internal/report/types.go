package report

import "github.com/ellenbrook/stillpoint/go-core/internal/journal"

// #region report

// GeneratedVia records which path produced a report.
type GeneratedVia string

const (
	ViaModel    GeneratedVia = "model"
	ViaFallback GeneratedVia = "fallback"
)

// Report is the finished artifact. Produced fresh per invocation; the core
// never caches one.
type Report struct {
	ID           string
	Text         string
	GeneratedVia GeneratedVia
}

// #endregion

// #region input

// Input bundles the read-only data one synthesis run consumes.
type Input struct {
	Entries []journal.LogEntry
	Contact *journal.EmergencyContact
	Goals   []journal.Goal
	Values  []journal.Value
}

// #endregion

// #region banners

// Fixed section banners. The repair step also uses these as structural
// anchors when deciding whether generated output is a usable report.
const (
	BannerSOAP = "==== SOAP NOTE ===="
	BannerDAP  = "==== DAP NOTE ===="
	BannerBIRP = "==== BIRP NOTE ===="
)

var protocolBanners = map[string]string{
	"soap": BannerSOAP,
	"dap":  BannerDAP,
	"birp": BannerBIRP,
}

// sectionAnchors are markers that identify report structure in model
// output, ordered roughly by reliability.
var sectionAnchors = []string{
	BannerSOAP, BannerDAP, BannerBIRP,
	"SOAP", "DAP", "BIRP",
	"Subjective:", "Objective:", "Assessment:", "Plan:",
	"Data:", "Behavior:", "Intervention:", "Response:",
}

// #endregion

// #region disclaimers

// PrivacyDisclaimer is appended to every report, whichever path produced it.
const PrivacyDisclaimer = "\n\n---\nAll analysis runs on your device. Your journal entries never leave it."

// ruleBasedDisclaimer marks deterministic output.
const ruleBasedDisclaimer = "Generated by rule-based analysis; no language model was used."

// safetyFraming prefixes a safety-gated report.
const safetyFraming = "A safety concern was detected in your records, so a clinical summary was not generated."

// #endregion
