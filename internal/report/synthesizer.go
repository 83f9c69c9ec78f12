package report

// #region imports
import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/ellenbrook/stillpoint/go-core/internal/detect"
	"github.com/ellenbrook/stillpoint/go-core/internal/diag"
	"github.com/ellenbrook/stillpoint/go-core/internal/infer"
	"github.com/ellenbrook/stillpoint/go-core/internal/journal"
	"github.com/ellenbrook/stillpoint/go-core/internal/respond"
	"github.com/ellenbrook/stillpoint/go-core/internal/taxonomy"
)

// #endregion

// #region invoker

// ModelInvoker is the inference surface the synthesizer consumes. Satisfied
// by *infer.Orchestrator.
type ModelInvoker interface {
	EnsureLoaded(ctx context.Context, id infer.SlotID) bool
	Invoke(ctx context.Context, id infer.SlotID, prompt string, opts infer.Options) (string, error)
}

// coachOptions bounds generation for the long-form report pass. The repeat
// penalty is deliberately high: the repair step cleans residual loops, but
// the sampler should discourage them first.
var coachOptions = infer.Options{
	MaxTokens:     1200,
	Temperature:   0.4,
	RepeatPenalty: 1.3,
}

// #endregion

// #region synthesizer

// Synthesizer turns a journal window into a multi-format report. Every run
// passes the safety gate first; the model is a best-effort enhancement over
// the deterministic generator, never a requirement.
type Synthesizer struct {
	invoker ModelInvoker   // nil = model path disabled
	diagLog *diag.Recorder // nil = no diagnostics
	cfg     PromptConfig
}

// NewSynthesizer wires a synthesizer. Both invoker and diagLog may be nil.
func NewSynthesizer(invoker ModelInvoker, diagLog *diag.Recorder, cfg PromptConfig) *Synthesizer {
	if len(cfg.Protocols) == 0 {
		cfg.Protocols = []string{"soap", "dap", "birp"}
	}
	return &Synthesizer{invoker: invoker, diagLog: diagLog, cfg: cfg}
}

// Synthesize produces a fresh report for the given window. It never returns
// an error: every failure mode degrades to a deterministic path.
func (s *Synthesizer) Synthesize(ctx context.Context, in Input) Report {
	id := uuid.NewString()

	if len(in.Entries) == 0 {
		rep := Report{ID: id, Text: NoData() + PrivacyDisclaimer, GeneratedVia: ViaFallback}
		s.record(rep, "empty_input", taxonomy.SeverityLow, 0)
		return rep
	}

	res := detect.Detect(journal.CombinedText(in.Entries))
	if res.IsCrisis && res.Severity == taxonomy.SeverityCritical {
		rep := Report{ID: id, Text: s.safetyReport(res, in.Contact), GeneratedVia: ViaFallback}
		s.record(rep, "safety_gate", res.Severity, len(in.Entries))
		return rep
	}

	agg := BuildAggregate(in.Entries)

	if text, ok := s.modelReport(ctx, agg, in); ok {
		rep := Report{ID: id, Text: text + PrivacyDisclaimer, GeneratedVia: ViaModel}
		s.record(rep, "", res.Severity, len(in.Entries))
		return rep
	}

	text := RuleBased(agg, in.Goals, in.Values, s.cfg.Protocols)
	rep := Report{ID: id, Text: text + PrivacyDisclaimer, GeneratedVia: ViaFallback}
	s.record(rep, "model_degraded", res.Severity, len(in.Entries))
	return rep
}

// #endregion

// #region paths

// safetyReport is the gated output: crisis framing and resources, no
// clinical content, no model involvement.
func (s *Synthesizer) safetyReport(res detect.Result, contact *journal.EmergencyContact) string {
	var b strings.Builder
	b.WriteString(safetyFraming)
	b.WriteString("\n\n")
	b.WriteString(respond.Select(res, contact))
	b.WriteString(PrivacyDisclaimer)
	return b.String()
}

// modelReport runs the coach-slot generation path end to end. ok=false on
// any failure; the caller degrades to the rule-based generator.
func (s *Synthesizer) modelReport(ctx context.Context, agg Aggregate, in Input) (string, bool) {
	if s.invoker == nil {
		return "", false
	}
	if !s.invoker.EnsureLoaded(ctx, infer.SlotCounselingCoach) {
		log.Printf("[REPORT] coach model unavailable, using rule-based generator")
		return "", false
	}

	prompt := BuildPrompt(agg, in.Goals, in.Values, s.cfg)
	raw, err := s.invoker.Invoke(ctx, infer.SlotCounselingCoach, prompt, coachOptions)
	if err != nil {
		log.Printf("[REPORT] coach invoke failed: %v", err)
		return "", false
	}

	text, ok := Repair(raw, prompt)
	if !ok {
		log.Printf("[REPORT] model output unusable after repair, using rule-based generator")
		return "", false
	}
	return text, true
}

// record writes a diagnostics row; failures are logged, never surfaced.
func (s *Synthesizer) record(rep Report, reason string, sev taxonomy.Severity, entryCount int) {
	if s.diagLog == nil {
		return
	}
	err := s.diagLog.Record(diag.Entry{
		ReportID:   rep.ID,
		Via:        string(rep.GeneratedVia),
		Reason:     reason,
		Severity:   sev.String(),
		EntryCount: entryCount,
	})
	if err != nil {
		log.Printf("[REPORT] diagnostics record failed: %v", err)
	}
}

// #endregion
