package infer

// #region imports
import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// #endregion

// #region orchestrator

// Orchestrator owns all slot state explicitly — callers receive an injected
// instance, never ambient globals. Safe for concurrent use.
type Orchestrator struct {
	mu         sync.Mutex
	slots      map[SlotID]*slotEntry
	candidates map[SlotID][]Candidate
	registry   *Registry // nil = no artifact tracking
	group      singleflight.Group
	loadWait   time.Duration
	runtimeURL string
}

type slotEntry struct {
	state  SlotState
	active Backend
}

// OrchestratorConfig wires an Orchestrator.
type OrchestratorConfig struct {
	Candidates map[SlotID][]Candidate
	Registry   *Registry
	LoadWait   time.Duration // ceiling for waiting on an in-flight load
	RuntimeURL string        // recorded with artifacts, informational
}

// NewOrchestrator creates an orchestrator with every slot unloaded.
func NewOrchestrator(cfg OrchestratorConfig) *Orchestrator {
	if cfg.LoadWait <= 0 {
		cfg.LoadWait = 30 * time.Second
	}
	slots := make(map[SlotID]*slotEntry, len(cfg.Candidates))
	for id := range cfg.Candidates {
		slots[id] = &slotEntry{state: StateUnloaded}
	}
	return &Orchestrator{
		slots:      slots,
		candidates: cfg.Candidates,
		registry:   cfg.Registry,
		loadWait:   cfg.LoadWait,
		runtimeURL: cfg.RuntimeURL,
	}
}

// BuildCascades assembles the default runtime cascades for both slots from
// ordered model tag lists.
func BuildCascades(baseURL string, moodModels, coachModels []string) map[SlotID][]Candidate {
	cascades := make(map[SlotID][]Candidate)
	for _, tag := range moodModels {
		cascades[SlotMoodTracker] = append(cascades[SlotMoodTracker],
			Candidate{Backend: NewRuntimeBackend(baseURL, tag, KindClassifier)})
	}
	for _, tag := range coachModels {
		cascades[SlotCounselingCoach] = append(cascades[SlotCounselingCoach],
			Candidate{Backend: NewRuntimeBackend(baseURL, tag, KindGenerator)})
	}
	return cascades
}

// #endregion

// #region ensure-loaded

// EnsureLoaded brings a slot to ready, sharing any in-flight load instead
// of starting a second one. The wait on an in-flight load is bounded: past
// the ceiling the caller proceeds without the slot while the load finishes
// in the background and updates slot state for future callers.
func (o *Orchestrator) EnsureLoaded(ctx context.Context, id SlotID) bool {
	o.mu.Lock()
	s := o.slotLocked(id)
	switch s.state {
	case StateReady:
		o.mu.Unlock()
		return true
	case StateFailed:
		o.mu.Unlock()
		return false
	}
	o.mu.Unlock()

	ch := o.group.DoChan(string(id), func() (interface{}, error) {
		return nil, o.runCascade(id)
	})

	select {
	case res := <-ch:
		return res.Err == nil
	case <-time.After(o.loadWait):
		log.Printf("[INFER] slot %s: load still in flight after %s, proceeding without it", id, o.loadWait)
		return false
	case <-ctx.Done():
		return false
	}
}

// #endregion

// #region cascade

// runCascade tries each candidate in order, stopping at the first success.
// A candidate failure is non-fatal; exhausting the list fails the slot.
// Runs on a background context: a caller that stopped waiting must not
// cancel the load out from under future callers.
func (o *Orchestrator) runCascade(id SlotID) error {
	o.mu.Lock()
	s := o.slotLocked(id)
	if s.state == StateReady {
		o.mu.Unlock()
		return nil
	}
	s.state = StateLoading
	o.mu.Unlock()

	ctx := context.Background()
	for _, cand := range o.candidates[id] {
		b := cand.Backend
		if err := b.Load(ctx); err != nil {
			log.Printf("[INFER] slot %s: candidate %s unavailable: %v", id, b.ID(), err)
			continue
		}
		if o.registry != nil {
			if err := o.registry.Record(b.ID(), id, o.runtimeURL); err != nil {
				log.Printf("[INFER] slot %s: registry record failed: %v", id, err)
			}
		}
		o.mu.Lock()
		s.state = StateReady
		s.active = b
		o.mu.Unlock()
		log.Printf("[INFER] slot %s: ready on %s (%s)", id, b.ID(), b.Kind())
		return nil
	}

	o.mu.Lock()
	s.state = StateFailed
	o.mu.Unlock()
	log.Printf("[INFER] slot %s: all candidates exhausted", id)
	return fmt.Errorf("slot %s: all candidates failed", id)
}

// #endregion

// #region invoke

// Invoke runs a prompt on the slot's active backend. The slot must be
// ready; callers handle InferenceError by taking their fallback path.
func (o *Orchestrator) Invoke(ctx context.Context, id SlotID, prompt string, opts Options) (string, error) {
	o.mu.Lock()
	s := o.slotLocked(id)
	backend := s.active
	state := s.state
	o.mu.Unlock()

	if state != StateReady || backend == nil {
		return "", &InferenceError{
			Reason: ReasonRuntime,
			Model:  string(id),
			Err:    fmt.Errorf("slot not ready (state %s)", state),
		}
	}
	return backend.Invoke(ctx, prompt, opts)
}

// #endregion

// #region force-reload

// ForceReload fully purges the slot's cached artifacts, then resets the
// slot to unloaded so the next EnsureLoaded re-runs the cascade. The purge
// is all-or-nothing: on purge failure the slot state is left untouched
// rather than risking a half-cleared cache.
func (o *Orchestrator) ForceReload(id SlotID) error {
	o.group.Forget(string(id))

	if o.registry != nil {
		if err := o.registry.PurgeSlot(id); err != nil {
			return fmt.Errorf("force reload %s: %w", id, err)
		}
	}

	o.mu.Lock()
	o.slots[id] = &slotEntry{state: StateUnloaded}
	o.mu.Unlock()
	log.Printf("[INFER] slot %s: force reload, cache purged", id)
	return nil
}

// #endregion

// #region status

// Status reports the slot's current lifecycle without blocking.
func (o *Orchestrator) Status(id SlotID) SlotStatus {
	o.mu.Lock()
	defer o.mu.Unlock()
	s := o.slotLocked(id)
	return SlotStatus{
		Ready:   s.state == StateReady,
		Loading: s.state == StateLoading,
	}
}

// slotLocked returns the slot entry, creating it unloaded if absent.
// Caller holds o.mu.
func (o *Orchestrator) slotLocked(id SlotID) *slotEntry {
	s, ok := o.slots[id]
	if !ok {
		s = &slotEntry{state: StateUnloaded}
		o.slots[id] = s
	}
	return s
}

// #endregion
