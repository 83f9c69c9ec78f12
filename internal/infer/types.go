package infer

import "fmt"

// #region slot

// SlotID names a logical model slot. Each slot owns one backend cascade.
type SlotID string

const (
	SlotMoodTracker     SlotID = "mood-tracker"
	SlotCounselingCoach SlotID = "counseling-coach"
)

// SlotState is the lifecycle state of a slot.
type SlotState string

const (
	StateUnloaded SlotState = "unloaded"
	StateLoading  SlotState = "loading"
	StateReady    SlotState = "ready"
	StateFailed   SlotState = "failed" // terminal until ForceReload
)

// SlotStatus is the bounded-wait-free status snapshot of a slot.
type SlotStatus struct {
	Ready   bool
	Loading bool
}

// #endregion

// #region model-kind

// ModelKind tags what a backend is, so invocation options can be resolved
// per kind at call time instead of assumed structurally.
type ModelKind string

const (
	KindClassifier ModelKind = "classifier"
	KindGenerator  ModelKind = "generator"
)

// #endregion

// #region options

// Options bounds a single invocation.
type Options struct {
	MaxTokens     int
	Temperature   float32
	RepeatPenalty float32
	Stop          []string
}

// #endregion

// #region inference-error

// Reason distinguishes permanent backend incompatibility from transient
// failures.
type Reason string

const (
	ReasonUnsupportedBackend Reason = "unsupported_backend" // permanent for this session
	ReasonNetwork            Reason = "network"             // retryable
	ReasonRuntime            Reason = "runtime"
)

// InferenceError is the only error type model loading and invocation
// surface across the package boundary.
type InferenceError struct {
	Reason Reason
	Model  string
	Err    error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference %s (model %s): %v", e.Reason, e.Model, e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

// #endregion
