package infer

import "context"

// #region backend

// Backend is one candidate model runtime binding. Load pulls or warms the
// model; Invoke runs a single prompt. Both honor context cancellation.
type Backend interface {
	ID() string
	Kind() ModelKind
	Load(ctx context.Context) error
	Invoke(ctx context.Context, prompt string, opts Options) (string, error)
}

// #endregion

// #region candidate

// Candidate is one entry in a slot's fallback cascade, attempted in order.
type Candidate struct {
	Backend Backend
}

// #endregion
