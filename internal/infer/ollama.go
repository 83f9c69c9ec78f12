package infer

// #region imports
import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// #endregion

// #region client

// RuntimeBackend talks to an Ollama-compatible local runtime over HTTP.
// One instance binds one model tag; the cascade holds several.
type RuntimeBackend struct {
	baseURL    string
	model      string
	kind       ModelKind
	httpClient *http.Client
}

// NewRuntimeBackend creates a backend for one model tag on a local runtime.
func NewRuntimeBackend(baseURL, model string, kind ModelKind) *RuntimeBackend {
	return &RuntimeBackend{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		kind:    kind,
		// Long timeout: pulling a model can take minutes on first load.
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

// ID returns the model tag.
func (b *RuntimeBackend) ID() string { return b.model }

// Kind returns the backend's model kind.
func (b *RuntimeBackend) Kind() ModelKind { return b.kind }

// #endregion

// #region wire-types

type pullRequest struct {
	Model  string `json:"model"`
	Stream bool   `json:"stream"`
}

type pullResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

// #endregion

// #region load

// Load pulls the model so the first Invoke does not pay download cost.
func (b *RuntimeBackend) Load(ctx context.Context) error {
	var resp pullResponse
	err := b.post(ctx, "/api/pull", pullRequest{Model: b.model, Stream: false}, &resp)
	if err != nil {
		return err
	}
	if resp.Error != "" {
		return &InferenceError{Reason: ReasonUnsupportedBackend, Model: b.model,
			Err: fmt.Errorf("pull rejected: %s", resp.Error)}
	}
	return nil
}

// #endregion

// #region invoke

// Invoke runs one prompt. Options are resolved per model kind: classifiers
// are pinned deterministic regardless of the caller's temperature.
func (b *RuntimeBackend) Invoke(ctx context.Context, prompt string, opts Options) (string, error) {
	options := map[string]any{}
	if opts.MaxTokens > 0 {
		options["num_predict"] = opts.MaxTokens
	}
	if opts.RepeatPenalty > 0 {
		options["repeat_penalty"] = opts.RepeatPenalty
	}
	if len(opts.Stop) > 0 {
		options["stop"] = opts.Stop
	}
	switch b.kind {
	case KindClassifier:
		options["temperature"] = 0.0
	default:
		options["temperature"] = opts.Temperature
	}

	var resp generateResponse
	err := b.post(ctx, "/api/generate", generateRequest{
		Model:   b.model,
		Prompt:  prompt,
		Stream:  false,
		Options: options,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", &InferenceError{Reason: ReasonRuntime, Model: b.model,
			Err: fmt.Errorf("generate rejected: %s", resp.Error)}
	}
	return resp.Response, nil
}

// #endregion

// #region transport

// post sends one JSON request and decodes the reply, classifying transport
// failures into InferenceError reasons.
func (b *RuntimeBackend) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &InferenceError{Reason: ReasonRuntime, Model: b.model, Err: fmt.Errorf("marshal: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &InferenceError{Reason: ReasonRuntime, Model: b.model, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return &InferenceError{Reason: classifyTransportError(err), Model: b.model, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &InferenceError{Reason: ReasonNetwork, Model: b.model, Err: fmt.Errorf("read body: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// Unknown model or endpoint: this runtime cannot serve the candidate.
		return &InferenceError{Reason: ReasonUnsupportedBackend, Model: b.model,
			Err: fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(data)))}
	case resp.StatusCode != http.StatusOK:
		return &InferenceError{Reason: ReasonRuntime, Model: b.model,
			Err: fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(data)))}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &InferenceError{Reason: ReasonRuntime, Model: b.model, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

func classifyTransportError(err error) Reason {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return ReasonNetwork
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ReasonNetwork
	}
	// Connection refused and friends arrive as *url.Error wrapping syscall
	// errors; treat any transport-level failure as network.
	return ReasonNetwork
}

// #endregion
