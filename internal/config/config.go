// Package config loads the core's YAML configuration. Config influences
// prompt framing and wiring only — detection never reads it.
package config

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ellenbrook/stillpoint/go-core/internal/journal"
)

// #endregion

// #region types

// Config is the full configuration recognized by the core.
type Config struct {
	// Protocols selects which clinical note formats the prompt requests.
	// Recognized: "soap", "dap", "birp". Empty = all three.
	Protocols []string `yaml:"protocols"`

	// AllowStructuredRecommendations toggles the recommendations clause in
	// the prompt framing.
	AllowStructuredRecommendations bool `yaml:"allow_structured_recommendations"`

	// Contact is interpolated into safety messages; never a detection input.
	Contact *journal.EmergencyContact `yaml:"contact"`

	Runtime RuntimeConfig `yaml:"runtime"`

	// DBPath is the SQLite file for the artifact registry and diagnostics.
	DBPath string `yaml:"db_path"`
}

// RuntimeConfig points at the local inference runtime and names the
// candidate model cascade per slot, in attempt order.
type RuntimeConfig struct {
	BaseURL         string   `yaml:"base_url"`
	MoodModels      []string `yaml:"mood_models"`
	CoachModels     []string `yaml:"coach_models"`
	LoadWaitSeconds int      `yaml:"load_wait_seconds"`
}

// #endregion

// #region defaults

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Protocols:                      []string{"soap", "dap", "birp"},
		AllowStructuredRecommendations: true,
		Runtime: RuntimeConfig{
			BaseURL:         "http://localhost:11434",
			MoodModels:      []string{"mood-mini", "gemma3:1b"},
			CoachModels:     []string{"qwen3:0.6b", "gemma3:1b", "llama3.2:3b"},
			LoadWaitSeconds: 30,
		},
		DBPath: "stillpoint_core.db",
	}
}

// #endregion

// #region load

// Load reads a YAML config file. A missing file is not an error: defaults
// apply. Present-but-invalid files fail loudly.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal %s: %w", path, err)
	}

	if len(cfg.Protocols) == 0 {
		cfg.Protocols = Default().Protocols
	}
	if cfg.Runtime.BaseURL == "" {
		cfg.Runtime.BaseURL = Default().Runtime.BaseURL
	}
	if cfg.Runtime.LoadWaitSeconds <= 0 {
		cfg.Runtime.LoadWaitSeconds = Default().Runtime.LoadWaitSeconds
	}
	return cfg, nil
}

// #endregion
