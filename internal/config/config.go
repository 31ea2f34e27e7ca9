// Package config loads run scenarios from YAML files, the environment and
// command line overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Renderers accepted by the run command.
const (
	RendererText = "text"
	RendererNone = "none"
)

// Scenario describes one run of a sim.
type Scenario struct {
	Sim      string `yaml:"sim"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Seed     int64  `yaml:"seed"`
	Steps    int    `yaml:"steps"`
	TPS      int    `yaml:"tps"`
	Renderer string `yaml:"renderer"`
	Color    bool   `yaml:"color"`
	LogLevel string `yaml:"log_level"`

	// Params are passed to the sim's factory as-is.
	Params map[string]string `yaml:"params"`
}

// Default returns the scenario used when nothing is configured.
func Default() Scenario {
	return Scenario{Sim: "life", Seed: 42, Steps: 100, TPS: 30, Renderer: RendererText, LogLevel: "info"}
}

// Load starts from Default, overlays the YAML file at path when one is
// given and finally the CAGE_* environment variables.
func Load(path string) (Scenario, error) {
	s := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("load scenario: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parse scenario %s: %w", path, err)
		}
	}
	loadFromEnv(&s)
	return s, s.Validate()
}

func loadFromEnv(s *Scenario) {
	if v := os.Getenv("CAGE_SIM"); v != "" {
		s.Sim = v
	}
	if v := os.Getenv("CAGE_SEED"); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.Seed = i
		}
	}
	if v := os.Getenv("CAGE_LOG_LEVEL"); v != "" {
		s.LogLevel = v
	}
}

// Validate rejects scenarios no sim could run.
func (s Scenario) Validate() error {
	if s.Sim == "" {
		return errors.New("sim must be set")
	}
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("size %dx%d must not be negative", s.Width, s.Height)
	}
	if s.Steps < 0 {
		return fmt.Errorf("steps must be >= 0, got %d", s.Steps)
	}
	switch s.Renderer {
	case RendererText, RendererNone:
	default:
		return fmt.Errorf("unknown renderer %q", s.Renderer)
	}
	return nil
}

// ToMap flattens the scenario into a sim configuration map. Width and
// height become "w" and "h" unless Params sets them explicitly.
func (s Scenario) ToMap() map[string]string {
	out := make(map[string]string, len(s.Params)+2)
	if s.Width > 0 {
		out["w"] = strconv.Itoa(s.Width)
	}
	if s.Height > 0 {
		out["h"] = strconv.Itoa(s.Height)
	}
	for k, v := range s.Params {
		out[k] = v
	}
	return out
}

// Set applies "key=value" overrides to Params.
func (s *Scenario) Set(overrides []string) error {
	for _, kv := range overrides {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return fmt.Errorf("override %q: want key=value", kv)
		}
		if s.Params == nil {
			s.Params = map[string]string{}
		}
		s.Params[k] = strings.TrimSpace(v)
	}
	return nil
}
