// Package config loads YAML-backed default options for the validator and
// impact analyzer (a SPEC_FULL.md supplement; not part of spec.md's core
// contract). Grounded on the teacher's apoc/config.go, which loads a YAML
// document of APOC function gates via gopkg.in/yaml.v3 into a plain Go
// struct with yaml tags; this package follows the identical shape for
// rule/profile options instead of function gates.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flowgraph/graphengine/pkg/impact"
	"github.com/flowgraph/graphengine/pkg/validate"
)

// RuleProfile toggles optional (non-standard) validator rules. Standard
// rule ordering per §4.4 is never affected by a profile: a profile may
// only append user-level warning rules after the standard set.
type RuleProfile struct {
	// IncludeIsolatedNode appends validate.IsolatedNodeRule after the
	// standard rules when true.
	IncludeIsolatedNode bool `yaml:"includeIsolatedNode"`
}

// ValidateOptionsConfig mirrors validate.Options as a YAML-loadable shape.
type ValidateOptionsConfig struct {
	AllowMultiple bool        `yaml:"allowMultiple"`
	MatchFlow     bool        `yaml:"matchFlow"`
	Rules         RuleProfile `yaml:"rules"`
}

// ImpactOptionsConfig mirrors impact.Options as a YAML-loadable shape.
type ImpactOptionsConfig struct {
	Direction       string   `yaml:"direction"`
	Depth           *int     `yaml:"depth,omitempty"`
	IncludeBoundary bool     `yaml:"includeBoundary"`
	StopNodes       []string `yaml:"stopNodes,omitempty"`
	IncludeSeeds    *bool    `yaml:"includeSeeds,omitempty"`
}

// Config bundles default ValidateOptions/ImpactOptions profiles, loadable
// from a YAML document (e.g. for cmd/graphctl).
type Config struct {
	Validate ValidateOptionsConfig `yaml:"validate"`
	Impact   ImpactOptionsConfig   `yaml:"impact"`
}

// Default returns a Config matching the spec's own documented defaults
// (§6): allowMultiple=false, matchFlow=false, impact direction="both",
// includeBoundary=false, includeSeeds=true.
func Default() *Config {
	return &Config{
		Impact: ImpactOptionsConfig{
			Direction:    string(impact.Both),
			IncludeSeeds: impact.BoolPtr(true),
		},
	}
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ValidateOptions converts the config's validate section into a
// validate.Options, expanding the rule profile into a concrete rule list.
func (c *Config) ValidateOptions() validate.Options {
	rules := validate.StandardRules()
	if c.Validate.Rules.IncludeIsolatedNode {
		rules = append(rules, validate.IsolatedNodeRule)
	}
	return validate.Options{
		AllowMultiple: c.Validate.AllowMultiple,
		MatchFlow:     c.Validate.MatchFlow,
		Rules:         rules,
	}
}

// ImpactOptions converts the config's impact section into an
// impact.Options.
func (c *Config) ImpactOptions() impact.Options {
	return impact.Options{
		Direction:       impact.Direction(c.Impact.Direction),
		Depth:           c.Impact.Depth,
		IncludeBoundary: c.Impact.IncludeBoundary,
		StopNodes:       c.Impact.StopNodes,
		IncludeSeeds:    c.Impact.IncludeSeeds,
	}
}
