// Package vocab loads the fixed skill vocabulary catalog shared by the
// profile parser, the compatibility scorer, and the roadmap generator.
// The catalog is embedded at build time and injected into usecases at
// construction; nothing reads it as a process-wide global, so tests can
// substitute a smaller catalog for determinism.
package vocab

import (
	"fmt"
	"strings"

	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// RoadmapPlan is a curated duration estimate plus free learning resources.
type RoadmapPlan struct {
	Weeks     string   `yaml:"weeks"`
	Resources []string `yaml:"resources"`
}

// Catalog is the fixed, ordered skill vocabulary plus the lookup tables
// derived from it. Read-only after Load.
type Catalog struct {
	// Ordered, lowercase, unique. Job-keyword extraction preserves this order.
	Skills []string `yaml:"skills"`
	// Lowercase skill -> suggested resource for gap tips
	TipResources map[string]string `yaml:"tip_resources"`
	// Lowercase skill -> curated plan
	Roadmaps map[string]RoadmapPlan `yaml:"roadmaps"`
	// Plan for skills without a curated entry
	Fallback RoadmapPlan `yaml:"fallback"`
}

// Load parses and validates the embedded catalog.
func Load() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, fmt.Errorf("parse vocabulary catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid vocabulary catalog: %w", err)
	}
	return &c, nil
}

// MustLoad is Load for wiring paths where a broken embedded catalog is a
// programming error, not a runtime condition.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) validate() error {
	if len(c.Skills) == 0 {
		return fmt.Errorf("skill list is empty")
	}
	seen := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		if s == "" {
			return fmt.Errorf("skill list contains an empty term")
		}
		if s != strings.ToLower(s) {
			return fmt.Errorf("skill %q is not lowercase", s)
		}
		if seen[s] {
			return fmt.Errorf("duplicate skill %q", s)
		}
		seen[s] = true
	}
	for skill, plan := range c.Roadmaps {
		if len(plan.Resources) != 3 {
			return fmt.Errorf("curated roadmap for %q must have exactly 3 resources, got %d", skill, len(plan.Resources))
		}
		if plan.Weeks == "" {
			return fmt.Errorf("curated roadmap for %q has no duration", skill)
		}
	}
	if c.Fallback.Weeks == "" || len(c.Fallback.Resources) == 0 {
		return fmt.Errorf("fallback roadmap plan is incomplete")
	}
	return nil
}

// Plan returns the curated plan for a skill, or the fallback.
func (c *Catalog) Plan(skill string) RoadmapPlan {
	if plan, ok := c.Roadmaps[strings.ToLower(skill)]; ok {
		return plan
	}
	return c.Fallback
}

// TipResource returns the suggested learning resource for a skill gap tip.
func (c *Catalog) TipResource(skill string) string {
	if res, ok := c.TipResources[strings.ToLower(skill)]; ok {
		return res
	}
	return "YouTube tutorials + freeCodeCamp"
}
