package demo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario configuration - declarative graphs for cmd/cyclicdemo
//
// Mirrors the teacher's runtime-path auto-detection flag (main.go's
// -runtime) with a declarative file instead of hardcoded logic: rather than
// the CLI choosing one fixed graph shape, scenarios.yaml lists named graphs
// a caller selects by name, the same way PolicyEngineClassificationFile in
// the pack's policy_engine package turns a fixed rule set into data.

// Edge wires a strong reference from one named node to another.
type Edge struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Scenario describes one demo graph: which nodes exist, which strong edges
// connect them, which nodes an external "keep" handle holds onto (so a
// containing cycle survives collection), and in what order the scenario's
// own handles are closed before the CLI acts.
type Scenario struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Nodes       []string `yaml:"nodes"`
	Edges       []Edge   `yaml:"edges"`
	Keep        []string `yaml:"keep"`
	Close       []string `yaml:"close"`
}

// File is the top-level shape of a scenario YAML document.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads and parses a scenario file from path.
func Load(path string) ([]Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("demo: read scenario file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("demo: parse scenario file: %w", err)
	}
	return f.Scenarios, nil
}

// Find returns the scenario named name, or an error listing what's
// available if there's no match.
func Find(scenarios []Scenario, name string) (Scenario, error) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	names := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		names = append(names, s.Name)
	}
	return Scenario{}, fmt.Errorf("demo: unknown scenario %q, have %v", name, names)
}
