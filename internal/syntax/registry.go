package syntax

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry maps file extensions to rulesets. Built-in rulesets are
// registered first; rulesets loaded later win extension conflicts.
type Registry struct {
	rulesets []*Ruleset
}

// NewRegistry creates a registry seeded with the built-in rulesets.
func NewRegistry() *Registry {
	return &Registry{
		rulesets: []*Ruleset{RulesetC(), RulesetGo()},
	}
}

// Add registers a ruleset. Later registrations take precedence over
// earlier ones when extensions overlap.
func (reg *Registry) Add(rules *Ruleset) {
	reg.rulesets = append([]*Ruleset{rules}, reg.rulesets...)
}

// Rulesets returns all registered rulesets in lookup order.
func (reg *Registry) Rulesets() []*Ruleset {
	return reg.rulesets
}

// LoadDir loads every *.yaml and *.yml ruleset file in dir. A missing
// directory is not an error. Files that fail to parse abort the load.
func (reg *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		rules, err := LoadRulesetFile(path)
		if err != nil {
			return err
		}
		reg.Add(rules)
	}

	return nil
}

// LoadRulesetFile parses a single YAML ruleset file.
func LoadRulesetFile(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rules Ruleset
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse ruleset %s: %w", path, err)
	}
	if rules.Name == "" {
		return nil, fmt.Errorf("ruleset %s: missing name", path)
	}

	return &rules, nil
}

// DetectByPath returns the ruleset whose extensions match the file name,
// or nil when none matches. The extension is everything after the first
// dot in the base name, so "archive.tar.gz" looks up "tar.gz".
func (reg *Registry) DetectByPath(path string) *Ruleset {
	if path == "" {
		return nil
	}
	base := filepath.Base(path)
	idx := strings.IndexByte(base, '.')
	if idx < 0 {
		return nil
	}
	ext := base[idx+1:]
	if ext == "" {
		return nil
	}

	for _, rules := range reg.rulesets {
		for _, want := range rules.Extensions {
			if want == ext {
				return rules
			}
		}
	}
	return nil
}
