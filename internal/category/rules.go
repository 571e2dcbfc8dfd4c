package category

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cutlog/internal/pipeline"
)

// defaultPriority ranks rules that declare no priority after every rule that
// does.
const defaultPriority = 999

// Pattern is one field test inside a rule.
type Pattern struct {
	Field   string `yaml:"field"`
	Kind    string `yaml:"type"`
	Pattern string `yaml:"pattern"`
}

// Rule assigns a category name to events matching any of its patterns.
// Format is an opaque presentation payload passed through to the report
// layer untouched.
type Rule struct {
	Name     string         `yaml:"name"`
	Priority int            `yaml:"priority"`
	Patterns []Pattern      `yaml:"patterns"`
	Format   map[string]any `yaml:"format"`
}

// Config is the parsed category rules file.
type Config struct {
	Categories []Rule `yaml:"categories"`
}

type rawRule struct {
	Name     string         `yaml:"name"`
	Priority *int           `yaml:"priority"`
	Patterns []Pattern      `yaml:"patterns"`
	Format   map[string]any `yaml:"format"`
}

type rawConfig struct {
	Categories []rawRule `yaml:"categories"`
}

// LoadRules reads and validates a YAML rules file.
func LoadRules(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, pipeline.Wrap(pipeline.ErrNotFound, "category", "load rules", fmt.Sprintf("rules file not found: %s", path), err)
		}
		return Config{}, pipeline.Wrap(pipeline.ErrConfiguration, "category", "load rules", fmt.Sprintf("read %s", path), err)
	}
	return ParseRules(data)
}

// ParseRules parses YAML rules data. A file without a categories key is
// rejected; individual malformed patterns are tolerated and skipped later at
// match time.
func ParseRules(data []byte) (Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, pipeline.Wrap(pipeline.ErrConfiguration, "category", "parse rules", "invalid YAML", err)
	}
	if raw.Categories == nil {
		return Config{}, pipeline.Wrap(pipeline.ErrConfiguration, "category", "parse rules", "configuration must contain a categories key", nil)
	}
	cfg := Config{Categories: make([]Rule, 0, len(raw.Categories))}
	for i, rule := range raw.Categories {
		if rule.Name == "" {
			return Config{}, pipeline.Wrap(pipeline.ErrConfiguration, "category", "parse rules", fmt.Sprintf("category %d has no name", i+1), nil)
		}
		priority := defaultPriority
		if rule.Priority != nil {
			priority = *rule.Priority
		}
		cfg.Categories = append(cfg.Categories, Rule{
			Name:     rule.Name,
			Priority: priority,
			Patterns: rule.Patterns,
			Format:   rule.Format,
		})
	}
	return cfg, nil
}
