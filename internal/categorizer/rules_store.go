package categorizer

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// RuleConfig is the YAML shape of one categorization rule. Pattern
// syntax is Go regexp, matched against the lower-cased description.
type RuleConfig struct {
	Category string `yaml:"category"`
	Match    string `yaml:"match"`
	Require  string `yaml:"require,omitempty"`
	Exclude  string `yaml:"exclude,omitempty"`
}

// RulesConfig is the YAML shape of a rules file: one ordered rule list
// per direction. A missing direction keeps the built-in table.
type RulesConfig struct {
	Income  []RuleConfig `yaml:"income"`
	Expense []RuleConfig `yaml:"expense"`
}

// LoadRulesFile reads and compiles a YAML rules file. New bank formats
// and categories are additive: edit the file, no code change.
func LoadRulesFile(path string) (income, expense []Rule, err error) {
	data, err := os.ReadFile(path) // #nosec G304 -- rules file path comes from user config
	if err != nil {
		return nil, nil, fmt.Errorf("could not read rules file: %w", err)
	}

	var config RulesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, nil, fmt.Errorf("could not parse rules file: %w", err)
	}

	income, err = compileRules(config.Income)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid income rule: %w", err)
	}
	expense, err = compileRules(config.Expense)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid expense rule: %w", err)
	}
	return income, expense, nil
}

func compileRules(configs []RuleConfig) ([]Rule, error) {
	if len(configs) == 0 {
		return nil, nil
	}

	rules := make([]Rule, 0, len(configs))
	for _, rc := range configs {
		if rc.Category == "" {
			return nil, fmt.Errorf("rule with pattern %q has no category", rc.Match)
		}

		match, err := regexp.Compile(rc.Match)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", rc.Match, err)
		}

		rule := Rule{Category: rc.Category, Match: match}
		if rc.Require != "" {
			if rule.Require, err = regexp.Compile(rc.Require); err != nil {
				return nil, fmt.Errorf("require pattern %q: %w", rc.Require, err)
			}
		}
		if rc.Exclude != "" {
			if rule.Exclude, err = regexp.Compile(rc.Exclude); err != nil {
				return nil, fmt.Errorf("exclude pattern %q: %w", rc.Exclude, err)
			}
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
