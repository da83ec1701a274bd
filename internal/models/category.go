package models

import (
	"errors"
	"fmt"
	"regexp"
)

// CategoryUncategorized labels transactions no rule matched in aggregated output
const CategoryUncategorized = "Uncategorized"

// Categorization method types
const (
	CategorizationMethodAccount = "ACCOUNT"
	CategorizationMethodText    = "TEXT"
	CategorizationMethodNone    = "NONE"
)

var ErrInvalidRulePattern = errors.New("invalid text rule pattern")

// CategoryRule pairs a category with the pattern that selects it
type CategoryRule struct {
	Category string `yaml:"category" json:"category"`
	Pattern  string `yaml:"pattern" json:"pattern"`
}

type textRule struct {
	CategoryRule
	re *regexp.Regexp
}

// RuleTable holds the ordered account-identifier and text rules. Order is
// significant: the first matching rule wins.
//
// A RuleTable is read-only once built.
type RuleTable struct {
	accountRules []CategoryRule
	textRules    []textRule
}

// NewRuleTable validates the rules and compiles every text pattern
func NewRuleTable(accountRules, textRules []CategoryRule) (*RuleTable, error) {
	table := &RuleTable{
		accountRules: append([]CategoryRule(nil), accountRules...),
		textRules:    make([]textRule, 0, len(textRules)),
	}

	for i, rule := range textRules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d (%s): %v", ErrInvalidRulePattern, i+1, rule.Category, err)
		}
		table.textRules = append(table.textRules, textRule{CategoryRule: rule, re: re})
	}

	return table, nil
}

// MatchAccount returns the first account rule whose identifier equals accountID
func (t *RuleTable) MatchAccount(accountID string) (CategoryRule, bool) {
	for _, rule := range t.accountRules {
		if rule.Pattern == accountID {
			return rule, true
		}
	}
	return CategoryRule{}, false
}

// MatchText returns the first text rule whose pattern is found in text
func (t *RuleTable) MatchText(text string) (CategoryRule, bool) {
	for _, rule := range t.textRules {
		if rule.re.MatchString(text) {
			return rule.CategoryRule, true
		}
	}
	return CategoryRule{}, false
}

// AccountRules returns a copy of the account-identifier rules
func (t *RuleTable) AccountRules() []CategoryRule {
	return append([]CategoryRule(nil), t.accountRules...)
}

// TextRules returns a copy of the text rules
func (t *RuleTable) TextRules() []CategoryRule {
	rules := make([]CategoryRule, 0, len(t.textRules))
	for _, rule := range t.textRules {
		rules = append(rules, rule.CategoryRule)
	}
	return rules
}

// Len returns the total number of rules
func (t *RuleTable) Len() int {
	return len(t.accountRules) + len(t.textRules)
}

// CategorizationResult contains the result of transaction categorization
type CategorizationResult struct {
	Category       string `json:"category"`
	Method         string `json:"method"`
	MatchedPattern string `json:"matched_pattern,omitempty"`
}
