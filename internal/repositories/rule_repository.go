package repositories

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"cashflow-report/internal/models"

	"gopkg.in/yaml.v3"
)

var (
	ErrMalformedRuleRow = errors.New("rule row must have a category and a pattern")
)

// RuleFiles names the sources of a rule table. Empty paths are skipped.
type RuleFiles struct {
	AccountRulesPath string
	TextRulesPath    string
	YAMLPath         string
}

// ruleDocument is the YAML rule file layout
type ruleDocument struct {
	Accounts []models.CategoryRule `yaml:"accounts"`
	Text     []models.CategoryRule `yaml:"text"`
}

type ruleRepository struct {
	files RuleFiles
}

// NewRuleRepository creates a rule repository over CSV and YAML files.
// YAML rules are appended after the CSV rules of the same kind.
func NewRuleRepository(files RuleFiles) RuleRepositoryInterface {
	return &ruleRepository{files: files}
}

func (r *ruleRepository) Load() (*models.RuleTable, error) {
	accountRules, err := readRuleFile(r.files.AccountRulesPath)
	if err != nil {
		return nil, err
	}

	textRules, err := readRuleFile(r.files.TextRulesPath)
	if err != nil {
		return nil, err
	}

	if r.files.YAMLPath != "" {
		doc, err := readRuleYAML(r.files.YAMLPath)
		if err != nil {
			return nil, err
		}
		accountRules = append(accountRules, doc.Accounts...)
		textRules = append(textRules, doc.Text...)
	}

	table, err := models.NewRuleTable(accountRules, textRules)
	if err != nil {
		return nil, fmt.Errorf("failed to build rule table: %w", err)
	}
	return table, nil
}

func readRuleFile(path string) ([]models.CategoryRule, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rule file %q: %w", path, err)
	}
	defer f.Close()

	rules, err := ReadRules(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file %q: %w", path, err)
	}
	return rules, nil
}

// ReadRules reads comma separated category,pattern rows in file order
func ReadRules(in io.Reader) ([]models.CategoryRule, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1

	var rules []models.CategoryRule
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(row) < 2 || row[0] == "" {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d", ErrMalformedRuleRow, line)
		}
		rules = append(rules, models.CategoryRule{Category: row[0], Pattern: row[1]})
	}

	return rules, nil
}

// WriteRules writes rules as category,pattern rows readable by ReadRules
func WriteRules(out io.Writer, rules []models.CategoryRule) error {
	writer := csv.NewWriter(out)
	for _, rule := range rules {
		if err := writer.Write([]string{rule.Category, rule.Pattern}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func readRuleYAML(path string) (*ruleDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file %q: %w", path, err)
	}

	var doc ruleDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse rule file %q: %w", path, err)
	}

	for _, rules := range [][]models.CategoryRule{doc.Accounts, doc.Text} {
		for _, rule := range rules {
			if rule.Category == "" {
				return nil, fmt.Errorf("%w: %q", ErrMalformedRuleRow, path)
			}
		}
	}
	return &doc, nil
}
