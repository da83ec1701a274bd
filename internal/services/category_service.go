package services

import (
	"errors"

	"cashflow-report/internal/models"
)

var (
	ErrRuleTableNil = errors.New("rule table cannot be nil")
)

type categoryService struct {
	rules   *models.RuleTable
	metrics MetricsRecorderInterface
}

// NewCategoryService creates a categorizer over a validated rule table
func NewCategoryService(rules *models.RuleTable, metrics MetricsRecorderInterface) (CategoryServiceInterface, error) {
	if rules == nil {
		return nil, ErrRuleTableNil
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &categoryService{rules: rules, metrics: metrics}, nil
}

// Categorize returns the category of the first matching account rule, then
// the first matching text rule, or "" when nothing matches
func (s *categoryService) Categorize(accountID, memo string) string {
	return s.categorize(accountID, memo).Category
}

func (s *categoryService) categorize(accountID, memo string) *models.CategorizationResult {
	if rule, ok := s.rules.MatchAccount(accountID); ok {
		return &models.CategorizationResult{
			Category:       rule.Category,
			Method:         models.CategorizationMethodAccount,
			MatchedPattern: rule.Pattern,
		}
	}

	if rule, ok := s.rules.MatchText(memo); ok {
		return &models.CategorizationResult{
			Category:       rule.Category,
			Method:         models.CategorizationMethodText,
			MatchedPattern: rule.Pattern,
		}
	}

	return &models.CategorizationResult{
		Method: models.CategorizationMethodNone,
	}
}

// CategorizeTransaction returns a categorized copy of the transaction
func (s *categoryService) CategorizeTransaction(txn models.Transaction) (models.Transaction, *models.CategorizationResult) {
	result := s.categorize(txn.AccountID, txn.Memo)
	s.metrics.RecordCategorization(result.Method)
	return txn.WithCategory(result.Category), result
}

// BatchCategorize categorizes multiple transactions, keeping their order
func (s *categoryService) BatchCategorize(transactions []models.Transaction) []models.Transaction {
	categorized := make([]models.Transaction, 0, len(transactions))

	for _, txn := range transactions {
		c, _ := s.CategorizeTransaction(txn)
		categorized = append(categorized, c)
	}

	return categorized
}

// Rules exposes the rule table the service was built with
func (s *categoryService) Rules() *models.RuleTable {
	return s.rules
}
