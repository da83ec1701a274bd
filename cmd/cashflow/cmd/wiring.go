package cmd

import (
	"fmt"

	"cashflow-report/internal/repositories"
	"cashflow-report/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	promdto "github.com/prometheus/client_model/go"
)

// runMetrics collects the counters of one command on a private registry
type runMetrics struct {
	*services.PrometheusMetrics
	registry *prometheus.Registry
}

func newRunMetrics() *runMetrics {
	registry := prometheus.NewRegistry()
	return &runMetrics{
		PrometheusMetrics: services.NewPrometheusMetrics(registry),
		registry:          registry,
	}
}

// Log writes one line per counter series recorded during the run
func (m *runMetrics) Log() {
	families, err := m.registry.Gather()
	if err != nil {
		logger.Warn("failed to gather run metrics", "error", err)
		return
	}

	for _, family := range families {
		if family.GetType() != promdto.MetricType_COUNTER {
			continue
		}
		for _, metric := range family.GetMetric() {
			args := []any{"metric", family.GetName(), "value", metric.GetCounter().GetValue()}
			for _, label := range metric.GetLabel() {
				args = append(args, label.GetName(), label.GetValue())
			}
			logger.Info("run metric", args...)
		}
	}
}

func newRuleRepository() repositories.RuleRepositoryInterface {
	return repositories.NewRuleRepository(repositories.RuleFiles{
		AccountRulesPath: cfg.Rules.AccountRulesPath,
		TextRulesPath:    cfg.Rules.TextRulesPath,
		YAMLPath:         cfg.Rules.YAMLPath,
	})
}

// newCategoryService loads the rule table once for the whole run
func newCategoryService(metrics services.MetricsRecorderInterface) (services.CategoryServiceInterface, error) {
	rules, err := newRuleRepository().Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	logger.Debug("rules loaded",
		"account_rules", len(rules.AccountRules()),
		"text_rules", len(rules.TextRules()))

	return services.NewCategoryService(rules, metrics)
}

func newImportService(metrics services.MetricsRecorderInterface) (services.ImportServiceInterface, error) {
	categories, err := newCategoryService(metrics)
	if err != nil {
		return nil, err
	}

	return services.NewImportService(
		repositories.NewEasybankStatementParser(),
		categories,
		repositories.NewFileTransactionRepository(cfg.Data.ExportPath),
		logger,
		metrics,
	), nil
}
