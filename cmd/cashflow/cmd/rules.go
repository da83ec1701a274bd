package cmd

import (
	"fmt"
	"sort"

	"cashflow-report/internal/models"
	"cashflow-report/internal/repositories"
	"cashflow-report/internal/validation"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// rulesCmd groups the rule table commands.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and apply the category rules",
}

var rulesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the rule tables",
	Long: `Load the account and text rule tables, compile every text pattern
and print how many rules each category has. Account rules whose
identifier is not IBAN-shaped can never match and are listed; an
empty identifier matches every transaction without one.

Example:
  cashflow rules check`,
	Args: cobra.NoArgs,
	Run:  runRulesCheck,
}

var rulesApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Recategorize the transaction export",
	Long: `Categorize every transaction of the export again with the current
rule tables, e.g. after adding rules, and list what is still
uncategorized.

Example:
  cashflow rules apply`,
	Args: cobra.NoArgs,
	Run:  runRulesApply,
}

func init() {
	rulesCmd.AddCommand(rulesCheckCmd)
	rulesCmd.AddCommand(rulesApplyCmd)
}

func runRulesCheck(cmd *cobra.Command, args []string) {
	rules, err := newRuleRepository().Load()
	exitOnError(err, "invalid rules")

	counts := make(map[string]int)
	for _, rule := range rules.AccountRules() {
		counts[rule.Category]++
	}
	for _, rule := range rules.TextRules() {
		counts[rule.Category]++
	}

	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	bold.Fprintf(out, "%d account rules, %d text rules\n", len(rules.AccountRules()), len(rules.TextRules()))
	for _, category := range categories {
		fmt.Fprintf(out, "  %-24s %d\n", category, counts[category])
	}

	warn := color.New(color.FgYellow)
	v := validation.GetValidator()
	for _, rule := range rules.AccountRules() {
		if rule.Pattern == "" {
			fmt.Fprintf(out, "account rule %s: matches every transaction without an account identifier\n", rule.Category)
			continue
		}
		if err := v.Var(rule.Pattern, "account_id"); err != nil {
			warn.Fprintf(out, "account rule %s: %q never matches\n", rule.Category, rule.Pattern)
		}
	}
}

func runRulesApply(cmd *cobra.Command, args []string) {
	metrics := newRunMetrics()
	categories, err := newCategoryService(metrics)
	exitOnError(err, "failed to set up categorization")
	defer metrics.Log()

	repo := repositories.NewFileTransactionRepository(cfg.Data.ExportPath)
	transactions, err := repo.Load()
	exitOnError(err, "failed to load transactions")

	categorized := categories.BatchCategorize(transactions)
	exitOnError(repo.Save(categorized), "failed to save transactions")

	var uncategorized []models.Transaction
	for _, txn := range categorized {
		if !txn.IsCategorized() {
			uncategorized = append(uncategorized, txn)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d transactions, %d uncategorized\n", len(categorized), len(uncategorized))
	warn := color.New(color.FgYellow)
	for _, txn := range uncategorized {
		warn.Fprintf(out, "  %s  %s\n", txn, txn.Memo)
	}
}
