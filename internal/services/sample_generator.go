package services

import (
	"math/rand"
	"sort"
	"time"

	"cashflow-report/internal/models"

	"github.com/shopspring/decimal"
)

const (
	salaryDay       = 1
	rentDay         = 3
	purchasesPerMin = 8
	purchasesPerMax = 20
)

type sampleMerchant struct {
	memo      string
	accountID string
	category  string
	min, max  float64
}

// SampleGenerator produces a plausible account history for trying the
// reports without bank access. The same seed yields the same history.
type SampleGenerator struct {
	rng       *rand.Rand
	salary    sampleMerchant
	rent      sampleMerchant
	bills     []sampleMerchant
	merchants []sampleMerchant
}

func NewSampleGenerator(seed int64) *SampleGenerator {
	return &SampleGenerator{
		rng:    rand.New(rand.NewSource(seed)),
		salary: sampleMerchant{"Gehalt ACME GmbH", "", "Salary", 2400, 2400},
		rent:   sampleMerchant{"Miete Hausverwaltung AT611904300234573201", "AT611904300234573201", "Rent", 850, 850},
		bills: []sampleMerchant{
			{"Wien Energie Strom", "", "Utilities", 45, 95},
			{"Magenta Internet", "", "Utilities", 30, 30},
			{"Wiener Linien Jahreskarte", "", "Transport", 30.4, 30.4},
		},
		merchants: []sampleMerchant{
			{"BILLA DANKT", "", "Groceries", 8, 85},
			{"SPAR", "", "Groceries", 5, 60},
			{"HOFER", "", "Groceries", 10, 70},
			{"dm drogerie markt", "", "Drugstore", 4, 40},
			{"OMV Tankstelle", "", "Transport", 35, 75},
			{"Restaurant Figlmueller", "", "Dining", 25, 90},
			{"AMAZON EU", "", "Shopping", 12, 180},
			{"Bankomat Behebung", "", "", 50, 200},
		},
	}
}

// Generate returns the transactions of months calendar months starting with
// the month of start, oldest first and uncategorized. The first entry is an
// opening deposit.
func (g *SampleGenerator) Generate(start time.Time, months int) []models.Transaction {
	first := models.FirstOfMonth(start)
	transactions := []models.Transaction{
		models.NewTransaction(first, "", decimal.NewFromInt(1500), "", "Eröffnung Einzahlung"),
	}

	for m := 0; m < months; m++ {
		month := first.AddDate(0, m, 0)
		var monthly []models.Transaction

		monthly = append(monthly,
			g.transaction(month, salaryDay, g.salary, true),
			g.transaction(month, rentDay, g.rent, false),
		)
		for _, bill := range g.bills {
			monthly = append(monthly, g.transaction(month, 1+g.rng.Intn(28), bill, false))
		}

		n := purchasesPerMin + g.rng.Intn(purchasesPerMax-purchasesPerMin+1)
		for i := 0; i < n; i++ {
			merchant := g.merchants[g.rng.Intn(len(g.merchants))]
			monthly = append(monthly, g.transaction(month, 1+g.rng.Intn(daysIn(month)), merchant, false))
		}

		sort.SliceStable(monthly, func(i, j int) bool {
			return monthly[i].Date.Before(monthly[j].Date)
		})
		transactions = append(transactions, monthly...)
	}

	return transactions
}

// SampleRules returns account and text rules that categorize the generated
// history, leaving cash withdrawals uncategorized
func (g *SampleGenerator) SampleRules() (accountRules, textRules []models.CategoryRule) {
	accountRules = []models.CategoryRule{{Category: g.rent.category, Pattern: g.rent.accountID}}

	textRules = []models.CategoryRule{{Category: g.salary.category, Pattern: "^Gehalt"}}
	seen := map[string]bool{}
	for _, m := range append(append([]sampleMerchant(nil), g.bills...), g.merchants...) {
		if m.category == "" || seen[m.memo] {
			continue
		}
		seen[m.memo] = true
		textRules = append(textRules, models.CategoryRule{Category: m.category, Pattern: m.memo})
	}
	return accountRules, textRules
}

func (g *SampleGenerator) transaction(month time.Time, day int, m sampleMerchant, income bool) models.Transaction {
	amount := decimal.NewFromFloat(m.min + g.rng.Float64()*(m.max-m.min)).Round(2)
	if !income {
		amount = amount.Neg()
	}
	date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
	return models.NewTransaction(date, models.ExtractAccountID(m.memo), amount, "", m.memo)
}

func daysIn(month time.Time) int {
	return time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
