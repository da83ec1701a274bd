package services

import (
	"testing"
	"time"

	"cashflow-report/internal/models"
	"cashflow-report/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	service CategoryServiceInterface
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) SetupTest() {
	rules, err := models.NewRuleTable(
		[]models.CategoryRule{
			{Category: "Rent", Pattern: "AT611904300234573201"},
			{Category: "Insurance", Pattern: "DE89370400440532013000"},
		},
		[]models.CategoryRule{
			{Category: "Groceries", Pattern: "BILLA|SPAR"},
			{Category: "Salary", Pattern: "(?i)gehalt"},
			{Category: "Shopping", Pattern: "SPAR"},
		},
	)
	s.Require().NoError(err)

	s.service, err = NewCategoryService(rules, nil)
	s.Require().NoError(err)
}

func (s *CategoryServiceTestSuite) TestCategorize_Scenario() {
	s.Equal("Rent", s.service.Categorize("AT611904300234573201", "anything"))
	s.Equal("Groceries", s.service.Categorize("", "BILLA DANKT 1234"))
	s.Equal("", s.service.Categorize("", "unknown"))
}

func (s *CategoryServiceTestSuite) TestCategorize_AccountRuleBeatsText() {
	s.Equal("Insurance", s.service.Categorize("DE89370400440532013000", "Gehalt Jänner"))
}

func (s *CategoryServiceTestSuite) TestCategorize_FirstTextRuleWins() {
	s.Equal("Groceries", s.service.Categorize("", "SPAR Filiale"))
}

func (s *CategoryServiceTestSuite) TestCategorize_UnknownAccountFallsBackToText() {
	s.Equal("Salary", s.service.Categorize("GB29NWBK60161331926819", "GEHALT"))
}

func (s *CategoryServiceTestSuite) TestCategorizeTransaction_Result() {
	original := models.NewTransaction(time.Now(), "AT611904300234573201", decimal.NewFromInt(-800), "", "Miete")

	categorized, result := s.service.CategorizeTransaction(original)
	s.Equal("Rent", categorized.Category)
	s.Equal(models.CategorizationMethodAccount, result.Method)
	s.Equal("AT611904300234573201", result.MatchedPattern)
	s.Empty(original.Category)

	_, result = s.service.CategorizeTransaction(models.NewTransaction(time.Now(), "", decimal.NewFromInt(5), "", "BILLA"))
	s.Equal(models.CategorizationMethodText, result.Method)
	s.Equal("BILLA|SPAR", result.MatchedPattern)

	_, result = s.service.CategorizeTransaction(models.NewTransaction(time.Now(), "", decimal.NewFromInt(5), "", gofakeit.Numerify("####")))
	s.Equal(models.CategorizationMethodNone, result.Method)
	s.Empty(result.Category)
}

func (s *CategoryServiceTestSuite) TestBatchCategorize_KeepsOrderAndIsIdempotent() {
	var transactions []models.Transaction
	for i := 0; i < 50; i++ {
		memo := gofakeit.RandomString([]string{"BILLA", "Gehalt", "SPAR", gofakeit.Word()})
		account := gofakeit.RandomString([]string{"AT611904300234573201", "", "DE89370400440532013000"})
		amount := decimal.NewFromFloat(gofakeit.Float64Range(-1000, 1000)).Round(2)
		transactions = append(transactions, models.NewTransaction(gofakeit.Date(), account, amount, "", memo))
	}

	once := s.service.BatchCategorize(transactions)
	twice := s.service.BatchCategorize(once)

	s.Require().Len(once, len(transactions))
	for i := range transactions {
		s.Equal(transactions[i].Memo, once[i].Memo)
		s.True(transactions[i].Amount.Equal(once[i].Amount))
		s.Equal(once[i].Category, twice[i].Category)
		s.Equal(s.service.Categorize(transactions[i].AccountID, transactions[i].Memo), once[i].Category)
	}
}

func (s *CategoryServiceTestSuite) TestRules() {
	s.Equal(5, s.service.Rules().Len())
}

func TestNewCategoryService_NilRules(t *testing.T) {
	_, err := NewCategoryService(nil, nil)
	assert.ErrorIs(t, err, ErrRuleTableNil)
}

func TestCategoryService_RecordsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	metrics.EXPECT().RecordCategorization(models.CategorizationMethodText).Times(1)
	metrics.EXPECT().RecordCategorization(models.CategorizationMethodNone).Times(1)

	rules, err := models.NewRuleTable(nil, []models.CategoryRule{{Category: "Groceries", Pattern: "BILLA"}})
	require.NoError(t, err)

	service, err := NewCategoryService(rules, metrics)
	require.NoError(t, err)

	service.BatchCategorize([]models.Transaction{
		models.NewTransaction(time.Now(), "", decimal.NewFromInt(-3), "", "BILLA"),
		models.NewTransaction(time.Now(), "", decimal.NewFromInt(-3), "", "other"),
	})
}
