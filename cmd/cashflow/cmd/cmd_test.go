package cmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cashflow-report/internal/repositories"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/encoding/charmap"
)

type CommandTestSuite struct {
	suite.Suite
	dir        string
	exportPath string
}

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}

func (s *CommandTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Chdir(s.dir)
	s.exportPath = filepath.Join(s.dir, "transactions.csv")

	s.write("ibans.csv", "Rent,AT483200000012345864\n")
	s.write("text.csv", "Salary,Gehalt\nGroceries,(?i)billa\n")

	s.T().Setenv("CASHFLOW_ACCOUNT_RULES", filepath.Join(s.dir, "ibans.csv"))
	s.T().Setenv("CASHFLOW_TEXT_RULES", filepath.Join(s.dir, "text.csv"))
	s.T().Setenv("CASHFLOW_EXPORT_PATH", s.exportPath)
	s.T().Setenv("CASHFLOW_OUTPUT_DIR", filepath.Join(s.dir, "reports"))

	reportYear, reportSkipFirst, reportJSON, reportSave, reportOutDir, reportNoColor = 0, false, false, false, "", true
	exportPath, silent = "", true
	sampleMonths, sampleSeed = 18, 1
}

func (s *CommandTestSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *CommandTestSuite) run(args ...string) string {
	out, _ := s.runWithLog(args...)
	return out
}

// runWithLog returns stdout and the log written to stderr
func (s *CommandTestSuite) runWithLog(args ...string) (string, string) {
	var out, log bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&log)
	rootCmd.SetArgs(args)
	s.Require().NoError(rootCmd.Execute())
	return out.String(), log.String()
}

func (s *CommandTestSuite) importStatement() {
	statement, err := charmap.ISO8859_1.NewEncoder().String(
		"AT1;Überweisung AT483200000012345864 Miete;01.02.2023;01.02.2023;-800,00;EUR\n" +
			"AT1;BILLA DANKT;15.01.2023;15.01.2023;-42,10;EUR\n" +
			"AT1;Gehalt Jänner;02.01.2023;02.01.2023;2.000,00;EUR\n" +
			"AT1;Bargeld;28.12.2022;28.12.2022;-100,00;EUR\n")
	s.Require().NoError(err)
	path := s.write("statement.csv", statement)

	out := s.run("import", path)
	s.Contains(out, "imported 4 transactions")
}

func (s *CommandTestSuite) TestImport_WritesCategorizedExport() {
	s.importStatement()

	transactions, err := repositories.NewFileTransactionRepository(s.exportPath).Load()
	s.Require().NoError(err)
	s.Require().Len(transactions, 4)

	s.Equal("", transactions[0].Category)
	s.Equal("Salary", transactions[1].Category)
	s.Equal("Groceries", transactions[2].Category)
	s.Equal("Rent", transactions[3].Category)
	s.Equal("AT483200000012345864", transactions[3].AccountID)
}

func (s *CommandTestSuite) TestImport_LogsRunMetrics() {
	statement, err := charmap.ISO8859_1.NewEncoder().String(
		"AT1;Überweisung AT483200000012345864 Miete;01.02.2023;01.02.2023;-800,00;EUR\n" +
			"AT1;BILLA DANKT;15.01.2023;15.01.2023;-42,10;EUR\n" +
			"AT1;Gehalt Jänner;02.01.2023;02.01.2023;2.000,00;EUR\n" +
			"AT1;Bargeld;28.12.2022;28.12.2022;-100,00;EUR\n")
	s.Require().NoError(err)
	path := s.write("statement.csv", statement)
	silent = false

	_, log := s.runWithLog("import", path)

	s.Contains(log, `msg="run metric" metric=transactions_imported_total value=4 source=statement`)
	s.Contains(log, "metric=transactions_categorized_total value=1 method=ACCOUNT")
	s.Contains(log, "metric=transactions_categorized_total value=2 method=TEXT")
	s.Contains(log, "metric=transactions_categorized_total value=1 method=NONE")
}

func (s *CommandTestSuite) TestReport_JSONForYear() {
	s.importStatement()

	reportJSON = true
	out := s.run("report", "--year", "2023", "--json")

	var report struct {
		Year             int    `json:"year"`
		TransactionCount int    `json:"transaction_count"`
		OpeningBalance   string `json:"opening_balance"`
		ClosingBalance   string `json:"closing_balance"`
	}
	s.Require().NoError(json.Unmarshal([]byte(out), &report))
	s.Equal(2023, report.Year)
	s.Equal(3, report.TransactionCount)
	s.Equal("-100", report.OpeningBalance)
	s.Equal("1057.9", report.ClosingBalance)
}

func (s *CommandTestSuite) TestReport_SaveWritesSeries() {
	s.importStatement()

	out := s.run("report", "--save", "--no-color")
	s.Contains(out, "Monthly balance")
	s.Contains(out, "Quarterly expenses")

	folders, err := filepath.Glob(filepath.Join(s.dir, "reports", "output*"))
	s.Require().NoError(err)
	s.Require().Len(folders, 1)
	s.FileExists(filepath.Join(folders[0], repositories.MonthlyBalanceFile))
	s.FileExists(filepath.Join(folders[0], repositories.QuarterlyIncomeFile))
}

func (s *CommandTestSuite) TestRulesCheck() {
	out := s.run("rules", "check")

	s.Contains(out, "1 account rules, 2 text rules")
	s.Contains(out, "Groceries")
	s.Contains(out, "Rent")
}

func (s *CommandTestSuite) TestRulesCheck_FlagsUnmatchableAccountRules() {
	s.write("ibans.csv", "Rent,AT483200000012345864\nInsurance,Allianz\n")

	out := s.run("rules", "check")

	s.Contains(out, `account rule Insurance: "Allianz" never matches`)
	s.NotContains(out, "account rule Rent")
}

func (s *CommandTestSuite) TestRulesCheck_EmptyAccountRule() {
	s.write("ibans.csv", "Cash,\n")

	out := s.run("rules", "check")

	s.Contains(out, "account rule Cash: matches every transaction without an account identifier")
	s.NotContains(out, "never matches")

	s.importStatement()
	s.run("rules", "apply")
	transactions, err := repositories.NewFileTransactionRepository(s.exportPath).Load()
	s.Require().NoError(err)
	s.Equal("Cash", transactions[0].Category)
}

func (s *CommandTestSuite) TestRulesApply_UsesNewRules() {
	s.importStatement()
	s.write("text.csv", "Salary,Gehalt\nGroceries,(?i)billa\nCash,Bargeld\n")

	out := s.run("rules", "apply")
	s.Contains(out, "4 transactions, 0 uncategorized")

	transactions, err := repositories.NewFileTransactionRepository(s.exportPath).Load()
	s.Require().NoError(err)
	s.Equal("Cash", transactions[0].Category)
}

func (s *CommandTestSuite) TestSample_CreatesRulesAndExport() {
	s.T().Setenv("CASHFLOW_ACCOUNT_RULES", filepath.Join(s.dir, "sample", "ibans.csv"))
	s.T().Setenv("CASHFLOW_TEXT_RULES", filepath.Join(s.dir, "sample", "text.csv"))

	out := s.run("sample", "--months", "3", "--seed", "5")
	s.Contains(out, "generated")

	s.FileExists(filepath.Join(s.dir, "sample", "ibans.csv"))
	s.FileExists(filepath.Join(s.dir, "sample", "text.csv"))

	transactions, err := repositories.NewFileTransactionRepository(s.exportPath).Load()
	s.Require().NoError(err)
	s.Require().NotEmpty(transactions)

	rent := 0
	for _, txn := range transactions {
		if txn.Category == "Rent" {
			rent++
		}
	}
	s.Equal(3, rent)

	// existing rule files are kept
	before, err := os.ReadFile(filepath.Join(s.dir, "sample", "text.csv"))
	s.Require().NoError(err)
	s.run("sample", "--months", "2")
	after, err := os.ReadFile(filepath.Join(s.dir, "sample", "text.csv"))
	s.Require().NoError(err)
	s.Equal(before, after)
}

func bufioReader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestPrompt(t *testing.T) {
	var out bytes.Buffer

	value, err := prompt(bufioReader("  someone \n"), &out, "User: ")
	require.NoError(t, err)
	assert.Equal(t, "someone", value)
	assert.Equal(t, "User: ", out.String())

	value, err = prompt(bufioReader("no-newline"), &out, "Password: ")
	require.NoError(t, err)
	assert.Equal(t, "no-newline", value)

	_, err = prompt(bufioReader(""), &out, "Password: ")
	assert.Error(t, err)
}

func TestReadPassword_NonTerminalFallsBackToLine(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()

	var out bytes.Buffer
	password, err := readPassword(bufioReader("s3cret\n"), int(f.Fd()), &out, "Password: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", password)
	assert.Equal(t, "Password: ", out.String())

	password, err = readPassword(bufioReader("piped\n"), -1, &out, "Password: ")
	require.NoError(t, err)
	assert.Equal(t, "piped", password)
}

func TestStdinFd(t *testing.T) {
	cmd := &cobra.Command{}
	assert.Equal(t, int(os.Stdin.Fd()), stdinFd(cmd))

	cmd.SetIn(strings.NewReader("user\n"))
	assert.Equal(t, -1, stdinFd(cmd))
}

func (s *CommandTestSuite) TestServer_Routes() {
	s.importStatement()

	// loads cfg and logger like any other command
	s.run("rules", "check")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	server := httptest.NewServer(newServer(ctx))
	defer server.Close()

	resp, err := http.Get(server.URL + "/health")
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/v1/reports/cashflow?kind=expense&bucket=quarter")
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.NotEmpty(resp.Header.Get("X-Trace-ID"))

	var body struct {
		Data struct {
			Categories []string `json:"categories"`
		} `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	s.Equal([]string{"Groceries", "Rent", "Uncategorized"}, body.Data.Categories)

	resp, err = http.Get(server.URL + "/api/v1/reports/cashflow?kind=savings")
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(server.URL + "/metrics")
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/nowhere")
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}
