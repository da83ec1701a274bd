package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"cashflow-report/internal/scraper"
	"cashflow-report/internal/services"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	scrapeHeadless bool
	scrapeUser     string
	scrapeMaxPages int
)

// scrapeCmd represents the scrape command.
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Download transactions from easybank online banking",
	Long: `Log in to easybank online banking with Chrome, collect the
transaction list page by page and write the categorized transactions to
the export file.

Credentials come from SCRAPER_USER and SCRAPER_PASSWORD; missing values
are asked for on the terminal. The password is not echoed.

Example:
  cashflow scrape --headless
  cashflow scrape --user 12345678 --max-pages 20`,
	Run: runScrape,
}

func init() {
	scrapeCmd.Flags().BoolVar(&scrapeHeadless, "headless", false, "run Chrome without a window")
	scrapeCmd.Flags().StringVar(&scrapeUser, "user", "", "online banking user (overrides SCRAPER_USER)")
	scrapeCmd.Flags().IntVar(&scrapeMaxPages, "max-pages", 0, "stop after this many pages (overrides SCRAPER_MAX_PAGES)")
}

func runScrape(cmd *cobra.Command, args []string) {
	scraperCfg := scraper.Config{
		LoginURL: cfg.Scraper.LoginURL,
		User:     cfg.Scraper.User,
		Password: cfg.Scraper.Password,
		Headless: cfg.Scraper.Headless || scrapeHeadless,
		Timeout:  cfg.Scraper.Timeout,
		MaxPages: cfg.Scraper.MaxPages,
	}
	if scrapeUser != "" {
		scraperCfg.User = scrapeUser
	}
	if scrapeMaxPages > 0 {
		scraperCfg.MaxPages = scrapeMaxPages
	}

	in := bufio.NewReader(cmd.InOrStdin())
	var err error
	if scraperCfg.User == "" {
		scraperCfg.User, err = prompt(in, cmd.ErrOrStderr(), "User: ")
		exitOnError(err, "failed to read user")
	}
	if scraperCfg.Password == "" {
		scraperCfg.Password, err = readPassword(in, stdinFd(cmd), cmd.ErrOrStderr(), "Password: ")
		exitOnError(err, "failed to read password")
	}

	metrics := newRunMetrics()
	importService, err := newImportService(metrics)
	exitOnError(err, "failed to set up import")
	defer metrics.Log()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scraped, err := scraper.New(scraperCfg, logger).Scrape(ctx)
	exitOnError(err, "failed to scrape transactions")

	transactions, err := importService.Import(services.ImportSourceScraper, scraped)
	exitOnError(err, "failed to store transactions")

	fmt.Fprintf(cmd.OutOrStdout(), "scraped %d transactions into %s\n", len(transactions), cfg.Data.ExportPath)
}

// stdinFd returns the descriptor of the command's input, or -1 when it is
// not the process stdin
func stdinFd(cmd *cobra.Command) int {
	if f, ok := cmd.InOrStdin().(*os.File); ok && f == os.Stdin {
		return int(f.Fd())
	}
	return -1
}

// readPassword reads without echo when fd is a terminal and falls back to a
// plain line from in otherwise, e.g. for piped input
func readPassword(in *bufio.Reader, fd int, out io.Writer, label string) (string, error) {
	if !term.IsTerminal(fd) {
		return prompt(in, out, label)
	}

	fmt.Fprint(out, label)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(password)), nil
}

// prompt reads one line from in
func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
