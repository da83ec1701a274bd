package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
)

const (
	usernameSelector = `#login #lof5`
	passwordSelector = `#login #lof9`
	tableSelector    = `#sales-detail`

	// the link is labelled in German or English depending on the account language
	transactionsLinkXPath = `//a[normalize-space(.)='Umsätze' or normalize-space(.)='Transactions']`

	rowsScript = `Array.from(document.querySelectorAll('#sales-detail tbody tr')).map(
		tr => Array.from(tr.querySelectorAll('td')).map(td => td.innerText.trim()))`

	nextLinkScript = `(() => {
		const link = Array.from(document.querySelectorAll('a'))
			.find(a => ['weiter', 'Forward'].includes(a.textContent.trim()));
		if (!link) return 'absent';
		if ((link.getAttribute('class') || '').includes('disabled')) return 'disabled';
		document.querySelector('#sales-detail').dataset.stale = 'true';
		link.click();
		return 'clicked';
	})()`

	freshTableScript = `(() => {
		const table = document.querySelector('#sales-detail');
		return !!table && table.dataset.stale !== 'true';
	})()`
)

type chromeBrowser struct {
	ctx      context.Context
	loginURL string
}

func newChromeBrowser(ctx context.Context, loginURL string, headless bool, opts ...chromedp.ExecAllocatorOption) (*chromeBrowser, func()) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.WindowSize(1920, 1080),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, append(allocOpts, opts...)...)

	chromedpCtx, cancelCtx := chromedp.NewContext(allocCtx)

	return &chromeBrowser{ctx: chromedpCtx, loginURL: loginURL}, func() {
		cancelCtx()
		cancelAlloc()
	}
}

// run executes actions in the browser tab. The tab context is derived from
// the context passed to newChromeBrowser, so ctx is only checked up front.
func (b *chromeBrowser) run(ctx context.Context, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return chromedp.Run(b.ctx, actions...)
}

// Login submits the form and returns once the landing page shows the
// transactions link; Enter only starts the navigation.
func (b *chromeBrowser) Login(ctx context.Context, user, password string) error {
	return b.run(ctx,
		chromedp.Navigate(b.loginURL),
		chromedp.WaitVisible(usernameSelector, chromedp.ByQuery),
		chromedp.SetValue(usernameSelector, "", chromedp.ByQuery),
		chromedp.SendKeys(usernameSelector, user, chromedp.ByQuery),
		chromedp.SetValue(passwordSelector, "", chromedp.ByQuery),
		chromedp.SendKeys(passwordSelector, password+kb.Enter, chromedp.ByQuery),
		chromedp.WaitVisible(transactionsLinkXPath, chromedp.BySearch),
	)
}

func (b *chromeBrowser) OpenTransactions(ctx context.Context) error {
	return b.run(ctx,
		chromedp.Click(transactionsLinkXPath, chromedp.BySearch, chromedp.NodeVisible),
		chromedp.WaitVisible(tableSelector, chromedp.ByQuery),
	)
}

func (b *chromeBrowser) Rows(ctx context.Context) ([][]string, error) {
	var rows [][]string
	if err := b.run(ctx, chromedp.Evaluate(rowsScript, &rows)); err != nil {
		return nil, err
	}
	return rows, nil
}

func (b *chromeBrowser) NextPage(ctx context.Context) (bool, error) {
	var state string
	if err := b.run(ctx, chromedp.Evaluate(nextLinkScript, &state)); err != nil {
		return false, err
	}
	if strings.TrimSpace(state) != "clicked" {
		return false, nil
	}

	var fresh bool
	err := b.run(ctx, chromedp.Poll(freshTableScript, &fresh, chromedp.WithPollingTimeout(30*time.Second)))
	if err != nil {
		return false, fmt.Errorf("next page did not load: %w", err)
	}
	return true, nil
}
