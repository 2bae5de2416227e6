// Package browser drives the translator page in headless Chrome. One
// Browser process serves a whole run; every case gets its own Tab.
package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"swiftqa/normalize"
	"swiftqa/translator"
)

// pollInterval is how often the output region is re-read while waiting.
const pollInterval = 100 * time.Millisecond

// automationMask hides the automation flags some sites check before
// rendering anything.
const automationMask = `
Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
Object.defineProperty(navigator, 'languages', { get: () => ['en-US', 'en'] });
window.chrome = { runtime: {} };
`

// Options configures the browser.
type Options struct {
	UserAgent      string
	TimeoutSeconds int    // navigation budget per tab
	ChromePath     string // Path to Chrome binary (empty = auto-detect)
	Headless       bool
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		UserAgent:      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		TimeoutSeconds: 30,
		Headless:       true,
	}
}

// Timeout returns the navigation timeout.
func (o Options) Timeout() time.Duration {
	if o.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(o.TimeoutSeconds) * time.Second
}

func (o Options) allocator() []chromedp.ExecAllocatorOption {
	allocOpts := []chromedp.ExecAllocatorOption{
		chromedp.NoDefaultBrowserCheck,
		chromedp.NoFirstRun,
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-component-update", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-service-autorun", true),
		chromedp.Flag("password-store", "basic"),
		chromedp.Flag("use-mock-keychain", true),
		chromedp.UserAgent(o.UserAgent),
		chromedp.WindowSize(1280, 900),
	}
	if o.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", "new"))
	}
	if o.ChromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(o.ChromePath))
	}
	return allocOpts
}

// Browser owns a Chrome process.
type Browser struct {
	opts   Options
	target translator.Target
	log    *slog.Logger

	ctx         context.Context
	cancel      context.CancelFunc
	cancelAlloc context.CancelFunc
}

// Launch starts Chrome. The returned Browser must be closed.
func Launch(ctx context.Context, opts Options, target translator.Target) (*Browser, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts.allocator()...)
	browserCtx, cancel := chromedp.NewContext(allocCtx)

	// the first Run on a fresh context starts the browser
	if err := chromedp.Run(browserCtx); err != nil {
		cancel()
		cancelAlloc()
		return nil, fmt.Errorf("starting browser: %w", err)
	}

	return &Browser{
		opts:        opts,
		target:      target,
		log:         slog.With("comp", "browser"),
		ctx:         browserCtx,
		cancel:      cancel,
		cancelAlloc: cancelAlloc,
	}, nil
}

// Close shuts Chrome down.
func (b *Browser) Close() error {
	err := chromedp.Cancel(b.ctx)
	b.cancel()
	b.cancelAlloc()
	return err
}

// NewTab opens a fresh tab on the target page and waits for the input
// control to be ready.
func (b *Browser) NewTab(ctx context.Context) (*Tab, error) {
	tabCtx, cancel := chromedp.NewContext(b.ctx)
	t := &Tab{ctx: tabCtx, cancel: cancel, target: b.target}

	// the first Run binds the target to its context, so it must not be
	// one of the short-lived contexts below
	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("opening tab: %w", err)
	}

	navCtx, navCancel := context.WithTimeout(ctx, b.opts.Timeout())
	defer navCancel()

	start := time.Now()
	err := t.run(navCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(automationMask).Do(ctx)
			return err
		}),
		network.SetExtraHTTPHeaders(network.Headers(map[string]interface{}{
			"Accept-Language": "en-US,en;q=0.9",
			"Cache-Control":   "no-cache",
		})),
		chromedp.Navigate(b.target.URL),
		chromedp.WaitReady(b.target.InputSelector(), chromedp.ByQuery),
	)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("opening %s: %w", b.target.URL, err)
	}

	b.log.Debug("tab ready", "url", b.target.URL, "elapsed", time.Since(start))
	return t, nil
}

// Tab is one isolated page session on the translator.
type Tab struct {
	ctx    context.Context
	cancel context.CancelFunc
	target translator.Target
}

// Close closes the tab.
func (t *Tab) Close() {
	t.cancel()
}

// run executes actions on the tab, aborting when ctx is done.
func (t *Tab) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(t.ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(runCtx, actions...); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// setValueJS empties the control through the native value setter so that
// framework-managed inputs see an input event.
const setValueJS = `(function(sel, value) {
	const el = document.querySelector(sel);
	if (!el) return false;
	const desc = Object.getOwnPropertyDescriptor(Object.getPrototypeOf(el), 'value');
	desc.set.call(el, value);
	el.dispatchEvent(new Event('input', { bubbles: true }));
	el.dispatchEvent(new Event('change', { bubbles: true }));
	return true;
})(%s, %s)`

// Reset clears the input control.
func (t *Tab) Reset(ctx context.Context) error {
	sel := t.target.InputSelector()
	expr := fmt.Sprintf(setValueJS, jsString(sel), jsString(""))

	var found bool
	if err := t.run(ctx, chromedp.Evaluate(expr, &found)); err != nil {
		return fmt.Errorf("clearing input: %w", err)
	}
	if !found {
		return fmt.Errorf("clearing input: %w", translator.ErrInputMissing)
	}
	return nil
}

// Fill inserts text into the input control in one go.
func (t *Tab) Fill(ctx context.Context, text string) error {
	err := t.run(ctx,
		chromedp.Focus(t.target.InputSelector(), chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if text == "" {
				return nil
			}
			return input.InsertText(text).Do(ctx)
		}),
	)
	if err != nil {
		return fmt.Errorf("filling input: %w", err)
	}
	return nil
}

// Type sends text one character at a time with delay between keystrokes.
func (t *Tab) Type(ctx context.Context, text string, delay time.Duration) error {
	sel := t.target.InputSelector()

	actions := []chromedp.Action{chromedp.Focus(sel, chromedp.ByQuery)}
	for i, r := range text {
		if i > 0 && delay > 0 {
			actions = append(actions, chromedp.Sleep(delay))
		}
		actions = append(actions, chromedp.SendKeys(sel, string(r), chromedp.ByQuery))
	}

	if err := t.run(ctx, actions...); err != nil {
		return fmt.Errorf("typing input: %w", err)
	}
	return nil
}

// Snapshot returns the current document HTML.
func (t *Tab) Snapshot(ctx context.Context) (string, error) {
	var html string
	if err := t.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("capturing page: %w", err)
	}
	return html, nil
}

// OutputText reads the output region. It returns nil when the region is
// not on the page.
func (t *Tab) OutputText(ctx context.Context) (*string, error) {
	html, err := t.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	text, ok, err := t.target.OutputText(html)
	if err != nil || !ok {
		return nil, err
	}
	return &text, nil
}

// WaitOutput polls until the output region has text. It returns false if
// timeout passes first.
func (t *Tab) WaitOutput(ctx context.Context, timeout time.Duration) (bool, error) {
	return pollOutput(ctx, t.OutputText, timeout, pollInterval, nonEmpty)
}

// WaitOutputContains polls until the output region contains sub.
func (t *Tab) WaitOutputContains(ctx context.Context, sub string, timeout time.Duration) (bool, error) {
	return pollOutput(ctx, t.OutputText, timeout, pollInterval, contains(sub))
}

func nonEmpty(text string) bool {
	return text != ""
}

func contains(sub string) func(string) bool {
	want := normalize.Clean(sub)
	return func(text string) bool {
		return strings.Contains(text, want)
	}
}

// pollOutput reads the output every interval until done accepts its
// cleaned text. Running out of time is not an error: it returns false.
func pollOutput(ctx context.Context, read func(context.Context) (*string, error), timeout, interval time.Duration, done func(string) bool) (bool, error) {
	deadline := time.Now().Add(timeout)
	for {
		raw, err := read(ctx)
		if err != nil {
			return false, err
		}
		if done(normalize.CleanPtr(raw)) {
			return true, nil
		}
		if time.Now().After(deadline) {
			return false, nil
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(interval):
		}
	}
}

// Settle waits a fixed time.
func (t *Tab) Settle(ctx context.Context, d time.Duration) error {
	return t.run(ctx, chromedp.Sleep(d))
}

func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
