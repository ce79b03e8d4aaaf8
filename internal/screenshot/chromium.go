package screenshot

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"calendar-assistant/pkg/log"
)

// Default capture parameters. They match the layout of the month page.
const (
	DefaultWidth   = 1280
	DefaultHeight  = 960
	DefaultTimeout = 30 * time.Second

	readySelector = `[data-ready="true"]`
	settleDelay   = 300 * time.Millisecond
)

var ErrMissingBaseURL = errors.New("screenshot: base URL is required")

// Options configures the Chromium capturer.
type Options struct {
	// BaseURL is where the UI is served, e.g. "http://127.0.0.1:8080".
	BaseURL string
	// CookieName carries the session id so the page renders that session's events.
	CookieName string

	Width   int
	Height  int
	Timeout time.Duration

	// ExecPath overrides the Chromium binary. Empty uses chromedp's lookup.
	ExecPath string
}

// Capturer renders month pages in headless Chromium.
type Capturer struct {
	l    log.Logger
	opts Options
}

// New creates a Capturer. Zero dimensions and timeout take the defaults.
func New(l log.Logger, opts Options) (*Capturer, error) {
	if opts.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("screenshot: invalid base URL: %w", err)
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Capturer{l: l, opts: opts}, nil
}

// CaptureMonth loads the month page as sessionID, waits for the page to
// signal data-ready and returns a full-page PNG.
func (c *Capturer) CaptureMonth(ctx context.Context, sessionID string, year int, month time.Month) ([]byte, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.WindowSize(c.opts.Width, c.opts.Height),
		chromedp.DisableGPU,
	)
	if c.opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(c.opts.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, c.opts.Timeout)
	defer cancelRun()

	target := c.monthURL(year, month)
	c.l.Debugf(ctx, "screenshot.CaptureMonth: %s", target)

	var png []byte
	if err := chromedp.Run(runCtx, c.tasks(sessionID, target, &png)); err != nil {
		return nil, fmt.Errorf("screenshot: chromedp run failed: %w", err)
	}
	return png, nil
}

func (c *Capturer) tasks(sessionID, target string, png *[]byte) chromedp.Tasks {
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(c.opts.Width), int64(c.opts.Height)),
	}
	if sessionID != "" && c.opts.CookieName != "" {
		tasks = append(tasks, chromedp.ActionFunc(func(ctx context.Context) error {
			return network.SetCookies([]*network.CookieParam{{
				Name:     c.opts.CookieName,
				Value:    sessionID,
				URL:      c.opts.BaseURL,
				HTTPOnly: true,
			}}).Do(ctx)
		}))
	}
	return append(tasks,
		chromedp.Navigate(target),
		chromedp.WaitVisible(readySelector, chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
		chromedp.FullScreenshot(png, 100),
	)
}

func (c *Capturer) monthURL(year int, month time.Month) string {
	q := url.Values{}
	q.Set("year", fmt.Sprint(year))
	q.Set("month", fmt.Sprint(int(month)))
	return c.opts.BaseURL + "/?" + q.Encode()
}
