package printing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const defaultChromeTimeout = 30 * time.Second

// A4 paper in inches, with uniform 10mm margins. Invoices are always
// printed portrait on A4.
const (
	a4WidthInches  = 210.0 / 25.4
	a4HeightInches = 297.0 / 25.4
	marginInches   = 10.0 / 25.4
)

// ChromedpConfig contains configuration for the chromedp renderer.
type ChromedpConfig struct {
	// DefaultTimeout for rendering operations
	DefaultTimeout time.Duration
	// RemoteURL is the URL of a remote Chrome/Chromium instance (optional).
	// If empty, chromedp launches a new browser instance.
	RemoteURL string
	// NoSandbox runs Chrome without sandbox (required for Docker/root)
	NoSandbox bool
}

// ChromedpRenderer renders HTML to PDF using Chrome DevTools Protocol.
type ChromedpRenderer struct {
	config      *ChromedpConfig
	allocCtx    context.Context
	allocCancel context.CancelFunc

	// run executes the DevTools actions. It is chromedp.Run outside of tests.
	run func(ctx context.Context, actions ...chromedp.Action) error
}

// NewChromedpRenderer creates a new chromedp-based PDF renderer.
func NewChromedpRenderer(config *ChromedpConfig) (*ChromedpRenderer, error) {
	if config == nil {
		config = &ChromedpConfig{}
	}
	if config.DefaultTimeout == 0 {
		config.DefaultTimeout = defaultChromeTimeout
	}

	renderer := &ChromedpRenderer{config: config, run: chromedp.Run}
	renderer.initAllocator()
	return renderer, nil
}

func (r *ChromedpRenderer) initAllocator() {
	if r.config.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), r.config.RemoteURL)
		return
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true), // Important for Docker
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if r.config.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}
	r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
}

// Render converts HTML content to PDF.
func (r *ChromedpRenderer) Render(ctx context.Context, req *RenderRequest) (*RenderResult, error) {
	if req == nil {
		return nil, NewRenderError(ErrCodeInvalidHTML, "render request is nil", nil)
	}
	if strings.TrimSpace(req.HTML) == "" {
		return nil, NewRenderError(ErrCodeInvalidHTML, "HTML content is empty", nil)
	}

	startTime := time.Now()

	timeout := req.Timeout
	if timeout == 0 {
		timeout = r.config.DefaultTimeout
	}

	// The run context must descend from the allocator context so chromedp
	// finds the browser, so the deadline is applied below it. The caller's
	// cancellation is forwarded onto the same context.
	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx)
	defer browserCancel()

	runCtx, cancel := context.WithTimeout(browserCtx, timeout)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	html := r.buildCompleteHTML(req)

	var pdfData []byte
	err := r.run(runCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(marginInches).
				WithMarginRight(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = data
			return nil
		}),
	)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || runCtx.Err() == context.DeadlineExceeded {
			return nil, NewRenderError(ErrCodeRenderTimeout,
				fmt.Sprintf("PDF rendering timed out after %v", timeout), err)
		}
		if errors.Is(err, context.Canceled) || runCtx.Err() == context.Canceled {
			return nil, NewRenderError(ErrCodeRenderTimeout, "PDF rendering was cancelled", err)
		}
		log.Printf("chromedp rendering failed: %v", err)
		return nil, NewRenderError(ErrCodeRenderFailed, "chromedp execution failed: "+err.Error(), err)
	}

	if len(pdfData) == 0 {
		return nil, NewRenderError(ErrCodeRenderFailed, "generated PDF is empty", nil)
	}

	return &RenderResult{
		PDFData:        pdfData,
		RenderDuration: time.Since(startTime),
	}, nil
}

// buildCompleteHTML wraps a fragment into a full HTML document. Content
// that already carries a doctype or html tag is passed through untouched.
func (r *ChromedpRenderer) buildCompleteHTML(req *RenderRequest) string {
	lower := strings.ToLower(req.HTML)
	if strings.Contains(lower, "<!doctype") || strings.Contains(lower, "<html") {
		return req.HTML
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html><html><head>")
	buf.WriteString("<meta charset=\"UTF-8\">")
	if req.Title != "" {
		buf.WriteString("<title>")
		buf.WriteString(req.Title)
		buf.WriteString("</title>")
	}
	buf.WriteString("</head><body>")
	buf.WriteString(req.HTML)
	buf.WriteString("</body></html>")
	return buf.String()
}

// Close releases resources held by the renderer.
func (r *ChromedpRenderer) Close() error {
	if r.allocCancel != nil {
		r.allocCancel()
	}
	return nil
}

// Ensure ChromedpRenderer implements PDFRenderer
var _ PDFRenderer = (*ChromedpRenderer)(nil)
