package export

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// DefaultTimeout bounds one export, browser start included.
const DefaultTimeout = 60 * time.Second

// A4 in inches, as PrintToPDF expects.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// ChromeOptions configures a ChromeExporter.
type ChromeOptions struct {
	// ExecPath is the Chrome or Chromium binary. Empty means search the
	// usual locations.
	ExecPath string
	Timeout  time.Duration
	Logger   *zap.Logger
}

// ChromeExporter renders exports in headless Chrome. Every export starts
// its own browser.
type ChromeExporter struct {
	execPath string
	timeout  time.Duration
	logger   *zap.Logger
}

// NewChromeExporter returns an exporter using opts.
func NewChromeExporter(opts ChromeOptions) *ChromeExporter {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &ChromeExporter{execPath: opts.ExecPath, timeout: opts.Timeout, logger: opts.Logger}
}

// ExportDocument prints the region to an A4 PDF with backgrounds.
func (c *ChromeExporter) ExportDocument(ctx context.Context, pageHTML []byte, regionID, filename string) error {
	standalone, err := ExtractRegion(pageHTML, regionID, DocumentFrame)
	if err != nil {
		return err
	}

	var pdf []byte
	err = c.run(ctx, standalone, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		pdf, _, err = page.PrintToPDF().
			WithPrintBackground(true).
			WithPaperWidth(a4WidthInches).
			WithPaperHeight(a4HeightInches).
			WithMarginTop(0).
			WithMarginBottom(0).
			WithMarginLeft(0).
			WithMarginRight(0).
			Do(ctx)
		return err
	}))
	if err != nil {
		return &ExportError{Message: "failed to generate PDF", Cause: err}
	}

	c.logger.Debug("exported document", zap.String("file", filename), zap.Int("bytes", len(pdf)))
	return writeFile(filename, pdf)
}

// ExportRaster captures the region as a PNG at twice the CSS pixel density.
func (c *ChromeExporter) ExportRaster(ctx context.Context, pageHTML []byte, regionID, filename string) error {
	standalone, err := ExtractRegion(pageHTML, regionID, RasterFrame)
	if err != nil {
		return err
	}

	var png []byte
	err = c.run(ctx, standalone,
		chromedp.EmulateViewport(1024, 768, chromedp.EmulateScale(2)),
		chromedp.Screenshot("[data-export-frame]", &png, chromedp.NodeVisible, chromedp.ByQuery),
	)
	if err != nil {
		return &ExportError{Message: "failed to capture image", Cause: err}
	}

	c.logger.Debug("exported image", zap.String("file", filename), zap.Int("bytes", len(png)))
	return writeFile(filename, png)
}

// run loads html in a fresh headless browser and then runs actions.
func (c *ChromeExporter) run(ctx context.Context, html []byte, actions ...chromedp.Action) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.execPath != "" {
		opts = append(opts, chromedp.ExecPath(c.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, c.timeout)
	defer cancel()

	dir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return err
	}
	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, html, 0o644); err != nil {
		return err
	}

	tasks := chromedp.Tasks{
		chromedp.Navigate("file://" + path),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}
	tasks = append(tasks, actions...)
	return chromedp.Run(browserCtx, tasks)
}
