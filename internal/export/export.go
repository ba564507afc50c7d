package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Exporter writes a region of a rendered page to a file.
type Exporter interface {
	// ExportRaster writes a PNG image of the region.
	ExportRaster(ctx context.Context, page []byte, regionID, filename string) error
	// ExportDocument writes an A4 PDF of the region.
	ExportDocument(ctx context.Context, page []byte, regionID, filename string) error
}

// Format selects which files an export produces.
type Format string

// Export formats
const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
	FormatAll Format = "all"
)

// ParseFormat converts s into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatPNG, FormatAll:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want pdf, png or all)", s)
}

// Export writes the files for format into dir, named base.pdf and base.png,
// and returns their paths. With FormatAll both are produced concurrently;
// the first failure cancels the other.
func Export(ctx context.Context, e Exporter, format Format, page []byte, regionID, dir, base string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &ExportError{Message: fmt.Sprintf("failed to create output directory %s", dir), Cause: err}
	}
	pdfPath := filepath.Join(dir, base+".pdf")
	pngPath := filepath.Join(dir, base+".png")

	switch format {
	case FormatPDF:
		return []string{pdfPath}, e.ExportDocument(ctx, page, regionID, pdfPath)
	case FormatPNG:
		return []string{pngPath}, e.ExportRaster(ctx, page, regionID, pngPath)
	case FormatAll:
		return []string{pdfPath, pngPath}, ExportAll(ctx, e, page, regionID, pdfPath, pngPath)
	}
	return nil, &ExportError{Message: fmt.Sprintf("unknown export format %q", format)}
}

// ExportAll writes the PDF and the PNG concurrently.
func ExportAll(ctx context.Context, e Exporter, page []byte, regionID, pdfPath, pngPath string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return e.ExportDocument(gctx, page, regionID, pdfPath)
	})
	g.Go(func() error {
		return e.ExportRaster(gctx, page, regionID, pngPath)
	})
	return g.Wait()
}

func writeFile(filename string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return &ExportError{Message: fmt.Sprintf("failed to create directory for %s", filename), Cause: err}
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return &ExportError{Message: fmt.Sprintf("failed to write %s", filename), Cause: err}
	}
	return nil
}
