//go:build integration

package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromeExporter_Integration(t *testing.T) {
	if os.Getenv("CHROME_PATH") == "" {
		t.Skip("CHROME_PATH not set, skipping browser export test")
	}

	c := NewChromeExporter(ChromeOptions{ExecPath: os.Getenv("CHROME_PATH")})
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "resume.pdf")
	pngPath := filepath.Join(dir, "resume.png")

	require.NoError(t, ExportAll(context.Background(), c, []byte(samplePage), "resume-preview", pdfPath, pngPath))

	pdf, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	png, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
