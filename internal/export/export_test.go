package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExporter writes the region id into each file instead of rendering.
type fakeExporter struct {
	mu       sync.Mutex
	calls    []string
	docErr   error
	rasterOK chan struct{}
}

func (f *fakeExporter) record(kind string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, kind)
}

func (f *fakeExporter) ExportDocument(ctx context.Context, page []byte, regionID, filename string) error {
	f.record("pdf")
	if f.docErr != nil {
		return f.docErr
	}
	return writeFile(filename, []byte("pdf:"+regionID))
}

func (f *fakeExporter) ExportRaster(ctx context.Context, page []byte, regionID, filename string) error {
	f.record("png")
	if f.rasterOK != nil {
		// Blocks until the sibling export fails and cancels the group.
		<-ctx.Done()
		close(f.rasterOK)
		return ctx.Err()
	}
	return writeFile(filename, []byte("png:"+regionID))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"pdf", FormatPDF, false},
		{" PNG ", FormatPNG, false},
		{"all", FormatAll, false},
		{"docx", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExport(t *testing.T) {
	tests := []struct {
		format Format
		files  []string
	}{
		{FormatPDF, []string{"resume.pdf"}},
		{FormatPNG, []string{"resume.png"}},
		{FormatAll, []string{"resume.pdf", "resume.png"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "out")
			f := &fakeExporter{}

			paths, err := Export(context.Background(), f, tt.format, []byte(samplePage), "resume-preview", dir, "resume")
			require.NoError(t, err)
			require.Len(t, paths, len(tt.files))

			for i, name := range tt.files {
				assert.Equal(t, filepath.Join(dir, name), paths[i])
				data, err := os.ReadFile(paths[i])
				require.NoError(t, err)
				assert.Contains(t, string(data), "resume-preview")
			}
			assert.Len(t, f.calls, len(tt.files))
		})
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := Export(context.Background(), &fakeExporter{}, Format("gif"), nil, "r", t.TempDir(), "resume")

	var exportErr *ExportError
	require.True(t, errors.As(err, &exportErr))
	assert.Contains(t, exportErr.Message, "gif")
}

func TestExportAll_FailureCancelsSibling(t *testing.T) {
	boom := &ExportError{Message: "failed to generate PDF", Cause: errors.New("boom")}
	f := &fakeExporter{docErr: boom, rasterOK: make(chan struct{})}
	dir := t.TempDir()

	err := ExportAll(context.Background(), f, []byte(samplePage), "resume-preview",
		filepath.Join(dir, "r.pdf"), filepath.Join(dir, "r.png"))

	assert.ErrorIs(t, err, boom)
	<-f.rasterOK
	assert.ElementsMatch(t, []string{"pdf", "png"}, f.calls)
}

func TestNewChromeExporter_Defaults(t *testing.T) {
	c := NewChromeExporter(ChromeOptions{})
	assert.Equal(t, DefaultTimeout, c.timeout)
	assert.NotNil(t, c.logger)
	assert.Empty(t, c.execPath)
}

func TestChromeExporter_MissingRegion(t *testing.T) {
	c := NewChromeExporter(ChromeOptions{})
	file := filepath.Join(t.TempDir(), "r.pdf")

	for _, err := range []error{
		c.ExportDocument(context.Background(), []byte(samplePage), "missing", file),
		c.ExportRaster(context.Background(), []byte(samplePage), "missing", file),
	} {
		var exportErr *ExportError
		require.True(t, errors.As(err, &exportErr))
		assert.Equal(t, MsgRegionNotFound, exportErr.Message)
	}
	assert.NoFileExists(t, file)
}
