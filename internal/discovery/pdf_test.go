package discovery

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountPDFPages(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "page objects", content: twoPagePDF, want: 2},
		{
			name:    "compressed objects fall back to count",
			content: "%PDF-1.7\n<< /Type /Pages /Kids [5 0 R] /Count 7 >>\n<< /Count 3 /Type /Pages >>\n",
			want:    7,
		},
		{name: "nothing detectable", content: "%PDF-1.7\nstream garbage\n", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "doc.pdf")
			writeFile(t, path, []byte(tt.content))

			n, err := CountPDFPages(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestCountPDFPagesRejectsOtherFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	writeFile(t, path, []byte("hello"))

	_, err := CountPDFPages(path)
	assert.ErrorContains(t, err, "not a pdf")

	_, err = CountPDFPages(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
