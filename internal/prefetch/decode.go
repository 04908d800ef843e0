package prefetch

import (
	"archive/zip"
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"gridgazer/internal/domain"
)

// Decode reads just enough of an entry to learn its format and size.
// Failures are reported in Metadata.Err.
func Decode(entry domain.Entry) domain.Metadata {
	switch entry.Kind {
	case domain.KindImage:
		f, err := os.Open(entry.Path)
		if err != nil {
			return domain.Metadata{Err: err}
		}
		defer f.Close()
		return decodeConfig(f)

	case domain.KindArchiveMember:
		r, err := zip.OpenReader(entry.Path)
		if err != nil {
			return domain.Metadata{Err: err}
		}
		defer r.Close()

		member, err := r.Open(entry.Member)
		if err != nil {
			return domain.Metadata{Err: err}
		}
		defer member.Close()
		return decodeConfig(member)

	case domain.KindPDFPage:
		return domain.Metadata{Format: "pdf"}

	default:
		return domain.Metadata{Err: fmt.Errorf("unknown entry kind %d", entry.Kind)}
	}
}

func decodeConfig(r io.Reader) domain.Metadata {
	cfg, format, err := image.DecodeConfig(bufio.NewReader(r))
	if err != nil {
		return domain.Metadata{Err: err}
	}
	return domain.Metadata{Width: cfg.Width, Height: cfg.Height, Format: format}
}
