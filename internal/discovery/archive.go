package discovery

import (
	"archive/zip"
	"fmt"
	"path"
	"slices"
	"strings"

	"gridgazer/internal/domain"
)

// ListArchive returns the image members of a zip or cbz archive in
// natural name order, so page2 sorts before page10
func ListArchive(archivePath string, isImage func(ext string) bool) ([]domain.Entry, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer r.Close()

	var entries []domain.Entry
	for _, f := range r.File {
		if f.FileInfo().IsDir() || skipMember(f.Name) {
			continue
		}
		if !isImage(path.Ext(f.Name)) {
			continue
		}
		entries = append(entries, domain.NewArchiveEntry(archivePath, f.Name, int64(f.UncompressedSize64)))
	}

	slices.SortStableFunc(entries, func(a, b domain.Entry) int {
		switch {
		case naturalLess(strings.ToLower(a.Member), strings.ToLower(b.Member)):
			return -1
		case naturalLess(strings.ToLower(b.Member), strings.ToLower(a.Member)):
			return 1
		default:
			return 0
		}
	})
	return entries, nil
}

// skipMember drops resource forks and hidden files packers leave behind
func skipMember(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if part == "__MACOSX" || strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// naturalLess compares digit runs by numeric value and everything else
// byte by byte
func naturalLess(a, b string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			numStartA := i
			for i < len(a) && a[i] == '0' {
				i++
			}
			valStartA := i
			for i < len(a) && isDigit(a[i]) {
				i++
			}

			numStartB := j
			for j < len(b) && b[j] == '0' {
				j++
			}
			valStartB := j
			for j < len(b) && isDigit(b[j]) {
				j++
			}

			valA, valB := a[valStartA:i], b[valStartB:j]
			if len(valA) != len(valB) {
				return len(valA) < len(valB)
			}
			if valA != valB {
				return valA < valB
			}
			// Equal values: fewer leading zeros first
			if i-numStartA != j-numStartB {
				return i-numStartA < j-numStartB
			}
			continue
		}

		if a[i] != b[j] {
			return a[i] < b[j]
		}
		i++
		j++
	}
	return len(a)-i < len(b)-j
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
