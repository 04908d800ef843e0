package discovery

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

var (
	// a page object; the trailing class keeps /Pages nodes out
	pageObject = regexp.MustCompile(`/Type\s*/Page(?:[^a-zA-Z]|$)`)
	// page tree roots written as "/Type /Pages ... /Count n" or the reverse
	pagesCount = regexp.MustCompile(`/Type\s*/Pages[^>]*?/Count\s+(\d+)|/Count\s+(\d+)[^>]*?/Type\s*/Pages`)
)

// CountPDFPages estimates the page count of a PDF without rendering it.
// Page objects are counted first; files that hide them in compressed
// object streams fall back to the largest page tree /Count. A document
// with no detectable page still yields one.
func CountPDFPages(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read pdf: %w", err)
	}
	if len(data) < 5 || string(data[:5]) != "%PDF-" {
		return 0, fmt.Errorf("not a pdf: %s", path)
	}

	if n := len(pageObject.FindAllIndex(data, -1)); n > 0 {
		return n, nil
	}

	best := 0
	for _, m := range pagesCount.FindAllSubmatch(data, -1) {
		for _, group := range m[1:] {
			if len(group) == 0 {
				continue
			}
			if n, err := strconv.Atoi(string(group)); err == nil && n > best {
				best = n
			}
		}
	}
	if best > 0 {
		return best, nil
	}
	return 1, nil
}
