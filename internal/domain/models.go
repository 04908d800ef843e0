package domain

import (
	"fmt"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// EntryKind tells where the pixels of an entry live
type EntryKind int

const (
	KindImage         EntryKind = iota // a plain image file
	KindArchiveMember                  // an image inside a zip/cbz archive
	KindPDFPage                        // one page of a PDF document
)

func (k EntryKind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindArchiveMember:
		return "archive"
	case KindPDFPage:
		return "pdf"
	default:
		return "unknown"
	}
}

// Entry is one cell-sized item of the collection
type Entry struct {
	Key    string // unique, stable across scans
	Path   string // file on disk
	Member string // archive member name, empty otherwise
	Page   int    // 1-based PDF page, 0 otherwise
	Kind   EntryKind
	Name   string
	Size   int64
}

// NewImageEntry creates an entry for a plain image file
func NewImageEntry(path string, size int64) Entry {
	return Entry{
		Key:  path,
		Path: path,
		Kind: KindImage,
		Name: displayName(path),
		Size: size,
	}
}

// NewArchiveEntry creates an entry for an image stored in an archive
func NewArchiveEntry(archive, member string, size int64) Entry {
	return Entry{
		Key:    archive + "!" + member,
		Path:   archive,
		Member: member,
		Kind:   KindArchiveMember,
		Name:   displayName(member),
		Size:   size,
	}
}

// NewPDFPageEntry creates an entry for a single PDF page
func NewPDFPageEntry(path string, page int) Entry {
	return Entry{
		Key:  fmt.Sprintf("%s#%d", path, page),
		Path: path,
		Page: page,
		Kind: KindPDFPage,
		Name: fmt.Sprintf("%s p%d", displayName(path), page),
	}
}

// displayName is the NFC form of the last path element, so decomposed
// file names from macOS line up with composed ones
func displayName(path string) string {
	return norm.NFC.String(filepath.Base(filepath.FromSlash(path)))
}

// Label is the text shown in a grid cell
func (e Entry) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Key
}

// Metadata holds what the prefetcher learned about an entry
type Metadata struct {
	Width  int
	Height int
	Format string
	Err    error
}

// Dimensions formats the size as WxH, empty when unknown
func (m Metadata) Dimensions() string {
	if m.Err != nil || m.Width == 0 || m.Height == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

// PageStatus is a snapshot of the cursor for display
type PageStatus struct {
	Positioned bool
	Level      int
	Levels     int
	FirstIndex int // first real index on the page, -1 when none
	LastIndex  int // last real index on the page, -1 when none
	FlyLeaves  int
	Length     int
	Rows       int
	Cols       int
	Wrap       bool
}

// ScanProgress represents the current scanning state
type ScanProgress struct {
	IsScanning   bool
	EntriesFound int
	CurrentPath  string
}
