package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"gridgazer/internal/config"
	"gridgazer/internal/domain"
	"gridgazer/internal/eventbus"
)

// ErrScanInProgress is returned when a scan is requested while one runs
var ErrScanInProgress = errors.New("scan already in progress")

// DiscoveryService finds viewable entries in the filesystem
type DiscoveryService interface {
	StartScan(ctx context.Context, roots []string) error
	StopScan()
	Scanning() bool
	Wait()
}

// discoveryService is the concrete implementation
type discoveryService struct {
	bus        eventbus.EventBus
	opts       config.ScanConfig
	logger     zerolog.Logger
	mu         sync.Mutex
	isScanning bool
	lastRoots  []string
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(bus eventbus.EventBus, opts config.ScanConfig, logger zerolog.Logger) DiscoveryService {
	ds := &discoveryService{
		bus:    bus,
		opts:   opts,
		logger: logger.With().Str("component", "discovery").Logger(),
	}

	// Subscribe to scan requests; no paths means scan the previous roots again
	bus.Subscribe(domain.EventScanRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.ScanRequestedEvent); ok {
			roots := event.Paths
			if len(roots) == 0 {
				ds.mu.Lock()
				roots = ds.lastRoots
				ds.mu.Unlock()
			}
			if err := ds.StartScan(context.Background(), roots); err != nil {
				ds.logger.Warn().Err(err).Msg("scan request ignored")
			}
		}
	})

	return ds
}

// StartScan starts scanning the roots in the background
func (ds *discoveryService) StartScan(ctx context.Context, roots []string) error {
	ds.mu.Lock()
	if ds.isScanning {
		ds.mu.Unlock()
		return ErrScanInProgress
	}
	ds.isScanning = true
	ds.lastRoots = slices.Clone(roots)

	scanCtx, cancel := context.WithCancel(ctx)
	ds.cancelFunc = cancel
	ds.wg.Add(1)
	ds.mu.Unlock()

	go func() {
		defer ds.wg.Done()
		defer func() {
			cancel()
			ds.mu.Lock()
			ds.isScanning = false
			ds.cancelFunc = nil
			ds.mu.Unlock()
		}()

		found, err := ds.Scan(scanCtx, roots)
		if err != nil && !errors.Is(err, context.Canceled) {
			ds.logger.Error().Err(err).Msg("scan failed")
		}
		ds.logger.Info().Int("found", found).Strs("roots", roots).Msg("scan finished")
	}()

	return nil
}

// StopScan stops any ongoing scan and waits for it to finish
func (ds *discoveryService) StopScan() {
	ds.mu.Lock()
	if ds.cancelFunc != nil {
		ds.cancelFunc()
	}
	ds.mu.Unlock()

	ds.wg.Wait()
}

// Scanning reports whether a scan is running
func (ds *discoveryService) Scanning() bool {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.isScanning
}

// Wait blocks until the running scan, if any, completes
func (ds *discoveryService) Wait() {
	ds.wg.Wait()
}

// Scan walks the roots synchronously, publishing ScanStarted, one
// EntryDiscovered per entry in collection order and ScanCompleted.
func (ds *discoveryService) Scan(ctx context.Context, roots []string) (int, error) {
	ds.bus.Publish(domain.ScanStartedEvent{Paths: roots})

	found := 0
	emit := func(e domain.Entry) {
		ds.bus.Publish(domain.EntryDiscoveredEvent{Entry: e})
		found++
	}

	var err error
	for _, root := range roots {
		if err = ctx.Err(); err != nil {
			break
		}
		ds.scanRoot(ctx, root, emit)
	}

	ds.bus.Publish(domain.ScanCompletedEvent{Found: found})
	return found, err
}

func (ds *discoveryService) scanRoot(ctx context.Context, root string, emit func(domain.Entry)) {
	info, err := os.Stat(root)
	if err != nil {
		ds.reportError(fmt.Sprintf("Failed to scan %s", root), err)
		return
	}

	if !info.IsDir() {
		ds.scanFile(root, info.Size(), emit)
		return
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		// Skip on error
		if err != nil {
			ds.logger.Debug().Err(err).Str("path", path).Msg("error walking path")
			return nil
		}

		if path != root && !ds.opts.IncludeHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			relPath, _ := filepath.Rel(root, path)
			if relPath != "." && strings.Count(relPath, string(filepath.Separator))+1 > ds.opts.MaxDepth {
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		ds.scanFile(path, info.Size(), emit)
		return nil
	})

	if err != nil && !errors.Is(err, context.Canceled) {
		ds.reportError(fmt.Sprintf("Failed to scan %s", root), err)
	}
}

// scanFile turns one file into zero or more entries
func (ds *discoveryService) scanFile(path string, size int64, emit func(domain.Entry)) {
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case ds.isImageExt(ext):
		emit(domain.NewImageEntry(path, size))

	case ds.opts.Archives && (ext == ".zip" || ext == ".cbz"):
		members, err := ListArchive(path, ds.isImageExt)
		if err != nil {
			ds.reportError(fmt.Sprintf("Failed to read archive %s", filepath.Base(path)), err)
			return
		}
		for _, m := range members {
			emit(m)
		}

	case ds.opts.PDFs && ext == ".pdf":
		pages, err := CountPDFPages(path)
		if err != nil {
			ds.reportError(fmt.Sprintf("Failed to read PDF %s", filepath.Base(path)), err)
			return
		}
		for page := 1; page <= pages; page++ {
			emit(domain.NewPDFPageEntry(path, page))
		}
	}
}

func (ds *discoveryService) isImageExt(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range ds.opts.Extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

func (ds *discoveryService) reportError(message string, err error) {
	ds.logger.Error().Err(err).Msg(message)
	ds.bus.Publish(domain.ErrorEvent{Message: message, Err: err})
}
