package rmdir

import (
	"context"
	"io/fs"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 250 * time.Millisecond

// sizeCollector aggregates statistics from concurrent fastwalk callbacks
// using a mutex, since fastwalk invokes the callback from multiple
// goroutines.
type sizeCollector struct {
	mu    sync.Mutex
	bytes int64
	files int64
}

func (c *sizeCollector) add(size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bytes += size
	c.files++
}

func (c *sizeCollector) snapshot() SizeReport {
	c.mu.Lock()
	defer c.mu.Unlock()

	return SizeReport{Bytes: c.bytes, Files: c.files}
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx
// is done.
func startProgressReporter(ctx context.Context, c *sizeCollector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				report := c.snapshot()
				hook(report.Files, report.Bytes)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Size walks the tree at path and accumulates the byte length and count
// of every regular file. Directories do not add to the file count. Read
// errors at any level are swallowed and that subtree's contribution is
// simply omitted: the report is advisory display data, never a
// correctness input.
//
// Progress updates are sent to progressHook if provided.
func Size(ctx context.Context, path string, progressHook func(int64, int64)) SizeReport {
	collector := &sizeCollector{}

	// Child context so the progress reporter stops when the walk returns.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, progressHook, DefaultProgressInterval)

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	_ = fastwalk.Walk(conf, path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Silently skip errors
		}

		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		collector.add(info.Size())

		return nil
	})

	return collector.snapshot()
}
