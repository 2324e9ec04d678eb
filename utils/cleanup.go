package utils

import (
	"os"
	"path/filepath"
	"time"

	"github.com/saeedNW/go-divar/config"
)

// StartTempUploadSweeper launches a background goroutine that periodically
// deletes stale files from the temp upload directory. Staged uploads are
// normally swept by the error handler; this catches files orphaned by crashes
// or killed requests. It is best-effort and logs failures.
func StartTempUploadSweeper(interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		for {
			// Sleep first to avoid racing immediately at startup
			time.Sleep(interval)
			sweepTempUploads()
		}
	}()
}

func sweepTempUploads() {
	cfg := config.Get()
	maxAge := time.Duration(cfg.TempUploadTTLMins) * time.Minute
	dir := TempUploadDir()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) && Sugar != nil {
			Sugar.Warnf("temp upload sweep failed to read %s: %v", dir, err)
		}
		return
	}

	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil && Sugar != nil {
				Sugar.Warnf("temp upload sweep failed to remove %s: %v", entry.Name(), err)
			}
		}
	}
}
