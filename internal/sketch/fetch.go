package sketch

import (
	"context"
	"io"
	"os"

	"digispark-uploader/internal/config"
	"digispark-uploader/internal/installer"
	"digispark-uploader/internal/logger"
)

// Refresh replaces the local sketch collection with a fresh copy of the fixed
// sketch archive. There is no caching: the previous copy is always discarded.
func Refresh(ctx context.Context, cfg *config.Config, out io.Writer) error {
	if err := os.RemoveAll(cfg.SketchDir); err != nil {
		return NewRefreshError(err, cfg.SketchDir)
	}

	logger.Info("[INFO] Fetching sketches from %s...\n", cfg.SketchURL)
	if err := installer.Download(ctx, cfg.SketchURL, cfg.SketchArchive, out); err != nil {
		return err
	}
	if err := installer.ExtractArchive(cfg.SketchArchive, cfg.SketchDir, out); err != nil {
		return err
	}

	if err := os.Remove(cfg.SketchArchive); err != nil {
		logger.Warn("[WARN] Failed to remove %s: %v\n", cfg.SketchArchive, err)
	}
	return nil
}
