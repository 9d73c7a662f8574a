package installer

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"digispark-uploader/internal/logger"
)

// chunkSize bounds how much of a response is held in memory at once.
const chunkSize = 32 * 1024

// httpClient has no timeout: a stalled download blocks until the server gives up.
var httpClient = &http.Client{}

// Download streams the content at url into destPath, truncating any existing
// file, and draws progress on out. Transport failures and non-2xx responses
// are returned as DownloadError.
func Download(ctx context.Context, url, destPath string, out io.Writer) error {
	logger.Debug("[DEBUG] Downloading %s to %s\n", url, destPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return NewDownloadError(err, url, 0)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return NewDownloadError(err, url, 0)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return NewDownloadError(nil, url, resp.StatusCode)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return NewDownloadError(err, url, 0)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close destination file: %v\n", cerr)
		}
	}()

	// ContentLength is -1 when the server does not advertise a size.
	bar := newByteProgress(out, filepath.Base(destPath), resp.ContentLength)
	buf := make([]byte, chunkSize)
	for {
		n, rerr := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := file.Write(buf[:n]); werr != nil {
				bar.Finish()
				return NewDownloadError(werr, url, 0)
			}
			bar.Add(int64(n))
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			bar.Finish()
			return NewDownloadError(rerr, url, 0)
		}
	}
	bar.Finish()

	logger.Info("[INFO] Downloaded to %s\n", destPath)
	return nil
}
