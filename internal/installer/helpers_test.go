package installer

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"digispark-uploader/internal/config"
)

// zipBytes builds an in-memory zip; names ending in "/" become directory entries.
func zipBytes(t *testing.T, files map[string]string) []byte {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		require.NoError(t, err)
		if name[len(name)-1] != '/' {
			_, err = w.Write([]byte(files[name]))
			require.NoError(t, err)
		}
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, zipBytes(t, files), 0o644))
}

// serveBytes serves body at every path and counts requests.
func serveBytes(t *testing.T, body []byte) (*httptest.Server, *int) {
	t.Helper()
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

// testConfig points every local path into a temp dir and the toolchain URL at url.
func testConfig(t *testing.T, url string) *config.Config {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default(base)
	cfg.ToolchainURL = url
	cfg.SketchURL = url
	cfg.ArduinoConfigFile = filepath.Join(base, "home", "arduino-cli.yaml")
	cfg.PlugInDelay = 0
	return cfg
}

// writeExe drops a placeholder executable at path.
func writeExe(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("MZ"), 0o755))
}
