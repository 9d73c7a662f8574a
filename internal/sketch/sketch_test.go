package sketch

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/require"

	"digispark-uploader/internal/config"
	"digispark-uploader/internal/installer"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("void setup() {}\nvoid loop() {}\n"), 0o644))
}

func TestList_RecursiveAndSorted(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "main", "Wifi", "Wifi.ino"))
	touch(t, filepath.Join(dir, "main", "Blink", "Blink.ino"))
	touch(t, filepath.Join(dir, "main", "a", "b", "Keyboard.ino"))
	touch(t, filepath.Join(dir, "main", "README.md"))
	touch(t, filepath.Join(dir, "main", "Blink", "notes.txt"))

	found, err := List(dir, ".ino")

	req.NoError(err)
	req.Equal([]string{
		filepath.Join(dir, "main", "Blink", "Blink.ino"),
		filepath.Join(dir, "main", "Wifi", "Wifi.ino"),
		filepath.Join(dir, "main", "a", "b", "Keyboard.ino"),
	}, found)
}

func TestList_EmptyCollection(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "README.md"))

	_, err := List(dir, ".ino")

	req.Error(err)
	req.True(errorx.IsOfType(err, NoSketchesError))
}

func TestList_MissingDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nope"), ".ino")
	require.True(t, errorx.IsOfType(err, NoSketchesError))
}

func TestChoose(t *testing.T) {
	req := require.New(t)
	sketches := []string{
		filepath.Join("sketches", "Blink", "Blink.ino"),
		filepath.Join("sketches", "Wifi", "Wifi.ino"),
	}
	var out bytes.Buffer

	got, err := Choose(sketches, strings.NewReader("2\n"), &out)

	req.NoError(err)
	req.Equal(sketches[1], got)
	req.Equal("1. Blink\n2. Wifi\nSelect sketch number: ", out.String())
}

func TestChoose_NoTrailingNewline(t *testing.T) {
	req := require.New(t)
	got, err := Choose([]string{"a.ino", "b.ino"}, strings.NewReader(" 1 "), &bytes.Buffer{})
	req.NoError(err)
	req.Equal("a.ino", got)
}

func TestChoose_InvalidInput(t *testing.T) {
	sketches := []string{"a.ino", "b.ino"}
	for _, input := range []string{"0\n", "3\n", "-1\n", "two\n", "\n", ""} {
		t.Run(strings.TrimSpace(input), func(t *testing.T) {
			_, err := Choose(sketches, strings.NewReader(input), &bytes.Buffer{})
			require.True(t, errorx.IsOfType(err, SelectionError), "input %q", input)
		})
	}
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "Rick Roll", DisplayName(filepath.Join("x", "Rick Roll", "Rick Roll.ino")))
}

func sketchArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestRefresh_ReplacesPreviousCopy(t *testing.T) {
	req := require.New(t)
	body := sketchArchive(t, map[string]string{
		"Digispark-Scripts-main/Blink/Blink.ino": "void setup() {}",
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	cfg := config.Default(t.TempDir())
	cfg.SketchURL = srv.URL
	touch(t, filepath.Join(cfg.SketchDir, "Old", "Old.ino"))

	req.NoError(Refresh(context.Background(), cfg, nil))

	req.NoFileExists(filepath.Join(cfg.SketchDir, "Old", "Old.ino"))
	req.NoFileExists(cfg.SketchArchive)
	found, err := List(cfg.SketchDir, cfg.SketchExt)
	req.NoError(err)
	req.Equal([]string{filepath.Join(cfg.SketchDir, "Digispark-Scripts-main", "Blink", "Blink.ino")}, found)
}

func TestRefresh_DownloadFailureIsFatal(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	cfg := config.Default(t.TempDir())
	cfg.SketchURL = srv.URL

	err := Refresh(context.Background(), cfg, nil)

	req.Error(err)
	req.True(errorx.IsOfType(err, installer.DownloadError))
}
