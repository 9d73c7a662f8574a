package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefault_ResolvesPathsAgainstBaseDir(t *testing.T) {
	req := require.New(t)
	base := t.TempDir()

	cfg := Default(base)

	req.Equal(filepath.Join(base, "CLIPath.txt"), cfg.PathFile)
	req.Equal(filepath.Join(base, "arduino-cli"), cfg.ToolchainDir)
	req.Equal(filepath.Join(base, "arduino-cli", "arduino-cli.exe"), cfg.ExePath())
	req.Equal(filepath.Join(base, "sketches"), cfg.SketchDir)
	req.Equal(filepath.Join(base, "sketches.zip"), cfg.SketchArchive)
	req.Equal("digistump:avr", cfg.Core)
	req.Equal("digistump:avr:digispark-tiny", cfg.Board)
	req.Equal(".ino", cfg.SketchExt)
	req.Equal(2*time.Second, cfg.PlugInDelay)
	req.Contains(cfg.ToolchainURL, "arduino-cli_0.35.3_Windows_64bit.zip")
}

func TestLoadArduinoCLIConfig(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "arduino-cli.yaml")
	content := `board_manager:
  additional_urls:
    - https://example.com/package_a_index.json
    - https://example.com/package_digistump_index.json
directories:
  data: /home/me/.arduino15
  user: /home/me/Arduino
`
	req.NoError(os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadArduinoCLIConfig(path)
	req.NoError(err)
	req.Len(cfg.BoardManager.AdditionalURLs, 2)
	req.True(cfg.HasAdditionalURL("https://example.com/package_digistump_index.json"))
	req.False(cfg.HasAdditionalURL("https://example.com/other.json"))
}

func TestLoadArduinoCLIConfig_Missing(t *testing.T) {
	_, err := LoadArduinoCLIConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadArduinoCLIConfig_Malformed(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "arduino-cli.yaml")
	req.NoError(os.WriteFile(path, []byte("board_manager: [unterminated"), 0o644))

	_, err := LoadArduinoCLIConfig(path)
	req.Error(err)
}
