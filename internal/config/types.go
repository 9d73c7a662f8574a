package config

import (
	"path/filepath"
	"time"
)

// Config carries every fixed location, URL and identifier the uploader uses.
// It is built once at startup by Default and handed to each component, so
// tests can point the same code at temporary directories and local servers.
type Config struct {
	BaseDir string // Directory everything below is resolved against (the executable's directory)

	PathFile string // Path record holding the quoted toolchain executable path

	ToolchainURL     string // Fixed arduino-cli release archive
	ToolchainDir     string // Extraction target, wiped on every fresh install
	ToolchainArchive string // Transient download location of ToolchainURL
	ExeName          string // Executable name inside ToolchainDir

	ArduinoConfigFile string // arduino-cli's own YAML config; empty when the home directory is unknown

	BoardIndexURL string // Additional board manager index registering the Digistump cores
	Core          string // Board-support package that must be installed
	Board         string // Fully qualified board name passed to compile and upload

	SketchURL     string // Fixed archive of example sketches
	SketchDir     string // Extraction target, wiped on every run
	SketchArchive string // Transient download location of SketchURL
	SketchExt     string // Extension identifying a sketch file

	PlugInDelay time.Duration // Pause between compile and upload for connecting the board
}

// ExePath returns the default location of the toolchain executable.
func (c *Config) ExePath() string {
	return filepath.Join(c.ToolchainDir, c.ExeName)
}

// ArduinoCLIConfig is the subset of arduino-cli.yaml the installer cares about.
type ArduinoCLIConfig struct {
	BoardManager struct {
		AdditionalURLs []string `yaml:"additional_urls"`
	} `yaml:"board_manager"`
}

// HasAdditionalURL reports whether url is already registered as a board manager index.
func (c ArduinoCLIConfig) HasAdditionalURL(url string) bool {
	for _, u := range c.BoardManager.AdditionalURLs {
		if u == url {
			return true
		}
	}
	return false
}
