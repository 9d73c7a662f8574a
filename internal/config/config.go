package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

const (
	toolchainURL  = "https://github.com/arduino/arduino-cli/releases/download/v0.35.3/arduino-cli_0.35.3_Windows_64bit.zip"
	sketchURL     = "https://github.com/huh445/Digispark-Scripts/archive/refs/heads/main.zip"
	boardIndexURL = "https://raw.githubusercontent.com/digistump/arduino-boards-index/master/package_digistump_index.json"

	core  = "digistump:avr"
	board = "digistump:avr:digispark-tiny"

	plugInDelay = 2 * time.Second
)

// Default returns the fixed configuration with every local path resolved
// against baseDir.
func Default(baseDir string) *Config {
	return &Config{
		BaseDir:  baseDir,
		PathFile: filepath.Join(baseDir, "CLIPath.txt"),

		ToolchainURL:     toolchainURL,
		ToolchainDir:     filepath.Join(baseDir, "arduino-cli"),
		ToolchainArchive: filepath.Join(baseDir, "arduino-cli.zip"),
		ExeName:          "arduino-cli.exe",

		ArduinoConfigFile: arduinoConfigFile(),

		BoardIndexURL: boardIndexURL,
		Core:          core,
		Board:         board,

		SketchURL:     sketchURL,
		SketchDir:     filepath.Join(baseDir, "sketches"),
		SketchArchive: filepath.Join(baseDir, "sketches.zip"),
		SketchExt:     ".ino",

		PlugInDelay: plugInDelay,
	}
}

// arduinoConfigFile mirrors where arduino-cli keeps arduino-cli.yaml when no
// --config-file is given.
func arduinoConfigFile() string {
	if runtime.GOOS == "windows" {
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, "Arduino15", "arduino-cli.yaml")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Arduino15", "arduino-cli.yaml")
	}
	return filepath.Join(home, ".arduino15", "arduino-cli.yaml")
}
