package installer

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"digispark-uploader/internal/config"
	"digispark-uploader/internal/logger"
	"digispark-uploader/internal/runner"
	"digispark-uploader/internal/state"
)

// Installer provisions and verifies the arduino-cli toolchain described by cfg.
type Installer struct {
	cfg    *config.Config
	runner runner.Runner
	out    io.Writer
}

// New returns an Installer that shells out through r and draws progress on out.
func New(cfg *config.Config, r runner.Runner, out io.Writer) *Installer {
	return &Installer{cfg: cfg, runner: r, out: out}
}

// Install replaces the toolchain directory with a fresh copy of the fixed
// arduino-cli release, registers the Digistump board index, installs the
// board-support package and records the executable path.
//
// A failure at any step leaves the directory as that step left it; the next
// Verify will not trust it and will install again.
func (in *Installer) Install(ctx context.Context) (string, error) {
	cfg := in.cfg
	exe := cfg.ExePath()

	logger.Info("[INFO] Downloading and installing arduino-cli...\n")
	if err := os.RemoveAll(cfg.ToolchainDir); err != nil {
		return "", NewInstallationError(err, cfg.ToolchainDir)
	}

	if err := Download(ctx, cfg.ToolchainURL, cfg.ToolchainArchive, in.out); err != nil {
		return "", err
	}
	if err := ExtractArchive(cfg.ToolchainArchive, cfg.ToolchainDir, in.out); err != nil {
		return "", err
	}
	if err := os.Remove(cfg.ToolchainArchive); err != nil {
		logger.Warn("[WARN] Failed to remove %s: %v\n", cfg.ToolchainArchive, err)
	}

	if !fileExists(exe) {
		return "", NewInstallationError(errors.New("archive did not contain "+cfg.ExeName), cfg.ToolchainDir)
	}

	if err := in.configure(ctx, exe); err != nil {
		return "", err
	}

	if err := state.Save(cfg.PathFile, exe); err != nil {
		return "", NewInstallationError(err, cfg.ToolchainDir)
	}

	logger.Info("[INFO] arduino-cli installed at %s\n", exe)
	return exe, nil
}

// configure runs the post-extraction subcommands against exe. `config init`
// refuses to overwrite an existing file and `config add` would duplicate an
// index URL, so both are skipped when arduino-cli.yaml already covers them.
func (in *Installer) configure(ctx context.Context, exe string) error {
	cfg := in.cfg

	if cfg.ArduinoConfigFile != "" && fileExists(cfg.ArduinoConfigFile) {
		logger.Info("[INFO] arduino-cli config already exists at %s, skipping init\n", cfg.ArduinoConfigFile)
	} else if _, err := in.runner.Run(ctx, exe, "config", "init"); err != nil {
		return NewConfigurationError(err, exe)
	}

	registered := false
	if cfg.ArduinoConfigFile != "" {
		cliCfg, err := config.LoadArduinoCLIConfig(cfg.ArduinoConfigFile)
		switch {
		case err == nil:
			registered = cliCfg.HasAdditionalURL(cfg.BoardIndexURL)
		case errors.Is(err, fs.ErrNotExist):
			logger.Debug("[DEBUG] No arduino-cli config at %s\n", cfg.ArduinoConfigFile)
		default:
			logger.Warn("[WARN] Ignoring unreadable arduino-cli config: %v\n", err)
		}
	}

	if registered {
		logger.Info("[INFO] Board index %s already registered\n", cfg.BoardIndexURL)
	} else if _, err := in.runner.Run(ctx, exe, "config", "add", "board_manager.additional_urls", cfg.BoardIndexURL); err != nil {
		return NewConfigurationError(err, exe)
	}

	if _, err := in.runner.Run(ctx, exe, "core", "update-index"); err != nil {
		return NewConfigurationError(err, exe)
	}
	if _, err := in.runner.Run(ctx, exe, "core", "install", cfg.Core); err != nil {
		return NewConfigurationError(err, exe)
	}
	return nil
}

// fileExists reports whether path names an existing non-directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
