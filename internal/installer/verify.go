package installer

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"digispark-uploader/internal/logger"
	"digispark-uploader/internal/state"
)

// Source says where Verify found the toolchain it returned.
type Source int

const (
	SourceRecord  Source = iota // path record was valid
	SourceDefault               // default install location was adopted
	SourceInstall               // a fresh install was performed
)

func (s Source) String() string {
	switch s {
	case SourceRecord:
		return "path record"
	case SourceDefault:
		return "default location"
	case SourceInstall:
		return "fresh install"
	default:
		return "unknown"
	}
}

// Resolution is the toolchain executable Verify settled on.
type Resolution struct {
	Path   string
	Source Source
}

// ProbeResult is the outcome of asking an executable for its installed cores.
type ProbeResult int

const (
	CoreInstalled ProbeResult = iota
	CoreMissing
	ProbeFailed // the executable could not be queried; treated like CoreMissing
)

func (p ProbeResult) String() string {
	switch p {
	case CoreInstalled:
		return "installed"
	case CoreMissing:
		return "missing"
	default:
		return "probe failed"
	}
}

// Probe runs `core list` on exe and looks for the board-support package on any
// output line. It never returns an error: a failed query is ProbeFailed.
func (in *Installer) Probe(ctx context.Context, exe string) ProbeResult {
	output, err := in.runner.Run(ctx, exe, "core", "list")
	if err != nil {
		logger.Debug("[DEBUG] core list on %s failed: %v\n", exe, err)
		return ProbeFailed
	}

	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, in.cfg.Core) {
			return CoreInstalled
		}
	}
	return CoreMissing
}

// usable reports whether exe exists and has the board-support package.
func (in *Installer) usable(ctx context.Context, exe string) bool {
	if !fileExists(exe) {
		logger.Debug("[DEBUG] %s does not exist\n", exe)
		return false
	}
	result := in.Probe(ctx, exe)
	logger.Debug("[DEBUG] %s reports %s as %s\n", exe, in.cfg.Core, result)
	return result == CoreInstalled
}

// Verify returns a usable toolchain, trying in order: the recorded path, the
// default install location (rewriting the record to it), and a fresh Install.
// Only the install step can fail.
func (in *Installer) Verify(ctx context.Context) (Resolution, error) {
	cfg := in.cfg

	recorded, err := state.Load(cfg.PathFile)
	switch {
	case err == nil:
		if in.usable(ctx, recorded) {
			logger.Info("[INFO] Using arduino-cli at %s\n", recorded)
			return Resolution{Path: recorded, Source: SourceRecord}, nil
		}
		logger.Warn("[WARN] Recorded arduino-cli %s is not usable, ignoring it\n", recorded)
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("[DEBUG] No path record at %s\n", cfg.PathFile)
	default:
		logger.Warn("[WARN] Ignoring unreadable path record: %v\n", err)
	}

	exe := cfg.ExePath()
	if in.usable(ctx, exe) {
		if err := state.Save(cfg.PathFile, exe); err != nil {
			return Resolution{}, err
		}
		logger.Info("[INFO] Using arduino-cli at %s\n", exe)
		return Resolution{Path: exe, Source: SourceDefault}, nil
	}

	path, err := in.Install(ctx)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Path: path, Source: SourceInstall}, nil
}
