package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"

	"digispark-uploader/internal/config"
	"digispark-uploader/internal/flash"
	"digispark-uploader/internal/installer"
	"digispark-uploader/internal/logger"
	"digispark-uploader/internal/runner"
	"digispark-uploader/internal/sketch"
)

// session bundles what every command needs. Everything is resolved relative
// to the directory holding the executable.
type session struct {
	cfg    *config.Config
	runner runner.Runner
	in     io.Reader
	out    io.Writer
}

// openSession is what every command calls; tests swap it for a session with a
// temporary base directory and a fake runner.
var openSession = newSession

func newSession(cmd *cobra.Command) (*session, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, errorx.Decorate(err, "failed to locate the running executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	cfg := config.Default(filepath.Dir(exe))
	logger.Debug("[DEBUG] Working directory for toolchain and sketches: %s\n", cfg.BaseDir)

	return &session{
		cfg:    cfg,
		runner: runner.Exec{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
		in:     cmd.InOrStdin(),
		out:    cmd.OutOrStdout(),
	}, nil
}

func (s *session) installer() *installer.Installer {
	return installer.New(s.cfg, s.runner, s.out)
}

// upload is the full interactive flow. Every error is fatal.
func (s *session) upload(ctx context.Context) error {
	res, err := s.installer().Verify(ctx)
	if err != nil {
		return err
	}
	logger.Debug("[DEBUG] Toolchain resolved from %s\n", res.Source)

	sketches, err := s.refreshAndList(ctx)
	if err != nil {
		return err
	}

	choice, err := sketch.Choose(sketches, s.in, s.out)
	if err != nil {
		return err
	}

	return flash.New(s.cfg, s.runner, s.out).CompileAndUpload(ctx, res.Path, choice)
}

func (s *session) refreshAndList(ctx context.Context) ([]string, error) {
	if err := sketch.Refresh(ctx, s.cfg, s.out); err != nil {
		return nil, err
	}
	return sketch.List(s.cfg.SketchDir, s.cfg.SketchExt)
}

func (s *session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}
