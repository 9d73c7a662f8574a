package flash

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"digispark-uploader/internal/config"
	"digispark-uploader/internal/logger"
	"digispark-uploader/internal/runner"
)

// Driver compiles a sketch and uploads it to the board with arduino-cli.
type Driver struct {
	runner runner.Runner
	board  string
	delay  time.Duration
	out    io.Writer
}

// New returns a Driver for cfg's board. Operator prompts go to out.
func New(cfg *config.Config, r runner.Runner, out io.Writer) *Driver {
	if out == nil {
		out = os.Stdout
	}
	return &Driver{runner: r, board: cfg.Board, delay: cfg.PlugInDelay, out: out}
}

// CompileAndUpload compiles sketch with exe, waits for the operator to plug
// in the board, then uploads. Upload is never attempted after a failed compile.
func (d *Driver) CompileAndUpload(ctx context.Context, exe, sketch string) error {
	logger.Info("[INFO] Compiling %s for %s...\n", sketch, d.board)
	if _, err := d.runner.Run(ctx, exe, "compile", "-b", d.board, sketch); err != nil {
		return NewCompileError(err, sketch, d.board)
	}
	fmt.Fprintln(d.out, "Compilation successful.")

	fmt.Fprintln(d.out, "Please plug in Digispark now...")
	if err := wait(ctx, d.delay); err != nil {
		return err
	}

	if _, err := d.runner.Run(ctx, exe, "upload", "-b", d.board, sketch); err != nil {
		return NewUploadError(err, sketch, d.board)
	}
	fmt.Fprintln(d.out, "Upload complete.")
	return nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
