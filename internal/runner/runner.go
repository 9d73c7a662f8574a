package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"digispark-uploader/internal/logger"
)

// Runner executes an external program and returns what it printed on stdout.
// Every toolchain invocation goes through this interface.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// Exec runs programs on the host. Stdout always receives the captured standard
// output; Stderr receives captured standard error only when the command fails.
// Both default to the process streams.
type Exec struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts name with args directly (no shell) and waits for it.
// A non-zero exit returns a CommandFailedError carrying the exit status.
func (e Exec) Run(ctx context.Context, name string, args ...string) (string, error) {
	stdout, stderr := e.Stdout, e.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmdline := CommandLine(name, args...)
	logger.Debug("[DEBUG] Running command: %s\n", cmdline)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	fmt.Fprint(stdout, outBuf.String())
	if err == nil {
		return outBuf.String(), nil
	}

	fmt.Fprint(stderr, errBuf.String())

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return outBuf.String(), NewCommandFailedError(err, cmdline, exitCode)
}

// CommandLine renders name and args the way they would be typed, quoting
// arguments that contain spaces. It is used for logs and error messages only.
func CommandLine(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	for _, p := range append([]string{name}, args...) {
		if strings.ContainsAny(p, " \t") {
			p = `"` + p + `"`
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " ")
}

var _ Runner = Exec{}
