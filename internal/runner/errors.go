package runner

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace    = errorx.NewNamespace("runner")
	CommandFailedError = ErrorsNamespace.NewType("command_failed")

	commandProperty  = errorx.RegisterPrintableProperty("command")
	exitCodeProperty = errorx.RegisterPrintableProperty("exit_code")
)

const commandFailedErrorMsg = "command failed with exit %d: %s"

// NewCommandFailedError reports a subprocess that could not be started or
// exited non-zero. exitCode is -1 when the process never ran.
func NewCommandFailedError(cause error, command string, exitCode int) *errorx.Error {
	err := CommandFailedError.New(commandFailedErrorMsg, exitCode, command).
		WithProperty(commandProperty, command).
		WithProperty(exitCodeProperty, exitCode)

	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}

	return err
}

// ExitCode extracts the exit status carried by a CommandFailedError, looking
// through any errorx errors that wrap it as their cause.
func ExitCode(err error) (int, bool) {
	for e := errorx.Cast(err); e != nil; e = errorx.Cast(e.Cause()) {
		if v, ok := e.Property(exitCodeProperty); ok {
			code, ok := v.(int)
			return code, ok
		}
	}
	return 0, false
}
