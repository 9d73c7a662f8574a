package logger

import (
	"github.com/fatih/color" // Colored console output for each log level
)

// Level printers share the fmt.Printf signature so call sites read like plain
// formatted printing, prefixed with the level tag: logger.Info("[INFO] ...\n").

// Info prints progress of the upload flow in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn prints recoverable problems in bright magenta, e.g. a stale path record
// that is about to be ignored.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error prints fatal problems in red just before the process exits.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug prints cyan diagnostics when enabled through Init, otherwise it is a no-op.
var Debug = noop

func noop(format string, a ...any) {}

// Init switches debug output on or off. It is called from the root command's
// PersistentPreRun with the value of --debug.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = noop
	}
}
