package flash

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace = errorx.NewNamespace("flash")
	CompileError    = ErrorsNamespace.NewType("compile_error")
	UploadError     = ErrorsNamespace.NewType("upload_error")

	sketchProperty = errorx.RegisterPrintableProperty("sketch")
	boardProperty  = errorx.RegisterPrintableProperty("board")
)

// NewCompileError wraps the failed compile command so its exit code stays
// reachable through runner.ExitCode.
func NewCompileError(cause error, sketch, board string) *errorx.Error {
	return CompileError.Wrap(cause, "failed to compile '%s' for %s", sketch, board).
		WithProperty(sketchProperty, sketch).
		WithProperty(boardProperty, board)
}

func NewUploadError(cause error, sketch, board string) *errorx.Error {
	return UploadError.Wrap(cause, "failed to upload '%s' to %s", sketch, board).
		WithProperty(sketchProperty, sketch).
		WithProperty(boardProperty, board)
}
