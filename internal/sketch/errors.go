package sketch

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace  = errorx.NewNamespace("sketch")
	NoSketchesError  = ErrorsNamespace.NewType("no_sketches", errorx.NotFound())
	SelectionError   = ErrorsNamespace.NewType("invalid_selection")
	RefreshError     = ErrorsNamespace.NewType("refresh_error")
	dirPathProperty  = errorx.RegisterPrintableProperty("dir_path")
	selectedProperty = errorx.RegisterPrintableProperty("selection")
)

func NewNoSketchesError(dir string) *errorx.Error {
	return NoSketchesError.New("no sketches found in '%s'", dir).
		WithProperty(dirPathProperty, dir)
}

func NewSelectionError(cause error, selection string, count int) *errorx.Error {
	err := SelectionError.New("invalid sketch selection '%s', expected a number between 1 and %d", selection, count).
		WithProperty(selectedProperty, selection)

	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}

	return err
}

func NewRefreshError(cause error, dir string) *errorx.Error {
	return RefreshError.New("failed to refresh sketches in '%s'", dir).
		WithProperty(dirPathProperty, dir).
		WithUnderlyingErrors(cause)
}
