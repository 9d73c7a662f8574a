// Package runnertest provides an in-memory runner.Runner for tests that must
// not spawn real toolchain processes.
package runnertest

import (
	"context"
	"strings"

	"digispark-uploader/internal/runner"
)

// Call is one recorded invocation.
type Call struct {
	Name string
	Args []string
}

// String joins the call into a single command line without quoting.
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Fake records every call and answers with Handler. A nil Handler succeeds
// with empty output.
type Fake struct {
	Calls   []Call
	Handler func(call Call) (string, error)
}

func (f *Fake) Run(_ context.Context, name string, args ...string) (string, error) {
	call := Call{Name: name, Args: append([]string(nil), args...)}
	f.Calls = append(f.Calls, call)
	if f.Handler == nil {
		return "", nil
	}
	return f.Handler(call)
}

// Commands returns the recorded calls as command lines.
func (f *Fake) Commands() []string {
	out := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		out = append(out, c.String())
	}
	return out
}

// Fail builds the error a real runner returns for a non-zero exit.
func Fail(call Call, exitCode int) error {
	return runner.NewCommandFailedError(nil, call.String(), exitCode)
}

var _ runner.Runner = (*Fake)(nil)
