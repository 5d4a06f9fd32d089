package scaffold

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoName is returned when no project name was given and none could be
// collected interactively.
var ErrNoName = errors.New("no project name given")

// InvalidNameError reports a name rejected by the naming rules.
type InvalidNameError struct {
	Name     string
	Errors   []string
	Warnings []string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("cannot create a project named %q: %s", e.Name, strings.Join(e.Problems(), "; "))
}

// Problems returns every rule violation, errors before warnings.
func (e *InvalidNameError) Problems() []string {
	out := make([]string, 0, len(e.Errors)+len(e.Warnings))
	out = append(out, e.Errors...)
	return append(out, e.Warnings...)
}

// AlreadyExistsError reports that the target path is occupied.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists", e.Path)
}

// IOError wraps a filesystem failure. The message is the underlying error's,
// unmodified.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}
