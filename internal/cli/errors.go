package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/springpress/create-springpress-app/internal/branding"
	"github.com/springpress/create-springpress-app/internal/scaffold"
	"github.com/springpress/create-springpress-app/internal/ui"
)

// Exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitIOError = 74 // EX_IOERR from sysexits.h
)

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ioErr *scaffold.IOError
	if errors.As(err, &ioErr) {
		return ExitIOError
	}
	return ExitFailure
}

func reportError(w io.Writer, err error) {
	var (
		invalid *scaffold.InvalidNameError
		exists  *scaffold.AlreadyExistsError
	)

	switch {
	case errors.As(err, &invalid):
		fmt.Fprintf(w, "%s %s %s\n",
			ui.Error.Render("Cannot create a project named"),
			ui.Highlight.Render(invalid.Name),
			ui.Error.Render("because of npm naming rules:"))
		fmt.Fprintln(w)
		for _, problem := range invalid.Problems() {
			fmt.Fprintf(w, " - %s\n", ui.Error.Render(problem))
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Please choose a different project name.")

	case errors.As(err, &exists):
		fmt.Fprintln(w, ui.Error.Render("This application already exists in this directory."))
		fmt.Fprintf(w, "  %s\n", ui.Highlight.Render(exists.Path))

	case errors.Is(err, scaffold.ErrNoName):
		fmt.Fprintln(w, "Please specify the project directory:")
		fmt.Fprintf(w, "  %s %s\n", branding.CLIName(), ui.Highlight.Render("<app-directory>"))

	default:
		fmt.Fprintln(w, ui.Error.Render("Error: "+err.Error()))
	}
}
