package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/springpress/create-springpress-app/internal/branding"
	"github.com/springpress/create-springpress-app/internal/config"
	"github.com/springpress/create-springpress-app/internal/prompt"
	"github.com/springpress/create-springpress-app/internal/scaffold"
	"github.com/springpress/create-springpress-app/internal/ui"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

type rootOptions struct {
	verbose bool
}

// versionString is what --version prints after the command name.
func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, buildCommit, buildDate)
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " [app-directory]",
		Short: branding.Description(),
		Long: `Create a new ` + branding.DisplayName() + ` application in app-directory.

The directory must not exist yet; its name must be a valid npm package name.
Without an argument the project name is asked for interactively.

Report issues at https://github.com/` + branding.GitHubRepo() + `/issues.`,
		Example: `  ` + branding.CLIName() + ` my-app
  ` + branding.CLIName(),
		Version:       versionString(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			return runCreate(cmd, name, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Log each step to stderr")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}

func runCreate(cmd *cobra.Command, name string, opts rootOptions) error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := settings.LogLevel
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	ui.Configure(colorMode(cmd, settings.Color), cmd.OutOrStdout())

	out := cmd.OutOrStdout()
	s := scaffold.New(
		scaffold.WithPrompter(prompt.NewLine(cmd.InOrStdin(), out)),
		scaffold.WithLogger(logger),
		scaffold.WithManifestDefaults(settings.ManifestVersion, settings.ManifestPrivate),
		scaffold.WithObserver(func(stage scaffold.Stage, t scaffold.Target) {
			if stage == scaffold.StageDirectoryCreated {
				fmt.Fprintf(out, "Creating a new %s app in %s.\n", branding.DisplayName(), ui.Highlight.Render(t.Root))
			}
		}),
	)

	result, err := s.Create(name)
	if err != nil {
		return err
	}
	logger.Info("project created", "root", result.Root, "manifest", result.ManifestPath)
	return nil
}

// Execute runs the root command with build info injected via ldflags and
// reports any failure on stderr. The returned error maps to an exit status
// through ExitCode.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return run(newRootCmd())
}

func run(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		ui.Configure(diagnosticColorMode(cmd), cmd.ErrOrStderr())
		reportError(cmd.ErrOrStderr(), err)
	}
	return err
}

// colorMode applies --no-color on top of the configured mode. Flags parsed
// before a usage error are still honoured.
func colorMode(cmd *cobra.Command, configured string) ui.ColorMode {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return ui.ColorNever
	}
	return ui.ParseColorMode(configured)
}

// diagnosticColorMode resolves the mode for stderr output. RunE may not have
// run, and an unreadable config falls back to auto.
func diagnosticColorMode(cmd *cobra.Command) ui.ColorMode {
	var configured string
	if settings, err := config.Load(); err == nil {
		configured = settings.Color
	}
	return colorMode(cmd, configured)
}
