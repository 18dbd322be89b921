package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/doeshing/voxsh/internal/app"
	"github.com/doeshing/voxsh/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. Running it without a subcommand
// starts the interactive listen loop.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	var (
		configPath string
		debug      bool
		forceText  bool
		container  *app.Container
	)

	build := func(cmd *cobra.Command) (*app.Container, error) {
		if container != nil {
			return container, nil
		}
		built, err := app.BuildContainer(cmd.Context(), app.Options{
			ConfigPath: configPath,
			Verbose:    opts.Verbose || debug,
			ForceText:  forceText,
			In:         cmd.InOrStdin(),
			Out:        cmd.OutOrStdout(),
		})
		if err != nil {
			return nil, err
		}
		container = built
		return container, nil
	}

	root := &cobra.Command{
		Use:   "voxsh",
		Short: "voxsh - voice driven shell",
		Long: `voxsh listens for a spoken (or typed) command and acts on it:
  quit | exit                       stop listening
  install openaicli                 install the openaicli package
  open browser                      open the default web page
  send email <to> <subject...>      send a short email
  what is this error ...            ask the assistant about recent output
  anything else                     run it as a shell command`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := build(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Logger.Sync() }()
			if isTerminal(os.Stdout) {
				c.Loop.Assistant = withSpinner(c.Loop.Assistant, os.Stderr)
			}
			return c.Loop.Run(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.voxsh/config.yaml)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable verbose logging")
	root.PersistentFlags().BoolVar(&forceText, "text", false, "Read typed commands even if speech input is available")

	root.AddCommand(commands.NewVersionCommand())
	root.AddCommand(commands.NewDoctorCommand(build))
	root.AddCommand(commands.NewHistoryCommand(build))
	root.AddCommand(commands.NewConfigCommand(build))
	return root, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
