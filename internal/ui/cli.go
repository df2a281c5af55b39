// Package ui provides the classgrid command line.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/classgrid/internal/config"
	"github.com/javiermolinar/classgrid/internal/logging"
	"github.com/javiermolinar/classgrid/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "classgrid",
		Short: "A weekly class schedule grid for the terminal",
		Long: `Classgrid lays out a week of class sessions on a Monday-Saturday grid.

Click a day column to add a session, drag it to move or resize it, and
assign a professor and a class. Monday and Tuesday sessions of the usual
lengths repeat on the matching days automatically (MWF and TR).`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger, closeLog, err := logging.New(a.debug, a.config.Log.DebugPath)
			if err != nil {
				return err
			}
			defer closeLog()
			return tui.Run(a.config, logger)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (TUI logs to the debug_path file, commands to stderr)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.rulesCmd())
	a.root.AddCommand(a.planCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "classgrid %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
