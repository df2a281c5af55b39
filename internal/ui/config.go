package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/classgrid/internal/config"
	"github.com/javiermolinar/classgrid/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  classgrid config
  classgrid config --show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if show {
				printConfig(cmd.OutOrStdout(), a.config)
				return nil
			}
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "Print the configuration and exit")
	return cmd
}

func runConfigInteractive(in io.Reader, out io.Writer) error {
	configPath := config.DefaultConfigPath()
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	editConfig(reader, out, cfg)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func editConfig(reader *bufio.Reader, out io.Writer, cfg *config.Config) {
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.Catalog.Professors = promptSlice(reader, out, "Professors (comma-separated)", cfg.Catalog.Professors)
	cfg.Catalog.Classes = promptSlice(reader, out, "Classes (comma-separated)", cfg.Catalog.Classes)
	cfg.Export.CalendarName = promptValue(reader, out, "Calendar name", cfg.Export.CalendarName)
	cfg.Log.DebugPath = promptValue(reader, out, "Debug log path", cfg.Log.DebugPath)
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[ui]")
	fmt.Fprintf(out, "  theme         = %s\n", cfg.UI.Theme)
	fmt.Fprintln(out, "\n[catalog]")
	fmt.Fprintf(out, "  professors    = %s\n", strings.Join(cfg.Catalog.Professors, ", "))
	fmt.Fprintf(out, "  classes       = %s\n", strings.Join(cfg.Catalog.Classes, ", "))
	fmt.Fprintln(out, "\n[export]")
	fmt.Fprintf(out, "  calendar_name = %s\n", cfg.Export.CalendarName)
	fmt.Fprintln(out, "\n[log]")
	fmt.Fprintf(out, "  debug_path    = %s\n", cfg.Log.DebugPath)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptSlice(reader *bufio.Reader, out io.Writer, label string, current []string) []string {
	fmt.Fprintf(out, "  %s [%s]: ", label, strings.Join(current, ", "))
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			// Input exhausted: keep the current theme.
			return current
		}
	}
}
