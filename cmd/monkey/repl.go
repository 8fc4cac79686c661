package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"monkey/internal/project"
	"monkey/internal/repl"
	"monkey/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read monkey source lines and print their tokens",
	Long:  `Repl reads one line at a time, lexes it, and prints every token up to EOF`,
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().String("prompt", "", "input prompt")
	replCmd.Flags().Bool("ui", false, "use the full-screen interactive mode")
}

// loadManifest finds monkey.toml above the working directory, if any.
func loadManifest() (*project.Manifest, bool, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, false, err
	}
	return project.Load(wd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	prompt, _ := cmd.Flags().GetString("prompt")
	fullScreen, _ := cmd.Flags().GetBool("ui")

	manifest, ok, err := loadManifest()
	if err == nil && ok {
		if prompt == "" {
			prompt = manifest.Config.Repl.Prompt
		}
		if !cmd.Flags().Changed("ui") {
			fullScreen = manifest.Config.Repl.UI
		}
	}
	if prompt == "" {
		prompt = repl.DefaultPrompt
	}

	if fullScreen {
		model := ui.NewReplModel(prompt, maxDiagnostics)
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintln(os.Stdout, "monkey lexer repl (ctrl-d to exit)")
	}

	return repl.Run(os.Stdin, os.Stdout, repl.Options{
		Prompt:         prompt,
		Color:          useColor(cmd, os.Stdout),
		MaxDiagnostics: maxDiagnostics,
	})
}
