package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"monkey/internal/diagfmt"
	"monkey/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] path",
	Short: "Tokenize a monkey source file or directory",
	Long:  `Tokenize breaks down monkey source (*.mky) into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("no-cache", false, "bypass the token disk cache")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	format, noCache := tokenizeDefaults(cmd)

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return tokenizeDir(cmd, path, format, maxDiagnostics)
	}
	return tokenizeOne(cmd, path, format, noCache, maxDiagnostics)
}

// tokenizeDefaults resolves format and cache settings from flags, falling
// back to monkey.toml when the flag was not set.
func tokenizeDefaults(cmd *cobra.Command) (format string, noCache bool) {
	format, _ = cmd.Flags().GetString("format")
	noCache, _ = cmd.Flags().GetBool("no-cache")

	manifest, ok, err := loadManifest()
	if err == nil && ok {
		if format == "" {
			format = manifest.Config.Tokenize.Format
		}
		if !cmd.Flags().Changed("no-cache") && manifest.Config.Tokenize.Cache != nil {
			noCache = !*manifest.Config.Tokenize.Cache
		}
	}
	if format == "" {
		format = "pretty"
	}
	return format, noCache
}

func tokenizeOne(cmd *cobra.Command, path, format string, noCache bool, maxDiagnostics int) error {
	var cache *driver.TokenCache
	if !noCache {
		// cache failures degrade to plain lexing
		cache, _ = driver.OpenTokenCache("monkey")
	}

	result, err := driver.TokenizeCached(path, maxDiagnostics, cache)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	printDiagnostics(cmd, result)

	if err := printTokens(format, result); err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("%d diagnostic(s) reported", result.Bag.Len())
	}
	return nil
}

func tokenizeDir(cmd *cobra.Command, dir, format string, maxDiagnostics int) error {
	results, err := driver.TokenizeDir(cmd.Context(), dir, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	hadErrors := false
	for _, r := range results {
		fmt.Fprintf(os.Stdout, "== %s\n", r.Path)
		printDiagnostics(cmd, r.Result)
		if err := printTokens(format, r.Result); err != nil {
			return err
		}
		if r.Result.Bag.HasErrors() {
			hadErrors = true
		}
	}
	if hadErrors {
		return fmt.Errorf("diagnostics reported")
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, result *driver.TokenizeResult) {
	if result.Bag.Len() == 0 {
		return
	}
	result.Bag.Sort()
	diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Context: 2,
	})
}

func printTokens(format string, result *driver.TokenizeResult) error {
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
