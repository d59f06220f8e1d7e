package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gubarz/mdtoc/internal/config"
	"github.com/gubarz/mdtoc/internal/document"
	"github.com/gubarz/mdtoc/internal/executor"
	"github.com/gubarz/mdtoc/internal/filter"
	"github.com/gubarz/mdtoc/internal/ui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.2.0"

// store is swapped for an in-memory filesystem in tests.
var store = document.NewOSStore()

var newExecutor = executor.NewExecutor

var newConverter = filter.NewT2S

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdtoc [input] [output]",
		Short: "Generate and refresh a Markdown table of contents",
		Long: strings.Trim(`
Scans the ## to ##### headings of a Markdown document, outside fenced code
blocks, and writes a linked "## 目录" list. An existing list is replaced in
place; otherwise a new one is inserted before the first ## heading and
closed with a *** rule. Running it again on an unchanged document changes
nothing.

The output path defaults to the input path, which defaults to the
configured default_file.`, "\n"),
		Version:           version,
		Args:              cobra.MaximumNArgs(2),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runTOC,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default: mdtoc.yaml in ~/.config/mdtoc, ~ or .)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Flags().BoolP("preview", "p", false, "Print the TOC and the start of the updated document without writing")
	rootCmd.Flags().BoolP("interactive", "i", false, "Show the preview in a scrollable pager (implies --preview)")
	rootCmd.Flags().Bool("copy", false, "Copy the generated TOC to the clipboard instead of writing the file")
	rootCmd.Flags().Bool("print", false, "Print the generated TOC to stdout instead of writing the file")
	rootCmd.Flags().Int("start-level", 0, "Shallowest heading level listed (default from config: 2)")
	rootCmd.Flags().Int("max-level", 0, "Deepest heading level listed (default from config: 5)")

	rootCmd.AddCommand(newDivideCmd(), newIndentCmd(), newPunctCmd(), newLatexCmd(), newT2SCmd(), newCheckCmd())
	return rootCmd
}

// setup loads configuration and configures logging before any command runs
func setup(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	if err := config.Init(configFile); err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	bindFlag(cmd, "start_level", "start-level")
	bindFlag(cmd, "max_level", "max-level")
	bindFlag(cmd, "log_level", "log-level")

	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	level, err := log.ParseLevel(config.GetLogLevel())
	if err != nil {
		return err
	}
	log.SetLevel(level)

	ui.RefreshStyles()
	return nil
}

// bindFlag lets an explicitly set flag override the config value for key
func bindFlag(cmd *cobra.Command, key, name string) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		viper.Set(key, f.Value.String())
	}
}

// resolvePaths returns the input path and the path to write to.
func resolvePaths(args []string) (input, output string) {
	input = config.GetDefaultFile()
	if len(args) > 0 {
		input = args[0]
	}
	output = input
	if len(args) > 1 {
		output = args[1]
	}
	return input, output
}

// writeDocument stores content and runs the post-write hook.
func writeDocument(cmd *cobra.Command, path, content string) error {
	if err := store.Write(path, content); err != nil {
		return err
	}

	out, err := newExecutor(cmd.OutOrStdout()).RunHook(config.GetPostHook(), path)
	if err != nil {
		return err
	}
	if out != "" {
		log.WithField("file", path).Info(out)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
