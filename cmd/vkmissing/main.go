// Package main provides the command-line interface for vkmissing.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/lerenn/vkmissing/cmd/vkmissing/internal/cli"
	"github.com/lerenn/vkmissing/pkg/fs"
	"github.com/lerenn/vkmissing/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// rootOptions holds the flag values of a single command invocation.
type rootOptions struct {
	verbose     bool
	configPath  string
	headerPath  string
	marker      string
	excludeDirs []string
	workers     int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "vkmissing <directory>",
		Short: "List Vulkan functions never referenced in a source tree",
		Long: `Read the Vulkan header, collect every function declared with VKAPI_CALL,
and print, in sorted order, the ones that do not appear anywhere under <directory>.

Examples:
  vkmissing ./src
  vkmissing --header ~/vulkan-sdk/include/vulkan/vulkan_core.h ./lib
  vkmissing -x .git -x build -w 8 .`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMissing(cmd, opts, args[0])
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output on stderr")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Specify a custom config file path")
	flags.StringVarP(&opts.headerPath, "header", "H", "", "Header file to read declarations from")
	flags.StringVarP(&opts.marker, "marker", "m", "", "Text preceding each function name in the header")
	flags.StringSliceVarP(&opts.excludeDirs, "exclude", "x", nil, "Directory name to skip while searching (repeatable)")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "Number of functions searched concurrently")

	return rootCmd
}

// runMissing loads the configuration and writes the report to the command output.
func runMissing(cmd *cobra.Command, opts *rootOptions, dir string) error {
	fsInstance := fs.NewFS()
	loggerInstance := logger.NewWriterLogger(zapcore.AddSync(cmd.ErrOrStderr()), opts.verbose)
	defer func() {
		_ = loggerInstance.Sync()
	}()

	cfg, err := cli.LoadConfig(fsInstance, opts.configPath, overridesFromFlags(cmd, opts))
	if err != nil {
		return err
	}
	loggerInstance.Debugf("Using header %s with marker %q", cfg.HeaderPath, cfg.Marker)

	m, err := cli.NewMissing(fsInstance, cfg, opts.configPath, loggerInstance)
	if err != nil {
		return err
	}

	return m.Report(cmd.Context(), dir, cmd.OutOrStdout())
}

// overridesFromFlags keeps only the flags explicitly set by the user.
func overridesFromFlags(cmd *cobra.Command, opts *rootOptions) cli.Overrides {
	var overrides cli.Overrides
	flags := cmd.Flags()

	if flags.Changed("header") {
		overrides.HeaderPath = &opts.headerPath
	}
	if flags.Changed("marker") {
		overrides.Marker = &opts.marker
	}
	if flags.Changed("exclude") {
		overrides.ExcludeDirs = opts.excludeDirs
	}
	if flags.Changed("workers") {
		overrides.Workers = &opts.workers
	}

	return overrides
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}
