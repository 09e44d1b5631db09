package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/zoro11031/filenames-list/internal/config"
	"github.com/zoro11031/filenames-list/internal/listing"
	"github.com/zoro11031/filenames-list/internal/system"
	"github.com/zoro11031/filenames-list/internal/ui"
	"github.com/zoro11031/filenames-list/pkg/version"
)

var (
	confirmOverwrite bool
	verifyOutput     bool
	noColor          bool
)

var rootCmd = &cobra.Command{
	Use:   "filenames-list [sourceDir] [outputPath]",
	Short: "Write the entries of a directory to a listing file",
	Long: `Lists the entries directly under sourceDir and writes them to outputPath
as a single line: the entry count followed by every entry name, each token
followed by a space.

sourceDir defaults to "` + config.DefaultSourceDir + `" and outputPath to "` + config.DefaultOutputPath + `".
Arguments past the second are ignored. An existing output file is overwritten.`,
	Version:       version.Short(),
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true, // Usage is noise for filesystem errors
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runList,
}

func init() {
	rootCmd.Flags().BoolVar(&confirmOverwrite, "confirm", false, "Ask before overwriting an existing output file")
	rootCmd.Flags().BoolVar(&verifyOutput, "verify", false, "Re-read the output file and check the entry count")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.SetVersionTemplate(version.Info() + "\n")
}

func runList(cmd *cobra.Command, args []string) error {
	opts := config.FromArgs(args)
	opts.Confirm = confirmOverwrite
	opts.Verify = verifyOutput
	opts.NoColor = noColor

	out := ui.NewWithWriter(cmd.OutOrStdout())
	out.SetNoColor(opts.NoColor)
	// Without a terminal the confirmation falls back to "no"
	out.SetNonInteractive(!isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()))

	lister := listing.NewLister(system.NewFileSystem(), out, out)
	_, err := lister.Run(opts)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
