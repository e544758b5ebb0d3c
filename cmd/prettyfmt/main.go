package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"pkt.systems/prettyfmt"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("prettyfmt", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	indent := flags.Int("indent", 2, "spaces per nesting level")
	minimal := flags.Bool("min", false, "print each document on a single line without type labels")
	maxDepth := flags.Int("max-depth", 0, "collapse collections nested deeper than this (0 = unlimited)")
	maxWidth := flags.Int("max-width", 0, "print at most this many elements per array (0 = unlimited)")
	sortKeys := flags.Bool("sort-keys", false, "sort object keys")
	unwrap := flags.Bool("unwrap", false, "decode JSON-looking strings recursively")
	palette := flags.String("palette", "", "colour palette (see --list-palettes)")
	noColor := flags.Bool("no-color", false, "disable colorized output, even when writing to a TTY")
	forceColor := flags.Bool("force-color", false, "colorize output even when not writing to a TTY")
	listPalettes := flags.Bool("list-palettes", false, "list palette names and exit")
	logLevel := flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: prettyfmt [flags] [file...]\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	logger, err := newLogger(stderr, *logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "prettyfmt: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	if *listPalettes {
		fmt.Fprintln(stdout, strings.Join(prettyfmt.PaletteNames(), "\n"))
		return 0
	}
	if *indent < 0 {
		logger.Errorw("invalid indent", "indent", *indent)
		return 2
	}

	opts := *prettyfmt.DefaultOptions
	opts.Indent = strings.Repeat(" ", *indent)
	opts.Min = *minimal
	opts.MaxDepth = *maxDepth
	opts.MaxWidth = *maxWidth
	opts.SortKeys = *sortKeys
	opts.Unwrap = *unwrap
	opts.Palette = *palette
	opts.ForceColor = *forceColor
	if *noColor {
		opts.Palette = "none"
	}

	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		logger.Debugw("formatting", "path", path)
		if err := formatPath(stdout, stdin, path, &opts); err != nil {
			logger.Errorw("format failed", "path", path, "err", err)
			return 1
		}
	}
	return 0
}

func formatPath(w io.Writer, stdin io.Reader, path string, opts *prettyfmt.Options) error {
	if path == "-" {
		return prettyfmt.FormatJSON(w, stdin, opts)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := prettyfmt.FormatJSON(w, f, opts); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
