package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/retroblast-engine/tmx"
)

func main() {
	var (
		verbose     = flag.Bool("v", false, "Log parser debug output to stderr")
		interactive = flag.Bool("i", false, "Browse the layer hierarchy interactively")
		lenient     = flag.Bool("lenient", false, "Accept tile grids that do not match the map size")
		jobs        = flag.Int("j", 1, "Tilesets decoded in parallel")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: tmxview [-v] [-lenient] [-j N] <map.tmx>")
		fmt.Fprintln(os.Stderr, "       tmxview -i <map.tmx>  (interactive mode)")
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *verbose, *interactive, *lenient, *jobs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, verbose, interactive, lenient bool, jobs int) error {
	log := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		log = l
		defer func() { _ = log.Sync() }()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	opts := tmx.DefaultOptions()
	opts.Logger = log.Named("tmx")
	opts.LenientDimensions = lenient
	opts.Concurrency = jobs

	m, err := tmx.ParseWithOptions(data, opts)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		return runInteractive(path, m)
	}

	fmt.Println(summary(path, m))
	fmt.Println()
	fmt.Print(hierarchy(m))
	return nil
}
