// Command vecgen renders the fixed-scalar vector types of package fixedvec.
//
// Usage:
//
//	vecgen [flags]
//
// It reads a YAML config describing dimensions, scalar types and operators,
// executes the vector template once per dimension and writes one formatted
// Go file per dimension.
//
// Examples:
//
//	vecgen -config vecgen.yaml -out .
//	vecgen -config vecgen.yaml -list
//	vecgen -config vecgen.yaml -dry-run -debug
//
// It is normally run through go generate from the fixedvec package.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/manyvecs/internal/vecgen"
)

func main() {
	configPath := flag.String("config", "vecgen.yaml", "path to the generator config")
	outDir := flag.String("out", ".", "directory to write generated files into")
	debug := flag.Bool("debug", false, "human-readable debug logging")
	dryRun := flag.Bool("dry-run", false, "render and format without writing files")
	list := flag.Bool("list", false, "list the types the config produces and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecgen [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Generates fixed-scalar vector types from a YAML config.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vecgen -config vecgen.yaml -out .\n")
		fmt.Fprintf(os.Stderr, "  vecgen -config vecgen.yaml -list\n")
	}
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(*configPath, *outDir, *dryRun, *list, os.Stdout, logger); err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(configPath, outDir string, dryRun, list bool, w io.Writer, logger *zap.Logger) error {
	cfg, err := vecgen.Load(configPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded config",
		zap.String("path", configPath),
		zap.Int("dimensions", len(cfg.Dimensions)),
		zap.Int("scalars", len(cfg.Scalars)),
		zap.Int("operators", len(cfg.Operators)))

	gen, err := vecgen.New(cfg, logger)
	if err != nil {
		return err
	}

	if list || dryRun {
		files, err := gen.Render()
		if err != nil {
			return err
		}
		if list {
			printList(w, files)
		}
		return nil
	}

	return gen.WriteTo(outDir)
}

func printList(w io.Writer, files []vecgen.File) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tSIZE\tTYPES\tBYTES")
	for _, f := range files {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", f.Name, f.Size, len(f.Types), len(f.Content))
	}
	tw.Flush()
}

// newLogger returns a zap logger. When debug is true it uses the development
// config (human-readable, debug level); otherwise the production config.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
