// Package cli implements the ukpath command line.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ukpath/dataset"
	"github.com/katalvlaran/ukpath/geo"
	"github.com/katalvlaran/ukpath/pathfinder"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var Version = "dev"

// globals are the persistent flags shared by every command.
type globals struct {
	datasetPath string
	verbose     bool
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "ukpath",
		Short: "route finding on a small road map of the United Kingdom",
		Long: `
ukpath finds a route between two cities with one of four classic graph
searches (depth-first, breadth-first, Dijkstra and A*) and prints, compares,
renders or serves the result.
`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.datasetPath, "dataset", "", "YAML map to load instead of the built-in UK map")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log every location a search expands")

	root.AddCommand(
		newFindCmd(g),
		newCompareCmd(g),
		newLocationsCmd(g),
		newNearestCmd(g),
		newRenderCmd(g),
		newServeCmd(g),
	)

	return root
}

// Execute runs the command line and exits non-zero on error.
func Execute(version string) {
	Version = version

	if err := NewRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// load reads the map selected by --dataset and logs connections across which
// the great-circle heuristic overestimates.
func (g *globals) load() (*dataset.Dataset, error) {
	var (
		ds  *dataset.Dataset
		err error
	)
	if g.datasetPath == "" {
		ds, err = dataset.Default()
	} else {
		ds, err = dataset.LoadFile(g.datasetPath)
	}
	if err != nil {
		return nil, err
	}
	if g.verbose {
		log.Printf("loaded %q: %d locations, %d connections", ds.Name, ds.Graph.LocationCount(), ds.Graph.EdgeCount())
		for _, v := range geo.Audit(ds.Graph, ds.Coords) {
			log.Printf("warning: heuristic overestimates %s", v)
		}
	}

	return ds, nil
}

// engine loads the map and wraps it in a pathfinder.Engine, tracing
// expansions when --verbose is set.
func (g *globals) engine() (*pathfinder.Engine, *dataset.Dataset, error) {
	ds, err := g.load()
	if err != nil {
		return nil, nil, err
	}
	var opts []pathfinder.Option
	if g.verbose {
		opts = append(opts, pathfinder.WithTrace(func(algo pathfinder.Algorithm, id string) {
			log.Printf("%s: expand %s", algo.Key(), id)
		}))
	}
	e, err := pathfinder.New(ds.Graph, ds.Coords, opts...)
	if err != nil {
		return nil, nil, err
	}

	return e, ds, nil
}

// resolve maps both user-typed names to canonical locations.
func resolve(e *pathfinder.Engine, from, to string) (string, string, error) {
	a, err := e.Resolve(from)
	if err != nil {
		return "", "", err
	}
	b, err := e.Resolve(to)
	if err != nil {
		return "", "", err
	}

	return a, b, nil
}

// colorize reports whether w is a terminal that should get ANSI colours.
func colorize(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

const (
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)
