package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/config"
	"github.com/katalvlaran/lvwalk/converters"
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/internal/logging"
	"github.com/katalvlaran/lvwalk/loader"
	"github.com/katalvlaran/lvwalk/walk"
)

var errNoInput = errors.New("no input: set --input or input.path")

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "lvwalk",
		Short: "lvwalk - random-walk corpus generator for graph embeddings",
		Long: `lvwalk loads a large undirected graph from an adjacency list or edge
list, normalises it and emits a corpus of truncated random walks with
restart, one walk per line, ready for a skip-gram trainer.`,
		SilenceUsage: true,
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML configuration file")
	pf.String("log-level", "", "Log level (debug, info, warn, error)")
	pf.Bool("log-dev", false, "Human-readable development logging")
	pf.String("metrics-out", "", "Write Prometheus metrics in text format to this file on exit")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvwalk v%s (%s)\n", version, commit)
		},
	})

	walkCmd := &cobra.Command{
		Use:   "walk",
		Short: "Load a graph and write a random-walk corpus",
		Args:  cobra.NoArgs,
		RunE:  runWalk,
	}
	addInputFlags(walkCmd)
	wf := walkCmd.Flags()
	wf.Int("passes", 0, "Walks started per node")
	wf.Int("path-length", 0, "Maximum walk length")
	wf.Float64("alpha", 0, "Restart probability in [0,1]")
	wf.Int64("seed", 0, "RNG seed (0 selects the default seed)")
	wf.Int("walkers", 0, "Generate passes in parallel on this many goroutines (0 = sequential)")
	wf.StringP("output", "o", "", "Corpus file (default stdout)")
	root.AddCommand(walkCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Load a graph and print its statistics",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	addInputFlags(statsCmd)
	root.AddCommand(statsCmd)

	synthCmd := &cobra.Command{
		Use:   "synth",
		Short: "Write a synthetic graph as an adjacency list",
		Args:  cobra.NoArgs,
		RunE:  runSynth,
	}
	sf := synthCmd.Flags()
	sf.String("topology", "random", "path, cycle, star, complete or random")
	sf.IntP("nodes", "n", 100, "Number of nodes")
	sf.Float64P("prob", "p", 0.05, "Edge probability for the random topology")
	sf.Int64("seed", walk.DefaultSeed, "RNG seed for the random topology")
	sf.Int64("offset", 0, "First node ID")
	sf.StringP("output", "o", "", "Output file (default stdout)")
	root.AddCommand(synthCmd)

	return root
}

func addInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("input", "i", "", "Input graph file")
	f.String("format", "", "Input format (adjlist, edgelist)")
	f.String("mode", "", "Parse mode (checked, unchecked)")
	f.Int("chunk-size", 0, "Lines per parse task")
	f.Int("workers", 0, "Parse workers")
}

// resolveConfig loads --config over the defaults, then applies every flag
// the user actually set, then validates.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	overrideString(cmd, "input", &cfg.Input.Path)
	overrideString(cmd, "format", &cfg.Input.Format)
	overrideString(cmd, "mode", &cfg.Input.Mode)
	overrideInt(cmd, "chunk-size", &cfg.Input.ChunkSize)
	overrideInt(cmd, "workers", &cfg.Input.Workers)
	overrideInt(cmd, "passes", &cfg.Walk.NumPasses)
	overrideInt(cmd, "path-length", &cfg.Walk.PathLength)
	overrideInt(cmd, "walkers", &cfg.Walk.Workers)
	overrideString(cmd, "output", &cfg.Output.Path)
	overrideString(cmd, "log-level", &cfg.Log.Level)
	if cmd.Flags().Changed("alpha") {
		cfg.Walk.RestartProbability, _ = cmd.Flags().GetFloat64("alpha")
	}
	if cmd.Flags().Changed("seed") {
		cfg.Walk.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if cmd.Flags().Changed("log-dev") {
		cfg.Log.Development, _ = cmd.Flags().GetBool("log-dev")
	}

	return cfg, cfg.Validate()
}

func overrideString(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetString(name)
	}
}

func overrideInt(cmd *cobra.Command, name string, dst *int) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetInt(name)
	}
}

// loadGraph resolves the configuration, builds the logger and loads the
// input graph.
func loadGraph(cmd *cobra.Command) (*core.Graph, config.Config, *zap.Logger, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, cfg, nil, err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, cfg, nil, err
	}
	if cfg.Input.Path == "" {
		return nil, cfg, log, errNoInput
	}

	opts := append(cfg.LoaderOptions(), loader.WithLogger(log))
	g, err := loader.LoadFile(cmd.Context(), cfg.Input.Path, cfg.Format(), opts...)
	if err != nil {
		return nil, cfg, log, err
	}

	return g, cfg, log, nil
}

func runWalk(cmd *cobra.Command, _ []string) (err error) {
	g, cfg, log, err := loadGraph(cmd)
	if log != nil {
		defer log.Sync()
	}
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cmd, cfg.Output.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); err == nil {
			err = cerr
		}
	}()

	start := time.Now()
	w := walk.NewWalker(g, walk.WithLogger(log))
	var n int
	if cfg.Walk.Workers > 0 {
		walks, err := w.ParallelCorpus(cmd.Context(), cfg.Params(), cfg.Walk.Seed, cfg.Walk.Workers)
		if err != nil {
			return err
		}
		if err := walk.WriteWalks(out, walks); err != nil {
			return err
		}
		n = len(walks)
	} else {
		it, err := w.Iterator(cmd.Context(), cfg.Params(), walk.NewRand(cfg.Walk.Seed))
		if err != nil {
			return err
		}
		if n, err = walk.WriteCorpus(out, it); err != nil {
			return err
		}
	}
	log.Info("corpus written",
		zap.Int("walks", n),
		zap.Int("nodes", w.Order()),
		zap.Duration("elapsed", time.Since(start)))

	return writeMetrics(cmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	g, _, log, err := loadGraph(cmd)
	if log != nil {
		defer log.Sync()
	}
	if err != nil {
		return err
	}

	st := g.Stats()
	components := len(topo.ConnectedComponents(converters.ToGonum(g)))
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "nodes:      %d\n", st.Nodes)
	fmt.Fprintf(out, "edges:      %d\n", st.Edges)
	fmt.Fprintf(out, "isolated:   %d\n", st.Isolated)
	fmt.Fprintf(out, "max_degree: %d\n", st.MaxDegree)
	fmt.Fprintf(out, "self_loops: %d\n", st.SelfLoops)
	fmt.Fprintf(out, "symmetric:  %t\n", st.Symmetric)
	fmt.Fprintf(out, "components: %d\n", components)

	return writeMetrics(cmd)
}

func runSynth(cmd *cobra.Command, _ []string) (err error) {
	f := cmd.Flags()
	topology, _ := f.GetString("topology")
	n, _ := f.GetInt("nodes")
	p, _ := f.GetFloat64("prob")
	seed, _ := f.GetInt64("seed")
	offset, _ := f.GetInt64("offset")
	path, _ := f.GetString("output")

	var ctor builder.Constructor
	switch topology {
	case "path":
		ctor = builder.Path(n)
	case "cycle":
		ctor = builder.Cycle(n)
	case "star":
		ctor = builder.Star(n)
	case "complete":
		ctor = builder.Complete(n)
	case "random":
		ctor = builder.RandomSparse(n, p)
	default:
		return fmt.Errorf("synth: unknown topology %q", topology)
	}
	if offset < 0 {
		return fmt.Errorf("synth: offset=%d must be non-negative", offset)
	}

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIDOffset(offset)},
		ctor)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cmd, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); err == nil {
			err = cerr
		}
	}()

	return builder.WriteAdjacencyList(out, g)
}

// openOutput returns the command's stdout for an empty path, or a created
// file together with its close func.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open output: %w", err)
	}

	return f, f.Close, nil
}

func writeMetrics(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("metrics-out")
	if path == "" {
		return nil
	}

	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
