package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/gridsearch"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/render"
	"github.com/katalvlaran/gridsearch/search"
	"github.com/katalvlaran/gridsearch/server"
)

var errNoEndpoints = errors.New("grid needs both a start and an end")

// gridFlags selects where a grid comes from.
type gridFlags struct {
	size    int
	file    string
	maze    bool
	density float64
	seed    int64
}

func (gf *gridFlags) register(fs *pflag.FlagSet, defaultSize int) {
	fs.IntVar(&gf.size, "size", defaultSize, "grid side for generated grids")
	fs.StringVar(&gf.file, "grid", "", "read the grid from a text file ('.', '#', 'S', 'E')")
	fs.BoolVar(&gf.maze, "maze", false, "carve a maze instead of scattering barriers")
	fs.Float64Var(&gf.density, "density", 0.3, "barrier probability for scattered grids")
	fs.Int64Var(&gf.seed, "seed", 0, "random seed (0 picks one from the clock)")
}

func (gf *gridFlags) rng() *rand.Rand {
	seed := gf.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// build returns the grid described by the flags. Generated grids get the
// start in the top-left and the end in the bottom-right room.
func (gf *gridFlags) build(rng *rand.Rand) (*grid.Grid, error) {
	if gf.file != "" {
		data, err := os.ReadFile(gf.file)
		if err != nil {
			return nil, err
		}
		return grid.ParseString(string(data))
	}
	if gf.maze {
		size := gf.size
		if size%2 == 0 {
			size++
		}
		g, err := grid.Maze(size, rng)
		if err != nil {
			return nil, err
		}
		g.At(1, 1).MarkStart()
		g.At(size-2, size-2).MarkEnd()
		return g, nil
	}
	g, err := grid.New(gf.size)
	if err != nil {
		return nil, err
	}
	g.At(0, 0).MarkStart()
	g.At(gf.size-1, gf.size-1).MarkEnd()
	if err = g.Scatter(rng, gf.density); err != nil {
		return nil, err
	}
	return g, nil
}

// runOptions holds the flags of the run command.
type runOptions struct {
	grid    gridFlags
	alg     string
	animate bool
	delay   time.Duration
	png     string
	cellPx  int
	limit   int
}

func (a *app) runCommand() *cobra.Command {
	var o runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one algorithm and draw the explored grid",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), &o)
		},
	}
	fs := cmd.Flags()
	o.grid.register(fs, a.cfg.Size)
	fs.StringVar(&o.alg, "alg", a.cfg.Algorithm.String(), "algorithm: bfs, dfs, ucs, dijkstra, astar (or a, b, u, d, s)")
	fs.BoolVar(&o.animate, "animate", false, "redraw the grid after every step")
	fs.DurationVar(&o.delay, "delay", a.cfg.StepDelay, "pause between animation frames")
	fs.StringVar(&o.png, "png", "", "write a PNG snapshot of the finished grid")
	fs.IntVar(&o.cellPx, "cell", 12, "PNG pixels per cell")
	fs.IntVar(&o.limit, "limit", 0, "stop after this many expansions (0 = no limit)")
	return cmd
}

func (a *app) run(ctx context.Context, o *runOptions) error {
	gf := &o.grid
	alg, err := gridsearch.ParseAlgorithm(o.alg)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	g, err := gf.build(gf.rng())
	if err != nil {
		return err
	}
	board, err := gridsearch.BoardFrom(g)
	if err != nil {
		return err
	}
	if err = board.Select(alg); err != nil {
		return err
	}
	if !board.Ready() {
		return errNoEndpoints
	}

	opts := []search.Option{search.WithStepLimit(o.limit)}
	var anim *render.Animator
	if o.animate {
		anim = render.NewAnimator(a.stdout, g, o.delay, a.color)
		opts = append(opts, search.WithObserver(anim))
	}

	a.log.Debugf("running %s on %d×%d grid", alg.Title(), g.Size(), g.Size())
	res, err := board.Run(ctx, opts...)
	if err != nil {
		return err
	}
	if anim != nil && anim.Err() != nil {
		return anim.Err()
	}
	if anim == nil {
		if err = render.WriteFrame(a.stdout, g, a.color); err != nil {
			return err
		}
	}
	if err = render.PrintPath(a.stdout, res.Path); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%s: %s, explored %d cells in %s\n", alg.Title(), res.Status, len(res.Explored), res.Elapsed)
	if res.Status == search.StatusAborted {
		a.log.Warnf("run aborted: %v", res.Err)
	}

	if o.png != "" {
		if err = render.SavePNG(o.png, g, o.cellPx, res.Path); err != nil {
			return err
		}
		a.log.Infof("wrote %s", o.png)
	}
	return nil
}

func (a *app) compareCommand() *cobra.Command {
	var (
		gf      gridFlags
		algList []string
		trials  int
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run several algorithms on the same grid and tabulate the results",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.compare(cmd.Context(), &gf, algList, trials)
		},
	}
	fs := cmd.Flags()
	gf.register(fs, a.cfg.Size)
	fs.StringSliceVar(&algList, "algs", nil, "comma-separated algorithms (default all)")
	fs.IntVar(&trials, "trials", 1, "number of generated grids to aggregate")
	return cmd
}

func (a *app) compare(ctx context.Context, gf *gridFlags, algList []string, trials int) error {
	var algs []gridsearch.Algorithm
	for _, name := range algList {
		alg, err := gridsearch.ParseAlgorithm(strings.TrimSpace(name))
		if err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		algs = append(algs, alg)
	}
	if trials < 1 {
		return fmt.Errorf("%w: --trials must be at least 1", errUsage)
	}
	if trials > 1 && gf.file != "" {
		return fmt.Errorf("%w: --trials needs generated grids, not --grid", errUsage)
	}

	rng := gf.rng()
	batches := make([][]gridsearch.Comparison, 0, trials)
	for i := 0; i < trials; i++ {
		g, err := gf.build(rng)
		if err != nil {
			return err
		}
		runs, err := gridsearch.Compare(ctx, g, algs, search.WithoutMarks())
		if err != nil {
			return err
		}
		batches = append(batches, runs)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	if trials == 1 {
		fmt.Fprintln(tw, "ALGORITHM\tSTATUS\tEXPLORED\tPATH\tELAPSED")
		for _, c := range batches[0] {
			r := c.Result
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", c.Algorithm, r.Status, len(r.Explored), r.Len(), r.Elapsed)
		}
		return tw.Flush()
	}

	sums, err := gridsearch.Summarize(batches)
	if err != nil {
		return err
	}
	fmt.Fprintln(tw, "ALGORITHM\tFOUND\tMEAN EXPLORED\tMEDIAN EXPLORED\tMEAN PATH\tMEDIAN TIME\tP90 TIME")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%d/%d\t%.1f\t%.0f\t%.1f\t%s\t%s\n",
			s.Algorithm, s.Found, s.Runs, s.MeanExplored, s.MedianExplored, s.MeanPathLen, s.MedianElapsed, s.P90Elapsed)
	}
	return tw.Flush()
}

func (a *app) mazeCommand() *cobra.Command {
	var (
		gf  gridFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Carve a random maze and print it as grid text",
		Args:  noArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.maze(&gf, out)
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&gf.size, "size", 21, "maze side (odd)")
	fs.Int64Var(&gf.seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.StringVarP(&out, "out", "o", "", "write to a file instead of stdout")
	return cmd
}

func (a *app) maze(gf *gridFlags, out string) error {
	gf.maze = true
	g, err := gf.build(gf.rng())
	if err != nil {
		return err
	}
	text := g.String() + "\n"
	if out == "" {
		_, err = fmt.Fprint(a.stdout, text)
		return err
	}
	return os.WriteFile(out, []byte(text), 0o644)
}

func (a *app) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the search API over HTTP and WebSocket",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	gin.SetMode(a.cfg.GinMode)
	router := server.NewRouter(server.Config{
		Addr:    a.cfg.HTTPAddr,
		BaseURL: a.cfg.BaseURL,
		Controllers: []server.Controller{
			server.NewSearchController(a.cfg.MaxCells, a.cfg.StepDelay, a.log.With("http")),
		},
		Logger: a.log,
	})
	return router.Run(ctx)
}
