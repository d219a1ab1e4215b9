// Command gridsearch runs the grid search algorithms from the terminal and
// serves them over HTTP.
//
// Usage:
//
//	gridsearch run     [--alg astar] [--size 50] [--grid file | --maze] [--density 0.3] [--seed 1] [--animate] [--png out.png]
//	gridsearch compare [--algs bfs,astar] [--size 50] [--grid file | --maze] [--density 0.3] [--seed 1] [--trials 1]
//	gridsearch maze    [--size 21] [--seed 1] [-o file]
//	gridsearch serve
//
// Defaults come from the environment and .env (see package config).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/config"
	"github.com/katalvlaran/gridsearch/logging"
	"github.com/katalvlaran/gridsearch/render"
)

// errUsage marks errors that exit with code 2.
var errUsage = errors.New("invalid usage")

// app carries what every subcommand needs.
type app struct {
	cfg    config.Config
	log    *logging.Logger
	stdout io.Writer
	color  bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(realMain(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func realMain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	a := &app{
		cfg:    cfg,
		log:    logging.New(stderr, cfg.LogLevel),
		stdout: stdout,
	}
	if f, ok := stdout.(*os.File); ok {
		a.color = render.ColorSupported(f)
	}

	root := a.rootCommand()
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		fmt.Fprint(stderr, cmd.UsageString())
		return 2
	default:
		a.log.Errorf("%v", err)
		return 1
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "gridsearch",
		Short:         "Grid pathfinding with BFS, DFS, UCS, Dijkstra and A*",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
			}
			return nil
		},
		RunE: func(*cobra.Command, []string) error {
			return fmt.Errorf("%w: missing command", errUsage)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})
	root.AddCommand(a.runCommand(), a.compareCommand(), a.mazeCommand(), a.serveCommand())
	return root
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s takes no arguments, got %q", errUsage, cmd.Name(), args)
	}
	return nil
}
