package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"aoc-solver/internal/solver"
)

// rootOptions holds the persistent flags and the shared dependencies.
type rootOptions struct {
	configPath string
	verbose    bool
	log        *logger
	now        func() time.Time
}

// solveOptions holds the flags selecting what to solve.
type solveOptions struct {
	year    int
	days    []int
	workers int
	refresh bool
}

func newRootCommand(log *logger) *cobra.Command {
	opts := &rootOptions{log: log, now: time.Now}
	so := &solveOptions{}

	cmd := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code solutions and runner",
		Long:          "Fetches puzzle inputs, runs the solvers for the requested days and prints their answers.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.log.setVerbose(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, so)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config.json (default $AOC_HOME/config.json or the user config dir)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	addSolveFlags(cmd, so)

	cmd.AddCommand(newSolveCommand(opts))
	cmd.AddCommand(newSetSessionCommand(opts))
	cmd.AddCommand(newCreateCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	cmd.SetGlobalNormalizationFunc(dayAlias)
	return cmd
}

// dayAlias accepts --day for --days.
func dayAlias(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "day" {
		name = "days"
	}
	return pflag.NormalizedName(name)
}

func addSolveFlags(cmd *cobra.Command, so *solveOptions) {
	cmd.Flags().IntVarP(&so.year, "year", "y", 0, "puzzle year (default: the current puzzle year)")
	cmd.Flags().IntSliceVarP(&so.days, "days", "d", nil, "puzzle days, comma separated (default: today)")
	cmd.Flags().IntVarP(&so.workers, "jobs", "j", 0, "days solved in parallel (default: workers from config)")
	cmd.Flags().BoolVar(&so.refresh, "refresh", false, "download the inputs again")
}

func newSolveCommand(opts *rootOptions) *cobra.Command {
	so := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the requested days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, so)
		},
	}
	addSolveFlags(cmd, so)
	return cmd
}

// appContext is the configuration shared by the commands.
type appContext struct {
	cfg        appConfig
	configPath string
	closeLog   func()
}

func loadApp(opts *rootOptions) (*appContext, error) {
	path, err := resolveConfigPath(opts.configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	opts.log.debugf("config: %s", path)
	app := &appContext{cfg: cfg, configPath: path, closeLog: func() {}}
	if cfg.LogFile != "" {
		c := opts.log.teeToFile(cfg.LogFile)
		app.closeLog = func() { _ = c.Close() }
	}
	return app, nil
}

func runSolve(cmd *cobra.Command, opts *rootOptions, so *solveOptions) error {
	ctx := cmd.Context()
	app, err := loadApp(opts)
	if err != nil {
		return err
	}
	defer app.closeLog()

	year, days, err := resolveRequest(so.year, so.days, opts.now())
	if err != nil {
		return err
	}
	workers := app.cfg.Workers
	if so.workers > 0 {
		workers = so.workers
	}

	cacheDir := app.cfg.CacheDir
	if cacheDir == "" {
		cacheDir = defaultCacheDir(opts.log)
	}
	progress := newSpinner(cmd.ErrOrStderr())
	restore := opts.log.suspendWith(progress.Suspend)
	defer restore()

	cache, err := NewFileCache(cacheDir, newInputFetcher(app, opts.log, progress.Suspend))
	if err != nil {
		return err
	}
	if so.refresh {
		for _, d := range days {
			if err := cache.Evict(solver.Key{Year: year, Day: d}); err != nil {
				return err
			}
		}
	}

	r := &runner{
		registry: newRegistry(),
		inputs:   cache,
		workers:  workers,
		out:      cmd.OutOrStdout(),
		progress: progress,
		log:      opts.log,
	}
	_, err = r.Run(ctx, year, days)
	return err
}

// newInputFetcher downloads inputs on cache misses. The session id is only
// looked up, and prompted for, on the first download. The prompt runs inside
// hold.
func newInputFetcher(app *appContext, log *logger, hold func(func())) func(context.Context, solver.Key) (io.ReadCloser, error) {
	var (
		mu     sync.Mutex
		client *aocClient
	)
	getClient := func(ctx context.Context) (*aocClient, error) {
		mu.Lock()
		defer mu.Unlock()
		if client != nil {
			return client, nil
		}
		store := newSessionStore(&app.cfg, app.configPath, log)
		store.hold = hold
		id, err := store.SessionID(ctx)
		if err != nil {
			return nil, err
		}
		c, err := newAOCClient(app.cfg, id, log)
		if err != nil {
			return nil, err
		}
		client = c
		return client, nil
	}

	return func(ctx context.Context, key solver.Key) (io.ReadCloser, error) {
		c, err := getClient(ctx)
		if err != nil {
			return nil, err
		}
		log.infof("downloading input for %s", key)
		body, err := c.Input(ctx, key.Year, key.Day)
		switch {
		case err == nil:
			return body, nil
		case isAuthError(err):
			return nil, fmt.Errorf("session id rejected, run `aoc set-session-id`: %w", err)
		case isNotUnlocked(err):
			return nil, fmt.Errorf("puzzle %s is not unlocked yet: %w", key, err)
		}
		return nil, err
	}
}

func newSetSessionCommand(opts *rootOptions) *cobra.Command {
	var (
		store  string
		forget bool
	)
	cmd := &cobra.Command{
		Use:   "set-session-id",
		Short: "Store the adventofcode.com session cookie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.closeLog()

			s := newSessionStore(&app.cfg, app.configPath, opts.log)
			if forget {
				if err := s.Forget(); err != nil {
					return err
				}
				opts.log.ok("session id removed from keyring")
				return nil
			}
			raw, err := s.prompt()
			if err != nil {
				return err
			}
			id, err := parseSessionInput(raw)
			if err != nil {
				return err
			}
			return s.Save(id, store)
		},
	}
	cmd.Flags().StringVar(&store, "store", storeKeyring, "where to keep the session id (keyring|config)")
	cmd.Flags().BoolVar(&forget, "forget", false, "remove the session id from the keyring instead")
	return cmd
}

func newCreateCommand(opts *rootOptions) *cobra.Command {
	var (
		year int
		days []int
		root string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Generate solver stubs for the requested days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			y, ds, err := resolveRequest(year, days, opts.now())
			if err != nil {
				return err
			}
			s, err := newScaffold(root, cmd.ErrOrStderr(), opts.log)
			if err != nil {
				return err
			}
			if err := s.Create(y, ds); err != nil {
				return err
			}
			opts.log.okf("created %d day(s) for %d", len(ds), y)
			return nil
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "puzzle year (default: the current puzzle year)")
	cmd.Flags().IntSliceVarP(&days, "days", "d", nil, "puzzle days, comma separated (default: today)")
	cmd.Flags().StringVar(&root, "root", ".", "module root to write into")
	return cmd
}

func newListCommand(opts *rootOptions) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the days that have a solver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := newRegistry()
			years := reg.Years()
			if year != 0 {
				years = []int{year}
			}
			out := cmd.OutOrStdout()
			for _, y := range years {
				days := reg.Days(y)
				if len(days) == 0 {
					return fmt.Errorf("no solvers for year %d", y)
				}
				parts := make([]string, len(days))
				for i, d := range days {
					parts[i] = fmt.Sprint(d)
				}
				_, _ = fmt.Fprintf(out, "%d: %s\n", y, strings.Join(parts, " "))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "only this year")
	return cmd
}
