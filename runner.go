package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"aoc-solver/internal/solver"
)

// inputSource loads the puzzle input for a key.
type inputSource interface {
	Get(ctx context.Context, key solver.Key) (string, error)
}

// runner solves a batch of days in parallel and prints them in request order.
type runner struct {
	registry *solver.Registry
	inputs   inputSource
	workers  int
	out      io.Writer
	progress *spinner
	log      *logger
}

// runReport summarizes a Run.
type runReport struct {
	Results []dayResult
	Failed  int
	Elapsed time.Duration
}

// Run solves every requested day of year. A failing day does not stop the
// others; the returned error counts the failures.
func (r *runner) Run(ctx context.Context, year int, days []int) (runReport, error) {
	start := time.Now()
	log := r.log.withRun(uuid.NewString())
	log.debugf("run %d days %v with %d workers", year, days, r.workers)
	results := make([]dayResult, len(days))
	render := newRenderer(r.out)

	var (
		mu      sync.Mutex
		done    = make([]bool, len(days))
		next    = 0
		settled = 0
	)
	// finish records result i and prints every finished day up to the first
	// one still pending.
	finish := func(i int, res dayResult) {
		mu.Lock()
		defer mu.Unlock()
		results[i] = res
		done[i] = true
		settled++
		r.progress.Update(fmt.Sprintf("solving %d, %d/%d days done", year, settled, len(days)))
		r.progress.Suspend(func() {
			for next < len(days) && done[next] {
				_, _ = io.WriteString(r.out, render.renderDay(results[next]))
				next++
			}
		})
	}

	r.progress.Start(fmt.Sprintf("solving %d, 0/%d days done", year, len(days)))
	defer r.progress.Stop()

	var eg errgroup.Group
	eg.SetLimit(max(r.workers, 1))
	for i, day := range days {
		key := solver.Key{Year: year, Day: day}
		eg.Go(func() error {
			finish(i, r.solveDay(ctx, log, key))
			return nil
		})
	}
	_ = eg.Wait()

	report := runReport{Results: results, Elapsed: time.Since(start)}
	for _, res := range results {
		if res.failed() {
			report.Failed++
		}
	}
	log.elapsed(fmt.Sprintf("ran %d days", len(days)), report.Elapsed)
	if report.Failed > 0 {
		return report, fmt.Errorf("%d of %d days failed", report.Failed, len(days))
	}
	return report, nil
}

// solveDay loads the input, builds the solver and times both parts.
func (r *runner) solveDay(ctx context.Context, runLog *logger, key solver.Key) dayResult {
	res := dayResult{key: key}
	log := runLog.with(key.Year, key.Day)
	if err := ctx.Err(); err != nil {
		res.err = err
		return res
	}
	if _, err := r.registry.Lookup(key); err != nil {
		res.err = err
		return res
	}

	loadStart := time.Now()
	input, err := r.inputs.Get(ctx, key)
	if err != nil {
		res.err = fmt.Errorf("load input: %w", err)
		return res
	}
	log.elapsed("input loaded", time.Since(loadStart))

	buildStart := time.Now()
	s, err := r.registry.New(key, input)
	if err != nil {
		res.err = err
		return res
	}
	log.elapsed("solver built", time.Since(buildStart))

	for n, part := range []func() (solver.Solution, error){s.Part1, s.Part2} {
		p := runPart(part)
		log.elapsed(fmt.Sprintf("part %d solved", n+1), p.elapsed)
		res.parts = append(res.parts, p)
	}
	return res
}

// runPart times one part and turns a panic into an error.
func runPart(part func() (solver.Solution, error)) (res partResult) {
	start := time.Now()
	defer func() {
		res.elapsed = time.Since(start)
		if p := recover(); p != nil {
			res.err = fmt.Errorf("panic: %v", p)
		}
	}()
	res.solution, res.err = part()
	return res
}
