package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"cannonland/internal/sims/battlefield"

	log "github.com/sirupsen/logrus"
)

type options struct {
	base     battlefield.Config
	runs     int
	ticks    int
	seedBase int64
	workers  int
	snapshot string
}

type runResult struct {
	index  int
	result battlefield.MatchResult
	err    error
}

// play runs every seed on a worker pool and returns the results in seed order.
func play(opts options) ([]runResult, error) {
	if opts.runs <= 0 {
		return nil, fmt.Errorf("runs must be positive, got %d", opts.runs)
	}
	workers := min(max(opts.workers, 1), opts.runs)

	jobs := make(chan int)
	results := make(chan runResult)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				cfg := opts.base
				cfg.Seed = opts.seedBase + int64(i)
				res, err := battlefield.RunBombardment(cfg, opts.ticks)
				results <- runResult{index: i, result: res, err: err}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		for i := 0; i < opts.runs; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	all := make([]runResult, 0, opts.runs)
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].index < all[j].index })
	for _, r := range all {
		if r.err != nil {
			return all, fmt.Errorf("run %d: %w", r.index, r.err)
		}
	}
	return all, nil
}

func run(opts options, w io.Writer) error {
	start := time.Now()
	all, err := play(opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	p := opts.base.Params
	fmt.Fprintf(w, "battlefield %dx%d layout=%s bunkers=%d bombard every %d (r=%d, dmg=%d), %d ticks\n",
		opts.base.Width, opts.base.Height, p.Layout, p.Bunkers, p.BombardEvery, p.BombardRadius, p.BombardDamage, opts.ticks)

	breaks := 0
	decided := 0
	for _, r := range all {
		fmt.Fprintf(w, "  %s\n", r.result.Summary())
		breaks += r.result.ConservationBreaks
		if len(r.result.Survivors) <= 1 {
			decided++
		}
	}
	fmt.Fprintf(w, "%d/%d runs decided, %d conservation breaks (elapsed %s)\n",
		decided, len(all), breaks, elapsed.Round(time.Millisecond))

	if breaks > 0 {
		log.WithField("breaks", breaks).Error("terrain lost or gained cells between detonations")
	}
	if opts.snapshot != "" {
		if err := writeSnapshot(opts.snapshot, all[0].result.FinalState); err != nil {
			return err
		}
		log.WithField("path", opts.snapshot).Info("snapshot written")
	}
	return nil
}

func writeSnapshot(path string, s battlefield.State) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := battlefield.EncodeState(f, s); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	return f.Close()
}
