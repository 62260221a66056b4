// Package batch fans candidate passwords out to a bounded worker pool
// with a global rate limit, so large wordlists can be scored without
// saturating the host.
package batch

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/graexlabs/sentinel-cli/internal/breach"
	"github.com/graexlabs/sentinel-cli/internal/password"
)

// Outcome is the per-candidate result of a batch run.
type Outcome struct {
	Candidate string
	Analysis  password.Analysis
	Breach    *breach.Result
}

// ObserveFunc is a callback invoked after each candidate completes,
// typically to drive a progress display.
type ObserveFunc func(outcome Outcome, duration float64)

// Runner orchestrates batch password analysis with concurrency and rate
// limiting.
type Runner struct {
	Concurrency int  // Maximum number of concurrent analyses
	RateLimit   int  // Candidates per second (global)
	CheckBreach bool // Also look each candidate up in the breach corpus
}

// Run analyzes every candidate and returns outcomes in input order.
// A canceled context stops admission of new candidates; outcomes for
// unprocessed candidates still carry their analysis zero value.
func (r *Runner) Run(ctx context.Context, candidates []string, observe ObserveFunc) []Outcome {
	limiter := rate.NewLimiter(rate.Limit(r.RateLimit), r.RateLimit)

	concurrency := r.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)

	var wg sync.WaitGroup
	outcomes := make([]Outcome, len(candidates))

	for i, candidate := range candidates {
		wg.Add(1)
		go func(idx int, cand string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			if err := limiter.Wait(ctx); err != nil {
				outcomes[idx] = Outcome{Candidate: cand}
				return
			}

			start := time.Now()

			outcome := Outcome{
				Candidate: cand,
				Analysis:  password.Analyze(cand),
			}
			if r.CheckBreach {
				res := breach.Check(cand)
				outcome.Breach = &res
			}
			outcomes[idx] = outcome

			if observe != nil {
				observe(outcome, time.Since(start).Seconds())
			}
		}(i, candidate)
	}

	wg.Wait()
	return outcomes
}
