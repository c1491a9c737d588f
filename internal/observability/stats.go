// Package observability exposes the optional counters and statistics a host
// application can attach to a mode-search run. Nothing in this package sits
// on the hot path of internal/intra or internal/search; every hook here is a
// no-op until a caller opts in, matching spec.md §9's note that global
// counters should be "expose[d] as atomic counters on an observability
// struct" rather than threaded through the core's call signatures.
package observability

import (
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/stat"
)

// Stats accumulates per-mode RD scores and trial/commit counters across one
// or more mode-search runs. The zero value is ready to use. All methods are
// safe for concurrent use so a caller can share one Stats across parallel
// per-block searches.
type Stats struct {
	trials    atomic.Int64
	commits   atomic.Int64
	analyzerErrs atomic.Int64

	mu      sync.Mutex
	scores  []float64
	byMode  map[int][]float64
}

// NewStats returns an empty Stats ready to record a search run.
func NewStats() *Stats {
	return &Stats{byMode: make(map[int][]float64)}
}

// RecordTrial logs one candidate mode's RD cost, per spec.md §4.6's
// trial/commit cycle. mode is the IntraMode under trial, as an int so this
// package carries no dependency on hevcimage.
func (s *Stats) RecordTrial(mode int, cost float64) {
	s.trials.Add(1)
	s.mu.Lock()
	s.scores = append(s.scores, cost)
	if s.byMode == nil {
		s.byMode = make(map[int][]float64)
	}
	s.byMode[mode] = append(s.byMode[mode], cost)
	s.mu.Unlock()
}

// RecordCommit logs that a trial's winner was reconstructed into the
// working image.
func (s *Stats) RecordCommit() {
	s.commits.Add(1)
}

// RecordAnalyzerError logs that a TBSplitAnalyser call failed, per spec.md
// §7's analyser-failure handling.
func (s *Stats) RecordAnalyzerError() {
	s.analyzerErrs.Add(1)
}

// Trials returns the number of RecordTrial calls so far.
func (s *Stats) Trials() int64 { return s.trials.Load() }

// Commits returns the number of RecordCommit calls so far.
func (s *Stats) Commits() int64 { return s.commits.Load() }

// AnalyzerErrors returns the number of RecordAnalyzerError calls so far.
func (s *Stats) AnalyzerErrors() int64 { return s.analyzerErrs.Load() }

// Summary is a mean/variance digest of the RD scores seen across every
// trial recorded so far.
type Summary struct {
	Count    int
	Mean     float64
	Variance float64
}

// Summarize computes the mean and variance of every trial score recorded,
// using gonum/stat the way the reference pack's probe tooling summarises
// sampled measurements.
func (s *Stats) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.scores) == 0 {
		return Summary{}
	}
	mean, variance := stat.MeanVariance(s.scores, nil)
	return Summary{Count: len(s.scores), Mean: mean, Variance: variance}
}

// SummarizeMode computes the mean/variance of the RD scores recorded for a
// single intra mode, or the zero Summary if that mode was never trialled.
func (s *Stats) SummarizeMode(mode int) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	scores := s.byMode[mode]
	if len(scores) == 0 {
		return Summary{}
	}
	mean, variance := stat.MeanVariance(scores, nil)
	return Summary{Count: len(scores), Mean: mean, Variance: variance}
}
