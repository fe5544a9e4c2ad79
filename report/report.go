// Package report aggregates benchmark results across runs and prints the
// comparison summary, one CSV line plus a key/value block per strategy and
// benchmark kind.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"

	"github.com/gishub/RawDataAccessBencher/bencher"
	"github.com/gishub/RawDataAccessBencher/util"
)

// Session collects the results of one comparison run.
type Session struct {
	ID      uuid.UUID
	results map[string][]bencher.Result
	order   []string
}

func NewSession() *Session {
	return &Session{
		ID:      uuid.New(),
		results: map[string][]bencher.Result{},
	}
}

func (s *Session) key(r bencher.Result) string {
	return r.Strategy + "|" + r.Kind.String()
}

func (s *Session) Add(r bencher.Result) {
	k := s.key(r)
	if _, ok := s.results[k]; !ok {
		s.order = append(s.order, k)
	}
	s.results[k] = append(s.results[k], r)
}

// Summary is the aggregate of all runs of one strategy and benchmark kind.
// Failed runs (sentinel row count) are excluded from the averages and only
// counted.
type Summary struct {
	Strategy           string
	UsesCaching        bool
	UsesChangeTracking bool
	Kind               bencher.Kind
	Runs               int
	Failures           int
	Rows               int
	MeanFetchMs        float64
	P95FetchMs         float64
	MeanEnumerationMs  float64
	P95EnumerationMs   float64
}

// Summaries aggregates in insertion order.
func (s *Session) Summaries() []Summary {
	out := make([]Summary, 0, len(s.order))
	for _, k := range s.order {
		results := s.results[k]

		sum := Summary{
			Strategy:           results[0].Strategy,
			UsesCaching:        results[0].UsesCaching,
			UsesChangeTracking: results[0].UsesChangeTracking,
			Kind:               results[0].Kind,
			Runs:               len(results),
		}

		var fetch, enum []float64
		for _, r := range results {
			if r.Failed() {
				sum.Failures++
				continue
			}
			sum.Rows = r.RowCount
			fetch = append(fetch, r.FetchMs())
			if r.Kind == bencher.SetBenchmark {
				enum = append(enum, r.EnumerationMs())
			}
		}
		if len(fetch) > 0 {
			sum.MeanFetchMs = util.Mean(fetch)
			sum.P95FetchMs = util.Percentile(fetch, 95)
		}
		if len(enum) > 0 {
			sum.MeanEnumerationMs = util.Mean(enum)
			sum.P95EnumerationMs = util.Percentile(enum, 95)
		}
		out = append(out, sum)
	}
	return out
}

// SlowestFirst orders summaries by mean fetch time, slowest first, within
// each benchmark kind.
func SlowestFirst(summaries []Summary) []Summary {
	out := make([]Summary, len(summaries))
	copy(out, summaries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].MeanFetchMs > out[j].MeanFetchMs
	})
	return out
}

// Print writes the CSV summary followed by a key/value block per strategy.
func (s *Session) Print(w io.Writer) {
	fmt.Fprintf(w, "Csv:session,strategy,kind,caching,changeTracking,runs,failures,rows,fetchMs,fetchMsP95,enumMs,enumMsP95\n")
	for _, sum := range s.Summaries() {
		fmt.Fprintf(w, "Csv:%s,%s,%s,%t,%t,%d,%d,%d,%.6f,%.6f,%.6f,%.6f\n",
			s.ID, sum.Strategy, sum.Kind, sum.UsesCaching, sum.UsesChangeTracking,
			sum.Runs, sum.Failures, sum.Rows,
			sum.MeanFetchMs, sum.P95FetchMs, sum.MeanEnumerationMs, sum.P95EnumerationMs)
	}

	for _, sum := range s.Summaries() {
		fmt.Fprintf(w, "strategy: %s\n", sum.Strategy)
		fmt.Fprintf(w, "kind: %s\n", sum.Kind)
		fmt.Fprintf(w, "caching: %t\nchangeTracking: %t\n", sum.UsesCaching, sum.UsesChangeTracking)
		fmt.Fprintf(w, "runs: %d\nfailures: %d\nrows: %d\n", sum.Runs, sum.Failures, sum.Rows)
		fmt.Fprintf(w, "fetchMs: %.6f\nfetchMsP95: %.6f\n", sum.MeanFetchMs, sum.P95FetchMs)
		if sum.Kind == bencher.SetBenchmark {
			fmt.Fprintf(w, "enumMs: %.6f\nenumMsP95: %.6f\n", sum.MeanEnumerationMs, sum.P95EnumerationMs)
		}
		fmt.Fprintln(w)
	}
}
