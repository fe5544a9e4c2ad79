package report

import (
	"strings"
	"testing"
	"time"

	"github.com/gishub/RawDataAccessBencher/bencher"
)

func result(strategy string, kind bencher.Kind, fetchMs, enumMs float64, rows int) bencher.Result {
	return bencher.Result{
		Strategy:        strategy,
		Kind:            kind,
		FetchTime:       time.Duration(fetchMs * float64(time.Millisecond)),
		EnumerationTime: time.Duration(enumMs * float64(time.Millisecond)),
		RowCount:        rows,
	}
}

func TestSummariesAverageRuns(t *testing.T) {
	s := NewSession()
	s.Add(result("pgx", bencher.SetBenchmark, 10, 100, 500))
	s.Add(result("pgx", bencher.SetBenchmark, 20, 200, 500))

	sums := s.Summaries()
	if len(sums) != 1 {
		t.Fatalf("summaries = %d, want 1", len(sums))
	}
	sum := sums[0]
	if sum.Runs != 2 || sum.Failures != 0 {
		t.Errorf("runs/failures = %d/%d", sum.Runs, sum.Failures)
	}
	if sum.Rows != 500 {
		t.Errorf("rows = %d, want 500", sum.Rows)
	}
	if sum.MeanFetchMs < 14.9 || sum.MeanFetchMs > 15.1 {
		t.Errorf("mean fetch = %f, want 15", sum.MeanFetchMs)
	}
	if sum.MeanEnumerationMs < 149 || sum.MeanEnumerationMs > 151 {
		t.Errorf("mean enum = %f, want 150", sum.MeanEnumerationMs)
	}
}

func TestSummariesCountFailures(t *testing.T) {
	s := NewSession()
	s.Add(result("raw", bencher.SetBenchmark, 10, 50, bencher.FailureRowCount))
	s.Add(result("raw", bencher.SetBenchmark, 12, 60, 300))

	sum := s.Summaries()[0]
	if sum.Failures != 1 {
		t.Errorf("failures = %d, want 1", sum.Failures)
	}
	if sum.Rows != 300 {
		t.Errorf("rows = %d, want 300", sum.Rows)
	}
	// the failed run must not drag the average
	if sum.MeanFetchMs < 11.9 || sum.MeanFetchMs > 12.1 {
		t.Errorf("mean fetch = %f, want 12", sum.MeanFetchMs)
	}
}

func TestSummariesKeepStrategiesSeparate(t *testing.T) {
	s := NewSession()
	s.Add(result("raw", bencher.IndividualBenchmark, 5, 0, 25))
	s.Add(result("pgx", bencher.IndividualBenchmark, 7, 0, 25))
	s.Add(result("raw", bencher.SetBenchmark, 9, 90, 500))

	sums := s.Summaries()
	if len(sums) != 3 {
		t.Fatalf("summaries = %d, want 3", len(sums))
	}
	if sums[0].Strategy != "raw" || sums[1].Strategy != "pgx" {
		t.Errorf("unexpected order: %s, %s", sums[0].Strategy, sums[1].Strategy)
	}
}

func TestSlowestFirst(t *testing.T) {
	sums := []Summary{
		{Strategy: "fast", Kind: bencher.SetBenchmark, MeanFetchMs: 1},
		{Strategy: "slow", Kind: bencher.SetBenchmark, MeanFetchMs: 9},
		{Strategy: "ind", Kind: bencher.IndividualBenchmark, MeanFetchMs: 5},
	}
	ordered := SlowestFirst(sums)
	if ordered[0].Strategy != "ind" {
		t.Errorf("individual summaries should sort first, got %s", ordered[0].Strategy)
	}
	if ordered[1].Strategy != "slow" || ordered[2].Strategy != "fast" {
		t.Errorf("set summaries out of order: %s, %s", ordered[1].Strategy, ordered[2].Strategy)
	}
}

func TestPrintShape(t *testing.T) {
	s := NewSession()
	s.Add(result("raw", bencher.SetBenchmark, 10, 100, 500))

	var b strings.Builder
	s.Print(&b)
	out := b.String()

	if !strings.HasPrefix(out, "Csv:session,strategy,kind,") {
		t.Errorf("missing CSV header: %q", out)
	}
	if !strings.Contains(out, s.ID.String()) {
		t.Error("output does not carry the session id")
	}
	if !strings.Contains(out, "strategy: raw\n") {
		t.Error("missing key/value block")
	}
	if !strings.Contains(out, "enumMs: ") {
		t.Error("set summary should print enumeration time")
	}
}
