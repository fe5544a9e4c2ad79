package bencher

import "time"

// FailureRowCount is reported by a set benchmark that aborted because an
// element failed verification.
const FailureRowCount = -1

// Kind distinguishes the two benchmark operations.
type Kind int

const (
	IndividualBenchmark Kind = iota
	SetBenchmark
)

func (k Kind) String() string {
	if k == IndividualBenchmark {
		return "individual"
	}
	return "set"
}

// Result of a single benchmark run. All failure signaling happens through
// RowCount; durations are always non-negative.
type Result struct {
	Strategy           string
	UsesCaching        bool
	UsesChangeTracking bool
	Kind               Kind
	// Time to perform the fetch calls. For set runs this covers only
	// obtaining the cursor, not walking it.
	FetchTime time.Duration
	// Time to walk and verify the full set. Only set for set runs.
	EnumerationTime time.Duration
	// Number of verified rows, or FailureRowCount when a set run aborted
	RowCount int
}

func (r Result) FetchMs() float64 {
	return float64(r.FetchTime) / float64(time.Millisecond)
}

func (r Result) EnumerationMs() float64 {
	return float64(r.EnumerationTime) / float64(time.Millisecond)
}

// Failed reports whether the run aborted on a verification failure.
func (r Result) Failed() bool {
	return r.RowCount == FailureRowCount
}
