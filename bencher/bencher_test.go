package bencher

import (
	"errors"
	"testing"
)

type order struct {
	id int
}

func orderKey(o *order) int { return o.id }

// stubStrategy serves elements from memory, keyed by id
type stubStrategy struct {
	byKey    map[int]*order
	all      []*order
	fetchErr error
	setErr   error
}

func (s *stubStrategy) FetchIndividual(key int) (*order, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return s.byKey[key], nil
}

func (s *stubStrategy) FetchSet() (Set[order], error) {
	if s.setErr != nil {
		return nil, s.setErr
	}
	return NewSliceSet(s.all), nil
}

func (s *stubStrategy) Name() string             { return "stub v1.0 (test)" }
func (s *stubStrategy) UsesCaching() bool        { return false }
func (s *stubStrategy) UsesChangeTracking() bool { return true }

// errSet fails with err after yielding the given elements
type errSet struct {
	elems []*order
	pos   int
	err   error
}

func (s *errSet) Next() bool {
	if s.pos >= len(s.elems) {
		return false
	}
	s.pos++
	return true
}

func (s *errSet) Element() *order { return s.elems[s.pos-1] }
func (s *errSet) Err() error      { return s.err }
func (s *errSet) Close() error    { return nil }

func newTestBencher(t *testing.T, s Strategy[order]) *Bencher[order] {
	t.Helper()
	b, err := New[order](s, orderKey)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return b
}

func TestNewRequiresKeyExtractor(t *testing.T) {
	_, err := New[order](&stubStrategy{}, nil)
	if !errors.Is(err, ErrNoKeyExtractor) {
		t.Errorf("err = %v, want ErrNoKeyExtractor", err)
	}
}

func TestNewRequiresStrategy(t *testing.T) {
	_, err := New[order](nil, orderKey)
	if !errors.Is(err, ErrNoStrategy) {
		t.Errorf("err = %v, want ErrNoStrategy", err)
	}
}

func TestIndividualBenchmarkCountsVerifiedRows(t *testing.T) {
	s := &stubStrategy{byKey: map[int]*order{
		101: {id: 101},
		102: {id: 102},
		103: {id: -1}, // present but fails verification
		104: {id: 104},
	}}
	b := newTestBencher(t, s)

	res, err := b.PerformIndividualBenchMark([]int{101, 102, 103, 104})
	if err != nil {
		t.Fatalf("PerformIndividualBenchMark failed: %v", err)
	}
	if res.RowCount != 3 {
		t.Errorf("RowCount = %d, want 3", res.RowCount)
	}
	if res.Kind != IndividualBenchmark {
		t.Errorf("Kind = %v, want individual", res.Kind)
	}
	if res.FetchTime < 0 {
		t.Errorf("FetchTime = %v, want non-negative", res.FetchTime)
	}
	if res.EnumerationTime != 0 {
		t.Errorf("EnumerationTime = %v, want unset", res.EnumerationTime)
	}
}

func TestIndividualBenchmarkToleratesMissingKeys(t *testing.T) {
	// absent keys count as not fetched but never abort the loop
	s := &stubStrategy{byKey: map[int]*order{2: {id: 2}}}
	b := newTestBencher(t, s)

	res, err := b.PerformIndividualBenchMark([]int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("PerformIndividualBenchMark failed: %v", err)
	}
	if res.RowCount != 1 {
		t.Errorf("RowCount = %d, want 1", res.RowCount)
	}
}

func TestIndividualBenchmarkAllInvalidKeys(t *testing.T) {
	s := &stubStrategy{byKey: map[int]*order{}}
	b := newTestBencher(t, s)

	res, err := b.PerformIndividualBenchMark([]int{7, 8, 9})
	if err != nil {
		t.Fatalf("PerformIndividualBenchMark failed: %v", err)
	}
	if res.RowCount != 0 {
		t.Errorf("RowCount = %d, want 0", res.RowCount)
	}
	if res.FetchTime < 0 {
		t.Errorf("FetchTime = %v, want non-negative", res.FetchTime)
	}
}

func TestIndividualBenchmarkPropagatesFetchErrors(t *testing.T) {
	boom := errors.New("connection lost")
	b := newTestBencher(t, &stubStrategy{fetchErr: boom})

	_, err := b.PerformIndividualBenchMark([]int{1})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestSetBenchmarkCountsAllRows(t *testing.T) {
	s := &stubStrategy{all: []*order{{id: 1}, {id: 2}, {id: 3}}}
	b := newTestBencher(t, s)

	res, err := b.PerformSetBenchmark()
	if err != nil {
		t.Fatalf("PerformSetBenchmark failed: %v", err)
	}
	if res.RowCount != 3 {
		t.Errorf("RowCount = %d, want 3", res.RowCount)
	}
	if res.Kind != SetBenchmark {
		t.Errorf("Kind = %v, want set", res.Kind)
	}
	if res.FetchTime < 0 || res.EnumerationTime < 0 {
		t.Errorf("durations = %v/%v, want non-negative", res.FetchTime, res.EnumerationTime)
	}
}

func TestSetBenchmarkAbortsOnFailedElement(t *testing.T) {
	// third of four elements fails: the count is the failure sentinel, not 2
	s := &stubStrategy{all: []*order{{id: 101}, {id: 102}, {id: -1}, {id: 104}}}
	b := newTestBencher(t, s)

	res, err := b.PerformSetBenchmark()
	if err != nil {
		t.Fatalf("PerformSetBenchmark failed: %v", err)
	}
	if res.RowCount != FailureRowCount {
		t.Errorf("RowCount = %d, want %d", res.RowCount, FailureRowCount)
	}
	if !res.Failed() {
		t.Error("Failed() = false, want true")
	}
}

func TestSetBenchmarkAbortsOnNilElement(t *testing.T) {
	s := &stubStrategy{all: []*order{{id: 1}, nil, {id: 3}}}
	b := newTestBencher(t, s)

	res, err := b.PerformSetBenchmark()
	if err != nil {
		t.Fatalf("PerformSetBenchmark failed: %v", err)
	}
	if res.RowCount != FailureRowCount {
		t.Errorf("RowCount = %d, want %d", res.RowCount, FailureRowCount)
	}
}

func TestAsymmetricFailurePolicy(t *testing.T) {
	// the same four rows: the set walk aborts, the individual loop keeps going
	rows := []*order{{id: 101}, {id: 102}, {id: -1}, {id: 104}}
	byKey := map[int]*order{101: rows[0], 102: rows[1], 103: rows[2], 104: rows[3]}
	b := newTestBencher(t, &stubStrategy{byKey: byKey, all: rows})

	setRes, err := b.PerformSetBenchmark()
	if err != nil {
		t.Fatalf("PerformSetBenchmark failed: %v", err)
	}
	if setRes.RowCount != FailureRowCount {
		t.Errorf("set RowCount = %d, want %d", setRes.RowCount, FailureRowCount)
	}

	indRes, err := b.PerformIndividualBenchMark([]int{101, 102, 103, 104})
	if err != nil {
		t.Fatalf("PerformIndividualBenchMark failed: %v", err)
	}
	if indRes.RowCount != 3 {
		t.Errorf("individual RowCount = %d, want 3", indRes.RowCount)
	}
}

func TestSetBenchmarkPropagatesFetchError(t *testing.T) {
	boom := errors.New("query failed")
	b := newTestBencher(t, &stubStrategy{setErr: boom})

	_, err := b.PerformSetBenchmark()
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestSetBenchmarkPropagatesCursorError(t *testing.T) {
	boom := errors.New("cursor broke")
	set := &errSet{elems: []*order{{id: 1}, {id: 2}}, err: boom}
	b := newTestBencher(t, &cursorStrategy{set: set})

	_, err := b.PerformSetBenchmark()
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

// cursorStrategy hands out a fixed cursor, for error injection
type cursorStrategy struct {
	set Set[order]
}

func (s *cursorStrategy) FetchIndividual(key int) (*order, error) { return nil, nil }
func (s *cursorStrategy) FetchSet() (Set[order], error)           { return s.set, nil }
func (s *cursorStrategy) Name() string                            { return "cursor" }
func (s *cursorStrategy) UsesCaching() bool                       { return false }
func (s *cursorStrategy) UsesChangeTracking() bool                { return false }

func TestResultCarriesStrategyMetadata(t *testing.T) {
	b := newTestBencher(t, &stubStrategy{})
	res, err := b.PerformIndividualBenchMark(nil)
	if err != nil {
		t.Fatalf("PerformIndividualBenchMark failed: %v", err)
	}
	if res.Strategy != "stub v1.0 (test)" {
		t.Errorf("Strategy = %q", res.Strategy)
	}
	if res.UsesCaching {
		t.Error("UsesCaching = true, want false")
	}
	if !res.UsesChangeTracking {
		t.Error("UsesChangeTracking = false, want true")
	}
}

func TestSliceSetWalk(t *testing.T) {
	set := NewSliceSet([]*order{{id: 1}, {id: 2}})
	var ids []int
	for set.Next() {
		ids = append(ids, set.Element().id)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("ids = %v, want [1 2]", ids)
	}
	if set.Next() {
		t.Error("Next after end = true, want false")
	}
	if err := set.Err(); err != nil {
		t.Errorf("Err = %v, want nil", err)
	}
}
