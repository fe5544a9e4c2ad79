package bencher

// Strategy is the contract a data-access framework adapter has to provide to
// be benchmarked. Fetch calls are issued one at a time from a single
// goroutine; implementations do not need to be safe for concurrent use.
type Strategy[T any] interface {
	// Fetches the element with the given key. A nil element together with a
	// nil error means the key does not exist.
	FetchIndividual(key int) (*T, error)
	// Fetches the full element set. The returned cursor may be lazy (work
	// deferred to Next) or eager, at the implementation's choice.
	FetchSet() (Set[T], error)
	// Human-readable framework name, used for reporting only
	Name() string
	// Whether the framework caches fetched elements
	UsesCaching() bool
	// Whether the framework tracks changes on fetched elements
	UsesChangeTracking() bool
}

// Set is a forward-only cursor over fetched elements, modeled after the
// database/sql rows contract so lazy adapters can wrap their native cursor
// directly.
type Set[T any] interface {
	// Advances to the next element; returns false at the end of the set or
	// when an error occurred.
	Next() bool
	// The current element. May be nil when the underlying source produced an
	// absent row.
	Element() *T
	// The error that stopped iteration, if any
	Err() error
	Close() error
}

// SliceSet adapts an eagerly fetched slice to the Set interface.
type SliceSet[T any] struct {
	elems []*T
	pos   int
}

func NewSliceSet[T any](elems []*T) *SliceSet[T] {
	return &SliceSet[T]{elems: elems, pos: -1}
}

func (s *SliceSet[T]) Next() bool {
	if s.pos+1 >= len(s.elems) {
		return false
	}
	s.pos++
	return true
}

func (s *SliceSet[T]) Element() *T {
	return s.elems[s.pos]
}

func (s *SliceSet[T]) Err() error { return nil }

func (s *SliceSet[T]) Close() error { return nil }
