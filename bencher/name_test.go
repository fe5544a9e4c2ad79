package bencher

import "testing"

func TestFormatFrameworkName(t *testing.T) {
	got := FormatFrameworkName("pgx v%s (%s)", "5.8.0", "h1:abc")
	want := "pgx v5.8.0 (h1:abc)"
	if got != want {
		t.Errorf("FormatFrameworkName = %q, want %q", got, want)
	}
}

func TestFormatFrameworkNameDeterministic(t *testing.T) {
	first := FormatFrameworkName("riak-go-client v%s (%s)", "1.7.0", "h1:xyz")
	for i := 0; i < 10; i++ {
		if got := FormatFrameworkName("riak-go-client v%s (%s)", "1.7.0", "h1:xyz"); got != first {
			t.Fatalf("output changed between calls: %q vs %q", got, first)
		}
	}
}

func TestFrameworkNameUnknownModule(t *testing.T) {
	// a module that is not part of the build reports placeholders
	got := FrameworkName("thing v%s (%s)", "example.com/does/not/exist")
	want := "thing vdevel (unknown)"
	if got != want {
		t.Errorf("FrameworkName = %q, want %q", got, want)
	}
}
