package paginator

import (
	"errors"
	"reflect"
	"testing"
)

func TestPageRange(t *testing.T) {
	t.Run("centered window fills the short low gap", func(t *testing.T) {
		// kept pages {1} ∪ [3..7] ∪ {10}: the gap below the window is exactly
		// one page wide, so page 2 is shown; the gap above collapses
		got, err := PageRange(5, 10, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []Marker{Page(1), Page(2), Page(3), Page(4), Page(5), Page(6), Page(7), Ellipsis(), Page(10)}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("window covers everything", func(t *testing.T) {
		got, err := PageRange(1, 5, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []Marker{Page(1), Page(2), Page(3), Page(4), Page(5)}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("anchors contiguous with window", func(t *testing.T) {
		got, err := PageRange(3, 5, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []Marker{Page(1), Page(2), Page(3), Page(4), Page(5)}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("single page renders nothing", func(t *testing.T) {
		got, err := PageRange(1, 1, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty sequence, got %v", got)
		}
	})

	t.Run("zero pages renders nothing", func(t *testing.T) {
		got, err := PageRange(1, 0, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty sequence, got %v", got)
		}
	})

	t.Run("anchor adjacent to window start gets no filler", func(t *testing.T) {
		got, err := PageRange(4, 20, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []Marker{Page(1), Page(2), Page(3), Page(4), Page(5), Page(6), Ellipsis(), Page(20)}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("gap of two is filled not collapsed", func(t *testing.T) {
		// kept pages {1, 3, 10}: the single page 2 must be shown, not hidden
		got, err := PageRange(3, 10, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []Marker{Page(1), Page(2), Page(3), Ellipsis(), Page(10)}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("zero radius keeps anchors and current only", func(t *testing.T) {
		got, err := PageRange(5, 10, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []Marker{Page(1), Ellipsis(), Page(5), Ellipsis(), Page(10)}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("small totals never produce an ellipsis", func(t *testing.T) {
		for total := 2; total <= 3; total++ {
			for radius := 0; radius <= 5; radius++ {
				for current := 1; current <= total; current++ {
					got, err := PageRange(current, total, radius)
					if err != nil {
						t.Fatalf("PageRange(%d, %d, %d): %v", current, total, radius, err)
					}
					for _, m := range got {
						if m.IsEllipsis() {
							t.Errorf("PageRange(%d, %d, %d) produced an ellipsis: %v", current, total, radius, got)
						}
					}
				}
			}
		}
	})
}

func TestPageRange_InvalidInput(t *testing.T) {
	cases := []struct {
		name                string
		current, total, rad int
	}{
		{"current page beyond total", 7, 5, 2},
		{"current page below one", 0, 5, 2},
		{"negative current page", -3, 5, 2},
		{"negative total", 1, -1, 2},
		{"negative radius", 1, 5, -1},
		{"current page beyond empty total", 2, 0, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PageRange(tc.current, tc.total, tc.rad)
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("expected ErrOutOfRange, got markers=%v err=%v", got, err)
			}
		})
	}

	t.Run("unknown policy", func(t *testing.T) {
		_, err := PageRangeWithPolicy(1, 5, 2, Policy("zigzag"))
		if !errors.Is(err, ErrInvalidPolicy) {
			t.Fatalf("expected ErrInvalidPolicy, got %v", err)
		}
	})
}

func TestPageRange_Invariants(t *testing.T) {
	policies := []Policy{PolicySymmetricUnion, PolicyClampedWindow}

	for _, policy := range policies {
		for total := 0; total <= 30; total++ {
			last := total
			if last < 1 {
				last = 1
			}
			for current := 1; current <= last; current++ {
				for radius := 0; radius <= 4; radius++ {
					got, err := PageRangeWithPolicy(current, total, radius, policy)
					if err != nil {
						t.Fatalf("%s PageRange(%d, %d, %d): %v", policy, current, total, radius, err)
					}

					if err := ValidateSequence(got, total); err != nil {
						t.Fatalf("%s PageRange(%d, %d, %d) = %v: %v", policy, current, total, radius, got, err)
					}

					// current page must always be rendered
					if total >= 2 {
						found := false
						for _, n := range Numbers(got) {
							if n == current {
								found = true
								break
							}
						}
						if !found {
							t.Fatalf("%s PageRange(%d, %d, %d) = %v: current page missing", policy, current, total, radius, got)
						}
					}

					// deterministic: same input, same output
					again, err := PageRangeWithPolicy(current, total, radius, policy)
					if err != nil {
						t.Fatalf("%s PageRange(%d, %d, %d) second call: %v", policy, current, total, radius, err)
					}
					if !reflect.DeepEqual(got, again) {
						t.Fatalf("%s PageRange(%d, %d, %d) not deterministic: %v vs %v", policy, current, total, radius, got, again)
					}
				}
			}
		}
	}
}

func TestPageRange_SymmetricWindowBounds(t *testing.T) {
	// every shown number is an anchor, a gap filler, or within radius of the
	// current page
	for total := 2; total <= 25; total++ {
		for current := 1; current <= total; current++ {
			for radius := 0; radius <= 3; radius++ {
				got, err := PageRange(current, total, radius)
				if err != nil {
					t.Fatalf("PageRange(%d, %d, %d): %v", current, total, radius, err)
				}
				nums := Numbers(got)
				for i, n := range nums {
					if n == 1 || n == total {
						continue
					}
					// a filler bridging a gap of two sits between consecutive
					// neighbors and may fall outside the window
					if i > 0 && i < len(nums)-1 && nums[i-1] == n-1 && nums[i+1] == n+1 {
						continue
					}
					if n < current-radius || n > current+radius {
						t.Fatalf("PageRange(%d, %d, %d): page %d outside window", current, total, radius, n)
					}
				}
			}
		}
	}
}

func TestPageRangeWithPolicy_ClampedWindow(t *testing.T) {
	t.Run("window shifts right at the low boundary", func(t *testing.T) {
		got, err := PageRangeWithPolicy(2, 10, 2, PolicyClampedWindow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []Marker{Page(1), Page(2), Page(3), Page(4), Page(5), Ellipsis(), Page(10)}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("window shifts left at the high boundary", func(t *testing.T) {
		got, err := PageRangeWithPolicy(10, 10, 2, PolicyClampedWindow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []Marker{Page(1), Ellipsis(), Page(6), Page(7), Page(8), Page(9), Page(10)}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("policies agree away from boundaries", func(t *testing.T) {
		symmetric, err := PageRangeWithPolicy(5, 9, 2, PolicySymmetricUnion)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clamped, err := PageRangeWithPolicy(5, 9, 2, PolicyClampedWindow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(symmetric, clamped) {
			t.Errorf("symmetric %v != clamped %v", symmetric, clamped)
		}
	})

	t.Run("policies differ near boundaries", func(t *testing.T) {
		symmetric, err := PageRangeWithPolicy(10, 10, 2, PolicySymmetricUnion)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []Marker{Page(1), Ellipsis(), Page(8), Page(9), Page(10)}
		if !reflect.DeepEqual(symmetric, want) {
			t.Errorf("symmetric got %v, want %v", symmetric, want)
		}
	})
}

func TestValidateSequence(t *testing.T) {
	cases := []struct {
		name    string
		markers []Marker
		total   int
		wantErr bool
	}{
		{"valid with ellipses", []Marker{Page(1), Ellipsis(), Page(5), Ellipsis(), Page(10)}, 10, false},
		{"valid contiguous", []Marker{Page(1), Page(2), Page(3)}, 3, false},
		{"valid empty for single page", nil, 1, false},
		{"non-empty for single page", []Marker{Page(1)}, 1, true},
		{"empty for many pages", nil, 10, true},
		{"missing first anchor", []Marker{Page(2), Page(3)}, 3, true},
		{"missing last anchor", []Marker{Page(1), Page(2)}, 3, true},
		{"leading ellipsis", []Marker{Ellipsis(), Page(3), Ellipsis(), Page(10)}, 10, true},
		{"trailing ellipsis", []Marker{Page(1), Ellipsis()}, 10, true},
		{"adjacent ellipses", []Marker{Page(1), Ellipsis(), Ellipsis(), Page(10)}, 10, true},
		{"hidden gap without ellipsis", []Marker{Page(1), Page(5), Ellipsis(), Page(10)}, 10, true},
		{"ellipsis hiding a single page", []Marker{Page(1), Ellipsis(), Page(3), Ellipsis(), Page(10)}, 10, true},
		{"not ascending", []Marker{Page(1), Ellipsis(), Page(9), Ellipsis(), Page(5), Ellipsis(), Page(10)}, 10, true},
		{"page out of bounds", []Marker{Page(1), Ellipsis(), Page(12), Ellipsis(), Page(10)}, 10, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSequence(tc.markers, tc.total)
			if tc.wantErr && err == nil {
				t.Errorf("expected validation error for %v", tc.markers)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error for %v: %v", tc.markers, err)
			}
		})
	}
}
