package paginator

import "fmt"

// Numbers returns the page numbers of the numeric markers in order,
// skipping ellipses.
func Numbers(markers []Marker) []int {
	nums := make([]int, 0, len(markers))
	for _, m := range markers {
		if !m.IsEllipsis() {
			nums = append(nums, m.Number())
		}
	}
	return nums
}

// ValidateSequence checks the structural invariants of a marker sequence for
// the given page total: boundary anchors first and last, strictly ascending
// numbers inside [1, totalPages], no adjacent ellipses, no leading or trailing
// ellipsis, and no gap of exactly one hidden page (those must be shown, not
// collapsed). An empty sequence is valid only when totalPages <= 1.
func ValidateSequence(markers []Marker, totalPages int) error {
	if totalPages <= 1 {
		if len(markers) != 0 {
			return fmt.Errorf("expected empty sequence for total_pages=%d, got %d markers", totalPages, len(markers))
		}
		return nil
	}
	if len(markers) == 0 {
		return fmt.Errorf("empty sequence for total_pages=%d", totalPages)
	}

	if first := markers[0]; first.IsEllipsis() || first.Number() != 1 {
		return fmt.Errorf("sequence must start with page 1, got %s", first)
	}
	if last := markers[len(markers)-1]; last.IsEllipsis() || last.Number() != totalPages {
		return fmt.Errorf("sequence must end with page %d, got %s", totalPages, last)
	}

	prev := markers[0].Number()
	afterEllipsis := false
	for _, m := range markers[1:] {
		if m.IsEllipsis() {
			if afterEllipsis {
				return fmt.Errorf("adjacent ellipses after page %d", prev)
			}
			afterEllipsis = true
			continue
		}

		n := m.Number()
		if n < 1 || n > totalPages {
			return fmt.Errorf("page %d outside [1, %d]", n, totalPages)
		}
		if n <= prev {
			return fmt.Errorf("pages not strictly ascending: %d after %d", n, prev)
		}
		if afterEllipsis {
			if n-prev <= 2 {
				return fmt.Errorf("ellipsis hides %d page(s) between %d and %d", n-prev-1, prev, n)
			}
		} else if n-prev != 1 {
			return fmt.Errorf("hidden gap between %d and %d without ellipsis", prev, n)
		}
		prev = n
		afterEllipsis = false
	}

	if afterEllipsis {
		return fmt.Errorf("sequence ends with an ellipsis after page %d", prev)
	}
	return nil
}
