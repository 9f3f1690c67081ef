package paginator

import "fmt"

// Policy selects how the visible window around the current page is computed.
type Policy string

const (
	// PolicySymmetricUnion keeps the fixed window
	// [currentPage-radius, currentPage+radius] clipped to [1, totalPages].
	// The window never shifts to compensate for clipping, so the current page
	// stays centered among the shown numbers whenever it can be.
	PolicySymmetricUnion Policy = "symmetric-union"

	// PolicyClampedWindow keeps a constant-width window of
	// min(2*radius+1, totalPages) pages shifted inward at the boundaries.
	// Near an edge the current page sits off-center but the number of visible
	// pages stays the same.
	PolicyClampedWindow Policy = "clamped-window"
)

// DefaultPolicy is the policy used by PageRange.
const DefaultPolicy = PolicySymmetricUnion

// Valid reports whether p is a known policy.
func (p Policy) Valid() bool {
	return p == PolicySymmetricUnion || p == PolicyClampedWindow
}

// PageRange computes the ordered marker sequence for a page-selector control
// using the default policy. The result always starts with page 1 and ends
// with the last page, contains the current page, and collapses every run of
// two or more hidden pages into a single ellipsis. A gap of exactly one page
// is shown outright since collapsing it saves no width. Totals of 0 or 1
// produce an empty sequence (the control is not rendered).
func PageRange(currentPage, totalPages, radius int) ([]Marker, error) {
	return PageRangeWithPolicy(currentPage, totalPages, radius, DefaultPolicy)
}

// PageRangeWithPolicy is PageRange with an explicit window policy.
func PageRangeWithPolicy(currentPage, totalPages, radius int, policy Policy) ([]Marker, error) {
	if err := checkRangeInput(currentPage, totalPages, radius); err != nil {
		return nil, err
	}
	if totalPages <= 1 {
		return []Marker{}, nil
	}

	var lo, hi int
	switch policy {
	case PolicySymmetricUnion:
		lo = currentPage - radius
		hi = currentPage + radius
	case PolicyClampedWindow:
		width := 2*radius + 1
		if width > totalPages {
			width = totalPages
		}
		lo = currentPage - radius
		if lo < 1 {
			lo = 1
		}
		if lo+width-1 > totalPages {
			lo = totalPages - width + 1
		}
		hi = lo + width - 1
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPolicy, policy)
	}

	if lo < 1 {
		lo = 1
	}
	if hi > totalPages {
		hi = totalPages
	}

	return emitMarkers(lo, hi, totalPages), nil
}

// checkRangeInput enforces the caller contract. The valid current page range
// is [1, max(totalPages, 1)]; totals of 0 and 1 are valid degenerate inputs.
func checkRangeInput(currentPage, totalPages, radius int) error {
	if totalPages < 0 {
		return fmt.Errorf("%w: total_pages=%d", ErrOutOfRange, totalPages)
	}
	if radius < 0 {
		return fmt.Errorf("%w: radius=%d", ErrOutOfRange, radius)
	}
	if currentPage < 1 {
		return fmt.Errorf("%w: current_page=%d", ErrOutOfRange, currentPage)
	}
	last := totalPages
	if last < 1 {
		last = 1
	}
	if currentPage > last {
		return fmt.Errorf("%w: current_page=%d exceeds total_pages=%d", ErrOutOfRange, currentPage, totalPages)
	}
	return nil
}

// emitMarkers renders the kept pages (1, lo..hi, totalPages) in ascending
// order, filling single-page gaps and collapsing larger ones to one ellipsis.
func emitMarkers(lo, hi, totalPages int) []Marker {
	kept := make([]int, 0, hi-lo+3)
	if lo > 1 {
		kept = append(kept, 1)
	}
	for n := lo; n <= hi; n++ {
		kept = append(kept, n)
	}
	if hi < totalPages {
		kept = append(kept, totalPages)
	}

	markers := make([]Marker, 0, len(kept)+2)
	markers = append(markers, Page(kept[0]))
	for i := 1; i < len(kept); i++ {
		prev, next := kept[i-1], kept[i]
		switch gap := next - prev; {
		case gap == 2:
			// collapsing one page saves no width; show it instead
			markers = append(markers, Page(prev+1))
		case gap > 2:
			markers = append(markers, Ellipsis())
		}
		markers = append(markers, Page(next))
	}
	return markers
}
