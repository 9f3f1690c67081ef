package paginator

import "errors"

var (
	// ErrOutOfRange - the caller supplied a page-range input that violates the
	// contract (current_page < 1, total_pages < 0, radius < 0, or current_page
	// beyond the last page). Surfaced instead of clamping so upstream
	// page-index bookkeeping bugs are not masked.
	ErrOutOfRange = errors.New("paginator: page range input out of range")

	// ErrInvalidPolicy - unknown page-range policy value.
	ErrInvalidPolicy = errors.New("paginator: unknown page range policy")
)
