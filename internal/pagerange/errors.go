package pagerange

import "errors"

// Domain errors
var (
	// ErrOutOfRange - current page, total pages or total items outside the valid range
	ErrOutOfRange = errors.New("pagerange: input out of range")

	// ErrRadiusTooLarge - requested radius exceeds the configured maximum
	ErrRadiusTooLarge = errors.New("pagerange: radius exceeds maximum")

	// ErrInvalidPolicy - unknown window policy value
	ErrInvalidPolicy = errors.New("pagerange: invalid policy")

	// ErrInvalidPageSize - page size outside the configured bounds
	ErrInvalidPageSize = errors.New("pagerange: invalid page size")
)
