package http

import (
	"errors"

	"pagination-srv/internal/pagerange"
	pkgErrors "pagination-srv/pkg/errors"
)

var (
	errWrongQuery = pkgErrors.NewHTTPError(
		400, "Invalid query parameters",
	)
	errOutOfRange = pkgErrors.NewHTTPError(
		400, "Current page is outside the valid page range",
	)
	errRadiusTooLarge = pkgErrors.NewHTTPError(
		400, "Radius exceeds the allowed maximum",
	)
	errInvalidPolicy = pkgErrors.NewHTTPError(
		400, "Unknown page-range policy",
	)
	errInvalidPageSize = pkgErrors.NewHTTPError(
		400, "Page size is outside the allowed range",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, pagerange.ErrOutOfRange):
		return errOutOfRange
	case errors.Is(err, pagerange.ErrRadiusTooLarge):
		return errRadiusTooLarge
	case errors.Is(err, pagerange.ErrInvalidPolicy):
		return errInvalidPolicy
	case errors.Is(err, pagerange.ErrInvalidPageSize):
		return errInvalidPageSize
	default:
		panic(err)
	}
}
