package usecase

import (
	"errors"
	"fmt"

	"pagination-srv/internal/pagerange"
	"pagination-srv/pkg/paginator"
)

// resolveOptions applies configured defaults to the optional request knobs and
// rejects values the service is not willing to serve.
func (uc *implUseCase) resolveOptions(radius *int, policy string) (int, paginator.Policy, error) {
	r := uc.cfg.DefaultRadius
	if radius != nil {
		r = *radius
	}
	if r < 0 {
		return 0, "", fmt.Errorf("%w: radius=%d", pagerange.ErrOutOfRange, r)
	}
	if r > uc.cfg.MaxRadius {
		return 0, "", fmt.Errorf("%w: radius=%d, max=%d", pagerange.ErrRadiusTooLarge, r, uc.cfg.MaxRadius)
	}

	p := uc.cfg.DefaultPolicy
	if policy != "" {
		p = paginator.Policy(policy)
	}
	if !p.Valid() {
		return 0, "", fmt.Errorf("%w: %q", pagerange.ErrInvalidPolicy, policy)
	}

	return r, p, nil
}

// mapRangeError translates core paginator errors into domain errors.
func mapRangeError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, paginator.ErrOutOfRange):
		return fmt.Errorf("%w: %v", pagerange.ErrOutOfRange, err)
	case errors.Is(err, paginator.ErrInvalidPolicy):
		return fmt.Errorf("%w: %v", pagerange.ErrInvalidPolicy, err)
	default:
		return err
	}
}
