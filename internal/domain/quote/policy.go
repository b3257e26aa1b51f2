package quote

import (
	"errors"
	"time"
)

var ErrNonPositiveWindow = errors.New("validity window must be positive")

// ValidityPolicy holds the configurable validity windows for generated
// quotes. The bundled window is typically longer than the single-request
// one, since a bundle reflects a larger commitment to the supplier.
type ValidityPolicy struct {
	single  time.Duration
	bundled time.Duration
}

func NewValidityPolicy(single, bundled time.Duration) (ValidityPolicy, error) {
	if single <= 0 || bundled <= 0 {
		return ValidityPolicy{}, ErrNonPositiveWindow
	}
	return ValidityPolicy{single: single, bundled: bundled}, nil
}

func (p ValidityPolicy) SingleExpiry(now time.Time) time.Time {
	return now.Add(p.single)
}

func (p ValidityPolicy) BundledExpiry(now time.Time) time.Time {
	return now.Add(p.bundled)
}
