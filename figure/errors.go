package figure

import "github.com/pkg/errors"

// Errors returned by the directive constructors and by Save.
// Use errors.Cause to compare.
var (
	ErrLengthMismatch    = errors.New("data lengths mismatch")
	ErrEmptyData         = errors.New("empty data")
	ErrInvalidStyle      = errors.New("invalid style")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

func lengthMismatch(a, b int) error {
	return errors.Wrapf(ErrLengthMismatch, "%d != %d", a, b)
}
