package fabric

import "errors"

var (
	// ErrInvalidDimension is returned when rows or columns is below two.
	ErrInvalidDimension = errors.New("fabric: invalid dimension")

	// ErrInvalidSpacing is returned when spacing is not a positive finite number.
	ErrInvalidSpacing = errors.New("fabric: invalid spacing")

	// ErrInvalidFalloff is returned for a falloff exponent other than 1 or 2.
	ErrInvalidFalloff = errors.New("fabric: invalid falloff")

	// ErrInvalidEpsilon is returned when epsilon is not a positive finite number.
	ErrInvalidEpsilon = errors.New("fabric: invalid epsilon")
)
