package vector

import "errors"

var (
	// ErrInvalidRange is returned when a half-open index range does not fit the vector.
	ErrInvalidRange = errors.New("invalid index range")

	ErrEmptyVector = errors.New("empty vector")

	// ErrShortData is returned when fewer values are supplied than requested.
	ErrShortData = errors.New("data shorter than requested length")

	ErrLengthMismatch = errors.New("vector length mismatch")
)
