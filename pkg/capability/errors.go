// Package capability holds the error taxonomy shared by every capability
// interface and the holders built on top of them.
package capability

import "github.com/pkg/errors"

var (
	// ErrNotImplemented marks an operation deliberately left unbuilt.
	ErrNotImplemented = errors.New("not implemented")
	// ErrNotFound is returned when a lookup misses.
	ErrNotFound = errors.New("not found")
	// ErrUnsupportedLocale is returned when no greeter speaks the requested locale.
	ErrUnsupportedLocale = errors.New("unsupported locale")
	// ErrInvalidAmount is returned for negative payment amounts.
	ErrInvalidAmount = errors.New("invalid amount")
)

// NotImplemented returns an error for op that matches ErrNotImplemented.
func NotImplemented(op string) error {
	return errors.Wrap(ErrNotImplemented, op)
}

// IsNotImplemented reports whether err was caused by an unbuilt operation.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}

// IsNotFound reports whether err was caused by a lookup miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
