package vlc

import (
	"errors"
	"fmt"
)

// Errors returned by the bindings.
var (
	// ErrUnavailable means libvlc could not be located or loaded.
	ErrUnavailable = errors.New("vlc: libvlc is not available")

	// ErrCreation means a native create call returned NULL for an object
	// kind whose contract requires a non-null result.
	ErrCreation = errors.New("vlc: native object creation failed")

	// ErrInvalidObject means an operation ran against an empty wrapper.
	ErrInvalidObject = errors.New("vlc: invalid object")
)

// errMsg fetches the last libvlc error message for the calling thread, or ""
// when none is set.
func errMsg() string {
	if libvlcErrMsg == nil {
		return ""
	}
	return goString(libvlcErrMsg())
}

// createError builds the hard construction failure for kinds that require a
// non-null native pointer.
func createError(kind string) error {
	if msg := errMsg(); msg != "" {
		return fmt.Errorf("%w: %s: %s", ErrCreation, kind, msg)
	}
	return fmt.Errorf("%w: %s", ErrCreation, kind)
}

// statusErr converts a native status return (0 on success) into an error.
// Non-ownership native failures are always surfaced, never retried.
func statusErr(op string, status int32) error {
	if status == 0 {
		return nil
	}
	if msg := errMsg(); msg != "" {
		return fmt.Errorf("vlc: %s: %s", op, msg)
	}
	return fmt.Errorf("vlc: %s failed (status %d)", op, status)
}
