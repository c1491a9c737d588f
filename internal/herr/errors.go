// Package herr defines the small error taxonomy used at the boundaries of
// the intra-prediction core. Internal hot-path kernels panic on programmer
// precondition violations (unsupported block size, mode out of range); the
// exported entry points in intra and search convert those into recoverable
// errors so a host application is never handed a process crash from a
// malformed top-level call.
package herr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel preconditions. Use errors.Is against these, not string matching.
var (
	// ErrUnsupportedBlockSize is returned when nT is not one of 4, 8, 16, 32.
	ErrUnsupportedBlockSize = errors.New("herr: unsupported transform block size")

	// ErrModeOutOfRange is returned when an intra mode falls outside [0,34].
	ErrModeOutOfRange = errors.New("herr: intra mode out of range")

	// ErrAnalyserFailed wraps a failure returned by the external TB split
	// analyser; the search strategy that produced it has already released
	// every enc_tb it had accumulated before this error reaches the caller.
	ErrAnalyserFailed = errors.New("herr: transform-tree analyser failed")
)

// Wrap annotates err with msg using github.com/pkg/errors, preserving the
// original error for errors.Is/errors.As. A nil err returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}

// Wrapf is Wrap with fmt-style formatting.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}

// WrapAnalyserFailed joins err under ErrAnalyserFailed so callers can match
// either with errors.Is, per the TBSplitAnalyser failure contract of
// spec.md §7.
func WrapAnalyserFailed(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrAnalyserFailed, err)
}
