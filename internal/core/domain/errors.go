package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownTarget is returned when the target flag names a platform
	// that is not in the target table.
	ErrUnknownTarget = zerr.New("unknown build target")

	// ErrMissingTarget is returned when no usable target flag was found in
	// the raw arguments.
	ErrMissingTarget = zerr.New("no build target provided")

	// ErrMissingOutputPath is returned when no usable output flag was found
	// or its value is empty.
	ErrMissingOutputPath = zerr.New("no output path provided")

	// ErrBuildFailed is returned when the backend reports a build failure.
	// The backend's error text is attached as metadata.
	ErrBuildFailed = zerr.New("build failed")
)
