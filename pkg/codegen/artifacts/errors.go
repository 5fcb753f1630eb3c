package artifacts

import "errors"

var (
	// ErrUnknownLocation is returned for files with no matching output root
	ErrUnknownLocation = errors.New("unknown output location")

	// ErrPathEscapesRoot is returned for absolute paths or paths leaving the output root
	ErrPathEscapesRoot = errors.New("path escapes output root")
)
