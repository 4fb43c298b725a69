package r3d

import (
	"errors"
	"fmt"
)

// ErrMalformedScene is wrapped by every error that reports missing or
// invalid scene data: unresolved vertex or transform references, cameras
// with degenerate bases or view volumes, unknown modes. Such scenes are
// rejected before any rendering starts.
var ErrMalformedScene = errors.New("r3d: malformed scene")

// malformed returns an error wrapping ErrMalformedScene.
func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedScene, fmt.Sprintf(format, args...))
}
