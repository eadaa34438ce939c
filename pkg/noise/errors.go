package noise

import "errors"

// Sentinel errors shared across the library. Failure sites wrap these
// with fmt.Errorf("%w: ...") so callers can match them with errors.Is.
var (
	// ErrInvalidParam reports a parameter outside its documented range,
	// such as malformed bounds, a bad octave count, or a duplicate
	// gradient position.
	ErrInvalidParam = errors.New("noise: invalid parameter")

	// ErrOutOfMemory reports a raster whose cell count cannot be
	// represented or allocated.
	ErrOutOfMemory = errors.New("noise: out of memory")
)
