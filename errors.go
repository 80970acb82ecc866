package droidicon

import "errors"

// Errors reported by Run. Each is wrapped together with the underlying
// cause and the failing path, so callers match with errors.Is and still
// see the original error text.
var (
	// ErrSourceNotFound is returned when the source path is missing,
	// unreadable or not a regular file. Nothing has been written.
	ErrSourceNotFound = errors.New("droidicon: source not found")

	// ErrDecode is returned when the source exists but is not a decodable
	// raster image. Nothing has been written.
	ErrDecode = errors.New("droidicon: cannot decode source")

	// ErrEncodeOrWrite is returned when an icon cannot be rendered, encoded
	// or written. Icons written before the failure stay on disk.
	ErrEncodeOrWrite = errors.New("droidicon: cannot write icon")

	// ErrInvalidOptions is returned when Run is called with an unusable
	// configuration. Nothing has been read or written.
	ErrInvalidOptions = errors.New("droidicon: invalid options")
)
