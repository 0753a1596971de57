// Package dl opens shared libraries and looks up symbols in them.
//
// Handles returned by Open are never closed. Driver libraries register
// process-wide state and unloading them while other code still holds entry
// points is undefined.
package dl

import "errors"

var (
	// ErrLibraryNotFound is returned when a library cannot be opened.
	ErrLibraryNotFound = errors.New("library not found")

	// ErrSymbolNotFound is returned when a library does not export a symbol.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrUnsupported is returned on platforms without dynamic loading.
	ErrUnsupported = errors.New("dynamic loading not supported on this platform")
)
