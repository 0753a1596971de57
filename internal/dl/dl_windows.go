//go:build windows

package dl

import (
	"errors"
	"fmt"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

// Default has no meaning on Windows; lookups against it always fail.
const Default uintptr = 0

// Open loads the named DLL.
func Open(name string) (uintptr, error) {
	handle, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrLibraryNotFound, name, err)
	}
	return uintptr(handle), nil
}

// Lookup returns the address of the exported function name.
func Lookup(handle uintptr, name string) (uintptr, error) {
	if handle == 0 {
		return 0, fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	ptr, err := windows.GetProcAddress(windows.Handle(handle), name)
	if err != nil || ptr == 0 {
		return 0, fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	return ptr, nil
}

// Call invokes the function at fn and returns its result and the thread's
// last-error value captured right after the call.
func Call(fn uintptr, args ...uintptr) (uintptr, uintptr) {
	r1, _, lastErr := purego.SyscallN(fn, args...)
	return r1, lastErr
}

// NewCallback returns a stdcall function pointer that calls fn.
func NewCallback(fn any) uintptr {
	return purego.NewCallback(fn)
}

// LastError returns the calling thread's last-error code.
func LastError() uintptr {
	var errno windows.Errno
	if errors.As(windows.GetLastError(), &errno) {
		return uintptr(errno)
	}
	return 0
}
