//go:build darwin || linux || freebsd

package dl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Default is the pseudo-handle that searches every loaded object.
const Default uintptr = purego.RTLD_DEFAULT

// Open loads the named library with lazy binding and global visibility.
func Open(name string) (uintptr, error) {
	handle, err := purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrLibraryNotFound, name, err)
	}
	if handle == 0 {
		return 0, fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
	}
	return handle, nil
}

// Lookup returns the address of symbol name in the library handle.
func Lookup(handle uintptr, name string) (uintptr, error) {
	ptr, err := purego.Dlsym(handle, name)
	if err != nil || ptr == 0 {
		return 0, fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	return ptr, nil
}

// Call invokes the C function at fn and returns its result and errno.
func Call(fn uintptr, args ...uintptr) (uintptr, uintptr) {
	r1, _, errno := purego.SyscallN(fn, args...)
	return r1, errno
}

// NewCallback returns a C function pointer that calls fn.
func NewCallback(fn any) uintptr {
	return purego.NewCallback(fn)
}

// LastError is always zero on unix; errno is reported by Call.
func LastError() uintptr {
	return 0
}
