//go:build !darwin && !linux && !freebsd && !windows

package dl

const Default uintptr = 0

func Open(name string) (uintptr, error) {
	return 0, ErrUnsupported
}

func Lookup(handle uintptr, name string) (uintptr, error) {
	return 0, ErrUnsupported
}

func Call(fn uintptr, args ...uintptr) (uintptr, uintptr) {
	panic("dl: " + ErrUnsupported.Error())
}

func NewCallback(fn any) uintptr {
	return 0
}

func LastError() uintptr {
	return 0
}
