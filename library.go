package glload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// envLibraryPath names a directory searched before the system paths.
const envLibraryPath = "GLLOAD_LIBRARY_PATH"

// library is one candidate shared object. It is opened at most once and
// the handle is kept for the life of the process.
type library struct {
	once   sync.Once
	handle uintptr
	err    error
}

// libraries caches every candidate the process has tried to open.
type libraries struct {
	sys system
	m   sync.Map // name -> *library
}

func (ls *libraries) open(name string) (uintptr, error) {
	v, ok := ls.m.Load(name)
	if !ok {
		v, _ = ls.m.LoadOrStore(name, new(library))
	}
	lib := v.(*library)
	lib.once.Do(func() {
		lib.handle, lib.err = ls.sys.Open(ls.locate(name))
	})
	return lib.handle, lib.err
}

// locate prefers a copy of name inside GLLOAD_LIBRARY_PATH.
func (ls *libraries) locate(name string) string {
	dir := ls.sys.Getenv(envLibraryPath)
	if dir == "" || filepath.IsAbs(name) {
		return name
	}
	fn := filepath.Join(dir, name)
	if _, err := os.Stat(fn); err == nil {
		return fn
	}
	return name
}

// lookup returns symbol from the first library in names that exports it,
// along with that library's name.
func (ls *libraries) lookup(names []string, symbol string) (uintptr, string, error) {
	var errs []error
	for _, name := range names {
		handle, err := ls.open(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		addr, err := ls.sys.Lookup(handle, symbol)
		if err == nil && addr != 0 {
			return addr, name, nil
		}
		if err == nil {
			err = fmt.Errorf("%s: %s resolved to nil", name, symbol)
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return 0, "", fmt.Errorf("no candidate libraries for %s", symbol)
	}
	return 0, "", errors.Join(errs...)
}
