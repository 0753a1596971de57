package glload

import (
	"runtime"
	"strings"
	"sync"
)

// backend resolves entry points for one WSI. It asks the native query
// function first and falls back to looking the symbol up directly in its
// candidate libraries.
type backend struct {
	l   *loader
	wsi WSI

	libs      []string
	query     []string
	hallmarks []string

	// compat is searched for names with compatPrefix when libs fail.
	compatPrefix string
	compat       []string

	// invalid reports query results that mean "not found".
	invalid func(uintptr) bool

	queryOnce sync.Once
	queryAddr uintptr
}

func isNil(addr uintptr) bool { return addr == 0 }

// wglGetProcAddress returns 1, 2, 3 or -1 instead of NULL on some drivers.
func isWGLSentinel(addr uintptr) bool {
	switch addr {
	case 0, 1, 2, 3, ^uintptr(0):
		return true
	}
	return false
}

func newWGL(l *loader) *backend {
	return &backend{
		l:         l,
		wsi:       WSIWGL,
		libs:      l.plat.wgl,
		query:     []string{"wglGetProcAddress"},
		hallmarks: []string{"wglGetProcAddress", "wglCreateContext"},
		invalid:   isWGLSentinel,
	}
}

func newGLX(l *loader) *backend {
	return &backend{
		l:         l,
		wsi:       WSIGLX,
		libs:      l.plat.glx,
		query:     []string{"glXGetProcAddressARB", "glXGetProcAddress"},
		hallmarks: []string{"glXGetProcAddressARB", "glXQueryVersion"},
		invalid:   isNil,
	}
}

func newEGL(l *loader) *backend {
	return &backend{
		l:            l,
		wsi:          WSIEGL,
		libs:         l.plat.egl,
		query:        []string{"eglGetProcAddress"},
		hallmarks:    []string{"eglGetProcAddress", "eglGetDisplay"},
		compatPrefix: "gl",
		compat:       l.plat.eglCompat,
		invalid:      isNil,
	}
}

// queryFunc returns the native get-address entry point, resolved once.
func (b *backend) queryFunc() uintptr {
	b.queryOnce.Do(func() {
		for _, q := range b.query {
			if addr, _, err := b.l.libs.lookup(b.libs, q); err == nil {
				b.queryAddr = addr
				return
			}
		}
	})
	return b.queryAddr
}

func (b *backend) procAddress(name string) uintptr {
	if q := b.queryFunc(); q != 0 {
		buf, ptr := goStringToCString(name)
		addr, _ := b.l.sys.Call(q, ptr)
		runtime.KeepAlive(buf)
		if !b.invalid(addr) {
			return addr
		}
	}
	if addr, _, err := b.l.libs.lookup(b.libs, name); err == nil {
		return addr
	}
	if b.compatPrefix != "" && strings.HasPrefix(name, b.compatPrefix) {
		if addr, _, err := b.l.libs.lookup(b.compat, name); err == nil {
			return addr
		}
	}
	return 0
}

// probe reports the first candidate library that exports one of the
// backend's hallmark entry points.
func (b *backend) probe() (lib, symbol string, err error) {
	for _, h := range b.hallmarks {
		_, lib, err = b.l.libs.lookup(b.libs, h)
		if err == nil {
			return lib, h, nil
		}
	}
	return "", "", err
}

// BackendStatus describes whether a backend could serve this process.
type BackendStatus struct {
	WSI       WSI
	Supported bool   // the backend can exist on this OS
	Library   string // candidate library that answered the probe
	Symbol    string // hallmark entry point found in Library
	Err       error
}

// Available reports whether the probe found the backend.
func (s BackendStatus) Available() bool {
	return s.Supported && s.Err == nil
}

func (l *loader) probeAll() []BackendStatus {
	all := []WSI{WSIWGL, WSIGLX, WSIEGL}
	out := make([]BackendStatus, 0, len(all))
	for _, w := range all {
		st := BackendStatus{WSI: w}
		if b := l.backend(w); b != nil {
			st.Supported = true
			st.Library, st.Symbol, st.Err = b.probe()
		}
		out = append(out, st)
	}
	return out
}

// Probe checks every backend without changing which one is selected.
func Probe() []BackendStatus {
	return std.probeAll()
}
