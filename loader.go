package glload

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/abemedia/glload/internal/dl"
	"github.com/abemedia/glload/internal/osthread"
)

// system is the native surface the loader runs on.
type system interface {
	Open(name string) (uintptr, error)
	Lookup(handle uintptr, name string) (uintptr, error)
	// Call invokes fn and returns its result and the errno or last-error
	// value observed right after the call.
	Call(fn uintptr, args ...uintptr) (uintptr, uintptr)
	NewCallback(fn any) uintptr
	LastError() uintptr
	Getenv(key string) string
	ThreadID() uint64
}

type nativeSystem struct{}

func (nativeSystem) Open(name string) (uintptr, error) { return dl.Open(name) }

func (nativeSystem) Lookup(handle uintptr, name string) (uintptr, error) {
	return dl.Lookup(handle, name)
}

func (nativeSystem) Call(fn uintptr, args ...uintptr) (uintptr, uintptr) {
	return dl.Call(fn, args...)
}

func (nativeSystem) NewCallback(fn any) uintptr { return dl.NewCallback(fn) }
func (nativeSystem) LastError() uintptr         { return dl.LastError() }
func (nativeSystem) Getenv(key string) string   { return os.Getenv(key) }
func (nativeSystem) ThreadID() uint64           { return osthread.ID() }

// loader is the process-wide binding state. Everything the call path reads
// is accessed atomically; the only waiting is the spin on the decision gate.
type loader struct {
	requested  atomic.Int32 // WSI
	active     atomic.Int32 // WSI
	explicit   atomic.Bool
	envChecked atomic.Bool
	gate       atomic.Int32
	detections atomic.Int64
	epoch      atomic.Uint64 // bumped by every setWSI

	settings atomic.Pointer[settings]
	sink     atomic.Pointer[sink]
	owner    owner
	xerrors  errorTable

	xhandlerOnce sync.Once
	xhandler     uintptr

	plat     platform
	sys      system
	libs     *libraries
	backends [WSIEGL + 1]*backend

	glGetError, eglGetError *Proc
	glXGetCurrentDisplay    *Proc
	xSync, xGetErrorText    *Proc
	xSetErrorHandler        *Proc
}

// std backs every package-level function and entry point.
var std = newLoader(defaultPlatform(), nativeSystem{})

func newLoader(plat platform, sys system) *loader {
	l := &loader{
		plat: plat,
		sys:  sys,
		libs: &libraries{sys: sys},
	}
	if plat.supports(WSIWGL) {
		l.backends[WSIWGL] = newWGL(l)
	}
	if plat.supports(WSIGLX) {
		l.backends[WSIGLX] = newGLX(l)
	}
	if plat.supports(WSIEGL) {
		l.backends[WSIEGL] = newEGL(l)
	}

	l.glGetError = l.newProc(FamilyGL, "glGetError")
	l.eglGetError = l.newProc(FamilyEGL, "eglGetError")
	l.glXGetCurrentDisplay = l.newProc(FamilyGLX, "glXGetCurrentDisplay")
	l.xSync = l.newProc(familyX11, "XSync")
	l.xGetErrorText = l.newProc(familyX11, "XGetErrorText")
	l.xSetErrorHandler = l.newProc(familyX11, "XSetErrorHandler")
	return l
}

// backend returns the resolver for w, or nil if w cannot exist here.
func (l *loader) backend(w WSI) *backend {
	if !w.concrete() {
		return nil
	}
	return l.backends[w]
}

// resolve computes the address of name for family f. It is a pure function
// of the name and the selected backend, so racing callers agree.
func (l *loader) resolve(f Family, name string) uintptr {
	if f == familyX11 {
		addr, _, _ := l.libs.lookup(l.plat.x11, name)
		return addr
	}

	w := l.resolveWSI()
	if f != FamilyGL {
		w = f.wsi()
	}
	b := l.backend(w)
	if b == nil {
		return 0
	}
	addr := b.procAddress(name)
	if addr == 0 {
		return 0
	}
	if f == FamilyGL {
		l.active.Store(int32(w))
	}
	if w == WSIGLX {
		l.installXErrorHandler()
	}
	return addr
}

// GetProcAddress resolves name through the active backend without caching.
// It returns 0 if no backend can supply it.
func GetProcAddress(name string) uintptr {
	return std.resolve(FamilyGL, name)
}

// ProcAddress resolves name through the backend w. It returns 0 if w is
// not available on this platform or does not export name.
func ProcAddress(w WSI, name string) uintptr {
	std.resolveWSI()
	b := std.backend(w)
	if b == nil {
		return 0
	}
	return b.procAddress(name)
}
