package glload

import (
	"strings"
	"sync"
	"sync/atomic"
	"unsafe"
)

type fakeFunc func(args ...uintptr) uintptr

// fakeSystem is an in-memory stand-in for the dynamic loader. Every symbol
// gets a unique address; calling that address runs the registered func.
type fakeSystem struct {
	mu        sync.RWMutex
	libs      map[string]map[string]uintptr
	handles   map[uintptr]string
	opens     map[string]int
	funcs     map[uintptr]fakeFunc
	callbacks map[uintptr]any
	env       map[string]string
	next      uintptr

	tid     atomic.Uint64
	lastErr atomic.Uintptr
}

func newFakeSystem() *fakeSystem {
	f := &fakeSystem{
		libs:      make(map[string]map[string]uintptr),
		handles:   make(map[uintptr]string),
		opens:     make(map[string]int),
		funcs:     make(map[uintptr]fakeFunc),
		callbacks: make(map[uintptr]any),
		env:       make(map[string]string),
		next:      0x1000,
	}
	f.tid.Store(1)
	return f
}

// addLib registers a library exporting syms. A nil func returns 0.
func (f *fakeSystem) addLib(name string, syms map[string]fakeFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lib := make(map[string]uintptr, len(syms))
	for sym, fn := range syms {
		f.next += 0x10
		if fn == nil {
			fn = func(...uintptr) uintptr { return 0 }
		}
		f.funcs[f.next] = fn
		lib[sym] = f.next
	}
	f.libs[name] = lib
}

// addr returns the address lib exports for sym, or 0.
func (f *fakeSystem) addr(lib, sym string) uintptr {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.libs[lib][sym]
}

func (f *fakeSystem) openCount(name string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.opens[name]
}

func (f *fakeSystem) setenv(k, v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.env[k] = v
}

// queryFunc behaves like glXGetProcAddress over the symbols of lib,
// returning miss for unknown names.
func (f *fakeSystem) queryFunc(lib string, miss uintptr, calls *atomic.Int64) fakeFunc {
	return func(args ...uintptr) uintptr {
		if calls != nil {
			calls.Add(1)
		}
		if a := f.addr(lib, cStringToGo(args[0])); a != 0 {
			return a
		}
		return miss
	}
}

func (f *fakeSystem) Open(name string) (uintptr, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opens[name]++
	if _, ok := f.libs[name]; !ok {
		return 0, errNoLib(name)
	}
	for h, n := range f.handles {
		if n == name {
			return h, nil
		}
	}
	h := uintptr(len(f.handles) + 1)
	f.handles[h] = name
	return h, nil
}

func (f *fakeSystem) Lookup(handle uintptr, name string) (uintptr, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if a := f.libs[f.handles[handle]][name]; a != 0 {
		return a, nil
	}
	return 0, errNoSym(name)
}

func (f *fakeSystem) Call(fn uintptr, args ...uintptr) (uintptr, uintptr) {
	f.mu.RLock()
	call := f.funcs[fn]
	f.mu.RUnlock()
	if call == nil {
		panic("fake: call to unknown address")
	}
	return call(args...), f.lastErr.Load()
}

func (f *fakeSystem) NewCallback(fn any) uintptr {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next += 0x10
	f.callbacks[f.next] = fn
	return f.next
}

func (f *fakeSystem) callback(addr uintptr) any {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.callbacks[addr]
}

func (f *fakeSystem) LastError() uintptr { return f.lastErr.Load() }

func (f *fakeSystem) Getenv(key string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.env[key]
}

func (f *fakeSystem) ThreadID() uint64 { return f.tid.Load() }

type errNoLib string

func (e errNoLib) Error() string { return "fake: no library " + string(e) }

type errNoSym string

func (e errNoSym) Error() string { return "fake: no symbol " + string(e) }

func fakeUnix() platform {
	return platform{
		priority:  []WSI{WSIGLX, WSIEGL},
		glx:       []string{"libGL.so.1"},
		egl:       []string{"libEGL.so.1"},
		eglCompat: []string{"libGLESv2.so.2"},
		x11:       []string{"libX11.so.6"},
	}
}

func fakeWindows() platform {
	return platform{
		priority:  []WSI{WSIWGL, WSIEGL},
		wgl:       []string{"opengl32.dll"},
		egl:       []string{"libEGL.dll"},
		eglCompat: []string{"libGLESv2.dll"},
	}
}

// unsafeBytes views n bytes of native memory at ptr.
func unsafeBytes(ptr uintptr, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n)
}

// addGLX installs a libGL exporting glXGetProcAddressARB plus syms.
func (f *fakeSystem) addGLX(calls *atomic.Int64, syms map[string]fakeFunc) {
	all := map[string]fakeFunc{"glXQueryVersion": nil}
	for k, v := range syms {
		all[k] = v
	}
	all["glXGetProcAddressARB"] = f.queryFunc("libGL.so.1", 0, calls)
	f.addLib("libGL.so.1", all)
}

func (f *fakeSystem) addEGL(syms map[string]fakeFunc) {
	all := map[string]fakeFunc{"eglGetDisplay": nil}
	for k, v := range syms {
		all[k] = v
	}
	all["eglGetProcAddress"] = f.queryFunc("libEGL.so.1", 0, nil)
	f.addLib("libEGL.so.1", all)
}

type logRecorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *logRecorder) handle(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *logRecorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs...)
}

// count returns how many messages contain sub.
func (r *logRecorder) count(sub string) int {
	n := 0
	for _, m := range r.messages() {
		if strings.Contains(m, sub) {
			n++
		}
	}
	return n
}

func newTestLoader(plat platform, sys *fakeSystem) (*loader, *logRecorder) {
	l := newLoader(plat, sys)
	rec := &logRecorder{}
	l.setLogHandler(rec.handle)
	return l, rec
}
