package glload

import (
	"sync/atomic"
	"testing"
)

func TestGLErrorCheck(t *testing.T) {
	var pending atomic.Uint32
	sys := newFakeSystem()
	sys.addGLX(nil, map[string]fakeFunc{
		"glEnable": func(...uintptr) uintptr {
			pending.Store(0x0500)
			return 0
		},
		"glFlush": nil,
		"glGetError": func(...uintptr) uintptr {
			return uintptr(pending.Swap(0))
		},
	})
	l, rec := newTestLoader(fakeUnix(), sys)
	l.configure(Config{LogErrors: true})

	l.newProc(FamilyGL, "glFlush").Call()
	if got := len(rec.messages()); got != 0 {
		t.Fatalf("clean call logged %q", rec.messages())
	}
	l.newProc(FamilyGL, "glEnable").Call(0xdead)
	if rec.count("GL_INVALID_ENUM") != 1 || rec.count("check_test.go") != 1 {
		t.Fatalf("messages = %q", rec.messages())
	}
}

func TestEGLErrorCheck(t *testing.T) {
	sys := newFakeSystem()
	sys.addEGL(map[string]fakeFunc{
		"eglSwapBuffers": nil,
		"eglGetError":    func(...uintptr) uintptr { return 0x3008 },
	})
	l, rec := newTestLoader(fakeUnix(), sys)
	l.configure(Config{LogErrors: true})

	l.newProc(FamilyEGL, "eglSwapBuffers").Call(1, 2)
	if rec.count("EGL_BAD_DISPLAY") != 1 {
		t.Fatalf("messages = %q", rec.messages())
	}
}

func TestWGLErrorCheck(t *testing.T) {
	sys := newFakeSystem()
	sys.addLib("opengl32.dll", map[string]fakeFunc{
		"wglGetProcAddress": nil,
		"wglMakeCurrent":    nil,
	})
	l, rec := newTestLoader(fakeWindows(), sys)
	l.configure(Config{LogErrors: true})

	p := l.newProc(FamilyWGL, "wglMakeCurrent")
	p.Call(0, 0)
	if len(rec.messages()) != 0 {
		t.Fatalf("messages = %q", rec.messages())
	}
	sys.lastErr.Store(6)
	p.Call(0, 0)
	if rec.count("WGL call produced the following error") != 1 {
		t.Fatalf("messages = %q", rec.messages())
	}
}

// fakeX11 wires libX11 so that XSync delivers queued errors through the
// handler installed with XSetErrorHandler, like a real display connection.
type fakeX11 struct {
	sys     *fakeSystem
	handler atomic.Uintptr
	queued  atomic.Int32
	syncs   atomic.Int32
}

func newFakeX11(sys *fakeSystem) *fakeX11 {
	x := &fakeX11{sys: sys}
	sys.addLib("libX11.so.6", map[string]fakeFunc{
		"XSetErrorHandler": func(args ...uintptr) uintptr {
			x.handler.Store(args[0])
			return 0
		},
		"XSync": func(args ...uintptr) uintptr {
			x.syncs.Add(1)
			for ; x.queued.Load() > 0; x.queued.Add(-1) {
				cb := sys.callback(x.handler.Load()).(func(uintptr, *xErrorEvent) int)
				cb(args[0], &xErrorEvent{errorCode: 8, requestCode: 152, minorCode: 5})
			}
			return 0
		},
		"XGetErrorText": func(args ...uintptr) uintptr {
			copy(unsafeBytes(args[2], int(args[3])), "BadMatch\x00")
			return 0
		},
	})
	return x
}

func TestGLXErrorCorrelation(t *testing.T) {
	const display = 0xd1
	sys := newFakeSystem()
	x := newFakeX11(sys)
	sys.addGLX(nil, map[string]fakeFunc{
		"glXGetCurrentDisplay": func(...uintptr) uintptr { return display },
		"glXMakeCurrent":       nil,
	})
	l, rec := newTestLoader(fakeUnix(), sys)
	l.configure(Config{LogErrors: true})

	p := l.newProc(FamilyGLX, "glXMakeCurrent")
	p.Call(display, 0, 0)
	if x.handler.Load() == 0 {
		t.Fatal("X error handler not installed")
	}
	if rec.count("X error") != 0 {
		t.Fatalf("clean call logged %q", rec.messages())
	}

	x.queued.Store(1)
	p.Call(display, 0, 0)
	if rec.count("GLX call produced an X error") != 1 {
		t.Fatalf("messages = %q", rec.messages())
	}
	if rec.count("BadMatch (request 152.5)") != 1 {
		t.Fatalf("error text not logged: %q", rec.messages())
	}

	p.Call(display, 0, 0)
	if rec.count("GLX call produced an X error") != 1 {
		t.Fatalf("error reported for a clean call: %q", rec.messages())
	}
	if got := x.syncs.Load(); got != 3 {
		t.Fatalf("XSync called %d times, want 3", got)
	}
}

func TestKeepXErrorHandler(t *testing.T) {
	sys := newFakeSystem()
	x := newFakeX11(sys)
	sys.addGLX(nil, map[string]fakeFunc{"glXMakeCurrent": nil})
	l, _ := newTestLoader(fakeUnix(), sys)
	l.configure(Config{KeepXErrorHandler: true})

	l.newProc(FamilyGLX, "glXMakeCurrent").Call()
	if x.handler.Load() != 0 {
		t.Fatal("handler installed despite KeepXErrorHandler")
	}
}
