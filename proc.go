package glload

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
)

// Family selects which resolver serves an entry point and which error
// query runs after it.
type Family int

const (
	// FamilyGL entry points resolve through the active backend.
	FamilyGL Family = iota
	FamilyGLX
	FamilyEGL
	FamilyWGL

	familyX11
)

func (f Family) String() string {
	switch f {
	case FamilyGL:
		return "GL"
	case FamilyGLX:
		return "GLX"
	case FamilyEGL:
		return "EGL"
	case FamilyWGL:
		return "WGL"
	case familyX11:
		return "X11"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// wsi returns the backend that owns a windowing family.
func (f Family) wsi() WSI {
	switch f {
	case FamilyGLX:
		return WSIGLX
	case FamilyEGL:
		return WSIEGL
	case FamilyWGL:
		return WSIWGL
	}
	return WSIAuto
}

// Proc is a lazily resolved native entry point. Its address is looked up
// on first use and cached; once set it never changes.
type Proc struct {
	l      *loader
	family Family
	name   string
	addr   atomic.Uintptr
}

// NewProc returns the entry point name of family f. Nothing is resolved
// until the first call.
func NewProc(f Family, name string) *Proc {
	return std.newProc(f, name)
}

func (l *loader) newProc(f Family, name string) *Proc {
	return &Proc{l: l, family: f, name: name}
}

// Name returns the native symbol name.
func (p *Proc) Name() string { return p.name }

// Family returns the entry point's family.
func (p *Proc) Family() Family { return p.family }

// Addr returns the entry point's address, resolving it if needed. It
// returns 0 if no backend can supply it.
func (p *Proc) Addr() uintptr {
	if a := p.addr.Load(); a != 0 {
		return a
	}
	a := p.l.resolve(p.family, p.name)
	if a == 0 {
		return 0
	}
	if p.addr.CompareAndSwap(0, a) {
		return a
	}
	// Another goroutine resolved it first; both computed the same address.
	return p.addr.Load()
}

// Call invokes the entry point with integer and pointer arguments and
// returns its integer result. An unresolved entry point returns 0 without
// calling anything, unless Config.AbortOnMissing is set.
func (p *Proc) Call(args ...uintptr) uintptr {
	return p.invoke(args...)
}

// invoke must be called directly by the exported wrapper so that the
// reported call site is the wrapper's caller.
func (p *Proc) invoke(args ...uintptr) uintptr {
	l := p.l
	cfg := l.config()

	tid := l.sys.ThreadID()
	if !l.owner.isBound() {
		if cfg.RequireExplicitBind {
			file, line := callerSite(1)
			l.logf("in '%s'(%d): %s called before BindOwner", file, line, p.name)
			panic("glload: " + p.name + " called before BindOwner")
		}
		l.owner.bind(tid)
	}
	if l.owner.mismatch(tid) {
		file, line := callerSite(1)
		l.logf("calling %s from a different thread, in '%s'(%d)", p.name, file, line)
	}

	addr := p.Addr()
	if addr == 0 {
		file, line := callerSite(1)
		l.logf("in '%s'(%d): %s could not be resolved", file, line, p.name)
		if cfg.AbortOnMissing {
			panic("glload: unresolved entry point " + p.name)
		}
		return 0
	}

	if cfg.LogCalls {
		file, line := callerSite(1)
		l.logf("in '%s'(%d): %s(%s)", file, line, p.name, formatArgs(args))
	}
	r, lastErr := l.sys.Call(addr, args...)
	if cfg.LogCalls {
		l.logf("%s returned 0x%x", p.name, r)
	}
	if cfg.LogErrors {
		file, line := callerSite(1)
		l.checkError(p.family, file, line, lastErr)
	}
	return r
}

// callerSite returns the file and line skip frames above invoke's caller.
func callerSite(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 2)
	if !ok {
		return "?", 0
	}
	return file, line
}

func formatArgs(args []uintptr) string {
	var sb strings.Builder
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "0x%x", a)
	}
	return sb.String()
}
