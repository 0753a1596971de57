package glload

import "syscall"

const (
	glNoError  = 0
	eglSuccess = 0x3000
)

// checkError runs the error query of family f after a call made from
// file:line. lastErr is the thread's last-error value captured right after
// the call; only the WGL check uses it.
func (l *loader) checkError(f Family, file string, line int, lastErr uintptr) {
	switch f {
	case FamilyGL:
		l.checkGL(file, line)
	case FamilyGLX:
		l.checkGLX(file, line)
	case FamilyEGL:
		l.checkEGL(file, line)
	case FamilyWGL:
		l.checkWGL(file, line, lastErr)
	}
}

func (l *loader) checkGL(file string, line int) {
	addr := l.glGetError.Addr()
	if addr == 0 {
		return
	}
	if e, _ := l.sys.Call(addr); uint32(e) != glNoError {
		l.logf("in '%s'(%d): OpenGL call produced %s error", file, line, glEnumString(uint32(e)))
	}
}

func (l *loader) checkEGL(file string, line int) {
	addr := l.eglGetError.Addr()
	if addr == 0 {
		return
	}
	if e, _ := l.sys.Call(addr); int32(e) != eglSuccess {
		l.logf("EGL call produced %s error in %s(%d)", eglEnumString(int32(e)), file, line)
	}
}

func (l *loader) checkWGL(file string, line int, lastErr uintptr) {
	if lastErr == 0 {
		return
	}
	l.logf("WGL call produced the following error in %s(%d): %v", file, line, syscall.Errno(lastErr))
}

// checkGLX flushes the current display and reports whether the X server
// sent an error for it in the meantime.
func (l *loader) checkGLX(file string, line int) {
	getDisplay := l.glXGetCurrentDisplay.Addr()
	xSync := l.xSync.Addr()
	if getDisplay == 0 || xSync == 0 {
		return
	}
	display, _ := l.sys.Call(getDisplay)
	if display == 0 {
		return
	}
	if l.xerrors.check(display, func() { l.sys.Call(xSync, display, 0) }) {
		l.logf("in '%s'(%d): GLX call produced an X error", file, line)
	}
}

// CheckError runs the error query of family f and logs what it reports
// against file:line. Generated wrappers call it after each entry point.
func CheckError(f Family, file string, line int) {
	std.checkError(f, file, line, std.sys.LastError())
}
