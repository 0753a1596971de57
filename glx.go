package glload

import "unsafe"

var (
	procGLXGetCurrentContext  = NewProc(FamilyGLX, "glXGetCurrentContext")
	procGLXGetCurrentDisplay  = NewProc(FamilyGLX, "glXGetCurrentDisplay")
	procGLXGetCurrentDrawable = NewProc(FamilyGLX, "glXGetCurrentDrawable")
	procGLXQueryVersion       = NewProc(FamilyGLX, "glXQueryVersion")
	procGLXSwapBuffers        = NewProc(FamilyGLX, "glXSwapBuffers")
)

// GLXGetCurrentContext returns the current GLXContext, or 0.
func GLXGetCurrentContext() uintptr {
	return procGLXGetCurrentContext.invoke()
}

// GLXGetCurrentDisplay returns the Display* of the current context, or 0.
func GLXGetCurrentDisplay() uintptr {
	return procGLXGetCurrentDisplay.invoke()
}

func GLXGetCurrentDrawable() uintptr {
	return procGLXGetCurrentDrawable.invoke()
}

func GLXQueryVersion(display uintptr) (major, minor int32, ok bool) {
	v := cInts(2)
	r := procGLXQueryVersion.invoke(display,
		uintptr(unsafe.Pointer(&v[0])), uintptr(unsafe.Pointer(&v[1])))
	return v[0], v[1], r != 0
}

func GLXSwapBuffers(display, drawable uintptr) {
	procGLXSwapBuffers.invoke(display, drawable)
}
