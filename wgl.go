package glload

var (
	procWGLGetCurrentContext = NewProc(FamilyWGL, "wglGetCurrentContext")
	procWGLGetCurrentDC      = NewProc(FamilyWGL, "wglGetCurrentDC")
	procWGLMakeCurrent       = NewProc(FamilyWGL, "wglMakeCurrent")
	procWGLSwapIntervalEXT   = NewProc(FamilyWGL, "wglSwapIntervalEXT")
)

// WGLGetCurrentContext returns the calling thread's HGLRC, or 0.
func WGLGetCurrentContext() uintptr {
	return procWGLGetCurrentContext.invoke()
}

// WGLGetCurrentDC returns the device context of the current HGLRC, or 0.
func WGLGetCurrentDC() uintptr {
	return procWGLGetCurrentDC.invoke()
}

func WGLMakeCurrent(hdc, hglrc uintptr) bool {
	return procWGLMakeCurrent.invoke(hdc, hglrc) != 0
}

// WGLSwapIntervalEXT is an extension; it resolves through wglGetProcAddress
// and only exists while a context is current.
func WGLSwapIntervalEXT(interval int32) bool {
	return procWGLSwapIntervalEXT.invoke(uintptr(interval)) != 0
}
