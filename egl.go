package glload

import (
	"runtime"
	"unsafe"
)

const (
	EGL_VENDOR      = 0x3053
	EGL_VERSION     = 0x3054
	EGL_EXTENSIONS  = 0x3055
	EGL_CLIENT_APIS = 0x308D

	EGL_NONE            = 0x3038
	EGL_RED_SIZE        = 0x3024
	EGL_GREEN_SIZE      = 0x3023
	EGL_BLUE_SIZE       = 0x3022
	EGL_SURFACE_TYPE    = 0x3033
	EGL_PBUFFER_BIT     = 0x0001
	EGL_RENDERABLE_TYPE = 0x3040
	EGL_OPENGL_BIT      = 0x0008
	EGL_OPENGL_API      = 0x30A2
	EGL_WIDTH           = 0x3057
	EGL_HEIGHT          = 0x3056
)

var (
	procEGLGetError          = NewProc(FamilyEGL, "eglGetError")
	procEGLGetDisplay        = NewProc(FamilyEGL, "eglGetDisplay")
	procEGLInitialize        = NewProc(FamilyEGL, "eglInitialize")
	procEGLTerminate         = NewProc(FamilyEGL, "eglTerminate")
	procEGLBindAPI           = NewProc(FamilyEGL, "eglBindAPI")
	procEGLChooseConfig      = NewProc(FamilyEGL, "eglChooseConfig")
	procEGLCreateContext     = NewProc(FamilyEGL, "eglCreateContext")
	procEGLDestroyContext    = NewProc(FamilyEGL, "eglDestroyContext")
	procEGLCreatePbuffer     = NewProc(FamilyEGL, "eglCreatePbufferSurface")
	procEGLDestroySurface    = NewProc(FamilyEGL, "eglDestroySurface")
	procEGLMakeCurrent       = NewProc(FamilyEGL, "eglMakeCurrent")
	procEGLGetCurrentContext = NewProc(FamilyEGL, "eglGetCurrentContext")
	procEGLGetCurrentDisplay = NewProc(FamilyEGL, "eglGetCurrentDisplay")
	procEGLQueryString       = NewProc(FamilyEGL, "eglQueryString")
	procEGLSwapBuffers       = NewProc(FamilyEGL, "eglSwapBuffers")
)

func EGLGetError() int32 {
	return int32(procEGLGetError.invoke())
}

// EGLGetDisplay returns the display for a native display handle; 0 selects
// the default display.
func EGLGetDisplay(native uintptr) uintptr {
	return procEGLGetDisplay.invoke(native)
}

// EGLInitialize initializes display and returns the EGL version it supports.
func EGLInitialize(display uintptr) (major, minor int32, ok bool) {
	v := cInts(2)
	ok = procEGLInitialize.invoke(display, uintptr(unsafe.Pointer(&v[0])), uintptr(unsafe.Pointer(&v[1]))) != 0
	return v[0], v[1], ok
}

func EGLTerminate(display uintptr) bool {
	return procEGLTerminate.invoke(display) != 0
}

func EGLBindAPI(api uint32) bool {
	return procEGLBindAPI.invoke(uintptr(api)) != 0
}

// EGLChooseConfig returns the first config matching attribs, which must end
// with EGL_NONE.
func EGLChooseConfig(display uintptr, attribs []int32) (uintptr, bool) {
	list := cInts(len(attribs))
	copy(list, attribs)
	cfg := cUintptrs(1)
	n := cInts(1)
	ok := procEGLChooseConfig.invoke(display, uintptr(unsafe.Pointer(&list[0])),
		uintptr(unsafe.Pointer(&cfg[0])), 1, uintptr(unsafe.Pointer(&n[0]))) != 0
	runtime.KeepAlive(list)
	return cfg[0], ok && n[0] > 0
}

// EGLCreateContext creates a context; attribs may be nil.
func EGLCreateContext(display, config, share uintptr, attribs []int32) uintptr {
	list, ptr := attribList(attribs)
	ctx := procEGLCreateContext.invoke(display, config, share, ptr)
	runtime.KeepAlive(list)
	return ctx
}

func EGLDestroyContext(display, context uintptr) bool {
	return procEGLDestroyContext.invoke(display, context) != 0
}

// EGLCreatePbufferSurface creates an offscreen surface; attribs may be nil.
func EGLCreatePbufferSurface(display, config uintptr, attribs []int32) uintptr {
	list, ptr := attribList(attribs)
	surface := procEGLCreatePbuffer.invoke(display, config, ptr)
	runtime.KeepAlive(list)
	return surface
}

func EGLDestroySurface(display, surface uintptr) bool {
	return procEGLDestroySurface.invoke(display, surface) != 0
}

func EGLMakeCurrent(display, draw, read, context uintptr) bool {
	return procEGLMakeCurrent.invoke(display, draw, read, context) != 0
}

func EGLGetCurrentContext() uintptr {
	return procEGLGetCurrentContext.invoke()
}

func EGLGetCurrentDisplay() uintptr {
	return procEGLGetCurrentDisplay.invoke()
}

func EGLQueryString(display uintptr, name int32) string {
	return cStringToGo(procEGLQueryString.invoke(display, uintptr(name)))
}

func EGLSwapBuffers(display, surface uintptr) bool {
	return procEGLSwapBuffers.invoke(display, surface) != 0
}

// attribList copies attribs for the driver to read. The address is 0 for
// an empty list.
func attribList(attribs []int32) ([]int32, uintptr) {
	if len(attribs) == 0 {
		return nil, 0
	}
	list := cInts(len(attribs))
	copy(list, attribs)
	return list, uintptr(unsafe.Pointer(&list[0]))
}
