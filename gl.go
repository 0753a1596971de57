package glload

import "unsafe"

const (
	VENDOR                   = 0x1F00
	RENDERER                 = 0x1F01
	VERSION                  = 0x1F02
	EXTENSIONS               = 0x1F03
	SHADING_LANGUAGE_VERSION = 0x8B8C
	NUM_EXTENSIONS           = 0x821D
	MAJOR_VERSION            = 0x821B
	MINOR_VERSION            = 0x821C

	COLOR_BUFFER_BIT   = 0x00004000
	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400

	NO_ERROR = 0
)

var (
	procGetError    = NewProc(FamilyGL, "glGetError")
	procGetString   = NewProc(FamilyGL, "glGetString")
	procGetStringi  = NewProc(FamilyGL, "glGetStringi")
	procGetIntegerv = NewProc(FamilyGL, "glGetIntegerv")
	procClear       = NewProc(FamilyGL, "glClear")
	procViewport    = NewProc(FamilyGL, "glViewport")
	procEnable      = NewProc(FamilyGL, "glEnable")
	procDisable     = NewProc(FamilyGL, "glDisable")
	procFlush       = NewProc(FamilyGL, "glFlush")
	procFinish      = NewProc(FamilyGL, "glFinish")
)

func GetError() uint32 {
	return uint32(procGetError.invoke())
}

func GetString(name uint32) string {
	return cStringToGo(procGetString.invoke(uintptr(name)))
}

func GetStringi(name, index uint32) string {
	return cStringToGo(procGetStringi.invoke(uintptr(name), uintptr(index)))
}

// GetIntegerv stores the values of pname in data, which must be long
// enough for every value the query returns.
func GetIntegerv(pname uint32, data []int32) {
	if len(data) == 0 {
		return
	}
	buf := cInts(len(data))
	procGetIntegerv.invoke(uintptr(pname), uintptr(unsafe.Pointer(&buf[0])))
	copy(data, buf)
}

func Clear(mask uint32) {
	procClear.invoke(uintptr(mask))
}

func Viewport(x, y, width, height int32) {
	procViewport.invoke(uintptr(x), uintptr(y), uintptr(width), uintptr(height))
}

func Enable(capability uint32) {
	procEnable.invoke(uintptr(capability))
}

func Disable(capability uint32) {
	procDisable.invoke(uintptr(capability))
}

func Flush() {
	procFlush.invoke()
}

func Finish() {
	procFinish.invoke()
}
