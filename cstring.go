package glload

import "unsafe"

// goStringToCString returns a NUL-terminated copy of s and its address.
// The caller keeps the slice alive for as long as native code reads it.
func goStringToCString(s string) ([]byte, uintptr) {
	b := append([]byte(s), 0)
	return b, uintptr(unsafe.Pointer(&b[0]))
}

// cStringToGo copies the NUL-terminated string at ptr.
func cStringToGo(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var length int
	for *(*byte)(unsafe.Add(unsafe.Pointer(ptr), length)) != 0 {
		length++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length))
}

// bytesToGo returns the contents of buf up to the first NUL.
func bytesToGo(buf []byte) string {
	for i, c := range buf {
		if c == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// Native code may write through these addresses after the goroutine stack
// has moved, so they must live on the heap.

//go:noinline
func cBytes(n int) []byte { return make([]byte, n) }

//go:noinline
func cInts(n int) []int32 { return make([]int32, n) }

//go:noinline
func cUintptrs(n int) []uintptr { return make([]uintptr, n) }
