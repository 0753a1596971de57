package glload

import (
	"strconv"
	"unsafe"
)

// xErrorEvent mirrors Xlib's XErrorEvent.
type xErrorEvent struct {
	typ         int32
	display     uintptr
	resourceID  uintptr
	serial      uintptr
	errorCode   uint8
	requestCode uint8
	minorCode   uint8
}

// installXErrorHandler replaces the Xlib error handler with one that feeds
// the error table. It runs once, on the first GLX resolution.
func (l *loader) installXErrorHandler() {
	l.xhandlerOnce.Do(func() {
		if l.config().KeepXErrorHandler {
			return
		}
		set := l.xSetErrorHandler.Addr()
		if set == 0 {
			return
		}
		l.xhandler = l.sys.NewCallback(l.onXError)
		if l.xhandler == 0 {
			return
		}
		l.sys.Call(set, l.xhandler)
	})
}

func (l *loader) onXError(display uintptr, event *xErrorEvent) int {
	l.xerrors.record(display)
	if event == nil {
		l.logf("X error")
		return 0
	}
	l.logf("X error: %s (request %d.%d)", l.xErrorText(display, event.errorCode),
		event.requestCode, event.minorCode)
	return 0
}

func (l *loader) xErrorText(display uintptr, code uint8) string {
	getText := l.xGetErrorText.Addr()
	if getText == 0 {
		return "code " + strconv.Itoa(int(code))
	}
	buf := cBytes(128)
	l.sys.Call(getText, display, uintptr(code), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return bytesToGo(buf)
}
