package glload

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// WSI identifies a window-system interface binding.
type WSI int32

const (
	WSIAuto WSI = iota
	WSIWGL
	WSIGLX
	WSIEGL

	// wsiDeciding marks a request that is being replaced by probing.
	wsiDeciding WSI = -1
)

// ErrUnknownWSI is returned by ParseWSI for unrecognized names.
var ErrUnknownWSI = errors.New("unknown WSI")

// envWSI selects a backend by name; read at most once per process.
const envWSI = "GLLOAD_WSI"

func (w WSI) String() string {
	switch w {
	case WSIAuto:
		return "auto"
	case WSIWGL:
		return "wgl"
	case WSIGLX:
		return "glx"
	case WSIEGL:
		return "egl"
	case wsiDeciding:
		return "deciding"
	}
	return fmt.Sprintf("WSI(%d)", int32(w))
}

// concrete reports whether w names an actual backend.
func (w WSI) concrete() bool {
	return w == WSIWGL || w == WSIGLX || w == WSIEGL
}

// ParseWSI maps a case-insensitive backend name to a WSI.
func ParseWSI(s string) (WSI, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return WSIAuto, nil
	case "wgl":
		return WSIWGL, nil
	case "glx":
		return WSIGLX, nil
	case "egl":
		return WSIEGL, nil
	}
	return WSIAuto, fmt.Errorf("%w: %q", ErrUnknownWSI, s)
}

const (
	gateUndecided int32 = iota
	gateDeciding
	gateDecided
)

// resolveWSI runs detection exactly once per gate cycle and returns the
// backend GL-family entry points resolve against. Concurrent callers spin
// until the detecting goroutine publishes its result.
func (l *loader) resolveWSI() WSI {
	for {
		switch l.gate.Load() {
		case gateDecided:
			return l.pinned()
		case gateUndecided:
			if l.gate.CompareAndSwap(gateUndecided, gateDeciding) {
				epoch := l.epoch.Load()
				l.detect()
				l.gate.Store(gateDecided)
				if l.epoch.Load() != epoch {
					// Re-requested while detecting; setWSI could not reopen
					// the gate, so do it here and detect again.
					l.gate.CompareAndSwap(gateDecided, gateUndecided)
					continue
				}
				return l.pinned()
			}
		default:
			runtime.Gosched()
		}
	}
}

// detect is only ever run by the goroutine that closed the gate.
func (l *loader) detect() {
	l.detections.Add(1)
	l.dropUnsupported()
	l.readEnv()
	l.dropUnsupported()

	if l.explicit.Load() {
		return
	}
	if !l.requested.CompareAndSwap(int32(WSIAuto), int32(wsiDeciding)) {
		// An explicit request landed in between; it wins.
		return
	}
	for _, w := range l.plat.priority {
		b := l.backend(w)
		if b == nil {
			continue
		}
		if _, _, err := b.probe(); err != nil {
			continue
		}
		if l.requested.CompareAndSwap(int32(wsiDeciding), int32(w)) {
			l.explicit.Store(true)
		}
		return
	}
	l.requested.CompareAndSwap(int32(wsiDeciding), int32(WSIAuto))
}

// dropUnsupported turns a request for a backend this platform cannot have
// back into WSIAuto.
func (l *loader) dropUnsupported() {
	if r := WSI(l.requested.Load()); r.concrete() && !l.plat.supports(r) {
		if l.requested.CompareAndSwap(int32(r), int32(WSIAuto)) {
			l.explicit.Store(false)
		}
	}
}

// readEnv applies GLLOAD_WSI once, unless a backend is already pinned.
func (l *loader) readEnv() {
	if !l.envChecked.CompareAndSwap(false, true) || l.explicit.Load() {
		return
	}
	v := l.sys.Getenv(envWSI)
	if v == "" {
		return
	}
	w, err := ParseWSI(v)
	if err != nil {
		l.logf("ignoring %s: %v", envWSI, err)
		return
	}
	if w == WSIAuto {
		return
	}
	if l.requested.CompareAndSwap(int32(WSIAuto), int32(w)) {
		l.explicit.Store(true)
	}
}

// pinned returns the requested backend if it is concrete.
func (l *loader) pinned() WSI {
	if r := WSI(l.requested.Load()); r.concrete() {
		return r
	}
	return WSIAuto
}

func (l *loader) setWSI(w WSI) {
	if !w.concrete() {
		w = WSIAuto
	}
	l.requested.Store(int32(w))
	l.explicit.Store(w != WSIAuto)
	l.active.Store(int32(WSIAuto))
	l.epoch.Add(1)
	l.gate.CompareAndSwap(gateDecided, gateUndecided)
}

func (l *loader) wsi() WSI {
	if a := WSI(l.active.Load()); a != WSIAuto {
		return a
	}
	return l.pinned()
}

// SetWSI requests a backend. It takes precedence over GLLOAD_WSI and over
// probing. A backend that cannot exist on this platform falls back to
// WSIAuto when the request is next evaluated. Requesting again resets the
// active backend and makes the next resolution re-run detection; entry
// points that were already resolved keep their addresses.
func SetWSI(w WSI) {
	std.setWSI(w)
}

// CurrentWSI returns the backend that served the most recent GL
// resolution, or the pinned request if nothing was resolved since, or
// WSIAuto.
func CurrentWSI() WSI {
	return std.wsi()
}
