package glload

// platform describes which backends can exist on the running OS and where
// their libraries live.
type platform struct {
	// priority is the probing order; the native windowing backend first.
	priority []WSI

	wgl, glx, egl []string

	// eglCompat is searched by the EGL resolver for names with prefix "gl"
	// that libEGL does not export.
	eglCompat []string

	// x11 hosts XSync and the error handler hooks used by the GLX checks.
	x11 []string
}

func (p platform) supports(w WSI) bool {
	for _, v := range p.priority {
		if v == w {
			return true
		}
	}
	return false
}
