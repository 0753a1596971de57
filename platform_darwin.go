//go:build darwin

package glload

// macOS only offers GLX through XQuartz and EGL through ANGLE or Mesa.
func defaultPlatform() platform {
	return platform{
		priority: []WSI{WSIGLX, WSIEGL},
		glx: []string{
			"/opt/X11/lib/libGL.1.dylib",
			"libGL.dylib",
		},
		egl: []string{"libEGL.dylib"},
		eglCompat: []string{
			"libGLESv2.dylib",
			"/opt/X11/lib/libGL.1.dylib",
		},
		x11: []string{"/opt/X11/lib/libX11.6.dylib", "libX11.dylib"},
	}
}
