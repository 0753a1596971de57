//go:build !windows && !darwin && !android

package glload

func defaultPlatform() platform {
	return platform{
		priority: []WSI{WSIGLX, WSIEGL},
		glx:      []string{"libGLX.so.0", "libGL.so.1", "libGL.so"},
		egl:      []string{"libEGL.so.1", "libEGL.so"},
		eglCompat: []string{
			"libGLESv2.so.2",
			"libGLESv1_CM.so.1",
			"libOpenGL.so.0",
			"libGL.so.1",
		},
		x11: []string{"libX11.so.6", "libX11.so"},
	}
}
