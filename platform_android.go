//go:build android

package glload

func defaultPlatform() platform {
	return platform{
		priority:  []WSI{WSIEGL},
		egl:       []string{"libEGL.so"},
		eglCompat: []string{"libGLESv3.so", "libGLESv2.so", "libGLESv1_CM.so"},
	}
}
