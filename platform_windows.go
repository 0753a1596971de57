//go:build windows

package glload

func defaultPlatform() platform {
	return platform{
		priority:  []WSI{WSIWGL, WSIEGL},
		wgl:       []string{"opengl32.dll"},
		egl:       []string{"libEGL.dll"},
		eglCompat: []string{"libGLESv2.dll"},
	}
}
