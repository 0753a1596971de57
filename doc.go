// Package glload resolves OpenGL and window-system entry points at run time.
//
// Nothing links against libGL, libEGL or opengl32. The first GL call picks a
// backend (WGL, GLX or EGL) from SetWSI, the GLLOAD_WSI environment variable
// or by probing the platform's libraries, in that order of precedence. Each
// entry point is resolved on first use and its address cached.
//
// Wrappers follow the native name without its prefix: glClear is Clear,
// glXSwapBuffers is GLXSwapBuffers, eglGetError is EGLGetError and
// wglGetCurrentContext is WGLGetCurrentContext. Entry points without a
// wrapper can be called through NewProc.
//
// GL contexts are bound to OS threads. Lock the calling goroutine with
// runtime.LockOSThread, or run GL code on the main thread, and call
// BindOwner there. Calls from any other thread are reported once per thread.
package glload
