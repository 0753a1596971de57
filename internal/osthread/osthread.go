// Package osthread reports the identity of the calling OS thread.
//
// The value is only meaningful for goroutines locked to their thread with
// runtime.LockOSThread; an unlocked goroutine can migrate between calls.
package osthread
