//go:build linux || windows || darwin || freebsd

package osthread

import (
	"runtime"
	"testing"
)

func TestIDStableWhileLocked(t *testing.T) {
	done := make(chan [2]uint64)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		a := ID()
		runtime.Gosched()
		done <- [2]uint64{a, ID()}
	}()
	ids := <-done
	if ids[0] == 0 || ids[0] != ids[1] {
		t.Fatalf("ID() changed on a locked goroutine: %d then %d", ids[0], ids[1])
	}
}

func TestIDDistinctAcrossLockedThreads(t *testing.T) {
	const n = 4
	ids := make(chan uint64, n)
	release := make(chan struct{})
	for i := 0; i < n; i++ {
		go func() {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			ids <- ID()
			<-release
		}()
	}
	seen := make(map[uint64]bool)
	for i := 0; i < n; i++ {
		id := <-ids
		if seen[id] {
			t.Errorf("thread id %d reported by two locked goroutines", id)
		}
		seen[id] = true
	}
	close(release)
}
