//go:build darwin || freebsd

package osthread

import (
	"sync"

	"github.com/abemedia/glload/internal/dl"
)

var (
	pthreadSelf     uintptr
	pthreadSelfOnce sync.Once
)

// ID returns the pthread_t of the calling thread.
func ID() uint64 {
	pthreadSelfOnce.Do(func() {
		pthreadSelf, _ = dl.Lookup(dl.Default, "pthread_self")
	})
	if pthreadSelf == 0 {
		return 0
	}
	r1, _ := dl.Call(pthreadSelf)
	return uint64(r1)
}
