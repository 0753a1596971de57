package glload

import (
	"sync"
	"sync/atomic"
)

// owner records the thread expected to make every call. It is bound once,
// either by BindOwner or by the first call, and never changes afterwards.
type owner struct {
	once  sync.Once
	id    atomic.Uint64
	bound atomic.Bool

	// warned holds the ids of threads that already got a diagnostic.
	warned sync.Map
}

// bind makes tid the owner if no owner is bound yet.
func (o *owner) bind(tid uint64) bool {
	ok := false
	o.once.Do(func() {
		o.id.Store(tid)
		o.bound.Store(true)
		ok = true
	})
	return ok
}

func (o *owner) isBound() bool { return o.bound.Load() }

// mismatch reports whether tid should be warned about calling from a
// thread other than the owner. It is true at most once per thread.
func (o *owner) mismatch(tid uint64) bool {
	if tid == o.id.Load() {
		return false
	}
	_, seen := o.warned.LoadOrStore(tid, struct{}{})
	return !seen
}

func (l *loader) bindOwner() bool {
	tid := l.sys.ThreadID()
	if l.owner.bind(tid) {
		return true
	}
	if cur := l.owner.id.Load(); cur != tid {
		l.logf("BindOwner: thread %d ignored, calls are already bound to thread %d", tid, cur)
		return false
	}
	return true
}

// BindOwner binds the calling OS thread as the one expected to make GL
// calls. The goroutine should be locked with runtime.LockOSThread. It
// returns false if a different thread is already bound.
func BindOwner() bool {
	return std.bindOwner()
}
