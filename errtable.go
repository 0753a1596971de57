package glload

import "sync/atomic"

// errorSlots bounds the number of displays tracked separately. Displays
// beyond that share slot 0, which can attribute an error to the wrong
// display but never misses one.
const errorSlots = 8

type errorSlot struct {
	display atomic.Uintptr
	count   atomic.Uint64
}

// errorTable counts asynchronous windowing errors per display without a
// lock so concurrent callers sharing a display can still tell whether an
// error arrived during their own call.
type errorTable struct {
	slots [errorSlots]errorSlot
}

func (t *errorTable) slot(display uintptr) *errorSlot {
	if display == 0 {
		return &t.slots[0]
	}
	for i := range t.slots {
		s := &t.slots[i]
		d := s.display.Load()
		if d == display {
			return s
		}
		if d == 0 {
			if s.display.CompareAndSwap(0, display) || s.display.Load() == display {
				return s
			}
		}
	}
	return &t.slots[0]
}

// record counts one error reported for display.
func (t *errorTable) record(display uintptr) {
	t.slot(display).count.Add(1)
}

// check flushes display's pending errors and reports whether any error
// was recorded for it while flushing.
func (t *errorTable) check(display uintptr, flush func()) bool {
	s := t.slot(display)
	before := s.count.Load()
	flush()
	return s.count.Load() != before
}
