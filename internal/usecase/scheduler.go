package usecase

import "time"

// tickHandle is the one pending tick of a simulator. The callback it was armed
// with must check that the handle is still current under the owner's lock
// before mutating anything; cancel only stops the timer.
type tickHandle struct {
	timer *time.Timer
}

func schedule(d time.Duration, fire func(h *tickHandle)) *tickHandle {
	h := &tickHandle{}
	h.timer = time.AfterFunc(d, func() { fire(h) })
	return h
}

func (h *tickHandle) cancel() {
	if h != nil && h.timer != nil {
		h.timer.Stop()
	}
}
