package tray

// tapQueue carries icon taps from the UI thread to the event loop. Tap
// never blocks; a tap arriving while another is still pending is dropped,
// so a burst of clicks during a slow toggle counts once.
type tapQueue chan struct{}

func newTapQueue() tapQueue {
	return make(tapQueue, 1)
}

// Tap records a tap and reports whether it was queued.
func (q tapQueue) Tap() bool {
	select {
	case q <- struct{}{}:
		return true
	default:
		return false
	}
}
