package auth

import "sync"

// ExpiryNotifier fans concurrent unauthorized responses into at most one
// session-expired notification per expiry event. It starts armed, disarms
// after firing, and is re-armed when a fresh credential is set.
//
// A nil callback suppresses the notification entirely, which is the explicit
// policy for headless and test contexts.
type ExpiryNotifier struct {
	mu    sync.Mutex
	armed bool
	fn    func()
}

// NewExpiryNotifier creates an armed notifier wrapping fn.
func NewExpiryNotifier(fn func()) *ExpiryNotifier {
	return &ExpiryNotifier{armed: true, fn: fn}
}

// Notify fires the callback if the notifier is armed, then disarms it.
// Repeated calls before the next Arm are no-ops.
func (n *ExpiryNotifier) Notify() {
	n.mu.Lock()
	if !n.armed {
		n.mu.Unlock()
		return
	}
	n.armed = false
	fn := n.fn
	n.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Arm re-arms the notifier for the next expiry event.
func (n *ExpiryNotifier) Arm() {
	n.mu.Lock()
	n.armed = true
	n.mu.Unlock()
}
