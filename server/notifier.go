package server

import "sync"

// ListChangedTransport receives list-changed notifications when the set of
// registered tools, resources, or prompts changes. Transports in the
// transport package implement this interface.
type ListChangedTransport interface {
	NotifyToolListChanged() error
	NotifyResourceListChanged() error
	NotifyPromptListChanged() error
}

// changeNotifier relays list-changed events to an optionally bound
// transport. All notify methods are safe before any transport is bound:
// they simply do nothing. Rebinding replaces the previous transport;
// the most recent bind wins.
type changeNotifier struct {
	mu        sync.RWMutex
	transport ListChangedTransport
}

func (n *changeNotifier) bind(t ListChangedTransport) {
	n.mu.Lock()
	n.transport = t
	n.mu.Unlock()
}

func (n *changeNotifier) current() ListChangedTransport {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.transport
}

// Notification delivery is best effort: a transport send failure never
// fails the registration that triggered it.

func (n *changeNotifier) toolsChanged() {
	if t := n.current(); t != nil {
		_ = t.NotifyToolListChanged()
	}
}

func (n *changeNotifier) resourcesChanged() {
	if t := n.current(); t != nil {
		_ = t.NotifyResourceListChanged()
	}
}

func (n *changeNotifier) promptsChanged() {
	if t := n.current(); t != nil {
		_ = t.NotifyPromptListChanged()
	}
}
