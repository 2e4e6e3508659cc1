package memory

import (
	"sync"
)

// Notification is one recorded Show call.
type Notification struct {
	Title   string
	Message string
}

// Presenter records notifications instead of displaying them.
type Presenter struct {
	mu    sync.Mutex
	items []Notification
}

func New() *Presenter {
	return &Presenter{}
}

// Show records the notification.
func (p *Presenter) Show(title, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = append(p.items, Notification{Title: title, Message: message})
}

// Notifications returns a copy of everything shown so far, oldest first.
func (p *Presenter) Notifications() []Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Notification(nil), p.items...)
}

// Last returns the most recent notification.
func (p *Presenter) Last() (Notification, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.items) == 0 {
		return Notification{}, false
	}
	return p.items[len(p.items)-1], true
}

// Reset drops all recorded notifications.
func (p *Presenter) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = nil
}
