// Package keybus routes key presses to scoped subscribers.
//
// A component subscribes a binding while it is visible and calls the
// returned unsubscribe func when it goes away. When several subscribers
// match the same key, the most recent one handles it.
package keybus

import (
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler reacts to a matched key press
type Handler func(msg tea.KeyMsg) tea.Cmd

type subscription struct {
	id      uint64
	binding key.Binding
	handler Handler
}

// Bus holds the active key subscriptions
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscription
}

// New creates an empty bus
func New() *Bus {
	return &Bus{}
}

// Subscribe registers handler for binding and returns its unsubscribe func.
// Calling unsubscribe more than once is a no-op.
func (b *Bus) Subscribe(binding key.Binding, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, binding: binding, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Dispatch runs the newest handler whose binding matches msg.
// handled is false when nothing is subscribed to the key.
func (b *Bus) Dispatch(msg tea.KeyMsg) (cmd tea.Cmd, handled bool) {
	b.mu.Lock()
	var h Handler
	for i := len(b.subs) - 1; i >= 0; i-- {
		if b.subs[i].binding.Enabled() && key.Matches(msg, b.subs[i].binding) {
			h = b.subs[i].handler
			break
		}
	}
	b.mu.Unlock()

	if h == nil {
		return nil, false
	}
	return h(msg), true
}

// Len returns the number of active subscriptions
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
