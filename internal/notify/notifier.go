// Package notify is the transient message surface used to report the
// outcome of user actions. At most one message is visible at a time; a new
// one pre-empts the previous rather than queueing, and a visible message
// auto-hides after a fixed duration.
package notify

import (
	"sync"
	"time"
)

// Kind colors a message for the presentation layer.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Message is a single visible notification.
type Message struct {
	Text string
	Kind Kind
}

// DefaultTTL is how long a message stays visible unless dismissed earlier.
const DefaultTTL = 3 * time.Second

// Notifier holds the single notification slot.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Message
	timer   *time.Timer

	// seq invalidates auto-hide timers of pre-empted messages.
	seq uint64

	// onShow is called outside the lock whenever a message becomes
	// visible; the REPL uses it to print the message immediately.
	onShow func(Message)
}

func New(ttl time.Duration, onShow func(Message)) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{ttl: ttl, onShow: onShow}
}

// Show replaces any currently visible message and makes msg visible for the
// configured duration.
func (n *Notifier) Show(text string, kind Kind) {
	n.mu.Lock()
	n.seq++
	seq := n.seq
	n.current = &Message{Text: text, Kind: kind}
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.ttl, func() { n.hideIfCurrent(seq) })
	hook := n.onShow
	msg := *n.current
	n.mu.Unlock()

	if hook != nil {
		hook(msg)
	}
}

func (n *Notifier) Success(text string) { n.Show(text, KindSuccess) }
func (n *Notifier) Error(text string)   { n.Show(text, KindError) }
func (n *Notifier) Info(text string)    { n.Show(text, KindInfo) }

// Hide dismisses the visible message, if any.
func (n *Notifier) Hide() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	n.current = nil
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

// hideIfCurrent clears the slot only if the message the timer was armed for
// is still the visible one.
func (n *Notifier) hideIfCurrent(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.seq == seq {
		n.current = nil
		n.timer = nil
	}
}

// Current returns a copy of the visible message, or nil when the slot is
// empty.
func (n *Notifier) Current() *Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	msg := *n.current
	return &msg
}
