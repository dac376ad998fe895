package app

import (
	"sync"
	"time"
)

type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertError   AlertKind = "error"
)

type Alert struct {
	Kind    AlertKind
	Message string
	Visible bool
}

// Notifier is the shared transient alert banner. A second Show before the
// timer fires replaces the message and restarts the timer: no queueing, no
// stacking.
type Notifier struct {
	mu    sync.Mutex
	cur   Alert
	timer *time.Timer
	seq   uint64 // guards against a stale timer hiding a newer alert
	delay time.Duration
}

const defaultAlertDelay = 3 * time.Second

func NewNotifier(delay time.Duration) *Notifier {
	if delay <= 0 {
		delay = defaultAlertDelay
	}
	return &Notifier{delay: delay}
}

func (n *Notifier) Show(kind AlertKind, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	seq := n.seq
	n.cur = Alert{Kind: kind, Message: msg, Visible: true}
	n.timer = time.AfterFunc(n.delay, func() { n.hideIf(seq) })
}

func (n *Notifier) Success(msg string) { n.Show(AlertSuccess, msg) }
func (n *Notifier) Error(msg string)   { n.Show(AlertError, msg) }

// Hide is idempotent.
func (n *Notifier) Hide() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.seq++
	n.cur = Alert{}
}

func (n *Notifier) hideIf(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.seq != seq {
		return // a newer Show or Hide already took over
	}
	n.timer = nil
	n.cur = Alert{}
}

func (n *Notifier) Current() Alert {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cur
}
