package interaction

import "time"

// Notice is a transient status text. Showing it again replaces the pending
// hide deadline, so it stays up for a full Duration after the latest trigger.
type Notice struct {
	Duration time.Duration

	text   string
	hideAt time.Time
	shown  bool
}

func NewNotice(d time.Duration) *Notice {
	return &Notice{Duration: d}
}

// Show sets the text and (re)schedules the hide for now+Duration
func (n *Notice) Show(text string, now time.Time) {
	n.text = text
	n.hideAt = now.Add(n.Duration)
	n.shown = true
}

// Hide cancels any pending deadline and hides immediately
func (n *Notice) Hide() {
	n.shown = false
	n.hideAt = time.Time{}
}

// Visible reports whether the notice is on screen at now
func (n *Notice) Visible(now time.Time) bool {
	return n.shown && now.Before(n.hideAt)
}

// Text returns the last text shown, visible or not
func (n *Notice) Text() string { return n.text }
