// Package feedback plays a short audible click when a key press is confirmed.
package feedback

// Clicker signals a confirmed key press. Click must not block the frame loop.
type Clicker interface {
	Click()
	Close() error
}

// Noop is a Clicker that does nothing. Used when audio is disabled or unavailable.
type Noop struct{}

func (Noop) Click()       {}
func (Noop) Close() error { return nil }
