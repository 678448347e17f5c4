package core

// Signal is pushed to the update channel for hosts that render
// asynchronously.
type Signal any

type NotificationSignal struct {
	notification Notification
}

func (n NotificationSignal) Value() Notification {
	return n.notification
}

type ModeSignal struct {
	from Mode
	to   Mode
}

func (m ModeSignal) Value() (from, to Mode) {
	return m.from, m.to
}

type DeleteSignal struct {
	totalLines int
	content    string
}

func (d DeleteSignal) Value() (totalLines int, content string) {
	return d.totalLines, d.content
}

type QuitSignal struct{}

func (e *Editor) dispatchSignal(signal Signal) {
	select {
	case e.updateSignal <- signal:
	default:
		e.logger.Printf("channel is full, unable to send %T", signal)
	}
}
