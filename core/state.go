package core

// State is a snapshot of everything a renderer shows besides the text.
type State struct {
	Mode         Mode
	Cursor       Cursor
	LineCount    int
	PendingCount *int // nil when no count is being typed

	// Notification is the most recent one; HasNotification is false
	// until something has been reported. NotificationSeq grows by one
	// per notification, so a renderer can tell a new one from an old one.
	Notification    Notification
	HasNotification bool
	NotificationSeq uint64
}

// State returns a snapshot of the session.
func (e *Editor) State() State {
	s := State{
		Mode:      e.mode,
		Cursor:    e.cursor,
		LineCount: e.buffer.LineCount(),
	}
	if e.pendingCount != nil {
		n := *e.pendingCount
		s.PendingCount = &n
	}
	s.Notification, s.HasNotification = e.notifications.Last()
	s.NotificationSeq = e.notifications.Pushed()
	return s
}
