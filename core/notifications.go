package core

// NotificationKind tells a renderer how to style a notification.
type NotificationKind int

const (
	NotificationInfo NotificationKind = iota
	NotificationWarning
	NotificationError
	NotificationSuccess
)

func (k NotificationKind) String() string {
	switch k {
	case NotificationInfo:
		return "info"
	case NotificationWarning:
		return "warning"
	case NotificationError:
		return "error"
	case NotificationSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Notification is a human-readable outcome for the status line.
type Notification struct {
	Kind NotificationKind
	Text string
}

const DefaultNotificationLimit = 100

// Notifications keeps the most recent notifications, oldest first.
type Notifications struct {
	items  []Notification
	limit  int
	pushed uint64
}

func NewNotifications(limit int) *Notifications {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	return &Notifications{limit: limit}
}

// Push appends n, dropping the oldest entry once the limit is reached.
func (n *Notifications) Push(notification Notification) {
	if len(n.items) == n.limit {
		copy(n.items, n.items[1:])
		n.items = n.items[:len(n.items)-1]
	}
	n.items = append(n.items, notification)
	n.pushed++
}

// Pushed counts every notification ever pushed, including dropped ones.
func (n *Notifications) Pushed() uint64 {
	return n.pushed
}

// Last returns the most recent notification.
func (n *Notifications) Last() (Notification, bool) {
	if len(n.items) == 0 {
		return Notification{}, false
	}
	return n.items[len(n.items)-1], true
}

// All returns a copy of the history.
func (n *Notifications) All() []Notification {
	return append([]Notification(nil), n.items...)
}

func (n *Notifications) Len() int {
	return len(n.items)
}

func (n *Notifications) Clear() {
	n.items = n.items[:0]
}
