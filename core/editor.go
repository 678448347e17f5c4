package core

import (
	"fmt"
	"io"
	"log"
)

// Clipboard receives text removed by line deletions.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

const defaultKeyHistoryLimit = 50

// Editor is one editing session: a buffer, a cursor, the active mode and
// the pending count. It is not safe for concurrent use; hosts feed it one
// key at a time.
type Editor struct {
	buffer Buffer
	cursor Cursor
	mode   Mode

	pendingCount  *int
	operatorCount *int // count typed before an operator such as d

	pendingKeys     []KeyEvent
	keyHistory      [][]KeyEvent
	keyHistoryLimit int

	notifications *Notifications
	clipboard     Clipboard
	updateSignal  chan Signal
	logger        *log.Logger
	strict        bool
}

type Option func(*Editor)

func WithClipboard(clipboard Clipboard) Option {
	return func(e *Editor) { e.clipboard = clipboard }
}

func WithLogger(logger *log.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStrict makes store errors panic instead of being reported.
func WithStrict(strict bool) Option {
	return func(e *Editor) { e.strict = strict }
}

func WithNotificationLimit(limit int) Option {
	return func(e *Editor) { e.notifications = NewNotifications(limit) }
}

func WithKeyHistoryLimit(limit int) Option {
	return func(e *Editor) {
		if limit > 0 {
			e.keyHistoryLimit = limit
		}
	}
}

// NewEditor starts a session on buffer in Normal mode at (0, 0).
func NewEditor(buffer Buffer, opts ...Option) *Editor {
	e := &Editor{
		buffer:          buffer,
		mode:            NormalMode,
		keyHistoryLimit: defaultKeyHistoryLimit,
		notifications:   NewNotifications(DefaultNotificationLimit),
		updateSignal:    make(chan Signal, 100),
		logger:          log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// HandleKey processes one key in the current mode. A failure is recorded as
// a notification and returned; it leaves the buffer, cursor and mode as
// they were except for the resets documented on the motions.
func (e *Editor) HandleKey(key KeyEvent) error {
	// Ctrl+C quits from every mode.
	if key.Modifiers&ModCtrl != 0 && key.Rune == 'c' {
		e.pendingCount = nil
		e.Quit()
		return nil
	}

	e.pendingKeys = append(e.pendingKeys, key)

	var err error
	switch e.mode {
	case NormalMode:
		err = e.handleNormalKey(key)
	case InsertMode:
		err = e.handleInsertKey(key)
	case GoToMode:
		err = e.handleGoToKey(key)
	case DeleteMode:
		err = e.handleDeleteKey(key)
	default:
		panic(fmt.Sprintf("core: unknown mode %q", e.mode))
	}

	if e.mode == NormalMode && e.pendingCount == nil {
		e.pendingKeys = e.pendingKeys[:0]
	}

	if err != nil {
		e.report(key, err)
	}
	return err
}

// report turns err into a notification. Store errors mean an index was
// computed incorrectly; they are logged and, in strict mode, panic.
func (e *Editor) report(key KeyEvent, err error) {
	if isStoreError(err) {
		e.logger.Printf("contract violation handling %s in %s mode at %d:%d: %v",
			key, e.mode, e.cursor.Row, e.cursor.Col, err)
		if e.strict {
			panic(err)
		}
	} else {
		e.logger.Printf("%s in %s mode: %v", key, e.mode, err)
	}
	e.notifyError(err)
}

func (e *Editor) setMode(mode Mode) {
	if mode == e.mode {
		return
	}
	e.logger.Printf("mode %s -> %s", e.mode, mode)
	e.dispatchSignal(ModeSignal{from: e.mode, to: mode})
	e.mode = mode
}

// motionCount consumes the pending count for a repeatable motion. A typed
// zero counts as one.
func (e *Editor) motionCount() int {
	n := countOrOne(e.pendingCount)
	e.pendingCount = nil
	return max(n, 1)
}

// runUncounted runs a command that does not repeat. A pending count is
// consumed and reported as redundant after the command ran; a failure of
// the command itself is reported first.
func (e *Editor) runUncounted(key KeyEvent, command func() error) error {
	hadCount := e.pendingCount != nil
	e.pendingCount = nil

	err := command()
	if !hadCount {
		return err
	}
	if err != nil {
		e.report(key, err)
	}
	return newError(ErrCountRedundantId)
}

func (e *Editor) flushKeys() {
	if len(e.pendingKeys) == 0 {
		return
	}
	if len(e.keyHistory) == e.keyHistoryLimit {
		e.keyHistory = e.keyHistory[1:]
	}
	e.keyHistory = append(e.keyHistory, append([]KeyEvent(nil), e.pendingKeys...))
	e.pendingKeys = e.pendingKeys[:0]
}

// Quit asks the host to end the session.
func (e *Editor) Quit() {
	e.logger.Println("quit requested")
	e.dispatchSignal(QuitSignal{})
}

// --- Queries ---

func (e *Editor) Buffer() Buffer { return e.buffer }

func (e *Editor) Cursor() Cursor { return e.cursor }

// SetCursor places the cursor without any bounds check.
func (e *Editor) SetCursor(c Cursor) { e.cursor = c }

func (e *Editor) Mode() Mode { return e.mode }

// PendingCount returns the count typed so far, if any.
func (e *Editor) PendingCount() (int, bool) {
	if e.pendingCount == nil {
		return 0, false
	}
	return *e.pendingCount, true
}

func (e *Editor) LastNotification() (Notification, bool) {
	return e.notifications.Last()
}

func (e *Editor) Notifications() []Notification {
	return e.notifications.All()
}

// KeyHistory returns the key sequences of finished insert sessions, oldest
// first.
func (e *Editor) KeyHistory() [][]KeyEvent {
	history := make([][]KeyEvent, len(e.keyHistory))
	copy(history, e.keyHistory)
	return history
}

func (e *Editor) UpdateSignalChannel() <-chan Signal {
	return e.updateSignal
}
