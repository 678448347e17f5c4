package core

import (
	"errors"
	"fmt"
)

var (
	AlreadyAtTopMessage       = "already at top"
	AlreadyAtBottomMessage    = "already at bottom"
	AlreadyLeftmostMessage    = "already leftmost"
	AlreadyAtLineStartMessage = "already at line start"
	AlreadyAtLineEndMessage   = "already at line end"
	AlreadyAtFileStartMessage = "already at file start"
	NoMoreWordsInLineMessage  = "no more words in line"
	NoCharsInLineMessage      = "no chars in line"
	NoCharsInFileMessage      = "no chars in file"
	NoLinesToDeleteMessage    = "no lines to delete"
	KeyUnmappedMessage        = "key unmapped"
	CountRedundantMessage     = "count redundant"
	CursorOutOfBoundsMessage  = "cursor out of bounds"
	InternalErrorMessage      = "internal error"
	LinesDeletedMessage       = "lines deleted"
	LinesDeletedCopiedMessage = "lines deleted, copied to clipboard"
	cantMoveRemainingMessage  = "can't move %s %d, only %d remain"
	cantMoveDirectionUp       = "up"
	cantMoveDirectionDown     = "down"
	cantMoveDirectionLeft     = "left"
)

// NotificationFromError converts a failed operation into the notification
// shown to the user.
func NotificationFromError(err error) Notification {
	var e *Error
	if !errors.As(err, &e) {
		return Notification{Kind: NotificationError, Text: err.Error()}
	}

	switch e.id {
	case ErrAlreadyAtTopId:
		return warn(AlreadyAtTopMessage)
	case ErrAlreadyAtBottomId:
		return warn(AlreadyAtBottomMessage)
	case ErrCantMoveUpId:
		return cantMove(cantMoveDirectionUp, e, AlreadyAtTopMessage)
	case ErrCantMoveDownId:
		return cantMove(cantMoveDirectionDown, e, AlreadyAtBottomMessage)
	case ErrCantMoveLeftId:
		return cantMove(cantMoveDirectionLeft, e, AlreadyLeftmostMessage)
	case ErrAlreadyAtLineStartId:
		return warn(AlreadyAtLineStartMessage)
	case ErrAlreadyAtLineEndId:
		return warn(AlreadyAtLineEndMessage)
	case ErrAlreadyAtFileStartId:
		return warn(AlreadyAtFileStartMessage)
	case ErrNoMoreWordsInLineId:
		return warn(NoMoreWordsInLineMessage)
	case ErrLineEmptyId:
		return warn(NoCharsInLineMessage)
	case ErrNoCharsInFileId:
		return warn(NoCharsInFileMessage)
	case ErrNoMoreLinesToDeleteId:
		return warn(NoLinesToDeleteMessage)
	case ErrKeyUnmappedId:
		return warn(KeyUnmappedMessage)
	case ErrCountRedundantId:
		return warn(CountRedundantMessage)
	case ErrCursorOutOfBoundsId:
		return Notification{Kind: NotificationError, Text: CursorOutOfBoundsMessage}
	default:
		return Notification{Kind: NotificationError, Text: fmt.Sprintf("%s: %v", InternalErrorMessage, e)}
	}
}

func warn(text string) Notification {
	return Notification{Kind: NotificationWarning, Text: text}
}

func cantMove(direction string, e *Error, atEdge string) Notification {
	if e.Remaining == 0 {
		return warn(atEdge)
	}
	return warn(fmt.Sprintf(cantMoveRemainingMessage, direction, e.Attempted, e.Remaining))
}

func (e *Editor) notify(n Notification) {
	e.notifications.Push(n)
	select {
	case e.updateSignal <- NotificationSignal{n}:
	default:
		e.logger.Println("channel is full, unable to send notification signal")
	}
}

func (e *Editor) notifyError(err error) {
	e.notify(NotificationFromError(err))
}
