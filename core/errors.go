package core

import (
	"errors"
	"fmt"
)

var (
	ErrCursorOutOfBounds   = errors.New("cursor out of bounds")
	ErrNoMoreWordsInLine   = errors.New("no more words in line")
	ErrAlreadyAtLineStart  = errors.New("already at line start")
	ErrAlreadyAtLineEnd    = errors.New("already at line end")
	ErrAlreadyAtTop        = errors.New("already at top")
	ErrAlreadyAtBottom     = errors.New("already at bottom")
	ErrAlreadyAtFileStart  = errors.New("already at file start")
	ErrLineEmpty           = errors.New("no chars in line")
	ErrNoCharsInFile       = errors.New("no chars in file")
	ErrCantMoveUp          = errors.New("can't move up")
	ErrCantMoveDown        = errors.New("can't move down")
	ErrCantMoveLeft        = errors.New("can't move left")
	ErrNoMoreLinesToDelete = errors.New("no lines to delete")
	ErrKeyUnmapped         = errors.New("key unmapped")
	ErrCountRedundant      = errors.New("count redundant")

	// Store errors. Seeing one of these outside the buffer means a caller
	// computed an index incorrectly.
	ErrLineIndexOutOfBounds   = errors.New("line index out of bounds")
	ErrCharRangeOutOfBounds   = errors.New("char range out of bounds")
	ErrInsertPointOutOfBounds = errors.New("insert point out of bounds")
	ErrCharRangeInvalid       = errors.New("char range invalid")
	ErrByteIndexOutOfBounds   = errors.New("byte index out of bounds")
)

type ErrorId int

const (
	ErrCursorOutOfBoundsId ErrorId = iota
	ErrNoMoreWordsInLineId
	ErrAlreadyAtLineStartId
	ErrAlreadyAtLineEndId
	ErrAlreadyAtTopId
	ErrAlreadyAtBottomId
	ErrAlreadyAtFileStartId
	ErrLineEmptyId
	ErrNoCharsInFileId
	ErrCantMoveUpId
	ErrCantMoveDownId
	ErrCantMoveLeftId
	ErrNoMoreLinesToDeleteId
	ErrKeyUnmappedId
	ErrCountRedundantId
	ErrLineIndexOutOfBoundsId
	ErrCharRangeOutOfBoundsId
	ErrInsertPointOutOfBoundsId
	ErrCharRangeInvalidId
	ErrByteIndexOutOfBoundsId
)

var sentinels = map[ErrorId]error{
	ErrCursorOutOfBoundsId:      ErrCursorOutOfBounds,
	ErrNoMoreWordsInLineId:      ErrNoMoreWordsInLine,
	ErrAlreadyAtLineStartId:     ErrAlreadyAtLineStart,
	ErrAlreadyAtLineEndId:       ErrAlreadyAtLineEnd,
	ErrAlreadyAtTopId:           ErrAlreadyAtTop,
	ErrAlreadyAtBottomId:        ErrAlreadyAtBottom,
	ErrAlreadyAtFileStartId:     ErrAlreadyAtFileStart,
	ErrLineEmptyId:              ErrLineEmpty,
	ErrNoCharsInFileId:          ErrNoCharsInFile,
	ErrCantMoveUpId:             ErrCantMoveUp,
	ErrCantMoveDownId:           ErrCantMoveDown,
	ErrCantMoveLeftId:           ErrCantMoveLeft,
	ErrNoMoreLinesToDeleteId:    ErrNoMoreLinesToDelete,
	ErrKeyUnmappedId:            ErrKeyUnmapped,
	ErrCountRedundantId:         ErrCountRedundant,
	ErrLineIndexOutOfBoundsId:   ErrLineIndexOutOfBounds,
	ErrCharRangeOutOfBoundsId:   ErrCharRangeOutOfBounds,
	ErrInsertPointOutOfBoundsId: ErrInsertPointOutOfBounds,
	ErrCharRangeInvalidId:       ErrCharRangeInvalid,
	ErrByteIndexOutOfBoundsId:   ErrByteIndexOutOfBounds,
}

// ErrorCategory groups error ids by who is at fault.
type ErrorCategory int

const (
	// CategoryBoundary: a motion's precondition was not met.
	CategoryBoundary ErrorCategory = iota
	// CategoryContent: nothing left to act on.
	CategoryContent
	// CategoryUsage: the operator pressed something meaningless.
	CategoryUsage
	// CategoryStore: an index was computed incorrectly inside the core.
	CategoryStore
)

func (id ErrorId) Category() ErrorCategory {
	switch id {
	case ErrNoMoreWordsInLineId, ErrNoMoreLinesToDeleteId:
		return CategoryContent
	case ErrKeyUnmappedId, ErrCountRedundantId:
		return CategoryUsage
	case ErrLineIndexOutOfBoundsId, ErrCharRangeOutOfBoundsId,
		ErrInsertPointOutOfBoundsId, ErrCharRangeInvalidId, ErrByteIndexOutOfBoundsId:
		return CategoryStore
	default:
		return CategoryBoundary
	}
}

// Error is the typed failure returned by buffer, motion and mode operations.
type Error struct {
	id  ErrorId
	err error

	// Attempted and Remaining are set for the CantMove errors.
	Attempted int
	Remaining int
}

func (e *Error) ID() ErrorId { return e.id }

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

func newError(id ErrorId) *Error {
	return &Error{id: id, err: sentinels[id]}
}

func errorf(id ErrorId, format string, args ...any) *Error {
	return &Error{
		id:  id,
		err: fmt.Errorf("%w: %s", sentinels[id], fmt.Sprintf(format, args...)),
	}
}

func moveError(id ErrorId, attempted, remaining int) *Error {
	e := errorf(id, "attempted %d, %d remaining", attempted, remaining)
	e.Attempted = attempted
	e.Remaining = remaining
	return e
}

// ErrorID extracts the id of a core error anywhere in err's chain.
func ErrorID(err error) (ErrorId, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.id, true
	}
	return 0, false
}

func isStoreError(err error) bool {
	id, ok := ErrorID(err)
	return ok && id.Category() == CategoryStore
}
