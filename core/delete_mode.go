package core

import (
	"fmt"
	"strings"
)

func (e *Editor) handleDeleteKey(key KeyEvent) error {
	if digit, ok := key.Digit(); ok {
		e.pendingCount = accumulateCount(e.pendingCount, digit)
		return nil
	}

	switch {
	case key.Key == KeyEscape:
		e.pendingCount = nil
		e.operatorCount = nil
		e.pendingKeys = e.pendingKeys[:0]
		e.setMode(NormalMode)
		return nil

	case key.Is('d'):
		// 3d2d deletes six lines; an explicit zero on either side deletes none.
		count := countOrOne(e.operatorCount) * countOrOne(e.pendingCount)
		e.pendingCount = nil
		e.operatorCount = nil
		e.setMode(NormalMode)
		return e.deleteLines(count)
	}

	e.pendingCount = nil
	return errorf(ErrKeyUnmappedId, "d%s", key)
}

func (e *Editor) deleteLines(count int) error {
	removed, err := e.cursor.DeleteLines(e.buffer, count)
	if err != nil || removed == "" {
		return err
	}

	e.cursor.Row = min(e.cursor.Row, e.buffer.LineCount()-1)

	lines := strings.Count(removed, "\n")
	message := LinesDeletedMessage
	if e.clipboard != nil {
		if err := e.clipboard.Write(removed); err != nil {
			e.logger.Printf("unable to copy deleted lines: %v", err)
		} else {
			message = LinesDeletedCopiedMessage
		}
	}

	e.notify(Notification{Kind: NotificationSuccess, Text: fmt.Sprintf("%d %s", lines, message)})
	e.dispatchSignal(DeleteSignal{totalLines: lines, content: removed})
	return nil
}
