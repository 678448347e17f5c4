package core

func (e *Editor) handleNormalKey(key KeyEvent) error {
	if digit, ok := key.Digit(); ok {
		e.pendingCount = accumulateCount(e.pendingCount, digit)
		return nil
	}
	buffer := e.buffer

	// --- Special keys ---
	switch key.Key {
	case KeyEscape:
		e.pendingCount = nil
		return nil
	case KeyUp:
		return e.cursor.MoveUp(e.motionCount())
	case KeyDown:
		return e.cursor.MoveDown(buffer, e.motionCount())
	case KeyLeft:
		return e.cursor.MoveLeft(e.motionCount())
	case KeyRight:
		e.cursor.MoveRight(e.motionCount())
		return nil
	case KeyHome:
		return e.runUncounted(key, func() error { return e.cursor.MoveLineStart(buffer) })
	case KeyEnd:
		return e.runUncounted(key, func() error { return e.cursor.MoveLineEnd(buffer) })
	}

	if key.Modifiers&(ModCtrl|ModAlt) != 0 {
		e.pendingCount = nil
		return errorf(ErrKeyUnmappedId, "%s", key)
	}

	// --- Character commands ---
	switch key.Rune {
	case 'k':
		return e.cursor.MoveUp(e.motionCount())
	case 'j':
		return e.cursor.MoveDown(buffer, e.motionCount())
	case 'h':
		return e.cursor.MoveLeft(e.motionCount())
	case 'l':
		e.cursor.MoveRight(e.motionCount())
		return nil

	case 'w', 'W':
		return e.cursor.MoveWordStart(buffer, e.motionCount(), key.Rune == 'W')
	case 'e', 'E':
		return e.cursor.MoveWordEnd(buffer, e.motionCount(), key.Rune == 'E')
	case 'b', 'B':
		return e.cursor.MoveWordBack(buffer, e.motionCount(), key.Rune == 'B')

	case '$':
		return e.runUncounted(key, func() error { return e.cursor.MoveLineEnd(buffer) })
	case 'G':
		return e.runUncounted(key, func() error { return e.cursor.MoveFileEnd(buffer) })

	case 'i':
		return e.enterInsert(key, e.cursor)
	case 'a':
		at := e.cursor
		if line, err := buffer.Line(at.Row); err == nil && !line.IsVisuallyEmpty() {
			at.Col++
		}
		return e.enterInsert(key, at)

	case 'g':
		e.setMode(GoToMode)
		return nil
	case 'd':
		e.operatorCount = e.pendingCount
		e.pendingCount = nil
		e.setMode(DeleteMode)
		return nil
	}

	e.pendingCount = nil
	return errorf(ErrKeyUnmappedId, "%s", key)
}

// enterInsert switches to Insert with the cursor at at. Inserting is only
// possible on a char, a terminator or the tail.
func (e *Editor) enterInsert(key KeyEvent, at Cursor) error {
	return e.runUncounted(key, func() error {
		if !e.buffer.InRawBounds(at) && !e.buffer.OnTail(at) {
			return errorf(ErrCursorOutOfBoundsId, "(%d, %d)", at.Col, at.Row)
		}
		e.cursor = at
		e.setMode(InsertMode)
		return nil
	})
}
