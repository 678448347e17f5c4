package core

// handleGoToKey completes a g chord. Every recognised key returns to
// Normal, whether or not its motion succeeds.
func (e *Editor) handleGoToKey(key KeyEvent) error {
	if key.Key == KeyEscape {
		e.pendingCount = nil
		e.setMode(NormalMode)
		return nil
	}

	switch {
	case key.Is('g'):
		e.setMode(NormalMode)
		return e.runUncounted(key, func() error { return e.cursor.MoveFileStart(e.buffer) })
	case key.Is('e'), key.Is('E'):
		e.setMode(NormalMode)
		return e.cursor.MoveWordBackEnd(e.buffer, e.motionCount(), key.Rune == 'E')
	}

	return errorf(ErrKeyUnmappedId, "g%s", key)
}
