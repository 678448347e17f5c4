package core

import "unicode/utf8"

func (e *Editor) handleInsertKey(key KeyEvent) error {
	buffer := e.buffer

	switch key.Key {
	case KeyEscape:
		if e.cursor.Col > 0 {
			e.cursor.Col--
		}
		e.flushKeys()
		e.setMode(NormalMode)
		return nil

	case KeyEnter:
		if err := e.cursor.InsertBefore(buffer, "\n"); err != nil {
			return err
		}
		e.cursor = Cursor{Row: e.cursor.Row + 1}
		return nil

	case KeyTab:
		return e.insertText("\t")

	case KeySpace:
		return e.insertText(" ")

	case KeyBackspace:
		return e.cursor.DeleteBefore(buffer)

	case KeyUp:
		return e.cursor.MoveUp(1)
	case KeyDown:
		return e.cursor.MoveDown(buffer, 1)
	case KeyLeft:
		return e.cursor.MoveLeft(1)
	case KeyRight:
		e.cursor.MoveRight(1)
		return nil
	}

	if key.Printable() {
		return e.insertText(string(key.Rune))
	}
	return errorf(ErrKeyUnmappedId, "%s", key)
}

// insertText inserts before the cursor and moves past the inserted text.
func (e *Editor) insertText(text string) error {
	if err := e.cursor.InsertBefore(e.buffer, text); err != nil {
		return err
	}
	e.cursor.Col += utf8.RuneCountInString(text)
	return nil
}
