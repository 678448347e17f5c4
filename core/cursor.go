package core

import "strings"

// Cursor is a (column, row) position. It is not bounds checked: a cursor may
// sit past the end of its line, and every motion classifies it against the
// buffer before using it. Motions that fail leave the cursor unchanged unless
// their doc says otherwise.
type Cursor struct {
	Col int
	Row int
}

// --- Vertical and horizontal ---

func (c *Cursor) MoveUp(count int) error {
	if c.Row <= 0 {
		return newError(ErrAlreadyAtTopId)
	}
	if count > c.Row {
		return moveError(ErrCantMoveUpId, count, c.Row)
	}
	c.Row -= count
	return nil
}

func (c *Cursor) MoveDown(buffer Buffer, count int) error {
	remaining := buffer.LineCount() - 1 - c.Row
	if remaining <= 0 {
		return newError(ErrAlreadyAtBottomId)
	}
	if count > remaining {
		return moveError(ErrCantMoveDownId, count, remaining)
	}
	c.Row += count
	return nil
}

func (c *Cursor) MoveLeft(count int) error {
	if count > c.Col {
		return moveError(ErrCantMoveLeftId, count, c.Col)
	}
	c.Col -= count
	return nil
}

// MoveRight does not clamp; the cursor may end up past the line.
func (c *Cursor) MoveRight(count int) {
	c.Col += count
}

// --- Words ---

func segment(buffer Buffer, start, end int, long bool) ([]Word, error) {
	if long {
		return buffer.WordsLong(start, end)
	}
	return buffer.Words(start, end)
}

// MoveWordStart moves to the start of the count-th next word (w, W).
// Standing on whitespace already faces the next word, so it counts as the
// first one.
func (c *Cursor) MoveWordStart(buffer Buffer, count int, long bool) error {
	if !buffer.InVisualBounds(*c) {
		return errorf(ErrCursorOutOfBoundsId, "(%d, %d)", c.Col, c.Row)
	}

	line, err := buffer.Line(c.Row)
	if err != nil {
		return err
	}
	start, err := buffer.CharIdxAt(*c)
	if err != nil {
		return err
	}
	end, err := buffer.CharIdxOfLineEnd(c.Row)
	if err != nil {
		return err
	}
	words, err := segment(buffer, start, end, long)
	if err != nil {
		return err
	}

	idx := count
	if r, _ := line.At(c.Col); Classify(r) == Whitespace {
		idx = count - 1
	}
	if idx >= len(words) {
		return newError(ErrNoMoreWordsInLineId)
	}

	c.Col += words[idx].First().CharIdx
	return nil
}

// MoveWordEnd moves to the end of the count-th word ahead (e, E). A
// single-char first word is skipped, so the cursor never stays put on a
// one-char word it already sits on.
func (c *Cursor) MoveWordEnd(buffer Buffer, count int, long bool) error {
	if !buffer.InVisualBounds(*c) {
		return errorf(ErrCursorOutOfBoundsId, "(%d, %d)", c.Col, c.Row)
	}

	start, err := buffer.CharIdxAt(*c)
	if err != nil {
		return err
	}
	end, err := buffer.CharIdxOfLineEnd(c.Row)
	if err != nil {
		return err
	}
	words, err := segment(buffer, start, end, long)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return newError(ErrNoMoreWordsInLineId)
	}

	idx := count - 1
	if words[0].Len() == 1 {
		idx = count
	}
	if idx >= len(words) {
		return newError(ErrNoMoreWordsInLineId)
	}

	c.Col += words[idx].Last().CharIdx
	return nil
}

// MoveWordBack moves to the start of the count-th word behind the cursor
// (b, B). A cursor past the end of the line searches the whole line.
func (c *Cursor) MoveWordBack(buffer Buffer, count int, long bool) error {
	line, err := buffer.Line(c.Row)
	if err != nil {
		return err
	}
	if c.Col == 0 || line.IsEmpty() {
		return newError(ErrNoMoreWordsInLineId)
	}

	start, err := buffer.CharIdxOfLineStart(c.Row)
	if err != nil {
		return err
	}
	endCol := min(c.Col-1, line.Len()-1)
	words, err := segment(buffer, start, start+endCol, long)
	if err != nil {
		return err
	}
	if count > len(words) {
		return newError(ErrNoMoreWordsInLineId)
	}

	c.Col = words[len(words)-count].First().CharIdx
	return nil
}

// MoveWordBackEnd moves to the end of the count-th word behind the cursor
// (ge, gE). It mirrors MoveWordStart: the word under the cursor is skipped,
// while whitespace already faces the previous word.
func (c *Cursor) MoveWordBackEnd(buffer Buffer, count int, long bool) error {
	line, err := buffer.Line(c.Row)
	if err != nil {
		return err
	}
	if line.IsVisuallyEmpty() {
		return newError(ErrNoMoreWordsInLineId)
	}

	start, err := buffer.CharIdxOfLineStart(c.Row)
	if err != nil {
		return err
	}
	endCol := min(c.Col, line.VisualLen()-1)
	words, err := segment(buffer, start, start+endCol, long)
	if err != nil {
		return err
	}

	idx := count - 1
	if r, ok := line.At(c.Col); ok && Classify(r) != Whitespace {
		idx = count
	}
	if idx >= len(words) {
		return newError(ErrNoMoreWordsInLineId)
	}

	c.Col = words[len(words)-1-idx].Last().CharIdx
	return nil
}

// --- Line and file boundaries ---

// MoveLineStart moves to column 0. On a visually empty line the column is
// reset even though ErrLineEmpty is returned.
func (c *Cursor) MoveLineStart(buffer Buffer) error {
	line, err := buffer.Line(c.Row)
	if err != nil {
		return err
	}
	if line.IsVisuallyEmpty() {
		c.Col = 0
		return newError(ErrLineEmptyId)
	}
	if c.Col == 0 {
		return newError(ErrAlreadyAtLineStartId)
	}
	c.Col = 0
	return nil
}

// MoveLineEnd moves to the last visible char. On a visually empty line the
// column is reset even though ErrLineEmpty is returned.
func (c *Cursor) MoveLineEnd(buffer Buffer) error {
	line, err := buffer.Line(c.Row)
	if err != nil {
		return err
	}
	last := line.VisualLen() - 1
	if last < 0 {
		c.Col = 0
		return newError(ErrLineEmptyId)
	}
	if c.Col == last {
		return newError(ErrAlreadyAtLineEndId)
	}
	c.Col = last
	return nil
}

// MoveFileStart moves to (0, 0), also when it fails on an empty buffer.
func (c *Cursor) MoveFileStart(buffer Buffer) error {
	*c = Cursor{}
	if buffer.IsEmpty() {
		return newError(ErrNoCharsInFileId)
	}
	return nil
}

// MoveFileEnd moves to the last char of the last visually non-empty line.
// On an empty buffer it resets to (0, 0) and fails.
func (c *Cursor) MoveFileEnd(buffer Buffer) error {
	if buffer.IsEmpty() {
		*c = Cursor{}
		return newError(ErrNoCharsInFileId)
	}

	for row := buffer.LineCount() - 1; row >= 0; row-- {
		line, err := buffer.Line(row)
		if err != nil {
			return err
		}
		if !line.IsVisuallyEmpty() {
			*c = Cursor{Col: line.VisualLen() - 1, Row: row}
			return nil
		}
	}

	*c = Cursor{Row: buffer.LineCount() - 1}
	return nil
}

// --- Edits ---

// DeleteLines removes count lines starting at the cursor row and returns
// them as linewise text ending in "\n". The row is left alone; the caller
// clamps it to the new line count.
func (c *Cursor) DeleteLines(buffer Buffer, count int) (string, error) {
	if count == 0 {
		return "", nil
	}
	if buffer.IsEmpty() || c.Row+count > buffer.LineCount() {
		return "", errorf(ErrNoMoreLinesToDeleteId, "%d from line %d of %d", count, c.Row, buffer.LineCount())
	}

	start, err := buffer.CharIdxOfLineStart(c.Row)
	if err != nil {
		return "", err
	}
	end, err := buffer.CharIdxOfLineEnd(c.Row + count - 1)
	if err != nil {
		return "", err
	}

	// Deleting through the last line leaves no terminator behind, so take the
	// one ending the line above instead.
	joinAbove := c.Row+count == buffer.LineCount() && c.Row > 0
	if joinAbove {
		start--
	}

	removed, err := buffer.Remove(start, end+1)
	if err != nil {
		return "", err
	}
	if joinAbove {
		removed = removed[1:]
	}
	if !strings.HasSuffix(removed, "\n") {
		removed += "\n"
	}
	return removed, nil
}

// InsertBefore inserts text before the char under the cursor, or appends it
// when the cursor is on the tail. The caller moves the cursor.
func (c *Cursor) InsertBefore(buffer Buffer, text string) error {
	if buffer.OnTail(*c) {
		return buffer.Insert(buffer.Len(), text)
	}
	idx, err := buffer.CharIdxAt(*c)
	if err != nil {
		return err
	}
	return buffer.Insert(idx, text)
}

// DeleteBefore removes the char before the cursor and moves onto its place.
// At column 0 it joins the line with the one above.
func (c *Cursor) DeleteBefore(buffer Buffer) error {
	if c.Col == 0 && c.Row == 0 {
		return newError(ErrAlreadyAtFileStartId)
	}

	var idx int
	if buffer.OnTail(*c) {
		idx = buffer.Len()
	} else {
		var err error
		if idx, err = buffer.CharIdxAt(*c); err != nil {
			return err
		}
	}

	next := Cursor{Col: c.Col - 1, Row: c.Row}
	if c.Col == 0 {
		above, err := buffer.Line(c.Row - 1)
		if err != nil {
			return err
		}
		next = Cursor{Col: above.VisualLen(), Row: c.Row - 1}
	}

	if _, err := buffer.Remove(idx-1, idx); err != nil {
		return err
	}
	*c = next
	return nil
}
