package core

import (
	"slices"
	"sort"
	"strings"
	"unicode/utf8"
)

// Buffer is the text store being edited.
//
// Text is addressed by char index (Unicode scalar values), byte index
// (UTF-8) and (line, column). A line terminator belongs to the line it ends
// and the last line has none, so for every line n with a successor
// CharIdxOfLineStart(n+1) == CharIdxOfLineEnd(n)+1. Edits invalidate every
// Line and index obtained before them.
type Buffer interface {
	// Content access
	LineCount() int
	Line(i int) (Line, error)
	Lines() []string // line contents without terminators, for display
	Len() int        // total chars, terminators included
	IsEmpty() bool
	String() string
	CharAt(charIdx int) (rune, error)

	// Index arithmetic
	CharIdxOfLineStart(i int) (int, error)
	CharIdxOfLineEnd(i int) (int, error)
	ByteIdxOfLineStart(i int) (int, error)
	ByteIdxOfLineEnd(i int) (int, error)
	CharToByte(charIdx int) (int, error)
	ByteToChar(byteIdx int) (int, error)

	// Modification
	Insert(charIdx int, text string) error
	Remove(start, end int) (string, error) // half-open [start, end)

	// Segmentation over the inclusive char range [start, end]
	Words(start, end int) ([]Word, error)
	WordsLong(start, end int) ([]Word, error)

	// Cursor classification
	CharIdxAt(c Cursor) (int, error)
	InVisualBounds(c Cursor) bool
	InRawBounds(c Cursor) bool
	OnTail(c Cursor) bool
}

// textBuffer keeps one rune slice per line (terminators implied) plus
// cumulative char and byte offsets that are rebuilt lazily after edits.
type textBuffer struct {
	lines [][]rune

	starts     []int
	byteStarts []int
	total      int
	totalBytes int
	dirty      bool
}

// NewBuffer creates a buffer holding text. The text is taken as is: a
// trailing "\n" produces an empty last line.
func NewBuffer(text string) Buffer {
	b := &textBuffer{}
	b.setContent(text)
	return b
}

func (b *textBuffer) setContent(text string) {
	parts := strings.Split(text, "\n")
	b.lines = make([][]rune, len(parts))
	for i, part := range parts {
		b.lines[i] = []rune(part)
	}
	b.dirty = true
}

func (b *textBuffer) reindex() {
	if !b.dirty {
		return
	}

	n := len(b.lines)
	b.starts = slices.Grow(b.starts[:0], n)[:n]
	b.byteStarts = slices.Grow(b.byteStarts[:0], n)[:n]

	chars, byteCount := 0, 0
	for i, line := range b.lines {
		b.starts[i] = chars
		b.byteStarts[i] = byteCount
		chars += len(line)
		byteCount += runesByteLen(line)
		if i < n-1 {
			chars++
			byteCount++
		}
	}

	b.total = chars
	b.totalBytes = byteCount
	b.dirty = false
}

func runesByteLen(runes []rune) int {
	n := 0
	for _, r := range runes {
		n += utf8.RuneLen(r)
	}
	return n
}

func (b *textBuffer) LineCount() int {
	return len(b.lines)
}

func (b *textBuffer) Line(i int) (Line, error) {
	if err := b.checkLine(i); err != nil {
		return Line{}, err
	}
	return Line{runes: b.lines[i], terminated: i < len(b.lines)-1}, nil
}

func (b *textBuffer) Lines() []string {
	lines := make([]string, len(b.lines))
	for i, r := range b.lines {
		lines[i] = string(r)
	}
	return lines
}

func (b *textBuffer) Len() int {
	b.reindex()
	return b.total
}

func (b *textBuffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

func (b *textBuffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

func (b *textBuffer) CharAt(charIdx int) (rune, error) {
	if charIdx < 0 || charIdx >= b.Len() {
		return 0, errorf(ErrCharRangeOutOfBoundsId, "char %d, len %d", charIdx, b.total)
	}
	row, col := b.position(charIdx)
	if col == len(b.lines[row]) {
		return '\n', nil
	}
	return b.lines[row][col], nil
}

func (b *textBuffer) checkLine(i int) error {
	if i < 0 || i >= len(b.lines) {
		return errorf(ErrLineIndexOutOfBoundsId, "line %d, line count %d", i, len(b.lines))
	}
	return nil
}

// position converts a char index in [0, Len()] to (row, col). A col equal
// to the line length addresses the terminator, or the tail on the last line.
func (b *textBuffer) position(charIdx int) (row, col int) {
	b.reindex()
	row = sort.Search(len(b.starts), func(i int) bool { return b.starts[i] > charIdx }) - 1
	return row, charIdx - b.starts[row]
}

// --- Index arithmetic ---

func (b *textBuffer) CharIdxOfLineStart(i int) (int, error) {
	if err := b.checkLine(i); err != nil {
		return 0, err
	}
	b.reindex()
	return b.starts[i], nil
}

// CharIdxOfLineEnd returns the index of the line's terminator, or of the
// final char of the store for the last line. An empty last line therefore
// ends one before it starts.
func (b *textBuffer) CharIdxOfLineEnd(i int) (int, error) {
	if err := b.checkLine(i); err != nil {
		return 0, err
	}
	b.reindex()
	end := b.starts[i] + len(b.lines[i])
	if i == len(b.lines)-1 {
		end--
	}
	return end, nil
}

func (b *textBuffer) ByteIdxOfLineStart(i int) (int, error) {
	if err := b.checkLine(i); err != nil {
		return 0, err
	}
	b.reindex()
	return b.byteStarts[i], nil
}

// ByteIdxOfLineEnd returns the index of the last byte belonging to line i.
func (b *textBuffer) ByteIdxOfLineEnd(i int) (int, error) {
	if err := b.checkLine(i); err != nil {
		return 0, err
	}
	b.reindex()
	end := b.byteStarts[i] + runesByteLen(b.lines[i])
	if i == len(b.lines)-1 {
		end--
	}
	return end, nil
}

func (b *textBuffer) CharToByte(charIdx int) (int, error) {
	if charIdx < 0 || charIdx > b.Len() {
		return 0, errorf(ErrCharRangeOutOfBoundsId, "char %d, len %d", charIdx, b.total)
	}
	row, col := b.position(charIdx)
	return b.byteStarts[row] + runesByteLen(b.lines[row][:col]), nil
}

func (b *textBuffer) ByteToChar(byteIdx int) (int, error) {
	b.reindex()
	if byteIdx < 0 || byteIdx > b.totalBytes {
		return 0, errorf(ErrByteIndexOutOfBoundsId, "byte %d, len %d", byteIdx, b.totalBytes)
	}

	row := sort.Search(len(b.byteStarts), func(i int) bool { return b.byteStarts[i] > byteIdx }) - 1
	offset := byteIdx - b.byteStarts[row]
	col := 0
	for _, r := range b.lines[row] {
		if offset == 0 {
			break
		}
		offset -= utf8.RuneLen(r)
		col++
	}
	if offset < 0 {
		return 0, errorf(ErrByteIndexOutOfBoundsId, "byte %d is not on a char boundary", byteIdx)
	}
	return b.starts[row] + col, nil
}

// --- Modification ---

// Insert inserts text before the char at charIdx. "\n" in text splits lines.
func (b *textBuffer) Insert(charIdx int, text string) error {
	if charIdx < 0 || charIdx > b.Len() {
		return errorf(ErrInsertPointOutOfBoundsId, "char %d, len %d", charIdx, b.total)
	}
	if text == "" {
		return nil
	}

	row, col := b.position(charIdx)
	line := b.lines[row]

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		newLine := make([]rune, 0, len(line)+len(text))
		newLine = append(newLine, line[:col]...)
		newLine = append(newLine, []rune(text)...)
		newLine = append(newLine, line[col:]...)
		b.lines[row] = newLine
		b.dirty = true
		return nil
	}

	tail := slices.Clone(line[col:])
	newLines := make([][]rune, len(parts))
	newLines[0] = append(slices.Clone(line[:col]), []rune(parts[0])...)
	for i := 1; i < len(parts); i++ {
		newLines[i] = []rune(parts[i])
	}
	last := len(newLines) - 1
	newLines[last] = append(newLines[last], tail...)

	b.lines = slices.Replace(b.lines, row, row+1, newLines...)
	b.dirty = true
	return nil
}

// Remove deletes the chars in [start, end) and returns them.
func (b *textBuffer) Remove(start, end int) (string, error) {
	if start > end {
		return "", errorf(ErrCharRangeInvalidId, "start %d after end %d", start, end)
	}
	if start < 0 || end > b.Len() {
		return "", errorf(ErrCharRangeOutOfBoundsId, "range [%d, %d), len %d", start, end, b.total)
	}
	if start == end {
		return "", nil
	}

	r1, c1 := b.position(start)
	r2, c2 := b.position(end)

	var removed strings.Builder
	for r := r1; r <= r2; r++ {
		from, to := 0, len(b.lines[r])
		if r == r1 {
			from = c1
		}
		if r == r2 {
			to = c2
		}
		removed.WriteString(string(b.lines[r][from:to]))
		if r < r2 {
			removed.WriteByte('\n')
		}
	}

	merged := append(slices.Clone(b.lines[r1][:c1]), b.lines[r2][c2:]...)
	b.lines = slices.Replace(b.lines, r1, r2+1, merged)
	b.dirty = true

	return removed.String(), nil
}

// --- Cursor classification ---

// CharIdxAt returns the char index under c, which must be in raw bounds.
func (b *textBuffer) CharIdxAt(c Cursor) (int, error) {
	if !b.InRawBounds(c) {
		return 0, errorf(ErrCursorOutOfBoundsId, "(%d, %d)", c.Col, c.Row)
	}
	b.reindex()
	return b.starts[c.Row] + c.Col, nil
}

// InVisualBounds reports whether c is on a visible char of its line.
func (b *textBuffer) InVisualBounds(c Cursor) bool {
	if c.Row < 0 || c.Row >= len(b.lines) || c.Col < 0 {
		return false
	}
	return c.Col < len(b.lines[c.Row])
}

// InRawBounds is InVisualBounds widened to include the line terminator.
func (b *textBuffer) InRawBounds(c Cursor) bool {
	if c.Row < 0 || c.Row >= len(b.lines) || c.Col < 0 {
		return false
	}
	line, _ := b.Line(c.Row)
	return c.Col < line.Len()
}

// OnTail reports whether c is one past the final char of the store.
func (b *textBuffer) OnTail(c Cursor) bool {
	last := len(b.lines) - 1
	return c.Row == last && c.Col == len(b.lines[last])
}
