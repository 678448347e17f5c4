package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveUp(t *testing.T) {
	c := Cursor{Col: 4, Row: 3}

	err := c.MoveUp(5)
	requireErrorID(t, err, ErrCantMoveUpId)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 5, e.Attempted)
	assert.Equal(t, 3, e.Remaining)
	assert.Equal(t, Cursor{Col: 4, Row: 3}, c)

	require.NoError(t, c.MoveUp(3))
	assert.Equal(t, Cursor{Col: 4, Row: 0}, c)

	requireErrorID(t, c.MoveUp(1), ErrAlreadyAtTopId)
}

func TestMoveDown(t *testing.T) {
	b := NewBuffer(fixture)
	c := Cursor{Row: 4}

	err := c.MoveDown(b, 3)
	requireErrorID(t, err, ErrCantMoveDownId)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 3, e.Attempted)
	assert.Equal(t, 2, e.Remaining)
	assert.Equal(t, 4, c.Row)

	require.NoError(t, c.MoveDown(b, 2))
	assert.Equal(t, 6, c.Row)

	requireErrorID(t, c.MoveDown(b, 1), ErrAlreadyAtBottomId)

	single := Cursor{}
	requireErrorID(t, single.MoveDown(NewBuffer("one line"), 1), ErrAlreadyAtBottomId)
}

func TestMoveLeftRight(t *testing.T) {
	c := Cursor{Col: 2}

	err := c.MoveLeft(3)
	requireErrorID(t, err, ErrCantMoveLeftId)
	assert.Equal(t, 2, c.Col)

	require.NoError(t, c.MoveLeft(2))
	assert.Equal(t, 0, c.Col)

	c.MoveRight(100)
	assert.Equal(t, 100, c.Col, "moving right is not clamped")
}

func TestMoveWordStart(t *testing.T) {
	b := NewBuffer(fixture)

	tests := []struct {
		name  string
		from  Cursor
		count int
		long  bool
		want  int
		err   *ErrorId
	}{
		{name: "w to punctuation", from: Cursor{Col: 0}, count: 1, want: 2},
		{name: "w from punctuation", from: Cursor{Col: 2}, count: 1, want: 3},
		{name: "w over mixed word", from: Cursor{Col: 3}, count: 1, want: 10},
		{name: "3w", from: Cursor{Col: 0}, count: 3, want: 10},
		{name: "W", from: Cursor{Col: 0}, count: 1, long: true, want: 10},
		{name: "3W", from: Cursor{Col: 0}, count: 3, long: true, want: 16},
		{name: "w on whitespace lands on next word", from: Cursor{Col: 12}, count: 1, want: 14},
		{name: "W on whitespace", from: Cursor{Col: 9}, count: 1, long: true, want: 10},
		{name: "w on last line", from: Cursor{Col: 6, Row: 6}, count: 1, want: 9},
		{name: "w at end of line", from: Cursor{Col: 33}, count: 1, err: ptr(ErrNoMoreWordsInLineId)},
		{name: "w at end of last line", from: Cursor{Col: 9, Row: 6}, count: 1, err: ptr(ErrNoMoreWordsInLineId)},
		{name: "count past line end", from: Cursor{Col: 0}, count: 12, err: ptr(ErrNoMoreWordsInLineId)},
		{name: "on terminator", from: Cursor{Col: 34}, count: 1, err: ptr(ErrCursorOutOfBoundsId)},
		{name: "empty line", from: Cursor{Row: 2}, count: 1, err: ptr(ErrCursorOutOfBoundsId)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.from
			err := c.MoveWordStart(b, tt.count, tt.long)
			if tt.err != nil {
				requireErrorID(t, err, *tt.err)
				assert.Equal(t, tt.from, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Cursor{Col: tt.want, Row: tt.from.Row}, c)
		})
	}
}

func TestMoveWordEnd(t *testing.T) {
	b := NewBuffer(fixture)

	tests := []struct {
		name  string
		from  Cursor
		count int
		long  bool
		want  int
		err   *ErrorId
	}{
		{name: "e", from: Cursor{Col: 0}, count: 1, want: 1},
		{name: "e from word end", from: Cursor{Col: 1}, count: 1, want: 2},
		{name: "e from single char word", from: Cursor{Col: 2}, count: 1, want: 8},
		{name: "3e", from: Cursor{Col: 0}, count: 3, want: 8},
		{name: "E", from: Cursor{Col: 0}, count: 1, long: true, want: 8},
		{name: "3E", from: Cursor{Col: 0}, count: 3, long: true, want: 14},
		{name: "e on whitespace before single char word", from: Cursor{Col: 12}, count: 1, want: 16},
		{name: "e on whitespace", from: Cursor{Col: 9}, count: 1, want: 11},
		{name: "e on line 3", from: Cursor{Row: 3}, count: 2, want: 3},
		{name: "e at end of line", from: Cursor{Col: 33}, count: 1, err: ptr(ErrNoMoreWordsInLineId)},
		{name: "E past last word", from: Cursor{Col: 21}, count: 2, long: true, err: ptr(ErrNoMoreWordsInLineId)},
		{name: "past line", from: Cursor{Col: 40}, count: 1, err: ptr(ErrCursorOutOfBoundsId)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.from
			err := c.MoveWordEnd(b, tt.count, tt.long)
			if tt.err != nil {
				requireErrorID(t, err, *tt.err)
				assert.Equal(t, tt.from, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Cursor{Col: tt.want, Row: tt.from.Row}, c)
		})
	}
}

func TestMoveWordBack(t *testing.T) {
	b := NewBuffer(fixture)

	tests := []struct {
		name  string
		from  Cursor
		count int
		long  bool
		want  int
		err   *ErrorId
	}{
		{name: "b", from: Cursor{Col: 33}, count: 1, want: 26},
		{name: "b from terminator", from: Cursor{Col: 34}, count: 1, want: 33},
		{name: "2b", from: Cursor{Col: 33}, count: 2, want: 25},
		{name: "b over whitespace", from: Cursor{Col: 16}, count: 1, want: 14},
		{name: "b inside word", from: Cursor{Col: 6}, count: 1, want: 3},
		{name: "B", from: Cursor{Col: 33}, count: 1, long: true, want: 21},
		{name: "b past line end", from: Cursor{Col: 80}, count: 1, want: 33},
		{name: "b at column 0", from: Cursor{Col: 0}, count: 1, err: ptr(ErrNoMoreWordsInLineId)},
		{name: "count too large", from: Cursor{Col: 33}, count: 12, err: ptr(ErrNoMoreWordsInLineId)},
		{name: "leading whitespace only", from: Cursor{Col: 2, Row: 5}, count: 1, err: ptr(ErrNoMoreWordsInLineId)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.from
			err := c.MoveWordBack(b, tt.count, tt.long)
			if tt.err != nil {
				requireErrorID(t, err, *tt.err)
				assert.Equal(t, tt.from, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Cursor{Col: tt.want, Row: tt.from.Row}, c)
		})
	}
}

func TestMoveWordBackOnEmptyLastLine(t *testing.T) {
	b := NewBuffer("ab\n")
	c := Cursor{Row: 1}
	requireErrorID(t, c.MoveWordBack(b, 1, false), ErrNoMoreWordsInLineId)
}

func TestMoveWordBackEnd(t *testing.T) {
	b := NewBuffer(fixture)

	tests := []struct {
		name  string
		from  Cursor
		count int
		long  bool
		want  int
		err   *ErrorId
	}{
		{name: "ge from word start", from: Cursor{Col: 10}, count: 1, want: 8},
		{name: "ge from whitespace", from: Cursor{Col: 9}, count: 1, want: 8},
		{name: "2ge", from: Cursor{Col: 17}, count: 2, want: 14},
		{name: "gE from punctuation", from: Cursor{Col: 17}, count: 1, long: true, want: 14},
		{name: "gE", from: Cursor{Col: 21}, count: 1, long: true, want: 19},
		{name: "ge past line end", from: Cursor{Col: 40}, count: 1, want: 33},
		{name: "ge in first word", from: Cursor{Col: 1}, count: 1, err: ptr(ErrNoMoreWordsInLineId)},
		{name: "ge on empty line", from: Cursor{Row: 2}, count: 1, err: ptr(ErrNoMoreWordsInLineId)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.from
			err := c.MoveWordBackEnd(b, tt.count, tt.long)
			if tt.err != nil {
				requireErrorID(t, err, *tt.err)
				assert.Equal(t, tt.from, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Cursor{Col: tt.want, Row: tt.from.Row}, c)
		})
	}
}

func TestMoveLineStart(t *testing.T) {
	b := NewBuffer(fixture)

	c := Cursor{Col: 12, Row: 1}
	require.NoError(t, c.MoveLineStart(b))
	assert.Equal(t, Cursor{Row: 1}, c)

	requireErrorID(t, c.MoveLineStart(b), ErrAlreadyAtLineStartId)

	c = Cursor{Col: 5, Row: 2}
	requireErrorID(t, c.MoveLineStart(b), ErrLineEmptyId)
	assert.Equal(t, Cursor{Row: 2}, c, "column is reset on an empty line")
}

func TestMoveLineEnd(t *testing.T) {
	b := NewBuffer(fixture)

	c := Cursor{}
	require.NoError(t, c.MoveLineEnd(b))
	assert.Equal(t, 33, c.Col)

	requireErrorID(t, c.MoveLineEnd(b), ErrAlreadyAtLineEndId)
	assert.Equal(t, 33, c.Col)

	c = Cursor{Row: 6}
	require.NoError(t, c.MoveLineEnd(b))
	assert.Equal(t, 9, c.Col, "the last line has no terminator")

	c = Cursor{Col: 3, Row: 2}
	requireErrorID(t, c.MoveLineEnd(b), ErrLineEmptyId)
	assert.Equal(t, 0, c.Col)
}

func TestMoveFileStartEnd(t *testing.T) {
	b := NewBuffer(fixture)

	c := Cursor{Col: 5, Row: 3}
	require.NoError(t, c.MoveFileStart(b))
	assert.Equal(t, Cursor{}, c)

	require.NoError(t, c.MoveFileEnd(b))
	assert.Equal(t, Cursor{Col: 9, Row: 6}, c)

	trailing := NewBuffer("abc\n\n")
	require.NoError(t, c.MoveFileEnd(trailing))
	assert.Equal(t, Cursor{Col: 2, Row: 0}, c, "empty last lines are skipped")

	blank := NewBuffer("\n\n")
	require.NoError(t, c.MoveFileEnd(blank))
	assert.Equal(t, Cursor{Row: 2}, c)
}

func TestMoveFileStartEndOnEmptyBuffer(t *testing.T) {
	b := NewBuffer("")

	c := Cursor{Col: 3, Row: 1}
	requireErrorID(t, c.MoveFileEnd(b), ErrNoCharsInFileId)
	assert.Equal(t, Cursor{}, c)

	c = Cursor{Col: 3}
	requireErrorID(t, c.MoveFileStart(b), ErrNoCharsInFileId)
	assert.Equal(t, Cursor{}, c)
}

func TestDeleteLines(t *testing.T) {
	t.Run("first five lines", func(t *testing.T) {
		b := NewBuffer(fixture)
		c := Cursor{}

		removed, err := c.DeleteLines(b, 5)
		require.NoError(t, err)

		assert.Equal(t, "Po:¢7i¢or l¢  a d.am soll!c7tudin.\n"+
			"T1r¢is massa sed tem8us soll+citudin.\n"+
			"\n"+
			"Nul.am a!cu ¢san, 7aculis dol0r 3t.\n"+
			"Ve5tibulum an¢e ipsum.\n", removed)
		assert.Equal(t, "  d tem8us soll+citudin.\nEti¢m 7ug.", b.String())
		assert.Equal(t, Cursor{}, c)
	})

	t.Run("last line takes the terminator above", func(t *testing.T) {
		b := NewBuffer(fixture)
		c := Cursor{Col: 3, Row: 6}

		removed, err := c.DeleteLines(b, 1)
		require.NoError(t, err)
		assert.Equal(t, "Eti¢m 7ug.\n", removed)
		assert.Equal(t, 6, b.LineCount())

		last, err := b.Line(5)
		require.NoError(t, err)
		assert.False(t, last.HasTerminator())
	})

	t.Run("empty middle line", func(t *testing.T) {
		b := NewBuffer(fixture)
		c := Cursor{Row: 2}

		removed, err := c.DeleteLines(b, 1)
		require.NoError(t, err)
		assert.Equal(t, "\n", removed)
		assert.Equal(t, 6, b.LineCount())
	})

	t.Run("every line", func(t *testing.T) {
		b := NewBuffer("a\nb")
		c := Cursor{}

		removed, err := c.DeleteLines(b, 2)
		require.NoError(t, err)
		assert.Equal(t, "a\nb\n", removed)
		assert.True(t, b.IsEmpty())
		assert.Equal(t, 1, b.LineCount())
	})

	t.Run("zero is a no-op", func(t *testing.T) {
		b := NewBuffer(fixture)
		c := Cursor{}

		removed, err := c.DeleteLines(b, 0)
		require.NoError(t, err)
		assert.Empty(t, removed)
		assert.Equal(t, fixture, b.String())
	})

	t.Run("too many lines", func(t *testing.T) {
		b := NewBuffer(fixture)
		c := Cursor{Row: 5}

		_, err := c.DeleteLines(b, 3)
		requireErrorID(t, err, ErrNoMoreLinesToDeleteId)
		assert.Equal(t, fixture, b.String())
	})

	t.Run("empty buffer", func(t *testing.T) {
		c := Cursor{}
		_, err := c.DeleteLines(NewBuffer(""), 1)
		requireErrorID(t, err, ErrNoMoreLinesToDeleteId)
	})
}

func TestInsertBefore(t *testing.T) {
	b := NewBuffer("ab\ncd")

	c := Cursor{Col: 1}
	require.NoError(t, c.InsertBefore(b, "x"))
	assert.Equal(t, "axb\ncd", b.String())

	c = Cursor{Col: 2, Row: 1}
	require.NoError(t, c.InsertBefore(b, "y"))
	assert.Equal(t, "axb\ncdy", b.String(), "the tail appends")

	c = Cursor{Col: 9, Row: 1}
	requireErrorID(t, c.InsertBefore(b, "z"), ErrCursorOutOfBoundsId)
}

func TestDeleteBefore(t *testing.T) {
	b := NewBuffer("ab\ncd")

	c := Cursor{Row: 1}
	require.NoError(t, c.DeleteBefore(b))
	assert.Equal(t, "abcd", b.String())
	assert.Equal(t, Cursor{Col: 2}, c)

	c = Cursor{Col: 4}
	require.NoError(t, c.DeleteBefore(b))
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, Cursor{Col: 3}, c)

	c = Cursor{}
	requireErrorID(t, c.DeleteBefore(b), ErrAlreadyAtFileStartId)
	assert.Equal(t, "abc", b.String())
}

func ptr[T any](v T) *T {
	return &v
}
