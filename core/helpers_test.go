package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixture has 7 lines and no trailing newline. Line 0 has 34 visible chars,
// line 2 is empty.
const fixture = "Po:¢7i¢or l¢  a d.am soll!c7tudin.\n" +
	"T1r¢is massa sed tem8us soll+citudin.\n" +
	"\n" +
	"Nul.am a!cu ¢san, 7aculis dol0r 3t.\n" +
	"Ve5tibulum an¢e ipsum.\n" +
	"  d tem8us soll+citudin.\n" +
	"Eti¢m 7ug."

func newFixtureEditor(opts ...Option) *Editor {
	return NewEditor(NewBuffer(fixture), opts...)
}

// press feeds keys to e. Plain runes are typed as themselves.
func press(e *Editor, keys ...any) error {
	var err error
	for _, k := range keys {
		switch k := k.(type) {
		case rune:
			err = e.HandleKey(RuneKey(k))
		case string:
			for _, r := range k {
				err = e.HandleKey(RuneKey(r))
			}
		case KeyCode:
			err = e.HandleKey(SpecialKey(k))
		case KeyEvent:
			err = e.HandleKey(k)
		default:
			panic("press: unsupported key type")
		}
	}
	return err
}

func requireErrorID(t *testing.T, err error, want ErrorId) {
	t.Helper()
	require.Error(t, err)
	id, ok := ErrorID(err)
	require.True(t, ok, "not a core error: %v", err)
	require.Equal(t, want, id, "got %v", err)
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) Write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func (c *fakeClipboard) Read() (string, error) {
	return c.text, c.err
}

var errClipboardDown = errors.New("clipboard down")
