// Package loader turns file bytes into the text a core buffer is built from.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Load reads the file at path. A file that does not exist yet loads as
// empty text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("loading %s: %w", path, err)
	}

	text, err := Normalize(data)
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", path, err)
	}
	return text, nil
}

func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return Normalize(data)
}

// Normalize validates data as UTF-8, converts CRLF and lone CR line endings
// to LF, and drops one trailing newline so that "a\n" is a single line.
func Normalize(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w at byte %d", ErrInvalidUTF8, invalidOffset(data))
	}

	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	data = bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\n"))

	return string(data), nil
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(data)
}
