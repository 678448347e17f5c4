package adapter_bubbletea

import (
	"errors"

	"github.com/atotto/clipboard"
)

var ErrClipboardUnsupported = errors.New("no system clipboard available")

// SystemClipboard is the OS clipboard. It backs the register that receives
// deleted lines.
type SystemClipboard struct{}

func (SystemClipboard) Write(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

func (SystemClipboard) Read() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}
	return clipboard.ReadAll()
}

// Available reports whether the OS clipboard can be used.
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}
