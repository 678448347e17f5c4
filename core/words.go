package core

import (
	"unicode"
	"unicode/utf8"
)

// CharClass is the classification used to split text into words.
type CharClass int

const (
	Whitespace CharClass = iota
	Letter
	Number
	Punctuation
)

func (c CharClass) String() string {
	switch c {
	case Whitespace:
		return "whitespace"
	case Letter:
		return "letter"
	case Number:
		return "number"
	case Punctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}

// Classify returns the class of r. Every rune gets exactly one class:
// ASCII punctuation and symbols, plus Unicode punctuation, are Punctuation;
// everything that is neither space, punctuation nor a number is a Letter.
func Classify(r rune) CharClass {
	switch {
	case unicode.IsSpace(r):
		return Whitespace
	case r == '_':
		return Letter
	case r < utf8.RuneSelf && (unicode.IsPunct(r) || unicode.IsSymbol(r)):
		return Punctuation
	case unicode.IsPunct(r):
		return Punctuation
	case unicode.IsNumber(r):
		return Number
	default:
		return Letter
	}
}

// keyword reports whether c belongs to the keyword group. Letters and
// numbers form one short word, as in vi.
func (c CharClass) keyword() bool {
	return c == Letter || c == Number
}

// Char is a rune and its offset from the start of the segmented range.
type Char struct {
	Value   rune
	CharIdx int
}

// Word is a non-empty run of chars.
type Word []Char

func (w Word) First() Char { return w[0] }

func (w Word) Last() Char { return w[len(w)-1] }

func (w Word) Len() int { return len(w) }

func (w Word) String() string {
	runes := make([]rune, len(w))
	for i, c := range w {
		runes[i] = c.Value
	}
	return string(runes)
}

// Segment splits runes into words. Whitespace separates words and is never
// part of one. In long mode any non-whitespace run is a single word; in
// short mode a word also ends where keyword chars meet punctuation.
func Segment(runes []rune, long bool) []Word {
	var (
		words []Word
		cur   Word
		prev  CharClass
	)

	for i, r := range runes {
		class := Classify(r)
		if class == Whitespace {
			if len(cur) > 0 {
				words = append(words, cur)
				cur = nil
			}
			continue
		}
		if len(cur) > 0 && !long && class.keyword() != prev.keyword() {
			words = append(words, cur)
			cur = nil
		}
		cur = append(cur, Char{Value: r, CharIdx: i})
		prev = class
	}

	if len(cur) > 0 {
		words = append(words, cur)
	}
	return words
}

// Words returns the short words in the inclusive char range [start, end].
// A range with end < start is empty.
func (b *textBuffer) Words(start, end int) ([]Word, error) {
	runes, err := b.runesIn(start, end)
	if err != nil {
		return nil, err
	}
	return Segment(runes, false), nil
}

// WordsLong is Words with whitespace as the only separator.
func (b *textBuffer) WordsLong(start, end int) ([]Word, error) {
	runes, err := b.runesIn(start, end)
	if err != nil {
		return nil, err
	}
	return Segment(runes, true), nil
}

func (b *textBuffer) runesIn(start, end int) ([]rune, error) {
	if end < start {
		return nil, nil
	}
	if start < 0 || end >= b.Len() {
		return nil, errorf(ErrCharRangeOutOfBoundsId, "range [%d, %d], len %d", start, end, b.total)
	}

	r1, c1 := b.position(start)
	r2, c2 := b.position(end)

	runes := make([]rune, 0, end-start+1)
	for r := r1; r <= r2; r++ {
		line := b.lines[r]
		from, to := 0, len(line) // to is inclusive, len(line) is the terminator
		if r == r1 {
			from = c1
		}
		if r == r2 {
			to = c2
		}
		if to < len(line) {
			runes = append(runes, line[from:to+1]...)
			continue
		}
		runes = append(runes, line[from:]...)
		runes = append(runes, '\n')
	}
	return runes, nil
}
