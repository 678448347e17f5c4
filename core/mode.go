package core

type Mode string

const (
	NormalMode Mode = "normal"
	InsertMode Mode = "insert"
	GoToMode   Mode = "goto"
	DeleteMode Mode = "delete"
)

// maxCount caps a typed count so that it cannot overflow.
const maxCount = 999_999

// accumulateCount appends digit to a pending count, starting one when
// count is nil. Digits that would exceed maxCount are ignored.
func accumulateCount(count *int, digit int) *int {
	if count == nil {
		count = new(int)
	}
	if *count > (maxCount-digit)/10 {
		return count
	}
	*count = *count*10 + digit
	return count
}

// countOrOne returns the count, or 1 when none was typed.
func countOrOne(count *int) int {
	if count == nil {
		return 1
	}
	return *count
}
