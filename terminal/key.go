package terminal

// Key is one decoded input key. Values 0-255 carry the raw byte delivered
// by the terminal verbatim; whether such a byte is a control character is a
// property of its numeric value, not separate state. Keys produced by
// multi-byte escape sequences sit above the byte range.
type Key int32

// KeyEscape is a literal escape byte. Unrecognized or timed-out escape
// sequences decode to it rather than blocking or failing.
const KeyEscape Key = 0x1b

// Escape-sequence keys
const (
	KeyArrowLeft Key = 0x100 + iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
)

// Ctrl maps a letter to its control-key value: Ctrl('q') is the byte the
// terminal sends for Ctrl-Q.
func Ctrl(b byte) Key {
	return Key(b & 0x1f)
}

// IsControl reports whether k is a non-printable byte (C0 range or DEL).
// Escape-sequence keys are not bytes and report false.
func (k Key) IsControl() bool {
	return (k >= 0 && k < 0x20) || k == 0x7f
}
