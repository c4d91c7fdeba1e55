package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// Screen and line clearing
	ClearScreen    = []byte("\x1b[2J")
	ClearLineRight = []byte("\x1b[K")

	// Cursor control
	CursorHome = []byte("\x1b[H")
	CursorHide = []byte("\x1b[?25l")
	CursorShow = []byte("\x1b[?25h")

	// Window-size fallback: park the cursor at the bottom-right corner,
	// then ask the terminal where it ended up (DSR cursor position report)
	csiCursorBottomRight = []byte("\x1b[999C\x1b[999B")
	csiCursorPosQuery    = []byte("\x1b[6n")
)
