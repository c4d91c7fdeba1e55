//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// ErrWinSize means neither the ioctl nor the cursor-position fallback
// could determine the terminal dimensions.
var ErrWinSize = errors.New("unable to determine window size")

// cursorReplyMax bounds the DSR reply buffer: "\x1b[{row};{col}R" fits
// comfortably, anything longer is garbage.
const cursorReplyMax = 31

// WindowSize reports the terminal dimensions, discovered once at startup.
// The TIOCGWINSZ ioctl is authoritative; terminals that fail it or report
// zero columns are measured by parking the cursor at the bottom-right
// corner and asking where it ended up.
func (t *Terminal) WindowSize() (rows, cols int, err error) {
	if ws, err := unix.IoctlGetWinsize(t.outFd, unix.TIOCGWINSZ); err == nil && ws.Col != 0 {
		return int(ws.Row), int(ws.Col), nil
	}

	if _, err := t.Write(csiCursorBottomRight); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrWinSize, err)
	}
	rows, cols, err = queryCursorPosition(t, t)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrWinSize, err)
	}
	return rows, cols, nil
}

// queryCursorPosition sends a DSR cursor-position request and parses the
// "\x1b[{row};{col}R" reply, reading byte by byte until the terminating R
// or the bounded buffer fills. Malformed replies are ordinary errors; the
// caller decides whether that is fatal.
func queryCursorPosition(w io.Writer, src byteSource) (rows, cols int, err error) {
	if _, err := w.Write(csiCursorPosQuery); err != nil {
		return 0, 0, err
	}

	var buf [cursorReplyMax]byte
	n := 0
	for n < len(buf) {
		b, ok, err := src.readByte()
		if err != nil || !ok {
			break
		}
		if b == 'R' {
			break
		}
		buf[n] = b
		n++
	}

	if n < 2 || buf[0] != 0x1b || buf[1] != '[' {
		return 0, 0, errors.New("malformed cursor position reply")
	}
	if _, err := fmt.Sscanf(string(buf[2:n]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("parse cursor position reply: %w", err)
	}
	return rows, cols, nil
}
