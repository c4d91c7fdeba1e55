package editor

import (
	"fmt"

	"ked/terminal"
)

// Version appears in the welcome banner when no file is loaded.
const Version = "0.0.1"

// Viewport is the terminal size discovered once at startup. Resize events
// are not tracked; the dimensions hold for the process lifetime.
type Viewport struct {
	Rows int
	Cols int
}

// render composes one full frame: cursor hidden and homed, every viewport
// row drawn (file row, welcome banner, or ~ filler) and cleared to end of
// line, rows separated by CRLF except after the last (an extra separator
// there would scroll the terminal), then the cursor repositioned and shown.
func render(f *frame, vp Viewport, cx, cy int, m *Model) error {
	if _, err := f.Write(terminal.CursorHide); err != nil {
		return err
	}
	if _, err := f.Write(terminal.CursorHome); err != nil {
		return err
	}

	for y := 0; y < vp.Rows; y++ {
		if err := renderRow(f, vp, y, m); err != nil {
			return err
		}
		if _, err := f.Write(terminal.ClearLineRight); err != nil {
			return err
		}
		if y < vp.Rows-1 {
			if _, err := f.WriteString("\r\n"); err != nil {
				return err
			}
		}
	}

	// Cursor position escapes are 1-based
	if _, err := fmt.Fprintf(f, "\x1b[%d;%dH", cy+1, cx+1); err != nil {
		return err
	}
	_, err := f.Write(terminal.CursorShow)
	return err
}

func renderRow(f *frame, vp Viewport, y int, m *Model) error {
	if y < len(m.Rows) {
		chars := m.Rows[y].Chars
		if len(chars) > vp.Cols {
			chars = chars[:vp.Cols]
		}
		_, err := f.Write(chars)
		return err
	}
	if len(m.Rows) == 0 && y == vp.Rows/3 {
		return renderBanner(f, vp)
	}
	_, err := f.WriteString("~")
	return err
}

// renderBanner centers the version banner, keeping the leading ~ so the
// line still reads as filler.
func renderBanner(f *frame, vp Viewport) error {
	banner := "ked editor -- version " + Version
	if len(banner) > vp.Cols {
		banner = banner[:vp.Cols]
	}
	padding := (vp.Cols - len(banner)) / 2
	if padding > 0 {
		if _, err := f.WriteString("~"); err != nil {
			return err
		}
		padding--
	}
	for ; padding > 0; padding-- {
		if _, err := f.WriteString(" "); err != nil {
			return err
		}
	}
	_, err := f.WriteString(banner)
	return err
}
