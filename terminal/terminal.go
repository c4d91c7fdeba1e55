//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNotTerminal means stdin is not attached to a tty, so raw mode is
// impossible before any ioctl is attempted.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Terminal owns the controlling tty: mode transitions, raw byte reads and
// escape output. Exactly one raw-mode session exists per process.
type Terminal struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	orig     *unix.Termios
	restored bool
}

// Open binds the process stdin/stdout. It fails when stdin is not a tty.
func Open() (*Terminal, error) {
	t := &Terminal{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
	if !term.IsTerminal(t.inFd) {
		return nil, ErrNotTerminal
	}
	return t, nil
}

// EnableRaw captures the current terminal attributes and switches the tty
// into raw mode: no echo, no line buffering, no signal keys, no input or
// output processing, 8-bit characters. VMIN=0 with VTIME=1 makes every
// read time out after roughly 100ms instead of blocking forever, which is
// what keeps escape decoding from hanging on a lone ESC byte.
func (t *Terminal) EnableRaw() error {
	orig, err := unix.IoctlGetTermios(t.inFd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("get terminal attributes: %w", err)
	}
	t.orig = orig
	t.restored = false

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	// TCSETSF applies after flushing pending input (TCSAFLUSH semantics)
	if err := unix.IoctlSetTermios(t.inFd, unix.TCSETSF, &raw); err != nil {
		return fmt.Errorf("set terminal attributes: %w", err)
	}
	return nil
}

// Restore reapplies the attributes captured by EnableRaw. It is safe to
// call on every exit path, including from crash handlers; only the first
// call touches the tty.
func (t *Terminal) Restore() error {
	if t.orig == nil || t.restored {
		return nil
	}
	t.restored = true
	if err := unix.IoctlSetTermios(t.inFd, unix.TCSETSF, t.orig); err != nil {
		return fmt.Errorf("restore terminal attributes: %w", err)
	}
	return nil
}

// Write sends raw bytes to the terminal.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// readByte performs one bounded read under the raw-mode VTIME contract.
// ok is false when no byte arrived before the timeout; err is a real I/O
// failure. EINTR and EAGAIN count as timeouts, matching the retry policy
// of the read loop above this.
func (t *Terminal) readByte() (b byte, ok bool, err error) {
	var buf [1]byte
	n, err := unix.Read(t.inFd, buf[:])
	if n == 1 {
		return buf[0], true, nil
	}
	if err == nil || err == unix.EINTR || err == unix.EAGAIN {
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("read terminal: %w", err)
}

// ReadKey blocks until the next logical key arrives, decoding escape
// sequences along the way. Timeouts are retried indefinitely; any other
// read failure is fatal.
func (t *Terminal) ReadKey() (Key, error) {
	return readKey(t)
}

// EmergencyReset writes a best-effort screen reset for exit paths that are
// about to print diagnostics: clear, home, cursor visible. Termios restore
// is Terminal.Restore's job; this only deals in escape output.
func EmergencyReset(w io.Writer) {
	w.Write(ClearScreen)
	w.Write(CursorHome)
	w.Write(CursorShow)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
