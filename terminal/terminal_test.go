//go:build unix

package terminal

import (
	"testing"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

// openTestTerminal binds a Terminal to the replica side of a fresh pty
// pair so raw-mode transitions run against a real tty.
func openTestTerminal(t *testing.T) (*Terminal, *pty.Winsize, func()) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Fatalf("Failed to open pty: %v", err)
	}
	size := &pty.Winsize{Rows: 24, Cols: 80}
	if err := pty.Setsize(ptmx, size); err != nil {
		t.Fatalf("Failed to set pty size: %v", err)
	}
	term := &Terminal{
		in:    tty,
		out:   tty,
		inFd:  int(tty.Fd()),
		outFd: int(tty.Fd()),
	}
	cleanup := func() {
		tty.Close()
		ptmx.Close()
	}
	return term, size, cleanup
}

func TestEnableRawRestoreRoundTrip(t *testing.T) {
	term, _, cleanup := openTestTerminal(t)
	defer cleanup()

	before, err := unix.IoctlGetTermios(term.inFd, unix.TCGETS)
	if err != nil {
		t.Fatalf("Failed to read initial attributes: %v", err)
	}

	if err := term.EnableRaw(); err != nil {
		t.Fatalf("EnableRaw failed: %v", err)
	}

	raw, err := unix.IoctlGetTermios(term.inFd, unix.TCGETS)
	if err != nil {
		t.Fatalf("Failed to read raw attributes: %v", err)
	}
	if raw.Lflag&unix.ECHO != 0 {
		t.Error("Expected ECHO to be disabled in raw mode")
	}
	if raw.Lflag&unix.ICANON != 0 {
		t.Error("Expected ICANON to be disabled in raw mode")
	}
	if raw.Lflag&unix.ISIG != 0 {
		t.Error("Expected ISIG to be disabled in raw mode")
	}
	if raw.Iflag&unix.IXON != 0 {
		t.Error("Expected IXON to be disabled in raw mode")
	}
	if raw.Oflag&unix.OPOST != 0 {
		t.Error("Expected OPOST to be disabled in raw mode")
	}
	if raw.Cc[unix.VMIN] != 0 || raw.Cc[unix.VTIME] != 1 {
		t.Errorf("Expected VMIN=0 VTIME=1, got VMIN=%d VTIME=%d", raw.Cc[unix.VMIN], raw.Cc[unix.VTIME])
	}

	if err := term.Restore(); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	after, err := unix.IoctlGetTermios(term.inFd, unix.TCGETS)
	if err != nil {
		t.Fatalf("Failed to read restored attributes: %v", err)
	}
	if after.Iflag != before.Iflag || after.Oflag != before.Oflag ||
		after.Cflag != before.Cflag || after.Lflag != before.Lflag ||
		after.Cc != before.Cc {
		t.Error("Expected restored attributes to match the originals")
	}
}

func TestRestoreRunsOnce(t *testing.T) {
	term, _, cleanup := openTestTerminal(t)
	defer cleanup()

	if err := term.EnableRaw(); err != nil {
		t.Fatalf("EnableRaw failed: %v", err)
	}
	if err := term.Restore(); err != nil {
		t.Fatalf("First Restore failed: %v", err)
	}
	// Second call must be a no-op even after the fd state changed
	if err := term.Restore(); err != nil {
		t.Errorf("Expected repeated Restore to be a no-op, got %v", err)
	}
}

func TestRestoreBeforeEnableIsNoOp(t *testing.T) {
	term, _, cleanup := openTestTerminal(t)
	defer cleanup()

	if err := term.Restore(); err != nil {
		t.Errorf("Expected Restore without EnableRaw to be a no-op, got %v", err)
	}
}

func TestWindowSizeFromIoctl(t *testing.T) {
	term, size, cleanup := openTestTerminal(t)
	defer cleanup()

	rows, cols, err := term.WindowSize()
	if err != nil {
		t.Fatalf("WindowSize failed: %v", err)
	}
	if rows != int(size.Rows) || cols != int(size.Cols) {
		t.Errorf("Expected %dx%d, got %dx%d", size.Rows, size.Cols, rows, cols)
	}
}

func TestReadKeyFromPty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Fatalf("Failed to open pty: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	term := &Terminal{
		in:    tty,
		out:   tty,
		inFd:  int(tty.Fd()),
		outFd: int(tty.Fd()),
	}
	if err := term.EnableRaw(); err != nil {
		t.Fatalf("EnableRaw failed: %v", err)
	}
	defer term.Restore()

	if _, err := ptmx.WriteString("\x1b[C"); err != nil {
		t.Fatalf("Failed to write to pty: %v", err)
	}
	key, err := term.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey failed: %v", err)
	}
	if key != KeyArrowRight {
		t.Errorf("Expected ArrowRight, got %#x", key)
	}
}
