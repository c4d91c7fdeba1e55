package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"ked/editor"
	"ked/terminal"
)

func main() {
	// Panic recovery: restore a usable screen before the trace prints
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\nked crashed: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: ked [filename]")
		os.Exit(1)
	}

	logFile := setupLogging(os.Getenv("KED_DEBUG") == "1")
	if logFile != nil {
		defer logFile.Close()
	}

	// Every fatal condition funnels through here exactly once: reset the
	// screen, then the diagnostic, then exit 1. The terminal is never left
	// in raw mode.
	if err := run(); err != nil {
		terminal.EmergencyReset(os.Stdout)
		fmt.Fprintf(os.Stderr, "ked: %v\n", err)
		os.Exit(1)
	}
}

// run owns the whole session. It returns nil on a clean quit; any error is
// fatal. Raw mode is reverted on every path out, exactly once.
func run() (err error) {
	term, err := terminal.Open()
	if err != nil {
		return err
	}

	model := &editor.Model{}
	if len(os.Args) == 2 {
		if model, err = editor.Open(os.Args[1]); err != nil {
			return err
		}
		log.Printf("loaded %s: %d row(s)", os.Args[1], len(model.Rows))
	}

	if err := term.EnableRaw(); err != nil {
		return err
	}
	defer func() {
		if rerr := term.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	log.Println("raw mode enabled")

	rows, cols, err := term.WindowSize()
	if err != nil {
		return err
	}
	log.Printf("window size %dx%d", rows, cols)

	e := editor.New(term, editor.Viewport{Rows: rows, Cols: cols}, model)
	if err := e.Run(); err != nil {
		if errors.Is(err, editor.ErrQuit) {
			log.Println("clean quit")
			return nil
		}
		return err
	}
	return nil
}
