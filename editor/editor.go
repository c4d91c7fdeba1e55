// Package editor implements the text model, frame renderer and the
// render/read/dispatch loop on top of the terminal package.
package editor

import (
	"errors"
	"io"
	"log"

	"ked/terminal"
)

// ErrQuit reports a deliberate quit. It is the loop's only clean exit and
// maps to process exit status 0.
var ErrQuit = errors.New("quit")

// quitKey ends the session (Ctrl-Q).
var quitKey = terminal.Ctrl('q')

// Term is the terminal surface the loop needs: raw escape output and
// decoded key input. *terminal.Terminal satisfies it; tests substitute
// scripted fakes.
type Term interface {
	io.Writer
	ReadKey() (terminal.Key, error)
}

// Editor ties terminal, viewport, cursor and text model into one state
// object constructed at startup. Nothing here is global; the loop owns
// all of it for the process lifetime.
type Editor struct {
	term  Term
	vp    Viewport
	model *Model

	cx int
	cy int
}

// New builds an editor with the cursor at the top-left.
func New(term Term, vp Viewport, model *Model) *Editor {
	return &Editor{term: term, vp: vp, model: model}
}

// Run drives the loop: draw a frame and flush it in one write, block for
// the next key, dispatch, repeat. It returns ErrQuit when the user quits
// and a fatal error otherwise; it never exits the process itself.
func (e *Editor) Run() error {
	for {
		var f frame
		if err := render(&f, e.vp, e.cx, e.cy, e.model); err != nil {
			return err
		}
		if err := f.flush(e.term); err != nil {
			return err
		}

		key, err := e.term.ReadKey()
		if err != nil {
			return err
		}
		if err := e.handleKey(key); err != nil {
			return err
		}
	}
}

func (e *Editor) handleKey(key terminal.Key) error {
	switch key {
	case quitKey:
		// Leave a clean screen behind before the loop unwinds
		if _, err := e.term.Write(terminal.ClearScreen); err != nil {
			return err
		}
		if _, err := e.term.Write(terminal.CursorHome); err != nil {
			return err
		}
		log.Println("quit requested")
		return ErrQuit

	case terminal.KeyHome:
		e.cx = 0
	case terminal.KeyEnd:
		e.cx = e.vp.Cols - 1

	case terminal.KeyPageUp, terminal.KeyPageDown:
		// Full-screen jump without a scroll model: repeat the vertical
		// move once per viewport row
		dir := terminal.KeyArrowUp
		if key == terminal.KeyPageDown {
			dir = terminal.KeyArrowDown
		}
		for i := 0; i < e.vp.Rows; i++ {
			e.moveCursor(dir)
		}

	case terminal.KeyArrowUp, terminal.KeyArrowDown, terminal.KeyArrowLeft, terminal.KeyArrowRight:
		e.moveCursor(key)
	}
	// Every other key is a no-op in this engine
	return nil
}

// moveCursor clamps against the viewport, not the row under the cursor,
// so the cursor can sit past the end of a short line. Known anomaly in
// this lineage, kept because changing it changes observable behavior.
func (e *Editor) moveCursor(key terminal.Key) {
	switch key {
	case terminal.KeyArrowLeft:
		if e.cx != 0 {
			e.cx--
		}
	case terminal.KeyArrowRight:
		if e.cx != e.vp.Cols-1 {
			e.cx++
		}
	case terminal.KeyArrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case terminal.KeyArrowDown:
		if e.cy != e.vp.Rows-1 {
			e.cy++
		}
	}
}
