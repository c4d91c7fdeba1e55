// Package terminal provides direct ANSI terminal control for the editor.
//
// Features:
//   - Raw mode transitions with guaranteed one-shot restoration
//   - Timeout-bounded stdin reads with escape sequence decoding
//   - Window size discovery with a cursor-position reply fallback
//   - Pre-allocated escape sequences for single-write rendering
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals.
package terminal
