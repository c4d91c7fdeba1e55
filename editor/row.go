package editor

import (
	"bufio"
	"fmt"
	"os"
)

// Row is one line of text, stored in full. Display clips it to the
// viewport width without touching the stored bytes.
type Row struct {
	Chars []byte
}

// Model holds the ordered rows of loaded text.
type Model struct {
	Rows []Row
}

// Open loads path into a fresh model. Only the first line is read in this
// version; trailing newline and carriage-return bytes are trimmed. An
// empty file yields an empty model.
func Open(path string) (*Model, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	m := &Model{}
	scanner := bufio.NewScanner(file)
	if scanner.Scan() {
		line := scanner.Bytes()
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		m.Rows = append(m.Rows, Row{Chars: append([]byte(nil), line...)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return m, nil
}
