package terminal

// byteSource yields one byte per call under the raw-mode timeout contract:
// ok=false means the read timed out with nothing to deliver, err means the
// read failed outright. Terminal implements it over the tty fd; tests
// implement it over scripted byte sequences.
type byteSource interface {
	readByte() (b byte, ok bool, err error)
}

// readKey blocks until the next logical key arrives. Timeouts are retried
// indefinitely; any other read failure is returned as a fatal error.
func readKey(src byteSource) (Key, error) {
	for {
		b, ok, err := src.readByte()
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		if b == 0x1b {
			return decodeEscape(src), nil
		}
		return Key(b), nil
	}
}

// decodeEscape resolves the bytes following a lone ESC. It reads at most
// two further timeout-bounded bytes; a timeout or an unrecognized
// combination resolves to KeyEscape. Decoding never blocks indefinitely
// and never fails.
func decodeEscape(src byteSource) Key {
	b1, ok, err := src.readByte()
	if err != nil || !ok {
		return KeyEscape
	}

	switch b1 {
	case '[':
		b2, ok, err := src.readByte()
		if err != nil || !ok {
			return KeyEscape
		}
		if b2 >= '0' && b2 <= '9' {
			// vt sequence: ESC [ digit ~
			b3, ok, err := src.readByte()
			if err != nil || !ok || b3 != '~' {
				return KeyEscape
			}
			switch b2 {
			case '1', '7':
				return KeyHome
			case '3':
				return KeyDelete
			case '4', '8':
				return KeyEnd
			case '5':
				return KeyPageUp
			case '6':
				return KeyPageDown
			}
			return KeyEscape
		}
		switch b2 {
		case 'A':
			return KeyArrowUp
		case 'B':
			return KeyArrowDown
		case 'C':
			return KeyArrowRight
		case 'D':
			return KeyArrowLeft
		case 'H':
			return KeyHome
		case 'F':
			return KeyEnd
		}
		return KeyEscape

	case 'O':
		// SS3 variants some terminals send for Home/End
		b2, ok, err := src.readByte()
		if err != nil || !ok {
			return KeyEscape
		}
		switch b2 {
		case 'H':
			return KeyHome
		case 'F':
			return KeyEnd
		}
		return KeyEscape
	}

	return KeyEscape
}
