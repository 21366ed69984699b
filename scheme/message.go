package scheme

import "strings"

// writeMessage is the parsed form of a write(id, buf) call's comma-separated
// ASCII grammar: P,<x>,<y> / S,<w>,<h> / T,<title>.
type writeMessage struct {
	kind byte // 'P', 'S', or 'T'
	a, b int
	text string
}

// parseWriteMessage splits buf on commas and dispatches on the first token.
// Unparseable integer fields default to fallA and fallB (the window's
// current value for that field, supplied by the caller since this package
// has no access to window state). An unrecognized leading token is InvalidArgument.
func parseWriteMessage(buf []byte, fallA, fallB int) (writeMessage, *Error) {
	s := string(buf)
	parts := strings.Split(s, ",")
	if len(parts) == 0 || parts[0] == "" {
		return writeMessage{}, newError("write", InvalidArgument, "empty message")
	}

	switch parts[0] {
	case "P":
		if len(parts) < 3 {
			return writeMessage{}, newError("write", InvalidArgument, "P requires x,y: "+s)
		}
		return writeMessage{kind: 'P', a: parseIntDefault(parts[1], fallA), b: parseIntDefault(parts[2], fallB)}, nil
	case "S":
		if len(parts) < 3 {
			return writeMessage{}, newError("write", InvalidArgument, "S requires w,h: "+s)
		}
		return writeMessage{kind: 'S', a: parseIntDefault(parts[1], fallA), b: parseIntDefault(parts[2], fallB)}, nil
	case "T":
		return writeMessage{kind: 'T', text: strings.Join(parts[1:], ",")}, nil
	default:
		return writeMessage{}, newError("write", InvalidArgument, "unknown message token: "+parts[0])
	}
}
