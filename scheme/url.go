package scheme

import (
	"strconv"
	"strings"
)

// openRequest is the parsed form of an open(url) call's
// <flags>/<x>/<y>/<width>/<height>/<title> grammar.
type openRequest struct {
	async, resizable    bool
	x, y, width, height int
	title               string
}

// parseOpenURL parses the open URL grammar. Every field is optional: a
// missing segment defaults the same way an unparseable one does (0 for the
// geometry fields, "" for flags and title), mirroring a field-by-field
// parse that never checks how many segments showed up.
func parseOpenURL(url string) (openRequest, *Error) {
	parts := strings.SplitN(url, "/", 6)

	var req openRequest
	for _, f := range part(parts, 0) {
		switch f {
		case 'a':
			req.async = true
		case 'r':
			req.resizable = true
		}
	}

	req.x = parseIntDefault(part(parts, 1), 0)
	req.y = parseIntDefault(part(parts, 2), 0)
	req.width = parseIntDefault(part(parts, 3), 0)
	req.height = parseIntDefault(part(parts, 4), 0)
	req.title = part(parts, 5)
	return req, nil
}

// part returns parts[i], or "" if the URL had fewer than i+1 segments.
func part(parts []string, i int) string {
	if i >= len(parts) {
		return ""
	}
	return parts[i]
}

func parseIntDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
