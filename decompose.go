package urlregex

import (
	"strings"
)

// Protocol is the scheme detected at the start of a URL.
type Protocol int

const (
	ProtocolNone Protocol = iota
	ProtocolHTTP
	ProtocolHTTPS
)

func (p Protocol) String() string {
	switch p {
	case ProtocolHTTP:
		return "http"
	case ProtocolHTTPS:
		return "https"
	default:
		return "none"
	}
}

// Decomposed is a URL broken into the parts the inducer works on.
type Decomposed struct {
	Protocol Protocol
	// Key is the URL with its scheme stripped. Samples sharing a key are
	// generalized once.
	Key      string
	Segments []Segment
	// Query is the text after the first '?'. HasQuery distinguishes an
	// empty query ("/p?") from no query at all.
	Query    string
	HasQuery bool
}

// Decompose strips the scheme from raw, splits the remainder into path
// segments and query, and reverses the host labels of the first segment.
func Decompose(raw string) Decomposed {
	protocol, rest := stripScheme(raw)
	d := Decomposed{
		Protocol: protocol,
		Key:      rest,
	}

	path := rest
	if idx := strings.IndexByte(rest, '?'); idx >= 0 {
		path = rest[:idx]
		d.Query = rest[idx+1:]
		d.HasQuery = true
	}

	d.Segments = splitSegments(path)
	if len(d.Segments) > 0 {
		d.Segments[0].Content = reverseDomain(d.Segments[0].Content)
	}
	return d
}

func stripScheme(raw string) (Protocol, string) {
	switch {
	case hasPrefixFold(raw, "https://"):
		return ProtocolHTTPS, raw[len("https://"):]
	case hasPrefixFold(raw, "http://"):
		return ProtocolHTTP, raw[len("http://"):]
	}
	return ProtocolNone, raw
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// splitSegments consumes runs of non-'/' characters, each followed by at
// most one '/'. Slashes that would start a segment are skipped, so no
// segment is ever empty.
func splitSegments(path string) []Segment {
	var segments []Segment
	i := 0
	for i < len(path) {
		if path[i] == '/' {
			i++
			continue
		}

		start := i
		for i < len(path) && path[i] != '/' {
			i++
		}
		content := path[start:i]

		separator := ""
		if i < len(path) {
			separator = "/"
			i++
		}
		segments = append(segments, NewSegment(content, separator))
	}
	return segments
}
