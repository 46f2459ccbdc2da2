package urlregex

import (
	"strings"
)

// Placeholder markers embedded in generalized segment content. Control
// characters are never part of a URL path literal, so a marker can't be
// confused with text taken from the input.
const (
	numberMarker           = '\x1c' // one or more digits
	requiredWildcardMarker = '\x1d' // one or more non-separator characters
	optionalWildcardMarker = '\x1e' // zero or more non-separator characters
)

// Segment is one slash-delimited unit of a URL path together with the
// separator that followed it and whether it was missing from some of the
// URLs it was aligned against.
type Segment struct {
	Content   string
	Separator string
	Optional  bool
}

func NewSegment(content, separator string) Segment {
	return Segment{
		Content:   content,
		Separator: separator,
	}
}

// asOptional returns a copy of s marked optional.
func (s Segment) asOptional() Segment {
	s.Optional = true
	return s
}

// String renders the segment with readable placeholders, e.g.
// "viewforum_{num}.htm/?".
func (s Segment) String() string {
	var sb strings.Builder
	sb.WriteString(DisplayContent(s.Content))
	sb.WriteString(s.Separator)
	if s.Optional {
		sb.WriteString(" (optional)")
	}
	return sb.String()
}

// DisplayContent replaces placeholder markers in content with {num}, {+} and {*}.
func DisplayContent(content string) string {
	var sb strings.Builder
	for _, r := range content {
		switch r {
		case numberMarker:
			sb.WriteString("{num}")
		case requiredWildcardMarker:
			sb.WriteString("{+}")
		case optionalWildcardMarker:
			sb.WriteString("{*}")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// reverseDomain reverses the dot-delimited labels of a host so that
// "www.example.com" becomes "com.example.www". It is its own inverse.
func reverseDomain(token string) string {
	labels := strings.Split(token, ".")
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	return strings.Join(labels, ".")
}

// normalizeDigits replaces every run of ASCII digits with numberMarker.
func normalizeDigits(s string) string {
	if !strings.ContainsAny(s, "0123456789") {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	inRun := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			if !inRun {
				sb.WriteRune(numberMarker)
				inRun = true
			}
			continue
		}
		inRun = false
		sb.WriteByte(c)
	}
	return sb.String()
}
