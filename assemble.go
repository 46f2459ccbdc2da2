package urlregex

import (
	"strings"
)

const regexMetacharacters = `.?*+^$[]\(){}|-`

// escapeLiteral backslash-escapes every regex metacharacter in s.
func escapeLiteral(s string) string {
	if !strings.ContainsAny(s, regexMetacharacters) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for _, r := range s {
		if strings.ContainsRune(regexMetacharacters, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func protocolPrefix(sawHTTP, sawHTTPS bool) string {
	switch {
	case sawHTTP && sawHTTPS:
		return "^https?://"
	case sawHTTPS:
		return "^https://"
	case sawHTTP:
		return "^http://"
	}
	return ""
}

// assemble renders a generalized segment sequence as a regular expression.
// Consecutive optional segments share one group, which closes before the
// next required segment and takes the last optional separator with it.
func assemble(segments []Segment) string {
	var sb strings.Builder
	wrapped := false

	for i, s := range segments {
		last := i == len(segments)-1

		content := s.Content
		if i == 0 {
			content = reverseDomain(content)
		}

		if s.Optional && !wrapped {
			sb.WriteByte('(')
			wrapped = true
		}
		sb.WriteString(expandContent(content, last, s.Separator))

		switch {
		case !last && wrapped && !segments[i+1].Optional:
			sb.WriteString(s.Separator)
			sb.WriteString(")?")
			wrapped = false
		case last && wrapped:
			sb.WriteString(")?")
			sb.WriteString(s.Separator)
		default:
			sb.WriteString(s.Separator)
		}
	}
	return sb.String()
}

// expandContent turns placeholder markers into character classes and
// escapes the literal runs between them. Wildcards in the last segment stop
// at '?', elsewhere at the segment separator.
func expandContent(content string, last bool, separator string) string {
	excluded := "?"
	if !last {
		excluded = separatorChar(separator)
	}

	var sb strings.Builder
	var literal strings.Builder
	flush := func() {
		sb.WriteString(escapeLiteral(literal.String()))
		literal.Reset()
	}

	for _, r := range content {
		switch r {
		case numberMarker:
			flush()
			sb.WriteString(`\d+`)
		case requiredWildcardMarker:
			flush()
			sb.WriteString("[^" + excluded + "]+")
		case optionalWildcardMarker:
			flush()
			sb.WriteString("[^" + excluded + "]*")
		default:
			literal.WriteRune(r)
		}
	}
	flush()
	return sb.String()
}

// separatorChar is the character a wildcard must not cross. Segments are
// only ever split on '/', so that is also the fallback when the separator
// is empty.
func separatorChar(separator string) string {
	for _, r := range separator {
		return string(r)
	}
	return "/"
}
