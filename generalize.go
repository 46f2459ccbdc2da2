package urlregex

// stepResult tells the aligner what a token generalization produced.
type stepResult int

const (
	stepMerged  stepResult = iota
	stepPartial            // one token absent, mark the segment optional
	stepMissing            // both tokens absent, drop the segment
)

// Generalize merges two tokens into one that covers both, using digit
// normalization and common prefix/suffix heuristics. The result may
// contain placeholder markers; see DisplayContent.
func Generalize(a, b string) string {
	g, _ := generalizeStep(a, b)
	return g
}

// generalizeStep treats an empty token as absent.
func generalizeStep(a, b string) (string, stepResult) {
	switch {
	case a == "" && b == "":
		return "", stepMissing
	case a == "":
		return b, stepPartial
	case b == "":
		return a, stepPartial
	}

	// Equal tokens keep their digits.
	if a == b {
		return a, stepMerged
	}

	a, b = normalizeDigits(a), normalizeDigits(b)
	if a == b {
		return a, stepMerged
	}

	ra, rb := []rune(a), []rune(b)
	prefix := commonPrefix(ra, rb)
	suffix := commonSuffix(ra, rb)

	if len(prefix) > 0 {
		if (len(prefix) == len(ra)) != (len(prefix) == len(rb)) {
			return string(prefix) + string(optionalWildcardMarker), stepMerged
		}
		if len(suffix) > 0 {
			return intersectingConcat(prefix, suffix), stepMerged
		}
		return string(prefix) + string(requiredWildcardMarker), stepMerged
	}

	if len(suffix) > 0 {
		if (len(suffix) == len(ra)) != (len(suffix) == len(rb)) {
			return string(optionalWildcardMarker) + string(suffix), stepMerged
		}
		return string(requiredWildcardMarker) + string(suffix), stepMerged
	}

	return string(requiredWildcardMarker), stepMerged
}

func commonPrefix(a, b []rune) []rune {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return a[:n]
}

func commonSuffix(a, b []rune) []rune {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return a[len(a)-n:]
}

// intersectingConcat joins prefix and suffix with a required wildcard. When
// the end of prefix overlaps the start of suffix, the longest overlap is
// collapsed into the wildcard.
func intersectingConcat(prefix, suffix []rune) string {
	maxOverlap := min(len(prefix), len(suffix))
	for size := maxOverlap; size > 0; size-- {
		if string(prefix[len(prefix)-size:]) == string(suffix[:size]) {
			return string(prefix[:len(prefix)-size]) + string(requiredWildcardMarker) + string(suffix[size:])
		}
	}
	return string(prefix) + string(requiredWildcardMarker) + string(suffix)
}
