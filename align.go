package urlregex

import (
	"strings"
)

// Scorer rates how well two segment contents match. Higher scores make the
// aligner pair the two segments instead of treating one as an insertion.
type Scorer func(a, b string) float64

// DistanceScore is the default scorer. Tokens that differ after digit
// normalization score half their normalized edit distance.
func DistanceScore(a, b string) float64 {
	if score, ok := fixedScore(a, b); ok {
		return score
	}
	return 0.5 * normalizedDistance(normalizeDigits(a), normalizeDigits(b))
}

// SimilarityScore rates differing tokens by similarity: one minus half
// their normalized edit distance.
func SimilarityScore(a, b string) float64 {
	if score, ok := fixedScore(a, b); ok {
		return score
	}
	return 1 - 0.5*normalizedDistance(normalizeDigits(a), normalizeDigits(b))
}

// fixedScore covers the cases both scorers agree on. Empty content counts
// as an absent token.
func fixedScore(a, b string) (float64, bool) {
	switch {
	case a == "" && b == "":
		return 0.5, true
	case a == "" || b == "":
		return 0.25, true
	case a == b:
		return 1.0, true
	case normalizeDigits(a) == normalizeDigits(b):
		return 1.0, true
	}
	return 0, false
}

func normalizedDistance(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	maxLen := max(len(ra), len(rb))
	if maxLen == 0 {
		return 0
	}
	return float64(levenshtein(ra, rb)) / float64(maxLen)
}

func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

type direction uint8

const (
	dirMatch direction = iota
	dirSkipA           // b[j] is an insertion
	dirSkipB           // a[i] is an insertion
)

// Align merges two segment sequences into one. Paired segments are
// generalized with Generalize; segments present on one side only come out
// optional. Ties favor a pairing, then an insertion from b.
//
// Row and column zero of the table are not scored: they always point
// toward the origin, so the first segments of a and b (the hosts) are
// always paired with each other.
func Align(a, b []Segment, scorer Scorer) []Segment {
	if scorer == nil {
		scorer = DistanceScore
	}
	if len(a) == 0 {
		return optionalCopy(b)
	}
	if len(b) == 0 {
		return optionalCopy(a)
	}

	n, m := len(a), len(b)
	dir := make([][]direction, n)
	score := make([][]float64, n)
	for i := range n {
		dir[i] = make([]direction, m)
		score[i] = make([]float64, m)
		dir[i][0] = dirSkipB
	}
	for j := range m {
		dir[0][j] = dirSkipA
	}
	dir[0][0] = dirMatch

	for i := 1; i < n; i++ {
		for j := 1; j < m; j++ {
			skipA := score[i][j-1] + insertionScore(b[j])
			skipB := score[i-1][j] + insertionScore(a[i])
			match := score[i-1][j-1] + scorer(a[i].Content, b[j].Content)

			switch {
			case match >= skipA && match >= skipB:
				dir[i][j], score[i][j] = dirMatch, match
			case skipA >= skipB:
				dir[i][j], score[i][j] = dirSkipA, skipA
			default:
				dir[i][j], score[i][j] = dirSkipB, skipB
			}
		}
	}

	merged := make([]Segment, 0, max(n, m))
	i, j := n-1, m-1
	for i >= 0 && j >= 0 {
		switch dir[i][j] {
		case dirMatch:
			if s, ok := mergeSegments(a[i], b[j]); ok {
				merged = append(merged, s)
			}
			i--
			j--
		case dirSkipA:
			merged = append(merged, b[j].asOptional())
			j--
		case dirSkipB:
			merged = append(merged, a[i].asOptional())
			i--
		}
	}

	for l, r := 0, len(merged)-1; l < r; l, r = l+1, r-1 {
		merged[l], merged[r] = merged[r], merged[l]
	}
	return merged
}

func insertionScore(s Segment) float64 {
	if s.Content == "" {
		return 0.5
	}
	return 0
}

func mergeSegments(a, b Segment) (Segment, bool) {
	content, result := generalizeStep(a.Content, b.Content)
	if result == stepMissing {
		return Segment{}, false
	}
	return Segment{
		Content:   content,
		Separator: mergeSeparator(a.Separator, b.Separator),
		Optional:  a.Optional || b.Optional || result == stepPartial,
	}, true
}

// mergeSeparator keeps a's separator unless only one side has one, in
// which case that separator becomes optional ("/" -> "/?").
func mergeSeparator(a, b string) string {
	switch {
	case a == "" && b != "":
		return optionalSeparator(b)
	case b == "" && a != "":
		return optionalSeparator(a)
	}
	return a
}

func optionalSeparator(sep string) string {
	if strings.HasSuffix(sep, "?") {
		return sep
	}
	return sep + "?"
}

func optionalCopy(segments []Segment) []Segment {
	out := make([]Segment, len(segments))
	for i, s := range segments {
		out[i] = s.asOptional()
	}
	return out
}
