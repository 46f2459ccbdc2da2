package urlregex

// Stats contains aggregate statistics about the inducer state.
type Stats struct {
	LearnedCount     int `json:"learned_count"`     // Total URLs learned, duplicates included
	UniqueCount      int `json:"unique_count"`      // Distinct URLs once the scheme is stripped
	QueryCount       int `json:"query_count"`       // URLs that carried a query string
	QueryKeys        int `json:"query_keys"`        // Distinct query keys
	Segments         int `json:"segments"`          // Segments in the generalized sequence
	OptionalSegments int `json:"optional_segments"` // Generalized segments missing from some URL
	Wildcards        int `json:"wildcards"`         // Placeholder markers across generalized segments
}

// Stats folds the learned URLs and reports on the result.
func (in *Inducer) Stats() Stats {
	in.mu.RLock()
	defer in.mu.RUnlock()

	stats := Stats{
		LearnedCount: in.learnedCount,
		UniqueCount:  in.paths.Len(),
		QueryCount:   in.queriedCount,
		QueryKeys:    in.queries.Len(),
	}

	for _, s := range in.generalize() {
		stats.Segments++
		if s.Optional {
			stats.OptionalSegments++
		}
		stats.Wildcards += countMarkers(s.Content)
	}
	return stats
}

// LearnedCount returns the number of URLs that have been learned.
func (in *Inducer) LearnedCount() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.learnedCount
}

func countMarkers(content string) int {
	count := 0
	for _, r := range content {
		switch r {
		case numberMarker, requiredWildcardMarker, optionalWildcardMarker:
			count++
		}
	}
	return count
}
