package urlregex

import (
	"strings"
)

// QueryAccumulator collects query keys across URLs in first-seen order and
// remembers whether each key was ever given a value.
type QueryAccumulator struct {
	keys *orderedMap[string, bool]
}

func NewQueryAccumulator() *QueryAccumulator {
	return &QueryAccumulator{
		keys: newOrderedMap[string, bool](),
	}
}

// Add parses a raw query string. Tokens are separated by '&' or ';'.
// A token with an empty key or no value is recorded as a flag; empty
// tokens are ignored.
func (q *QueryAccumulator) Add(rawQuery string) {
	tokens := strings.FieldsFunc(rawQuery, func(r rune) bool {
		return r == '&' || r == ';'
	})

	for _, token := range tokens {
		key, value, _ := strings.Cut(token, "=")
		if key == "" {
			q.addFlag(token)
			continue
		}
		if value == "" {
			q.addFlag(key)
			continue
		}
		q.keys.Set(key, true)
	}
}

func (q *QueryAccumulator) addFlag(key string) {
	if _, seen := q.keys.Get(key); !seen {
		q.keys.Set(key, false)
	}
}

// Len returns the number of distinct keys seen.
func (q *QueryAccumulator) Len() int {
	return q.keys.Len()
}

func (q *QueryAccumulator) Keys() []string {
	return q.keys.Keys()
}

// HasValue reports whether key was seen with a non-empty value.
func (q *QueryAccumulator) HasValue(key string) bool {
	v, _ := q.keys.Get(key)
	return v
}

// Fragment builds the query part of the pattern: one alternative per valued
// key plus a single catch-all alternative when any flag was seen. The group
// repeats one-or-more times when every URL had a query, else zero-or-more.
// It returns "" when no key was seen.
func (q *QueryAccumulator) Fragment(everyURLHadQuery bool) string {
	if q.keys.Len() == 0 {
		return ""
	}

	var alternatives []string
	hasFlag := false
	q.keys.Each(func(key string, valued bool) {
		if !valued {
			hasFlag = true
			return
		}
		alternatives = append(alternatives, "[&;]?"+escapeLiteral(key)+"=[^&;]+")
	})
	if hasFlag {
		alternatives = append(alternatives, "[^&;=]+")
	}

	quantifier := "*"
	if everyURLHadQuery {
		quantifier = "+"
	}
	return `\??(` + strings.Join(alternatives, "|") + ")" + quantifier
}
