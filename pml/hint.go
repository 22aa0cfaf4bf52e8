package pml

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// hintKey is the attribute under which enumeration violations record the
// closest accepted value.
const hintKey = "hint"

// Hint returns the accepted value closest to the rejected one, if the error
// is an enumeration violation and a plausible candidate exists.
func (e *Error) Hint() (string, bool) {
	for _, a := range e.attrs {
		if a.Key == hintKey {
			return a.Value.String(), true
		}
	}

	return "", false
}

// suggest ranks candidates by fuzzy similarity to value and returns the best
// one. Matching ignores case.
func suggest(value string, candidates []string) (string, bool) {
	pattern := strings.ToLower(strings.TrimSpace(value))
	if pattern == "" {
		return "", false
	}

	lower := make([]string, len(candidates))
	for i, c := range candidates {
		lower[i] = strings.ToLower(c)
	}

	matches := fuzzy.Find(pattern, lower)
	if len(matches) == 0 {
		return "", false
	}

	return candidates[matches[0].Index], true
}
