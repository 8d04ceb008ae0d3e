package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// Tense selects the tense marker applied by Conjugate.
type Tense int

const (
	Present Tense = iota
	Past
	Future
)

// Hmong marks tense with particles, not verb inflection.
const (
	pastMarker   = "lawm" // appended
	futureMarker = "yuav" // prepended
)

// ErrUnknownTense is returned for a Tense value outside the closed set.
var ErrUnknownTense = errors.New("unknown tense")

// String implements fmt.Stringer.
func (t Tense) String() string {
	switch t {
	case Present:
		return "present"
	case Past:
		return "past"
	case Future:
		return "future"
	}
	return fmt.Sprintf("Tense(%d)", int(t))
}

// Conjugate applies the tense marker to a sentence: Present is the
// identity, Past appends "lawm", Future prepends "yuav".
func Conjugate(sentence string, tense Tense) (string, error) {
	s := strings.TrimSpace(sentence)
	switch tense {
	case Present:
		return s, nil
	case Past:
		if s == "" {
			return pastMarker, nil
		}
		return s + " " + pastMarker, nil
	case Future:
		if s == "" {
			return futureMarker, nil
		}
		return futureMarker + " " + s, nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownTense, int(tense))
}
