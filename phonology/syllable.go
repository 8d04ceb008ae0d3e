package phonology

import "strings"

// Syllable is the structural breakdown of one RPA syllable. It is a plain
// value built fresh on every Decompose call and never mutated afterwards.
type Syllable struct {
	Raw     string // original input, casing preserved
	Onset   string // matched consonant prefix, empty for vowel-initial syllables
	Nucleus string // matched vowel core, empty only when invalid
	Coda    string // trailing consonant that is not a tone letter (rare)
	Tone    Tone   // ToneNone for unmarked syllables
	Valid   bool
}

// Decompose splits token into onset, nucleus, coda, and tone marker by
// greedy longest-match scanning of the alphabet tables. Matching is
// case-insensitive; Raw keeps the original casing. Decompose never fails:
// empty input, leftover characters, and characters outside the RPA
// inventory all produce Valid == false.
func Decompose(token string) Syllable {
	s := Syllable{Raw: token, Tone: ToneNone}
	w := strings.ToLower(token)
	if w == "" {
		return s
	}

	s.Onset = matchLongest(w, scanOnsets)
	rest := w[len(s.Onset):]

	s.Nucleus = matchLongest(rest, scanNuclei)
	if s.Nucleus == "" {
		return s
	}
	rest = rest[len(s.Nucleus):]

	switch {
	case rest == "":
		s.Valid = true
	case len(rest) == 1 && isToneLetter(rest):
		s.Tone = Tone(rest)
		s.Valid = true
	default:
		// A remainder is a coda only if it is a single recognized
		// consonant letter; anything else leaves the syllable invalid.
		s.Coda = rest
		s.Valid = len(rest) == 1 && onsetSet[rest]
	}
	return s
}

// IsValidSyllable reports whether token is a well-formed RPA syllable.
func IsValidSyllable(token string) bool {
	return Decompose(token).Valid
}

func isToneLetter(letter string) bool {
	if letter == "" {
		return false
	}
	_, ok := toneLabels[Tone(letter)]
	return ok
}
