package phonology

import (
	"errors"
	"fmt"
)

// Tone is an RPA tone marker: a syllable-final letter that encodes pitch
// and voice quality rather than a consonant sound.
type Tone string

const (
	ToneB    Tone = "b" // mid-low tone
	ToneJ    Tone = "j" // high falling tone
	ToneV    Tone = "v" // mid-high rising tone
	ToneS    Tone = "s" // low breathy tone
	ToneG    Tone = "g" // low falling tone
	ToneD    Tone = "d" // high tone
	ToneM    Tone = "m" // low glottalized tone
	ToneNone Tone = ""  // mid tone (unmarked)
)

// toneLabels maps each marker to its phonetic description.
var toneLabels = map[Tone]string{
	ToneB:    "mid-low tone",
	ToneJ:    "high falling tone",
	ToneV:    "mid-high rising tone",
	ToneS:    "low breathy tone",
	ToneG:    "low falling tone",
	ToneD:    "high tone",
	ToneM:    "low glottalized tone",
	ToneNone: "mid tone (unmarked)",
}

// ErrInvalidSyllable is returned by operations that require a well-formed
// RPA syllable as input.
var ErrInvalidSyllable = errors.New("invalid syllable")

// ErrUnknownTone is returned when a tone conversion target is not in the
// RPA tone set.
var ErrUnknownTone = errors.New("unknown tone")

// AllTones returns the closed tone set, unmarked tone last.
func AllTones() []Tone {
	return []Tone{ToneB, ToneJ, ToneV, ToneS, ToneG, ToneD, ToneM, ToneNone}
}

// ParseTone maps a tone letter to its Tone. The empty string parses as
// ToneNone.
func ParseTone(letter string) (Tone, bool) {
	t := Tone(letter)
	_, ok := toneLabels[t]
	return t, ok
}

// Label returns the phonetic description of the tone.
func (t Tone) Label() string {
	if l, ok := toneLabels[t]; ok {
		return l
	}
	return "unknown"
}

// String returns the tone letter, or "NONE" for the unmarked mid tone.
func (t Tone) String() string {
	if t == ToneNone {
		return "NONE"
	}
	return string(t)
}

// GetTone extracts the tone marker of a syllable. Tone lookup is advisory:
// unmarked and invalid input both yield ToneNone rather than an error.
func GetTone(token string) Tone {
	return Decompose(token).Tone
}

// ConvertTone strips the tone marker of token and appends target, keeping
// onset, nucleus, coda, and the casing of the input. Converting to
// ToneNone removes the marker. Converting to the syllable's current tone
// returns the input unchanged, and conversion is idempotent.
func ConvertTone(token string, target Tone) (string, error) {
	s := Decompose(token)
	if !s.Valid {
		return "", fmt.Errorf("%w: %q", ErrInvalidSyllable, token)
	}
	if _, ok := toneLabels[target]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTone, string(target))
	}
	if target == s.Tone {
		return s.Raw, nil
	}
	// The alphabet is ASCII, so the lower-cased segment lengths index the
	// raw input directly.
	base := token[:len(s.Onset)+len(s.Nucleus)+len(s.Coda)]
	return base + string(target), nil
}
