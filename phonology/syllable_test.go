package phonology

import (
	"strings"
	"testing"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		token   string
		onset   string
		nucleus string
		coda    string
		tone    Tone
		valid   bool
	}{
		{"kuv", "k", "u", "", ToneV, true},
		{"koj", "k", "o", "", ToneJ, true},
		{"zoo", "z", "oo", "", ToneNone, true},
		{"peb", "p", "e", "", ToneB, true},
		{"hais", "h", "ai", "", ToneS, true},
		{"ntxawg", "ntx", "aw", "", ToneG, true},
		{"hmoob", "hm", "oo", "", ToneB, true},
		{"nplooj", "npl", "oo", "", ToneJ, true},
		{"ntshai", "ntsh", "ai", "", ToneNone, true},
		{"tsheb", "tsh", "e", "", ToneB, true},
		{"xyooj", "xy", "oo", "", ToneJ, true},
		// vowel-initial syllables have an empty onset
		{"ib", "", "i", "", ToneB, true},
		{"ua", "", "ua", "", ToneNone, true},
		// matching is case-insensitive
		{"Kuv", "k", "u", "", ToneV, true},
		{"HMOOB", "hm", "oo", "", ToneB, true},
		// a coda must be a single consonant letter
		{"kuc", "k", "u", "c", ToneNone, true},
		{"kunt", "k", "u", "nt", ToneNone, false},
		// invalid input
		{"", "", "", "", ToneNone, false},
		{"xyz", "xy", "", "", ToneNone, false},
		{"kuvx", "k", "u", "vx", ToneNone, false},
		{"k", "k", "", "", ToneNone, false},
		{"ku7", "k", "u", "7", ToneNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := Decompose(tt.token)
			if got.Raw != tt.token {
				t.Errorf("Raw = %q, want %q", got.Raw, tt.token)
			}
			if got.Onset != tt.onset {
				t.Errorf("Onset = %q, want %q", got.Onset, tt.onset)
			}
			if got.Nucleus != tt.nucleus {
				t.Errorf("Nucleus = %q, want %q", got.Nucleus, tt.nucleus)
			}
			if got.Coda != tt.coda {
				t.Errorf("Coda = %q, want %q", got.Coda, tt.coda)
			}
			if got.Tone != tt.tone {
				t.Errorf("Tone = %v, want %v", got.Tone, tt.tone)
			}
			if got.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v", got.Valid, tt.valid)
			}
		})
	}
}

// Every valid decomposition must reconstruct its input exactly
// (case-insensitively).
func TestDecomposeReconstructs(t *testing.T) {
	words := []string{
		"kuv", "koj", "nws", "peb", "lawv", "zoo", "nyob", "hmoob",
		"ntxawg", "nplooj", "tsheb", "xyooj", "qhia", "txiv", "niam",
		"Kuv", "Hmoob", "ib", "ob", "plaub", "tsib", "rau", "xya",
		"yim", "cuaj", "kaum", "hnub", "hlub", "dawb", "liab",
	}
	for _, w := range words {
		s := Decompose(w)
		if !s.Valid {
			t.Errorf("Decompose(%q) not valid", w)
			continue
		}
		rebuilt := s.Onset + s.Nucleus + s.Coda + string(s.Tone)
		if rebuilt != strings.ToLower(w) {
			t.Errorf("Decompose(%q) rebuilds to %q", w, rebuilt)
		}
	}
}

func TestIsValidSyllable(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"kuv", true},
		{"peb", true},
		{"hmoob", true},
		{"ntxhais", true},
		{"xyz", false},
		{"", false},
		{"bcd", false},
		{"123", false},
	}
	for _, tt := range tests {
		if got := IsValidSyllable(tt.token); got != tt.want {
			t.Errorf("IsValidSyllable(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}
