// Package numeral converts between integers and Hmong number words, and
// between measurement units.
//
// Hmong composes numbers from the ones words plus four combining words:
// "kaum" (ten, also the teen prefix: "kaum tsib" = 15), "caug" (tens
// multiplier: "ob caug" = 20), "pua" (hundreds), "txhiab" (thousands),
// and "lab" (millions). A group below 1000 renders as
//
//	[<ones> pua] [<tens> caug | kaum [<ones>]] [<ones>]
//
// and larger numbers chain scaled groups most-significant-first:
// 235 = "ob pua peb caug tsib", 15000 = "kaum tsib txhiab".
// FromHmong parses exactly this grammar.
package numeral

import (
	"errors"
	"fmt"
	"strings"
)

// MaxNumber is the largest value ToHmong can render.
const MaxNumber = 999999999

var onesWords = map[int]string{
	0: "xoom", 1: "ib", 2: "ob", 3: "peb", 4: "plaub",
	5: "tsib", 6: "rau", 7: "xya", 8: "yim", 9: "cuaj", 10: "kaum",
}

// Combining words of the number grammar.
const (
	wordTen      = "kaum"
	wordTens     = "caug"
	wordHundred  = "pua"
	wordThousand = "txhiab"
	wordMillion  = "lab"
)

var onesValues map[string]int

func init() {
	onesValues = make(map[string]int, len(onesWords))
	for n, w := range onesWords {
		onesValues[w] = n
	}
}

// ErrOutOfRange is returned for numbers outside [0, MaxNumber].
var ErrOutOfRange = errors.New("number out of range")

// ErrNotANumber is returned when FromHmong cannot parse its input.
var ErrNotANumber = errors.New("not a Hmong number")

// ToHmong renders n as Hmong number words.
func ToHmong(n int) (string, error) {
	if n < 0 || n > MaxNumber {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	if w, ok := onesWords[n]; ok {
		return w, nil
	}

	var parts []string
	if n >= 1000000 {
		parts = append(parts, below1000(n/1000000)+" "+wordMillion)
		n %= 1000000
	}
	if n >= 1000 {
		parts = append(parts, below1000(n/1000)+" "+wordThousand)
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, below1000(n))
	}
	return strings.Join(parts, " "), nil
}

// below1000 renders 1..999.
func below1000(n int) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, onesWords[n/100]+" "+wordHundred)
		n %= 100
	}
	switch {
	case n >= 20:
		parts = append(parts, onesWords[n/10]+" "+wordTens)
		if n%10 > 0 {
			parts = append(parts, onesWords[n%10])
		}
	case n > 10:
		parts = append(parts, wordTen+" "+onesWords[n-10])
	case n == 10:
		parts = append(parts, wordTen)
	case n > 0:
		parts = append(parts, onesWords[n])
	}
	return strings.Join(parts, " ")
}

// FromHmong parses Hmong number words back to an integer. Parsing is
// case-insensitive and accepts exactly the grammar ToHmong emits, so the
// two round-trip over the whole supported range.
func FromHmong(words string) (int, error) {
	tokens := strings.Fields(strings.ToLower(words))
	if len(tokens) == 0 {
		return 0, fmt.Errorf("%w: empty input", ErrNotANumber)
	}
	if tokens[0] == "xoom" {
		if len(tokens) != 1 {
			return 0, fmt.Errorf("%w: %q", ErrNotANumber, words)
		}
		return 0, nil
	}

	var (
		total     int
		group     int // accumulated hundreds and tens of the current group
		pending   int // ones (or teen value) not yet attached to a combiner
		lastScale = 1000000000
		hasTens   bool
		hasTeen   bool
	)

	fail := func() (int, error) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, words)
	}

	for _, tok := range tokens {
		switch tok {
		case wordTen:
			if pending != 0 || hasTens || hasTeen {
				return fail()
			}
			pending = 10
			hasTeen = true
		case wordTens:
			if pending < 2 || pending > 9 || hasTens || hasTeen {
				return fail()
			}
			group += pending * 10
			pending = 0
			hasTens = true
		case wordHundred:
			if pending < 1 || pending > 9 || group != 0 || hasTens || hasTeen {
				return fail()
			}
			group = pending * 100
			pending = 0
		case wordThousand, wordMillion:
			scale := 1000
			if tok == wordMillion {
				scale = 1000000
			}
			value := group + pending
			if value == 0 || scale >= lastScale {
				return fail()
			}
			total += value * scale
			group, pending = 0, 0
			hasTens, hasTeen = false, false
			lastScale = scale
		default:
			v, ok := onesValues[tok]
			if !ok || v == 0 {
				return fail()
			}
			switch {
			case pending == 10 && !hasTens:
				pending += v // teen: kaum <ones>
				hasTeen = true
			case pending == 0:
				pending = v
			default:
				return fail()
			}
		}
	}

	return total + group + pending, nil
}
