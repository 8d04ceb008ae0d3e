// Package hmong processes Hmong-language text written in the Romanized
// Popular Alphabet (RPA): syllable decomposition, tone analysis and
// conversion, text normalization, and dictionary lookup.
//
// The structural analysis lives in the phonology subpackage; lexicon,
// grammar, numeral, and phrase hold the flat lookup tables. Processor
// ties a dictionary to the analysis functions; the package-level
// functions run against a shared processor over the builtin tables.
package hmong

import (
	"fmt"

	"github.com/xyooj/hmong-go/lexicon"
	"github.com/xyooj/hmong-go/phonology"
)

// Processor bundles the alphabet tables with a dictionary. The zero
// configuration (New with no options) uses the builtin word list. A
// Processor is safe for concurrent use; AddWord returns a new Processor
// instead of mutating.
type Processor struct {
	Dict *lexicon.Dictionary
}

// Option configures a Processor.
type Option func(*Processor)

// WithDictionary replaces the builtin dictionary.
func WithDictionary(d *lexicon.Dictionary) Option {
	return func(p *Processor) {
		p.Dict = d
	}
}

// New creates a Processor over the builtin tables.
func New(opts ...Option) *Processor {
	p := &Processor{Dict: lexicon.Builtin()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewFromFile creates a Processor whose dictionary is the builtin word
// list merged with a TSV dictionary file.
func NewFromFile(dictPath string, opts ...Option) (*Processor, error) {
	d, err := lexicon.LoadFile(dictPath)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	merged := lexicon.Builtin()
	merged.Merge(d)
	p := New(append([]Option{WithDictionary(merged)}, opts...)...)
	return p, nil
}

// Normalize standardizes spacing and casing; see phonology.Normalize.
func (p *Processor) Normalize(text string) string { return phonology.Normalize(text) }

// Tokenize splits text on whitespace into syllable-candidate tokens.
func (p *Processor) Tokenize(text string) []string { return phonology.Tokenize(text) }

// Decompose splits a token into onset, nucleus, coda, and tone.
func (p *Processor) Decompose(token string) phonology.Syllable { return phonology.Decompose(token) }

// IsValidSyllable reports whether token is a well-formed RPA syllable.
func (p *Processor) IsValidSyllable(token string) bool { return phonology.IsValidSyllable(token) }

// GetTone extracts the tone marker of a syllable.
func (p *Processor) GetTone(token string) phonology.Tone { return phonology.GetTone(token) }

// ConvertTone replaces the tone marker of a syllable.
func (p *Processor) ConvertTone(token string, target phonology.Tone) (string, error) {
	return phonology.ConvertTone(token, target)
}

// Translate returns the English glosses of a Hmong word.
func (p *Processor) Translate(word string) ([]string, error) {
	return p.Dict.Lookup(word)
}

// Reverse returns the Hmong words glossed by an English word.
func (p *Processor) Reverse(english string) ([]string, error) {
	return p.Dict.Reverse(english)
}

// Search runs a fuzzy dictionary search in the given direction.
func (p *Processor) Search(query string, dir lexicon.Direction) []lexicon.Match {
	return p.Dict.Search(query, dir)
}

// AddWord returns a new Processor whose dictionary additionally contains
// the given word. The receiver is unchanged.
func (p *Processor) AddWord(hmong string, glosses ...string) *Processor {
	return &Processor{Dict: p.Dict.WithWord(hmong, glosses...)}
}

var defaultProcessor = New()

// Normalize standardizes spacing and casing of Hmong text.
func Normalize(text string) string { return defaultProcessor.Normalize(text) }

// Tokenize splits text on whitespace into syllable-candidate tokens.
func Tokenize(text string) []string { return defaultProcessor.Tokenize(text) }

// Decompose splits a token into onset, nucleus, coda, and tone.
func Decompose(token string) phonology.Syllable { return defaultProcessor.Decompose(token) }

// IsValidSyllable reports whether token is a well-formed RPA syllable.
func IsValidSyllable(token string) bool { return defaultProcessor.IsValidSyllable(token) }

// GetTone extracts the tone marker of a syllable.
func GetTone(token string) phonology.Tone { return defaultProcessor.GetTone(token) }

// ConvertTone replaces the tone marker of a syllable.
func ConvertTone(token string, target phonology.Tone) (string, error) {
	return defaultProcessor.ConvertTone(token, target)
}

// Translate returns the English glosses of a Hmong word from the builtin
// dictionary.
func Translate(word string) ([]string, error) { return defaultProcessor.Translate(word) }

// Reverse returns the Hmong words glossed by an English word from the
// builtin dictionary.
func Reverse(english string) ([]string, error) { return defaultProcessor.Reverse(english) }
