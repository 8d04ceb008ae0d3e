// Package grammar provides lightweight grammar helpers for Hmong:
// part-of-speech tagging, noun classifiers, tense markers, and word
// substitution. All tables are fixed at compile time; every function is a
// pure lookup and safe for concurrent use.
package grammar

import "strings"

// Tag is a part-of-speech tag from a fixed closed set.
type Tag string

const (
	TagNoun        Tag = "noun"
	TagVerb        Tag = "verb"
	TagAdjective   Tag = "adjective"
	TagClassifier  Tag = "classifier"
	TagPronoun     Tag = "pronoun"
	TagPreposition Tag = "preposition"
	TagConjunction Tag = "conjunction"
	TagParticle    Tag = "particle"
	TagAdverb      Tag = "adverb"
	TagUnknown     Tag = "unknown"
)

// AllTags returns the closed tag set, TagUnknown last.
func AllTags() []Tag {
	return []Tag{
		TagNoun, TagVerb, TagAdjective, TagClassifier, TagPronoun,
		TagPreposition, TagConjunction, TagParticle, TagAdverb,
		TagUnknown,
	}
}

var posTable = map[string]Tag{
	// Pronouns
	"kuv": TagPronoun, "koj": TagPronoun, "nws": TagPronoun,
	"peb": TagPronoun, "nej": TagPronoun, "lawv": TagPronoun,

	// Classifiers
	"tus": TagClassifier, "lub": TagClassifier, "txoj": TagClassifier,
	"daim": TagClassifier,

	// Verbs
	"yog": TagVerb, "nyob": TagVerb, "mus": TagVerb, "los": TagVerb,
	"ua": TagVerb, "noj": TagVerb, "haus": TagVerb, "pw": TagVerb,
	"hais": TagVerb, "paub": TagVerb, "pom": TagVerb, "xav": TagVerb,

	// Nouns
	"neeg": TagNoun, "tsev": TagNoun, "hmoob": TagNoun,
	"niam": TagNoun, "txiv": TagNoun, "tub": TagNoun,
	"mov": TagNoun, "dev": TagNoun, "tsheb": TagNoun,
	"kev": TagNoun, "ntawv": TagNoun, "hnub": TagNoun, "hmo": TagNoun,

	// Adjectives
	"zoo": TagAdjective, "dawb": TagAdjective, "dub": TagAdjective,
	"liab": TagAdjective, "loj": TagAdjective,

	// Adverbs
	"tsis": TagAdverb, "heev": TagAdverb,

	// Particles
	"lawm": TagParticle, "yuav": TagParticle, "puas": TagParticle,

	// Conjunctions and prepositions
	"thiab": TagConjunction, "los sis": TagConjunction,
	"hauv": TagPreposition, "saum": TagPreposition,
}

// Detect returns the part-of-speech tag for a word. Tagging is advisory:
// words missing from the table yield TagUnknown rather than an error.
func Detect(word string) Tag {
	if tag, ok := posTable[strings.ToLower(strings.TrimSpace(word))]; ok {
		return tag
	}
	return TagUnknown
}
