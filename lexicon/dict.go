// Package lexicon provides the Hmong-English dictionary: case-insensitive
// lookup in both directions, fuzzy search, and TSV loading.
//
// A Dictionary is safe for concurrent readers. Add mutates the receiver
// and is NOT safe for concurrent use; callers that need to grow a shared
// dictionary should use WithWord, which leaves the receiver untouched and
// returns a new snapshot.
package lexicon

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Entry is one headword with its English glosses.
type Entry struct {
	Hmong   string
	English []string
}

// Dictionary holds Hmong-to-English mappings and the derived reverse
// index. Headwords and glosses are stored case-normalized; lookups in
// either direction are case-insensitive.
type Dictionary struct {
	entries map[string]Entry    // lower-cased headword -> entry
	reverse map[string][]string // lower-cased gloss -> headwords
}

// ErrUnknownWord is returned when a word is missing from the dictionary.
var ErrUnknownWord = errors.New("unknown word")

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		entries: make(map[string]Entry),
		reverse: make(map[string][]string),
	}
}

// Builtin returns a fresh dictionary preloaded with the builtin word list.
func Builtin() *Dictionary {
	d := New()
	for _, e := range builtinEntries {
		d.Add(e.Hmong, e.English...)
	}
	return d
}

// Add records glosses for a headword, appending to any existing entry.
// Not safe for concurrent use; see WithWord.
func (d *Dictionary) Add(hmong string, glosses ...string) {
	key := strings.ToLower(strings.TrimSpace(hmong))
	if key == "" || len(glosses) == 0 {
		return
	}
	e := d.entries[key]
	e.Hmong = key
	for _, g := range glosses {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == "" || contains(e.English, g) {
			continue
		}
		e.English = append(e.English, g)
		if !contains(d.reverse[g], key) {
			d.reverse[g] = append(d.reverse[g], key)
		}
	}
	d.entries[key] = e
}

// WithWord returns a copy of the dictionary with the given word added.
// The receiver is not modified, so snapshots can be swapped in under
// concurrent readers without locking.
func (d *Dictionary) WithWord(hmong string, glosses ...string) *Dictionary {
	nd := New()
	for _, e := range d.entries {
		nd.Add(e.Hmong, e.English...)
	}
	nd.Add(hmong, glosses...)
	return nd
}

// Merge adds every entry of other into d.
func (d *Dictionary) Merge(other *Dictionary) {
	for _, e := range other.entries {
		d.Add(e.Hmong, e.English...)
	}
}

// Lookup returns the English glosses for a Hmong headword.
func (d *Dictionary) Lookup(hmong string) ([]string, error) {
	e, ok := d.entries[strings.ToLower(strings.TrimSpace(hmong))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWord, hmong)
	}
	out := make([]string, len(e.English))
	copy(out, e.English)
	return out, nil
}

// Reverse returns the Hmong headwords glossed by an English word or phrase.
func (d *Dictionary) Reverse(english string) ([]string, error) {
	hs, ok := d.reverse[strings.ToLower(strings.TrimSpace(english))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWord, english)
	}
	out := make([]string, len(hs))
	copy(out, hs)
	sort.Strings(out)
	return out, nil
}

// Len returns the number of headwords.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Words returns all headwords in sorted order.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.entries))
	for w := range d.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Entries returns all entries sorted by headword.
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, 0, len(d.entries))
	for _, w := range d.Words() {
		out = append(out, d.entries[w])
	}
	return out
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
