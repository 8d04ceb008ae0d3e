package lexicon

import (
	"sort"
	"strings"
)

// Direction selects which side of the dictionary a search matches against.
type Direction int

const (
	DirectionHmong   Direction = iota // match Hmong headwords
	DirectionEnglish                  // match English glosses
)

// Match is one search hit.
type Match struct {
	Hmong   string
	English string
}

// maxResults caps the number of search hits returned.
const maxResults = 10

// Search finds entries whose headword (DirectionHmong) or gloss
// (DirectionEnglish) contains query as a substring, ranked by edit
// distance to the query so closer matches come first. Search never fails;
// an unknown query yields an empty result.
func (d *Dictionary) Search(query string, dir Direction) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	type ranked struct {
		m    Match
		dist int
	}
	var hits []ranked

	switch dir {
	case DirectionEnglish:
		for gloss, headwords := range d.reverse {
			if !strings.Contains(gloss, q) {
				continue
			}
			for _, h := range headwords {
				hits = append(hits, ranked{Match{Hmong: h, English: gloss}, editDistance(q, gloss)})
			}
		}
	default:
		for word, e := range d.entries {
			if !strings.Contains(word, q) {
				continue
			}
			hits = append(hits, ranked{Match{Hmong: word, English: strings.Join(e.English, ", ")}, editDistance(q, word)})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		if hits[i].m.Hmong != hits[j].m.Hmong {
			return hits[i].m.Hmong < hits[j].m.Hmong
		}
		return hits[i].m.English < hits[j].m.English
	})

	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}
	out := make([]Match, len(hits))
	for i, h := range hits {
		out[i] = h.m
	}
	return out
}

// editDistance computes the Levenshtein distance between two strings by
// rune, using a single-row DP to save memory.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		cur := make([]int, lb+1)
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev = cur
	}
	return prev[lb]
}
