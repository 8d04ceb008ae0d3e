package phonology

import "sort"

// RPA consonant onsets, grouped by length. The groups mirror the standard
// White Hmong inventory: plain singles, digraphs, trigraphs, and the three
// quadgraphs. Scan order is rebuilt longest-first at init, so insertion
// order inside a group does not matter.
var (
	onsetSingles = []string{
		"b", "c", "d", "f", "h", "k", "l", "m", "n", "p",
		"q", "r", "s", "t", "v", "x", "y", "z",
	}
	onsetDigraphs = []string{
		"ch", "dh", "hl", "hm", "hn", "kh", "ml", "nc", "nk", "np",
		"nq", "nr", "nt", "ny", "ph", "pl", "qh", "rh", "th", "ts",
		"tx", "xy",
	}
	onsetTrigraphs = []string{
		"hml", "hny", "nch", "nkh", "nph", "npl", "nqh", "nrh", "nth",
		"nts", "ntx", "plh", "tsh", "txh",
	}
	onsetQuadgraphs = []string{
		"nplh", "ntsh", "ntxh",
	}
)

// RPA vowel nuclei. Complex nuclei are matched before simple ones.
var (
	nucleiComplex = []string{"aa", "ai", "au", "aw", "ee", "ia", "oo", "ua"}
	nucleiSimple  = []string{"a", "e", "i", "o", "u", "w"}
)

// scanOnsets and scanNuclei are the longest-match scan lists, sorted by
// length (descending) at init. Sorting, not table order, enforces the
// longest-match-first invariant.
var (
	scanOnsets []string
	scanNuclei []string
	onsetSet   map[string]bool
)

func init() {
	scanOnsets = buildScanList(onsetQuadgraphs, onsetTrigraphs, onsetDigraphs, onsetSingles)
	scanNuclei = buildScanList(nucleiComplex, nucleiSimple)

	onsetSet = make(map[string]bool, len(scanOnsets))
	for _, c := range scanOnsets {
		onsetSet[c] = true
	}
}

// buildScanList flattens groups and sorts longest-first. Entries of equal
// length keep alphabetical order so the scan is deterministic.
func buildScanList(groups ...[]string) []string {
	var list []string
	for _, g := range groups {
		list = append(list, g...)
	}
	sort.Slice(list, func(i, j int) bool {
		if len(list[i]) != len(list[j]) {
			return len(list[i]) > len(list[j])
		}
		return list[i] < list[j]
	})
	return list
}

// matchLongest returns the first (longest) table entry that is a prefix of s,
// or "" if none matches.
func matchLongest(s string, table []string) string {
	for _, entry := range table {
		if len(entry) <= len(s) && s[:len(entry)] == entry {
			return entry
		}
	}
	return ""
}

// Onsets returns the full onset inventory in scan (longest-first) order.
func Onsets() []string {
	out := make([]string, len(scanOnsets))
	copy(out, scanOnsets)
	return out
}

// Nuclei returns the full nucleus inventory in scan (longest-first) order.
func Nuclei() []string {
	out := make([]string, len(scanNuclei))
	copy(out, scanNuclei)
	return out
}

// IsOnset reports whether c is a recognized onset consonant.
func IsOnset(c string) bool {
	return onsetSet[c]
}
