package grammar

import "strings"

// genericClassifier is the fallback for nouns without a table entry. "tus"
// is the animate/general classifier and the least wrong default.
const genericClassifier = "tus"

var classifierTable = map[string][]string{
	"neeg":  {"tus"},
	"dev":   {"tus"},
	"tub":   {"tus"},
	"tsev":  {"lub"},
	"tsheb": {"lub"},
	"hnub":  {"lub"},
	"kev":   {"txoj"},
	"ntawv": {"daim", "phau"},
}

// Classifiers returns the classifier particles used with a noun. Unknown
// nouns fall back to the generic classifier.
func Classifiers(noun string) []string {
	if cs, ok := classifierTable[strings.ToLower(strings.TrimSpace(noun))]; ok {
		out := make([]string, len(cs))
		copy(out, cs)
		return out
	}
	return []string{genericClassifier}
}
