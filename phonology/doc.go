// Package phonology analyzes Hmong syllables written in the Romanized
// Popular Alphabet (RPA).
//
// An RPA syllable is onset + nucleus + optional tone letter, where the
// tone letter (b, j, v, s, g, d, m) encodes pitch rather than a final
// consonant sound. Decompose splits a token against the fixed onset and
// nucleus inventories by greedy longest-match scanning; GetTone and
// ConvertTone build on it for tone queries and tone substitution;
// Normalize and Tokenize prepare freeform text for per-token analysis.
//
// All tables are immutable after package init and every function is a
// pure computation over its input, so the package is safe for concurrent
// use by multiple goroutines.
package phonology
