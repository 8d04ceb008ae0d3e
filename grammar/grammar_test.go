package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		word string
		want Tag
	}{
		{"kuv", TagPronoun},
		{"tus", TagClassifier},
		{"yog", TagVerb},
		{"neeg", TagNoun},
		{"zoo", TagAdjective},
		{"tsis", TagAdverb},
		{"lawm", TagParticle},
		{"thiab", TagConjunction},
		{"hauv", TagPreposition},
		{"KUV", TagPronoun}, // case-insensitive
		{"qwerty", TagUnknown},
		{"", TagUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Detect(tt.word), "Detect(%q)", tt.word)
	}
}

func TestClassifiers(t *testing.T) {
	assert.Equal(t, []string{"tus"}, Classifiers("neeg"))
	assert.Equal(t, []string{"lub"}, Classifiers("tsev"))
	assert.Equal(t, []string{"txoj"}, Classifiers("kev"))
	assert.Equal(t, []string{"daim", "phau"}, Classifiers("ntawv"))
	// unknown nouns fall back to the generic classifier
	assert.Equal(t, []string{"tus"}, Classifiers("qwerty"))
}

func TestConjugate(t *testing.T) {
	got, err := Conjugate("kuv noj mov", Past)
	require.NoError(t, err)
	assert.Equal(t, "kuv noj mov lawm", got)

	got, err = Conjugate("kuv noj mov", Future)
	require.NoError(t, err)
	assert.Equal(t, "yuav kuv noj mov", got)

	got, err = Conjugate("kuv noj mov", Present)
	require.NoError(t, err)
	assert.Equal(t, "kuv noj mov", got)

	_, err = Conjugate("kuv noj mov", Tense(42))
	assert.ErrorIs(t, err, ErrUnknownTense)
}

func TestTenseString(t *testing.T) {
	assert.Equal(t, "present", Present.String())
	assert.Equal(t, "past", Past.String())
	assert.Equal(t, "future", Future.String())
}

func TestSubstitute(t *testing.T) {
	assert.Equal(t, "koj yog neeg", Substitute("kuv yog neeg", "kuv", "koj"))
	// only whole tokens are replaced
	assert.Equal(t, "kuvkuv yog", Substitute("kuvkuv yog", "kuv", "koj"))
	assert.Equal(t, "a b a", Substitute(" a  b  a ", "c", "d"))
}
