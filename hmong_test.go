package hmong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyooj/hmong-go/lexicon"
	"github.com/xyooj/hmong-go/phonology"
)

func TestProcessorPipeline(t *testing.T) {
	p := New()

	text := p.Normalize("kuv   YOG  neeg   HMOOB")
	assert.Equal(t, "Kuv yog neeg hmoob", text)

	tokens := p.Tokenize(text)
	require.Len(t, tokens, 4)
	for _, tok := range tokens {
		assert.True(t, p.IsValidSyllable(tok), "token %q", tok)
	}

	s := p.Decompose("ntxawg")
	assert.Equal(t, "ntx", s.Onset)
	assert.Equal(t, "aw", s.Nucleus)
	assert.Equal(t, phonology.ToneG, s.Tone)
	assert.True(t, s.Valid)

	assert.Equal(t, phonology.ToneV, p.GetTone("kuv"))

	kub, err := p.ConvertTone("kuv", phonology.ToneB)
	require.NoError(t, err)
	assert.Equal(t, "kub", kub)
}

func TestProcessorDictionary(t *testing.T) {
	p := New()

	glosses, err := p.Translate("niam")
	require.NoError(t, err)
	assert.Equal(t, []string{"mother"}, glosses)

	hs, err := p.Reverse("mother")
	require.NoError(t, err)
	assert.Contains(t, hs, "niam")

	hits := p.Search("nia", lexicon.DirectionHmong)
	require.NotEmpty(t, hits)
	assert.Equal(t, "niam", hits[0].Hmong)

	_, err = p.Translate("qwerty")
	assert.ErrorIs(t, err, lexicon.ErrUnknownWord)
}

func TestAddWordSnapshot(t *testing.T) {
	p := New()
	p2 := p.AddWord("dej", "water")

	_, err := p.Translate("dej")
	assert.ErrorIs(t, err, lexicon.ErrUnknownWord)

	glosses, err := p2.Translate("dej")
	require.NoError(t, err)
	assert.Equal(t, []string{"water"}, glosses)
}

func TestWithDictionary(t *testing.T) {
	d := lexicon.New()
	d.Add("dej", "water")
	p := New(WithDictionary(d))

	_, err := p.Translate("niam")
	assert.ErrorIs(t, err, lexicon.ErrUnknownWord)

	glosses, err := p.Translate("dej")
	require.NoError(t, err)
	assert.Equal(t, []string{"water"}, glosses)
}

func TestPackageLevelWrappers(t *testing.T) {
	assert.Equal(t, "Nyob zoo", Normalize("nyob   ZOO"))
	assert.True(t, IsValidSyllable("kuv"))
	assert.False(t, IsValidSyllable("xyz"))
	assert.Equal(t, phonology.ToneJ, GetTone("koj"))

	kus, err := ConvertTone("kuv", phonology.ToneS)
	require.NoError(t, err)
	assert.Equal(t, "kus", kus)

	glosses, err := Translate("hmoob")
	require.NoError(t, err)
	assert.Equal(t, []string{"hmong"}, glosses)
}
