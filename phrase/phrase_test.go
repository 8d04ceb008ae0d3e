package phrase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Nyob zoo sawv ntxov", Greeting("morning"))
	assert.Equal(t, "Sib ntsib dua", Greeting("goodbye"))
	assert.Equal(t, "Nyob zoo", Greeting("general"))
	// unknown times fall back to the general greeting
	assert.Equal(t, "Nyob zoo", Greeting("midnight"))
	assert.Equal(t, "Nyob zoo", Greeting(""))
	// case-insensitive
	assert.Equal(t, "Nyob zoo tav su", Greeting("Afternoon"))
}

func TestQuestion(t *testing.T) {
	assert.Equal(t, "Koj lub npe hu li cas?", Question("name"))
	assert.Equal(t, "Koj nyob qhov twg?", Question("where"))
	// unknown topics fall back to "how are you"
	assert.Equal(t, "Koj nyob li cas?", Question("weather"))
}

func TestDialogue(t *testing.T) {
	d := Dialogue(1)
	require.Len(t, d, 3)
	assert.Equal(t, Exchange{"Nyob zoo!", "Hello!"}, d[0])

	assert.Nil(t, Dialogue(99))
}

func TestProverbs(t *testing.T) {
	ps, err := Proverbs("wisdom")
	require.NoError(t, err)
	assert.Equal(t, []string{"Niam txiv lus yog lus qhuab qhia"}, ps)

	_, err = Proverbs("weather")
	assert.ErrorIs(t, err, ErrUnknownTopic)
}

func TestProverbPicksFromTopic(t *testing.T) {
	all, err := Proverbs("work")
	require.NoError(t, err)

	p, err := Proverb("work")
	require.NoError(t, err)
	assert.Contains(t, all, p)

	_, err = Proverb("weather")
	assert.ErrorIs(t, err, ErrUnknownTopic)
}

func TestExplainIdiom(t *testing.T) {
	m, err := ExplainIdiom("zoo siab")
	require.NoError(t, err)
	assert.Equal(t, "happy (lit: good heart)", m)

	m, err = ExplainIdiom("Siab Ntev")
	require.NoError(t, err)
	assert.Equal(t, "patient (lit: long heart)", m)

	_, err = ExplainIdiom("zoo zoo")
	assert.ErrorIs(t, err, ErrUnknownIdiom)
}

func TestDrill(t *testing.T) {
	tone := Drill("tone")
	require.Len(t, tone, 8)
	assert.Equal(t, "pab", tone[0])
	assert.Equal(t, "pa", tone[7])

	assert.Len(t, Drill("consonant"), 5)
	assert.Len(t, Drill("vowel"), 5)
	assert.Nil(t, Drill("rhythm"))
}

func TestFlashcards(t *testing.T) {
	cards := Flashcards("family")
	require.Len(t, cards, 3)
	assert.Equal(t, "mother", cards["niam"])

	assert.Nil(t, Flashcards("animals"))

	// returned map is a copy; mutating it must not affect the table
	cards["niam"] = "changed"
	assert.Equal(t, "mother", Flashcards("family")["niam"])
}
