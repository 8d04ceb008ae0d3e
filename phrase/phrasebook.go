// Package phrase holds the canned-phrase tables: greetings, common
// questions, lesson dialogues, proverbs, idioms, and pronunciation
// drills. Everything is a static lookup; the tables never change at
// runtime.
package phrase

import "strings"

var greetings = map[string]string{
	"morning":   "Nyob zoo sawv ntxov",
	"afternoon": "Nyob zoo tav su",
	"evening":   "Nyob zoo tsaus ntuj",
	"general":   "Nyob zoo",
	"goodbye":   "Sib ntsib dua",
}

var questions = map[string]string{
	"name":    "Koj lub npe hu li cas?",
	"age":     "Koj muaj pes tsawg xyoos?",
	"from":    "Koj tuaj qhov twg los?",
	"doing":   "Koj ua dab tsi?",
	"feeling": "Koj nyob li cas?",
	"where":   "Koj nyob qhov twg?",
}

// Exchange is one line of a dialogue with its translation.
type Exchange struct {
	Hmong   string
	English string
}

var dialogues = map[int][]Exchange{
	1: {
		{"Nyob zoo!", "Hello!"},
		{"Koj lub npe hu li cas?", "What is your name?"},
		{"Kuv lub npe hu ua Maiv.", "My name is Mai."},
	},
	2: {
		{"Koj puas tshaib plab?", "Are you hungry?"},
		{"Kuv tshaib plab heev.", "I am very hungry."},
		{"Koj xav noj dab tsi?", "What do you want to eat?"},
	},
}

// Greeting returns the greeting for a time of day (morning, afternoon,
// evening, general, goodbye). Unknown keys fall back to the general
// greeting.
func Greeting(timeOfDay string) string {
	if g, ok := greetings[strings.ToLower(strings.TrimSpace(timeOfDay))]; ok {
		return g
	}
	return greetings["general"]
}

// Question returns the phrase asking about a topic (name, age, from,
// doing, feeling, where). Unknown topics fall back to "how are you".
func Question(topic string) string {
	if q, ok := questions[strings.ToLower(strings.TrimSpace(topic))]; ok {
		return q
	}
	return questions["feeling"]
}

// Dialogue returns the lesson dialogue for a unit, or nil for unknown
// units.
func Dialogue(unit int) []Exchange {
	d, ok := dialogues[unit]
	if !ok {
		return nil
	}
	out := make([]Exchange, len(d))
	copy(out, d)
	return out
}
