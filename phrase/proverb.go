package phrase

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

var proverbs = map[string][]string{
	"wisdom": {"Niam txiv lus yog lus qhuab qhia"},
	"family": {"Niam txiv siab zoo, me nyuam thiaj li zoo"},
	"work":   {"Ua haujlwm tsis txhob so, noj mov thiaj li tsis tshaib"},
}

var idioms = map[string]string{
	"zoo siab":  "happy (lit: good heart)",
	"siab phem": "mean, evil (lit: bad heart)",
	"siab ntev": "patient (lit: long heart)",
}

// ErrUnknownTopic is returned when no proverbs exist for a topic.
var ErrUnknownTopic = errors.New("unknown topic")

// ErrUnknownIdiom is returned when an idiom is not in the table.
var ErrUnknownIdiom = errors.New("unknown idiom")

// ProverbTopics returns the topics with at least one proverb.
func ProverbTopics() []string {
	topics := make([]string, 0, len(proverbs))
	for t := range proverbs {
		topics = append(topics, t)
	}
	return topics
}

// Proverbs returns all proverbs for a topic in table order.
func Proverbs(topic string) ([]string, error) {
	ps, ok := proverbs[strings.ToLower(strings.TrimSpace(topic))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
	}
	out := make([]string, len(ps))
	copy(out, ps)
	return out, nil
}

// Proverb picks one proverb for the topic at random.
func Proverb(topic string) (string, error) {
	ps, err := Proverbs(topic)
	if err != nil {
		return "", err
	}
	return ps[rand.Intn(len(ps))], nil
}

// ExplainIdiom returns the meaning of an idiom, with its literal reading.
func ExplainIdiom(idiom string) (string, error) {
	m, ok := idioms[strings.ToLower(strings.TrimSpace(idiom))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownIdiom, idiom)
	}
	return m, nil
}
