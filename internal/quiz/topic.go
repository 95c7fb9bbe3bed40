package quiz

import (
	"fmt"
	"strings"
)

// Topic is one of the fixed science subject areas questions are
// generated for.
type Topic string

const (
	TopicBiology   Topic = "biology"
	TopicChemistry Topic = "chemistry"
	TopicPhysics   Topic = "physics"
	TopicAstronomy Topic = "astronomy"
	TopicGeology   Topic = "geology"
	TopicAnatomy   Topic = "anatomy"
)

// AllTopics returns every topic in display order.
func AllTopics() []Topic {
	return []Topic{
		TopicBiology,
		TopicChemistry,
		TopicPhysics,
		TopicAstronomy,
		TopicGeology,
		TopicAnatomy,
	}
}

// ParseTopic converts a string to a Topic, rejecting unknown values.
func ParseTopic(s string) (Topic, error) {
	t := Topic(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TopicBiology, TopicChemistry, TopicPhysics, TopicAstronomy, TopicGeology, TopicAnatomy:
		return t, nil
	}
	return "", fmt.Errorf("unknown topic: %q", s)
}

// Display returns the topic name capitalized for prompts and UI.
func (t Topic) Display() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
