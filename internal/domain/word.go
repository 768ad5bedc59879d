package domain

import "strings"

// HashtagMarker prefixes every category tag.
const HashtagMarker = "#"

// Hashtag is a vocabulary category on the website.
type Hashtag struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Message is a saved note as the website returns it. UserID mirrors the
// wire format, which carries the sender id as a string.
type Message struct {
	Text        string `json:"text"`
	Translation string `json:"translation,omitempty"`
	Category    string `json:"category"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Timestamp   string `json:"timestamp"`
}

// WordPair is a single export entry: note text with an optional translation.
type WordPair struct {
	Text        string
	Translation string
}

// ExtractHashtags returns every whitespace-separated token starting with
// the marker, in message order. The first one is the note's category.
func ExtractHashtags(text string) []string {
	var tags []string
	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, HashtagMarker) {
			tags = append(tags, word)
		}
	}
	return tags
}

// FirstHashtag returns the first tagged token of the message, or "".
func FirstHashtag(text string) string {
	if tags := ExtractHashtags(text); len(tags) > 0 {
		return tags[0]
	}
	return ""
}
