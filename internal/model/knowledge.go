package model

import (
	"time"
)

// KnowledgeSource is a read-only reference article used for keyword
// relevance matching.
type KnowledgeSource struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags,omitempty"`
	LastUpdated     *time.Time `json:"last_updated,omitempty"`
	Author          string     `json:"author,omitempty"`
	RelatedArticles []string   `json:"related_articles,omitempty"`
}

// KnowledgeParams filter the knowledge source list.
type KnowledgeParams struct {
	// Search matches title, content, or excerpt as a case-insensitive
	// substring.
	Search string
	// Category is an exact match when non-empty.
	Category string
}
