package models

import (
	"errors"
)

// DateLayout is the format used for publication dates (ISO 8601 date).
const DateLayout = "2006-01-02"

// Sentinel errors surfaced by the article store.
var (
	// ErrDuplicateSlug is returned when a create or update would persist a
	// slug already held by a different article.
	ErrDuplicateSlug = errors.New("slug already in use by another article")

	// ErrNotFound is returned when no article matches the requested id.
	ErrNotFound = errors.New("article not found")
)

// Article represents a single blog post.
type Article struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
	Slug  string `json:"slug" db:"slug"`
	// PublicationDate is set once at creation and never mutated by updates.
	PublicationDate string `json:"publication_date" db:"publication_date"`
	// Tags is a free-form comma-separated string, stored without normalization.
	Tags    string `json:"tags" db:"tags"`
	Content string `json:"content" db:"content"`
}

// ArticleInput carries the caller-supplied fields for create and update
// operations. Slug and publication date are always derived by the store.
type ArticleInput struct {
	Title   string `json:"title"`
	Tags    string `json:"tags"`
	Content string `json:"content"`
}
