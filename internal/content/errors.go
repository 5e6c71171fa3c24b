package content

import "errors"

var (
	// ErrArticleNotFound signals a slug with no published article behind it.
	ErrArticleNotFound = errors.New("article not found")

	// ErrSlugTaken signals an insert colliding with an existing slug.
	ErrSlugTaken = errors.New("article slug already in use")
)
