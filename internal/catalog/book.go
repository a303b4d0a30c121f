package catalog

import "github.com/shopspring/decimal"

// Book is an immutable catalog record. Identity is the opaque ID; nothing
// in the cart or filter path ever mutates a Book, the admin surface only
// flips Featured or drops the record from the store.
type Book struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CoverImage  string          `json:"coverImage"`
	Categories  []string        `json:"categories"`
	Featured    bool            `json:"featured,omitempty"`
	InStock     int             `json:"inStock"`
	Pages       int             `json:"pages"`
	PublishYear int             `json:"publishYear"`
	ISBN        string          `json:"isbn"`
	Language    string          `json:"language,omitempty"`
}

// HasCategory reports whether the book carries the given category label.
// The language tag counts as a category-like label for faceting.
func (b Book) HasCategory(label string) bool {
	if b.Language != "" && b.Language == label {
		return true
	}
	for _, c := range b.Categories {
		if c == label {
			return true
		}
	}
	return false
}
