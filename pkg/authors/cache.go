package authors

import (
	"quote-scraper/pkg/models"
)

// Cache holds resolved authors keyed by the display name seen on listing
// pages. Insertion order is preserved so output rows are deterministic.
// The crawl runs on a single goroutine; Cache is not safe for concurrent use.
type Cache struct {
	entries map[string]models.Author
	order   []string
}

// NewCache creates an empty author cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]models.Author),
	}
}

// Get retrieves the cached author for a display name.
func (c *Cache) Get(name string) (models.Author, bool) {
	author, ok := c.entries[name]
	return author, ok
}

// Set stores an author under the given display name. The first record for a
// name wins; a later Set for the same name is a no-op, so a name shared by
// two distinct people keeps the record resolved first.
func (c *Cache) Set(name string, author models.Author) {
	if _, exists := c.entries[name]; exists {
		return
	}
	c.entries[name] = author
	c.order = append(c.order, name)
}

// Len returns the number of cached authors.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Authors returns all cached authors in first-seen order.
func (c *Cache) Authors() []models.Author {
	authors := make([]models.Author, 0, len(c.order))
	for _, name := range c.order {
		authors = append(authors, c.entries[name])
	}
	return authors
}
