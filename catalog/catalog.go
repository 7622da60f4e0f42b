// Package catalog holds the read-only collection of law records that the
// rest of the service matches against. The catalog is built once at startup,
// either from the embedded dataset or from Postgres, and never mutated.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"lawmitra-backend/models"
)

// Catalog is an immutable, ordered collection of law records
type Catalog struct {
	laws []models.Law
	byID map[string]int
}

// New builds a catalog from the given records. Record order is preserved;
// it is the tie-break order for relevance ranking. Duplicate IDs are
// rejected because every downstream lookup assumes uniqueness.
func New(laws []models.Law) (*Catalog, error) {
	byID := make(map[string]int, len(laws))
	for i, law := range laws {
		if law.ID == "" {
			return nil, fmt.Errorf("law at index %d has empty id", i)
		}
		if _, exists := byID[law.ID]; exists {
			return nil, fmt.Errorf("duplicate law id: %s", law.ID)
		}
		byID[law.ID] = i
	}
	return &Catalog{laws: laws, byID: byID}, nil
}

// NewBuiltin returns a catalog backed by the embedded practical-laws dataset
func NewBuiltin() *Catalog {
	c, err := New(practicalLaws)
	if err != nil {
		// The embedded dataset is fixed at build time; a duplicate id here
		// is a programming error, not a runtime condition.
		panic(err)
	}
	return c
}

// All returns every record in catalog order. Callers must not modify the
// returned slice.
func (c *Catalog) All() []models.Law {
	return c.laws
}

// Len returns the number of records
func (c *Catalog) Len() int {
	return len(c.laws)
}

// GetByID returns the record with the given id, if present
func (c *Catalog) GetByID(id string) (models.Law, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Law{}, false
	}
	return c.laws[i], true
}

// ByCategory returns all records in the given category, in catalog order
func (c *Catalog) ByCategory(category string) []models.Law {
	var out []models.Law
	for _, law := range c.laws {
		if strings.EqualFold(law.Category, category) {
			out = append(out, law)
		}
	}
	return out
}

// Categories returns the distinct category labels, sorted
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, law := range c.laws {
		if _, ok := seen[law.Category]; !ok {
			seen[law.Category] = struct{}{}
			out = append(out, law.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Search returns records whose title, summary or content contains the query
// as a case-insensitive substring, in catalog order. An empty query matches
// everything.
func (c *Catalog) Search(query string) []models.Law {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.laws
	}
	var out []models.Law
	for _, law := range c.laws {
		text := strings.ToLower(law.Title + " " + law.Summary + " " + law.Content)
		if strings.Contains(text, q) {
			out = append(out, law)
		}
	}
	return out
}
