package catalog

import (
	"testing"

	"lawmitra-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuiltin_HasUniqueIDs(t *testing.T) {
	c := NewBuiltin()
	require.Greater(t, c.Len(), 0)

	seen := make(map[string]struct{})
	for _, law := range c.All() {
		_, dup := seen[law.ID]
		require.False(t, dup, "duplicate id %s", law.ID)
		seen[law.ID] = struct{}{}
	}
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, err := New([]models.Law{
		{ID: "a", Title: "First"},
		{ID: "a", Title: "Second"},
	})
	assert.Error(t, err)
}

func TestNew_RejectsEmptyID(t *testing.T) {
	_, err := New([]models.Law{{Title: "No ID"}})
	assert.Error(t, err)
}

func TestGetByID(t *testing.T) {
	c := NewBuiltin()

	law, ok := c.GetByID("traffic-1")
	require.True(t, ok)
	assert.Equal(t, "Traffic Signal Violations", law.Title)

	_, ok = c.GetByID("nope")
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	c := NewBuiltin()

	traffic := c.ByCategory("traffic")
	require.Len(t, traffic, 2)
	for _, law := range traffic {
		assert.Equal(t, "traffic", law.Category)
	}

	assert.Empty(t, c.ByCategory("unknown"))
}

func TestCategories_SortedAndDistinct(t *testing.T) {
	c := NewBuiltin()
	cats := c.Categories()
	assert.Equal(t, []string{"accident", "children", "helpline", "traffic", "women"}, cats)
}

func TestSearch(t *testing.T) {
	c := NewBuiltin()

	results := c.Search("red light")
	require.Len(t, results, 1)
	assert.Equal(t, "traffic-1", results[0].ID)

	// Case-insensitive
	assert.Len(t, c.Search("RED LIGHT"), 1)

	// Empty query matches everything
	assert.Len(t, c.Search("  "), c.Len())

	assert.Empty(t, c.Search("xyzabc123"))
}

func TestContactListOnlyOnHelplineRecord(t *testing.T) {
	c := NewBuiltin()
	law, ok := c.GetByID("helpline-1")
	require.True(t, ok)
	assert.NotEmpty(t, law.ContactList)
}
