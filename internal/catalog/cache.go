// Package catalog coordinates catalog actions for the views: loading items
// into a local cache and applying the mutation strategies (an optimistic
// local decrement for purchases, a full re-fetch for admin mutations).
// Every outcome is reported through the notifier.
package catalog

import (
	"sync"

	"github.com/dmitrijs2005/sweetshop/internal/models"
)

// Cache is the transient, locally mutable item list held purely for display
// and optimistic updates. It is never the source of truth; the backend is.
type Cache struct {
	mu    sync.Mutex
	items []models.Sweet
}

func NewCache() *Cache {
	return &Cache{}
}

// Replace swaps the whole cached list with a fresh backend result.
func (c *Cache) Replace(items []models.Sweet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]models.Sweet, len(items))
	copy(c.items, items)
}

// Items returns a copy of the cached list in backend order.
func (c *Cache) Items() []models.Sweet {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Sweet, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the cached item with the given id.
func (c *Cache) Get(id int64) (models.Sweet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.Sweet{}, false
}

// DecrementQuantity patches one item's quantity down by one. Unknown ids
// and zero quantities are left untouched.
func (c *Cache) DecrementQuantity(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			if c.items[i].Quantity == 0 {
				return false
			}
			c.items[i].Quantity--
			return true
		}
	}
	return false
}
