package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/sweetshop/internal/models"
)

func TestCache_DecrementQuantity(t *testing.T) {
	c := NewCache()
	c.Replace([]models.Sweet{{ID: 1, Quantity: 2}, {ID: 2, Quantity: 0}})

	assert.True(t, c.DecrementQuantity(1))
	item, _ := c.Get(1)
	assert.Equal(t, 1, item.Quantity)

	// Zero quantity is never decremented below zero.
	assert.False(t, c.DecrementQuantity(2))
	item, _ = c.Get(2)
	assert.Equal(t, 0, item.Quantity)

	// Unknown id is a no-op.
	assert.False(t, c.DecrementQuantity(99))
}

func TestCache_ItemsReturnsCopyInOrder(t *testing.T) {
	c := NewCache()
	c.Replace([]models.Sweet{{ID: 3}, {ID: 1}, {ID: 2}})

	items := c.Items()
	assert.Equal(t, int64(3), items[0].ID)

	items[0].ID = 42
	assert.Equal(t, int64(3), c.Items()[0].ID)
}

func TestCache_GetMissing(t *testing.T) {
	c := NewCache()
	_, ok := c.Get(7)
	assert.False(t, ok)
}
