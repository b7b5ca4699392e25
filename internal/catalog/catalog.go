// Package catalog holds the fixed set of purchasable item types.
package catalog

import "fmt"

// Item is an immutable catalog entry. Price is in whole rupees.
type Item struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Price int    `json:"price"`
}

// Default returns the built-in item set used when no registry file is
// configured.
func Default() []Item {
	return []Item{
		{ID: "shirt", Name: "Shirt", Icon: "👔", Price: 35},
		{ID: "tshirt", Name: "T-Shirt", Icon: "👕", Price: 25},
		{ID: "pants", Name: "Pants", Icon: "👖", Price: 45},
		{ID: "dress", Name: "Dress", Icon: "👗", Price: 80},
		{ID: "jacket", Name: "Jacket", Icon: "🧥", Price: 70},
	}
}

// Catalog is a read-only, ordered item set with id lookup.
type Catalog struct {
	items []Item
	byID  map[string]Item
}

func New(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog must have at least one item")
	}

	byID := make(map[string]Item, len(items))
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item %q has empty id", item.Name)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("catalog item %q has negative price", item.ID)
		}
		if _, exists := byID[item.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog item id %q", item.ID)
		}
		byID[item.ID] = item
	}

	return &Catalog{items: items, byID: byID}, nil
}

// MustDefault builds the default catalog; the built-in set is known valid.
func MustDefault() *Catalog {
	c, err := New(Default())
	if err != nil {
		panic(err)
	}
	return c
}

// Items returns the items in display order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup returns the item for id.
func (c *Catalog) Lookup(id string) (Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}
