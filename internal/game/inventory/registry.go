package inventory

import "fmt"

// Catalog holds every item definition of a world, keyed by name and kept in
// declaration order.
type Catalog struct {
	items map[string]*Item
	order []*Item
}

// NewCatalog returns an empty Catalog.
//
// Postcondition: internal map is initialised.
func NewCatalog() *Catalog {
	return &Catalog{items: make(map[string]*Item)}
}

// Register adds it to the catalog.
//
// Precondition:  it must not be nil.
// Postcondition: Item(it.Name) returns (it, true); returns error if the name is already registered.
func (c *Catalog) Register(it *Item) error {
	if it.Name == "" {
		return fmt.Errorf("inventory: Catalog.Register: item name must not be empty")
	}
	if _, exists := c.items[it.Name]; exists {
		return fmt.Errorf("inventory: Catalog.Register: item %q already registered", it.Name)
	}
	if it.Points < 0 {
		return fmt.Errorf("inventory: Catalog.Register: item %q has negative points %d", it.Name, it.Points)
	}
	c.items[it.Name] = it
	c.order = append(c.order, it)
	return nil
}

// Item returns the item registered under name and whether it was found.
func (c *Catalog) Item(name string) (*Item, bool) {
	it, ok := c.items[name]
	return it, ok
}

// All returns every registered item in declaration order.
//
// Postcondition: the returned slice is a copy.
func (c *Catalog) All() []*Item {
	out := make([]*Item, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of registered items.
func (c *Catalog) Len() int {
	return len(c.order)
}
