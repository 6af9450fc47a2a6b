package inventory

import "fmt"

// Container is an ordered collection of items with no duplicates by identity.
// Insertion order is display order. Both room floors and the player's pack
// are Containers; moving an item is Remove from one followed by Add to the other.
type Container struct {
	items []*Item
}

// NewContainer returns a Container holding items in the given order.
//
// Precondition: items contains no nil entries and no pointer twice.
// Postcondition: Items() equals items.
func NewContainer(items ...*Item) *Container {
	c := &Container{}
	for _, it := range items {
		if err := c.Add(it); err != nil {
			panic(fmt.Sprintf("NewContainer: %v", err))
		}
	}
	return c
}

// Add appends it to the container.
//
// Precondition: it must not be nil.
// Postcondition: on success it is the last item; on error the container is unchanged.
func (c *Container) Add(it *Item) error {
	if it == nil {
		return fmt.Errorf("container: cannot add nil item")
	}
	if c.Contains(it) {
		return fmt.Errorf("container: item %q already present", it.Name)
	}
	c.items = append(c.items, it)
	return nil
}

// Remove takes it out of the container, preserving the order of the remaining items.
//
// Postcondition: returns true iff it was present; the container no longer holds it.
func (c *Container) Remove(it *Item) bool {
	for i, held := range c.items {
		if held == it {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether it is held by identity.
func (c *Container) Contains(it *Item) bool {
	for _, held := range c.items {
		if held == it {
			return true
		}
	}
	return false
}

// Items returns a snapshot of the held items in order.
//
// Postcondition: returned slice is a copy; mutations do not affect internal state.
func (c *Container) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// Names returns the display names of the held items in order.
func (c *Container) Names() []string {
	names := make([]string, len(c.items))
	for i, it := range c.items {
		names[i] = it.Name
	}
	return names
}

// Len returns the number of held items.
func (c *Container) Len() int {
	return len(c.items)
}

// Clone returns an independent container holding the same item pointers.
func (c *Container) Clone() *Container {
	return &Container{items: c.Items()}
}
