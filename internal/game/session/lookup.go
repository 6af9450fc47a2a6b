package session

import "github.com/cory-johannsen/omega/internal/game/inventory"

// Scope selects the containers an item lookup searches.
type Scope int

const (
	// ScopeInventory searches only the player's pack.
	ScopeInventory Scope = iota
	// ScopeInventoryAndRoom searches the pack, then the current room floor.
	ScopeInventoryAndRoom
)

// FindItem resolves a partial, case-insensitive name fragment to an item.
// Candidates are enumerated inventory first, then (if scope allows) the current
// room, each in insertion order; the first match wins, so a carried item always
// shadows a room item. A blank fragment never matches.
//
// Postcondition: Returns (item, true) on a match, or (nil, false).
func (s *Session) FindItem(fragment string, scope Scope) (*inventory.Item, bool) {
	if it, ok := firstMatch(s.Player.Inventory, fragment); ok {
		return it, true
	}
	if scope != ScopeInventoryAndRoom {
		return nil, false
	}
	room, err := s.CurrentRoom()
	if err != nil {
		return nil, false
	}
	return firstMatch(room.Items, fragment)
}

func firstMatch(c *inventory.Container, fragment string) (*inventory.Item, bool) {
	for _, it := range c.Items() {
		if it.Matches(fragment) {
			return it, true
		}
	}
	return nil, false
}
