package command

import (
	"fmt"

	"github.com/cory-johannsen/omega/internal/game/session"
)

// handleTake moves an item from the room floor into the inventory. The item
// is resolved inventory-first, so a carried item with a matching name shadows
// the room item and the take fails.
//
// Postcondition: On success the item is the last inventory entry and the player
// gains its take reward; otherwise nothing changes.
func handleTake(t *turn) error {
	if !t.input.HasNoun() {
		t.fail("Take what? Specify an item name.")
		return nil
	}
	it, ok := t.sess.FindItem(t.input.Noun, session.ScopeInventoryAndRoom)
	if !ok || !t.room.Items.Contains(it) {
		t.fail("Item '%s' is not here or cannot be taken.", t.input.Noun)
		return nil
	}

	t.room.Items.Remove(it)
	if err := t.sess.Player.Inventory.Add(it); err != nil {
		_ = t.room.Items.Add(it)
		return fmt.Errorf("taking %q: %w", it.Name, err)
	}
	t.say(Success, "You took: %s", it.Name)
	t.score(it.TakeReward())
	return nil
}

// handleDrop moves a carried item onto the room floor.
//
// Postcondition: On success the item is the last room entry; otherwise nothing changes.
func handleDrop(t *turn) error {
	if !t.input.HasNoun() {
		t.fail("Drop what? Specify an item name.")
		return nil
	}
	it, ok := t.sess.FindItem(t.input.Noun, session.ScopeInventory)
	if !ok {
		t.fail("Item '%s' is not in your inventory.", t.input.Noun)
		return nil
	}

	t.sess.Player.Inventory.Remove(it)
	if err := t.room.Items.Add(it); err != nil {
		_ = t.sess.Player.Inventory.Add(it)
		return fmt.Errorf("dropping %q: %w", it.Name, err)
	}
	t.say(Success, "You dropped: %s", it.Name)
	return nil
}

func handleExamine(t *turn) {
	if !t.input.HasNoun() {
		t.fail("Examine what? Specify an item name.")
		return
	}
	it, ok := t.sess.FindItem(t.input.Noun, session.ScopeInventory)
	if !ok {
		t.fail("Item '%s' is not available to examine.", t.input.Noun)
		return
	}
	t.say(Plain, "Examining %s: %s", it.Name, it.Description)
}
