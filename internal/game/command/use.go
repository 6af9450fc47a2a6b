package command

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/omega/internal/game/inventory"
	"github.com/cory-johannsen/omega/internal/game/session"
	"github.com/cory-johannsen/omega/internal/game/world"
)

// handleUse dispatches on the carried item's usage and the room's special action.
// Holding the antidote is what the exit check looks at, so using it consumes nothing.
func handleUse(t *turn) {
	if !t.input.HasNoun() {
		t.fail("Use what? Specify an item name.")
		return
	}
	it, ok := t.sess.FindItem(t.input.Noun, session.ScopeInventory)
	if !ok {
		t.fail("You don't have item '%s'.", t.input.Noun)
		return
	}

	switch {
	case it.Usage == inventory.UsageAntidote:
		t.say(Success, "You used the %s. This will save you from the gas upon exit.", it.Name)
	case it.Usage == inventory.UsageDrink:
		t.say(Success, "You take a sip from the %s. You feel refreshed.", it.Name)
		t.score(t.sess.Scoring.Drink)
	case it.Usage == inventory.UsageConnect && t.room.SpecialAction == world.ActionServerTerminal:
		t.say(Plain, "You connect the %s to the server. It buzzes, but nothing happens. You still need the flash drive.", it.Name)
		t.score(t.sess.Scoring.Connect)
	default:
		t.fail("Cannot use '%s' here in this way.", it.Name)
	}
}

// handleUpload reactivates the server from a carried data item. The checks run
// in a fixed order so each failure has its own message.
//
// Postcondition: On success ServerActivated is true, the item is consumed, and the
// upload reward is added; otherwise nothing changes.
func handleUpload(t *turn) {
	if t.room.SpecialAction != world.ActionServerTerminal {
		t.fail("You can only upload data at the Main Server Terminal in the Server Room.")
		return
	}
	if !t.input.HasNoun() {
		t.fail("Upload what? Usage: upload [flash drive name]")
		return
	}
	it, ok := t.sess.FindItem(t.input.Noun, session.ScopeInventory)
	if !ok {
		t.fail("Item '%s' is not in your inventory.", t.input.Noun)
		return
	}
	if it.Usage != inventory.UsageUpload {
		t.fail("%s is not a valid data source for the server.", it.Name)
		return
	}

	t.sess.ServerActivated = true
	t.sess.Player.Inventory.Remove(it)
	t.say(Success, "%s connected. Server reactivated! Emergency Exit unlocked.", it.Name)
	t.say(Plain, "Note: The server has opened a new way.")
	t.score(t.sess.Scoring.Upload)
	t.log.Info("server activated", zap.String("item", it.Name))
}

// handleWear puts on protective gear. The worn item leaves the inventory for
// good and is no longer takeable or droppable.
//
// Postcondition: On success HasWornSuit is true and the wear reward is added;
// a repeat attempt only narrates.
func handleWear(t *turn) {
	if !t.input.HasNoun() {
		t.fail("Wear what? Usage: wear [suit name]")
		return
	}
	it, ok := t.sess.FindItem(t.input.Noun, session.ScopeInventory)
	if !ok {
		t.fail("Item '%s' is not in your inventory.", t.input.Noun)
		return
	}
	if it.Usage != inventory.UsageWear {
		t.fail("You cannot wear '%s'.", it.Name)
		return
	}
	if t.sess.Player.HasWornSuit {
		t.say(Plain, "You are already wearing a protective suit.")
		return
	}

	t.sess.Player.HasWornSuit = true
	t.sess.Player.Inventory.Remove(it)
	t.say(Success, "You put on the %s. You can now safely enter hazardous zones.", it.Name)
	t.score(t.sess.Scoring.Wear)
	t.log.Info("suit worn", zap.String("item", it.Name))
}

// handleRead prints a document. The world's lore item pays out once.
func handleRead(t *turn) {
	if !t.input.HasNoun() {
		t.fail("Read what? Specify an item name.")
		return
	}
	it, ok := t.sess.FindItem(t.input.Noun, session.ScopeInventory)
	if !ok || it.Usage != inventory.UsageRead {
		t.fail("You cannot read '%s'.", t.input.Noun)
		return
	}

	w := t.sess.World
	if it.Name != w.LoreItem {
		t.say(Plain, "You read the %s. It contains only technical jargon.", it.Name)
		return
	}
	t.say(Plain, "Reading the %s: '%s'", it.Name, w.LoreText)
	if !t.sess.LoreRead() {
		t.sess.MarkLoreRead()
		t.score(t.sess.Scoring.LoreRead)
	}
}
