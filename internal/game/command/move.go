package command

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/omega/internal/game/session"
	"github.com/cory-johannsen/omega/internal/game/world"
)

// handleGo processes "go <direction>". A locked direction never moves the
// player, even when the key is carried; only swipe opens it.
//
// Postcondition: On success the player stands in the exit's target and gains the move
// reward. On a user error nothing changes. A non-nil error means the target room is missing.
func handleGo(t *turn) error {
	if !t.input.HasNoun() {
		t.fail("Go where? Specify a direction (e.g., 'go north').")
		return nil
	}
	dir := world.Direction(t.input.Noun)
	dest, err := t.sess.World.Navigate(t.room.Name, dir)
	switch {
	case errors.Is(err, world.ErrNoExit):
		t.fail("Cannot go in that direction, or '%s' is not a valid exit.", t.input.Noun)
		return nil
	case errors.Is(err, world.ErrLocked):
		keyName := t.room.RequiredKey[dir]
		if key, held := t.sess.FindItem(keyName, session.ScopeInventory); held {
			t.say(Plain, "Hint: The door is locked by a card reader. Try to 'swipe %s' to open it.", key.Name)
		} else {
			t.fail("The passage %s is locked. You need the %s.", dir, keyName)
		}
		return nil
	case err != nil:
		return fmt.Errorf("going %q from %q: %w", dir, t.room.Name, err)
	}
	t.moveTo(dest, t.sess.Scoring.Move)
	return nil
}

// handleSwipe processes "swipe <key card>": the card must be carried, be a key,
// and match a locked direction of the current room.
//
// Postcondition: On success the player stands in the keyed destination and gains the
// swipe reward. On a user error nothing changes.
func handleSwipe(t *turn) error {
	if !t.input.HasNoun() {
		t.fail("Swipe what? Usage: swipe [key card name]")
		return nil
	}
	card, ok := t.sess.FindItem(t.input.Noun, session.ScopeInventory)
	if !ok {
		t.fail("Item '%s' is not in your inventory.", t.input.Noun)
		return nil
	}
	if !card.Usage.IsKey() {
		t.fail("%s is not a Key Card and cannot be swiped.", card.Name)
		return nil
	}
	dir, ok := t.room.LockedDirectionFor(card.Name)
	if !ok {
		t.fail("The %s does not open any locked doors here.", card.Name)
		return nil
	}

	target := t.room.ExitsWithKey[dir]
	dest, err := t.sess.World.Room(target)
	if err != nil {
		return fmt.Errorf("following keyed exit %q from %q: %w", dir, t.room.Name, err)
	}
	t.say(Success, "You successfully swiped the %s and moved to %s.", card.Name, dest.Name)
	t.log.Info("locked exit opened",
		zap.String("card", card.Name),
		zap.String("from", t.room.Name),
		zap.String("to", dest.Name),
	)
	t.moveTo(dest, t.sess.Scoring.Swipe)
	return nil
}
