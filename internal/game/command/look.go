package command

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cory-johannsen/omega/internal/game/session"
	"github.com/cory-johannsen/omega/internal/game/world"
)

// Describe renders the player's current room as the opening narration of a
// session. It applies the same gas penalty as look but does not count a turn.
//
// Postcondition: Returns the room narration, or an error wrapping world.ErrUnknownRoom.
func (in *Interpreter) Describe(sess *session.Session) (Result, error) {
	room, err := sess.CurrentRoom()
	if err != nil {
		return Result{}, fmt.Errorf("resolving current room: %w", err)
	}
	t := &turn{sess: sess, room: room, log: in.logger.With(zap.String("session", sess.ID))}
	describeRoom(t, room)
	return Result{Signal: Continue, Lines: t.lines}, nil
}

// describeRoom renders name, description, items, NPC and exits, then applies
// the gas penalty if the room is hazardous and the player is unprotected.
// The penalty repeats on every description.
func describeRoom(t *turn, room *world.Room) {
	t.say(Heading, "--- You are in: %s ---", room.Name)
	t.say(Plain, "%s", room.Description)

	if room.Items.Len() > 0 {
		t.say(Plain, "Items here: %s", strings.Join(room.Items.Names(), ", "))
	}
	if room.NPC != "" {
		t.say(Plain, "Character: %s is here.", room.NPC)
	}

	if len(room.Exits) == 0 {
		t.say(Plain, "There is no way out of here.")
	} else {
		exits := make([]string, 0, len(room.Exits))
		for _, e := range room.Exits {
			label := string(e.Direction)
			if room.IsLocked(e.Direction) {
				label += " (locked)"
			}
			exits = append(exits, label)
		}
		t.say(Plain, "You can go: %s", strings.Join(exits, ", "))
	}

	if room.SpecialAction == world.ActionGasHazard && !t.sess.Player.HasWornSuit {
		t.say(Warning, "DANGER: Toxic gas in the air. You lose points without protection.")
		t.score(-t.sess.Scoring.GasPenalty)
	}
}

func showInventory(t *turn) {
	p := t.sess.Player
	if p.Inventory.Len() == 0 && !p.HasWornSuit {
		t.say(Plain, "Your inventory is empty.")
	} else {
		t.say(Heading, "--- Your inventory: ---")
		for _, it := range p.Inventory.Items() {
			t.say(Plain, "- %s (%s)", it.Name, it.Description)
		}
		if p.HasWornSuit {
			t.say(Plain, "- %s (worn)", t.sess.World.WearableName())
		}
	}
	t.say(Plain, "Current score: %d", p.Score)
}

func showHelp(t *turn, reg *Registry) {
	title := cases.Title(language.English)
	byCategory := reg.CommandsByCategory()

	t.say(Heading, "--- Available commands ---")
	for _, cat := range categoryOrder {
		cmds := byCategory[cat]
		if len(cmds) == 0 {
			continue
		}
		t.say(Heading, "%s:", title.String(cat))
		for _, cmd := range cmds {
			usage := cmd.Usage
			if len(cmd.Aliases) > 0 {
				usage += " (also: " + strings.Join(cmd.Aliases, ", ") + ")"
			}
			t.say(Plain, "  %-28s %s", usage, cmd.Help)
		}
	}
	t.say(Plain, "Command should contain one verb.")
	t.say(Plain, "The item after the verb can consist of one, two or three words, e.g. 'blue key card'.")
}
