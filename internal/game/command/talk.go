package command

import (
	"fmt"

	"go.uber.org/zap"
)

// handleTalk speaks with the room's NPC. The first conversation hands over the
// NPC's item and reward, provided nobody already owns that item; every later
// conversation gets the farewell line.
func handleTalk(t *turn) error {
	npc, ok := t.sess.World.NPCs[t.room.NPC]
	if t.room.NPC == "" || !ok {
		t.fail("There is no one here to talk to.")
		return nil
	}
	if t.sess.HasGranted(npc.Name) || npc.Grants == "" {
		t.say(Plain, "%s", npc.Farewell)
		return nil
	}

	it, ok := t.sess.World.Catalog.Item(npc.Grants)
	if !ok {
		return fmt.Errorf("npc %q grants unknown item %q", npc.Name, npc.Grants)
	}
	if _, onFloor := t.sess.World.Owner(it); onFloor || t.sess.Player.Inventory.Contains(it) {
		t.say(Plain, "%s", npc.Farewell)
		return nil
	}

	if err := t.sess.Player.Inventory.Add(it); err != nil {
		return fmt.Errorf("granting %q: %w", it.Name, err)
	}
	t.sess.MarkGranted(npc.Name)
	t.say(Plain, "%s", npc.Greeting)
	t.say(Success, "You received: %s", it.Name)
	t.score(npc.Reward)
	t.log.Info("npc granted item", zap.String("npc", npc.Name), zap.String("item", it.Name))
	return nil
}
