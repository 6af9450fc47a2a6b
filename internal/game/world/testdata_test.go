package world

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const smallWorldYAML = `
world:
  start_room: Lobby
  exit_room: Exit
  antidote_item: Vial
  lore:
    item: Memo
    text: |
      It happened on a Tuesday.
  items:
    - {name: Blue Card, description: Opens the lab., usage: key_blue, points: 5}
    - {name: Vial, description: The cure., usage: antidote, points: 40}
    - {name: Memo, description: A folded note., usage: read}
    - {name: Pass, description: A visitor pass., usage: key_red}
  npcs:
    - name: Clerk
      grants: Pass
      reward: 5
      greeting: "Clerk: 'Here, take this.'"
      farewell: "Clerk: 'Nothing more for you.'"
  rooms:
    - name: Lobby
      description: A quiet lobby.
      exits:
        - {direction: north, target: Hall}
        - {direction: east, target: Lab}
      locks:
        - {direction: east, key: Blue Card, target: Lab}
      items: [Blue Card]
    - name: Hall
      description: A long hall.
      exits:
        - {direction: south, target: Lobby}
      items: [Memo]
      npc: Clerk
    - name: Lab
      description: A bright lab.
      exits:
        - {direction: west, target: Lobby}
        - {direction: north, target: Exit}
      items: [Vial]
    - name: Exit
      description: The way out.
      exits:
        - {direction: south, target: Lab}
      special_action: exit_door
`

// loadSmall parses smallWorldYAML after applying the given replacements.
func loadSmall(t *testing.T, replacements ...string) (*World, error) {
	t.Helper()
	return LoadFromBytes([]byte(strings.NewReplacer(replacements...).Replace(smallWorldYAML)))
}

func mustLoadSmall(t *testing.T) *World {
	t.Helper()
	w, err := loadSmall(t)
	require.NoError(t, err)
	return w
}
