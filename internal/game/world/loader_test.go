package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/omega/internal/game/inventory"
)

func TestLoadFromBytes_Valid(t *testing.T) {
	w := mustLoadSmall(t)

	assert.Len(t, w.Rooms, 4)
	assert.Equal(t, "Lobby", w.StartRoom)
	assert.Equal(t, "Exit", w.ExitRoom)
	assert.Equal(t, "Vial", w.AntidoteItem)
	assert.Equal(t, "Memo", w.LoreItem)
	assert.Equal(t, "It happened on a Tuesday.", w.LoreText)
	assert.Equal(t, 4, w.Catalog.Len())

	lobby := w.Rooms["Lobby"]
	require.NotNil(t, lobby)
	assert.Equal(t, []Exit{{Direction: North, Target: "Hall"}, {Direction: East, Target: "Lab"}}, lobby.Exits)
	assert.Equal(t, "Blue Card", lobby.RequiredKey[East])
	assert.Equal(t, "Lab", lobby.ExitsWithKey[East])

	card, ok := w.Catalog.Item("Blue Card")
	require.True(t, ok)
	assert.Equal(t, inventory.UsageKeyBlue, card.Usage)
	assert.Same(t, card, lobby.Items.Items()[0], "rooms hold catalog pointers")

	assert.Equal(t, ActionExitDoor, w.Rooms["Exit"].SpecialAction)
	assert.Equal(t, "Clerk", w.Rooms["Hall"].NPC)
	assert.Equal(t, "Pass", w.NPCs["Clerk"].Grants)
}

func TestLoadFromBytes_FreshStatePerLoad(t *testing.T) {
	a := mustLoadSmall(t)
	b := mustLoadSmall(t)
	assert.NotSame(t, a.Rooms["Lobby"], b.Rooms["Lobby"])
	itemA, _ := a.Catalog.Item("Vial")
	itemB, _ := b.Catalog.Item("Vial")
	assert.NotSame(t, itemA, itemB)
}

func TestLoadFromBytes_InvalidYAML(t *testing.T) {
	_, err := LoadFromBytes([]byte("world: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing world YAML")
}

func TestLoadFromBytes_FieldErrors(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     string
	}{
		{"bad direction", "{direction: north, target: Hall}", "{direction: sideways, target: Hall}", "invalid direction"},
		{"bad usage", "usage: antidote", "usage: elixir", "invalid usage"},
		{"bad special action", "special_action: exit_door", "special_action: trapdoor", "invalid special_action"},
		{"missing description", "description: A long hall.", "description: \"\"", "description is required"},
		{"negative points", "points: 40", "points: -1", "must be at least 0"},
		{"missing start room", "start_room: Lobby", "start_room: \"\"", "start_room is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadSmall(t, tt.from, tt.to)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validating world fields")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFromBytes_WorldErrors(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     string
	}{
		{"unknown start room", "start_room: Lobby", "start_room: Attic", `start_room "Attic" not found`},
		{"exit room without door", "special_action: exit_door", "", "must have special_action exit_door"},
		{"dangling exit", "{direction: south, target: Lobby}", "{direction: south, target: Basement}", `targets unknown room "Basement"`},
		{"lock without exit entry", "{direction: east, key: Blue Card, target: Lab}", "{direction: up, key: Blue Card, target: Lab}", "has no exit entry"},
		{"lock with non-key", "key: Blue Card", "key: Memo", "which is not a key"},
		{"undefined npc", "npc: Clerk", "npc: Janitor", `npc "Janitor" is not defined`},
		{"npc grants unknown item", "grants: Pass", "grants: Badge", `grants unknown item "Badge"`},
		{"unknown antidote", "antidote_item: Vial", "antidote_item: Potion", `antidote item "Potion"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadSmall(t, tt.from, tt.to)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFromBytes_UnknownRoomItem(t *testing.T) {
	_, err := loadSmall(t, "items: [Memo]", "items: [Stapler]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown item "Stapler"`)
}

func TestLoadFromBytes_ItemPlacedTwice(t *testing.T) {
	_, err := loadSmall(t, "items: [Memo]", "items: [Memo, Vial]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `item "Vial" placed in both`)
}

func TestLoadFromBytes_DuplicateRoom(t *testing.T) {
	_, err := loadSmall(t, "name: Hall", "name: Lab")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate room "Lab"`)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallWorldYAML), 0644))

	w, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, w.Rooms, 4)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading world file")
}

func TestLoadDefault(t *testing.T) {
	w, err := LoadDefault()
	require.NoError(t, err)

	assert.Len(t, w.Rooms, 20)
	assert.Equal(t, "Reception Area", w.StartRoom)
	assert.Equal(t, "Emergency Exit", w.ExitRoom)
	assert.Equal(t, ActionServerTerminal, w.Rooms["Server Room"].SpecialAction)
	assert.Equal(t, ActionGasHazard, w.Rooms["B-1 Corridor"].SpecialAction)
	assert.Equal(t, "Blue Key Card", w.Rooms["Ventilation Access"].RequiredKey[East])
	assert.Equal(t, "B-1 Corridor", w.Rooms["Elevator (C-B)"].ExitsWithKey[East])
	assert.Empty(t, w.Unreachable())

	antidote, ok := w.Catalog.Item("Antidote")
	require.True(t, ok)
	assert.Equal(t, 40, antidote.TakeReward())
	owner, ok := w.Owner(antidote)
	require.True(t, ok)
	assert.Equal(t, "Antidote Sector", owner.Name)
}
