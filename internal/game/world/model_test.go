package world

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/omega/internal/game/inventory"
)

func TestDirection_IsStandard(t *testing.T) {
	for _, d := range StandardDirections {
		assert.True(t, d.IsStandard(), "expected %q to be standard", d)
	}
	assert.False(t, Direction("stairs").IsStandard())
	assert.False(t, Direction("North").IsStandard())
}

func TestParseSpecialAction(t *testing.T) {
	for a := ActionNone; a <= ActionExitDoor; a++ {
		got, err := ParseSpecialAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	got, err := ParseSpecialAction("")
	require.NoError(t, err)
	assert.Equal(t, ActionNone, got)

	_, err = ParseSpecialAction("teleporter")
	assert.Error(t, err)
}

func TestRoom_ExitForDirection(t *testing.T) {
	r := &Room{Exits: []Exit{{Direction: North, Target: "Hall"}}}
	e, ok := r.ExitForDirection(North)
	assert.True(t, ok)
	assert.Equal(t, "Hall", e.Target)

	_, ok = r.ExitForDirection(South)
	assert.False(t, ok)
}

func TestRoom_LockedDirectionFor(t *testing.T) {
	r := &Room{
		Exits: []Exit{
			{Direction: West, Target: "Back"},
			{Direction: East, Target: "Ahead"},
			{Direction: North, Target: "Up There"},
		},
		RequiredKey:  map[Direction]string{East: "Red Key Card", North: "Red Key Card"},
		ExitsWithKey: map[Direction]string{East: "Ahead", North: "Up There"},
	}

	dir, ok := r.LockedDirectionFor("red key card")
	require.True(t, ok)
	assert.Equal(t, East, dir, "first locked direction in exit order wins")

	_, ok = r.LockedDirectionFor("Blue Key Card")
	assert.False(t, ok)

	assert.True(t, r.IsLocked(East))
	assert.False(t, r.IsLocked(West))
}

func TestRoom_LockedDirectionFor_NeedsKeyedTarget(t *testing.T) {
	r := &Room{
		Exits:       []Exit{{Direction: East, Target: "Ahead"}},
		RequiredKey: map[Direction]string{East: "Red Key Card"},
	}
	_, ok := r.LockedDirectionFor("Red Key Card")
	assert.False(t, ok)
}

func TestWorld_RoomUnknown(t *testing.T) {
	w := mustLoadSmall(t)
	_, err := w.Room("Attic")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownRoom))
}

func TestWorld_Owner(t *testing.T) {
	w := mustLoadSmall(t)
	memo, _ := w.Catalog.Item("Memo")
	owner, ok := w.Owner(memo)
	require.True(t, ok)
	assert.Equal(t, "Hall", owner.Name)

	pass, _ := w.Catalog.Item("Pass")
	_, ok = w.Owner(pass)
	assert.False(t, ok, "granted items start in no room")
}

func TestWorld_WearableName(t *testing.T) {
	w := mustLoadSmall(t)
	assert.Equal(t, "Protective suit", w.WearableName())

	require.NoError(t, w.Catalog.Register(&inventory.Item{Name: "Hazmat Suit", Usage: inventory.UsageWear}))
	assert.Equal(t, "Hazmat Suit", w.WearableName())
}

func TestWorld_ValidateRejectsForeignItemPointer(t *testing.T) {
	w := mustLoadSmall(t)
	require.NoError(t, w.Rooms["Exit"].Items.Add(&inventory.Item{Name: "Memo"}))
	err := w.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not the catalog entry")
}

func TestWorld_ValidateReportsEveryViolationSorted(t *testing.T) {
	w := mustLoadSmall(t)
	w.StartRoom = "Nowhere"
	w.Rooms["Hall"].NPC = "Ghost"
	err := w.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `start_room "Nowhere"`)
	assert.Contains(t, msg, `npc "Ghost"`)
	assert.Less(t, strings.Index(msg, `room "Hall"`), strings.Index(msg, "start_room"))
}

func TestPropertyDefaultWorldExitsResolve(t *testing.T) {
	w, err := LoadDefault()
	require.NoError(t, err)
	names := make([]string, 0, len(w.Rooms))
	for name := range w.Rooms {
		names = append(names, name)
	}

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.SampledFrom(names).Draw(t, "room")
		room := w.Rooms[name]
		for _, e := range room.Exits {
			if _, err := w.Room(e.Target); err != nil {
				t.Fatalf("room %q exit %q: %v", name, e.Direction, err)
			}
		}
		for dir, target := range room.ExitsWithKey {
			if _, ok := room.ExitForDirection(dir); !ok {
				t.Fatalf("room %q keyed direction %q has no exit entry", name, dir)
			}
			if _, err := w.Room(target); err != nil {
				t.Fatalf("room %q keyed exit %q: %v", name, dir, err)
			}
		}
	})
}
