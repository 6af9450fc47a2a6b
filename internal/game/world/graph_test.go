package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/omega/internal/game/inventory"
)

func TestNavigate_Plain(t *testing.T) {
	w := mustLoadSmall(t)
	dest, err := w.Navigate("Lobby", North)
	require.NoError(t, err)
	assert.Equal(t, "Hall", dest.Name)
}

func TestNavigate_NoExit(t *testing.T) {
	w := mustLoadSmall(t)
	_, err := w.Navigate("Lobby", Down)
	assert.True(t, errors.Is(err, ErrNoExit))
}

func TestNavigate_Locked(t *testing.T) {
	w := mustLoadSmall(t)
	_, err := w.Navigate("Lobby", East)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLocked))
	assert.Contains(t, err.Error(), "Blue Card")
}

func TestNavigate_UnknownRooms(t *testing.T) {
	w := &World{
		Rooms: map[string]*Room{
			"A": {Name: "A", Exits: []Exit{{Direction: North, Target: "Missing"}}, Items: inventory.NewContainer()},
		},
		Catalog: inventory.NewCatalog(),
	}
	_, err := w.Navigate("Nowhere", North)
	assert.True(t, errors.Is(err, ErrUnknownRoom))

	_, err = w.Navigate("A", North)
	assert.True(t, errors.Is(err, ErrUnknownRoom))
}

func TestUnreachable(t *testing.T) {
	w := mustLoadSmall(t)
	assert.Empty(t, w.Unreachable())

	w.Rooms["Island"] = &Room{Name: "Island", Items: inventory.NewContainer()}
	w.Rooms["Atoll"] = &Room{Name: "Atoll", Items: inventory.NewContainer()}
	assert.Equal(t, []string{"Atoll", "Island"}, w.Unreachable())
}

func TestUnreachable_LockedExitsOpenOnlyThroughKeys(t *testing.T) {
	w := mustLoadSmall(t)
	delete(w.Rooms["Lobby"].ExitsWithKey, East)
	assert.Equal(t, []string{"Exit", "Lab"}, w.Unreachable())
}

func TestPropertyNavigateMatchesExitTable(t *testing.T) {
	w, err := LoadDefault()
	require.NoError(t, err)
	names := make([]string, 0, len(w.Rooms))
	for name := range w.Rooms {
		names = append(names, name)
	}

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.SampledFrom(names).Draw(t, "room")
		dir := rapid.SampledFrom(StandardDirections).Draw(t, "dir")
		room := w.Rooms[name]
		dest, err := w.Navigate(name, dir)

		exit, hasExit := room.ExitForDirection(dir)
		switch {
		case !hasExit:
			if !errors.Is(err, ErrNoExit) {
				t.Fatalf("%s %s: want ErrNoExit, got %v", name, dir, err)
			}
		case room.IsLocked(dir):
			if !errors.Is(err, ErrLocked) {
				t.Fatalf("%s %s: want ErrLocked, got %v", name, dir, err)
			}
		default:
			if err != nil || dest.Name != exit.Target {
				t.Fatalf("%s %s: want %q, got %v (%v)", name, dir, exit.Target, dest, err)
			}
		}
	})
}
