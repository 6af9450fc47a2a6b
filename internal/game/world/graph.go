package world

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNoExit is returned by Navigate when the room has no exit in the direction.
	ErrNoExit = errors.New("no exit in that direction")
	// ErrLocked is returned by Navigate when the direction is gated by a key.
	ErrLocked = errors.New("exit is locked")
)

// Navigate resolves plain movement from a room in a direction. Locked
// directions are never followed; they open only through their key.
//
// Precondition: from must name a room of the world.
// Postcondition: Returns the destination room, or an error wrapping ErrNoExit,
// ErrLocked, or ErrUnknownRoom.
func (w *World) Navigate(from string, dir Direction) (*Room, error) {
	room, err := w.Room(from)
	if err != nil {
		return nil, err
	}

	exit, ok := room.ExitForDirection(dir)
	if !ok {
		return nil, fmt.Errorf("%w: %q from %q", ErrNoExit, dir, from)
	}
	if room.IsLocked(dir) {
		return nil, fmt.Errorf("%w: %q from %q needs %q", ErrLocked, dir, from, room.RequiredKey[dir])
	}

	target, err := w.Room(exit.Target)
	if err != nil {
		return nil, fmt.Errorf("exit %q from %q: %w", dir, from, err)
	}
	return target, nil
}

// Unreachable returns the names of rooms that cannot be reached from the
// start room, treating every keyed exit as open. Names are sorted.
//
// Postcondition: Returns a non-nil slice; empty when every room is reachable.
func (w *World) Unreachable() []string {
	seen := make(map[string]bool, len(w.Rooms))
	queue := []string{w.StartRoom}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		room, ok := w.Rooms[name]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		for _, e := range room.Exits {
			if !room.IsLocked(e.Direction) {
				queue = append(queue, e.Target)
			}
		}
		for _, target := range room.ExitsWithKey {
			queue = append(queue, target)
		}
	}

	out := []string{}
	for name := range w.Rooms {
		if !seen[name] {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
