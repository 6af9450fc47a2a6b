// Package world provides the game world model: rooms, exits, locks, NPCs, and
// the name-keyed world mapping built once from content.
package world

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cory-johannsen/omega/internal/game/inventory"
)

// ErrUnknownRoom is wrapped by every lookup of a room name absent from the world.
var ErrUnknownRoom = errors.New("unknown room")

// Direction represents a compass direction or named exit.
type Direction string

// Standard compass directions and vertical movements.
const (
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	Northeast Direction = "northeast"
	Northwest Direction = "northwest"
	Southeast Direction = "southeast"
	Southwest Direction = "southwest"
	Up        Direction = "up"
	Down      Direction = "down"
)

// StandardDirections contains all standard compass and vertical directions.
var StandardDirections = []Direction{
	North, South, East, West,
	Northeast, Northwest, Southeast, Southwest,
	Up, Down,
}

// IsStandard reports whether d is one of the ten standard directions.
func (d Direction) IsStandard() bool {
	for _, sd := range StandardDirections {
		if d == sd {
			return true
		}
	}
	return false
}

// SpecialAction is the closed set of room-level behaviours.
type SpecialAction int

// Room special actions.
const (
	ActionNone SpecialAction = iota
	ActionServerTerminal
	ActionGasHazard
	ActionExitDoor
)

var actionNames = map[SpecialAction]string{
	ActionNone:           "none",
	ActionServerTerminal: "server_terminal",
	ActionGasHazard:      "gas_hazard",
	ActionExitDoor:       "exit_door",
}

// String returns the content tag for a.
func (a SpecialAction) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseSpecialAction converts a content tag into a SpecialAction. The empty
// string maps to ActionNone.
func ParseSpecialAction(tag string) (SpecialAction, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return ActionNone, nil
	}
	for a, name := range actionNames {
		if name == tag {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown special action %q", tag)
}

// Exit is a directed passage out of a room.
type Exit struct {
	// Direction is the token the player types after "go".
	Direction Direction
	// Target is the name of the destination room. For a locked direction this
	// is a placeholder; the real destination lives in Room.ExitsWithKey.
	Target string
}

// NPC is a character that can be talked to once for a reward.
type NPC struct {
	// Name is the token stored on Room.NPC.
	Name string
	// Grants is the catalog name of the item handed over on first talk.
	Grants string
	// Reward is the score awarded with the grant.
	Reward int
	// Greeting is the line spoken on the first talk.
	Greeting string
	// Farewell is the line spoken on every later talk.
	Farewell string
}

// Room is a node of the location graph. Topology is fixed after loading;
// only Items changes during play.
type Room struct {
	Name        string
	Description string
	// Exits lists passages in display order.
	Exits []Exit
	// Items is the room floor, in display order.
	Items *inventory.Container
	// NPC names the character present, or is empty.
	NPC string
	// RequiredKey maps a locked direction to the name of the key item that opens it.
	RequiredKey map[Direction]string
	// ExitsWithKey maps a locked direction to the destination reached by swiping its key.
	ExitsWithKey map[Direction]string
	// SpecialAction selects the room behaviour.
	SpecialAction SpecialAction
}

// ExitForDirection returns the exit in the given direction, if one exists.
//
// Postcondition: Returns (exit, true) if found, or (Exit{}, false) otherwise.
func (r *Room) ExitForDirection(dir Direction) (Exit, bool) {
	for _, e := range r.Exits {
		if e.Direction == dir {
			return e, true
		}
	}
	return Exit{}, false
}

// IsLocked reports whether dir is gated by a key.
func (r *Room) IsLocked(dir Direction) bool {
	_, ok := r.RequiredKey[dir]
	return ok
}

// LockedDirectionFor returns the first locked direction, in exit order, whose
// required key is keyName (case-insensitive).
//
// Postcondition: Returns (dir, true) if such a direction has a keyed destination, or ("", false).
func (r *Room) LockedDirectionFor(keyName string) (Direction, bool) {
	for _, e := range r.Exits {
		required, ok := r.RequiredKey[e.Direction]
		if !ok || !strings.EqualFold(required, keyName) {
			continue
		}
		if _, ok := r.ExitsWithKey[e.Direction]; ok {
			return e.Direction, true
		}
	}
	return "", false
}

// World is the name-keyed mapping of rooms together with the item catalog
// and the handful of names the rules refer to.
type World struct {
	// Rooms maps room name to room.
	Rooms map[string]*Room
	// Catalog holds every item of the world.
	Catalog *inventory.Catalog
	// NPCs maps NPC name to its definition.
	NPCs map[string]NPC
	// StartRoom is where the player begins.
	StartRoom string
	// ExitRoom is the room the win/lose evaluator watches.
	ExitRoom string
	// AntidoteItem names the item that must be carried out.
	AntidoteItem string
	// LoreItem names the item whose first reading awards points.
	LoreItem string
	// LoreText is printed when LoreItem is read.
	LoreText string
}

// Room returns the room with the given name.
//
// Postcondition: Returns (room, nil) if found, or an error wrapping ErrUnknownRoom.
func (w *World) Room(name string) (*Room, error) {
	r, ok := w.Rooms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q does not exist in the world", ErrUnknownRoom, name)
	}
	return r, nil
}

// Owner returns the room currently holding it, if any.
func (w *World) Owner(it *inventory.Item) (*Room, bool) {
	for _, r := range w.Rooms {
		if r.Items.Contains(it) {
			return r, true
		}
	}
	return nil, false
}

// WearableName returns the name of the first wearable item in the catalog.
func (w *World) WearableName() string {
	for _, it := range w.Catalog.All() {
		if it.Usage == inventory.UsageWear {
			return it.Name
		}
	}
	return "Protective suit"
}

// Validate checks world invariants.
//
// Postcondition: Returns nil if valid, or an error describing every violation.
func (w *World) Validate() error {
	var errs []string
	addf := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if _, ok := w.Rooms[w.StartRoom]; !ok {
		addf("start_room %q not found in rooms", w.StartRoom)
	}
	if exit, ok := w.Rooms[w.ExitRoom]; !ok {
		addf("exit_room %q not found in rooms", w.ExitRoom)
	} else if exit.SpecialAction != ActionExitDoor {
		addf("exit_room %q must have special_action %s", w.ExitRoom, ActionExitDoor)
	}
	if _, ok := w.Catalog.Item(w.AntidoteItem); !ok {
		addf("antidote item %q not found in items", w.AntidoteItem)
	}
	if w.LoreItem != "" {
		if _, ok := w.Catalog.Item(w.LoreItem); !ok {
			addf("lore item %q not found in items", w.LoreItem)
		}
	}

	placed := make(map[*inventory.Item]string)
	for name, room := range w.Rooms {
		if room.Name != name {
			addf("room key %q does not match room name %q", name, room.Name)
		}
		for _, e := range room.Exits {
			if _, ok := w.Rooms[e.Target]; !ok {
				addf("room %q: exit %q targets unknown room %q", name, e.Direction, e.Target)
			}
		}
		for dir, key := range room.RequiredKey {
			if _, ok := room.ExitForDirection(dir); !ok {
				addf("room %q: locked direction %q has no exit entry", name, dir)
			}
			it, ok := w.Catalog.Item(key)
			if !ok {
				addf("room %q: direction %q requires unknown item %q", name, dir, key)
			} else if !it.Usage.IsKey() {
				addf("room %q: direction %q requires %q which is not a key", name, dir, key)
			}
		}
		for dir, target := range room.ExitsWithKey {
			if _, ok := room.RequiredKey[dir]; !ok {
				addf("room %q: keyed exit %q has no required key", name, dir)
			}
			if _, ok := w.Rooms[target]; !ok {
				addf("room %q: keyed exit %q targets unknown room %q", name, dir, target)
			}
		}
		if room.NPC != "" {
			if _, ok := w.NPCs[room.NPC]; !ok {
				addf("room %q: npc %q is not defined", name, room.NPC)
			}
		}
		for _, it := range room.Items.Items() {
			if other, dup := placed[it]; dup {
				addf("item %q placed in both %q and %q", it.Name, other, name)
			}
			placed[it] = name
			if cat, ok := w.Catalog.Item(it.Name); !ok || cat != it {
				addf("room %q: item %q is not the catalog entry", name, it.Name)
			}
		}
	}
	for name, npc := range w.NPCs {
		if npc.Grants == "" {
			continue
		}
		if _, ok := w.Catalog.Item(npc.Grants); !ok {
			addf("npc %q grants unknown item %q", name, npc.Grants)
		}
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return fmt.Errorf("world validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
