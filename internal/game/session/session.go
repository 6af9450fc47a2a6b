package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/omega/internal/game/world"
)

// Session is the explicit context of one play-through. Every interpreter and
// evaluator call receives it; nothing about a game lives in package state.
type Session struct {
	// ID correlates log lines of one play-through.
	ID string
	// World is mutated only through room item containers.
	World *world.World
	// Player is the adventurer.
	Player *Player
	// Scoring is the reward table for this session.
	Scoring Scoring
	// ServerActivated is set by the first successful upload and never reset.
	ServerActivated bool
	// Turns counts accepted, non-blank commands.
	Turns int

	granted       map[string]bool
	loreRead      bool
	exitBonusPaid bool
}

// New builds a session with the player at the world's start room.
//
// Precondition: w must be non-nil.
// Postcondition: Returns a ready session, or an error wrapping world.ErrUnknownRoom
// if the start room does not resolve, or a scoring validation error.
func New(w *world.World, scoring Scoring) (*Session, error) {
	if err := scoring.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring: %w", err)
	}
	if _, err := w.Room(w.StartRoom); err != nil {
		return nil, fmt.Errorf("resolving start room: %w", err)
	}
	return &Session{
		ID:      uuid.NewString(),
		World:   w,
		Player:  NewPlayer(w.StartRoom, scoring.MaxScore),
		Scoring: scoring,
		granted: make(map[string]bool),
	}, nil
}

// CurrentRoom resolves the player's location.
//
// Postcondition: Returns the room, or an error wrapping world.ErrUnknownRoom.
func (s *Session) CurrentRoom() (*world.Room, error) {
	return s.World.Room(s.Player.Location)
}

// HasGranted reports whether npc already handed over its item.
func (s *Session) HasGranted(npc string) bool {
	return s.granted[npc]
}

// MarkGranted records the one-shot NPC grant.
func (s *Session) MarkGranted(npc string) {
	s.granted[npc] = true
}

// LoreRead reports whether the lore item has already paid out.
func (s *Session) LoreRead() bool {
	return s.loreRead
}

// MarkLoreRead records the one-shot lore reward.
func (s *Session) MarkLoreRead() {
	s.loreRead = true
}

// ExitBonusPaid reports whether the exit bonus has already been added.
func (s *Session) ExitBonusPaid() bool {
	return s.exitBonusPaid
}

// MarkExitBonusPaid records the one-shot exit bonus.
func (s *Session) MarkExitBonusPaid() {
	s.exitBonusPaid = true
}

// HasItemNamed reports whether the player carries the catalog item called name.
func (s *Session) HasItemNamed(name string) bool {
	it, ok := s.World.Catalog.Item(name)
	return ok && s.Player.Inventory.Contains(it)
}
