// Package session holds the mutable state of one play-through: the player,
// the world it mutates, and the one-shot flags the rules depend on.
package session

import "github.com/cory-johannsen/omega/internal/game/inventory"

// Player is the mutable record of the adventurer.
type Player struct {
	// Location is the name of the current room. It always resolves in the world.
	Location string
	// Inventory holds carried items in pickup order.
	Inventory *inventory.Container
	// Score may go negative; it is never clamped.
	Score int
	// MaxScore is the threshold the exit check compares against.
	MaxScore int
	// HasWornSuit is set once the hazmat suit is put on.
	HasWornSuit bool
}

// NewPlayer returns a player standing in start with an empty pack.
//
// Postcondition: Score is zero, HasWornSuit is false, Inventory is empty.
func NewPlayer(start string, maxScore int) *Player {
	return &Player{
		Location:  start,
		Inventory: inventory.NewContainer(),
		MaxScore:  maxScore,
	}
}

// AddScore adjusts the score by points, which may be negative.
func (p *Player) AddScore(points int) {
	p.Score += points
}
