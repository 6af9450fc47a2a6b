package session

import "fmt"

// Scoring holds the reward constants. They are fixed once per session.
type Scoring struct {
	// MaxScore is the minimum final score for victory.
	MaxScore int
	// Move is awarded for walking through an unlocked exit.
	Move int
	// Swipe is awarded for opening a locked exit with a key card.
	Swipe int
	// Upload is awarded for reactivating the server.
	Upload int
	// Wear is awarded for putting on the suit.
	Wear int
	// LoreRead is awarded the first time the lore item is read.
	LoreRead int
	// Drink is awarded each time the water canister is used.
	Drink int
	// Connect is awarded each time the wire is connected at a terminal.
	Connect int
	// GasPenalty is deducted each time a gas-filled room is described to an unprotected player.
	GasPenalty int
	// ExitBonus is added once the player reaches the exit with antidote and server.
	ExitBonus int
}

// DefaultScoring returns the standard reward table.
func DefaultScoring() Scoring {
	return Scoring{
		MaxScore:   150,
		Move:       1,
		Swipe:      5,
		Upload:     15,
		Wear:       5,
		LoreRead:   2,
		Drink:      1,
		Connect:    0,
		GasPenalty: 5,
		ExitBonus:  70,
	}
}

// Validate checks that every constant is usable.
//
// Postcondition: Returns nil if valid, or an error naming the first bad constant.
func (s Scoring) Validate() error {
	if s.MaxScore <= 0 {
		return fmt.Errorf("max score must be > 0, got %d", s.MaxScore)
	}
	rewards := []struct {
		name  string
		value int
	}{
		{"move", s.Move},
		{"swipe", s.Swipe},
		{"upload", s.Upload},
		{"wear", s.Wear},
		{"lore_read", s.LoreRead},
		{"drink", s.Drink},
		{"connect", s.Connect},
		{"gas_penalty", s.GasPenalty},
		{"exit_bonus", s.ExitBonus},
	}
	for _, r := range rewards {
		if r.value < 0 {
			return fmt.Errorf("%s reward must be >= 0, got %d", r.name, r.value)
		}
	}
	return nil
}
