// Package shell runs the turn loop against a terminal: a plain line prompt
// or a full-screen interface. It owns input and output only; every rule lives
// in the game packages.
package shell

import (
	"fmt"

	"github.com/cory-johannsen/omega/internal/game/command"
	"github.com/cory-johannsen/omega/internal/game/outcome"
	"github.com/cory-johannsen/omega/internal/game/session"
)

// GameOverLine is printed when the loop ends, however it ended.
const GameOverLine = "Game over. Thank you for playing!"

// Game couples one session with the interpreter and evaluator that drive it.
type Game struct {
	Session     *session.Session
	Interpreter *command.Interpreter
	Evaluator   *outcome.Evaluator
}

// Banner returns the welcome text.
func (g *Game) Banner() []command.Line {
	w := g.Session.World
	return []command.Line{
		{Tone: command.Heading, Text: "========================================="},
		{Tone: command.Heading, Text: " | SECRET LABORATORY 'PROJECT OMEGA' |"},
		{Tone: command.Heading, Text: "========================================="},
		{Tone: command.Plain, Text: fmt.Sprintf("Goal: Activate the Server and escape with the %s via the %s.", w.AntidoteItem, w.ExitRoom)},
		{Tone: command.Warning, Text: fmt.Sprintf("Additional Goal: You must also achieve a minimum score of %d to be considered successful.", g.Session.Player.MaxScore)},
		{Tone: command.Plain, Text: fmt.Sprintf("If you reach the exit with the %s but a lower score, you will lose.", w.AntidoteItem)},
	}
}

// Open returns the banner and the starting room, then runs the first
// evaluation so a terminal start is reported before any input is read.
//
// Postcondition: done is true iff the session ended before the first command.
func (g *Game) Open() (lines []command.Line, done bool, err error) {
	lines = g.Banner()
	res, err := g.Interpreter.Describe(g.Session)
	if err != nil {
		return nil, true, err
	}
	lines = append(lines, res.Lines...)
	verdict, err := g.Evaluator.Evaluate(g.Session)
	if err != nil {
		return nil, true, err
	}
	return append(lines, verdict.Lines...), verdict.Terminal(), nil
}

// Step applies one input line and evaluates the result.
//
// Postcondition: done is true on quit, victory, or defeat. A non-nil error is fatal.
func (g *Game) Step(input string) (lines []command.Line, done bool, err error) {
	res, err := g.Interpreter.Apply(g.Session, input)
	if err != nil {
		return nil, true, err
	}
	if res.Signal == command.Halt {
		return res.Lines, true, nil
	}
	if len(res.Lines) == 0 {
		return nil, false, nil
	}
	verdict, err := g.Evaluator.Evaluate(g.Session)
	if err != nil {
		return nil, true, err
	}
	return append(res.Lines, verdict.Lines...), verdict.Terminal(), nil
}
