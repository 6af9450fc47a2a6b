// Package outcome decides, once per turn, whether the session has been won,
// lost, or needs a hint at the exit.
package outcome

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/omega/internal/game/command"
	"github.com/cory-johannsen/omega/internal/game/session"
)

// Outcome classifies a verdict.
type Outcome int

const (
	// None means play continues with nothing to report.
	None Outcome = iota
	// Hint means play continues and the player is told what is missing.
	Hint
	// Victory ends the session successfully.
	Victory
	// Defeat ends the session unsuccessfully.
	Defeat
)

func (o Outcome) String() string {
	switch o {
	case None:
		return "none"
	case Hint:
		return "hint"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Verdict is the evaluator's answer for one turn.
type Verdict struct {
	Outcome Outcome
	Lines   []command.Line
}

// Terminal reports whether the session is over.
func (v Verdict) Terminal() bool {
	return v.Outcome == Victory || v.Outcome == Defeat
}

// Evaluator checks the exit-room conditions.
type Evaluator struct {
	logger *zap.Logger
}

// NewEvaluator creates an Evaluator. A nil logger disables logging.
func NewEvaluator(logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{logger: logger}
}

// Evaluate inspects the session before the next command is read. Away from
// the exit room it is a no-op. At the exit, carrying the antidote with the
// server activated adds the exit bonus on the first such call only, then
// compares the score with the threshold: at or above is victory, below is
// defeat. Missing either condition yields a hint and play continues. Repeated
// calls on an unchanged session return the same outcome.
//
// Postcondition: Returns a Verdict, or an error wrapping world.ErrUnknownRoom if the
// player's room does not resolve.
func (e *Evaluator) Evaluate(sess *session.Session) (Verdict, error) {
	room, err := sess.CurrentRoom()
	if err != nil {
		return Verdict{}, fmt.Errorf("resolving current room: %w", err)
	}
	if room.Name != sess.World.ExitRoom {
		return Verdict{Outcome: None}, nil
	}

	p := sess.Player
	hasAntidote := sess.HasItemNamed(sess.World.AntidoteItem)

	switch {
	case !sess.ServerActivated:
		return hint("The emergency exit is still locked. You must activate the Server to disable the security system."), nil
	case !hasAntidote:
		return hint(fmt.Sprintf("The exit is open, but the toxic gas is spreading. You must find the %s first!", sess.World.AntidoteItem)), nil
	}

	paying := !sess.ExitBonusPaid()
	if paying {
		p.AddScore(sess.Scoring.ExitBonus)
		sess.MarkExitBonusPaid()
	}
	log := e.logger.With(
		zap.String("session", sess.ID),
		zap.Int("score", p.Score),
		zap.Int("max_score", p.MaxScore),
		zap.Int("turns", sess.Turns),
	)

	var lines []command.Line
	if paying && sess.Scoring.ExitBonus > 0 {
		lines = append(lines, command.Line{Tone: command.Score, Text: fmt.Sprintf("You gained %d points! Current score: %d", sess.Scoring.ExitBonus, p.Score)})
	}

	if p.Score >= p.MaxScore {
		log.Info("session won")
		return Verdict{
			Outcome: Victory,
			Lines: append(lines,
				command.Line{Tone: command.Heading, Text: "*** VICTORY! ***"},
				command.Line{Tone: command.Success, Text: "You successfully reactivated the server, disabled the security, and escaped the complex."},
				command.Line{Tone: command.Success, Text: fmt.Sprintf("You took the %s and are safe! Your final score: %d/%d", sess.World.AntidoteItem, p.Score, p.MaxScore)},
			),
		}, nil
	}

	log.Info("session lost")
	return Verdict{
		Outcome: Defeat,
		Lines: append(lines,
			command.Line{Tone: command.Heading, Text: "*** DEFEAT! ***"},
			command.Line{Tone: command.Failure, Text: fmt.Sprintf("You reached the %s and have the %s, but you failed to collect enough data and evidence.", room.Name, sess.World.AntidoteItem)},
			command.Line{Tone: command.Failure, Text: fmt.Sprintf("You must achieve a score of at least %d to be considered successful. Your score: %d", p.MaxScore, p.Score)},
		),
	}, nil
}

func hint(text string) Verdict {
	return Verdict{Outcome: Hint, Lines: []command.Line{{Tone: command.Warning, Text: text}}}
}
