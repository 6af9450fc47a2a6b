package command

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/omega/internal/game/session"
	"github.com/cory-johannsen/omega/internal/game/world"
)

// Signal tells the shell whether to keep reading input.
type Signal int

const (
	// Continue keeps the turn loop running.
	Continue Signal = iota
	// Halt ends the turn loop.
	Halt
)

// Tone classifies a narration line for presentation.
type Tone int

// Narration tones.
const (
	Plain Tone = iota
	Heading
	Success
	Failure
	Warning
	Score
)

// Line is one line of narration.
type Line struct {
	Tone Tone
	Text string
}

// Result is the outcome of one turn.
type Result struct {
	Signal Signal
	Lines  []Line
}

// Text returns the narration joined with newlines.
func (r Result) Text() string {
	texts := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}

// Interpreter applies parsed commands to a session.
type Interpreter struct {
	registry *Registry
	logger   *zap.Logger
}

// NewInterpreter creates an Interpreter over reg.
//
// Precondition: reg must be non-nil; a nil logger disables logging.
func NewInterpreter(reg *Registry, logger *zap.Logger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interpreter{registry: reg, logger: logger}
}

// turn carries the state of one Apply call through the verb handlers.
type turn struct {
	sess  *session.Session
	room  *world.Room
	input ParseResult
	lines []Line
	log   *zap.Logger
}

func (t *turn) say(tone Tone, format string, args ...any) {
	t.lines = append(t.lines, Line{Tone: tone, Text: fmt.Sprintf(format, args...)})
}

func (t *turn) fail(format string, args ...any) {
	t.say(Failure, format, args...)
}

// score adjusts the player's score and narrates the change. A zero delta is silent.
func (t *turn) score(points int) {
	if points == 0 {
		return
	}
	t.sess.Player.AddScore(points)
	if points > 0 {
		t.say(Score, "You gained %d points! Current score: %d", points, t.sess.Player.Score)
		return
	}
	t.say(Score, "You lost %d points! Current score: %d", -points, t.sess.Player.Score)
}

// moveTo relocates the player and describes the destination.
//
// Precondition: dest is a room of the session's world.
func (t *turn) moveTo(dest *world.Room, reward int) {
	t.sess.Player.Location = dest.Name
	t.room = dest
	t.score(reward)
	describeRoom(t, dest)
}

// Apply interprets one raw input line against sess. User mistakes come back
// as Failure narration with the session untouched. A non-nil error means the
// world definition is broken (for example the player's room or an exit target
// is missing) and the session must be abandoned.
//
// Precondition: sess must be non-nil.
// Postcondition: Either every effect of the verb was applied or none was.
func (in *Interpreter) Apply(sess *session.Session, line string) (Result, error) {
	input := Parse(line)
	if input.Verb == "" {
		return Result{Signal: Continue}, nil
	}

	room, err := sess.CurrentRoom()
	if err != nil {
		in.logger.Error("current room does not resolve",
			zap.String("session", sess.ID),
			zap.String("room", sess.Player.Location),
			zap.Error(err),
		)
		return Result{}, fmt.Errorf("resolving current room: %w", err)
	}

	sess.Turns++
	t := &turn{sess: sess, room: room, input: input, log: in.logger.With(zap.String("session", sess.ID))}
	signal := Continue

	cmd, ok := in.registry.Resolve(input.Verb)
	if !ok {
		if len(input.Words) > 2 {
			t.fail("Too many words. Enter a one or two-word command (e.g., 'go north' or 'look').")
		} else {
			t.fail("Unknown command: '%s'. Try 'help'.", strings.TrimSpace(line))
		}
		in.logger.Debug("unknown command",
			zap.String("session", sess.ID),
			zap.String("verb", input.Verb),
		)
		return Result{Signal: Continue, Lines: t.lines}, nil
	}

	startRoom := room.Name
	switch cmd.Handler {
	case HandlerLook:
		describeRoom(t, room)
	case HandlerInventory:
		showInventory(t)
	case HandlerGo:
		err = handleGo(t)
	case HandlerSwipe:
		err = handleSwipe(t)
	case HandlerTake:
		err = handleTake(t)
	case HandlerDrop:
		err = handleDrop(t)
	case HandlerUse:
		handleUse(t)
	case HandlerUpload:
		handleUpload(t)
	case HandlerWear:
		handleWear(t)
	case HandlerTalk:
		err = handleTalk(t)
	case HandlerRead:
		handleRead(t)
	case HandlerExamine:
		handleExamine(t)
	case HandlerScore:
		t.say(Plain, "Your current score: %d/%d", sess.Player.Score, sess.Player.MaxScore)
	case HandlerHelp:
		showHelp(t, in.registry)
	case HandlerQuit:
		t.say(Plain, "Quitting the game...")
		signal = Halt
	default:
		return Result{}, fmt.Errorf("command %q has no handler %q", cmd.Name, cmd.Handler)
	}
	if err != nil {
		in.logger.Error("command aborted by world error",
			zap.String("session", sess.ID),
			zap.String("verb", cmd.Name),
			zap.Error(err),
		)
		return Result{}, err
	}

	in.logger.Debug("command applied",
		zap.String("session", sess.ID),
		zap.String("verb", cmd.Name),
		zap.String("noun", input.Noun),
		zap.String("room", sess.Player.Location),
		zap.Int("score", sess.Player.Score),
		zap.Int("turn", sess.Turns),
	)
	if sess.Player.Location != startRoom {
		in.logger.Info("player moved",
			zap.String("session", sess.ID),
			zap.String("from", startRoom),
			zap.String("to", sess.Player.Location),
		)
	}

	return Result{Signal: signal, Lines: t.lines}, nil
}
