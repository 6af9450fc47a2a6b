package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/omega/internal/game/command"
)

// MaxInputBytes caps one command line. Longer lines are rejected as narration.
const MaxInputBytes = 1024

// REPL is the plain line-oriented shell.
type REPL struct {
	game     *Game
	in       io.Reader
	out      io.Writer
	renderer *Renderer
	logger   *zap.Logger
}

// NewREPL creates a REPL reading commands from in and writing narration to out.
//
// Precondition: game, in, out, and renderer must be non-nil; a nil logger disables logging.
func NewREPL(game *Game, in io.Reader, out io.Writer, renderer *Renderer, logger *zap.Logger) *REPL {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &REPL{game: game, in: in, out: out, renderer: renderer, logger: logger}
}

// Run drives the session until quit, victory, defeat, or end of input.
//
// Postcondition: The game-over line has been written unless a fatal error is returned.
func (r *REPL) Run() error {
	lines, done, err := r.game.Open()
	if err != nil {
		return err
	}
	r.print(r.renderer.Render(lines))

	reader := bufio.NewReader(r.in)
	for !done {
		fmt.Fprint(r.out, "\n"+r.renderer.Prompt())
		line, tooLong, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			r.logger.Info("input closed", zap.String("session", r.game.Session.ID))
			fmt.Fprintln(r.out)
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if tooLong {
			r.logger.Debug("input line rejected", zap.String("session", r.game.Session.ID), zap.Int("limit", MaxInputBytes))
			r.print(r.renderer.Render([]command.Line{{
				Tone: command.Failure,
				Text: fmt.Sprintf("Input too long. Enter a one or two-word command of at most %d characters.", MaxInputBytes),
			}}))
			continue
		}
		lines, done, err = r.game.Step(line)
		if err != nil {
			return err
		}
		if len(lines) > 0 {
			r.print(r.renderer.Render(lines))
		}
	}

	r.print("\n" + GameOverLine)
	return nil
}

func (r *REPL) print(text string) {
	fmt.Fprintln(r.out, text)
}

// readLine returns the next input line without its terminator. A line longer
// than MaxInputBytes is consumed in full and reported as tooLong.
//
// Postcondition: err is io.EOF only when no further input exists.
func readLine(reader *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, readErr := reader.ReadLine()
		if readErr != nil {
			return "", false, readErr
		}
		if !tooLong {
			if len(buf)+len(chunk) > MaxInputBytes {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}
