package command

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/omega/internal/game/inventory"
	"github.com/cory-johannsen/omega/internal/game/session"
	"github.com/cory-johannsen/omega/internal/game/world"
)

func newTestGame(t testing.TB) (*Interpreter, *session.Session) {
	t.Helper()
	w, err := world.LoadDefault()
	require.NoError(t, err)
	sess, err := session.New(w, session.DefaultScoring())
	require.NoError(t, err)
	return NewInterpreter(DefaultRegistry(), zaptest.NewLogger(t)), sess
}

func newObservedGame(t *testing.T) (*Interpreter, *session.Session, *observer.ObservedLogs) {
	t.Helper()
	_, sess := newTestGame(t)
	core, logs := observer.New(zap.DebugLevel)
	return NewInterpreter(DefaultRegistry(), zap.New(core)), sess, logs
}

func apply(t *testing.T, in *Interpreter, sess *session.Session, line string) Result {
	t.Helper()
	res, err := in.Apply(sess, line)
	require.NoError(t, err, "apply %q", line)
	return res
}

// give moves the named catalog item from wherever it lies into the player's pack.
func give(t *testing.T, sess *session.Session, name string) *inventory.Item {
	t.Helper()
	it, ok := sess.World.Catalog.Item(name)
	require.True(t, ok, "catalog item %q", name)
	if room, ok := sess.World.Owner(it); ok {
		room.Items.Remove(it)
	}
	require.NoError(t, sess.Player.Inventory.Add(it))
	return it
}

func teleport(sess *session.Session, room string) {
	sess.Player.Location = room
}

func hasTone(res Result, tone Tone) bool {
	for _, l := range res.Lines {
		if l.Tone == tone {
			return true
		}
	}
	return false
}
