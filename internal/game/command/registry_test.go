package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r)
	assert.Len(t, r.Commands(), len(BuiltinCommands()))
}

func TestResolve_CanonicalName(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("swipe")
	assert.True(t, ok)
	assert.Equal(t, "swipe", cmd.Name)
	assert.Equal(t, HandlerSwipe, cmd.Handler)
}

func TestResolve_NotFound(t *testing.T) {
	r := DefaultRegistry()

	_, ok := r.Resolve("teleport")
	assert.False(t, ok)
}

func TestResolve_AllVerbs(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		input   string
		handler string
	}{
		{"go", HandlerGo},
		{"swipe", HandlerSwipe},
		{"take", HandlerTake},
		{"drop", HandlerDrop},
		{"use", HandlerUse},
		{"upload", HandlerUpload},
		{"wear", HandlerWear},
		{"talk", HandlerTalk},
		{"read", HandlerRead},
		{"examine", HandlerExamine},
		{"look", HandlerLook},
		{"explore", HandlerLook},
		{"inventory", HandlerInventory},
		{"inv", HandlerInventory},
		{"with", HandlerInventory},
		{"score", HandlerScore},
		{"help", HandlerHelp},
		{"quit", HandlerQuit},
		{"exit", HandlerQuit},
	}

	for _, tt := range tests {
		cmd, ok := r.Resolve(tt.input)
		require.True(t, ok, "input %q not found", tt.input)
		assert.Equal(t, tt.handler, cmd.Handler, "input %q wrong handler", tt.input)
	}
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	cmds := []Command{
		{Name: "test", Handler: "a"},
		{Name: "test", Handler: "b"},
	}
	_, err := NewRegistry(cmds)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate command name")
}

func TestNewRegistry_DuplicateAlias(t *testing.T) {
	cmds := []Command{
		{Name: "test1", Aliases: []string{"t"}, Handler: "a"},
		{Name: "test2", Aliases: []string{"t"}, Handler: "b"},
	}
	_, err := NewRegistry(cmds)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate alias")
}

func TestNewRegistry_AliasShadowsName(t *testing.T) {
	cmds := []Command{
		{Name: "look", Handler: "a"},
		{Name: "peek", Aliases: []string{"look"}, Handler: "b"},
	}
	_, err := NewRegistry(cmds)
	assert.Error(t, err)
}

func TestCommands_RegistrationOrder(t *testing.T) {
	r := DefaultRegistry()
	builtins := BuiltinCommands()
	for i, cmd := range r.Commands() {
		assert.Equal(t, builtins[i].Name, cmd.Name)
	}
}

func TestCommandsByCategory(t *testing.T) {
	r := DefaultRegistry()
	cats := r.CommandsByCategory()

	for _, cat := range categoryOrder {
		assert.Contains(t, cats, cat)
	}
	assert.Len(t, cats[CategoryMovement], 1)
	assert.Len(t, cats[CategorySpecial], 3)
}

func TestPropertyAllAliasesResolveToCanonical(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := DefaultRegistry()
		cmds := r.Commands()
		idx := rapid.IntRange(0, len(cmds)-1).Draw(t, "cmd_idx")
		cmd := cmds[idx]

		resolved, ok := r.Resolve(cmd.Name)
		if !ok {
			t.Fatalf("canonical name %q did not resolve", cmd.Name)
		}
		if resolved.Name != cmd.Name {
			t.Fatalf("canonical name %q resolved to %q", cmd.Name, resolved.Name)
		}

		for _, alias := range cmd.Aliases {
			aliasResolved, ok := r.Resolve(alias)
			if !ok {
				t.Fatalf("alias %q did not resolve", alias)
			}
			if aliasResolved.Name != cmd.Name {
				t.Fatalf("alias %q resolved to %q, expected %q", alias, aliasResolved.Name, cmd.Name)
			}
		}
	})
}
