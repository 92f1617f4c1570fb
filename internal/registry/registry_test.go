package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbreak/internal/core"
)

type stubGame struct {
	id, title string
	session   string
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) SessionID() string { return g.session }

func factory(id, title string) Factory {
	return func() Game { return &stubGame{id: id, title: title} }
}

func TestRegistryCreateAndList(t *testing.T) {
	r := New()
	r.Register("zeta", factory("zeta", "Zeta"))
	r.Register("alpha", factory("alpha", "Alpha"))

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].ID)
	assert.Equal(t, "Alpha", list[0].Title)
	assert.Equal(t, "zeta", list[1].ID)

	g, err := r.Create("zeta")
	require.NoError(t, err)
	assert.Equal(t, "zeta", g.ID())

	other, err := r.Create("zeta")
	require.NoError(t, err)
	assert.NotSame(t, g, other, "every Create builds a fresh game")

	assert.True(t, r.Exists("alpha"))
	assert.False(t, r.Exists("pong"))
}

func TestRegistryUnknownGame(t *testing.T) {
	_, err := New().Create("missing")
	assert.ErrorContains(t, err, `unknown game "missing"`)
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := New()
	r.Register("dup", factory("dup", "Dup"))
	assert.Panics(t, func() { r.Register("dup", factory("dup", "Again")) })
}

func TestSessionID(t *testing.T) {
	assert.Equal(t, "abc", SessionID(&stubGame{session: "abc"}))

	var plain Game = struct{ Game }{&stubGame{session: "hidden"}}
	assert.Empty(t, SessionID(plain), "games without SessionID report none")
}
