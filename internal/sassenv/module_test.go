package sassenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosass/sass/internal/logger"
	"github.com/gosass/sass/internal/sassvalue"
)

type fakeCSS struct{ cloned bool }

func (c *fakeCSS) CloneCSS() any {
	return &fakeCSS{cloned: true}
}

func TestModuleCloneCSSDeepCopiesAndResetsExtender(t *testing.T) {
	mod := NewModule("a.scss")
	mod.CSS = &fakeCSS{}

	clone := mod.CloneCSS()

	assert.NotSame(t, mod.Extender, clone.Extender)
	cloned, ok := clone.CSS.(*fakeCSS)
	require.True(t, ok)
	assert.True(t, cloned.cloned)
}

func TestModuleSetVariableSucceedsForOwnedName(t *testing.T) {
	mod := NewModule("a.scss")
	mod.Variables["x"] = sassvalue.NewUnitless(1)

	require.NoError(t, mod.SetVariable("x", sassvalue.NewUnitless(2), logger.Range{}))
	assert.True(t, mod.Variables["x"].Equal(sassvalue.NewUnitless(2)))
}

func TestApplyForwardShowClauseIsExclusive(t *testing.T) {
	mod := NewModule("a.scss")
	mod.Variables["a"] = sassvalue.NewUnitless(1)
	mod.Variables["b"] = sassvalue.NewUnitless(2)

	view := mod.applyForward(ForwardRule{Show: []string{"a"}})

	_, hasA := view.Variables["a"]
	_, hasB := view.Variables["b"]
	assert.True(t, hasA)
	assert.False(t, hasB, "a Show clause should exclude names not listed, regardless of Hide")
}
