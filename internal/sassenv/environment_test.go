package sassenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosass/sass/internal/ast"
	"github.com/gosass/sass/internal/logger"
	"github.com/gosass/sass/internal/sasserr"
	"github.com/gosass/sass/internal/sassvalue"
)

func TestSetAndGetVariableAtRoot(t *testing.T) {
	env := NewEnvironment()
	require.NoError(t, env.SetVariable("x", sassvalue.NewUnitless(1), ast.Handle{}, nil, false))

	v, ok, err := env.GetVariable("x", nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, v.Equal(sassvalue.NewUnitless(1)))
}

func TestScopeShadowingDoesNotBleedOut(t *testing.T) {
	env := NewEnvironment()
	require.NoError(t, env.SetVariable("x", sassvalue.NewUnitless(1), ast.Handle{}, nil, false))

	err := env.Scope(false, true, func() error {
		return env.SetVariable("x", sassvalue.NewUnitless(2), ast.Handle{}, nil, false)
	})
	require.NoError(t, err)

	v, ok, err := env.GetVariable("x", nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, v.Equal(sassvalue.NewUnitless(1)), "shadowed assignment inside a scope must not bleed out")
}

func TestGlobalAssignmentInsideScopeBleedsOut(t *testing.T) {
	env := NewEnvironment()
	require.NoError(t, env.SetVariable("x", sassvalue.NewUnitless(1), ast.Handle{}, nil, false))

	err := env.Scope(false, true, func() error {
		return env.SetVariable("x", sassvalue.NewUnitless(2), ast.Handle{}, nil, true)
	})
	require.NoError(t, err)

	v, _, err := env.GetVariable("x", nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(sassvalue.NewUnitless(2)))
}

func TestScopeRestoresFramesOnError(t *testing.T) {
	env := NewEnvironment()
	framesBefore := len(env.frames)

	boom := assert.AnError
	err := env.Scope(false, true, func() error {
		_ = env.SetVariable("y", sassvalue.NewUnitless(1), ast.Handle{}, nil, false)
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, framesBefore, len(env.frames))
	_, ok, _ := env.GetVariable("y", nil)
	assert.False(t, ok, "a variable declared inside a popped scope must not be visible")
}

func TestAddModuleNamespaced(t *testing.T) {
	env := NewEnvironment()
	mod := NewModule("colors.scss")
	mod.Variables["c"] = sassvalue.NewUnitless(1)
	ns := "colors"

	require.NoError(t, env.AddModule(mod, &ns, logger.Range{}))

	v, ok, err := env.GetVariable("c", &ns)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, v.Equal(sassvalue.NewUnitless(1)))
}

func TestAddModuleDuplicateNamespaceFails(t *testing.T) {
	env := NewEnvironment()
	ns := "colors"
	require.NoError(t, env.AddModule(NewModule("a.scss"), &ns, logger.Range{}))
	err := env.AddModule(NewModule("b.scss"), &ns, logger.Range{})
	assert.Error(t, err)
}

func TestAddModuleGlobalCollisionWithRootFails(t *testing.T) {
	env := NewEnvironment()
	require.NoError(t, env.SetVariable("c", sassvalue.NewUnitless(1), ast.Handle{}, nil, false))

	mod := NewModule("colors.scss")
	mod.Variables["c"] = sassvalue.NewUnitless(2)
	err := env.AddModule(mod, nil, logger.Range{})

	var dup *sasserr.DuplicateMemberError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "c", dup.Name)
}

func TestAmbiguousGlobalVariable(t *testing.T) {
	env := NewEnvironment()

	a := NewModule("a.scss")
	a.Variables["c"] = sassvalue.NewUnitless(1)
	require.NoError(t, env.AddModule(a, nil, logger.Range{}))

	b := NewModule("b.scss")
	b.Variables["c"] = sassvalue.NewUnitless(2)
	require.NoError(t, env.AddModule(b, nil, logger.Range{}))

	_, _, err := env.GetVariable("c", nil)
	var ambiguous *sasserr.AmbiguousGlobalError
	require.ErrorAs(t, err, &ambiguous)
	assert.ElementsMatch(t, []string{"a.scss", "b.scss"}, ambiguous.Modules)
}

func TestImportForwardsAtRootShadowsExistingGlobal(t *testing.T) {
	env := NewEnvironment()

	a := NewModule("a.scss")
	a.Variables["c"] = sassvalue.NewUnitless(1)
	require.NoError(t, env.AddModule(a, nil, logger.Range{}))

	later := NewModule("later.scss")
	later.Variables["c"] = sassvalue.NewUnitless(2)
	env.ImportForwards(later, ForwardRule{}, true)

	v, ok, err := env.GetVariable("c", nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, v.Equal(sassvalue.NewUnitless(2)), "the later import_forwards should win, shadowing the earlier global module")
}

func TestImportForwardsAtRootWarnsOnShadowedMember(t *testing.T) {
	env := NewEnvironment()

	var warnings []string
	env.Log = logger.Log{AddMsg: func(msg logger.Msg) {
		assert.Equal(t, logger.MsgID_Module_ShadowedByForward, msg.ID)
		warnings = append(warnings, msg.Data.Text)
	}}

	a := NewModule("a.scss")
	a.Variables["c"] = sassvalue.NewUnitless(1)
	require.NoError(t, env.AddModule(a, nil, logger.Range{}))

	later := NewModule("later.scss")
	later.Variables["c"] = sassvalue.NewUnitless(2)
	env.ImportForwards(later, ForwardRule{}, true)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "c")
	assert.Contains(t, warnings[0], "a.scss")
}

func TestImportForwardsAtRootDoesNotWarnWithoutOverlap(t *testing.T) {
	env := NewEnvironment()

	var warnings []string
	env.Log = logger.Log{AddMsg: func(msg logger.Msg) {
		warnings = append(warnings, msg.Data.Text)
	}}

	a := NewModule("a.scss")
	a.Variables["c"] = sassvalue.NewUnitless(1)
	require.NoError(t, env.AddModule(a, nil, logger.Range{}))

	later := NewModule("later.scss")
	later.Variables["d"] = sassvalue.NewUnitless(2)
	env.ImportForwards(later, ForwardRule{}, true)

	assert.Empty(t, warnings, "importing forwards with no overlapping member names should never warn")
}

func TestForwardModuleAppliesPrefixAndHide(t *testing.T) {
	env := NewEnvironment()
	mod := NewModule("colors.scss")
	mod.Variables["red"] = sassvalue.NewUnitless(1)
	mod.Variables["internal"] = sassvalue.NewUnitless(2)

	require.NoError(t, env.ForwardModule(mod, ForwardRule{Hide: []string{"internal"}, Prefix: "color-"}, logger.Range{}))

	require.Len(t, env.forwardedModules, 1)
	view := env.forwardedModules[0].Module
	_, hasRed := view.Variables["color-red"]
	_, hasInternal := view.Variables["color-internal"]
	assert.True(t, hasRed)
	assert.False(t, hasInternal)
}

func TestSuggestVariableNameFindsOneEditTypo(t *testing.T) {
	env := NewEnvironment()
	require.NoError(t, env.SetVariable("primary-color", sassvalue.NewUnitless(1), ast.Handle{}, nil, false))

	suggestion, ok := env.SuggestVariableName("primary-colr")
	require.True(t, ok)
	assert.Equal(t, "primary-color", suggestion)
}

func TestModuleSetVariableFailsForUnownedName(t *testing.T) {
	mod := NewModule("a.scss")
	err := mod.SetVariable("missing", sassvalue.NewUnitless(1), logger.Range{})
	assert.Error(t, err)
}
