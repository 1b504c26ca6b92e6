package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_RoundTrip(t *testing.T) {
	for _, raw := range []string{"a.b.c", "world", "main-scene.ui.hud_2"} {
		t.Run(raw, func(t *testing.T) {
			p, err := Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, p.String())
		})
	}
}

func TestPath_ChildAndParent(t *testing.T) {
	root := Root("world")
	child := root.Child("level")
	grandchild := child.Child("hud")

	assert.Equal(t, "world.level.hud", grandchild.String())
	assert.Equal(t, "hud", grandchild.Name())
	assert.Equal(t, 3, grandchild.Depth())

	parent, ok := grandchild.Parent()
	require.True(t, ok)
	assert.True(t, parent.Equal(child))

	_, ok = root.Parent()
	assert.False(t, ok, "a root path has no parent")

	// Child must not alias the receiver's backing array.
	other := child.Child("menu")
	assert.Equal(t, "world.level.hud", grandchild.String())
	assert.Equal(t, "world.level.menu", other.String())
}

func TestPath_HasPrefix(t *testing.T) {
	p := MustParse("world.level.hud")
	assert.True(t, p.HasPrefix(MustParse("world")))
	assert.True(t, p.HasPrefix(MustParse("world.level.hud")))
	assert.False(t, p.HasPrefix(MustParse("world.menu")))
	assert.False(t, MustParse("world").HasPrefix(p))
}

func TestPath_Zero(t *testing.T) {
	var p Path
	assert.True(t, p.IsZero())
	assert.Equal(t, "", p.String())
	assert.Equal(t, "", p.Name())
}
