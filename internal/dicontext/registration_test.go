package dicontext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nestdi/internal/hosttree"
	"github.com/vk/nestdi/internal/inmemorytree"
)

// helper adds a registration helper node carrying hook under producer.
func (w *world) helper(producer *inmemorytree.Node, name string, hook hosttree.Hook) *inmemorytree.Node {
	w.t.Helper()
	n := inmemorytree.NewNode(name, "Registration")
	n.AddHook(hook)
	require.NoError(w.t, w.tree.AddChild(producer, n))
	return n
}

func TestRegistrationHelper_IntoNearestAboveProducer(t *testing.T) {
	w := newWorld(t)
	top := w.mount(w.root, Config{})
	player := w.node(w.root, "player", "Player")
	own := w.mount(player, Config{})

	w.helper(player, "reg", &Registration{Index: w.index})

	got, ok := top.TryLookupDefault("Player")
	require.True(t, ok)
	assert.True(t, hosttree.Same(player, got))
	assert.Empty(t, own.Snapshot().Registered, "the producer's own context is skipped by default")
}

func TestRegistrationHelper_IntoOwnContext(t *testing.T) {
	w := newWorld(t)
	top := w.mount(w.root, Config{})
	player := w.node(w.root, "player", "Player")
	own := w.mount(player, Config{})

	w.helper(player, "reg", &Registration{Index: w.index, TypeName: "Avatar", ID: "p1", IntoOwnContext: true})

	got, ok := own.TryLookup("Avatar", "p1")
	require.True(t, ok)
	assert.True(t, hosttree.Same(player, got))
	_, ok = top.TryLookup("Avatar", "p1")
	assert.False(t, ok)
}

func TestRegistrationHelper_UnregistersOnExit(t *testing.T) {
	w := newWorld(t)
	top := w.mount(w.root, Config{})
	player := w.node(w.root, "player", "Player")
	w.helper(player, "reg", &Registration{Index: w.index})
	w.helper(player, "multi", &Multiregistration{Index: w.index, Family: "Actor"})

	_, ok := top.TryLookupDefault("Player")
	require.True(t, ok)

	require.NoError(t, w.tree.Remove(player))
	_, ok = top.TryLookupDefault("Player")
	assert.False(t, ok)
	assert.Empty(t, top.Snapshot().Registered)
	assert.Empty(t, top.Snapshot().Multiregistered)
}

func TestMultiregistrationHelper_DefaultsToClass(t *testing.T) {
	w := newWorld(t)
	top := w.mount(w.root, Config{})
	probe := w.node(w.root, "probe", "Thermometer")
	w.helper(probe, "multi", &Multiregistration{Index: w.index})

	got, err := top.CollectAll("Thermometer")
	require.NoError(t, err)
	assert.Equal(t, []string{"probe"}, names(got))
}

func TestRegistration_MissingContext(t *testing.T) {
	w := newWorld(t)
	player := w.node(w.root, "player", "Player")

	_, err := w.index.Register(player, "", "", false)
	var missing *MissingContextError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Player", missing.Class)

	_, err = w.index.Multiregister(player, "Actor", false)
	assert.ErrorAs(t, err, &missing)

	assert.NotPanics(t, func() {
		w.helper(player, "reg", &Registration{Index: w.index})
	})
}

func TestRegistration_UnknownFamilyFromHelper(t *testing.T) {
	w := newWorld(t, "Sensor")
	top := w.mount(w.root, Config{})
	probe := w.node(w.root, "probe", "Thermometer")

	_, err := w.index.Multiregister(probe, "", false)
	assert.Error(t, err, "the class is not a declared family")

	w.helper(probe, "multi", &Multiregistration{Index: w.index, Family: "sensor"})
	got, err := top.CollectAll("Sensor")
	require.NoError(t, err)
	assert.Equal(t, []string{"probe"}, names(got))
}
