package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sensorsModule struct{}

func (sensorsModule) Register(r *Registry) {
	r.DeclareFamily(Family{Name: "Sensor", Aliases: []string{"sensors"}, Description: "anything that samples"})
	r.Declare("Actuator")
}

func TestCanonical_ResolvesSpellings(t *testing.T) {
	r := New()
	r.Load(sensorsModule{})
	r.Freeze()

	for _, spelling := range []string{"Sensor", "sensor", "SENSOR", " Sensor ", "sensors", "Sensors"} {
		got, err := r.Canonical(spelling)
		require.NoError(t, err, spelling)
		assert.Equal(t, "Sensor", got, spelling)
	}

	got, err := r.Canonical("actuator")
	require.NoError(t, err)
	assert.Equal(t, "Actuator", got)
}

func TestCanonical_Unknown(t *testing.T) {
	r := New()
	r.Load(sensorsModule{})

	_, err := r.Canonical("Sensr")
	require.Error(t, err)

	var unknown *UnknownFamilyError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Sensr", unknown.Name)
	assert.Contains(t, err.Error(), "Sensr")

	assert.Panics(t, func() { r.MustCanonical("Sensr") })
}

func TestDeclare_Panics(t *testing.T) {
	t.Run("duplicate spelling", func(t *testing.T) {
		r := New()
		r.Declare("Sensor")
		assert.Panics(t, func() { r.Declare("Other", "sensor") })
	})
	t.Run("empty name", func(t *testing.T) {
		assert.Panics(t, func() { New().Declare("  ") })
	})
	t.Run("after freeze", func(t *testing.T) {
		r := New()
		r.Freeze()
		assert.True(t, r.Frozen())
		assert.Panics(t, func() { r.Declare("Late") })
	})
}

func TestFamilies_Sorted(t *testing.T) {
	r := New()
	r.Load(sensorsModule{})
	assert.Equal(t, []string{"Actuator", "Sensor"}, r.Families())

	f, ok := r.Family("Sensor")
	require.True(t, ok)
	assert.Equal(t, "anything that samples", f.Description)
	assert.Equal(t, []string{"sensors"}, f.Aliases)

	_, ok = r.Family("sensor")
	assert.False(t, ok, "Family takes the canonical name only")
}
