package builder

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nestdi/internal/config"
	"github.com/vk/nestdi/internal/ctxlog"
	"github.com/vk/nestdi/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

func testCtx() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// sensorScene is a level with a player and a HUD. The player's context
// forwards Sensor and the default Camera to the level.
func sensorScene() *config.Scene {
	return &config.Scene{
		Root: &config.NodeSpec{
			Name:    "level",
			Class:   "Level",
			Context: &config.ContextSpec{LoggingName: "level"},
			Children: []*config.NodeSpec{
				{
					Name:  "player",
					Class: "Player",
					Props: map[string]cty.Value{"speed": cty.NumberIntVal(3)},
					Context: &config.ContextSpec{
						ReRegister:      []config.KeySpec{{Type: "Camera"}},
						ReMultiregister: []string{"sensors"},
					},
					Registrations: []*config.RegisterSpec{{Name: "reg"}},
					Children: []*config.NodeSpec{
						{
							Name:          "cam",
							Class:         "Camera3D",
							Registrations: []*config.RegisterSpec{{Name: "reg", Type: "Camera"}},
						},
						{
							Name:               "lidar",
							Class:              "Lidar",
							Multiregistrations: []*config.MultiregisterSpec{{Name: "ms", Family: "Sensor"}},
						},
					},
				},
				{
					Name:               "beacon",
					Class:              "Beacon",
					Multiregistrations: []*config.MultiregisterSpec{{Name: "ms", Family: "Sensor"}},
				},
				{
					Name:    "hud",
					Class:   "HUD",
					Context: &config.ContextSpec{LoggingName: "hud"},
				},
			},
		},
		Queries: []*config.QuerySpec{
			{Name: "sensors", Kind: config.QueryCollect, From: "level.hud", Target: "Sensor"},
			{Name: "camera", Kind: config.QueryLookup, From: "level.hud", Target: "Camera"},
			{Name: "player", Kind: config.QueryTryLookup, From: "level.hud", Target: "Player"},
			{Name: "where", Kind: config.QueryNearest, From: "level.player.cam"},
			{Name: "camera_after", Kind: config.QueryLookup, From: "level.hud", Target: "Camera", AfterDetach: true},
			{Name: "sensors_after", Kind: config.QueryCollect, From: "level.hud", Target: "Sensor", AfterDetach: true},
		},
		Detach: []string{"level.player"},
	}
}

func sensorFamilies() *registry.Registry {
	r := registry.New()
	r.Declare("Sensor", "sensors")
	r.Freeze()
	return r
}

func TestBuild_SensorScene(t *testing.T) {
	s, err := Build(testCtx(), sensorScene(), sensorFamilies())
	require.NoError(t, err)
	assert.Equal(t, 3, s.Index().Len())

	player, err := s.Node("level.player")
	require.NoError(t, err)
	assert.Equal(t, int64(3), player.Props["speed"])

	lines := func(results []Result) []string {
		var out []string
		for _, r := range results {
			out = append(out, r.String())
		}
		return out
	}

	first := s.RunQueries(sensorScene().Queries, false)
	assert.Equal(t, []string{
		"sensors: collect Sensor from level.hud -> [level.beacon, level.player.lidar]",
		"camera: lookup Camera from level.hud -> level.player.cam",
		"player: try_lookup Player from level.hud -> level.player",
		"where: nearest from level.player.cam -> context at level.player",
	}, lines(first))

	require.NoError(t, s.Detach("level.player"))
	assert.Equal(t, 2, s.Index().Len())

	second := s.RunQueries(sensorScene().Queries, true)
	assert.Equal(t, []string{
		"camera_after: lookup Camera from level.hud -> error: failed to find node with type Camera",
		"sensors_after: collect Sensor from level.hud -> [level.beacon]",
	}, lines(second))

	level, err := s.ContextAt("level")
	require.NoError(t, err)
	assert.Empty(t, level.Snapshot().ForwardFamilies)
	assert.Empty(t, level.Snapshot().ForwardKeys)

	s.Close()
	assert.Zero(t, s.Index().Len())
}

func TestBuild_RejectsInvalidScene(t *testing.T) {
	_, err := Build(testCtx(), &config.Scene{}, nil)
	assert.ErrorContains(t, err, "scene has no root node")

	_, err = Build(testCtx(), nil, nil)
	assert.Error(t, err)
}

func TestBuild_UnknownFamilyInContext(t *testing.T) {
	scene := sensorScene()
	scene.Root.Children[0].Context.ReMultiregister = []string{"Sensr"}

	_, err := Build(testCtx(), scene, sensorFamilies())
	require.Error(t, err)
	var unknown *registry.UnknownFamilyError
	assert.ErrorAs(t, err, &unknown)
	assert.Contains(t, err.Error(), "level.player")
}

func TestQuery_Errors(t *testing.T) {
	scene := &config.Scene{Root: &config.NodeSpec{Name: "lonely", Children: []*config.NodeSpec{{Name: "leaf"}}}}
	s, err := Build(testCtx(), scene, nil)
	require.NoError(t, err)

	res := s.Query(&config.QuerySpec{Name: "q", Kind: config.QueryLookup, From: "lonely.leaf", Target: "X"})
	assert.ErrorContains(t, res.Err, "no DI context in the parentage of node lonely.leaf")

	res = s.Query(&config.QuerySpec{Name: "q", Kind: config.QueryNearest, From: "lonely.leaf"})
	assert.NoError(t, res.Err)
	assert.Equal(t, "q: nearest from lonely.leaf -> <none>", res.String())

	res = s.Query(&config.QuerySpec{Name: "q", Kind: config.QueryLookup, From: "lonely.gone", Target: "X"})
	assert.ErrorContains(t, res.Err, "no node at lonely.gone")

	assert.Error(t, s.Detach("lonely.gone"))
}

func TestPropToGo(t *testing.T) {
	v := cty.ObjectVal(map[string]cty.Value{
		"name":  cty.StringVal("hero"),
		"alive": cty.True,
		"speed": cty.NumberFloatVal(1.5),
		"hp":    cty.NumberIntVal(10),
		"tags":  cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.NullVal(cty.String)}),
	})
	assert.Equal(t, map[string]any{
		"name":  "hero",
		"alive": true,
		"speed": 1.5,
		"hp":    int64(10),
		"tags":  []any{"a", nil},
	}, propToGo(v))
}
