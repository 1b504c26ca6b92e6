package yamlloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nestdi/internal/config"
	"github.com/zclconf/go-cty/cty"
)

const sceneYAML = `
families:
  - name: Sensor
    aliases: [sensors]
root:
  name: level
  class: Level
  context:
    logging_name: level
  children:
    - name: player
      class: Player
      props:
        speed: 3
        stats: {hp: 10}
        tags: [hero]
      context:
        re_register:
          - type: Camera
            id: main
        re_multiregister: [Sensor]
      register:
        - name: reg
          into_own_context: true
      multiregister:
        - name: as_sensor
queries:
  - name: camera
    lookup: Camera
    id: main
    from: level
  - name: where
    nearest: true
    from: level.player
    after_detach: true
detach: [level.player]
---
families:
  - name: Actuator
`

func writeScene(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_FullScene(t *testing.T) {
	path := writeScene(t, t.TempDir(), "scene.yaml", sceneYAML)

	scene, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, scene.Validate())

	require.Len(t, scene.Families, 2)
	assert.Equal(t, "Sensor", scene.Families[0].Name)
	assert.Equal(t, []string{"sensors"}, scene.Families[0].Aliases)
	assert.Equal(t, "Actuator", scene.Families[1].Name)

	player := scene.Root.Children[0]
	assert.True(t, player.Props["speed"].Equals(cty.NumberIntVal(3)).True())
	assert.True(t, player.Props["stats"].GetAttr("hp").Equals(cty.NumberIntVal(10)).True())
	assert.Equal(t, 1, player.Props["tags"].LengthInt())
	assert.Equal(t, []config.KeySpec{{Type: "Camera", ID: "main"}}, player.Context.ReRegister)
	assert.Equal(t, []*config.RegisterSpec{{Name: "reg", IntoOwnContext: true}}, player.Registrations)
	assert.Equal(t, []*config.MultiregisterSpec{{Name: "as_sensor"}}, player.Multiregistrations)

	assert.Equal(t, []*config.QuerySpec{
		{Name: "camera", Kind: config.QueryLookup, Target: "Camera", ID: "main", From: "level"},
		{Name: "where", Kind: config.QueryNearest, From: "level.player", AfterDetach: true},
	}, scene.Queries)
	assert.Equal(t, []string{"level.player"}, scene.Detach)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "unknown key", body: "rooot: {}\n", wantErr: "field rooot not found"},
		{name: "malformed", body: "root: [\n", wantErr: "failed to decode YAML file"},
		{name: "no query kind", body: "queries:\n  - name: q\n    from: a\n", wantErr: "exactly one of"},
		{name: "bad detach", body: "detach: [\"a..b\"]\n", wantErr: "empty segment"},
		{name: "two roots", body: "root: {name: a}\n---\nroot: {name: b}\n", wantErr: "more than one root"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeScene(t, t.TempDir(), "scene.yml", tc.body)
			_, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestToCty(t *testing.T) {
	v, err := toCty(map[string]any{"a": []any{1, "x", true, nil}, "b": 1.5})
	require.NoError(t, err)
	assert.True(t, v.GetAttr("b").Equals(cty.NumberFloatVal(1.5)).True())
	assert.Equal(t, 4, v.GetAttr("a").LengthInt())

	_, err = toCty(struct{}{})
	assert.ErrorContains(t, err, "unsupported value")
}
