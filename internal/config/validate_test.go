package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validScene() *Scene {
	return &Scene{
		Families: []*FamilyDef{{Name: "Sensor", Aliases: []string{"sensors"}}},
		Root: &NodeSpec{
			Name:    "level",
			Class:   "Level",
			Context: &ContextSpec{LoggingName: "level"},
			Children: []*NodeSpec{{
				Name:               "player",
				Class:              "Player",
				Context:            &ContextSpec{ReMultiregister: []string{"Sensor"}},
				Registrations:      []*RegisterSpec{{Name: "reg"}},
				Multiregistrations: []*MultiregisterSpec{{Name: "as_sensor", Family: "Sensor"}},
			}},
		},
		Queries: []*QuerySpec{
			{Name: "sensors", Kind: QueryCollect, From: "level.player", Target: "Sensor"},
			{Name: "where", Kind: QueryNearest, From: "level.player"},
		},
		Detach: []string{"level.player"},
	}
}

func TestValidate_Accepts(t *testing.T) {
	require.NoError(t, validScene().Validate())
}

func TestValidate_Rejects(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(s *Scene)
		wantErr string
	}{
		{
			name:    "no root",
			mutate:  func(s *Scene) { s.Root = nil },
			wantErr: "scene has no root node",
		},
		{
			name: "sibling name clash",
			mutate: func(s *Scene) {
				s.Root.Children = append(s.Root.Children, &NodeSpec{Name: "player"})
			},
			wantErr: `child node "player" clashes with child node`,
		},
		{
			name: "helper clashes with child",
			mutate: func(s *Scene) {
				s.Root.Registrations = []*RegisterSpec{{Name: "player"}}
			},
			wantErr: `child node "player" clashes with register block`,
		},
		{
			name: "reserved carrier name",
			mutate: func(s *Scene) {
				s.Root.Children[0].Children = []*NodeSpec{{Name: ContextCarrierName}}
			},
			wantErr: "is reserved",
		},
		{
			name:    "bad node name",
			mutate:  func(s *Scene) { s.Root.Children[0].Name = "pla yer" },
			wantErr: "invalid node name",
		},
		{
			name:    "duplicate family",
			mutate:  func(s *Scene) { s.Families = append(s.Families, &FamilyDef{Name: "Sensor"}) },
			wantErr: `family "Sensor" declared twice`,
		},
		{
			name:    "lookup without target",
			mutate:  func(s *Scene) { s.Queries[0].Kind, s.Queries[0].Target = QueryLookup, "" },
			wantErr: "lookup needs a target",
		},
		{
			name:    "unknown kind",
			mutate:  func(s *Scene) { s.Queries[1].Kind = "find" },
			wantErr: `unknown kind "find"`,
		},
		{
			name:    "bad from",
			mutate:  func(s *Scene) { s.Queries[1].From = "level..player" },
			wantErr: "empty segment",
		},
		{
			name:    "duplicate query",
			mutate:  func(s *Scene) { s.Queries[1].Name = "sensors" },
			wantErr: `query "sensors" defined twice`,
		},
		{
			name:    "bad detach path",
			mutate:  func(s *Scene) { s.Detach = []string{""} },
			wantErr: "detach: path cannot be empty",
		},
		{
			name: "empty re_register type",
			mutate: func(s *Scene) {
				s.Root.Context.ReRegister = []KeySpec{{ID: "main"}}
			},
			wantErr: "re_register entry has an empty type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := validScene()
			tc.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestMerge(t *testing.T) {
	a := &Scene{Families: []*FamilyDef{{Name: "Sensor"}}, Queries: []*QuerySpec{{Name: "q1"}}}
	b := &Scene{Root: &NodeSpec{Name: "level"}, Queries: []*QuerySpec{{Name: "q2"}}, Detach: []string{"level.x"}}

	merged, err := Merge(a, nil, b)
	require.NoError(t, err)
	assert.Equal(t, "level", merged.Root.Name)
	assert.Len(t, merged.Families, 1)
	require.Len(t, merged.Queries, 2)
	assert.Equal(t, "q1", merged.Queries[0].Name)
	assert.Equal(t, []string{"level.x"}, merged.Detach)

	_, err = Merge(b, &Scene{Root: &NodeSpec{Name: "other"}})
	assert.ErrorContains(t, err, "more than one root node")
}

func TestNodeSpec_Walk(t *testing.T) {
	var paths []string
	validScene().Root.Walk(func(path []string, _ *NodeSpec) {
		paths = append(paths, path[len(path)-1])
	})
	assert.Equal(t, []string{"level", "player"}, paths)
}
