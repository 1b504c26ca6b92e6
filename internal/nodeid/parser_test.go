package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expectErr bool
		expected  Path
	}{
		{
			name:     "simple path",
			raw:      "world.level.hud",
			expected: Path{Segments: []string{"world", "level", "hud"}},
		},
		{
			name:     "single root",
			raw:      "world",
			expected: Path{Segments: []string{"world"}},
		},
		{
			name:     "names with dashes and underscores",
			raw:      "main-scene.player_1",
			expected: Path{Segments: []string{"main-scene", "player_1"}},
		},
		{
			name:      "error - empty path segment",
			raw:       "a..b",
			expectErr: true,
		},
		{
			name:      "error - invalid characters",
			raw:       "a.b[0]",
			expectErr: true,
		},
		{
			name:      "error - empty string",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "error - reserved name",
			raw:       "a.-.c",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Parse(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p)
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("bad..path") })
	assert.NotPanics(t, func() { MustParse("ok.path") })
}
