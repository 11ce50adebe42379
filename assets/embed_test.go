package assets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"level1_mask.png", "level1_mask.png"},
		{"assets/level1_mask.png", "level1_mask.png"},
		{"/home/dev/game/assets/level2_mask.png", "level2_mask.png"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			require.Equal(t, c.want, cleanAssetPath(c.in))
		})
	}
}

func TestLoadEmbeddedMasks(t *testing.T) {
	for _, name := range []string{"level1_mask.png", "level2_mask.png"} {
		img, err := LoadImage(name)
		require.NoError(t, err, name)
		require.Equal(t, 2560, img.Bounds().Dx())
		require.Equal(t, 754, img.Bounds().Dy())
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := LoadImage("missing.png")
	require.Error(t, err)
}
