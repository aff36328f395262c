package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledLevelsLoad(t *testing.T) {
	all, names, err := LoadAll()
	require.NoError(t, err)
	assert.Contains(t, names, Default)

	for _, name := range names {
		data := all[name]
		assert.NotEmpty(t, data.Tiles, name)
		assert.NotEmpty(t, data.Goals, name)
		assert.Greater(t, data.MapWidth, 0, name)
	}
}
