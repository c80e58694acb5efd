package icon

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	imgs := Generate()
	require.Len(t, imgs, 2)
	assert.Equal(t, image.Rect(0, 0, 64, 64), imgs[0].Bounds())
	assert.Equal(t, image.Rect(0, 0, 32, 32), imgs[1].Bounds())

	// corner stays background, the highlighted section is drawn
	rgba := imgs[0].(*image.RGBA)
	assert.Equal(t, background, rgba.RGBAAt(0, 0))
	assert.NotEqual(t, background, rgba.RGBAAt(53, 24))
}
