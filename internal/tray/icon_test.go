//go:build unit

package tray

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon(t *testing.T) {
	decode := func(data []byte) image.Image {
		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		return img
	}

	active := decode(Icon(true))
	inactive := decode(Icon(false))

	assert.Equal(t, image.Rect(0, 0, iconSize, iconSize), active.Bounds())
	assert.NotEqual(t, Icon(true), Icon(false))

	// The disc center is opaque in both variants.
	c := iconSize / 2
	_, _, _, a := active.At(c, c).RGBA()
	assert.NotZero(t, a)

	r, g, b, a := inactive.At(c, c).RGBA()
	assert.NotZero(t, a)
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)

	// Corners are transparent.
	_, _, _, a = active.At(0, 0).RGBA()
	assert.Zero(t, a)
}
