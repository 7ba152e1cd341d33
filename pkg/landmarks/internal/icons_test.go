package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizeMapPin(t *testing.T) {
	rgba, err := RasterizeSVG(MapPinIcon, 48, 48)
	require.NoError(t, err)
	assert.Equal(t, 48, rgba.Bounds().Dx())

	// The pin body covers the upper centre and leaves the corners clear.
	assert.NotZero(t, rgba.RGBAAt(24, 10).A)
	assert.Zero(t, rgba.RGBAAt(1, 1).A)
}

func TestRasterizePlaceholder(t *testing.T) {
	rgba, err := RasterizeSVG(PlaceholderImage, 320, 200)
	require.NoError(t, err)
	assert.NotZero(t, rgba.RGBAAt(160, 100).A)
}

func TestRasterizeErrors(t *testing.T) {
	_, err := RasterizeSVG(MapPinIcon, 0, 10)
	assert.Error(t, err)
}
