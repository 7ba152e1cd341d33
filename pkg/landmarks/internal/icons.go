package internal

import (
	"bytes"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// MapPinIcon marks the map action.
const MapPinIcon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="#FFFFFF" d="M12 2C8.13 2 5 5.13 5 9c0 5.25 7 13 7 13s7-7.75 7-13c0-3.87-3.13-7-7-7zm0 9.5a2.5 2.5 0 1 1 0-5 2.5 2.5 0 0 1 0 5z"/>
</svg>`

// PlaceholderImage stands in for an attraction image that is missing from
// the assets directory.
const PlaceholderImage = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 160 100">
<rect x="0" y="0" width="160" height="100" rx="8" fill="#2A3038"/>
<circle cx="120" cy="28" r="10" fill="#5A6470"/>
<path fill="#5A6470" d="M10 90 L55 40 L85 70 L105 52 L150 90 Z"/>
</svg>`

// RasterizeSVG renders svg into a w x h RGBA image.
func RasterizeSVG(svg string, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("rasterize svg: invalid size %dx%d", w, h)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader([]byte(svg)))
	if err != nil {
		return nil, fmt.Errorf("rasterize svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	return rgba, nil
}

// SVGTexture rasterizes svg and uploads it as a texture.
func SVGTexture(renderer *sdl.Renderer, svg string, w, h int32) (*sdl.Texture, error) {
	rgba, err := RasterizeSVG(svg, int(w), int(h))
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]), w, h, 32, int32(rgba.Stride), sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, fmt.Errorf("svg surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("svg texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
