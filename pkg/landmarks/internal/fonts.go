package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes for the three font tiers.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

var DefaultFontSizes = FontSizes{Large: 36, Medium: 28, Small: 22}

// Fonts holds the opened font tiers.
var Fonts struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
}

func initFonts(path string, sizes FontSizes) error {
	open := func(size int) (*ttf.Font, error) {
		font, err := ttf.OpenFont(path, size)
		if err != nil {
			return nil, fmt.Errorf("open font %s (%dpt): %w", path, size, err)
		}
		return font, nil
	}

	var err error
	if Fonts.LargeFont, err = open(sizes.Large); err != nil {
		return err
	}
	if Fonts.MediumFont, err = open(sizes.Medium); err != nil {
		return err
	}
	if Fonts.SmallFont, err = open(sizes.Small); err != nil {
		return err
	}
	return nil
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont = nil, nil, nil
}
