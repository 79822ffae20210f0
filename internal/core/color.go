package core

import (
	"fmt"
	"image/color"
	"strings"
)

// Color represents a foreground color for a screen cell or a drawn shape.
// Terminal front-ends map it to ANSI 256-color codes, window front-ends to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorPurple
	ColorLightGray
)

var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright_red",
	ColorBrightGreen:   "bright_green",
	ColorBrightYellow:  "bright_yellow",
	ColorBrightBlue:    "bright_blue",
	ColorBrightMagenta: "bright_magenta",
	ColorBrightCyan:    "bright_cyan",
	ColorBrightWhite:   "bright_white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
	ColorPink:          "pink",
	ColorPurple:        "purple",
	ColorLightGray:     "light_gray",
}

// rgba values follow the raylib palette.
var colorRGBA = map[Color]color.RGBA{
	ColorDefault:       {245, 245, 245, 255},
	ColorRed:           {230, 41, 55, 255},
	ColorGreen:         {0, 228, 48, 255},
	ColorYellow:        {253, 249, 0, 255},
	ColorBlue:          {0, 121, 241, 255},
	ColorMagenta:       {255, 0, 255, 255},
	ColorCyan:          {0, 200, 200, 255},
	ColorWhite:         {255, 255, 255, 255},
	ColorBrightRed:     {255, 90, 90, 255},
	ColorBrightGreen:   {120, 255, 120, 255},
	ColorBrightYellow:  {255, 255, 120, 255},
	ColorBrightBlue:    {102, 191, 255, 255},
	ColorBrightMagenta: {255, 120, 255, 255},
	ColorBrightCyan:    {120, 255, 255, 255},
	ColorBrightWhite:   {255, 255, 255, 255},
	ColorOrange:        {255, 161, 0, 255},
	ColorGray:          {130, 130, 130, 255},
	ColorPink:          {255, 109, 194, 255},
	ColorPurple:        {200, 122, 255, 255},
	ColorLightGray:     {200, 200, 200, 255},
}

// String returns the configuration name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// RGBA returns the color for pixel-based renderers.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := colorRGBA[c]; ok {
		return rgba
	}
	return colorRGBA[ColorDefault]
}

// ParseColor looks up a color by its configuration name (case-insensitive).
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == key {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}
