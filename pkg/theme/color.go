package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jason-kane/ttkwidgets/pkg/errors"
)

// Color options travel through the widget option maps as hex strings
// ("#rrggbb"), the spelling desktop toolkits use. The helpers here parse and
// derive related shades so themes only need to declare a base color.

// ParseColor parses a "#rrggbb" or "#rgb" hex color.
func ParseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, &errors.WidgetError{
			Op:   "theme.ParseColor",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("invalid color %q: %w", hex, err),
		}
	}
	return c, nil
}

// HoverShade derives a hover-state color from a base hex color by
// lightening it in Lab space. Returns the input unchanged if it does not
// parse.
func HoverShade(hex string) string {
	c, err := ParseColor(hex)
	if err != nil {
		return hex
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return c.BlendLab(white, 0.3).Clamped().Hex()
}

// VisitedShade derives a visited-link color from a base hex color by
// blending it toward purple in Lab space. Returns the input unchanged if it
// does not parse.
func VisitedShade(hex string) string {
	c, err := ParseColor(hex)
	if err != nil {
		return hex
	}
	purple, _ := colorful.Hex("#954f72")
	return c.BlendLab(purple, 0.7).Clamped().Hex()
}
