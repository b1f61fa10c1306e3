package core

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an opaque 24-bit RGB colour used by draw instructions.
// It satisfies image/color.Color so window frontends can use it directly.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements image/color.Color. Alpha is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the colour as a "#rrggbb" string, the form lipgloss and YAML use.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseHexColor parses "#rrggbb" (the leading '#' is optional).
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("core: invalid colour %q: want #rrggbb", s)
	}
	var c Color
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}, fmt.Errorf("core: invalid colour %q: %w", s, err)
	}
	return c, nil
}

// UnmarshalYAML decodes a hex string scalar into a Color.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the colour as a hex string.
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}

// Palette names every colour the racer draws with.
type Palette struct {
	Grass    Color `yaml:"grass"`
	Road     Color `yaml:"road"`
	Divider  Color `yaml:"divider"`
	Car      Color `yaml:"car"`
	Obstacle Color `yaml:"obstacle"`
	Detail   Color `yaml:"detail"`
	HUD      Color `yaml:"hud"`
	Alert    Color `yaml:"alert"`
	Text     Color `yaml:"text"`
}

// DefaultPalette returns the classic colours: green grass, grey road,
// blue player car and red obstacles.
func DefaultPalette() Palette {
	return Palette{
		Grass:    RGB(0, 255, 0),
		Road:     RGB(128, 128, 128),
		Divider:  RGB(255, 255, 255),
		Car:      RGB(0, 0, 255),
		Obstacle: RGB(255, 0, 0),
		Detail:   RGB(0, 0, 0),
		HUD:      RGB(0, 0, 0),
		Alert:    RGB(255, 0, 0),
		Text:     RGB(255, 255, 255),
	}
}
