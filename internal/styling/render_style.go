package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog/log"
)

// DrawStyling is what panes hand to a renderer: a pair of colors plus font
// attributes, with derived variants for emphasis and for the blur overlay.
type DrawStyling interface {
	AsTcell() tcell.Style

	DefaultDimmed() DrawStyling
	DefaultEmphasized() DrawStyling
	DarkenedBG(percentage int) DrawStyling

	Italicized() DrawStyling
	Bolded() DrawStyling

	// Blurred pulls both colors towards the backdrop's background.
	Blurred(backdrop DrawStyling, percentage int) DrawStyling
	Inverted() DrawStyling
}

// Style is the renderer-independent DrawStyling.
// Derivations never modify the receiver.
type Style struct {
	fg, bg colorful.Color
	attrs  tcell.AttrMask
}

var invalidColor = colorful.Color{R: 1, G: 0, B: 1}

// StyleFromHex builds a style from '#rrggbb' or '#rgb' strings. Unparsable
// colors are logged and rendered magenta.
func StyleFromHex(fg, bg string) *Style {
	return &Style{fg: parseHex(fg), bg: parseHex(bg)}
}

// StyleFromColors builds a style from colors directly.
func StyleFromColors(fg, bg colorful.Color) *Style {
	return &Style{fg: fg, bg: bg}
}

func parseHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		log.Error().Err(err).Str("hex", hex).Msg("invalid color, using magenta")
		return invalidColor
	}
	return c
}

func (s *Style) derive(change func(*Style)) DrawStyling {
	d := *s
	change(&d)
	return &d
}

// AsTcell converts the style for the tcell renderer.
func (s *Style) AsTcell() tcell.Style {
	return tcell.StyleDefault.
		Foreground(toTcell(s.fg)).
		Background(toTcell(s.bg)).
		Attributes(s.attrs)
}

// DefaultDimmed lightens both colors halfway to white.
func (s *Style) DefaultDimmed() DrawStyling {
	return s.derive(func(d *Style) {
		d.fg, d.bg = shade(d.fg, 50), shade(d.bg, 50)
	})
}

// DefaultEmphasized darkens both colors by a fifth.
func (s *Style) DefaultEmphasized() DrawStyling {
	return s.derive(func(d *Style) {
		d.fg, d.bg = shade(d.fg, -20), shade(d.bg, -20)
	})
}

func (s *Style) DarkenedBG(percentage int) DrawStyling {
	return s.derive(func(d *Style) { d.bg = shade(d.bg, -percentage) })
}

func (s *Style) Italicized() DrawStyling {
	return s.derive(func(d *Style) { d.attrs |= tcell.AttrItalic })
}

func (s *Style) Bolded() DrawStyling {
	return s.derive(func(d *Style) { d.attrs |= tcell.AttrBold })
}

// Blurred blends both colors towards the backdrop's background. A backdrop of
// a foreign DrawStyling implementation degrades to DefaultDimmed.
func (s *Style) Blurred(backdrop DrawStyling, percentage int) DrawStyling {
	b, ok := backdrop.(*Style)
	if !ok {
		return s.DefaultDimmed()
	}
	t := float64(percentage) / 100.0
	return s.derive(func(d *Style) {
		d.fg = d.fg.BlendRgb(b.bg, t)
		d.bg = d.bg.BlendRgb(b.bg, t)
	})
}

func (s *Style) Inverted() DrawStyling {
	return s.derive(func(d *Style) { d.fg, d.bg = d.bg, d.fg })
}

func (s *Style) String() string {
	return fmt.Sprintf("%s on %s (attrs %d)", s.fg.Hex(), s.bg.Hex(), s.attrs)
}

// shade moves a color's HSL lightness towards white for positive percentages
// and towards black for negative ones.
func shade(c colorful.Color, percentage int) colorful.Color {
	h, sat, l := c.Hsl()
	f := float64(percentage) / 100.0
	if f >= 0 {
		l += (1.0 - l) * f
	} else {
		l += l * f
	}
	return colorful.Hsl(h, sat, l)
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
