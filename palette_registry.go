package prettyfmt

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"

	"pkt.systems/prettyfmt/internal/ansi"
)

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

// ErrUnknownPalette is returned for a palette name missing from the registry.
var ErrUnknownPalette = errors.New("unknown palette")

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName: ansi.PalettePrettyFormat,
	"pretty-format":    ansi.PalettePrettyFormat,
	"jq":               ansi.PaletteJQDefault,
	"catppuccin-mocha": ansi.PaletteCatppuccinMocha,
	"doom-nord":        ansi.PaletteDoomNord,
	"gruvbox-light":    ansi.PaletteGruvboxLight,
	"monokai-vibrant":  ansi.PaletteMonokaiVibrant,
	"synthwave84":      ansi.PaletteSynthwave84,
	"tokyo-night":      ansi.PaletteTokyoNight,
	"classic":          ansi.PaletteDefault, // pslog classic
	"pslog":            ansi.PaletteDefault,
}

// ColorPalette holds the escape sequence written before each token class.
// The zero value disables colouring.
type ColorPalette struct {
	Label       string
	Key         string
	String      string
	Number      string
	Bool        string
	Null        string
	Brackets    string
	Punctuation string
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// resolvePalette returns the ColorPalette for the given options, defaulting to
// paletteDefaultName when opts.Palette is empty. The special palette name
// "none" disables colouring. If enableColor is false we return a no-color
// palette regardless of the selection (still validating the name).
func resolvePalette(opts *Options, enableColor bool) (ColorPalette, error) {
	name := paletteDefaultName
	if opts != nil && strings.TrimSpace(opts.Palette) != "" {
		name = strings.ToLower(strings.TrimSpace(opts.Palette))
	}

	if name == paletteNoneName {
		return NoColorPalette(), nil
	}

	ap, ok := paletteRegistry[name]
	if !ok {
		return ColorPalette{}, fmt.Errorf("%w %q (use one of: %s)", ErrUnknownPalette, name, strings.Join(PaletteNames(), ", "))
	}

	if !enableColor {
		return NoColorPalette(), nil
	}
	return colorPaletteFromAnsi(ap), nil
}

func colorPaletteFromAnsi(ap ansi.Palette) ColorPalette {
	label := ap.Label
	if label == "" {
		label = ap.Brackets
	}
	return ColorPalette{
		Label:       label,
		Key:         ap.Key,
		String:      ap.String,
		Number:      ap.Num,
		Bool:        ap.Bool,
		Null:        ap.Nil,
		Brackets:    ap.Brackets,
		Punctuation: ap.Punctuation,
	}
}

// NoColorPalette disables all styling while keeping the printer path shared.
func NoColorPalette() ColorPalette {
	return ColorPalette{}
}

type fdWriter interface {
	Fd() uintptr
}

// shouldColor enables colour for terminals, or always with ForceColor. The
// "none" palette wins over both.
func shouldColor(w io.Writer, opts *Options) bool {
	if opts != nil {
		if strings.EqualFold(strings.TrimSpace(opts.Palette), paletteNoneName) {
			return false
		}
		if opts.ForceColor {
			return true
		}
	}
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// style wraps s in the escape sequence seq. An empty seq returns s as is.
func style(seq, s string) string {
	if seq == "" {
		return s
	}
	return seq + s + ansi.Reset
}
