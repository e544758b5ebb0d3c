// Package ansi provides ANSI escape sequences and palette presets.
// The palette values are derived from pkt.systems/pslog/ansi (MIT License).
// Only the token classes printed by prettyfmt are kept.
package ansi

// Base ANSI escape codes.
const (
	Reset      = "\x1b[0m"
	Bold       = "\x1b[1m"
	Faint      = "\x1b[90m"
	Green      = "\x1b[32m"
	Yellow     = "\x1b[33m"
	Magenta    = "\x1b[35m"
	Cyan       = "\x1b[36m"
	BrightBlue = "\x1b[1;34m"
)

// Palette assigns an escape sequence to each token class. An empty entry
// leaves that class unstyled.
type Palette struct {
	// Label colours type names such as Array, Uint8Array and Object.
	Label       string
	Key         string
	String      string
	Num         string
	Bool        string
	Nil         string
	Brackets    string
	Punctuation string
}

// PaletteJQDefault mirrors jq's default JQ_COLORS:
// 0;90:null, 0;39:false, 0;39:true, 0;39:numbers, 0;32:strings,
// 1;39:arrays, 1;39:objects, 1;34:keys.
var PaletteJQDefault = Palette{
	Label:       "\x1b[1;39m",
	Key:         "\x1b[1;34m",
	String:      "\x1b[0;32m",
	Num:         "\x1b[0;39m",
	Bool:        "\x1b[0;39m",
	Nil:         "\x1b[0;90m",
	Brackets:    "\x1b[1;39m",
	Punctuation: "\x1b[1;39m",
}

// PalettePrettyFormat follows the pretty-format highlight theme: tags cyan,
// props yellow, values green, content reset.
var PalettePrettyFormat = Palette{
	Label:  Cyan,
	Key:    Yellow,
	String: Green,
	Num:    Green,
	Bool:   Green,
	Nil:    Green,
}

// PaletteDefault is the pslog default (16-colour friendly).
var PaletteDefault = Palette{
	Label:       Cyan,
	Key:         Cyan,
	String:      BrightBlue,
	Num:         Magenta,
	Bool:        Yellow,
	Nil:         Faint,
	Brackets:    Faint,
	Punctuation: Faint,
}

// PaletteDoomNord channels doom-nord with cool glacier blues.
var PaletteDoomNord = Palette{
	Label:       "\x1b[38;5;110m",
	Key:         "\x1b[38;5;153m",
	String:      "\x1b[38;5;152m",
	Num:         "\x1b[38;5;109m",
	Bool:        "\x1b[38;5;115m",
	Nil:         "\x1b[38;5;245m",
	Brackets:    "\x1b[38;5;110m",
	Punctuation: "\x1b[38;5;245m",
}

// PaletteTokyoNight draws on Tokyo Night's neon blues, violets, and warm highlights.
var PaletteTokyoNight = Palette{
	Label:       "\x1b[38;5;74m",
	Key:         "\x1b[38;5;69m",
	String:      "\x1b[38;5;110m",
	Num:         "\x1b[38;5;176m",
	Bool:        "\x1b[38;5;117m",
	Nil:         "\x1b[38;5;244m",
	Brackets:    "\x1b[38;5;74m",
	Punctuation: "\x1b[38;5;244m",
}

// PaletteCatppuccinMocha recreates Catppuccin Mocha with soft pastels and rosewater highlights.
var PaletteCatppuccinMocha = Palette{
	Label:       "\x1b[38;5;182m",
	Key:         "\x1b[38;5;217m",
	String:      "\x1b[38;5;183m",
	Num:         "\x1b[38;5;147m",
	Bool:        "\x1b[38;5;152m",
	Nil:         "\x1b[38;5;244m",
	Brackets:    "\x1b[38;5;182m",
	Punctuation: "\x1b[38;5;244m",
}

// PaletteGruvboxLight is a Gruvbox light variant with warm browns and turquoise hints.
var PaletteGruvboxLight = Palette{
	Label:       "\x1b[38;5;136m",
	Key:         "\x1b[38;5;130m",
	String:      "\x1b[38;5;108m",
	Num:         "\x1b[38;5;66m",
	Bool:        "\x1b[38;5;142m",
	Nil:         "\x1b[38;5;180m",
	Brackets:    "\x1b[38;5;136m",
	Punctuation: "\x1b[38;5;180m",
}

// PaletteMonokaiVibrant supplies a Monokai-inspired mix of neon yellows and minty greens.
var PaletteMonokaiVibrant = Palette{
	Label:       "\x1b[38;5;141m",
	Key:         "\x1b[38;5;229m",
	String:      "\x1b[38;5;121m",
	Num:         "\x1b[38;5;198m",
	Bool:        "\x1b[38;5;118m",
	Nil:         "\x1b[38;5;59m",
	Brackets:    "\x1b[38;5;141m",
	Punctuation: "\x1b[38;5;59m",
}

// PaletteSynthwave84 channels synthwave aesthetics with glowing magentas, cyans, and gold accents.
var PaletteSynthwave84 = Palette{
	Label:       "\x1b[38;5;45m",
	Key:         "\x1b[38;5;198m",
	String:      "\x1b[38;5;51m",
	Num:         "\x1b[38;5;207m",
	Bool:        "\x1b[38;5;219m",
	Nil:         "\x1b[38;5;102m",
	Brackets:    "\x1b[38;5;45m",
	Punctuation: "\x1b[38;5;102m",
}
