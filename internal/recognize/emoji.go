package recognize

// emojiTable is a static shortcode->glyph table. It covers the common
// subset any terminal Markdown note-taking tool needs; unknown
// shortcodes fall through to literal passthrough.
var emojiTable = map[string]string{
	"smile":        "\U0001F604",
	"grin":         "\U0001F601",
	"joy":          "\U0001F602",
	"heart":        "❤️",
	"thumbsup":     "\U0001F44D",
	"thumbsdown":   "\U0001F44E",
	"fire":         "\U0001F525",
	"rocket":       "\U0001F680",
	"tada":         "\U0001F389",
	"warning":      "⚠️",
	"check":        "✅",
	"x":            "❌",
	"star":         "⭐",
	"eyes":         "\U0001F440",
	"thinking":     "\U0001F914",
	"wave":         "\U0001F44B",
	"clap":         "\U0001F44F",
	"bug":          "\U0001F41B",
	"sparkles":     "✨",
	"100":          "\U0001F4AF",
	"pencil":       "✏️",
	"bulb":         "\U0001F4A1",
	"memo":         "\U0001F4DD",
	"bookmark":     "\U0001F516",
	"calendar":     "\U0001F4C5",
	"lock":         "\U0001F512",
	"unlock":       "\U0001F513",
	"package":      "\U0001F4E6",
	"zap":          "⚡",
	"question":     "❓",
	"exclamation":  "❗",
	"white_check_mark": "✅",
	"no_entry":     "⛔",
}

// LookupEmoji resolves a shortcode (without the surrounding ':') to its
// glyph. ok is false for unknown shortcodes.
func LookupEmoji(name string) (string, bool) {
	g, ok := emojiTable[name]
	return g, ok
}

// CheckEmoji accepts ":name:" where name consists of ASCII letters,
// digits, '_', or '-' and resolves in the shortcode table.
func CheckEmoji(s Source, pos int) (glyph string, nameStart, nameEnd, total int, ok bool) {
	if byteAt(s, pos) != ':' {
		return "", 0, 0, 0, false
	}
	i := pos + 1
	nameStart = i
	for i < s.Len() && (isAsciiAlnum(s.At(i)) || s.At(i) == '_' || s.At(i) == '-') {
		i++
	}
	if i == nameStart || byteAt(s, i) != ':' {
		return "", 0, 0, 0, false
	}
	nameEnd = i
	name := sliceString(s, nameStart, nameEnd)
	g, found := LookupEmoji(name)
	if !found {
		return "", 0, 0, 0, false
	}
	return g, nameStart, nameEnd, i + 1 - pos, true
}
