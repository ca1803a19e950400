package navigation

// Icon glyphs keyed by the icon names used in the catalogs. Unknown keys
// resolve to the default glyph rather than an error.
var icons = map[string]string{
	"globe":      "🌐",
	"map":        "🗺️",
	"pin":        "📍",
	"users":      "👥",
	"user":       "👤",
	"graduation": "🎓",
	"lock":       "🔒",
	"building":   "🏛️",
	"briefcase":  "💼",
	"list":       "📋",
	"id":         "🪪",
	"help":       "❓",
	"folder":     "📁",
	"clipboard":  "📝",
	"question":   "❔",
	"check":      "✅",
	"star":       "⭐",
	"news":       "📰",
	"quote":      "💬",
	"document":   "📄",
	"gear":       "⚙️",
	"chart":      "📊",
	"report":     "📈",
	"shield":     "🛡️",
	"download":   "⬇️",
	"info":       "ℹ️",
	"home":       "🏠",
}

const defaultIcon = "•"

// Icon resolves an icon key to its glyph, falling back to the default glyph
// on a miss.
func Icon(key string) string {
	if g, ok := icons[key]; ok {
		return g
	}
	return defaultIcon
}
