package rendering

import "github.com/jonathan/resume-builder/internal/types"

// Palette holds the shades a template draws an accent color in, as hex.
type Palette struct {
	Accent string // headings and highlights
	Deep   string // darker variant for dense layouts
	Bright string // header bands
	Soft   string // bars and secondary fills
	Tint   string // panel backgrounds
}

// PaletteFor returns the palette for c. Unknown colors get the blue palette.
func PaletteFor(c types.AccentColor) Palette {
	switch c {
	case types.AccentBlue:
		return Palette{Accent: "#2563eb", Deep: "#1d4ed8", Bright: "#3b82f6", Soft: "#60a5fa", Tint: "#eff6ff"}
	case types.AccentGreen:
		return Palette{Accent: "#16a34a", Deep: "#15803d", Bright: "#22c55e", Soft: "#4ade80", Tint: "#f0fdf4"}
	case types.AccentPurple:
		return Palette{Accent: "#9333ea", Deep: "#7e22ce", Bright: "#a855f7", Soft: "#c084fc", Tint: "#faf5ff"}
	case types.AccentRed:
		return Palette{Accent: "#dc2626", Deep: "#b91c1c", Bright: "#ef4444", Soft: "#f87171", Tint: "#fef2f2"}
	case types.AccentOrange:
		return Palette{Accent: "#ea580c", Deep: "#c2410c", Bright: "#f97316", Soft: "#fb923c", Tint: "#fff7ed"}
	case types.AccentTeal:
		return Palette{Accent: "#0d9488", Deep: "#0f766e", Bright: "#14b8a6", Soft: "#2dd4bf", Tint: "#f0fdfa"}
	case types.AccentGray:
		return Palette{Accent: "#374151", Deep: "#1f2937", Bright: "#4b5563", Soft: "#6b7280", Tint: "#f9fafb"}
	}
	return PaletteFor(types.AccentBlue)
}
