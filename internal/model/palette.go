package model

// CategoryPalette is the fixed color palette for categories. Colors are
// enforced unique per sibling scope at creation time. The hex values are
// reproduced exactly for UI parity.
var CategoryPalette = []string{
	"#ef4444", // red
	"#f97316", // orange
	"#f59e0b", // amber
	"#eab308", // yellow
	"#84cc16", // lime
	"#22c55e", // green
	"#10b981", // emerald
	"#14b8a6", // teal
	"#06b6d4", // cyan
	"#0ea5e9", // sky
	"#3b82f6", // blue
	"#6366f1", // indigo
	"#8b5cf6", // violet
	"#a855f7", // purple
	"#d946ef", // fuchsia
	"#ec4899", // pink
	"#f43f5e", // rose
	"#78716c", // stone
	"#64748b", // slate
	"#71717a", // zinc
	"#0d9488", // teal darker
	"#059669", // emerald darker
	"#2563eb", // blue darker
	"#7c3aed", // violet darker
	"#c026d3", // fuchsia darker
}

// TagPalette is the fixed color palette for tags (one flat scope).
var TagPalette = []string{
	"#ef4444", "#f97316", "#f59e0b", "#eab308",
	"#84cc16", "#22c55e", "#10b981", "#14b8a6",
	"#06b6d4", "#0ea5e9", "#3b82f6", "#6366f1",
	"#8b5cf6", "#a855f7", "#d946ef", "#ec4899",
	"#f43f5e", "#64748b", "#78716c", "#0f172a",
}
