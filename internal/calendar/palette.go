package calendar

// DefaultPalette 实习生显示颜色调色板（彼此易区分的 20 种十六进制颜色）
var DefaultPalette = []string{
	"#3b82f6", // Blue
	"#ef4444", // Red
	"#10b981", // Emerald
	"#f59e0b", // Amber
	"#8b5cf6", // Violet
	"#06b6d4", // Cyan
	"#f97316", // Orange
	"#84cc16", // Lime
	"#ec4899", // Pink
	"#6366f1", // Indigo
	"#14b8a6", // Teal
	"#eab308", // Yellow
	"#a855f7", // Purple
	"#22c55e", // Green
	"#f43f5e", // Rose
	"#0ea5e9", // Sky
	"#d97706", // Amber-600
	"#7c3aed", // Violet-600
	"#dc2626", // Red-600
	"#059669", // Emerald-600
}

// NextColor 为新实习生挑选显示颜色：
// 按调色板顺序返回第一个未被占用的颜色；全部占用后按
// palette[len(used) % len(palette)] 循环复用。纯函数，不修改入参。
func NextColor(used []string, palette []string) string {
	if len(palette) == 0 {
		return ""
	}
	usedSet := make(map[string]struct{}, len(used))
	for _, c := range used {
		usedSet[c] = struct{}{}
	}
	for _, c := range palette {
		if _, ok := usedSet[c]; !ok {
			return c
		}
	}
	return palette[len(used)%len(palette)]
}
