package tier

import "math"

// Tier is one achievement band. A tier contains hours h when
// MinHours <= h < MaxHours. The top tier is unbounded above.
type Tier struct {
	Level    int     `json:"level"`
	Name     string  `json:"name"`
	MinHours float64 `json:"minHours"`
	MaxHours float64 `json:"-"`
	Effect   string  `json:"effect"`
	Color    string  `json:"color"`
}

// Top is the level of the highest tier.
const Top = 4

// table is contiguous: every tier's MaxHours is the next tier's MinHours.
var table = [...]Tier{
	{Level: 0, Name: "Dormant", MinHours: 0, MaxHours: 10, Effect: "none", Color: "#8B9DC3"},
	{Level: 1, Name: "First Starlight", MinHours: 10, MaxHours: 30, Effect: "sparkle", Color: "#FFE4B5"},
	{Level: 2, Name: "Soft Glow", MinHours: 30, MaxHours: 60, Effect: "glow", Color: "#87CEEB"},
	{Level: 3, Name: "Golden Flow", MinHours: 60, MaxHours: 100, Effect: "golden-flow", Color: "#FFD700"},
	{Level: Top, Name: "Rainbow Diamond", MinHours: 100, MaxHours: math.Inf(1), Effect: "rainbow-diamond", Color: "#FF1493"},
}

// All returns every tier in ascending order.
func All() []Tier {
	out := make([]Tier, len(table))
	copy(out, table[:])
	return out
}

// For returns the tier whose range contains hours. Negative and NaN input
// falls back to tier 0.
func For(hours float64) Tier {
	for i := len(table) - 1; i >= 0; i-- {
		if hours >= table[i].MinHours && (hours < table[i].MaxHours || table[i].Level == Top) {
			return table[i]
		}
	}
	return table[0]
}

// Level is shorthand for For(hours).Level.
func Level(hours float64) int {
	return For(hours).Level
}

// Progress returns how far hours is through its tier toward the next one,
// as a percentage in [0,100]. The top tier is always 100.
func Progress(hours float64) float64 {
	t := For(hours)
	if t.Level == Top {
		return 100
	}
	p := (hours - t.MinHours) / (t.MaxHours - t.MinHours) * 100
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// HoursToNext returns the hours missing to reach the next tier, or 0 at the top tier.
func HoursToNext(hours float64) float64 {
	t := For(hours)
	if t.Level == Top {
		return 0
	}
	if math.IsNaN(hours) {
		return t.MaxHours
	}
	return t.MaxHours - hours
}

// Summary is the presentation view of a tier for a given hour count.
type Summary struct {
	Hours       float64 `json:"hours"`
	Tier        Tier    `json:"tier"`
	Progress    float64 `json:"progress"`
	HoursToNext float64 `json:"hoursToNext"`
}

// Describe bundles the tier, progress and remaining hours for hours.
func Describe(hours float64) Summary {
	return Summary{
		Hours:       hours,
		Tier:        For(hours),
		Progress:    Progress(hours),
		HoursToNext: HoursToNext(hours),
	}
}

// Crossed reports the tiers reached when accumulated hours move from before
// to after, in ascending order. It is empty when no boundary is crossed.
func Crossed(before, after float64) []Tier {
	from, to := Level(before), Level(after)
	if to <= from {
		return nil
	}
	out := make([]Tier, 0, to-from)
	for lvl := from + 1; lvl <= to; lvl++ {
		out = append(out, table[lvl])
	}
	return out
}
