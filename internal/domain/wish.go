package domain

import (
	"encoding/json"
	"strings"
	"time"
	"unicode"
)

// Category tags what area of life a wish belongs to.
type Category string

// Known wish categories. CategoryOther is the catch-all default.
const (
	CategoryCareer   Category = "career"
	CategoryWealth   Category = "wealth"
	CategoryHealth   Category = "health"
	CategoryFamily   Category = "family"
	CategoryLove     Category = "love"
	CategoryStudy    Category = "study"
	CategoryTravel   Category = "travel"
	CategoryCreation Category = "creation"
	CategorySocial   Category = "social"
	CategoryGrowth   Category = "growth"
	CategoryFreedom  Category = "freedom"
	CategoryOther    Category = "other"
)

// DefaultIcon is the icon used for the catch-all category and for unknown tags.
const DefaultIcon = "fa-star"

// CategoryInfo describes a category for display.
type CategoryInfo struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Icon     string   `json:"icon"`
}

// categories is ordered; MatchCategory returns the first hit.
var categories = []CategoryInfo{
	{CategoryCareer, "事业", "fa-briefcase"},
	{CategoryWealth, "财富", "fa-coins"},
	{CategoryHealth, "健康", "fa-heart-pulse"},
	{CategoryFamily, "家庭", "fa-home"},
	{CategoryLove, "爱情", "fa-heart"},
	{CategoryStudy, "学习", "fa-graduation-cap"},
	{CategoryTravel, "旅行", "fa-plane"},
	{CategoryCreation, "创作", "fa-palette"},
	{CategorySocial, "社交", "fa-users"},
	{CategoryGrowth, "成长", "fa-seedling"},
	{CategoryFreedom, "自由", "fa-dove"},
	{CategoryOther, "其他", DefaultIcon},
}

// Categories returns every known category in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, info := range categories {
		if info.Category == c {
			return true
		}
	}
	return false
}

// Icon returns the icon reference for c.
func (c Category) Icon() string {
	key := c.Canonical()
	for _, info := range categories {
		if info.Category == key {
			return info.Icon
		}
	}
	return DefaultIcon
}

// ParseCategory resolves a category key or display label ("study" or "学习")
// to its key. It reports false for anything else.
func ParseCategory(s string) (Category, bool) {
	for _, info := range categories {
		if string(info.Category) == s || info.Label == s {
			return info.Category, true
		}
	}
	return Category(s), false
}

// Canonical returns the key for a category given by key or label. Unknown
// values are returned unchanged so Validate can reject them.
func (c Category) Canonical() Category {
	key, _ := ParseCategory(string(c))
	return key
}

// UnmarshalJSON accepts both keys and labels; documents written by earlier
// clients store the label.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = Category(s).Canonical()
	return nil
}

// MatchCategory guesses a category from free text. A label matches anywhere
// in the text; a category name only as a whole word. It returns
// CategoryOther when nothing matches.
func MatchCategory(text string) Category {
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		words[w] = true
	}
	for _, info := range categories {
		if info.Category == CategoryOther {
			continue
		}
		if words[string(info.Category)] || strings.Contains(text, info.Label) {
			return info.Category
		}
	}
	return CategoryOther
}

// Wish is a named goal inside a planet. FocusHours always equals the sum of
// the hours of the planet's focus records that reference the wish.
type Wish struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Category   Category `json:"type"`
	Icon       string   `json:"icon"`
	FocusHours float64  `json:"focusHours"`
	CreatedAt  Millis   `json:"createdAt"`
}

// Normalize fills the defaults of a wish being saved. id is used when the
// wish has no identifier yet.
func (w *Wish) Normalize(id string, now time.Time) {
	w.Text = strings.TrimSpace(w.Text)
	if w.ID == "" {
		w.ID = id
	}
	w.Category = w.Category.Canonical()
	if w.Category == "" {
		w.Category = CategoryOther
	}
	if w.Icon == "" {
		w.Icon = w.Category.Icon()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = MillisOf(now)
	}
}

// Validate checks a normalized wish.
func (w *Wish) Validate() error {
	if w.Text == "" {
		return ErrEmptyWishText
	}
	if !w.Category.Valid() {
		return ErrInvalidCategory
	}
	if w.FocusHours < 0 {
		return ErrInvalidHours
	}
	return nil
}

// WishPatch lists the wish fields a caller may change. Focus hours are not
// patchable; they only move through focus records.
type WishPatch struct {
	Text     *string   `json:"text,omitempty"`
	Category *Category `json:"type,omitempty"`
	Icon     *string   `json:"icon,omitempty"`
}

// Apply merges the patch into w. Changing the category without an explicit
// icon re-derives the icon.
func (p WishPatch) Apply(w *Wish) {
	if p.Text != nil {
		w.Text = strings.TrimSpace(*p.Text)
	}
	if p.Category != nil {
		w.Category = p.Category.Canonical()
		if p.Icon == nil {
			w.Icon = w.Category.Icon()
		}
	}
	if p.Icon != nil {
		w.Icon = *p.Icon
	}
}
