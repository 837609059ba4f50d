// Package ui holds the terminal styles of the focushours CLI.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/visionfocus/focushours/internal/domain/tier"
)

const (
	IconPlanet    = "🪐"
	IconStar      = "✨"
	IconHourglass = "⏳"
	IconWish      = "🌠"
	IconBoard     = "🖼️"
	IconDone      = "✅"
	IconOpen      = "⬜"
	IconTrophy    = "🏆"
	IconWarn      = "⚠️"
	IconError     = "🧨"
	IconBox       = "📦"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)

	BadgeTierUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("TIER UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// TierBadge renders a tier name in the tier's own color.
func TierBadge(t tier.Tier) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Color)).
		Render(fmt.Sprintf("T%d %s", t.Level, t.Name))
}

// ProgressBar renders percent in [0,100] as a bar of width cells.
func ProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	switch {
	case percent != percent || percent < 0:
		percent = 0
	case percent > 100:
		percent = 100
	}
	filled := int(percent / 100 * float64(width))
	return Good.Render(strings.Repeat("█", filled)) +
		Muted.Render(strings.Repeat("░", width-filled)) +
		Muted.Render(fmt.Sprintf(" %3.0f%%", percent))
}

// Milestone renders a milestone line with its completion state.
func Milestone(name string, done bool) string {
	if done {
		return IconDone + " " + Good.Render(name)
	}
	return IconOpen + " " + Muted.Render(name)
}

// Hours formats an hour count without trailing zeros.
func Hours(h float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", h), "0"), ".")
	return s + "h"
}
