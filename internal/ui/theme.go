package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ProtoSG/momentum-front/internal/game"
	"github.com/ProtoSG/momentum-front/internal/model"
)

// Momentum theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconMission = "🎯"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconHeart   = "❤️"
	IconFood    = "🍕"
	IconDragon  = "🐉"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconArchive = "📦"
	IconTrash   = "🗑️"
	IconRocket  = "🚀"
)

var (
	cPrimary = lipgloss.Color("51")  // cyan
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cPurple  = lipgloss.Color("135") // purple
)

var (
	Title  = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2     = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted  = lipgloss.NewStyle().Foreground(cMuted)
	Key    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good   = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn   = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad    = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold   = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Purple = lipgloss.NewStyle().Bold(true).Foreground(cPurple)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
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

func StatusText(status model.TaskStatus) string {
	switch status {
	case model.TaskStatusDone:
		return Good.Render("done")
	case model.TaskStatusTodo:
		return Warn.Render("pending")
	case model.TaskStatusArchived:
		return Muted.Render("archived")
	default:
		return Muted.Render(string(status))
	}
}

func PriorityText(p model.TaskPriority) string {
	switch p {
	case model.PriorityHigh:
		return Bad.Render("HIGH")
	case model.PriorityMedium:
		return Warn.Render("MEDIUM")
	case model.PriorityLow:
		return Good.Render("LOW")
	default:
		return Muted.Render(string(p))
	}
}

func MoodText(m game.Mood) string {
	switch m {
	case game.MoodHappy:
		return Good.Render("happy")
	case game.MoodSad:
		return Bad.Render("sad")
	default:
		return Warn.Render("neutral")
	}
}

// StatBar renders a fixed-width bar like "❤️ Health  [██████----] 60/100".
func StatBar(icon, label string, value, max, width int) string {
	if max <= 0 {
		max = 1
	}
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	filled := value * width / max
	bar := strings.Repeat("█", filled) + strings.Repeat("-", width-filled)
	return fmt.Sprintf("%s %-7s [%s] %d/%d", icon, label, bar, value, max)
}
