package ui

import (
	"os"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/sentimeter/internal/sentiment"
)

// Theme represents a color theme for the TUI
type Theme struct {
	Name string

	// Primary colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor

	// Sentiment colors
	Positive lipgloss.AdaptiveColor
	Negative lipgloss.AdaptiveColor
	Neutral  lipgloss.AdaptiveColor

	// UI colors
	Border   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Error    lipgloss.AdaptiveColor
	Progress lipgloss.AdaptiveColor
	Selected lipgloss.AdaptiveColor
}

// buildTheme creates a theme from [light, dark] pairs
func buildTheme(name string, primary, secondary, positive, negative, neutral, border, muted, errorColor, progress, selected [2]string) Theme {
	return Theme{
		Name:      name,
		Primary:   lipgloss.AdaptiveColor{Light: primary[0], Dark: primary[1]},
		Secondary: lipgloss.AdaptiveColor{Light: secondary[0], Dark: secondary[1]},
		Positive:  lipgloss.AdaptiveColor{Light: positive[0], Dark: positive[1]},
		Negative:  lipgloss.AdaptiveColor{Light: negative[0], Dark: negative[1]},
		Neutral:   lipgloss.AdaptiveColor{Light: neutral[0], Dark: neutral[1]},
		Border:    lipgloss.AdaptiveColor{Light: border[0], Dark: border[1]},
		Muted:     lipgloss.AdaptiveColor{Light: muted[0], Dark: muted[1]},
		Error:     lipgloss.AdaptiveColor{Light: errorColor[0], Dark: errorColor[1]},
		Progress:  lipgloss.AdaptiveColor{Light: progress[0], Dark: progress[1]},
		Selected:  lipgloss.AdaptiveColor{Light: selected[0], Dark: selected[1]},
	}
}

// Available themes
var (
	DefaultTheme = buildTheme("default",
		[2]string{"#1E40AF", "#3B82F6"}, [2]string{"#6B7280", "#9CA3AF"},
		[2]string{"#059669", "#10B981"}, [2]string{"#DC2626", "#EF4444"}, [2]string{"#4B5563", "#D1D5DB"},
		[2]string{"#D1D5DB", "#374151"}, [2]string{"#6B7280", "#9CA3AF"}, [2]string{"#DC2626", "#EF4444"},
		[2]string{"#7C3AED", "#A855F7"}, [2]string{"#DBEAFE", "#1E3A8A"})

	HighContrastTheme = buildTheme("high-contrast",
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#666666", "#BBBBBB"},
		[2]string{"#006600", "#00FF00"}, [2]string{"#CC0000", "#FF4444"}, [2]string{"#000000", "#FFFFFF"},
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#666666", "#BBBBBB"}, [2]string{"#CC0000", "#FF4444"},
		[2]string{"#000080", "#8080FF"}, [2]string{"#CCCCCC", "#333333"})

	MinimalTheme = buildTheme("minimal",
		[2]string{"#2D3748", "#E2E8F0"}, [2]string{"#718096", "#A0AEC0"},
		[2]string{"#2F855A", "#68D391"}, [2]string{"#C53030", "#FC8181"}, [2]string{"#4A5568", "#CBD5E0"},
		[2]string{"#E2E8F0", "#2D3748"}, [2]string{"#A0AEC0", "#718096"}, [2]string{"#C53030", "#FC8181"},
		[2]string{"#553C9A", "#B794F6"}, [2]string{"#EDF2F7", "#2D3748"})
)

// Current active theme
var currentTheme = DefaultTheme

var colorDisabled atomic.Bool

// GetTheme returns the current active theme
func GetTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme
func SetTheme(theme *Theme) {
	currentTheme = *theme
}

// SetThemeByName sets the theme by name
func SetThemeByName(name string) bool {
	switch name {
	case "default", "":
		SetTheme(&DefaultTheme)
		return true
	case "high-contrast":
		SetTheme(&HighContrastTheme)
		return true
	case "minimal":
		SetTheme(&MinimalTheme)
		return true
	default:
		return false
	}
}

// SetColorDisabled forces plain output regardless of NO_COLOR
func SetColorDisabled(disabled bool) {
	colorDisabled.Store(disabled)
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return colorDisabled.Load() || os.Getenv("NO_COLOR") != ""
}

// GetAvailableThemes returns list of available theme names
func GetAvailableThemes() []string {
	return []string{"default", "high-contrast", "minimal"}
}

// Styles contains all the styled components
type Styles struct {
	Theme Theme

	Title lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style

	Positive lipgloss.Style
	Negative lipgloss.Style
	Neutral  lipgloss.Style

	Progress lipgloss.Style

	// Panels
	Panel   lipgloss.Style
	Focused lipgloss.Style

	// List styles
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
}

// GetStyles builds styles from the current theme
func GetStyles() *Styles {
	theme := GetTheme()

	return &Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),

		Positive: lipgloss.NewStyle().
			Foreground(theme.Positive).
			Bold(true),

		Negative: lipgloss.NewStyle().
			Foreground(theme.Negative).
			Bold(true),

		Neutral: lipgloss.NewStyle().
			Foreground(theme.Neutral).
			Bold(true),

		Progress: lipgloss.NewStyle().
			Foreground(theme.Progress).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		ListItem: lipgloss.NewStyle().
			Padding(0, 1),

		ListSelected: lipgloss.NewStyle().
			Background(theme.Selected).
			Foreground(theme.Primary).
			Padding(0, 1).
			Bold(true),
	}
}

// ForCategory returns the score style of a sentiment category
func (s *Styles) ForCategory(category sentiment.Category) lipgloss.Style {
	switch category {
	case sentiment.CategoryPositive:
		return s.Positive
	case sentiment.CategoryNegative:
		return s.Negative
	default:
		return s.Neutral
	}
}
