package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusPair is the background/foreground pair resolved for a status
// variant.
type StatusPair struct {
	Background lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
}

var (
	statusGreen = StatusPair{
		Background: lipgloss.AdaptiveColor{Light: "#dcfce7", Dark: "#14532d"},
		Foreground: lipgloss.AdaptiveColor{Light: "#166534", Dark: "#bbf7d0"},
	}
	statusRed = StatusPair{
		Background: lipgloss.AdaptiveColor{Light: "#fee2e2", Dark: "#7f1d1d"},
		Foreground: lipgloss.AdaptiveColor{Light: "#991b1b", Dark: "#fecaca"},
	}
	statusAmber = StatusPair{
		Background: lipgloss.AdaptiveColor{Light: "#fef3c7", Dark: "#713f12"},
		Foreground: lipgloss.AdaptiveColor{Light: "#854d0e", Dark: "#fde68a"},
	}
	statusBlue = StatusPair{
		Background: lipgloss.AdaptiveColor{Light: "#dbeafe", Dark: "#1e3a8a"},
		Foreground: lipgloss.AdaptiveColor{Light: "#1e40af", Dark: "#bfdbfe"},
	}
	statusNeutral = StatusPair{
		Background: lipgloss.AdaptiveColor{Light: "#e2e8f0", Dark: "#334155"},
		Foreground: lipgloss.AdaptiveColor{Light: "#334155", Dark: "#e2e8f0"},
	}
)

// statusCategories maps normalized variant strings to their colour pair.
var statusCategories = map[string]StatusPair{
	"active":      statusGreen,
	"success":     statusGreen,
	"completed":   statusGreen,
	"inactive":    statusRed,
	"error":       statusRed,
	"cancelled":   statusRed,
	"pending":     statusAmber,
	"warning":     statusAmber,
	"in-progress": statusBlue,
	"info":        statusBlue,
}

// StatusColors resolves a status-variant string to its colour pair.
// Matching is case-insensitive; unmatched or empty variants resolve to the
// neutral pair. This lookup never fails.
func StatusColors(variant string) StatusPair {
	key := strings.ToLower(strings.TrimSpace(variant))
	if pair, ok := statusCategories[key]; ok {
		return pair
	}
	return statusNeutral
}
