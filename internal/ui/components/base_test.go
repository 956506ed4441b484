package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestComputeStyleAppliesModifiersInOrder(t *testing.T) {
	t.Parallel()

	base := NewBaseComponent()
	base.SetAppliers(
		func(s lipgloss.Style, theme Theme) lipgloss.Style {
			return s.Foreground(theme.Palette.Primary.Base)
		},
		func(s lipgloss.Style, theme Theme) lipgloss.Style {
			return s.Foreground(theme.Palette.Danger.Base)
		},
	)

	theme := DefaultTheme()
	style := base.ComputeStyle(theme)

	assert.Equal(t, theme.Palette.Danger.Base, style.GetForeground())
}

func TestAddAppliersDoesNotAliasSharedChains(t *testing.T) {
	t.Parallel()

	bold := func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Bold(true) }
	faint := func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Faint(true) }
	italic := func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Italic(true) }

	shared := NewBaseComponent()
	shared.SetAppliers(bold)

	a := shared
	b := shared
	a.AddAppliers(faint)
	b.AddAppliers(italic)

	theme := DefaultTheme()
	assert.True(t, a.ComputeStyle(theme).GetFaint())
	assert.False(t, a.ComputeStyle(theme).GetItalic())
	assert.True(t, b.ComputeStyle(theme).GetItalic())
	assert.False(t, b.ComputeStyle(theme).GetFaint())
}

func TestRenderChildPrefersContext(t *testing.T) {
	t.Parallel()

	badge := NewStatusBadge("active")
	ctx := DefaultContext()

	assert.Equal(t, badge.ViewWithContext(ctx), renderChild(badge, ctx))
	assert.Empty(t, renderChild(nil, ctx))
}

func TestSpacingHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Spacing{Top: 2, Right: 2, Bottom: 2, Left: 2}, UniformSpacing(2))
	assert.Equal(t, Spacing{Top: 1, Right: 3, Bottom: 1, Left: 3}, SymmetricSpacing(1, 3))
	assert.True(t, Spacing{}.IsZero())
	assert.False(t, UniformSpacing(1).IsZero())
}

func TestSpacingApplyPadding(t *testing.T) {
	t.Parallel()

	padded := UniformSpacing(1).applyPadding(lipgloss.NewStyle()).Render("x")
	assert.Equal(t, 3, len(strings.Split(padded, "\n")))

	plain := Spacing{}.applyPadding(lipgloss.NewStyle()).Render("x")
	assert.Equal(t, "x", plain)
}

func TestNextIDIsUniquePerCall(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := nextID("widget")
		assert.False(t, seen[id])
		seen[id] = true
	}
}
