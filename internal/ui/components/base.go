package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opsdeck/opsdeck/internal/ui"
)

// BaseComponent provides common styling behavior for all components.
// Embed it in component structs to get theme-aware style composition.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle resolves the component style against the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style, theme)
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the theme-aware style modifiers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = appliers
}

// AddAppliers appends style modifiers, preserving existing ones. The slice is
// copied so shared components do not alias each other's modifier chains.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	merged := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(merged, b.appliers)
	b.appliers = append(merged, appliers...)
}

// RenderContext provides the theme and layout information to components
// during rendering. Passing it explicitly keeps rendering referentially
// transparent: the same component with the same context produces the same
// output.
type RenderContext struct {
	Theme       Theme
	MaxWidth    int
	ParentWidth int
}

// DefaultContext returns a render context with the shared theme and no
// width limits.
func DefaultContext() RenderContext {
	return RenderContext{Theme: SharedTheme()}
}

// WithTheme returns a new context carrying the given theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithMaxWidth returns a new context with a maximum content width.
func (r RenderContext) WithMaxWidth(width int) RenderContext {
	r.MaxWidth = width
	return r
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// renderChild renders a child with context when it supports it.
func renderChild(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// Spacing represents box spacing in clockwise order from the top.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing creates spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing creates spacing with separate vertical and horizontal values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero reports whether all spacing values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// apply sets the spacing on a style as padding.
func (s Spacing) applyPadding(style lipgloss.Style) lipgloss.Style {
	if s.IsZero() {
		return style
	}
	return style.Padding(s.Top, s.Right, s.Bottom, s.Left)
}

// applyMargin sets the spacing on a style as margin.
func (s Spacing) applyMargin(style lipgloss.Style) lipgloss.Style {
	if s.IsZero() {
		return style
	}
	return style.Margin(s.Top, s.Right, s.Bottom, s.Left)
}
