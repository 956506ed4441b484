package components

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

const avatarFallback = "?"

// Avatar renders a circular-frame identity marker. Content resolution
// priority, first match wins: image reference, icon capability at half the
// frame size, first rune of the name upper-cased, then a fixed fallback.
type Avatar struct {
	BaseComponent
	src  string
	icon Icon
	name string
	size SizeVariant
}

// NewAvatar creates an avatar for the given display name.
func NewAvatar(name string) *Avatar {
	return &Avatar{
		BaseComponent: NewBaseComponent(),
		name:          name,
		size:          SizeMD,
	}
}

// WithImage sets an image reference. Terminal rendering represents the image
// by a picture glyph; the reference still wins the resolution priority.
func (a *Avatar) WithImage(src string) *Avatar {
	a.src = src
	return a
}

// WithIcon sets the icon capability.
func (a *Avatar) WithIcon(icon Icon) *Avatar {
	a.icon = icon
	return a
}

// WithSize sets the avatar size variant.
func (a *Avatar) WithSize(size SizeVariant) *Avatar {
	a.size = size
	return a
}

// WithAppliers applies theme-based style modifiers.
func (a *Avatar) WithAppliers(appliers ...StyleFunc) *Avatar {
	a.AddAppliers(appliers...)
	return a
}

// View renders the avatar with the shared theme.
func (a *Avatar) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the avatar with the given context.
func (a *Avatar) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	attrs := AvatarSize(a.size)

	content := a.resolveContent(theme, attrs)

	frame := a.ComputeStyle(theme).
		Border(theme.Borders.Rounded).
		BorderForeground(theme.Palette.Light.Muted).
		Width(attrs.Frame).
		Align(lipgloss.Center)

	return frame.Render(content)
}

func (a *Avatar) resolveContent(theme Theme, attrs AvatarSizeAttrs) string {
	if a.src != "" {
		return lipgloss.NewStyle().
			Foreground(theme.Palette.Secondary.Base).
			Render("🖼")
	}

	if a.icon != nil {
		// Icon renders at half the frame's linear dimension.
		if rendered := a.icon.Render(attrs.Frame/2, theme.Palette.Primary.Base); rendered != "" {
			return rendered
		}
	}

	initial := avatarFallback
	if trimmed := strings.TrimSpace(a.name); trimmed != "" {
		runes := []rune(trimmed)
		initial = string(unicode.ToUpper(runes[0]))
	}

	return lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Palette.Primary.Base).
		Render(initial)
}
