package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StatusBadge is a small label whose colours derive from a status-variant
// string. The variant lookup is case-insensitive and never fails; unmatched
// variants render with the neutral pair.
type StatusBadge struct {
	BaseComponent
	status  string
	variant string
	size    SizeVariant
}

// NewStatusBadge creates a badge displaying the given status text. The
// variant defaults to the status text itself.
func NewStatusBadge(status string) *StatusBadge {
	return &StatusBadge{
		BaseComponent: NewBaseComponent(),
		status:        status,
		size:          SizeMD,
	}
}

// WithVariant sets an explicit category string, decoupling the badge colours
// from its display text.
func (b *StatusBadge) WithVariant(variant string) *StatusBadge {
	b.variant = variant
	return b
}

// WithSize sets the badge size variant.
func (b *StatusBadge) WithSize(size SizeVariant) *StatusBadge {
	b.size = size
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *StatusBadge) WithAppliers(appliers ...StyleFunc) *StatusBadge {
	b.AddAppliers(appliers...)
	return b
}

// Status returns the badge display text.
func (b *StatusBadge) Status() string {
	return b.status
}

// View renders the badge with the shared theme.
func (b *StatusBadge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given context.
func (b *StatusBadge) ViewWithContext(ctx RenderContext) string {
	variant := b.variant
	if variant == "" {
		variant = b.status
	}
	pair := StatusColors(variant)
	attrs := BadgeSize(b.size)

	style := b.ComputeStyle(ctx.Theme).
		Background(pair.Background).
		Foreground(pair.Foreground).
		Padding(0, attrs.PaddingX).
		Bold(attrs.Bold)

	return style.Render(b.status)
}

// StatusDot renders a compact single-character status marker using the same
// category table as the badge.
func StatusDot(variant string) string {
	pair := StatusColors(variant)
	return lipgloss.NewStyle().Foreground(pair.Foreground).Render("●")
}
