package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ActionKind identifies one of the three row actions.
type ActionKind int

const (
	ActionView ActionKind = iota
	ActionEdit
	ActionDelete
)

// ActionButtons renders up to three row-action controls. Exactly one control
// appears per provided callback, always in view, edit, delete order; actions
// without a callback are omitted entirely. Each control exposes its tooltip
// text as both the visible title and the accessible label.
type ActionButtons struct {
	BaseComponent
	onView        func()
	onEdit        func()
	onDelete      func()
	viewTooltip   string
	editTooltip   string
	deleteTooltip string
	size          SizeVariant
}

// NewActionButtons creates an empty action group; attach callbacks with the
// On* builders.
func NewActionButtons() *ActionButtons {
	return &ActionButtons{BaseComponent: NewBaseComponent(), size: SizeMD}
}

// OnView attaches the view callback.
func (a *ActionButtons) OnView(fn func()) *ActionButtons {
	a.onView = fn
	return a
}

// OnEdit attaches the edit callback.
func (a *ActionButtons) OnEdit(fn func()) *ActionButtons {
	a.onEdit = fn
	return a
}

// OnDelete attaches the delete callback.
func (a *ActionButtons) OnDelete(fn func()) *ActionButtons {
	a.onDelete = fn
	return a
}

// WithTooltip overrides the tooltip for one action.
func (a *ActionButtons) WithTooltip(kind ActionKind, tooltip string) *ActionButtons {
	switch kind {
	case ActionView:
		a.viewTooltip = tooltip
	case ActionEdit:
		a.editTooltip = tooltip
	case ActionDelete:
		a.deleteTooltip = tooltip
	}
	return a
}

// WithSize sets the shared size variant.
func (a *ActionButtons) WithSize(size SizeVariant) *ActionButtons {
	a.size = size
	return a
}

type actionControl struct {
	kind    ActionKind
	glyph   string
	tooltip string
	slot    PaletteSlot
	fn      func()
}

// controls returns the provided actions in their fixed order.
func (a *ActionButtons) controls() []actionControl {
	var out []actionControl
	if a.onView != nil {
		out = append(out, actionControl{
			kind: ActionView, glyph: "👁", tooltip: tooltipOr(a.viewTooltip, "View"),
			slot: PaletteInfo, fn: a.onView,
		})
	}
	if a.onEdit != nil {
		out = append(out, actionControl{
			kind: ActionEdit, glyph: "✎", tooltip: tooltipOr(a.editTooltip, "Edit"),
			slot: PalettePrimary, fn: a.onEdit,
		})
	}
	if a.onDelete != nil {
		out = append(out, actionControl{
			kind: ActionDelete, glyph: "🗑", tooltip: tooltipOr(a.deleteTooltip, "Delete"),
			slot: PaletteDanger, fn: a.onDelete,
		})
	}
	return out
}

func tooltipOr(tooltip, fallback string) string {
	if tooltip != "" {
		return tooltip
	}
	return fallback
}

// Count returns the number of rendered controls.
func (a *ActionButtons) Count() int {
	return len(a.controls())
}

// Labels returns the accessible label of each rendered control, in order.
func (a *ActionButtons) Labels() []string {
	controls := a.controls()
	labels := make([]string, 0, len(controls))
	for _, c := range controls {
		labels = append(labels, c.tooltip)
	}
	return labels
}

// Activate invokes the callback for the given action if it was provided.
// It reports whether a callback fired.
func (a *ActionButtons) Activate(kind ActionKind) bool {
	for _, c := range a.controls() {
		if c.kind == kind {
			c.fn()
			return true
		}
	}
	return false
}

// View renders the action group with the shared theme.
func (a *ActionButtons) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the action group with the given context.
func (a *ActionButtons) ViewWithContext(ctx RenderContext) string {
	controls := a.controls()
	if len(controls) == 0 {
		return ""
	}

	attrs := ButtonSize(a.size)
	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		style := lipgloss.NewStyle().
			Foreground(c.slot(ctx.Theme.Palette).Base).
			Padding(0, attrs.PaddingX)
		parts = append(parts, style.Render(c.glyph+" "+c.tooltip))
	}

	return a.ComputeStyle(ctx.Theme).Render(strings.Join(parts, " "))
}
