package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opsdeck/opsdeck/internal/ui"
)

// Container is a generic box holding children with border, padding, and
// margin. It is the foundation for the table container, panels, and the
// page shell.
type Container struct {
	BaseComponent
	children []ui.Renderable
	border   BorderVariant
	padding  Spacing
	margin   Spacing
	gap      int
	width    int
}

// NewContainer creates a container around the given children.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		children:      children,
		padding:       UniformSpacing(1),
	}
}

// View renders the container with the shared theme.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container and its children.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(c.children))
	for _, child := range c.children {
		if child == nil {
			continue
		}
		view := renderChild(child, ctx)
		views = append(views, view)
		for i := 0; i < c.gap; i++ {
			views = append(views, "")
		}
	}
	if c.gap > 0 && len(views) >= c.gap {
		views = views[:len(views)-c.gap]
	}
	content := lipgloss.JoinVertical(lipgloss.Left, views...)

	style := c.ComputeStyle(ctx.Theme)
	if c.border != BorderVariantNone {
		style = style.Border(ctx.Theme.Borders.ForVariant(c.border))
	}
	style = c.padding.applyPadding(style)
	style = c.margin.applyMargin(style)
	if c.width > 0 {
		style = style.Width(c.width)
	} else if ctx.MaxWidth > 0 {
		style = style.MaxWidth(ctx.MaxWidth)
	}

	return style.Render(content)
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.children = append(c.children, children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.children
}

// WithBorder sets the border variant.
func (c *Container) WithBorder(border BorderVariant) *Container {
	c.border = border
	return c
}

// WithPadding sets the padding.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithMargin sets the margin.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithGap sets the number of blank lines between children.
func (c *Container) WithGap(gap int) *Container {
	if gap >= 0 {
		c.gap = gap
	}
	return c
}

// WithWidth sets a fixed width.
func (c *Container) WithWidth(width int) *Container {
	c.width = width
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}
