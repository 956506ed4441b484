package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ContactBlock displays a name with optional email and phone lines. Absent
// fields are omitted without error.
type ContactBlock struct {
	BaseComponent
	name  string
	email string
	phone string
	size  SizeVariant
}

// NewContactBlock creates a contact block for the given name.
func NewContactBlock(name string) *ContactBlock {
	return &ContactBlock{
		BaseComponent: NewBaseComponent(),
		name:          name,
		size:          SizeMD,
	}
}

// WithEmail sets the optional email line.
func (c *ContactBlock) WithEmail(email string) *ContactBlock {
	c.email = email
	return c
}

// WithPhone sets the optional phone line.
func (c *ContactBlock) WithPhone(phone string) *ContactBlock {
	c.phone = phone
	return c
}

// WithSize sets the contact block size variant.
func (c *ContactBlock) WithSize(size SizeVariant) *ContactBlock {
	c.size = size
	return c
}

// View renders the block with the shared theme.
func (c *ContactBlock) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the block with the given context.
func (c *ContactBlock) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	attrs := ContactSize(c.size)

	nameStyle := theme.Typography.Base
	if attrs.NameBold {
		nameStyle = theme.Typography.Label
	}

	lines := []string{nameStyle.Render(c.name)}
	if c.email != "" {
		lines = append(lines, theme.Typography.Muted.Render("✉ "+c.email))
	}
	if c.phone != "" {
		lines = append(lines, theme.Typography.Muted.Render("☎ "+c.phone))
	}

	if attrs.Gap > 0 {
		spaced := make([]string, 0, len(lines)*2)
		for i, line := range lines {
			if i > 0 {
				spaced = append(spaced, "")
			}
			spaced = append(spaced, line)
		}
		lines = spaced
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return c.ComputeStyle(theme).Render(content)
}
