package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opsdeck/opsdeck/internal/ui"
)

// TableOptions controls the row-decoration pass. Striping and hover are
// independently toggleable and both default to enabled.
type TableOptions struct {
	Striped   bool
	Hoverable bool
}

// DefaultTableOptions returns the default decoration flags.
func DefaultTableOptions() TableOptions {
	return TableOptions{Striped: true, Hoverable: true}
}

// RowOverride carries caller-supplied presentation for a single row. On
// conflict with the decoration pass, the caller's attributes win.
type RowOverride struct {
	Background lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor
	Bold       bool
}

// stripeBackground is the alternate shade injected on even row indices.
var stripeBackground = lipgloss.AdaptiveColor{Light: "#f1f5f9", Dark: "#1e293b"}

// hoverBackground marks the row currently under the cursor.
var hoverBackground = lipgloss.AdaptiveColor{Light: "#dbeafe", Dark: "#1e40af"}

// DecorateRow computes the presentation for a row from its positional
// metadata. It is a pure function: row content is never touched, only a new
// style is returned. Even indices receive the alternate background when
// striping is enabled; the hovered row receives the hover affordance when
// hover is enabled; a caller override takes precedence over both.
func DecorateRow(index int, hovered bool, opts TableOptions, override *RowOverride) lipgloss.Style {
	style := lipgloss.NewStyle()

	if opts.Striped && index%2 == 0 {
		style = style.Background(stripeBackground)
	}
	if opts.Hoverable && hovered {
		style = style.Background(hoverBackground)
	}

	if override != nil {
		if override.Background != nil {
			style = style.Background(override.Background)
		}
		if override.Foreground != nil {
			style = style.Foreground(override.Foreground)
		}
		if override.Bold {
			style = style.Bold(true)
		}
	}

	return style
}

// Row is one ordered line of table cells, with optional caller-supplied
// presentation.
type Row struct {
	Cells    []string
	Override *RowOverride
}

// DataTable renders an ordered header sequence above decorated rows.
// Hover is real interaction state: the table is a bubbletea model whose
// hovered row follows key and mouse events, rather than a style rule that
// the terminal could never apply.
type DataTable struct {
	headers []string
	rows    []Row
	opts    TableOptions
	hovered int
	widths  []int
	theme   Theme
	focused bool
}

// NewDataTable creates a table from header labels and rows. Ragged rows are
// tolerated: rendering pads or truncates each row to the header count.
func NewDataTable(headers []string, rows []Row) DataTable {
	t := DataTable{
		headers: headers,
		rows:    compactRows(rows),
		opts:    DefaultTableOptions(),
		hovered: 0,
		theme:   SharedTheme(),
	}
	t.widths = t.columnWidths()
	return t
}

// compactRows drops absent and empty rows; they are skipped without error.
func compactRows(rows []Row) []Row {
	kept := make([]Row, 0, len(rows))
	for _, row := range rows {
		if len(row.Cells) == 0 {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

// WithOptions sets the decoration flags.
func (t DataTable) WithOptions(opts TableOptions) DataTable {
	t.opts = opts
	return t
}

// WithTheme sets the theme used for rendering.
func (t DataTable) WithTheme(theme Theme) DataTable {
	t.theme = theme
	return t
}

// Focus enables hover tracking from key events.
func (t DataTable) Focus() DataTable {
	t.focused = true
	return t
}

// Blur disables hover tracking.
func (t DataTable) Blur() DataTable {
	t.focused = false
	return t
}

// RowCount returns the number of rendered rows.
func (t DataTable) RowCount() int {
	return len(t.rows)
}

// Hovered returns the index of the row under the cursor, or -1 when hover
// is disabled or the table is empty.
func (t DataTable) Hovered() int {
	if !t.opts.Hoverable || len(t.rows) == 0 {
		return -1
	}
	return t.hovered
}

// Update moves the hover cursor in response to interaction events.
func (t DataTable) Update(msg tea.Msg) (DataTable, tea.Cmd) {
	if !t.opts.Hoverable || len(t.rows) == 0 {
		return t, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !t.focused {
			return t, nil
		}
		switch msg.String() {
		case "up", "k":
			if t.hovered > 0 {
				t.hovered--
			}
		case "down", "j":
			if t.hovered < len(t.rows)-1 {
				t.hovered++
			}
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion || msg.Action == tea.MouseActionPress {
			// Row zero renders directly under the single header line.
			row := msg.Y - 1
			if row >= 0 && row < len(t.rows) {
				t.hovered = row
			}
		}
	}

	return t, nil
}

// View renders the table.
func (t DataTable) View() string {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return ""
	}

	headerStyle := t.theme.Typography.Label
	lines := make([]string, 0, len(t.rows)+1)
	lines = append(lines, t.renderCells(t.headers, headerStyle))

	for i, row := range t.rows {
		style := DecorateRow(i, t.opts.Hoverable && i == t.hovered, t.opts, row.Override)
		lines = append(lines, t.renderCells(row.Cells, style))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderCells lays out one line of cells padded to the column widths. Rows
// shorter than the header sequence are padded with blanks; longer rows are
// truncated to the header count.
func (t DataTable) renderCells(cells []string, style lipgloss.Style) string {
	count := len(t.headers)
	if count == 0 {
		count = len(cells)
	}

	rendered := make([]string, 0, count)
	for col := 0; col < count; col++ {
		text := ""
		if col < len(cells) {
			text = cells[col]
		}
		width := 12
		if col < len(t.widths) {
			width = t.widths[col]
		}
		rendered = append(rendered, style.Width(width).Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// columnWidths sizes each column to its widest header or cell, plus one
// trailing space.
func (t DataTable) columnWidths() []int {
	count := len(t.headers)
	if count == 0 {
		return nil
	}

	widths := make([]int, count)
	for col, header := range t.headers {
		widths[col] = lipgloss.Width(header)
	}
	for _, row := range t.rows {
		for col := 0; col < count && col < len(row.Cells); col++ {
			if w := lipgloss.Width(row.Cells[col]); w > widths[col] {
				widths[col] = w
			}
		}
	}
	for col := range widths {
		widths[col] += 2
	}
	return widths
}

// TableContainer wraps a table in a titled, bordered panel.
type TableContainer struct {
	BaseComponent
	title string
	body  ui.Renderable
}

// NewTableContainer wraps the given body, typically a DataTable view.
func NewTableContainer(title string, body ui.Renderable) *TableContainer {
	return &TableContainer{
		BaseComponent: NewBaseComponent(),
		title:         title,
		body:          body,
	}
}

// View renders the container with the shared theme.
func (c *TableContainer) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container with the given context.
func (c *TableContainer) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	var sections []string
	if c.title != "" {
		sections = append(sections, theme.Typography.Title.Render(c.title))
	}
	if c.body != nil {
		sections = append(sections, renderChild(c.body, ctx))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return c.ComputeStyle(theme).
		Border(theme.Borders.Rounded).
		Padding(0, 1).
		Render(content)
}
