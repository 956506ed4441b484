package dashboard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/opsdeck/opsdeck/internal/ui"
	"github.com/opsdeck/opsdeck/internal/ui/components"
)

// View composes the dashboard page. While the modal is open it takes over
// the whole viewport.
func (m Model) View() string {
	if m.ModalOpen() {
		return m.modal.View()
	}

	sections := []string{
		m.renderHeader(),
		"",
		m.renderStats(),
		"",
		m.renderTable(),
		"",
		m.renderPanels(),
		m.renderFooter(),
	}

	page := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if notice, ok := m.Notice(); ok {
		page = lipgloss.JoinVertical(lipgloss.Left, page, notice.Place(m.width, 3))
	}

	return page
}

func (m Model) renderHeader() string {
	ctx := m.renderContext()
	header := components.NewPageHeader(m.cfg.Title).
		WithSubtitle(fmt.Sprintf("%d services", len(m.snapshot.Services))).
		WithActions("q quit · r refresh · / filter · tab focus").
		WithWidth(m.width)
	return header.ViewWithContext(ctx)
}

func (m Model) renderStats() string {
	counts := m.snapshot.CountByStatus()
	healthy := counts["active"] + counts["success"] + counts["completed"]
	failing := counts["error"] + counts["inactive"] + counts["cancelled"]

	grid := components.NewStatGrid(
		components.NewStatCard("Services", fmt.Sprintf("%d", len(m.snapshot.Services))).
			WithIcon(components.GlyphIcon("🖥")),
		components.NewStatCard("Healthy", fmt.Sprintf("%d", healthy)).
			WithTrend(components.Trend{Direction: components.TrendUp}),
		components.NewStatCard("Failing", fmt.Sprintf("%d", failing)).
			WithTrend(components.Trend{Direction: trendForFailures(failing)}),
		components.NewStatCard("Deploys", fmt.Sprintf("%d", m.snapshot.Deploys)).
			WithSubtitle("last 24h"),
	)

	return grid.ViewWithContext(m.renderContext())
}

func trendForFailures(failing int) components.TrendDirection {
	if failing > 0 {
		return components.TrendDown
	}
	return components.TrendFlat
}

func (m Model) renderTable() string {
	ctx := m.renderContext()

	if m.refreshing && len(m.snapshot.Services) == 0 {
		return m.loading.View()
	}

	if len(m.visibleServices()) == 0 {
		empty := components.NewEmptyState("No services match").
			WithIcon(components.GlyphIcon("∅")).
			WithHint("press / to adjust the filter")
		return empty.ViewWithContext(ctx)
	}

	container := components.NewTableContainer("Services", m.table)
	return container.ViewWithContext(ctx)
}

// buildPanel materializes a collapsible panel from its stored toggle state.
func (m Model) buildPanel(state panelState) components.CollapsiblePanel {
	var content ui.Renderable
	if state.id == "filters" {
		content = ui.RenderableFunc(m.renderFilters)
	} else {
		title := state.title
		content = ui.RenderableFunc(func() string {
			return m.theme.Typography.Muted.Render(title + " has no entries yet")
		})
	}

	return components.NewCollapsiblePanel(state.title, content).
		WithOpen(state.open).
		WithTheme(m.theme)
}

func (m Model) renderPanels() string {
	if len(m.panels) == 0 {
		return ""
	}

	lines := make([]string, 0, len(m.panels))
	for i, state := range m.panels {
		panel := m.buildPanel(state)
		if m.focus == focusPanels && i == m.panelCursor {
			panel = panel.Focus()
		}
		lines = append(lines, panel.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderFilters() string {
	buttons := components.NewFormButtons(nil, nil).
		WithLabels("Reset", "Apply").
		WithSubmitVariant("primary").
		WithLoading(m.refreshing)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.filterField.View(),
		"",
		m.window.View(),
		"",
		buttons.ViewWithContext(m.renderContext()),
	)
}

func (m Model) renderFooter() string {
	if m.refreshing {
		return m.loading.View()
	}
	if m.loadErr != nil {
		return m.theme.Typography.Muted.Render("⚠ last refresh failed")
	}

	if svc, ok := m.hoveredService(); ok {
		actions := components.NewActionButtons().
			OnView(func() {}).
			OnEdit(func() {}).
			OnDelete(func() {}).
			WithTooltip(components.ActionView, "View "+svc.Name)
		return actions.ViewWithContext(m.renderContext())
	}
	return ""
}

func (m Model) renderContext() components.RenderContext {
	return components.DefaultContext().
		WithTheme(m.theme).
		WithMaxWidth(m.width)
}
