package dashboard

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opsdeck/opsdeck/internal/ui"
	"github.com/opsdeck/opsdeck/internal/ui/components"
)

// Update is the dashboard's message loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.modal, _ = m.modal.Update(msg)
		return m, nil

	case SnapshotLoadedMsg:
		m.snapshot = msg.Snapshot
		m.loadErr = nil
		m.refreshing = false
		m.rebuildTable()
		m.log.WithFields(map[string]any{"services": len(msg.Snapshot.Services)}).Debug("snapshot loaded")
		return m, nil

	case SnapshotErrorMsg:
		m.loadErr = msg.Err
		m.refreshing = false
		m.log.Error(msg.Err, "snapshot load failed")
		cmd := m.raiseNotice("Failed to refresh dashboard data", components.NotificationError)
		return m, cmd

	case RefreshTickMsg:
		if !m.refreshing {
			m.refreshing = true
			cmds = append(cmds, loadSnapshotCmd(m.source))
		}
		cmds = append(cmds, refreshTickCmd(m.refreshInterval()))
		return m, tea.Batch(cmds...)

	case DeleteRequestedMsg:
		m = m.openConfirmDelete(msg.ServiceID)
		return m, nil

	case DeleteConfirmedMsg:
		return m.deleteService(msg.ServiceID)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Animation and timer traffic.
	var cmd tea.Cmd
	m.loading, cmd = m.loading.Update(msg)
	cmds = append(cmds, cmd)
	if m.hasNotice {
		m.notice, cmd = m.notice.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// The filter field swallows everything except its release keys.
	if m.filterFieldFocused() {
		switch key {
		case "esc", "enter":
			m.filterField = m.filterField.Blur()
			m.filterFocused = false
			return m, nil
		default:
			var cmd tea.Cmd
			m.filterField, cmd = m.filterField.Update(msg)
			if m.filterField.Value() != m.filter {
				m.filter = m.filterField.Value()
				m.rebuildTable()
			}
			return m, cmd
		}
	}

	if m.ModalOpen() {
		return m.handleModalKey(msg)
	}

	switch key {
	case "q":
		return m, tea.Quit

	case "r":
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		m.log.Info("manual refresh requested")
		return m, loadSnapshotCmd(m.source)

	case "tab":
		if m.focus == focusTable {
			m.focus = focusPanels
		} else {
			m.focus = focusTable
		}
		m.rebuildTable()
		return m, nil

	case "/":
		var cmd tea.Cmd
		m.setPanelOpen("filters", true)
		m.filterField, cmd = m.filterField.Focus()
		m.filterFocused = true
		return m, cmd
	}

	if m.focus == focusPanels {
		return m.handlePanelKey(msg)
	}

	return m.handleTableKey(msg)
}

func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "v", "e", "d":
		return m.activateRowAction(msg.String())
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// activateRowAction maps a key to the row-action group of the hovered
// service and fires the matching control.
func (m Model) activateRowAction(key string) (tea.Model, tea.Cmd) {
	svc, ok := m.hoveredService()
	if !ok {
		return m, nil
	}

	var next tea.Msg
	var noticeCmd tea.Cmd

	actions := components.NewActionButtons().
		OnView(func() { m = m.openDetail(svc) }).
		OnEdit(func() {
			noticeCmd = m.raiseNotice(
				fmt.Sprintf("Editing %s is handled in the web console", svc.Name),
				components.NotificationInfo,
			)
		}).
		OnDelete(func() { next = DeleteRequestedMsg{ServiceID: svc.ID} })

	switch key {
	case "enter", "v":
		actions.Activate(components.ActionView)
	case "e":
		actions.Activate(components.ActionEdit)
	case "d":
		actions.Activate(components.ActionDelete)
	}

	if next != nil {
		return m, func() tea.Msg { return next }
	}
	return m, noticeCmd
}

func (m Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.panelCursor > 0 {
			m.panelCursor--
		}
		return m, nil
	case "down", "j":
		if m.panelCursor < len(m.panels)-1 {
			m.panelCursor++
		}
		return m, nil
	}

	// Route toggle keys through the panel itself.
	if m.panelCursor < len(m.panels) {
		state := m.panels[m.panelCursor]
		panel := m.buildPanel(state).Focus()
		panel, _ = panel.Update(msg)
		m.panels[m.panelCursor].open = panel.IsOpen()
	}
	return m, nil
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closeModal()
		return m, nil
	case "enter", "y":
		if m.modalKind == modalConfirmDelete && m.pendingDelete != "" {
			id := m.pendingDelete
			return m, func() tea.Msg { return DeleteConfirmedMsg{ServiceID: id} }
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ModalOpen() {
		closeRequested := false
		modal := m.modal.WithOnClose(func() { closeRequested = true })
		modal, _ = modal.Update(msg)
		m.modal = modal.WithOnClose(nil)
		if closeRequested {
			m = m.closeModal()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) filterFieldFocused() bool {
	return m.filterFocused
}

func (m Model) openDetail(svc Service) Model {
	badge := components.NewStatusBadge(svc.Status)
	avatar := components.NewAvatar(svc.Owner)
	contact := components.NewContactBlock(svc.Owner).WithEmail(svc.OwnerEmail)

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		badge.View(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, avatar.View(), " ", contact.View()),
		"",
		m.theme.Typography.Muted.Render("Region: "+svc.Region),
		m.theme.Typography.Muted.Render("Last deploy: "+formatDeployTime(svc.LastDeploy)),
	)

	m.modal = components.NewModal(svc.Name, ui.RenderableFunc(func() string { return body })).
		WithOpen(true).
		WithTheme(m.theme)
	m.modal, _ = m.modal.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.modalKind = modalDetail
	return m
}

func (m Model) openConfirmDelete(serviceID string) Model {
	name := serviceID
	for _, svc := range m.snapshot.Services {
		if svc.ID == serviceID {
			name = svc.Name
			break
		}
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		fmt.Sprintf("Remove %s from the fleet?", name),
		"",
		m.theme.Typography.Muted.Render("enter confirm · esc cancel"),
	)

	// Destructive confirmation: an accidental overlay click must not dismiss
	// the decision.
	m.modal = components.NewModal("Confirm removal", ui.RenderableFunc(func() string { return body })).
		WithOpen(true).
		WithSize(components.SizeSM).
		WithCloseOnOverlayClick(false).
		WithTheme(m.theme)
	m.modal, _ = m.modal.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.modalKind = modalConfirmDelete
	m.pendingDelete = serviceID
	return m
}

func (m Model) closeModal() Model {
	m.modal = m.modal.WithOpen(false)
	m.modalKind = modalNone
	m.pendingDelete = ""
	return m
}

func (m Model) deleteService(id string) (tea.Model, tea.Cmd) {
	kept := make([]Service, 0, len(m.snapshot.Services))
	removed := ""
	for _, svc := range m.snapshot.Services {
		if svc.ID == id {
			removed = svc.Name
			continue
		}
		kept = append(kept, svc)
	}
	m.snapshot.Services = kept
	m = m.closeModal()
	m.rebuildTable()

	if removed == "" {
		return m, nil
	}
	m.log.WithFields(map[string]any{"service": id}).Info("service removed")
	cmd := m.raiseNotice(fmt.Sprintf("%s removed", removed), components.NotificationSuccess)
	return m, cmd
}

func (m *Model) setPanelOpen(id string, open bool) {
	for i := range m.panels {
		if m.panels[i].id == id {
			m.panels[i].open = open
			return
		}
	}
}
