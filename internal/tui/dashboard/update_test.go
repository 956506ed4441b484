package dashboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestUpdateQuitKeys(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	for _, key := range []tea.Msg{keyMsg("q"), tea.KeyMsg{Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestUpdateSnapshotErrorRaisesNotification(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	m, cmd := step(t, m, SnapshotErrorMsg{Err: assert.AnError})

	require.NotNil(t, cmd)
	notice, ok := m.Notice()
	require.True(t, ok)
	assert.Contains(t, notice.View(), "Failed to refresh")
}

func TestUpdateRefreshKeyStartsLoad(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	m, cmd := step(t, m, keyMsg("r"))

	require.NotNil(t, cmd)
	assert.True(t, m.refreshing)

	// A second refresh while one is pending is ignored.
	_, cmd = step(t, m, keyMsg("r"))
	assert.Nil(t, cmd)
}

func TestUpdateRefreshTickReschedules(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.RefreshSeconds = 30
	m := NewModel(cfg, StaticSource{Data: testSnapshot()}, nil)

	m, cmd := step(t, m, RefreshTickMsg{})

	assert.True(t, m.refreshing)
	require.NotNil(t, cmd)
}

func TestUpdateTabSwitchesFocus(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	require.Equal(t, focusTable, m.focus)

	m, _ = step(t, m, keyMsg("tab"))
	assert.Equal(t, focusPanels, m.focus)

	m, _ = step(t, m, keyMsg("tab"))
	assert.Equal(t, focusTable, m.focus)
}

func TestUpdatePanelToggle(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	m, _ = step(t, m, keyMsg("tab"))
	require.True(t, m.PanelOpen("filters"))

	m, _ = step(t, m, keyMsg("enter"))
	assert.False(t, m.PanelOpen("filters"))

	m, _ = step(t, m, keyMsg("enter"))
	assert.True(t, m.PanelOpen("filters"))
}

func TestUpdateFilterFlow(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	m, _ = step(t, m, keyMsg("/"))
	require.True(t, m.filterFieldFocused())

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})

	assert.Equal(t, "api", m.Filter())
	require.Len(t, m.visibleServices(), 1)

	m, _ = step(t, m, keyMsg("esc"))
	assert.False(t, m.filterFieldFocused())

	// The filter itself survives the blur.
	assert.Equal(t, "api", m.Filter())
}

func TestUpdateDetailModalFromTable(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	m, _ = step(t, m, keyMsg("v"))

	require.True(t, m.ModalOpen())
	assert.Equal(t, modalDetail, m.modalKind)
	assert.Contains(t, m.View(), "batch-worker")

	m, _ = step(t, m, keyMsg("esc"))
	assert.False(t, m.ModalOpen())
}

func TestUpdateDeleteFlow(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	require.Len(t, m.snapshot.Services, 3)

	// "d" requests deletion of the hovered (most troubled) service.
	m, cmd := step(t, m, keyMsg("d"))
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())

	require.True(t, m.ModalOpen())
	assert.Equal(t, modalConfirmDelete, m.modalKind)
	assert.Equal(t, "svc-worker", m.pendingDelete)

	m, cmd = step(t, m, keyMsg("enter"))
	require.NotNil(t, cmd)
	m, noticeCmd := step(t, m, cmd())

	assert.False(t, m.ModalOpen())
	assert.Len(t, m.snapshot.Services, 2)
	require.NotNil(t, noticeCmd)

	notice, ok := m.Notice()
	require.True(t, ok)
	assert.Contains(t, notice.View(), "batch-worker removed")
}

func TestUpdateDeleteCancelledByEscape(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	m, cmd := step(t, m, keyMsg("d"))
	m, _ = step(t, m, cmd())
	require.True(t, m.ModalOpen())

	m, _ = step(t, m, keyMsg("esc"))

	assert.False(t, m.ModalOpen())
	assert.Len(t, m.snapshot.Services, 3)
	assert.Empty(t, m.pendingDelete)
}

func TestUpdateEditRaisesInfoNotification(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	m, cmd := step(t, m, keyMsg("e"))

	require.NotNil(t, cmd)
	notice, ok := m.Notice()
	require.True(t, ok)
	assert.Contains(t, notice.View(), "web console")
}

func TestUpdateWindowSize(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 50, m.height)
}

func TestUpdateMouseMovesTableHover(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	m, _ = step(t, m, tea.MouseMsg{Action: tea.MouseActionMotion, Y: 3})

	svc, ok := m.hoveredService()
	require.True(t, ok)
	assert.Equal(t, "api-gateway", svc.Name)
}
