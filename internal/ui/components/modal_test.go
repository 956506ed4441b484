package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdeck/opsdeck/internal/ui"
)

func modalBody(text string) ui.Renderable {
	return ui.RenderableFunc(func() string { return text })
}

func sizedModal(t *testing.T, m Modal, width, height int) Modal {
	t.Helper()
	m, _ = m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func TestModalClosedRendersNothing(t *testing.T) {
	t.Parallel()

	m := NewModal("Confirm", modalBody("Delete pipeline?"))

	assert.False(t, m.IsOpen())
	assert.Empty(t, m.View())
}

func TestModalOpenRendersTitleAndContent(t *testing.T) {
	t.Parallel()

	m := NewModal("Confirm", modalBody("Delete pipeline?")).WithOpen(true)
	m = sizedModal(t, m, 1000, 40)

	view := m.View()
	assert.Contains(t, view, "Confirm")
	assert.Contains(t, view, "Delete pipeline?")
	assert.Contains(t, view, "×")
}

func TestModalWidthFromSizeTable(t *testing.T) {
	t.Parallel()

	m := NewModal("t", nil)
	m = sizedModal(t, m, 2000, 40)

	assert.Equal(t, 500, m.Width())
	assert.Equal(t, 400, m.WithSize(SizeSM).Width())
	assert.Equal(t, 800, m.WithSize(SizeXL).Width())
	assert.Equal(t, 500, m.WithSize("colossal").Width())
}

func TestModalWidthOverrideBeatsSize(t *testing.T) {
	t.Parallel()

	m := NewModal("t", nil).WithSize(SizeXL).WithWidth(300)
	m = sizedModal(t, m, 2000, 40)

	assert.Equal(t, 300, m.Width())
}

func TestModalWidthCappedByViewport(t *testing.T) {
	t.Parallel()

	m := NewModal("t", nil).WithSize(SizeXL)
	m = sizedModal(t, m, 80, 24)

	assert.Equal(t, 76, m.Width())
}

func TestModalEscapeCloses(t *testing.T) {
	t.Parallel()

	var closed int
	m := NewModal("t", nil).WithOpen(true).WithOnClose(func() { closed++ })

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 1, closed)
}

func TestModalOverlayClickGate(t *testing.T) {
	t.Parallel()

	press := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: x, Y: y}
	}

	t.Run("overlay click closes when the gate allows", func(t *testing.T) {
		t.Parallel()

		var closed int
		m := NewModal("t", modalBody("body")).
			WithOpen(true).
			WithOnClose(func() { closed++ })
		m = sizedModal(t, m, 1000, 40)

		m, _ = m.Update(press(0, 0))
		assert.Equal(t, 1, closed)
	})

	t.Run("click inside the content panel never closes", func(t *testing.T) {
		t.Parallel()

		var closed int
		m := NewModal("t", modalBody("body")).
			WithOpen(true).
			WithOnClose(func() { closed++ })
		m = sizedModal(t, m, 1000, 40)

		r := m.contentRect()
		require.Positive(t, r.w)
		m, _ = m.Update(press(r.x+1, r.y+1))
		assert.Zero(t, closed)
	})

	t.Run("overlay click is ignored when the gate is off", func(t *testing.T) {
		t.Parallel()

		var closed int
		m := NewModal("t", modalBody("body")).
			WithOpen(true).
			WithCloseOnOverlayClick(false).
			WithOnClose(func() { closed++ })
		m = sizedModal(t, m, 1000, 40)

		m, _ = m.Update(press(0, 0))
		assert.Zero(t, closed)
	})
}

func TestModalCloseAffordanceIgnoresGate(t *testing.T) {
	t.Parallel()

	var closed int
	m := NewModal("t", nil).
		WithOpen(true).
		WithCloseOnOverlayClick(false).
		WithOnClose(func() { closed++ })

	m.CloseAffordance()
	assert.Equal(t, 1, closed)
}

func TestModalCloseAffordanceNoopWhileClosed(t *testing.T) {
	t.Parallel()

	var closed int
	m := NewModal("t", nil).WithOnClose(func() { closed++ })

	m.CloseAffordance()
	assert.Zero(t, closed)
}
