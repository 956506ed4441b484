package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeRunes(t *testing.T, f Field, text string) Field {
	t.Helper()
	for _, r := range text {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func TestNewFieldGeneratesDistinctIDs(t *testing.T) {
	t.Parallel()

	a := NewField("Name", FieldSingleLine)
	b := NewField("Name", FieldSingleLine)

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestFieldWithIDOverride(t *testing.T) {
	t.Parallel()

	f := NewField("Name", FieldSingleLine).WithID("pipeline-name")
	assert.Equal(t, "pipeline-name", f.ID())

	// An empty override keeps the generated identifier.
	f = NewField("Name", FieldSingleLine).WithID("")
	assert.NotEmpty(t, f.ID())
}

func TestFieldSingleLineReportsChanges(t *testing.T) {
	t.Parallel()

	var reported []string
	f := NewField("Name", FieldSingleLine).
		WithOnChange(func(v string) { reported = append(reported, v) })

	f, _ = f.Focus()
	f = typeRunes(t, f, "ok")

	assert.Equal(t, "ok", f.Value())
	assert.Equal(t, []string{"o", "ok"}, reported)
}

func TestFieldIgnoresInputWhileBlurred(t *testing.T) {
	t.Parallel()

	var changes int
	f := NewField("Name", FieldSingleLine).
		WithOnChange(func(string) { changes++ })

	f = typeRunes(t, f, "x")

	assert.Empty(t, f.Value())
	assert.Zero(t, changes)
}

func TestFieldControlledValueRoundTrip(t *testing.T) {
	t.Parallel()

	f := NewField("Name", FieldSingleLine).WithValue("api-server")

	assert.Equal(t, "api-server", f.Value())
	assert.Contains(t, f.View(), "api-server")
}

func TestFieldChoiceSelection(t *testing.T) {
	t.Parallel()

	var selected string
	f := NewField("Region", FieldChoice).
		WithOptions([]Option{
			{Value: "us-east", Label: "US East"},
			{Value: "eu-west", Label: "EU West"},
		}).
		WithOnChange(func(v string) { selected = v })

	f, _ = f.Focus()
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyDown})
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "eu-west", f.Value())
	assert.Equal(t, "eu-west", selected)
}

func TestFieldChoiceCursorStaysInBounds(t *testing.T) {
	t.Parallel()

	f := NewField("Region", FieldChoice).
		WithOptions([]Option{{Value: "only", Label: "Only"}})

	f, _ = f.Focus()
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyUp})
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyDown})
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "only", f.Value())
}

func TestFieldRequiredMarker(t *testing.T) {
	t.Parallel()

	required := NewField("Name", FieldSingleLine).WithRequired(true)
	optional := NewField("Name", FieldSingleLine)

	assert.Contains(t, required.View(), "*")
	assert.NotContains(t, optional.View(), "*")
}

func TestFieldErrorPresentation(t *testing.T) {
	t.Parallel()

	f := NewField("Name", FieldSingleLine).WithError("name is required")

	view := f.View()
	assert.Contains(t, view, "✗ name is required")

	require.NotEmpty(t, f.errorText)
	assert.Equal(t, f.theme.InputStyle(InputStateError), f.controlStyle(f.theme))
}

func TestFieldMultiLineValue(t *testing.T) {
	t.Parallel()

	f := NewField("Description", FieldMultiLine).WithValue("line one")

	assert.Equal(t, "line one", f.Value())
	assert.Contains(t, f.View(), "line one")
}
