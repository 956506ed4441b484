package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusBadgeVariantDefaultsToStatusText(t *testing.T) {
	t.Parallel()

	badge := NewStatusBadge("Active")
	view := badge.View()

	assert.Contains(t, view, "Active")
	// Colours come from the status text itself when no variant is set.
	assert.Equal(t, "Active", badge.Status())
}

func TestStatusBadgeExplicitVariantDecouplesColours(t *testing.T) {
	t.Parallel()

	// Display text and colour category differ; the text still renders as-is.
	view := NewStatusBadge("42 failures").WithVariant("error").View()

	assert.Contains(t, view, "42 failures")
}

func TestStatusBadgeUnknownSizeRendersAsMedium(t *testing.T) {
	t.Parallel()

	medium := NewStatusBadge("pending").WithSize(SizeMD).View()
	unknown := NewStatusBadge("pending").WithSize("mega").View()

	assert.Equal(t, medium, unknown)
}

func TestStatusDotRendersMarker(t *testing.T) {
	t.Parallel()

	assert.Contains(t, StatusDot("active"), "●")
	assert.Contains(t, StatusDot("unheard-of"), "●")
}
