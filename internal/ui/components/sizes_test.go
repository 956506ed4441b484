package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeLookupFallsBackToMedium(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size SizeVariant
	}{
		{"empty", ""},
		{"unknown", "jumbo"},
		{"xl where absent", SizeXL},
		{"garbage", "??"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, BadgeSize(SizeMD), BadgeSize(tt.size))
			assert.Equal(t, AvatarSize(SizeMD), AvatarSize(tt.size))
			assert.Equal(t, ButtonSize(SizeMD), ButtonSize(tt.size))
			assert.Equal(t, LoadingSize(SizeMD), LoadingSize(tt.size))
			assert.Equal(t, ContactSize(SizeMD), ContactSize(tt.size))
		})
	}
}

func TestSizeLookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, BadgeSize(SizeLG), BadgeSize("LG"))
	assert.Equal(t, AvatarSize(SizeSM), AvatarSize(" sm "))
}

func TestModalWidthTable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 400, ModalWidth(SizeSM))
	assert.Equal(t, 500, ModalWidth(SizeMD))
	assert.Equal(t, 600, ModalWidth(SizeLG))
	assert.Equal(t, 800, ModalWidth(SizeXL))
	assert.Equal(t, 500, ModalWidth("huge"))
}

func TestSizeTablesAreDistinctPerComponent(t *testing.T) {
	t.Parallel()

	// Each component carries its own three-entry table; small and large must
	// actually differ somewhere or the lookup is pointless.
	assert.NotEqual(t, ButtonSize(SizeSM), ButtonSize(SizeLG))
	assert.NotEqual(t, AvatarSize(SizeSM), AvatarSize(SizeLG))
}
