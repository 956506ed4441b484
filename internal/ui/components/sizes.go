package components

import "strings"

// SizeVariant enumerates the size tokens shared across the library.
// Components resolve a variant against their own attribute table; any value
// outside the table resolves to SizeMD.
type SizeVariant string

const (
	SizeSM SizeVariant = "sm"
	SizeMD SizeVariant = "md"
	SizeLG SizeVariant = "lg"
	SizeXL SizeVariant = "xl"
)

// sizeLookup resolves a variant against a table, falling back to SizeMD for
// unknown keys. Matching is case-insensitive.
func sizeLookup[T any](table map[SizeVariant]T, size SizeVariant) T {
	key := SizeVariant(strings.ToLower(strings.TrimSpace(string(size))))
	if attrs, ok := table[key]; ok {
		return attrs
	}
	return table[SizeMD]
}

// BadgeSizeAttrs holds the size-dependent attributes of a status badge.
type BadgeSizeAttrs struct {
	PaddingX int
	Bold     bool
}

var badgeSizes = map[SizeVariant]BadgeSizeAttrs{
	SizeSM: {PaddingX: 1, Bold: false},
	SizeMD: {PaddingX: 1, Bold: true},
	SizeLG: {PaddingX: 2, Bold: true},
}

// BadgeSize resolves badge attributes for a size variant.
func BadgeSize(size SizeVariant) BadgeSizeAttrs {
	return sizeLookup(badgeSizes, size)
}

// AvatarSizeAttrs holds the size-dependent attributes of an avatar frame.
type AvatarSizeAttrs struct {
	Frame    int
	IconSize int
}

var avatarSizes = map[SizeVariant]AvatarSizeAttrs{
	SizeSM: {Frame: 2, IconSize: 1},
	SizeMD: {Frame: 4, IconSize: 2},
	SizeLG: {Frame: 6, IconSize: 3},
}

// AvatarSize resolves avatar attributes for a size variant.
func AvatarSize(size SizeVariant) AvatarSizeAttrs {
	return sizeLookup(avatarSizes, size)
}

// ButtonSizeAttrs holds the size-dependent attributes of action and form
// buttons.
type ButtonSizeAttrs struct {
	PaddingX int
	PaddingY int
	IconSize int
}

var buttonSizes = map[SizeVariant]ButtonSizeAttrs{
	SizeSM: {PaddingX: 1, PaddingY: 0, IconSize: 1},
	SizeMD: {PaddingX: 2, PaddingY: 0, IconSize: 1},
	SizeLG: {PaddingX: 3, PaddingY: 1, IconSize: 2},
}

// ButtonSize resolves button attributes for a size variant.
func ButtonSize(size SizeVariant) ButtonSizeAttrs {
	return sizeLookup(buttonSizes, size)
}

// LoadingSizeAttrs holds the size-dependent attributes of the loading
// indicator.
type LoadingSizeAttrs struct {
	PaddingX int
	Label    bool
}

var loadingSizes = map[SizeVariant]LoadingSizeAttrs{
	SizeSM: {PaddingX: 0, Label: false},
	SizeMD: {PaddingX: 1, Label: true},
	SizeLG: {PaddingX: 2, Label: true},
}

// LoadingSize resolves loading-indicator attributes for a size variant.
func LoadingSize(size SizeVariant) LoadingSizeAttrs {
	return sizeLookup(loadingSizes, size)
}

// ContactSizeAttrs holds the size-dependent attributes of a contact block.
type ContactSizeAttrs struct {
	Gap      int
	NameBold bool
}

var contactSizes = map[SizeVariant]ContactSizeAttrs{
	SizeSM: {Gap: 0, NameBold: false},
	SizeMD: {Gap: 0, NameBold: true},
	SizeLG: {Gap: 1, NameBold: true},
}

// ContactSize resolves contact-block attributes for a size variant.
func ContactSize(size SizeVariant) ContactSizeAttrs {
	return sizeLookup(contactSizes, size)
}

// ModalWidths maps modal size variants to content-panel widths. An explicit
// width override on the modal takes precedence, and the resolved value is
// always capped against the viewport.
var ModalWidths = map[SizeVariant]int{
	SizeSM: 400,
	SizeMD: 500,
	SizeLG: 600,
	SizeXL: 800,
}

// ModalWidth resolves the content-panel width for a size variant.
func ModalWidth(size SizeVariant) int {
	return sizeLookup(ModalWidths, size)
}
