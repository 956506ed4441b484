package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic color set with base, on-base, muted, and
// contrast colors.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by every component in the
// library. Slot names mirror the dashboard design tokens.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Success   ColourSet
	Danger    ColourSet
	Warning   ColourSet
	Info      ColourSet
	Light     ColourSet
	Dark      ColourSet
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteLight     PaletteSlot = func(p Palette) ColourSet { return p.Light }
	PaletteDark      PaletteSlot = func(p Palette) ColourSet { return p.Dark }
)

// SlotForName resolves a colour-category string ("primary", "danger", ...)
// to a palette slot. Unknown names resolve to the primary slot.
func SlotForName(name string) PaletteSlot {
	switch name {
	case "secondary":
		return PaletteSecondary
	case "success":
		return PaletteSuccess
	case "danger", "error":
		return PaletteDanger
	case "warning":
		return PaletteWarning
	case "info":
		return PaletteInfo
	case "light":
		return PaletteLight
	case "dark":
		return PaletteDark
	default:
		return PalettePrimary
	}
}

// SpacingSize enumerates the spacing scale tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// RadiusVariant enumerates the corner-radius tokens. In terminal rendering a
// radius resolves to a border shape rather than a pixel value.
type RadiusVariant int

const (
	RadiusVariantSmall RadiusVariant = iota
	RadiusVariantMedium
	RadiusVariantLarge
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// BorderVariant enumerates border styles usable by components.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantLabel
	TypographyVariantEmphasis
	TypographyVariantMuted
)

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Label    lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// InputState distinguishes resting and focused input controls.
type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateError
)

// InputStyles describes default/focus/error styles for input controls.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
	Error   lipgloss.Style
}

// Theme represents an immutable styling theme for components. Themes are
// value types; modification operations return new instances.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
}

// Normalize returns a new theme with zero-valued fields replaced by defaults,
// so partially-specified themes still resolve every token.
func (t Theme) Normalize() Theme {
	if spacingTableIsZero(t.Spacing.Padding) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(t.Spacing.Margin) {
		t.Spacing.Margin = defaultSpacingTable()
	}
	return t
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:   0,
		SpacingSizeSmall:  1,
		SpacingSizeMedium: 2,
		SpacingSizeLarge:  4,
	}
}

// DefaultTheme returns the default dashboard theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Light: ColourSet{
			Base:     ac("#f9fafb", "#e5e7eb"),
			OnBase:   ac("#111827", "#111827"),
			Muted:    ac("#e2e8f0", "#cbd5e1"),
			Contrast: ac("#3b82f6", "#2563eb"),
		},
		Dark: ColourSet{
			Base:     ac("#111827", "#0b1120"),
			OnBase:   ac("#f9fafb", "#e5e7eb"),
			Muted:    ac("#1f2937", "#111827"),
			Contrast: ac("#60a5fa", "#60a5fa"),
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	typography := defaultTypography(palette)

	spacing := SpacingConfig{
		Padding: defaultSpacingTable(),
		Margin:  defaultSpacingTable(),
	}

	input := InputStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Light.Muted).
			Padding(0, 1).
			Foreground(palette.Light.OnBase),
		Focus: lipgloss.NewStyle().
			BorderStyle(borders.Thick).
			BorderForeground(palette.Primary.Base).
			Padding(0, 1).
			Foreground(palette.Light.OnBase),
		Error: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Danger.Base).
			Padding(0, 1).
			Foreground(palette.Light.OnBase),
	}

	theme := Theme{
		Palette:    palette,
		Borders:    borders,
		Spacing:    spacing,
		Typography: typography,
		Input:      input,
	}

	return theme.Normalize()
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Light.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Faint(true),
		Body:     base,
		Label:    base.Bold(true),
		Emphasis: base.Bold(true),
		Muted:    base.Faint(true),
	}
}

// DarkTheme returns a dark theme variant.
func DarkTheme() Theme {
	theme := DefaultTheme()

	theme.Palette.Light = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
		Contrast: lipgloss.AdaptiveColor{Light: "#60a5fa", Dark: "#60a5fa"},
	}

	theme.Typography = defaultTypography(theme.Palette)
	return theme.Normalize()
}

// ThemeForName resolves a configured theme name, defaulting to the standard
// theme for unknown names.
func ThemeForName(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme()
	default:
		return DefaultTheme()
	}
}

// Style bootstrap. The shared default theme is materialized exactly once per
// process; repeated calls are no-ops.

var (
	bootstrapOnce  sync.Once
	bootstrapCount int
	sharedTheme    Theme
)

// EnsureStyles initializes the process-wide shared theme. It reports whether
// this invocation performed the initialization; later calls return false and
// leave the shared theme untouched.
func EnsureStyles() bool {
	performed := false
	bootstrapOnce.Do(func() {
		sharedTheme = DefaultTheme()
		bootstrapCount++
		performed = true
	})
	return performed
}

// SharedTheme returns the process-wide theme, bootstrapping it if needed.
func SharedTheme() Theme {
	EnsureStyles()
	return sharedTheme
}

// Fluent style modifiers. Components compose these through WithAppliers.

// StyleFunc applies a theme-aware transformation to a lipgloss style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

// Border applies a border variant from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(theme.Borders.ForVariant(variant))
	}
}

// Radius applies the border shape associated with a radius token.
func Radius(variant RadiusVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		switch variant {
		case RadiusVariantLarge:
			return base.Border(theme.Borders.Double)
		case RadiusVariantMedium:
			return base.Border(theme.Borders.Rounded)
		default:
			return base.Border(theme.Borders.Normal)
		}
	}
}

// ForVariant resolves a border variant against the set.
func (b BorderSet) ForVariant(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return b.Normal
	case BorderVariantRounded:
		return b.Rounded
	case BorderVariantThick:
		return b.Thick
	case BorderVariantDouble:
		return b.Double
	default:
		return b.None
	}
}

// Padding applies uniform padding from the theme spacing scale.
func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, size))
	}
}

// PaddingX applies horizontal padding from the theme spacing scale.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// PaddingY applies vertical padding from the theme spacing scale.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// Margin applies uniform margin from the theme spacing scale.
func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(spacingLookup(theme.Spacing.Margin, size))
	}
}

// Typography inherits a typography preset from the theme.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(theme.TypographyStyle(variant))
	}
}

// TypographyStyle returns the specified typography style from the theme.
func (t Theme) TypographyStyle(variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyVariantTitle:
		return t.Typography.Title
	case TypographyVariantSubtitle:
		return t.Typography.Subtitle
	case TypographyVariantBody:
		return t.Typography.Body
	case TypographyVariantLabel:
		return t.Typography.Label
	case TypographyVariantEmphasis:
		return t.Typography.Emphasis
	case TypographyVariantMuted:
		return t.Typography.Muted
	default:
		return t.Typography.Base
	}
}

// InputStyle returns the style for an input control in the given state.
func (t Theme) InputStyle(state InputState) lipgloss.Style {
	switch state {
	case InputStateFocus:
		return t.Input.Focus
	case InputStateError:
		return t.Input.Error
	default:
		return t.Input.Default
	}
}

// PaddingValue resolves a spacing token against the theme padding scale.
func (t Theme) PaddingValue(size SpacingSize) int {
	return spacingLookup(t.Spacing.Padding, size)
}

// MarginValue resolves a spacing token against the theme margin scale.
func (t Theme) MarginValue(size SpacingSize) int {
	return spacingLookup(t.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}
