// Package components provides the shared, theme-aware visual component
// library for the opsdeck administrative dashboard.
//
// The package has three layers:
//
//  1. Theme layer — immutable design tokens (semantic colours, spacing,
//     border/radius shapes, typography) plus the shared size and
//     status-variant lookup tables used by nearly every component.
//  2. Display layer — pure components (stat cards, badges, avatars, tables,
//     form controls) that render their properties to terminal output and
//     hold no state.
//  3. Stateful layer — notification, collapsible panel, and modal dialog,
//     each a small bubbletea model owning its own lifecycle: the
//     notification a cancellable dismiss timer, the panel a toggle, the
//     modal an overlay-click gate.
//
// Lookup conventions are shared library-wide: size variants outside a
// component's table resolve to "md", status variants match
// case-insensitively and fall back to a neutral pair, and colour categories
// resolve through SlotForName with primary as the default. Lookups never
// fail; unknown values always produce the documented default.
//
// Rendering is referentially transparent: the same component with the same
// RenderContext produces the same output. Stateful components report
// transitions upward through callbacks and never mutate caller state.
package components
