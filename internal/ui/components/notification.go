package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NotificationKind selects the notification colour/icon triple.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationWarning NotificationKind = "warning"
	NotificationInfo    NotificationKind = "info"
)

// NotificationPosition selects the corner the notification is placed in.
type NotificationPosition string

const (
	PositionTopLeft     NotificationPosition = "top-left"
	PositionTopRight    NotificationPosition = "top-right"
	PositionBottomLeft  NotificationPosition = "bottom-left"
	PositionBottomRight NotificationPosition = "bottom-right"
)

// DefaultNotificationDuration is the auto-dismiss delay applied when the
// caller does not specify one.
const DefaultNotificationDuration = 5000 * time.Millisecond

// notificationTimeoutMsg fires when an armed dismiss timer elapses. The tag
// identifies the arming; ticks from a cancelled arming carry a stale tag and
// are ignored.
type notificationTimeoutMsg struct {
	id  string
	tag int
}

type notificationStyle struct {
	slot PaletteSlot
	icon string
}

var notificationStyles = map[NotificationKind]notificationStyle{
	NotificationSuccess: {slot: PaletteSuccess, icon: "✓"},
	NotificationError:   {slot: PaletteDanger, icon: "✗"},
	NotificationWarning: {slot: PaletteWarning, icon: "⚠"},
	NotificationInfo:    {slot: PaletteInfo, icon: "ℹ"},
}

// Notification is an auto-dismissing message. Its lifecycle is a two-state
// machine: created visible, it transitions to dismissed either when the
// dismiss timer elapses unattended or immediately on explicit close. The
// onClose callback fires at most once per lifecycle and never after the
// timer has been cancelled or the owner has been torn down.
type Notification struct {
	id       string
	message  string
	kind     NotificationKind
	position NotificationPosition
	duration time.Duration
	onClose  func()

	visible  bool
	disposed bool
	closed   bool
	tag      int
	theme    Theme
}

// NewNotification creates a visible notification with the default duration,
// kind, and position.
func NewNotification(message string) Notification {
	return Notification{
		id:       nextID("notification"),
		message:  message,
		kind:     NotificationInfo,
		position: PositionBottomRight,
		duration: DefaultNotificationDuration,
		visible:  true,
		theme:    SharedTheme(),
	}
}

// WithKind sets the notification kind; unknown kinds render as info.
func (n Notification) WithKind(kind NotificationKind) Notification {
	n.kind = kind
	return n
}

// WithPosition sets the corner placement.
func (n Notification) WithPosition(position NotificationPosition) Notification {
	n.position = position
	return n
}

// WithDuration sets the auto-dismiss delay. A zero duration disables the
// timer: the notification then stays visible until explicitly closed.
func (n Notification) WithDuration(duration time.Duration) Notification {
	n.duration = duration
	return n
}

// WithOnClose sets the close callback.
func (n Notification) WithOnClose(fn func()) Notification {
	n.onClose = fn
	return n
}

// WithTheme sets the theme used for rendering.
func (n Notification) WithTheme(theme Theme) Notification {
	n.theme = theme
	return n
}

// Visible reports whether the notification is in its visible state.
func (n Notification) Visible() bool {
	return n.visible && !n.disposed
}

// Init arms the dismiss timer when a duration is set.
func (n Notification) Init() tea.Cmd {
	if n.duration <= 0 || !n.Visible() {
		return nil
	}
	return n.armCmd()
}

func (n Notification) armCmd() tea.Cmd {
	id, tag, d := n.id, n.tag, n.duration
	return tea.Tick(d, func(time.Time) tea.Msg {
		return notificationTimeoutMsg{id: id, tag: tag}
	})
}

// SetDuration changes the dismiss delay while the notification is pending.
// The previous timer is cancelled before the new one is scheduled, so the
// stale arming can never dismiss the notification.
func (n Notification) SetDuration(duration time.Duration) (Notification, tea.Cmd) {
	n.duration = duration
	n.tag++
	if duration <= 0 || !n.Visible() {
		return n, nil
	}
	return n, n.armCmd()
}

// Update handles the dismiss timer. Timeout messages for other notifications
// or from cancelled armings pass through without effect.
func (n Notification) Update(msg tea.Msg) (Notification, tea.Cmd) {
	timeout, ok := msg.(notificationTimeoutMsg)
	if !ok || timeout.id != n.id || timeout.tag != n.tag {
		return n, nil
	}
	if !n.Visible() {
		return n, nil
	}
	return n.dismiss(), nil
}

// Close dismisses the notification immediately, cancelling any pending
// timer so a late tick cannot fire onClose a second time.
func (n Notification) Close() Notification {
	if !n.Visible() {
		return n
	}
	n.tag++
	return n.dismiss()
}

// Dispose tears the notification down. Any pending timer is cancelled
// unconditionally and onClose will never fire afterwards.
func (n Notification) Dispose() Notification {
	n.tag++
	n.disposed = true
	n.visible = false
	return n
}

func (n Notification) dismiss() Notification {
	n.visible = false
	if !n.closed && n.onClose != nil {
		n.onClose()
	}
	n.closed = true
	return n
}

// View renders the notification box, or nothing once dismissed.
func (n Notification) View() string {
	if !n.Visible() {
		return ""
	}

	theme := n.theme
	ns, ok := notificationStyles[n.kind]
	if !ok {
		ns = notificationStyles[NotificationInfo]
	}
	cs := ns.slot(theme.Palette)

	icon := lipgloss.NewStyle().
		Foreground(cs.Base).
		Bold(true).
		Render(ns.icon)

	box := lipgloss.NewStyle().
		BorderStyle(theme.Borders.Rounded).
		BorderForeground(cs.Base).
		Padding(0, 1)

	return box.Render(icon + " " + n.message)
}

// Place positions the rendered notification in its configured corner of a
// viewport.
func (n Notification) Place(width, height int) string {
	view := n.View()
	if view == "" || width <= 0 || height <= 0 {
		return view
	}

	h, v := lipgloss.Right, lipgloss.Bottom
	switch n.position {
	case PositionTopLeft:
		h, v = lipgloss.Left, lipgloss.Top
	case PositionTopRight:
		h, v = lipgloss.Right, lipgloss.Top
	case PositionBottomLeft:
		h, v = lipgloss.Left, lipgloss.Bottom
	}

	return lipgloss.Place(width, height, h, v, view)
}
