package dashboard

// focusTarget determines which section receives key events.
type focusTarget int

const (
	focusTable focusTarget = iota
	focusPanels
)

// SnapshotLoadedMsg carries a freshly loaded snapshot.
type SnapshotLoadedMsg struct {
	Snapshot Snapshot
}

// SnapshotErrorMsg indicates a snapshot load failed.
type SnapshotErrorMsg struct {
	Err error
}

// RefreshTickMsg fires when the periodic refresh interval elapses.
type RefreshTickMsg struct{}

// DeleteRequestedMsg asks for confirmation before removing a service.
type DeleteRequestedMsg struct {
	ServiceID string
}

// DeleteConfirmedMsg indicates the operator confirmed the removal.
type DeleteConfirmedMsg struct {
	ServiceID string
}
