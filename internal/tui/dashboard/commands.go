package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loadSnapshotCmd fetches a snapshot off the update loop.
func loadSnapshotCmd(source DataSource) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := source.Snapshot()
		if err != nil {
			return SnapshotErrorMsg{Err: err}
		}
		return SnapshotLoadedMsg{Snapshot: snapshot}
	}
}

// refreshTickCmd schedules the next periodic refresh.
func refreshTickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return RefreshTickMsg{}
	})
}
