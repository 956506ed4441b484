package dashboard

import (
	"time"
)

// Service is one managed service row shown on the dashboard.
type Service struct {
	ID         string
	Name       string
	Status     string
	Owner      string
	OwnerEmail string
	Region     string
	LastDeploy time.Time
}

// Snapshot is one consistent view of the data the dashboard displays.
type Snapshot struct {
	Services  []Service
	Deploys   int
	Incidents int
	TakenAt   time.Time
}

// DataSource supplies dashboard snapshots. Implementations may hit the
// network; the dashboard only ever calls Snapshot from a tea command.
type DataSource interface {
	Snapshot() (Snapshot, error)
}

// StaticSource serves a fixed snapshot. It backs the demo binary and tests.
type StaticSource struct {
	Data Snapshot
	Err  error
}

// Snapshot returns the fixed snapshot or the configured error.
func (s StaticSource) Snapshot() (Snapshot, error) {
	if s.Err != nil {
		return Snapshot{}, s.Err
	}
	return s.Data, nil
}

// CountByStatus groups the snapshot's services by their status string.
func (s Snapshot) CountByStatus() map[string]int {
	counts := make(map[string]int)
	for _, svc := range s.Services {
		counts[svc.Status]++
	}
	return counts
}
