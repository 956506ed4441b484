package dashboard

import (
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opsdeck/opsdeck/internal/config"
	"github.com/opsdeck/opsdeck/internal/logger"
	"github.com/opsdeck/opsdeck/internal/ui/components"
)

// modalKind identifies what the shared modal currently shows.
type modalKind int

const (
	modalNone modalKind = iota
	modalDetail
	modalConfirmDelete
)

// Model is the dashboard host: it owns the snapshot, routes interaction to
// the component library, and composes the page from its parts.
type Model struct {
	cfg    *config.Config
	log    *logger.Logger
	source DataSource
	theme  components.Theme

	snapshot Snapshot
	loadErr  error

	table       components.DataTable
	filterField components.Field
	window      components.RangePicker
	panels      []panelState
	panelCursor int
	focus       focusTarget

	modal         components.Modal
	modalKind     modalKind
	pendingDelete string

	notice    components.Notification
	hasNotice bool

	loading    components.LoadingIndicator
	refreshing bool

	filter        string
	filterFocused bool
	width         int
	height        int
}

type panelState struct {
	id    string
	title string
	size  components.SizeVariant
	open  bool
}

var tableHeaders = []string{"Service", "Status", "Owner", "Region", "Last deploy"}

// NewModel creates the dashboard model from configuration and a data source.
func NewModel(cfg *config.Config, source DataSource, log *logger.Logger) Model {
	theme := components.ThemeForName(cfg.Theme)

	field := components.NewField("Filter by name", components.FieldSingleLine).
		WithID("service-filter").
		WithPlaceholder("service name")

	m := Model{
		cfg:         cfg,
		log:         log.WithComponent("dashboard"),
		source:      source,
		theme:       theme,
		filterField: field,
		window:      components.NewDateRangePicker("Deploy window").WithTheme(theme),
		loading:     components.NewLoadingIndicator("refreshing").WithTheme(theme),
		width:       80,
		height:      24,
	}

	m.panels = buildPanels(cfg.Panels)
	m.table = components.NewDataTable(tableHeaders, nil).
		WithOptions(m.tableOptions()).
		WithTheme(theme).
		Focus()

	return m
}

// buildPanels maps configured panels onto local toggle state. A filters panel
// is always present, even when the configuration names none.
func buildPanels(configured []config.PanelConfig) []panelState {
	panels := []panelState{{id: "filters", title: "Filters", size: components.SizeMD, open: true}}
	for _, p := range configured {
		if p.ID == "filters" {
			panels[0].open = !p.Collapsed
			continue
		}
		size := components.SizeVariant(p.Size)
		if size == "" {
			size = components.SizeMD
		}
		panels = append(panels, panelState{id: p.ID, title: p.Title, size: size, open: !p.Collapsed})
	}
	return panels
}

func (m Model) tableOptions() components.TableOptions {
	return components.TableOptions{
		Striped:   m.cfg.Table.StripedEnabled(),
		Hoverable: m.cfg.Table.HoverEnabled(),
	}
}

// Init starts the spinner and the first snapshot load.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.loading.Tick(),
		loadSnapshotCmd(m.source),
	}
	if interval := m.refreshInterval(); interval > 0 {
		cmds = append(cmds, refreshTickCmd(interval))
	}
	return tea.Batch(cmds...)
}

func (m Model) refreshInterval() time.Duration {
	return time.Duration(m.cfg.RefreshSeconds) * time.Second
}

// visibleServices applies the name filter to the snapshot, ordered most
// troubled status first and alphabetically within a rank.
func (m Model) visibleServices() []Service {
	needle := strings.ToLower(strings.TrimSpace(m.filter))

	out := make([]Service, 0, len(m.snapshot.Services))
	for _, svc := range m.snapshot.Services {
		if needle == "" || strings.Contains(strings.ToLower(svc.Name), needle) {
			out = append(out, svc)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := statusRank(out[i].Status), statusRank(out[j].Status)
		if ri != rj {
			return ri < rj
		}
		return out[i].Name < out[j].Name
	})

	return out
}

func statusRank(status string) int {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "error", "inactive", "cancelled":
		return 0
	case "pending", "warning":
		return 1
	case "in-progress", "info":
		return 2
	case "active", "success", "completed":
		return 3
	default:
		return 4
	}
}

// hoveredService resolves the table hover cursor to a service.
func (m Model) hoveredService() (Service, bool) {
	services := m.visibleServices()
	idx := m.table.Hovered()
	if idx < 0 || idx >= len(services) {
		return Service{}, false
	}
	return services[idx], true
}

// rebuildTable regenerates the table rows from the current snapshot and
// filter. Rows whose service is in a failing state carry a presentation
// override so they stand out from the decoration pass.
func (m *Model) rebuildTable() {
	services := m.visibleServices()

	rows := make([]components.Row, 0, len(services))
	for _, svc := range services {
		var override *components.RowOverride
		if statusRank(svc.Status) == 0 {
			override = &components.RowOverride{
				Foreground: m.theme.Palette.Danger.Base,
				Bold:       true,
			}
		}
		rows = append(rows, components.Row{
			Cells: []string{
				svc.Name,
				svc.Status,
				svc.Owner,
				svc.Region,
				formatDeployTime(svc.LastDeploy),
			},
			Override: override,
		})
	}

	table := components.NewDataTable(tableHeaders, rows).
		WithOptions(m.tableOptions()).
		WithTheme(m.theme)
	if m.focus == focusTable {
		table = table.Focus()
	}
	m.table = table
}

func formatDeployTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format("2006-01-02 15:04")
}

// raiseNotice replaces the current notification, applying the configured
// duration and position defaults.
func (m *Model) raiseNotice(message string, kind components.NotificationKind) tea.Cmd {
	notice := components.NewNotification(message).
		WithKind(kind).
		WithDuration(time.Duration(m.cfg.Notifications.DurationMS) * time.Millisecond).
		WithPosition(components.NotificationPosition(m.cfg.Notifications.Position)).
		WithTheme(m.theme)

	if m.hasNotice {
		// Cancel the previous notification's timer before replacing it.
		m.notice = m.notice.Dispose()
	}

	m.notice = notice
	m.hasNotice = true
	m.log.Debug("notification raised")
	return notice.Init()
}

// Notice returns the active notification, if any.
func (m Model) Notice() (components.Notification, bool) {
	return m.notice, m.hasNotice && m.notice.Visible()
}

// PanelOpen reports the open state of the identified panel.
func (m Model) PanelOpen(id string) bool {
	for _, p := range m.panels {
		if p.id == id {
			return p.open
		}
	}
	return false
}

// Filter returns the active service name filter.
func (m Model) Filter() string {
	return m.filter
}

// ModalOpen reports whether the shared modal is showing.
func (m Model) ModalOpen() bool {
	return m.modalKind != modalNone
}
