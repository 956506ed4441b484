package config

// Config is the root of the dashboard configuration document.
type Config struct {
	Version        string             `yaml:"version" validate:"required,schema_version"`
	Title          string             `yaml:"title"`
	Theme          string             `yaml:"theme" validate:"omitempty,theme_name"`
	RefreshSeconds int                `yaml:"refresh_seconds" validate:"gte=0,lte=3600"`
	Notifications  NotificationConfig `yaml:"notifications"`
	Table          TableConfig        `yaml:"table"`
	Panels         []PanelConfig      `yaml:"panels" validate:"dive"`
	Colours        map[string]string  `yaml:"colours" validate:"dive,hex_colour"`
}

// NotificationConfig carries the defaults applied to every notification the
// dashboard raises.
type NotificationConfig struct {
	DurationMS int    `yaml:"duration_ms" validate:"gte=0,lte=600000"`
	Position   string `yaml:"position" validate:"omitempty,corner"`
}

// TableConfig toggles the table decoration passes. Both flags default to
// enabled; pointers distinguish "absent" from an explicit false.
type TableConfig struct {
	Striped   *bool `yaml:"striped"`
	Hoverable *bool `yaml:"hoverable"`
}

// StripedEnabled resolves the striping flag with its default.
func (t TableConfig) StripedEnabled() bool {
	return t.Striped == nil || *t.Striped
}

// HoverEnabled resolves the hover flag with its default.
func (t TableConfig) HoverEnabled() bool {
	return t.Hoverable == nil || *t.Hoverable
}

// PanelConfig describes one collapsible dashboard panel.
type PanelConfig struct {
	ID        string `yaml:"id" validate:"required,panel_id"`
	Title     string `yaml:"title" validate:"required"`
	Collapsed bool   `yaml:"collapsed"`
	Size      string `yaml:"size" validate:"omitempty,size_variant"`
}

// Defaults applied when the document leaves a field unset.
const (
	DefaultTitle                  = "Operations Dashboard"
	DefaultTheme                  = "default"
	DefaultNotificationDurationMS = 5000
	DefaultNotificationPosition   = "bottom-right"
)

// ApplyDefaults fills unset fields with their documented defaults. It is
// idempotent and always called before validation.
func (c *Config) ApplyDefaults() {
	if c == nil {
		return
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.Notifications.DurationMS == 0 {
		c.Notifications.DurationMS = DefaultNotificationDurationMS
	}
	if c.Notifications.Position == "" {
		c.Notifications.Position = DefaultNotificationPosition
	}
}
