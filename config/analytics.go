package config

import "fmt"

// AnalyticsConfig tunes the event store read/write paths.
type AnalyticsConfig struct {
	// RecentLimit bounds the dashboard recent-events table.
	RecentLimit uint32 `yaml:"recent_limit" json:"recent_limit" env:"RECENT_LIMIT" default:"100"`
	// DailyWindowDays is the trailing window of the time-series chart.
	DailyWindowDays uint32 `yaml:"daily_window_days" json:"daily_window_days" env:"DAILY_WINDOW_DAYS" default:"14"`
	// RetentionDays purges events older than the given number of days.
	// 0 keeps events forever, which matches the historical behavior.
	RetentionDays uint32 `yaml:"retention_days" json:"retention_days" env:"RETENTION_DAYS" default:"0"`
	// RetentionSchedule is the cron expression of the purge job.
	RetentionSchedule string `yaml:"retention_schedule" json:"retention_schedule" env:"RETENTION_SCHEDULE" default:"0 3 * * *"`
}

func (cfg AnalyticsConfig) Validate() error {
	if cfg.RecentLimit == 0 {
		return fmt.Errorf("recent_limit must be > 0")
	}
	if cfg.DailyWindowDays == 0 {
		return fmt.Errorf("daily_window_days must be > 0")
	}
	return nil
}
