package templates

import (
	"time"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

// NewWelcomeData builds the data map for the "welcome" template.
func NewWelcomeData(appName, username, email string, opts ...Option) map[string]any {
	d := EmailData{Username: username, Email: email, AppName: appName}
	for _, o := range opts {
		o(&d)
	}
	return ToMap(d)
}
