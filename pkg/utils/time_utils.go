package utils

import (
	"time"

	"go.uber.org/zap"
)

// LoadLocation resolves an IANA zone name, falling back to UTC.
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		zap.L().Warn("unknown time zone, using UTC", zap.String("zone", name), zap.Error(err))
		return time.UTC
	}
	return loc
}

func FormatRFC3339In(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(time.RFC3339)
}
