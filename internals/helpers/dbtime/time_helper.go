// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"time"
)

// LoadLocationOrFallback memuat zona waktu academy; kalau tidak valid,
// fallback ke offset tetap supaya scheduling tetap jalan.
func LoadLocationOrFallback(tzName string, fallbackName string, fallbackOffsetHours int) *time.Location {
	if tzName != "" {
		if loc, err := time.LoadLocation(tzName); err == nil {
			return loc
		}
	}
	if fallbackName != "" {
		if loc, err := time.LoadLocation(fallbackName); err == nil {
			return loc
		}
	}
	return time.FixedZone(fallbackName, fallbackOffsetHours*3600)
}

// StartOfDayInLoc memotong t ke 00:00:00 di zona loc.
func StartOfDayInLoc(t time.Time, loc *time.Location) time.Time {
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// CombineDateAndTod menggabungkan tanggal lokal + jam Tod di zona loc.
func CombineDateAndTod(dLocal time.Time, tod Tod, loc *time.Location) time.Time {
	return time.Date(dLocal.Year(), dLocal.Month(), dLocal.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, loc)
}

func ToUTC(t time.Time) time.Time { return t.In(time.UTC) }
