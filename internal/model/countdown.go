package model

import (
	"fmt"
	"time"
)

// PictureUpdateHour is the local hour at which a new picture of the day is
// expected.
const PictureUpdateHour = 6

// NextPictureUpdate returns the next scheduled picture update after now:
// today at PictureUpdateHour if that is still ahead, otherwise tomorrow.
func NextPictureUpdate(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), PictureUpdateHour, 0, 0, 0, now.Location())
	if now.Hour() >= PictureUpdateHour {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// PictureCountdown is the countdown text to the next picture update.
func PictureCountdown(now time.Time) string {
	diff := NextPictureUpdate(now).Sub(now)
	if diff <= 0 {
		return "New picture available now!"
	}
	total := int64(diff / time.Second)
	hours := (total / 3600) % 24
	minutes := (total / 60) % 60
	seconds := total % 60
	return fmt.Sprintf("Next picture in: %02d:%02d:%02d", hours, minutes, seconds)
}

// PhaseCountdown is the approximate time left until date, e.g. "≈ 3d 14h".
func PhaseCountdown(now, date time.Time) string {
	until := date.Sub(now)
	if until < 0 {
		until = 0
	}
	days := until / (24 * time.Hour)
	hours := (until % (24 * time.Hour)) / time.Hour
	return fmt.Sprintf("≈ %dd %dh", days, hours)
}
