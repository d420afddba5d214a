package cli

import (
	"time"

	"github.com/ja-he/lunadash/internal/model"
)

// pictureSchedule tracks when the next picture of the day is published,
// going by the dashboard's clock.
type pictureSchedule struct {
	clock func() time.Time
	next  time.Time
}

func newPictureSchedule(clock func() time.Time) *pictureSchedule {
	return &pictureSchedule{clock: clock, next: model.NextPictureUpdate(clock())}
}

// due reports once per scheduled update that it has passed.
func (s *pictureSchedule) due() bool {
	now := s.clock()
	if now.Before(s.next) {
		return false
	}
	s.next = model.NextPictureUpdate(now)
	return true
}
