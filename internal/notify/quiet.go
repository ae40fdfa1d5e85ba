package notify

import (
	"strconv"
	"strings"
	"time"

	"hayvanpazari-backend/internal/models"
)

// quietHoursActive reports whether now falls inside the user's quiet
// hours window. Both bounds are inclusive; a window where start > end
// crosses midnight.
func quietHoursActive(s *models.NotificationSettings, now time.Time) bool {
	if !s.QuietHoursEnabled {
		return false
	}

	start, okStart := parseClock(s.QuietHoursStart)
	end, okEnd := parseClock(s.QuietHoursEnd)
	if !okStart || !okEnd {
		return false
	}

	minutes := now.Hour()*60 + now.Minute()
	if start <= end {
		return start <= minutes && minutes <= end
	}
	return minutes >= start || minutes <= end
}

// parseClock converts an "HH:MM" wall-clock string to minutes since
// midnight.
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}
