// Package format holds pure display helpers for catalog data.
package format

import (
	"fmt"
	"strings"

	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
)

// ParseCourseNumber splits a raw course number into its leading decimal
// digits and the remainder: "103A" -> ("103", "A"), "200" -> ("200", ""),
// "A" -> ("", "A").
func ParseCourseNumber(raw string) (num, suffix string) {
	i := 0
	for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
		i++
	}
	return raw[:i], raw[i:]
}

// FormatMeetingTimes renders each meeting as
// "{type}: {days}: {start}-{end} {building}", e.g.
// "Recitation: Thu: 17:00-18:30 Gzang123". A missing type defaults to
// "Lecture" and a missing building to "". An empty or nil slice renders
// as the single entry "not scheduled".
func FormatMeetingTimes(times []dom.MeetingTime) []string {
	if len(times) == 0 {
		return []string{"not scheduled"}
	}
	out := make([]string, len(times))
	for i, t := range times {
		out[i] = formatMeeting(t)
	}
	return out
}

func formatMeeting(t dom.MeetingTime) string {
	meetingType := t.Type
	if meetingType == "" {
		meetingType = "Lecture"
	}
	return fmt.Sprintf("%s: %s: %s-%s %s",
		meetingType,
		strings.Join(t.Days, ","),
		minuteToClock(t.Start),
		minuteToClock(t.End),
		t.Building,
	)
}

// minuteToClock converts minutes since midnight into "H:MM":
// 605 -> "10:05". Hours carry no leading zero, minutes are zero-padded.
func minuteToClock(m int) string {
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}
