package timing

import (
	"fmt"
	"time"
)

// FormatDuration renders a whole-second duration, e.g. "59s" or "12m 11s".
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = -secs
	}
	if secs >= 60 {
		return fmt.Sprintf("%dm %ds", secs/60, secs%60)
	}
	return fmt.Sprintf("%ds", secs)
}

// FormatDelta renders a signed delta. A delta of exactly zero is "0s",
// unsigned.
func FormatDelta(d time.Duration) string {
	secs := int64(d / time.Second)
	switch {
	case secs == 0:
		return "0s"
	case secs < 0:
		return "-" + FormatDuration(-d)
	default:
		return "+" + FormatDuration(d)
	}
}

// ShortSHA returns the first seven characters of a commit hash.
func ShortSHA(sha string) string {
	if len(sha) <= 7 {
		return sha
	}
	return sha[:7]
}
