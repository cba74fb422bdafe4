// Package humanize formats durations for display on the TV settings screens.
package humanize

import (
	"strconv"
	"time"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// Ms formats a millisecond duration as a localized string, e.g. 30000 -> "30秒".
// The largest unit that fits is used and the remainder is truncated.
func Ms(ms int64) string {
	switch {
	case ms < 0:
		return "0毫秒"
	case ms < msPerSecond:
		return strconv.FormatInt(ms, 10) + "毫秒"
	case ms < msPerMinute:
		return strconv.FormatInt(ms/msPerSecond, 10) + "秒"
	case ms < msPerHour:
		return strconv.FormatInt(ms/msPerMinute, 10) + "分钟"
	default:
		return strconv.FormatInt(ms/msPerHour, 10) + "小时"
	}
}

// Duration is Ms for a time.Duration
func Duration(d time.Duration) string {
	return Ms(d.Milliseconds())
}
