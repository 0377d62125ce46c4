package parsing

import (
	"errors"
	"strconv"
	"time"
)

// MaxDuration is the largest whole-second time.Duration. Max-Age values
// beyond it saturate here.
const MaxDuration = time.Duration(1<<63-1) / time.Second * time.Second

// Layouts accepted for the Expires attribute, tried in order.
var expiresLayouts = []string{
	time.RFC1123, // Tue, 21 May 2019 21:12:11 GMT
	time.RFC850,  // Tuesday, 21-May-19 21:12:11 GMT
	time.ANSIC,   // Tue May 21 21:12:11 2019
}

// ParseMaxAge decodes a Max-Age value given in integer seconds.
// Non-positive numbers clamp to zero and numbers too large for
// time.Duration saturate at MaxDuration. It reports false when value
// is not an integer at all.
func ParseMaxAge(value string) (time.Duration, bool) {
	secs, err := strconv.ParseInt(value, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// On ErrRange secs already holds the clamped int64 bound.
	switch {
	case secs <= 0:
		return 0, true
	case secs > int64(MaxDuration/time.Second):
		return MaxDuration, true
	default:
		return time.Duration(secs) * time.Second, true
	}
}

// ParseExpires decodes an Expires date in RFC 1123, RFC 850 or asctime
// form. The first layout that matches wins.
func ParseExpires(value string) (time.Time, bool) {
	for _, layout := range expiresLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// RemainingAge converts an absolute expiry into a Max-Age relative to now,
// counted in whole Unix seconds. Instants at or before now, and instants
// before the Unix epoch, yield zero.
func RemainingAge(expires, now time.Time) time.Duration {
	exp, cur := expires.Unix(), now.Unix()
	if exp <= cur || exp <= 0 {
		return 0
	}
	// cur may be negative, so the difference can overflow int64.
	if secs := exp - cur; secs > 0 && secs <= int64(MaxDuration/time.Second) {
		return time.Duration(secs) * time.Second
	}
	return MaxDuration
}
