package cookies

import (
	"strconv"
	"strings"
	"time"
)

var (
	cookieDelimiter = []byte("; ")

	// latestExpires is the last instant with a four digit year, the most
	// TimeFormat can express.
	latestExpires = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// Display returns the Set-Cookie wire format of cookie. When Max-Age is set
// an Expires attribute is computed from the current time as well, since
// some older user agents only understand Expires.
func Display(cookie Cookie) string {
	return Format(cookie, time.Now())
}

// Format is like Display but computes Expires relative to now.
func Format(cookie Cookie, now time.Time) string {
	return string(AppendFormat(nil, cookie, now))
}

// AppendFormat appends the wire format of cookie to dst:
//
//	name=value[; Path=p][; Domain=d][; Max-Age=s; Expires=date][; HttpOnly][; Secure][; SameSite=mode]
//
// Nothing is quoted or escaped; cookie fields are valid by construction.
func AppendFormat(dst []byte, cookie Cookie, now time.Time) []byte {
	dst = append(dst, cookie.Name()...)
	dst = append(dst, '=')
	dst = append(dst, cookie.Value()...)

	if path, ok := cookie.Path(); ok {
		dst = appendAttribute(dst, attrPath)
		dst = append(dst, '=')
		dst = append(dst, path...)
	}

	if domain, ok := cookie.Domain(); ok {
		dst = appendAttribute(dst, attrDomain)
		dst = append(dst, '=')
		dst = append(dst, domain...)
	}

	if age, ok := cookie.MaxAge(); ok {
		dst = appendAttribute(dst, attrMaxAge)
		dst = append(dst, '=')
		dst = strconv.AppendInt(dst, int64(age/time.Second), 10)

		dst = appendAttribute(dst, attrExpires)
		dst = append(dst, '=')
		dst = expiresAt(now, age).AppendFormat(dst, TimeFormat)
	}

	if cookie.HttpOnly() {
		dst = appendAttribute(dst, attrHttpOnly)
	}

	if cookie.Secure() {
		dst = appendAttribute(dst, attrSecure)
	}

	if mode := cookie.SameSite(); mode != "" {
		dst = appendAttribute(dst, attrSameSite)
		dst = append(dst, '=')
		dst = append(dst, string(mode)...)
	}

	return dst
}

func appendAttribute(dst []byte, name string) []byte {
	dst = append(dst, cookieDelimiter...)
	return append(dst, name...)
}

// expiresAt adds age to now, saturating at latestExpires.
func expiresAt(now time.Time, age time.Duration) time.Time {
	at := now.Add(age)
	if at.Before(now) || at.After(latestExpires) {
		return latestExpires
	}
	return at.UTC()
}

// Debug returns a labeled dump of the fields of cookie, for diagnostics:
//
//	Cookie{name: "foo", value: "bar", path: "/", max_age: 1m0s, secure: true}
//
// Unset attributes are left out.
func Debug(cookie Cookie) string {
	var buf strings.Builder

	buf.WriteString("Cookie{name: ")
	buf.WriteString(strconv.Quote(cookie.Name()))
	buf.WriteString(", value: ")
	buf.WriteString(strconv.Quote(cookie.Value()))

	if path, ok := cookie.Path(); ok {
		buf.WriteString(", path: ")
		buf.WriteString(strconv.Quote(path))
	}

	if domain, ok := cookie.Domain(); ok {
		buf.WriteString(", domain: ")
		buf.WriteString(strconv.Quote(domain))
	}

	if age, ok := cookie.MaxAge(); ok {
		buf.WriteString(", max_age: ")
		buf.WriteString(age.String())
	}

	if cookie.HttpOnly() {
		buf.WriteString(", http_only: true")
	}

	if cookie.Secure() {
		buf.WriteString(", secure: true")
	}

	if mode := cookie.SameSite(); mode != "" {
		buf.WriteString(", same_site: ")
		buf.WriteString(string(mode))
	}

	buf.WriteByte('}')
	return buf.String()
}
