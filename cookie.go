// Package cookies parses and builds single HTTP cookies as found in
// Set-Cookie headers (RFC 6265).
package cookies

import (
	"fmt"
	"time"
)

// SameSite is the mode of the SameSite attribute. The zero value means
// the attribute is not set.
type SameSite string

const (
	// SameSiteLax sends the cookie with top-level cross-site navigations.
	SameSiteLax    SameSite = "Lax"
	// SameSiteStrict only sends the cookie with same-site requests.
	SameSiteStrict SameSite = "Strict"
)

// Cookie is a read-only view of a single HTTP cookie.
//
// Values are produced by Parse and by Builder; the interface cannot be
// implemented outside this package. String returns the Set-Cookie wire
// format (see Display) and GoString a labeled field dump (see Debug).
type Cookie interface {
	Name() string
	Value() string

	// Domain returns the Domain attribute, if set.
	Domain() (string, bool)

	// Path returns the Path attribute, if set.
	Path() (string, bool)

	// MaxAge returns the Max-Age attribute, if set. A cookie parsed with
	// only an Expires attribute reports the time remaining until it.
	MaxAge() (time.Duration, bool)

	HttpOnly() bool
	Secure() bool

	// SameSite returns the SameSite mode, or "" if unset.
	SameSite() SameSite

	fmt.Stringer
	fmt.GoStringer

	isCookie()
}
