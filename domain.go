package cookies

import (
	"fmt"
	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// RegistrableDomain returns the effective TLD plus one label of the cookie
// Domain attribute, e.g. "example.co.uk" for "www.example.co.uk".
// Internationalized domains are converted to their ASCII form first.
//
// The result is informational only and is not used by Parse or Builder.
// Cookies without a Domain, or whose Domain is itself a public suffix,
// yield an error matching ErrInvalidDomain.
func RegistrableDomain(cookie Cookie) (string, error) {
	domain, ok := cookie.Domain()
	if !ok {
		return "", ErrInvalidDomain
	}

	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDomain, err)
	}

	etld, err := publicsuffix.EffectiveTLDPlusOne(ascii)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDomain, err)
	}
	return etld, nil
}
