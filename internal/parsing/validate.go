package parsing

import (
	"golang.org/x/net/http/httpguts"
)

// DomainKind classifies a Domain attribute value.
type DomainKind uint8

const (
	DomainInvalid DomainKind = iota
	DomainAsIs
	// DomainLeadingDot is a valid domain whose leading "." must be dropped
	// (RFC 6265 section 5.2.3).
	DomainLeadingDot
)

// ValidateName reports whether name is an RFC 6265 token:
// non-empty, without separators, whitespace or control bytes.
// Bytes outside ASCII are allowed.
func ValidateName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if b := name[i]; b < 0x80 && !httpguts.IsTokenRune(rune(b)) {
			return false
		}
	}
	return true
}

// ValidateValue reports whether every byte of value is a cookie-octet:
//
//	%x21 / %x23-2B / %x2D-3A / %x3C-5B / %x5D-7E
func ValidateValue(value string) bool {
	for i := 0; i < len(value); i++ {
		if !isCookieOctet(value[i]) {
			return false
		}
	}
	return true
}

// IsValidPath reports whether path starts with "/" and carries no
// control bytes, whitespace or ";".
func IsValidPath(path string) bool {
	if path == "" || path[0] != '/' {
		return false
	}
	return !hasAttrBreaker(path)
}

// ValidateDomain classifies domain as a Domain attribute value. Empty
// values and values with whitespace, control bytes or ";" are invalid.
func ValidateDomain(domain string) DomainKind {
	if domain == "" || hasAttrBreaker(domain) {
		return DomainInvalid
	}
	if domain[0] == '.' {
		return DomainLeadingDot
	}
	return DomainAsIs
}

func isCookieOctet(b byte) bool {
	switch {
	case b == 0x21:
		return true
	case 0x23 <= b && b <= 0x2B:
		return true
	case 0x2D <= b && b <= 0x3A:
		return true
	case 0x3C <= b && b <= 0x5B:
		return true
	case 0x5D <= b && b <= 0x7E:
		return true
	default:
		return false
	}
}

func hasAttrBreaker(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b <= 0x20 || b == ';' || b == 0x7F {
			return true
		}
	}
	return false
}
