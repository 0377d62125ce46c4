package cookies

import (
	"github.com/oesand/cookies/internal/parsing"
	"github.com/oesand/cookies/internal/plain"
	"github.com/oesand/cookies/internal/utils"
	"github.com/sirupsen/logrus"
	"time"
)

// Parser turns Set-Cookie strings into cookies. The zero value is ready
// to use and is safe for concurrent use.
type Parser struct {
	// Now returns the current time, used to turn an Expires date into a
	// Max-Age. If nil, time.Now is used.
	Now func() time.Time

	// Logger receives a debug entry for every attribute dropped because
	// its value was invalid. If nil, logrus.StandardLogger is used.
	Logger logrus.FieldLogger
}

var defaultParser Parser

// Parse parses a single Set-Cookie header value, such as
// "foo=bar; Path=/; HttpOnly".
//
// An invalid name or value fails the whole parse. Invalid optional
// attributes are ignored, keeping any earlier valid occurrence.
// The returned cookie keeps src and reads every field from it.
func Parse(src string) (Cookie, error) {
	return defaultParser.Parse(src)
}

// ParseBytes is like Parse but reads src in place without copying it.
// src must not be modified while the returned cookie is in use.
func ParseBytes(src []byte) (Cookie, error) {
	return defaultParser.ParseBytes(src)
}

func (p *Parser) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p *Parser) logger() logrus.FieldLogger {
	if p.Logger != nil {
		return p.Logger
	}
	return logrus.StandardLogger()
}

// ParseBytes parses src in place using the clock and logger of p.
// See the package-level ParseBytes.
func (p *Parser) ParseBytes(src []byte) (Cookie, error) {
	return p.Parse(utils.BufferToString(src))
}

// Parse parses src using the clock and logger of p. See the package-level Parse.
func (p *Parser) Parse(src string) (Cookie, error) {
	if len(src) > MaxLength {
		return nil, ErrTooLong
	}

	cookie := &parsed{src: src}
	first := true

	// Max-Age takes precedence, so the date is only decoded once the
	// whole string has been seen without one.
	var expires parsing.Span
	var hasExpires bool

	for attr := range parsing.Attributes(src) {
		if first {
			first = false
			if !attr.HasValue || !parsing.ValidateName(attr.Name.Of(src)) {
				return nil, ErrInvalidName
			}
			if !parsing.ValidateValue(attr.Value.Of(src)) {
				return nil, ErrInvalidValue
			}
			cookie.name = narrow(attr.Name)
			cookie.value = narrow(attr.Value)
			continue
		}

		name := attr.Name.Of(src)
		value := attr.Value.Of(src)

		switch {
		case plain.EqualFold(name, attrSecure):
			cookie.flags |= flagSecure
		case plain.EqualFold(name, attrHttpOnly):
			cookie.flags |= flagHttpOnly
		case !attr.HasValue:
			// Every other known attribute needs a value.
			if isValuedAttribute(name) {
				p.skip(name, "missing value")
			}
		case plain.EqualFold(name, attrMaxAge):
			age, ok := parsing.ParseMaxAge(value)
			if !ok {
				p.skip(name, "not an integer")
				continue
			}
			cookie.maxAge = age
			cookie.flags |= flagMaxAge
		case plain.EqualFold(name, attrPath):
			if !parsing.IsValidPath(value) {
				p.skip(name, "invalid path")
				continue
			}
			cookie.path = narrow(attr.Value)
			cookie.flags |= flagPath
		case plain.EqualFold(name, attrDomain):
			domain := attr.Value
			switch parsing.ValidateDomain(value) {
			case parsing.DomainLeadingDot:
				domain.Start++
			case parsing.DomainInvalid:
				p.skip(name, "invalid domain")
				continue
			}
			cookie.domain = narrow(domain)
			cookie.flags |= flagDomain
		case plain.EqualFold(name, attrExpires):
			expires, hasExpires = attr.Value, true
		case plain.EqualFold(name, attrSameSite):
			switch {
			case plain.EqualFold(value, "lax"):
				cookie.sameSite = SameSiteLax
			case plain.EqualFold(value, "strict"):
				cookie.sameSite = SameSiteStrict
			default:
				p.skip(name, "unknown mode")
			}
		}
		// Unknown attributes are ignored (RFC 6265 section 5.2).
	}

	if hasExpires && cookie.flags&flagMaxAge == 0 {
		if at, ok := parsing.ParseExpires(expires.Of(src)); ok {
			cookie.maxAge = parsing.RemainingAge(at, p.now())
			cookie.flags |= flagMaxAge
		} else {
			p.skip(attrExpires, "unknown date format")
		}
	}

	return cookie, nil
}

func (p *Parser) skip(attribute, reason string) {
	logger := p.logger()
	if l, ok := logger.(interface{ IsLevelEnabled(logrus.Level) bool }); ok && !l.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	logger.WithFields(logrus.Fields{
		"attribute": attribute,
		"reason":    reason,
	}).Debug("cookies: attribute ignored")
}

func isValuedAttribute(name string) bool {
	for _, attr := range [...]string{attrMaxAge, attrPath, attrDomain, attrExpires, attrSameSite} {
		if plain.EqualFold(name, attr) {
			return true
		}
	}
	return false
}

const (
	flagDomain uint8 = 1 << iota
	flagPath
	flagMaxAge
	flagSecure
	flagHttpOnly
)

// span locates a field inside parsed.src. MaxLength keeps it within 16 bits.
type span struct {
	start, end uint16
}

func narrow(s parsing.Span) span {
	return span{start: uint16(s.Start), end: uint16(s.End)}
}

func (s span) of(src string) string {
	return src[s.start:s.end]
}

// parsed is the cookie returned by Parse. It stores offsets into src
// rather than copies of each field.
type parsed struct {
	src string

	name   span
	value  span
	domain span
	path   span

	maxAge   time.Duration
	sameSite SameSite
	flags    uint8
}

func (c *parsed) Name() string {
	return c.name.of(c.src)
}

func (c *parsed) Value() string {
	return c.value.of(c.src)
}

func (c *parsed) Domain() (string, bool) {
	if c.flags&flagDomain == 0 {
		return "", false
	}
	return c.domain.of(c.src), true
}

func (c *parsed) Path() (string, bool) {
	if c.flags&flagPath == 0 {
		return "", false
	}
	return c.path.of(c.src), true
}

func (c *parsed) MaxAge() (time.Duration, bool) {
	return c.maxAge, c.flags&flagMaxAge != 0
}

func (c *parsed) HttpOnly() bool {
	return c.flags&flagHttpOnly != 0
}

func (c *parsed) Secure() bool {
	return c.flags&flagSecure != 0
}

func (c *parsed) SameSite() SameSite {
	return c.sameSite
}

func (c *parsed) String() string {
	return Display(c)
}

func (c *parsed) GoString() string {
	return Debug(c)
}

func (*parsed) isCookie() {}
