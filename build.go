package cookies

import (
	"github.com/oesand/cookies/internal/parsing"
	"github.com/oesand/cookies/internal/plain"
	"time"
)

// Builder configures a cookie step by step:
//
//	c, err := cookies.NewBuilder("session", "abc123").
//		Path("/").
//		HttpOnly(true).
//		Build()
//
// Every step validates its argument. The first failure is kept and turns
// all later steps into no-ops; Build reports it. Unlike Parse, invalid
// attributes are errors rather than silently dropped.
//
// Builder is a value: each step returns a new Builder and leaves the
// receiver untouched.
type Builder struct {
	cookie Cookie
	err    error
}

// NewBuilder starts a cookie with the given name and value.
func NewBuilder(name, value string) Builder {
	if !parsing.ValidateName(name) {
		return Builder{err: ErrInvalidName}
	}
	if !parsing.ValidateValue(value) {
		return Builder{err: ErrInvalidValue}
	}
	return Builder{cookie: pair{name: name, value: value}}
}

// Wrap starts a Builder from an existing cookie in order to change some
// of its attributes. Wrap(c).Build() is equivalent to c.
func Wrap(cookie Cookie) Builder {
	if cookie == nil {
		return Builder{err: ErrInvalidName}
	}
	return Builder{cookie: cookie}
}

// Value replaces the cookie value.
func (b Builder) Value(value string) Builder {
	return b.then(func(c Cookie) (Cookie, error) {
		if !parsing.ValidateValue(value) {
			return nil, ErrInvalidValue
		}
		return withValue{c, value}, nil
	})
}

// Path sets the Path attribute. The path must start with "/".
func (b Builder) Path(path string) Builder {
	return b.then(func(c Cookie) (Cookie, error) {
		if !parsing.IsValidPath(path) {
			return nil, ErrInvalidPath
		}
		return withPath{c, path}, nil
	})
}

// Domain sets the Domain attribute. A leading "." is rejected, as
// user agents would drop it anyway.
func (b Builder) Domain(domain string) Builder {
	return b.then(func(c Cookie) (Cookie, error) {
		if parsing.ValidateDomain(domain) != parsing.DomainAsIs {
			return nil, ErrInvalidDomain
		}
		return withDomain{c, domain}, nil
	})
}

// MaxAge sets the Max-Age attribute. Negative durations are stored as zero.
func (b Builder) MaxAge(age time.Duration) Builder {
	return b.then(func(c Cookie) (Cookie, error) {
		return withMaxAge{c, max(age, 0)}, nil
	})
}

// Secure enables or disables the Secure attribute.
func (b Builder) Secure(secure bool) Builder {
	return b.then(func(c Cookie) (Cookie, error) {
		return withSecure{c, secure}, nil
	})
}

// HttpOnly enables or disables the HttpOnly attribute.
func (b Builder) HttpOnly(httpOnly bool) Builder {
	return b.then(func(c Cookie) (Cookie, error) {
		return withHttpOnly{c, httpOnly}, nil
	})
}

// SameSite sets the SameSite attribute. Modes match ASCII-case-insensitively
// and are stored as SameSiteLax or SameSiteStrict. "" removes the
// attribute, as does any unknown mode, such as "None".
func (b Builder) SameSite(mode SameSite) Builder {
	return b.then(func(c Cookie) (Cookie, error) {
		switch {
		case plain.EqualFold(string(mode), string(SameSiteLax)):
			mode = SameSiteLax
		case plain.EqualFold(string(mode), string(SameSiteStrict)):
			mode = SameSiteStrict
		default:
			mode = ""
		}
		return withSameSite{c, mode}, nil
	})
}

// Build returns the configured cookie, or the first error met by any step.
func (b Builder) Build() (Cookie, error) {
	if err := b.state(); err != nil {
		return nil, err
	}
	switch c := b.cookie.(type) {
	case *parsed, *built, pair:
		return c, nil
	default:
		return &built{c}, nil
	}
}

func (b Builder) state() error {
	if b.err != nil {
		return b.err
	}
	if b.cookie == nil {
		// zero Builder
		return ErrInvalidName
	}
	return nil
}

func (b Builder) then(step func(Cookie) (Cookie, error)) Builder {
	if err := b.state(); err != nil {
		return Builder{err: err}
	}
	c, err := step(b.cookie)
	if err != nil {
		return Builder{err: err}
	}
	return Builder{cookie: c}
}

// built closes a chain of builder steps. The with* links below override
// one accessor each and only ever reach callers through built, which
// formats the chain as a whole.
type built struct {
	Cookie
}

func (c *built) String() string {
	return Display(c)
}

func (c *built) GoString() string {
	return Debug(c)
}

// pair is the innermost link: a name and value with no attributes.
type pair struct {
	name, value string
}

func (c pair) Name() string                { return c.name }
func (c pair) Value() string               { return c.value }
func (pair) Domain() (string, bool)        { return "", false }
func (pair) Path() (string, bool)          { return "", false }
func (pair) MaxAge() (time.Duration, bool) { return 0, false }
func (pair) HttpOnly() bool                { return false }
func (pair) Secure() bool                  { return false }
func (pair) SameSite() SameSite            { return "" }
func (c pair) String() string              { return Display(c) }
func (c pair) GoString() string            { return Debug(c) }
func (pair) isCookie()                     {}

type withValue struct {
	Cookie
	value string
}

func (c withValue) Value() string { return c.value }

type withPath struct {
	Cookie
	path string
}

func (c withPath) Path() (string, bool) { return c.path, true }

type withDomain struct {
	Cookie
	domain string
}

func (c withDomain) Domain() (string, bool) { return c.domain, true }

type withMaxAge struct {
	Cookie
	age time.Duration
}

func (c withMaxAge) MaxAge() (time.Duration, bool) { return c.age, true }

type withSecure struct {
	Cookie
	secure bool
}

func (c withSecure) Secure() bool { return c.secure }

type withHttpOnly struct {
	Cookie
	httpOnly bool
}

func (c withHttpOnly) HttpOnly() bool { return c.httpOnly }

type withSameSite struct {
	Cookie
	mode SameSite
}

func (c withSameSite) SameSite() SameSite { return c.mode }
