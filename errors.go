package cookies

// ErrorKind identifies why a cookie was rejected.
type ErrorKind uint8

const (
	KindInvalidName ErrorKind = iota + 1
	KindInvalidValue
	KindInvalidPath
	KindInvalidDomain
	KindTooLong
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidName:
		return "cookie name contains invalid character"
	case KindInvalidValue:
		return "cookie value contains invalid character"
	case KindInvalidPath:
		return "cookie path is invalid"
	case KindInvalidDomain:
		return "cookie domain is invalid"
	case KindTooLong:
		return "cookie string is too long"
	default:
		return "unknown cookie error"
	}
}

// Error is returned by Parse and Builder.Build when a cookie is rejected.
type Error struct {
	Kind ErrorKind
}

// Error implements the error interface for Error.
func (e *Error) Error() string {
	return "cookies: " + e.Kind.String()
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is works with the sentinels below.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && e != nil && other != nil && e.Kind == other.Kind
}

var (
	ErrInvalidName   = &Error{Kind: KindInvalidName}
	ErrInvalidValue  = &Error{Kind: KindInvalidValue}
	ErrInvalidPath   = &Error{Kind: KindInvalidPath}
	ErrInvalidDomain = &Error{Kind: KindInvalidDomain}
	ErrTooLong       = &Error{Kind: KindTooLong}
)
