package cookies

const (
	// MaxLength is the longest cookie string Parse accepts, in bytes.
	// It also keeps every field offset within 16 bits.
	MaxLength = 4096

	// TimeFormat is the RFC 1123 layout used for the Expires attribute.
	TimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"
)

const (
	attrSecure   = "Secure"
	attrHttpOnly = "HttpOnly"
	attrMaxAge   = "Max-Age"
	attrPath     = "Path"
	attrDomain   = "Domain"
	attrExpires  = "Expires"
	attrSameSite = "SameSite"
)
