package plain

// EqualFold reports whether s and t are equal under ASCII case folding.
// Non-ASCII bytes must match exactly, unlike strings.EqualFold which
// also folds Unicode letters such as the Kelvin sign.
func EqualFold(s, t string) bool {
	if len(s) != len(t) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if lower(s[i]) != lower(t[i]) {
			return false
		}
	}
	return true
}

func lower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + 32 // to lowercase
	}
	return b
}
