// README: Licence plate lexical validation.
package vehicle

// ValidPlate reports whether s is a well-formed licence plate: three
// two-character groups separated by hyphens, each group either two
// uppercase letters or two digits. The mix must contain at least one
// letter pair and one digit pair, except that three digit pairs is also
// accepted.
func ValidPlate(s string) bool {
	if len(s) != 8 || s[2] != '-' || s[5] != '-' {
		return false
	}
	letters, digits := 0, 0
	for _, i := range [3]int{0, 3, 6} {
		switch {
		case isUpper(s[i]) && isUpper(s[i+1]):
			letters++
		case isDigit(s[i]) && isDigit(s[i+1]):
			digits++
		default:
			return false
		}
	}
	if digits == 3 {
		return true
	}
	return letters > 0 && digits > 0
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
