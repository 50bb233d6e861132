package binding

import (
	"strings"
	"unicode"
)

// snakeCase converts a camelCase parameter name to its snake_case spelling.
// Every upper-case rune after the first position is prefixed with an
// underscore, and the result is lower-cased: "userId" becomes "user_id",
// "userID" becomes "user_i_d". Already lower-case names are returned unchanged.
func snakeCase(s string) string {
	if strings.IndexFunc(s, unicode.IsUpper) < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
