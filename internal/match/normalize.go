package match

import (
	"strings"
	"unicode"
)

// Fold lowers s and drops '_', '-' and spaces, so "order_id", "OrderID" and
// "order-id" all fold to "orderid".
func Fold(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
