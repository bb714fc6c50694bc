package usecase

import "unicode/utf8"

const ellipsis = "…"

// trimMessage keeps at most limit characters of body, marking the cut with an ellipsis.
func trimMessage(body string, limit int) string {
	if utf8.RuneCountInString(body) <= limit {
		return body
	}
	runes := []rune(body)
	return string(runes[:limit]) + ellipsis
}
