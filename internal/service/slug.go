package service

import "strings"

// slugify приводит имя к url-виду: строчные буквы, дефисы вместо разделителей.
func slugify(s string) string {
	var b strings.Builder
	prevDash := true // не начинаем с дефиса
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
