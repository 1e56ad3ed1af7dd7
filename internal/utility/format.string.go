package utility

import "strings"

// NormalizeEmail normaliza un email a minúsculas y sin espacios en los extremos.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// TruncateString corta una cadena a maxLen runas, agregando "…" si fue cortada.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 0 {
		return ""
	}
	return string(runes[:maxLen-1]) + "…"
}
