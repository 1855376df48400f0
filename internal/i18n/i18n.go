// Package i18n implements locale normalization and field-level fallback for
// the trilingual portfolio content. Resolution is pure: it performs no I/O
// and is invoked once per localized field per render.
package i18n

import "strings"

// DefaultLocale is the locale every localized record is guaranteed to carry.
const DefaultLocale = "en"

var supported = []string{"en", "ru", "uz"}

// SupportedLocales returns the locale codes the portfolio serves.
func SupportedLocales() []string {
	return append([]string(nil), supported...)
}

// IsSupported reports whether the code names a serveable locale. Matching is
// case-insensitive and ignores surrounding whitespace.
func IsSupported(code string) bool {
	normalized := strings.ToLower(strings.TrimSpace(code))
	for _, locale := range supported {
		if locale == normalized {
			return true
		}
	}
	return false
}

// Normalize maps arbitrary input onto a serveable locale. Unknown or empty
// codes resolve to the default locale; this is a defensive fallback and never
// an error.
func Normalize(code string) string {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if IsSupported(normalized) {
		return normalized
	}
	return DefaultLocale
}

// Fallback returns primary when it carries a value, otherwise fallback.
func Fallback(primary, fallback string) string {
	if strings.TrimSpace(primary) != "" {
		return primary
	}
	return fallback
}

// Fields is the localized value bag for a single locale, keyed by field base
// name.
type Fields map[string]string

// Resolve returns the best-available value for field given translations keyed
// by locale code. The requested locale wins when it has a non-empty value;
// otherwise the default locale's value is returned, empty string included —
// records are expected to always carry a default-locale row, but an empty
// English value resolves to "" rather than an error.
func Resolve(byLocale map[string]Fields, field, locale string) string {
	requested := Normalize(locale)
	if fields, ok := byLocale[requested]; ok {
		if value := strings.TrimSpace(fields[field]); value != "" {
			return fields[field]
		}
	}
	if requested == DefaultLocale {
		if fields, ok := byLocale[DefaultLocale]; ok {
			return fields[field]
		}
		return ""
	}
	if fields, ok := byLocale[DefaultLocale]; ok {
		return fields[field]
	}
	return ""
}
