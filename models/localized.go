package models

// Supported display languages.
const (
	LangEn = "en"
	LangAr = "ar"
	LangHe = "he"
)

// ValidLanguage reports whether lang is one of the supported languages.
func ValidLanguage(lang string) bool {
	return lang == LangEn || lang == LangAr || lang == LangHe
}

// pickLocalized resolves a trilingual field: the base (English) value is
// mandatory, the Arabic/Hebrew overrides are optional and fall back to the
// base when absent or empty. Every translatable field on every entity goes
// through here so the fallback rule cannot drift between call sites.
func pickLocalized(lang string, base string, ar, he *string) string {
	switch lang {
	case LangAr:
		if ar != nil && *ar != "" {
			return *ar
		}
	case LangHe:
		if he != nil && *he != "" {
			return *he
		}
	}
	return base
}
