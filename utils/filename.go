package utils

import "strings"

// MaxFileNameLength bounds the display name stored for an attached file
const MaxFileNameLength = 50

// SanitizeFileName bounds a display name to MaxFileNameLength characters,
// keeping the extension (the text after the last dot) intact.
func SanitizeFileName(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxFileNameLength {
		return name
	}

	dot := strings.LastIndex(name, ".")
	if dot < 0 {
		return string(runes[:MaxFileNameLength])
	}

	stem := []rune(name[:dot])
	ext := []rune(name[dot+1:])
	keep := MaxFileNameLength - len(ext) - 1
	if keep <= 0 {
		// extension alone does not fit
		return string(runes[:MaxFileNameLength])
	}
	if len(stem) > keep {
		stem = stem[:keep]
	}
	return string(stem) + "." + string(ext)
}
